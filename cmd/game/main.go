package main

import (
	"math/rand/v2"
	"time"

	"github.com/jay-kook/TicTacToe-AI/services/game"
)

func main() {
	seed := uint64(time.Now().UnixNano())
	rng := rand.New(rand.NewPCG(seed, seed))

	gameService := game.New(rng)
	gameService.Play()
}

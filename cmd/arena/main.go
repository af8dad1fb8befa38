package main

import (
	"flag"
	"math/rand/v2"
	"os"
	"time"

	"github.com/jay-kook/TicTacToe-AI/internal/logger"
	"github.com/jay-kook/TicTacToe-AI/pkg/strategy"
	"github.com/jay-kook/TicTacToe-AI/services/arena"
)

func main() {
	var (
		xLevel  = flag.String("x", "expert", "engine for X: easy, medium, hard or expert")
		oLevel  = flag.String("o", "easy", "engine for O: easy, medium, hard or expert")
		games   = flag.Int("games", 100, "number of games to play")
		seed    = flag.Uint64("seed", 0, "random seed, 0 for time-based")
		verbose = flag.Bool("v", false, "log every move")
	)
	flag.Parse()

	log := logger.New(*verbose)

	xd, err := strategy.ParseDifficulty(*xLevel)
	if err != nil {
		log.Error(err.Error())
		os.Exit(1)
	}

	od, err := strategy.ParseDifficulty(*oLevel)
	if err != nil {
		log.Error(err.Error())
		os.Exit(1)
	}

	if *seed == 0 {
		*seed = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewPCG(*seed, *seed))

	log.Info("starting match", "x", xd.String(), "o", od.String(), "games", *games, "seed", *seed)

	svc := arena.New(log,
		strategy.ForDifficulty(xd, rng),
		strategy.ForDifficulty(od, rng),
	)

	if _, err := svc.Run(*games); err != nil {
		log.Error(err.Error())
		os.Exit(1)
	}
}

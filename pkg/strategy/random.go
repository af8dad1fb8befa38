package strategy

import (
	"math/rand/v2"

	"github.com/jay-kook/TicTacToe-AI/pkg/tictactoe"
)

// Random plays uniformly over the legal moves. It is the easy
// opponent and the baseline the search engines are measured against.
type Random struct {
	rng *rand.Rand
}

func NewRandom(rng *rand.Rand) *Random {
	return &Random{rng: rng}
}

func (r *Random) ChooseMove(b tictactoe.Board, _ tictactoe.Player) (tictactoe.Move, bool) {
	if b.Outcome().Terminal() {
		return tictactoe.Move{}, false
	}

	moves := b.LegalMoves()
	if len(moves) == 0 {
		return tictactoe.Move{}, false
	}

	return moves[r.rng.IntN(len(moves))], true
}

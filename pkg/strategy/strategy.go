// Package strategy puts the three engines behind one interface and
// maps difficulty levels onto them.
package strategy

import (
	"fmt"
	"math/rand/v2"

	"github.com/jay-kook/TicTacToe-AI/pkg/mcts"
	"github.com/jay-kook/TicTacToe-AI/pkg/minimax"
	"github.com/jay-kook/TicTacToe-AI/pkg/tictactoe"
)

// Mover picks the next move for p on b. ok is false when the board is
// already decided or has no legal moves; callers check it before
// applying anything.
type Mover interface {
	ChooseMove(b tictactoe.Board, p tictactoe.Player) (tictactoe.Move, bool)
}

// Func adapts a plain function to Mover.
type Func func(tictactoe.Board, tictactoe.Player) (tictactoe.Move, bool)

func (f Func) ChooseMove(b tictactoe.Board, p tictactoe.Player) (tictactoe.Move, bool) {
	return f(b, p)
}

// Difficulty selects which engine drives the computer's moves.
type Difficulty int8

const (
	Easy   Difficulty = iota // uniform random
	Medium                   // MCTS, small budget
	Hard                     // MCTS, large budget
	Expert                   // exhaustive minimax
)

// Simulation budgets for the MCTS levels.
const (
	MediumIterations = 200
	HardIterations   = 100_000
)

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Medium:
		return "medium"
	case Hard:
		return "hard"
	case Expert:
		return "expert"
	}

	return fmt.Sprintf("difficulty(%d)", int8(d))
}

// ParseDifficulty maps a flag value onto a Difficulty.
func ParseDifficulty(s string) (Difficulty, error) {
	switch s {
	case "easy":
		return Easy, nil
	case "medium":
		return Medium, nil
	case "hard":
		return Hard, nil
	case "expert":
		return Expert, nil
	}

	return 0, fmt.Errorf("unknown difficulty %q", s)
}

// ForDifficulty returns the Mover for d. The random engine and MCTS
// rollouts both draw from rng.
func ForDifficulty(d Difficulty, rng *rand.Rand) Mover {
	switch d {
	case Medium:
		return searchWith(mcts.New(rng), MediumIterations)
	case Hard:
		return searchWith(mcts.New(rng), HardIterations)
	case Expert:
		return Func(minimax.BestMove)
	}

	return NewRandom(rng)
}

func searchWith(c *mcts.Client, iterations int) Mover {
	return Func(func(b tictactoe.Board, p tictactoe.Player) (tictactoe.Move, bool) {
		return c.Search(b, p, iterations)
	})
}

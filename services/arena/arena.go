// Package arena plays computer opponents against each other and
// tallies the results.
package arena

import (
	"fmt"

	"github.com/jay-kook/TicTacToe-AI/internal/logger"
	"github.com/jay-kook/TicTacToe-AI/pkg/strategy"
	"github.com/jay-kook/TicTacToe-AI/pkg/tictactoe"
)

// Tally accumulates outcomes over a series of games.
type Tally struct {
	XWins int
	OWins int
	Draws int
}

func (t Tally) Games() int {
	return t.XWins + t.OWins + t.Draws
}

type Service struct {
	log *logger.Logger
	x   strategy.Mover
	o   strategy.Mover
}

func New(log *logger.Logger, x, o strategy.Mover) *Service {
	return &Service{
		log: log,
		x:   x,
		o:   o,
	}
}

// Run plays the given number of full games, X moving first in each,
// and returns the tally.
func (s *Service) Run(games int) (Tally, error) {
	var tally Tally

	for game := 1; game <= games; game++ {
		out, err := s.playGame()
		if err != nil {
			return tally, fmt.Errorf("game %d: %w", game, err)
		}

		switch out {
		case tictactoe.XWins:
			tally.XWins++
		case tictactoe.OWins:
			tally.OWins++
		default:
			tally.Draws++
		}

		s.log.Debug("game finished", "game", game, "outcome", out.String())
	}

	s.log.Info("match finished",
		"games", tally.Games(),
		"xWins", tally.XWins,
		"oWins", tally.OWins,
		"draws", tally.Draws,
	)

	return tally, nil
}

func (s *Service) playGame() (tictactoe.Outcome, error) {
	var board tictactoe.Board
	current := tictactoe.X

	for {
		out := board.Outcome()
		if out.Terminal() {
			return out, nil
		}

		mover := s.x
		if current == tictactoe.O {
			mover = s.o
		}

		move, ok := mover.ChooseMove(board, current)
		if !ok {
			return out, fmt.Errorf("%s returned no move with %d cells open",
				current.Mark(), len(board.LegalMoves()))
		}

		if err := board.Apply(move, current); err != nil {
			return out, fmt.Errorf("%s played (%d,%d): %w", current.Mark(), move.Row, move.Col, err)
		}

		s.log.Debug("move", "player", current.Mark(), "row", move.Row, "col", move.Col)

		current = current.Opponent()
	}
}

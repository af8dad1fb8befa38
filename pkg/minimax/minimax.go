// Package minimax picks moves by exhaustive game-tree search with
// alpha-beta pruning. On a 3x3 board the full tree is small enough to
// search every turn, so the result is provably optimal.
package minimax

import (
	"math"

	"github.com/jay-kook/TicTacToe-AI/pkg/tictactoe"
)

// Terminal scores from the maximizing side's perspective. The
// magnitudes are fixed: a win in one ply and a win in five score the
// same, so the engine is indifferent between fast and slow wins.
const (
	winScore  = 10
	lossScore = -10
	drawScore = 0
)

// BestMove returns the optimal move for p on b, where p is the
// maximizing side. Each root candidate is searched with a fresh
// (-inf, +inf) window and compared strictly, so the first move in
// row-major order to reach the best score wins ties. ok is false when
// the board is already decided or has no legal moves.
func BestMove(b tictactoe.Board, p tictactoe.Player) (tictactoe.Move, bool) {
	if b.Outcome().Terminal() {
		return tictactoe.Move{}, false
	}

	var best tictactoe.Move
	bestScore := math.MinInt
	found := false

	for _, m := range b.LegalMoves() {
		b.Apply(m, p)
		s := score(&b, p, false, math.MinInt, math.MaxInt)
		b.Undo(m)

		if s > bestScore {
			bestScore = s
			best = m
			found = true
		}
	}

	return best, found
}

// score evaluates b for the maximizing side me, exploring in place on
// the scratch board and restoring each cell after recursion. alpha
// and beta bound the scores the maximizing and minimizing sides are
// already guaranteed; a branch is cut as soon as beta <= alpha.
func score(b *tictactoe.Board, me tictactoe.Player, maximizing bool, alpha, beta int) int {
	out := b.Outcome()
	switch {
	case out.WonBy(me):
		return winScore
	case out.WonBy(me.Opponent()):
		return lossScore
	case out == tictactoe.Draw:
		return drawScore
	}

	if maximizing {
		best := math.MinInt
		for _, m := range b.LegalMoves() {
			b.Apply(m, me)
			s := score(b, me, false, alpha, beta)
			b.Undo(m)

			best = max(best, s)
			alpha = max(alpha, s)
			if beta <= alpha {
				return best
			}
		}

		return best
	}

	best := math.MaxInt
	opp := me.Opponent()
	for _, m := range b.LegalMoves() {
		b.Apply(m, opp)
		s := score(b, me, true, alpha, beta)
		b.Undo(m)

		best = min(best, s)
		beta = min(beta, s)
		if beta <= alpha {
			return best
		}
	}

	return best
}

package tictactoe

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// parseBoard builds a board from Size strings of 'X', 'O' and '.'.
func parseBoard(t *testing.T, rows ...string) Board {
	t.Helper()
	require.Len(t, rows, Size)

	var b Board
	for r, row := range rows {
		require.Len(t, row, Size)
		for c, ch := range row {
			switch ch {
			case 'X':
				b.Cells[r*Size+c] = X
			case 'O':
				b.Cells[r*Size+c] = O
			case '.':
			default:
				t.Fatalf("bad cell %q", ch)
			}
		}
	}

	return b
}

func TestOutcomeWinningLines(t *testing.T) {
	for _, p := range []Player{X, O} {
		want := XWins
		if p == O {
			want = OWins
		}

		for _, ln := range lines {
			var b Board
			for _, idx := range ln {
				b.Cells[idx] = p
			}

			require.Equal(t, want, b.Outcome(), "line %v for %s", ln, p.Mark())

			got, ok := b.WinningLine()
			require.True(t, ok)
			require.Equal(t, ln, got)
		}
	}
}

func TestOutcomeDraw(t *testing.T) {
	b := parseBoard(t,
		"XOX",
		"XOO",
		"OXX",
	)

	require.Equal(t, Draw, b.Outcome())
	require.True(t, b.Outcome().Terminal())

	_, ok := b.WinningLine()
	require.False(t, ok)
}

func TestOutcomeInProgress(t *testing.T) {
	var b Board
	require.Equal(t, InProgress, b.Outcome())
	require.False(t, b.Outcome().Terminal())

	b = parseBoard(t,
		"XO.",
		".X.",
		"...",
	)
	require.Equal(t, InProgress, b.Outcome())
}

func TestWinTrumpsOpenCells(t *testing.T) {
	b := parseBoard(t,
		"XXX",
		"OO.",
		"...",
	)

	require.Equal(t, XWins, b.Outcome())
	require.True(t, b.Outcome().WonBy(X))
	require.False(t, b.Outcome().WonBy(O))
}

func TestLegalMovesRowMajor(t *testing.T) {
	var b Board

	want := make([]Move, 0, Size*Size)
	for r := range Size {
		for c := range Size {
			want = append(want, Move{Row: r, Col: c})
		}
	}

	require.Equal(t, want, b.LegalMoves())
	require.True(t, b.AnyLegalMoves())
}

func TestLegalMovesFullBoard(t *testing.T) {
	b := parseBoard(t,
		"XOX",
		"XOO",
		"OXX",
	)

	require.Empty(t, b.LegalMoves())
	require.False(t, b.AnyLegalMoves())
}

func TestApplyOccupiedCell(t *testing.T) {
	var b Board
	m := Move{Row: 1, Col: 1}

	require.NoError(t, b.Apply(m, X))
	require.ErrorIs(t, b.Apply(m, O), ErrIllegalMove)
	require.Equal(t, X, b.Get(1, 1))
}

func TestApplyRemovesLegalMove(t *testing.T) {
	var b Board
	m := Move{Row: 0, Col: 2}

	require.NoError(t, b.Apply(m, O))
	require.NotContains(t, b.LegalMoves(), m)
	require.Len(t, b.LegalMoves(), Size*Size-1)
}

func TestUndoRestoresCell(t *testing.T) {
	var b Board
	m := Move{Row: 2, Col: 0}

	require.NoError(t, b.Apply(m, X))
	b.Undo(m)

	require.Equal(t, Empty, b.Get(2, 0))
	require.Equal(t, Board{}, b)

	require.Panics(t, func() { b.Undo(m) })
}

func TestBoardIsValueType(t *testing.T) {
	b := parseBoard(t,
		"X..",
		"...",
		"...",
	)

	scratch := b
	require.NoError(t, scratch.Apply(Move{Row: 2, Col: 2}, O))

	require.Equal(t, Empty, b.Get(2, 2), "mutating a copy must not reach the original")
	require.Equal(t, O, scratch.Get(2, 2))
}

func TestOpponent(t *testing.T) {
	require.Equal(t, O, X.Opponent())
	require.Equal(t, X, O.Opponent())
}

func TestBoardString(t *testing.T) {
	b := parseBoard(t,
		"XO.",
		".X.",
		"..O",
	)

	want := "[X][O][ ]\n[ ][X][ ]\n[ ][ ][O]"
	require.Equal(t, want, b.String())
}

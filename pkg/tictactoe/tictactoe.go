// Package tictactoe defines the 3x3 board the search engines run on.
package tictactoe

import (
	"errors"
	"slices"
	"strings"
)

// Size is the board edge length. The game is fixed at 3x3.
const Size = 3

var ErrIllegalMove = errors.New("illegal move")

type Player int8

const (
	Empty Player = 0
	X     Player = 1
	O     Player = -1
)

// Opponent returns the other side.
func (p Player) Opponent() Player {
	return -p
}

func (p Player) Mark() string {
	s := " "
	if p == X {
		s = "X"
	}

	if p == O {
		s = "O"
	}

	return s
}

// Move addresses a cell. Row and Col are both in [0, Size).
type Move struct {
	Row int
	Col int
}

func (m Move) index() int {
	return m.Row*Size + m.Col
}

func moveAt(idx int) Move {
	return Move{
		Row: idx / Size,
		Col: idx % Size,
	}
}

// Outcome is the game state derived from a board's occupancy.
type Outcome int8

const (
	InProgress Outcome = iota
	XWins
	OWins
	Draw
)

func (o Outcome) Terminal() bool {
	return o != InProgress
}

// WonBy reports whether o is the winning outcome for p.
func (o Outcome) WonBy(p Player) bool {
	return (o == XWins && p == X) || (o == OWins && p == O)
}

func (o Outcome) String() string {
	switch o {
	case XWins:
		return "X wins"
	case OWins:
		return "O wins"
	case Draw:
		return "draw"
	}

	return "in progress"
}

// Board is the 3x3 grid, stored row-major. It is a plain value:
// assigning a Board copies the whole grid, so search code takes a
// private scratch copy with b2 := b and never touches the caller's
// board. Alternating play from an empty board keeps the X count equal
// to the O count or one ahead of it, but nothing here enforces that;
// any legal occupancy snapshot works.
type Board struct {
	Cells [Size * Size]Player
}

func (b Board) Get(row, col int) Player {
	return b.Cells[row*Size+col]
}

// Apply places p on the cell addressed by m. It fails with
// ErrIllegalMove when the cell is occupied.
func (b *Board) Apply(m Move, p Player) error {
	idx := m.index()
	if b.Cells[idx] != Empty {
		return ErrIllegalMove
	}

	b.Cells[idx] = p

	return nil
}

// Undo clears the cell addressed by m. Undoing an empty cell is a
// programming error and panics.
func (b *Board) Undo(m Move) {
	idx := m.index()
	if b.Cells[idx] == Empty {
		panic("Undo on empty cell")
	}

	b.Cells[idx] = Empty
}

func (b Board) AnyLegalMoves() bool {
	return slices.Contains(b.Cells[:], Empty)
}

// LegalMoves lists the empty cells in row-major order.
func (b Board) LegalMoves() []Move {
	moves := make([]Move, 0, len(b.Cells))
	for i, p := range b.Cells {
		if p != Empty {
			continue
		}
		moves = append(moves, moveAt(i))
	}

	return moves
}

// lines are the eight winning triples as Cells indices: rows first,
// then columns, then the diagonal and anti-diagonal.
var lines = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// WinningLine returns the Cells indices of the completed triple, if
// any. Render code uses it to highlight the line.
func (b Board) WinningLine() ([3]int, bool) {
	for _, ln := range lines {
		p := b.Cells[ln[0]]
		if p != Empty && b.Cells[ln[1]] == p && b.Cells[ln[2]] == p {
			return ln, true
		}
	}

	return [3]int{}, false
}

// Outcome scans rows, columns, diagonal, anti-diagonal in that order.
// A board with a completed line is terminal even when empty cells
// remain.
func (b Board) Outcome() Outcome {
	if ln, ok := b.WinningLine(); ok {
		if b.Cells[ln[0]] == X {
			return XWins
		}
		return OWins
	}

	if b.AnyLegalMoves() {
		return InProgress
	}

	return Draw
}

func (b Board) String() string {
	var sb strings.Builder
	for i, p := range b.Cells {
		sb.WriteString("[" + p.Mark() + "]")
		if (i+1)%Size == 0 && i != len(b.Cells)-1 {
			sb.WriteByte('\n')
		}
	}

	return sb.String()
}

package mcts

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jay-kook/TicTacToe-AI/pkg/tictactoe"
)

func parseBoard(t *testing.T, rows ...string) tictactoe.Board {
	t.Helper()

	var b tictactoe.Board
	for r, row := range rows {
		for c, ch := range row {
			switch ch {
			case 'X':
				b.Cells[r*tictactoe.Size+c] = tictactoe.X
			case 'O':
				b.Cells[r*tictactoe.Size+c] = tictactoe.O
			case '.':
			default:
				t.Fatalf("bad cell %q", ch)
			}
		}
	}

	return b
}

func testClient() *Client {
	return New(rand.New(rand.NewPCG(7, 13)))
}

func TestUnvisitedChildAlwaysSelected(t *testing.T) {
	b := parseBoard(t,
		"XO.",
		"...",
		"...",
	)

	tr := newTree(b, tictactoe.X)
	visited := tr.expand(0)
	fresh := tr.expand(0)

	// However lopsided the visited child's record gets, the
	// unvisited sibling still ranks above it.
	for range 1000 {
		tr.backpropagate(visited, true)
	}

	require.True(t, math.IsInf(tr.uctValue(fresh, 1.414), 1))
	require.False(t, math.IsInf(tr.uctValue(visited, 1.414), 1))
	require.Equal(t, fresh, tr.selectChild(0, 1.414))
}

func TestExpandPopsLastUntried(t *testing.T) {
	var b tictactoe.Board
	tr := newTree(b, tictactoe.X)

	require.Len(t, tr.nodes[0].untried, 9)

	child := tr.expand(0)
	n := tr.nodes[child]

	require.Equal(t, tictactoe.Move{Row: 2, Col: 2}, n.move)
	require.Equal(t, tictactoe.O, n.player)
	require.Equal(t, 0, n.parent)
	require.Equal(t, tictactoe.X, n.board.Get(2, 2))
	require.Len(t, tr.nodes[0].untried, 8)
	require.Contains(t, tr.nodes[0].children, child)

	next := tr.expand(0)
	require.Equal(t, tictactoe.Move{Row: 2, Col: 1}, tr.nodes[next].move)
}

func TestBackpropagateWalksToRoot(t *testing.T) {
	var b tictactoe.Board
	tr := newTree(b, tictactoe.X)

	child := tr.expand(0)
	grandchild := tr.expand(child)
	sibling := tr.expand(0)

	tr.backpropagate(grandchild, true)

	require.Equal(t, 1, tr.nodes[grandchild].visits)
	require.Equal(t, 1, tr.nodes[grandchild].wins)
	require.Equal(t, 1, tr.nodes[child].visits)
	require.Equal(t, 1, tr.nodes[child].wins)
	require.Equal(t, 1, tr.nodes[0].visits)
	require.Equal(t, 0, tr.nodes[sibling].visits, "off-path nodes stay untouched")

	// Draws and losses bump visits but never wins.
	tr.backpropagate(grandchild, false)
	require.Equal(t, 2, tr.nodes[grandchild].visits)
	require.Equal(t, 1, tr.nodes[grandchild].wins)
}

func TestIterateCountsRootVisits(t *testing.T) {
	c := testClient()

	var b tictactoe.Board
	tr := newTree(b, tictactoe.X)

	const rounds = 100
	for range rounds {
		c.iterate(tr)
	}

	require.Equal(t, rounds, tr.nodes[0].visits)
}

func TestRolloutOnTerminalNode(t *testing.T) {
	c := testClient()

	b := parseBoard(t,
		"XXX",
		"OO.",
		"...",
	)
	tr := newTree(b, tictactoe.O)

	require.Equal(t, tictactoe.XWins, c.rollout(&tr.nodes[0]))
}

func TestSearchFindsWinInOne(t *testing.T) {
	c := testClient()

	b := parseBoard(t,
		"XX.",
		"OO.",
		"...",
	)

	m, ok := c.Search(b, tictactoe.X, 2000)
	require.True(t, ok)
	require.Equal(t, tictactoe.Move{Row: 0, Col: 2}, m)
}

func TestSearchBlocksImmediateLoss(t *testing.T) {
	c := testClient()

	b := parseBoard(t,
		"XX.",
		".O.",
		"...",
	)

	m, ok := c.Search(b, tictactoe.O, 5000)
	require.True(t, ok)
	require.Equal(t, tictactoe.Move{Row: 0, Col: 2}, m)
}

func TestSearchNoMove(t *testing.T) {
	c := testClient()

	full := parseBoard(t,
		"XOX",
		"XOO",
		"OXX",
	)
	_, ok := c.Search(full, tictactoe.X, 100)
	require.False(t, ok)

	won := parseBoard(t,
		"XXX",
		"OO.",
		"...",
	)
	_, ok = c.Search(won, tictactoe.O, 100)
	require.False(t, ok, "a decided board must not produce a move")

	var open tictactoe.Board
	_, ok = c.Search(open, tictactoe.X, 0)
	require.False(t, ok, "zero iterations never expand the root")
}

func TestSearchDoesNotLoseToRandom(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 99))
	c := New(rng)

	const iterations = 5000

	for _, side := range []tictactoe.Player{tictactoe.X, tictactoe.O} {
		loss := tictactoe.OWins
		if side == tictactoe.O {
			loss = tictactoe.XWins
		}

		for game := range 5 {
			var b tictactoe.Board
			current := tictactoe.X

			for !b.Outcome().Terminal() {
				var m tictactoe.Move
				if current == side {
					var ok bool
					m, ok = c.Search(b, current, iterations)
					require.True(t, ok)
				} else {
					moves := b.LegalMoves()
					m = moves[rng.IntN(len(moves))]
				}

				require.NoError(t, b.Apply(m, current))
				current = current.Opponent()
			}

			require.NotEqual(t, loss, b.Outcome(),
				"search as %s lost game %d:\n%s", side.Mark(), game, b)
		}
	}
}

package mcts

import (
	"math"

	"github.com/jay-kook/TicTacToe-AI/pkg/tictactoe"
)

const noParent = -1

// node is one position in the search tree. It remembers the move that
// produced it and whose turn it is, plus its own board snapshot so
// rollouts never re-derive state from the path.
type node struct {
	parent   int
	children []int

	move    tictactoe.Move
	player  tictactoe.Player
	board   tictactoe.Board
	outcome tictactoe.Outcome

	wins   int
	visits int

	untried []tictactoe.Move
}

// tree is an index-addressed arena; nodes[0] is the root. Nodes refer
// to each other by index, never by pointer, so the whole tree is torn
// down in one piece when the search returns.
type tree struct {
	nodes []node
}

func newTree(b tictactoe.Board, p tictactoe.Player) *tree {
	t := &tree{nodes: make([]node, 0, 128)}
	t.add(noParent, tictactoe.Move{}, b, p)

	return t
}

// add appends a node for board b with p to move and returns its index.
// The untried list keeps LegalMoves order; expansion pops from its end.
func (t *tree) add(parent int, m tictactoe.Move, b tictactoe.Board, p tictactoe.Player) int {
	id := len(t.nodes)
	t.nodes = append(t.nodes, node{
		parent:  parent,
		move:    m,
		player:  p,
		board:   b,
		outcome: b.Outcome(),
		untried: b.LegalMoves(),
	})

	if parent != noParent {
		t.nodes[parent].children = append(t.nodes[parent].children, id)
	}

	return id
}

// uctValue ranks child id for selection. Unvisited nodes rank above
// everything so each child is tried once before win rates mean
// anything.
func (t *tree) uctValue(id int, explorationParam float64) float64 {
	n := &t.nodes[id]
	if n.visits == 0 {
		return math.Inf(1)
	}

	parentVisits := t.nodes[n.parent].visits
	winRate := float64(n.wins) / float64(n.visits)
	logPVisit := math.Log(float64(parentVisits))

	return winRate + explorationParam*math.Sqrt(logPVisit/float64(n.visits))
}

// selectChild returns the child of id with the highest UCT value; the
// first best child wins ties.
func (t *tree) selectChild(id int, explorationParam float64) int {
	children := t.nodes[id].children

	best := children[0]
	bestVal := t.uctValue(best, explorationParam)

	for _, child := range children[1:] {
		v := t.uctValue(child, explorationParam)
		if v > bestVal {
			best = child
			bestVal = v
		}
	}

	return best
}

// expand pops the last untried move of id and attaches the resulting
// child, whose turn belongs to the opponent.
func (t *tree) expand(id int) int {
	n := &t.nodes[id]
	move := n.untried[len(n.untried)-1]
	n.untried = n.untried[:len(n.untried)-1]

	board := n.board
	player := n.player
	if err := board.Apply(move, player); err != nil {
		panic("EXPANSION ILLEGAL MOVE")
	}

	return t.add(id, move, board, player.Opponent())
}

// backpropagate walks from id up to the root bumping visit counts.
// won says whether the playout was a win for the searching side;
// draws and losses credit nothing.
func (t *tree) backpropagate(id int, won bool) {
	for id != noParent {
		n := &t.nodes[id]
		n.visits++
		if won {
			n.wins++
		}

		id = n.parent
	}
}

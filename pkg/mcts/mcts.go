// Package mcts implements Monte Carlo tree search with UCT selection
// over uniform random playouts.
package mcts

import (
	"math/rand/v2"

	"github.com/jay-kook/TicTacToe-AI/pkg/tictactoe"
)

// Client runs searches. One Client serves any number of sequential
// searches; the tree is rebuilt from scratch on every call and
// discarded whole, nothing carries over between moves.
type Client struct {
	explorationParam float64
	rng              *rand.Rand
}

// New returns a Client drawing rollout moves from rng.
func New(rng *rand.Rand) *Client {
	return &Client{
		explorationParam: 1.414,
		rng:              rng,
	}
}

// UpdateExplorationParam overrides the default UCT constant of 1.414.
func (c *Client) UpdateExplorationParam(ep float64) {
	c.explorationParam = ep
}

// Search runs iterations rounds for player on board and returns the
// root move with the most visits rather than the best win rate; visit
// counts are the sturdier signal. player is the perspective side:
// every win count in the tree is a win for player, no matter whose
// turn a node is. ok is false when the root never gained a child (the
// board is terminal, has no legal moves, or iterations <= 0).
func (c *Client) Search(board tictactoe.Board, player tictactoe.Player, iterations int) (tictactoe.Move, bool) {
	t := newTree(board, player)

	for range iterations {
		c.iterate(t)
	}

	children := t.nodes[0].children
	if len(children) == 0 {
		return tictactoe.Move{}, false
	}

	best := children[0]
	for _, id := range children[1:] {
		if t.nodes[id].visits > t.nodes[best].visits {
			best = id
		}
	}

	return t.nodes[best].move, true
}

// iterate runs one search round on t.
func (c *Client) iterate(t *tree) {
	me := t.nodes[0].player
	id := 0

	// Selection
	for len(t.nodes[id].untried) == 0 && len(t.nodes[id].children) > 0 && !t.nodes[id].outcome.Terminal() {
		id = t.selectChild(id, c.explorationParam)
	}

	// Expansion
	if len(t.nodes[id].untried) > 0 && !t.nodes[id].outcome.Terminal() {
		id = t.expand(id)
	}

	// Simulation
	result := c.rollout(&t.nodes[id])

	// Backprop
	t.backpropagate(id, result.WonBy(me))
}

// rollout plays uniformly random moves from n's position until the
// game decides. A node that is already terminal reports its own
// outcome.
func (c *Client) rollout(n *node) tictactoe.Outcome {
	board := n.board
	current := n.player

	for {
		if out := board.Outcome(); out.Terminal() {
			return out
		}

		moves := board.LegalMoves()
		move := moves[c.rng.IntN(len(moves))]
		if err := board.Apply(move, current); err != nil {
			panic("ROLLOUT ILLEGAL MOVE")
		}

		current = current.Opponent()
	}
}

// Package mcts implements Monte-Carlo Tree Search with UCT selection and
// random-playout rollout, per §4.3. Nodes live in a flat arena addressed
// by an integer handle (ref), following the teacher's Naughty-index
// pattern: the tree has no reference cycles, and nodes are stored by
// value in the arena slice (each node's child map is its own
// allocation). Backpropagation walks the
// path collected during selection rather than chasing per-node parent
// pointers, so nodes carry no back-reference at all.
package mcts

// ref addresses a node in an Engine's arena. It plays the role the
// teacher's Naughty type plays for its node pool.
type ref int32

const nilRef ref = -1

// node is one position in the search tree: visits and score accumulate
// across simulations; children is the exclusive, owning map from the
// hash of the move that produced a child to that child's ref, per the
// §3 ownership rules.
type node struct {
	visits       uint32
	score        float32
	playerToMove int
	children     map[uint64]ref
}

func newNode(playerToMove int, virtualVisits uint32) node {
	return node{
		visits:       virtualVisits,
		playerToMove: playerToMove,
		children:     make(map[uint64]ref),
	}
}

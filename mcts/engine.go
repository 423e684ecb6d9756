package mcts

import (
	"fmt"
	"strings"

	"github.com/chewxy/math32"
	"github.com/pkg/errors"

	"github.com/stelmaszczyk/gtsago"
	"github.com/stelmaszczyk/gtsago/game"
	"github.com/stelmaszczyk/gtsago/rng"
	"github.com/stelmaszczyk/gtsago/timer"
)

// MaxSimulationsDefault caps the per-call iteration count when
// Config.MaxSimulations is left at zero.
const MaxSimulationsDefault = 10000000

// DefaultVirtualVisits seeds every new node, damping early exploitation
// before it has accumulated any real rollouts. The Open Question in §9
// about whether to seed at all is resolved by making it a Config field:
// tests may set it to 0 and convergence still holds.
const DefaultVirtualVisits = 5

// explorationC is the canonical UCT exploration constant, sqrt(2).
var explorationC = math32.Sqrt(2)

// Config configures an Engine.
type Config struct {
	// MaxSeconds bounds the wall-clock budget for one GetMove call.
	// Non-positive means unbounded (subject only to MaxSimulations).
	MaxSeconds float64

	// MaxSimulations caps the number of MCTS iterations. Zero means
	// MaxSimulationsDefault.
	MaxSimulations int

	// ExplorationC is the UCT constant C. Zero means sqrt(2).
	ExplorationC float32

	// VirtualVisits seeds every newly created node's visit count.
	// Negative means DefaultVirtualVisits; explicitly set 0 to disable
	// seeding.
	VirtualVisits int

	// Seed drives the rollout's uniform random move sampling. Builds a
	// fresh, clock-seeded Random when left at 0.
	Seed int64
}

// DefaultConfig returns a Config with a 1 second budget, sqrt(2)
// exploration, and virtual-visit seeding of 5.
func DefaultConfig() Config {
	return Config{MaxSeconds: 1, MaxSimulations: MaxSimulationsDefault, ExplorationC: explorationC, VirtualVisits: DefaultVirtualVisits}
}

// Engine is the Monte-Carlo Tree Search described in §4.3.
type Engine struct {
	conf          Config
	virtualVisits uint32
	nodes         []node
	root          ref
	rnd           *rng.Random
	timer         *timer.Timer
	log           strings.Builder
}

// New returns a ready-to-use Engine.
func New(conf Config) *Engine {
	if conf.MaxSimulations <= 0 {
		conf.MaxSimulations = MaxSimulationsDefault
	}
	if conf.ExplorationC == 0 {
		conf.ExplorationC = explorationC
	}
	virtualVisits := uint32(DefaultVirtualVisits)
	if conf.VirtualVisits >= 0 {
		virtualVisits = uint32(conf.VirtualVisits)
	}
	var r *rng.Random
	if conf.Seed != 0 {
		r = rng.NewRandom(conf.Seed)
	} else {
		r = rng.NewRandomFromClock()
	}
	return &Engine{
		conf:          conf,
		virtualVisits: virtualVisits,
		rnd:           r,
		timer:         timer.New(),
		root:          nilRef,
	}
}

// Reset discards the search tree, so the engine behaves statelessly
// across games. The tree only ever lives for the span of one GetMove
// call (§3), so Reset simply drops the arena.
func (e *Engine) Reset() {
	e.nodes = e.nodes[:0]
	e.root = nilRef
}

// ReadLog drains and clears the engine's diagnostic log.
func (e *Engine) ReadLog() string {
	s := e.log.String()
	e.log.Reset()
	return s
}

// String names the engine.
func (e *Engine) String() string {
	return "MCTS"
}

// GetMove runs up to Config.MaxSimulations iterations bounded by
// Config.MaxSeconds, and returns the root's most-visited legal move. It
// returns ErrTerminalState if root is already terminal.
func (e *Engine) GetMove(root game.State) (game.Move, error) {
	if root.IsTerminal() {
		return nil, errors.Wrapf(gtsago.ErrTerminalState, "mcts: %s", root)
	}
	e.timer.Start()
	e.nodes = e.nodes[:0]
	e.root = e.alloc(root.PlayerToMove())

	working := root.Clone()
	simulations := 0
	for simulations < e.conf.MaxSimulations && !e.timer.Exceeded(e.conf.MaxSeconds) {
		e.simulate(working)
		simulations++
	}

	legal := root.LegalMoves(0)
	rootNode := &e.nodes[e.root]
	var best game.Move
	bestVisits := int64(-1)
	for _, move := range legal {
		childRef, ok := rootNode.children[move.Hash()]
		if !ok {
			continue
		}
		visits := int64(e.nodes[childRef].visits)
		if visits > bestVisits {
			bestVisits = visits
			best = move
		}
	}
	if best == nil {
		best = legal[0]
	}

	e.log.WriteString(fmt.Sprintf("simulations=%d nodes=%d time=%s move=%v\n", simulations, len(e.nodes), e.timer, best))
	return best, nil
}

// simulate runs one selection/expansion/rollout/backpropagation cycle
// starting from the shared root clone in working, restoring working to
// its original position before returning.
func (e *Engine) simulate(working game.State) {
	path := []ref{e.root}
	var played []game.Move
	cur := e.root

	for !working.IsTerminal() {
		n := &e.nodes[cur]
		legal := working.LegalMoves(0)

		if move, ok := firstUnexpanded(n, legal); ok {
			working.MakeMove(move)
			played = append(played, move)
			child := e.alloc(working.PlayerToMove())
			n.children[move.Hash()] = child
			path = append(path, child)
			cur = child
			break
		}

		move := e.selectUCT(n, legal)
		working.MakeMove(move)
		played = append(played, move)
		cur = n.children[move.Hash()]
		path = append(path, cur)
	}

	result, rolloutMoves := e.rollout(working)
	played = append(played, rolloutMoves...)

	e.backpropagate(path, result)

	for i := len(played) - 1; i >= 0; i-- {
		working.UndoMove(played[i])
	}
}

// firstUnexpanded returns the first legal move, in order, that has no
// corresponding child yet -- the "expand first unseen child" rule of
// §4.3.
func firstUnexpanded(n *node, legal []game.Move) (game.Move, bool) {
	for _, move := range legal {
		if _, ok := n.children[move.Hash()]; !ok {
			return move, true
		}
	}
	return nil, false
}

// selectUCT picks the legal move whose child maximizes the UCT formula
// of §4.3. Called only once every legal move already has a child.
func (e *Engine) selectUCT(n *node, legal []game.Move) game.Move {
	lnParent := math32.Log(float32(n.visits))
	var best game.Move
	bestValue := math32.Inf(-1)
	for _, move := range legal {
		child := &e.nodes[n.children[move.Hash()]]
		var ratio float32
		if n.playerToMove == child.playerToMove {
			ratio = child.score / float32(child.visits)
		} else {
			ratio = (float32(child.visits) - child.score) / float32(child.visits)
		}
		value := ratio + e.conf.ExplorationC*math32.Sqrt(lnParent/float32(child.visits))
		if value > bestValue {
			bestValue = value
			best = move
		}
	}
	return best
}

// rollout plays uniformly random legal moves from working (the leaf
// position) to a terminal state and scores the outcome from the
// perspective of the rollout player -- whoever was to move at the leaf.
// Returns the moves played so the caller can undo them.
func (e *Engine) rollout(working game.State) (result float64, played []game.Move) {
	rolloutPlayer := working.PlayerToMove()
	for !working.IsTerminal() {
		legal := working.LegalMoves(0)
		move := legal[e.rnd.Intn(len(legal))]
		working.MakeMove(move)
		played = append(played, move)
	}
	if working.IsWinner(rolloutPlayer) {
		return 1.0, played
	}
	for p := 0; p < working.NumPlayers(); p++ {
		if p != rolloutPlayer && working.IsWinner(p) {
			return 0.0, played
		}
	}
	return 0.5, played
}

// backpropagate walks path from the leaf to the root, updating visits
// and score. The leaf gets result; each node above it gets the
// complement, alternating all the way to the root -- the two-player
// zero-sum interpretation named canonical in §9.
func (e *Engine) backpropagate(path []ref, result float64) {
	r := float32(result)
	for i := len(path) - 1; i >= 0; i-- {
		n := &e.nodes[path[i]]
		n.visits++
		n.score += r
		r = 1 - r
	}
}

func (e *Engine) alloc(playerToMove int) ref {
	e.nodes = append(e.nodes, newNode(playerToMove, e.virtualVisits))
	return ref(len(e.nodes) - 1)
}

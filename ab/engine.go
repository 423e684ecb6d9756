package ab

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pkg/errors"

	"github.com/stelmaszczyk/gtsago"
	"github.com/stelmaszczyk/gtsago/game"
	"github.com/stelmaszczyk/gtsago/timer"
)

// MaxDepthDefault bounds iterative deepening when Config.MaxDepth is
// left at zero.
const MaxDepthDefault = 20

// Inf is the sentinel window bound. State.Goodness must stay strictly
// inside (-Inf, +Inf); a decided position scores +-game.WinThreshold,
// far inside it, and negating +-Inf never overflows.
const Inf = 1 << 30

// MoveOrdering resolves the Open Question of §9: whether moves are
// iterated in the game's own LegalMoves order or stable-sorted by
// history-heuristic score. Both are legitimate; this makes the choice an
// explicit, named config value instead of an implicit behavior.
type MoveOrdering int

const (
	// OrderHistory stable-sorts LegalMoves by descending history score
	// before each node's move loop. This is the default.
	OrderHistory MoveOrdering = iota
	// OrderNone keeps the game's own LegalMoves ordering untouched.
	OrderNone
)

// Config configures an Engine.
type Config struct {
	// MaxSeconds bounds the wall-clock budget for one GetMove call.
	// Non-positive means unbounded (used by tests that want the exact
	// minimax value at a fixed depth, per §8 invariant 7).
	MaxSeconds float64

	// MaxDepth bounds iterative deepening. Zero means MaxDepthDefault.
	MaxDepth int

	// MaxMoves bounds how many legal moves are requested per node.
	// Zero means unbounded.
	MaxMoves int

	// MoveOrdering selects how moves are ordered before the negascout
	// loop at each node.
	MoveOrdering MoveOrdering
}

// DefaultConfig returns a Config with a 1 second budget and history move
// ordering.
func DefaultConfig() Config {
	return Config{MaxSeconds: 1, MaxDepth: MaxDepthDefault, MoveOrdering: OrderHistory}
}

// Engine is the iterative-deepening negascout search described in §4.2.
type Engine struct {
	conf  Config
	tt    *Table
	ht    *HistoryTable
	timer *timer.Timer
	log   strings.Builder

	// per-depth stats, reset at the start of every iterative-deepening
	// iteration, mirroring the teacher's per-call counters.
	nodes, leafs           int
	betaCuts, scoutCuts    int
	ttHits, ttExact, ttCut int
}

// New returns a ready-to-use Engine. A zero Config searches with no time
// budget up to MaxDepthDefault, with an unbounded move count and history
// ordering.
func New(conf Config) *Engine {
	if conf.MaxDepth <= 0 {
		conf.MaxDepth = MaxDepthDefault
	}
	return &Engine{
		conf:  conf,
		tt:    NewTable(),
		ht:    NewHistoryTable(),
		timer: timer.New(),
	}
}

// Reset clears the transposition table and history table so the engine
// is stateless across games, as the Harness requires before each game.
func (e *Engine) Reset() {
	e.tt.Reset()
	e.ht.Reset()
}

// ReadLog drains and clears the engine's diagnostic log.
func (e *Engine) ReadLog() string {
	s := e.log.String()
	e.log.Reset()
	return s
}

// String names the engine.
func (e *Engine) String() string {
	return "AB"
}

type searchResult struct {
	goodness  int
	bestMove  game.Move
	completed bool
}

// GetMove runs iterative deepening negascout from depth 1 up to
// Config.MaxDepth, returning the best move found by the deepest
// completed iteration. It returns ErrTerminalState if state is already
// terminal.
func (e *Engine) GetMove(state game.State) (game.Move, error) {
	if state.IsTerminal() {
		return nil, errors.Wrapf(gtsago.ErrTerminalState, "ab: %s", state)
	}
	e.timer.Start()

	var best game.Move
	for depth := 1; depth <= e.conf.MaxDepth; depth++ {
		e.nodes, e.leafs, e.betaCuts, e.scoutCuts = 0, 0, 0, 0
		e.ttHits, e.ttExact, e.ttCut = 0, 0, 0

		clone := state.Clone()
		result := e.negascout(clone, depth, -Inf, Inf)
		if result.completed {
			best = result.bestMove
			e.log.WriteString(e.iterationSummary(depth, result))
		}
		if e.timer.Exceeded(e.conf.MaxSeconds) {
			break
		}
	}

	if best == nil {
		if te, ok := e.tt.get(state.Hash()); ok {
			best = te.move
		} else {
			legal := state.LegalMoves(e.conf.MaxMoves)
			if len(legal) == 0 {
				return nil, errors.Wrapf(gtsago.ErrTerminalState, "ab: %s", state)
			}
			best = legal[0]
		}
	}
	return best, nil
}

// negascout is the recursive negamax-convention search of §4.2: scores
// are returned from the perspective of the side to move, and child calls
// negate the window and the result.
func (e *Engine) negascout(state game.State, depth, alpha, beta int) searchResult {
	e.nodes++
	alphaOriginal := alpha

	if depth == 0 || state.IsTerminal() {
		e.leafs++
		return searchResult{goodness: state.Goodness(), completed: false}
	}

	hash := state.Hash()
	if te, ok := e.tt.get(hash); ok && te.depth >= depth {
		e.ttHits++
		switch te.bound {
		case Exact:
			e.ttExact++
			return searchResult{goodness: te.value, bestMove: te.move, completed: true}
		case Lower:
			if alpha < te.value {
				alpha = te.value
			}
		case Upper:
			if beta > te.value {
				beta = te.value
			}
		}
		if alpha >= beta {
			e.ttCut++
			return searchResult{goodness: te.value, bestMove: te.move, completed: true}
		}
	}

	moves := state.LegalMoves(e.conf.MaxMoves)
	if e.conf.MoveOrdering == OrderHistory {
		e.sortByHistory(moves)
	}

	maxGoodness := -Inf
	var bestMove game.Move
	completed := true

	for i, move := range moves {
		state.MakeMove(move)
		var g int
		if i == 0 {
			g = -e.negascout(state, depth-1, -beta, -alpha).goodness
		} else {
			g = -e.negascout(state, depth-1, -alpha-1, -alpha).goodness
			if alpha < g && g < beta {
				g = -e.negascout(state, depth-1, -beta, -g).goodness
			} else {
				e.scoutCuts++
			}
		}
		state.UndoMove(move)

		if e.timer.Exceeded(e.conf.MaxSeconds) {
			completed = false
			break
		}

		if g > maxGoodness {
			maxGoodness = g
			bestMove = move
			if maxGoodness >= beta {
				e.betaCuts++
				break
			}
		}
		if alpha < maxGoodness {
			alpha = maxGoodness
		}
	}

	if completed {
		e.ht.Bump(bestMove.Hash(), depth)
		e.tt.put(hash, entry{move: bestMove, depth: depth, value: maxGoodness, bound: boundKind(maxGoodness, alphaOriginal, beta)})
	}

	return searchResult{goodness: maxGoodness, bestMove: bestMove, completed: completed}
}

func boundKind(value, alphaOriginal, beta int) BoundKind {
	switch {
	case value <= alphaOriginal:
		return Upper
	case value >= beta:
		return Lower
	default:
		return Exact
	}
}

// sortByHistory stable-sorts moves by descending history-heuristic
// score, preserving the game's own ordering among ties.
func (e *Engine) sortByHistory(moves []game.Move) {
	sort.SliceStable(moves, func(i, j int) bool {
		return e.ht.Score(moves[i].Hash()) > e.ht.Score(moves[j].Hash())
	})
}

func (e *Engine) iterationSummary(depth int, r searchResult) string {
	return fmt.Sprintf(
		"depth=%d goodness=%d move=%v time=%s nodes=%d leafs=%d scout_cuts=%d beta_cuts=%d tt_hits=%d tt_exact=%d tt_cuts=%d tt_size=%d\n",
		depth, r.goodness, r.bestMove, e.timer, e.nodes, e.leafs, e.scoutCuts, e.betaCuts, e.ttHits, e.ttExact, e.ttCut, e.tt.Len(),
	)
}

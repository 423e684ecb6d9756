package gtsago

import (
	"fmt"
	"io"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"

	"github.com/stelmaszczyk/gtsago/game"
)

// significanceLevel is alpha for the two-sided Clopper-Pearson interval
// used to decide when a tournament has produced a statistically
// separated result (§4.4): a two-sided 99% confidence interval.
const significanceLevel = 0.005

// OutcomeCounts tallies a tournament's results across P players: Wins[i]
// counts games player i won outright; Draws counts games that ended
// without a winner.
type OutcomeCounts struct {
	Wins  []int
	Draws int
}

func newOutcomeCounts(numPlayers int) OutcomeCounts {
	return OutcomeCounts{Wins: make([]int, numPlayers)}
}

// Harness drives len(engines) == state.NumPlayers() engines against
// each other, one engine per player slot, for up to MaxGames games, and
// reports the aggregate OutcomeCounts. It is the Go form of the
// teacher's Arena / the spec's Tester.
type Harness struct {
	root    game.State
	engines []Engine

	// MaxGames caps the number of games played. Non-positive means
	// unbounded (subject only to early statistical stopping).
	MaxGames int

	// Log, if non-nil, receives a line of commentary per move/game, the
	// way the teacher's Arena writes into a *log.Logger over a
	// bytes.Buffer.
	Log io.Writer
}

// NewHarness validates that len(engines) matches root.NumPlayers() and
// returns a ready-to-run Harness. Returns ErrConfig otherwise.
func NewHarness(root game.State, engines []Engine, maxGames int) (*Harness, error) {
	if len(engines) != root.NumPlayers() {
		return nil, errors.Wrapf(ErrConfig, "got %d engines for %d players", len(engines), root.NumPlayers())
	}
	return &Harness{root: root, engines: engines, MaxGames: maxGames}, nil
}

// Close closes every engine that implements io.Closer (e.g. a
// subprocess-backed external engine), aggregating any close errors.
func (h *Harness) Close() error {
	var errs error
	for _, e := range h.engines {
		if c, ok := e.(io.Closer); ok {
			if err := c.Close(); err != nil {
				errs = multierror.Append(errs, err)
			}
		}
	}
	return errs
}

// Run plays games until MaxGames is reached or the tournament is
// statistically decided, and returns the aggregate OutcomeCounts.
//
// Each game's starting position is varied by i mod 4 (§4.4): games 0
// and 2 rotate the opening side to move by one step, games 0 and 3
// additionally swap the engines' player-specific data via SwapPlayers,
// so the four residues cover every combination of {normal, rotated} x
// {unswapped, swapped} before the cycle repeats.
func (h *Harness) Run() OutcomeCounts {
	outcome := newOutcomeCounts(h.root.NumPlayers())
	seenGames := make(map[uint64]bool)

	max := h.MaxGames
	if max <= 0 {
		max = int(^uint(0) >> 1) // unbounded
	}

	for i := 0; i < max; i++ {
		current := h.root.Clone()
		if i%4 == 0 || i%4 == 2 {
			current.SetPlayerToMove(current.NextPlayer(current.PlayerToMove()))
		}
		if i%4 == 0 || i%4 == 3 {
			current.SwapPlayers()
		}

		final, counted := h.playOneGame(current, seenGames)
		if !counted {
			continue
		}
		h.tally(&outcome, final)

		n := len(seenGames)
		if n >= 1 && h.stopEarly(outcome, n) {
			break
		}
	}
	return outcome
}

// playOneGame plays one game to completion from current, alternating
// GetMove calls across h.engines by PlayerToMove. Returns the final
// position and whether the game's hash was newly seen (a repeated game
// is still played out but excluded from the tally, per §4.4 dedup).
//
// Engine hygiene: every engine is Reset() before the game starts, and
// is handed a scratch Clone() on each GetMove call, so an engine can
// never observe or mutate the Harness's own position.
func (h *Harness) playOneGame(current game.State, seenGames map[uint64]bool) (game.State, bool) {
	for _, e := range h.engines {
		e.Reset()
	}

	rollingHash := current.Hash()
	for !current.IsTerminal() {
		engine := h.engines[current.PlayerToMove()]
		move, err := engine.GetMove(current.Clone())
		if err != nil {
			h.logf("engine %s failed: %v", engine, err)
			break
		}
		current.MakeMove(move)
		rollingHash = game.CombineHash(rollingHash, current.Hash())
		h.logf("%v: %v", engine, move)
	}

	if seenGames[rollingHash] {
		return current, false
	}
	seenGames[rollingHash] = true
	return current, true
}

// tally credits the final position's outcome: the winner's Wins slot
// if one player has won, Draws otherwise.
func (h *Harness) tally(outcome *OutcomeCounts, final game.State) {
	for p := 0; p < final.NumPlayers(); p++ {
		if final.IsWinner(p) {
			outcome.Wins[p]++
			return
		}
	}
	outcome.Draws++
}

// stopEarly reports whether, after n games, some player's win
// proportion (counting a draw as half a win) is already statistically
// separated from 0.5 at the significanceLevel -- i.e. the tournament
// has a clear, confident result and further games would not change the
// conclusion.
func (h *Harness) stopEarly(outcome OutcomeCounts, n int) bool {
	for _, wins := range outcome.Wins {
		successes := float64(wins) + 0.5*float64(outcome.Draws)
		lower, upper := clopperPearson(successes, float64(n), significanceLevel)
		if upper < 0.5 || lower > 0.5 {
			return true
		}
	}
	return false
}

func (h *Harness) logf(format string, args ...interface{}) {
	if h.Log == nil {
		return
	}
	fmt.Fprintf(h.Log, format+"\n", args...)
}

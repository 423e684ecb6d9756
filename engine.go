package gtsago

import "github.com/stelmaszczyk/gtsago/game"

// Engine is satisfied by both the ab and mcts search engines, and by
// anything else (a human prompt, a subprocess bridge) the Harness should
// be able to drive. It mirrors the teacher's Algorithm interface
// (Algorithm.GetMove / Algorithm.Reset / Algorithm.String in agogo's
// vocabulary).
type Engine interface {
	// GetMove returns a legal move for state within the engine's
	// configured budget. Returns ErrTerminalState if state is already
	// terminal.
	GetMove(state game.State) (game.Move, error)

	// Reset clears any per-engine cache (transposition table, history
	// table, MCTS tree) so the engine behaves statelessly across games.
	Reset()

	// ReadLog drains and returns the engine's accumulated diagnostic
	// log since the last call, the way the teacher's Algorithm.log
	// stringstream / Arena.buf is read and cleared.
	ReadLog() string

	// String names the engine, for harness reporting.
	String() string
}

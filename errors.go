// Package gtsago is a generic adversarial game-tree search library: given
// a game expressed through the game.State/game.Move capability interface,
// it searches for a strong move within a wall-clock budget using either
// the ab (iterative-deepening negascout) or mcts (Monte-Carlo Tree
// Search) engine, and can pit engines against each other with Harness.
package gtsago

import "github.com/pkg/errors"

// Sentinel errors per §7. Engines and the harness wrap these with
// github.com/pkg/errors so callers can both errors.Is against the
// sentinel and print a stack trace via %+v when logging a failure.
var (
	// ErrTerminalState is returned by an engine's GetMove when asked to
	// search from a position that has already ended.
	ErrTerminalState = errors.New("gtsago: given state is terminal")

	// ErrIllegalMove is returned by the external-executable bridge (out
	// of core) when a subprocess proposes a move absent from
	// LegalMoves. Core engines never produce it: they only ever
	// propose moves drawn from LegalMoves.
	ErrIllegalMove = errors.New("gtsago: move is not legal")

	// ErrConfig is returned by NewHarness when the number of engines
	// supplied doesn't match the number of player slots in the state.
	ErrConfig = errors.New("gtsago: number of engines must match state.NumPlayers()")
)

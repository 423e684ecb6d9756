// Package game defines the capability contract a game must satisfy to be
// searched by the ab and mcts engines. It is the only cross-boundary
// interface in the library: concrete games (tic-tac-toe, Connect-Four,
// Isola, Go, chess, ...) are consumed exclusively through Move and State.
package game

import "io"

// Move is an opaque, game-defined action. Two moves are equal iff their
// hashes are equal AND Equals reports true; Hash must be stable across
// calls on an equal move.
type Move interface {
	// Equals reports whether two moves represent the same action.
	Equals(other Move) bool

	// Hash is a stable 64-bit digest of the move.
	Hash() uint64

	// String renders the move the way §6.1 prescribes for human/CLI
	// consumption, e.g. "3 2" for a coordinate move.
	String() string
}

// MoveReader parses a Move from a text stream, for interactive or
// subprocess-driven players. Optional: a game need not support it.
type MoveReader interface {
	ReadMove(r io.Reader) (Move, error)
}

// State is a position in a finite, sequential, perfect-information game
// for P >= 2 players.
type State interface {
	// Clone returns an independent deep copy; mutating the clone must
	// never affect the receiver.
	Clone() State

	// LegalMoves returns the legal moves at this position, ordered by
	// the game's own move-ordering preference (best first). Never empty
	// unless IsTerminal. maxMoves <= 0 means unbounded; otherwise the
	// game may truncate to the maxMoves highest-priority moves.
	LegalMoves(maxMoves int) []Move

	// MakeMove applies m. MakeMove/UndoMove follow stack discipline:
	// undoing the most recently made move must restore a bit-identical
	// state.
	MakeMove(m Move)

	// UndoMove reverses the most recently made move, which must be m.
	UndoMove(m Move)

	// IsTerminal reports whether the game has ended at this position.
	IsTerminal() bool

	// IsWinner reports whether player has already won. At most one
	// player index can return true for a given state.
	IsWinner(player int) bool

	// Goodness is a static evaluation from the perspective of
	// PlayerToMove: higher is better for the side to move. Must stay
	// within the open interval (-Inf, +Inf), return >= WinThreshold
	// when the side to move has already won, and <= -WinThreshold when
	// it has already lost.
	Goodness() int

	// Hash is a stable 64-bit digest depending only on the position and
	// PlayerToMove.
	Hash() uint64

	// PlayerToMove is the index, in [0, NumPlayers), of the player who
	// moves next.
	PlayerToMove() int

	// NumPlayers is the number of distinct player slots, P.
	NumPlayers() int

	// Teams returns a length-P vector of team labels; players on the
	// same team share win/lose outcomes. Two-player zero-sum games
	// return distinct labels for every player.
	Teams() []int

	// NextPlayer and PrevPlayer rotate the player-to-move index,
	// wrapping modulo NumPlayers.
	NextPlayer(player int) int
	PrevPlayer(player int) int

	// SetPlayerToMove overrides the side to move without otherwise
	// touching the position, used by the harness to vary the opening
	// side across a tournament (§4.4).
	SetPlayerToMove(player int)

	// SwapPlayers optionally permutes player-specific data, used by the
	// harness to reduce duplicate games across a tournament. Games that
	// have no meaningful permutation may leave this a no-op.
	SwapPlayers()

	// String renders the position as the rectangular ASCII grid
	// described in §6.1, followed by a line with the to-move player's
	// character.
	String() string
}

// Executable is satisfied by states that can render themselves for the
// external-executable bridge (§6.1): numeric tokens separated by single
// spaces, 0 for empty, -1 for obstacle. It is optional; only games meant
// to be driven by a subprocess opponent need to implement it.
type Executable interface {
	ToExecutableFormat() string
}

// WinThreshold is the goodness magnitude a State.Goodness() must reach
// once the side to move has already won (>=) or lost (<=, negated).
const WinThreshold = 10000

// PlayerChar returns the conventional one-character label for a player
// index (0 -> '1', 1 -> '2', ...), matching §6.1's grid display rules for
// games that don't define their own piece characters.
func PlayerChar(player int) byte {
	return byte('1' + player)
}

// CharToPlayer is the inverse of PlayerChar.
func CharToPlayer(c byte) int {
	return int(c - '1')
}

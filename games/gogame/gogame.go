// Package gogame is a worked example game.State/game.Move
// implementation grounded directly on the original library's GoState/
// GoMove (examples/go.cpp): Go with area scoring, capture, suicide
// prevention, and positional superko, on a configurable square board
// (the original's SIDE=5, matching this library's own 5x5 scenario).
package gogame

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"github.com/stelmaszczyk/gtsago/game"
)

const empty = 0

func mark(player int) byte { return byte(player + 1) }

// Move plays a stone at (X, Y); X == -1 is a pass.
type Move struct {
	X, Y int
}

// Pass is the conventional pass move.
var Pass = Move{X: -1, Y: 0}

// Equals reports whether other is the same coordinate (or both passes).
func (m Move) Equals(other game.Move) bool {
	o, ok := other.(Move)
	return ok && o.X == m.X && o.Y == m.Y
}

// Hash combines X and Y.
func (m Move) Hash() uint64 {
	h := game.CombineHash(0, uint64(int64(m.X)))
	h = game.CombineHash(h, uint64(int64(m.Y)))
	return h
}

// String renders "X Y".
func (m Move) String() string {
	return fmt.Sprintf("%d %d", m.X, m.Y)
}

// undoInfo captures everything MakeMove changed, so UndoMove can restore
// it exactly without replaying the whole capture/suicide computation.
type undoInfo struct {
	prevBoard      []byte
	prevPass       [2]bool
	insertedHash   uint64
	wasPass        bool
}

// State is a Go position on a Side x Side board.
type State struct {
	side         int
	board        []byte
	pass         [2]bool
	playerToMove int
	history      map[uint64]bool
	undos        []undoInfo
}

// NewFromString parses a Side*Side-long row-major string of '1', '2',
// '_' into an empty-pass starting position.
func NewFromString(s string, side, playerToMove int) (*State, error) {
	if side <= 0 || len(s) != side*side {
		return nil, errors.Errorf("gogame: initialization string length must be %d", side*side)
	}
	st := &State{side: side, board: make([]byte, side*side), playerToMove: playerToMove, history: make(map[uint64]bool)}
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '1':
			st.board[i] = mark(0)
		case '2':
			st.board[i] = mark(1)
		case '_':
			st.board[i] = empty
		default:
			return nil, errors.Errorf("gogame: undefined symbol used: %q", s[i])
		}
	}
	st.history[st.Hash()] = true
	return st, nil
}

// Clone returns an independent copy; the undo stack is not carried over
// since it only needs to support the one in-flight search path, which
// belongs to whichever engine currently owns the clone.
func (s *State) Clone() game.State {
	clone := &State{
		side:         s.side,
		board:        append([]byte(nil), s.board...),
		pass:         s.pass,
		playerToMove: s.playerToMove,
		history:      make(map[uint64]bool, len(s.history)),
	}
	for h := range s.history {
		clone.history[h] = true
	}
	return clone
}

func (s *State) at(x, y int) byte { return s.board[y*s.side+x] }

func (s *State) inBounds(x, y int) bool {
	return x >= 0 && x < s.side && y >= 0 && y < s.side
}

// LegalMoves lists every empty point that doesn't repeat an earlier
// board coloring (positional superko), plus a trailing pass, truncated
// to maxMoves.
func (s *State) LegalMoves(maxMoves int) []game.Move {
	limit := s.side*s.side + 1
	if maxMoves > 0 && maxMoves < limit {
		limit = maxMoves
	}
	var moves []game.Move
	probe := s.Clone().(*State)
	for y := 0; y < s.side; y++ {
		for x := 0; x < s.side; x++ {
			if s.at(x, y) != empty {
				continue
			}
			m := Move{X: x, Y: y}
			probe.MakeMove(m)
			h := probe.Hash()
			probe.UndoMove(m)
			if !s.history[h] {
				moves = append(moves, m)
				if len(moves) >= limit {
					return moves
				}
			}
		}
	}
	moves = append(moves, Pass)
	return moves
}

// reach floods from (x, y) along cells holding from, stopping at to;
// it reports every from-cell visited and whether every cell bordering
// the flood holds `to` -- i.e. whether the region is enclosed solely by
// `to` and the board edge.
func (s *State) reach(x, y int, from, to byte, seen []bool) (area []int, closed bool) {
	if !s.inBounds(x, y) {
		return nil, true
	}
	i := y*s.side + x
	if seen[i] && s.board[i] == from {
		return nil, true
	}
	seen[i] = true
	if s.board[i] == to {
		return nil, true
	}
	if s.board[i] != from {
		return nil, false
	}
	n, nc := s.reach(x, y-1, from, to, seen)
	e, ec := s.reach(x+1, y, from, to, seen)
	w, wc := s.reach(x-1, y, from, to, seen)
	sArea, sc := s.reach(x, y+1, from, to, seen)
	area = append([]int{i}, n...)
	area = append(area, e...)
	area = append(area, w...)
	area = append(area, sArea...)
	return area, nc && ec && wc && sc
}

// clear empties every one of player's stones reachable from (x, y) that
// touch only the opponent and the board edge -- a capture, or a suicide
// check when player == the mover.
func (s *State) clear(x, y, player int) {
	seen := make([]bool, len(s.board))
	area, closed := s.reach(x, y, mark(player), mark(1-player), seen)
	if closed {
		for _, i := range area {
			s.board[i] = empty
		}
	}
}

func (s *State) getStones(player int) int {
	n := 0
	for _, c := range s.board {
		if c == mark(player) {
			n++
		}
	}
	return n
}

// getArea counts empty points whose flood-fill region touches only
// player's stones (territory).
func (s *State) getArea(player int) int {
	area := 0
	seen := make([]bool, len(s.board))
	for x := 0; x < s.side; x++ {
		for y := 0; y < s.side; y++ {
			if !seen[y*s.side+x] {
				pts, closed := s.reach(x, y, empty, mark(player), seen)
				if closed {
					area += len(pts)
				}
			}
		}
	}
	return area
}

func (s *State) getScore(player int) int {
	return s.getStones(player) + s.getArea(player)
}

// MakeMove plays m, running capture and suicide-clearing exactly as the
// original does, and advances PlayerToMove.
func (s *State) MakeMove(m game.Move) {
	mv := m.(Move)
	mover := s.playerToMove
	u := undoInfo{prevPass: s.pass, wasPass: mv.X == -1}

	if mv.X == -1 {
		s.pass[mover] = true
		s.undos = append(s.undos, u)
		s.playerToMove = s.NextPlayer(mover)
		return
	}

	s.pass[mover] = false
	u.prevBoard = append([]byte(nil), s.board...)

	s.board[mv.Y*s.side+mv.X] = mark(mover)
	enemy := s.NextPlayer(mover)
	if s.inBounds(mv.X, mv.Y-1) {
		s.clear(mv.X, mv.Y-1, enemy)
	}
	if s.inBounds(mv.X+1, mv.Y) {
		s.clear(mv.X+1, mv.Y, enemy)
	}
	if s.inBounds(mv.X-1, mv.Y) {
		s.clear(mv.X-1, mv.Y, enemy)
	}
	if s.inBounds(mv.X, mv.Y+1) {
		s.clear(mv.X, mv.Y+1, enemy)
	}
	s.clear(mv.X, mv.Y, mover) // suicide

	s.playerToMove = enemy
	h := s.Hash()
	s.history[h] = true
	u.insertedHash = h
	s.undos = append(s.undos, u)
}

// UndoMove reverses the most recently made move.
func (s *State) UndoMove(m game.Move) {
	n := len(s.undos)
	u := s.undos[n-1]
	s.undos = s.undos[:n-1]

	if u.wasPass {
		s.playerToMove = s.PrevPlayer(s.playerToMove)
		s.pass = u.prevPass
		return
	}

	delete(s.history, u.insertedHash)
	s.playerToMove = s.PrevPlayer(s.playerToMove)
	s.board = u.prevBoard
	s.pass = u.prevPass
}

// IsTerminal reports whether both players have passed in succession.
func (s *State) IsTerminal() bool {
	return s.pass[0] && s.pass[1]
}

// IsWinner reports whether player's area score exceeds the opponent's.
func (s *State) IsWinner(player int) bool {
	return s.getScore(player) > s.getScore(s.NextPlayer(player))
}

// Goodness matches the original: a decided terminal position scores
// +-WinThreshold, a terminal non-win (equal score) scores a modest +10,
// a non-terminal position scores 0.
func (s *State) Goodness() int {
	if s.IsTerminal() {
		if s.IsWinner(s.playerToMove) {
			return game.WinThreshold
		}
		if s.IsWinner(s.NextPlayer(s.playerToMove)) {
			return -game.WinThreshold
		}
		return 10
	}
	return 0
}

// Hash is an FNV-1a digest over the board only, matching the original
// (pass state and side to move don't affect positional superko).
func (s *State) Hash() uint64 {
	var h uint64 = 14695981039346656037
	for _, c := range s.board {
		h ^= uint64(c)
		h *= 1099511628211
	}
	return h
}

// PlayerToMove returns the index of the side to move.
func (s *State) PlayerToMove() int { return s.playerToMove }

// SetPlayerToMove overrides the side to move.
func (s *State) SetPlayerToMove(player int) { s.playerToMove = player }

// NumPlayers is always 2.
func (s *State) NumPlayers() int { return 2 }

// Teams returns distinct labels: Go is zero-sum two-player.
func (s *State) Teams() []int { return []int{0, 1} }

// NextPlayer and PrevPlayer both flip between the only two players.
func (s *State) NextPlayer(player int) int { return 1 - player }
func (s *State) PrevPlayer(player int) int { return 1 - player }

// SwapPlayers exchanges the two players' stones, the harness's
// mechanism for varying which physical engine plays which color across
// a tournament.
func (s *State) SwapPlayers() {
	for i, c := range s.board {
		switch c {
		case mark(0):
			s.board[i] = mark(1)
		case mark(1):
			s.board[i] = mark(0)
		}
	}
	s.pass[0], s.pass[1] = s.pass[1], s.pass[0]
	s.history = map[uint64]bool{s.Hash(): true}
}

// String renders the board Side rows tall, followed by a line naming
// the side to move, per §6.1.
func (s *State) String() string {
	var b strings.Builder
	for y := 0; y < s.side; y++ {
		for x := 0; x < s.side; x++ {
			switch s.at(x, y) {
			case empty:
				b.WriteByte('_')
			default:
				b.WriteByte(game.PlayerChar(int(s.at(x, y)) - 1))
			}
		}
		b.WriteByte('\n')
	}
	fmt.Fprintf(&b, "%c to move\n", game.PlayerChar(s.playerToMove))
	return b.String()
}

// ToExecutableFormat renders the board as space-separated numeric
// tokens (0 empty, 1 player 0, 2 player 1) for the subprocess bridge.
func (s *State) ToExecutableFormat() string {
	var b strings.Builder
	for i, c := range s.board {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%d", c)
	}
	return b.String()
}

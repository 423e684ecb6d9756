// Package isola is a worked example game.State/game.Move implementation
// grounded directly on the original library's IsolaState/IsolaMove
// (examples/isola.hpp): each turn a player steps one square (including
// diagonally) into an empty cell and then removes any empty-or-own cell
// from the board, stranding the opponent once they have nowhere left to
// step. Side is a field rather than a compile-time constant so the same
// implementation drives both the original's 3x3 example and the 7x7
// board named in this library's own scenarios.
package isola

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"github.com/stelmaszczyk/gtsago/game"
)

const (
	empty   = 0
	removed = 3 // cell value for player, 1 or 2; 3 marks a removed cell
)

func mark(player int) byte { return byte(player + 1) }

// getScore maps a player's remaining step count to the goodness
// contribution the original assigns it: being stuck is worst, one
// escape is still bad, two is neutral, more is mildly better the more
// there are.
func getScore(options int) int {
	switch {
	case options == 0:
		return -50
	case options == 1:
		return -10
	case options == 2:
		return 0
	default:
		return options + 2
	}
}

// Move steps the mover from (FromX, FromY) to (StepX, StepY), then
// removes the cell at (RemoveX, RemoveY) from play.
type Move struct {
	FromX, FromY     int
	StepX, StepY     int
	RemoveX, RemoveY int
}

// Equals reports whether other is the identical step-and-remove.
func (m Move) Equals(other game.Move) bool {
	o, ok := other.(Move)
	return ok && o == m
}

// Hash combines all six coordinates.
func (m Move) Hash() uint64 {
	h := game.CombineHash(0, uint64(m.FromX))
	h = game.CombineHash(h, uint64(m.FromY))
	h = game.CombineHash(h, uint64(m.StepX))
	h = game.CombineHash(h, uint64(m.StepY))
	h = game.CombineHash(h, uint64(m.RemoveX))
	h = game.CombineHash(h, uint64(m.RemoveY))
	return h
}

// String renders "fromX fromY stepX stepY removeX removeY".
func (m Move) String() string {
	return fmt.Sprintf("%d %d %d %d %d %d", m.FromX, m.FromY, m.StepX, m.StepY, m.RemoveX, m.RemoveY)
}

// State is an Isola position on a Side x Side board.
type State struct {
	side         int
	board        []byte // 0 empty, 1/2 player, 3 removed
	pos          [2][2]int // pos[player] = {x, y}
	playerWhoMoved int
	playerToMove int
}

// NewFromString parses a Side*Side-long row-major string of '1', '2',
// '_', '#' into a board. rowLen is the number of characters per row
// (e.g. 7 for the 7x7 scenario board); the board must be square.
func NewFromString(s string, rowLen, playerToMove int) (*State, error) {
	if rowLen <= 0 || len(s) != rowLen*rowLen {
		return nil, errors.Errorf("isola: initialization string length must be a perfect square matching row length %d", rowLen)
	}
	st := &State{side: rowLen, board: make([]byte, rowLen*rowLen), playerToMove: playerToMove, playerWhoMoved: 1 - playerToMove}
	found := [2]bool{}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch c {
		case '1':
			st.board[i] = mark(0)
			st.pos[0] = [2]int{i % rowLen, i / rowLen}
			found[0] = true
		case '2':
			st.board[i] = mark(1)
			st.pos[1] = [2]int{i % rowLen, i / rowLen}
			found[1] = true
		case '_':
			st.board[i] = empty
		case '#':
			st.board[i] = removed
		default:
			return nil, errors.Errorf("isola: undefined symbol used: %q", c)
		}
	}
	if !found[0] || !found[1] {
		return nil, errors.New("isola: both players must be present on the board")
	}
	return st, nil
}

// Clone returns an independent copy.
func (s *State) Clone() game.State {
	clone := *s
	clone.board = append([]byte(nil), s.board...)
	return &clone
}

func (s *State) at(x, y int) byte { return s.board[y*s.side+x] }
func (s *State) setAt(x, y int, v byte) { s.board[y*s.side+x] = v }

func (s *State) inBounds(x, y int) bool {
	return x >= 0 && x < s.side && y >= 0 && y < s.side
}

// legalSteps lists every empty cell one step (including diagonally) from
// (x, y).
func (s *State) legalSteps(x, y int) [][2]int {
	var steps [][2]int
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx, ny := x+dx, y+dy
			if s.inBounds(nx, ny) && s.at(nx, ny) == empty {
				steps = append(steps, [2]int{nx, ny})
			}
		}
	}
	return steps
}

// numLegalSteps counts player's step options without allocating.
func (s *State) numLegalSteps(player int) int {
	x, y := s.pos[player][0], s.pos[player][1]
	n := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx, ny := x+dx, y+dy
			if s.inBounds(nx, ny) && s.at(nx, ny) == empty {
				n++
			}
		}
	}
	return n
}

// legalRemoves lists every cell that is empty or occupied by player
// (i.e. every cell a move by player may legally remove).
func (s *State) legalRemoves(player int) [][2]int {
	var cells [][2]int
	playerMark := mark(player)
	for y := 0; y < s.side; y++ {
		for x := 0; x < s.side; x++ {
			v := s.at(x, y)
			if v == empty || v == playerMark {
				cells = append(cells, [2]int{x, y})
			}
		}
	}
	return cells
}

// LegalMoves enumerates every (step, remove) pair where the removed
// cell differs from the destination step, truncated to maxMoves.
func (s *State) LegalMoves(maxMoves int) []game.Move {
	player := s.playerToMove
	fromX, fromY := s.pos[player][0], s.pos[player][1]
	steps := s.legalSteps(fromX, fromY)
	removes := s.legalRemoves(player)

	var moves []game.Move
	for _, step := range steps {
		for _, remove := range removes {
			if step == remove {
				continue
			}
			moves = append(moves, Move{
				FromX: fromX, FromY: fromY,
				StepX: step[0], StepY: step[1],
				RemoveX: remove[0], RemoveY: remove[1],
			})
			if maxMoves > 0 && len(moves) >= maxMoves {
				return moves
			}
		}
	}
	return moves
}

// MakeMove applies the step and removal and flips PlayerToMove.
func (s *State) MakeMove(m game.Move) {
	mv := m.(Move)
	player := s.playerToMove
	s.setAt(mv.FromX, mv.FromY, empty)
	s.setAt(mv.StepX, mv.StepY, mark(player))
	s.setAt(mv.RemoveX, mv.RemoveY, removed)
	s.pos[player] = [2]int{mv.StepX, mv.StepY}
	s.playerWhoMoved = player
	s.playerToMove = s.NextPlayer(player)
}

// UndoMove reverses the step and removal and restores the previous
// mover.
func (s *State) UndoMove(m game.Move) {
	mv := m.(Move)
	player := s.PrevPlayer(s.playerToMove)
	s.setAt(mv.RemoveX, mv.RemoveY, empty)
	s.setAt(mv.FromX, mv.FromY, mark(player))
	s.setAt(mv.StepX, mv.StepY, empty)
	s.pos[player] = [2]int{mv.FromX, mv.FromY}
	s.playerWhoMoved = s.PrevPlayer(player)
	s.playerToMove = player
}

// IsTerminal reports whether player has no legal step left.
func (s *State) IsTerminal() bool {
	return s.numLegalSteps(s.playerToMove) == 0
}

// IsWinner reports whether player just moved and stranded the opponent.
func (s *State) IsWinner(player int) bool {
	return s.playerWhoMoved == player && s.numLegalSteps(s.NextPlayer(player)) == 0
}

// Goodness scores from PlayerToMove's perspective: a decisive win/loss
// saturates to +-game.WinThreshold, otherwise it's the difference between
// the mover's and opponent's step-option scores (getScore), per the
// original.
func (s *State) Goodness() int {
	player := s.playerToMove
	enemy := s.NextPlayer(player)
	if s.IsWinner(player) {
		return game.WinThreshold
	}
	if s.IsWinner(enemy) {
		return -game.WinThreshold
	}
	return getScore(s.numLegalSteps(player)) - getScore(s.numLegalSteps(enemy))
}

// Hash is an FNV-1a digest over the board plus PlayerToMove.
func (s *State) Hash() uint64 {
	var h uint64 = 14695981039346656037
	for _, c := range s.board {
		h ^= uint64(c)
		h *= 1099511628211
	}
	return game.CombineHash(h, uint64(s.playerToMove))
}

// PlayerToMove returns the index of the side to move.
func (s *State) PlayerToMove() int { return s.playerToMove }

// SetPlayerToMove overrides the side to move.
func (s *State) SetPlayerToMove(player int) { s.playerToMove = player }

// NumPlayers is always 2.
func (s *State) NumPlayers() int { return 2 }

// Teams returns distinct labels: Isola is zero-sum two-player.
func (s *State) Teams() []int { return []int{0, 1} }

// NextPlayer and PrevPlayer both flip between the only two players.
func (s *State) NextPlayer(player int) int { return 1 - player }
func (s *State) PrevPlayer(player int) int { return 1 - player }

// SwapPlayers exchanges the two players' board marks and tracked
// positions, the harness's mechanism for varying which physical engine
// plays which side across a tournament.
func (s *State) SwapPlayers() {
	for i, v := range s.board {
		switch v {
		case mark(0):
			s.board[i] = mark(1)
		case mark(1):
			s.board[i] = mark(0)
		}
	}
	s.pos[0], s.pos[1] = s.pos[1], s.pos[0]
	if s.playerWhoMoved == 0 || s.playerWhoMoved == 1 {
		s.playerWhoMoved = 1 - s.playerWhoMoved
	}
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
			case removed:
				b.WriteByte('#')
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
// tokens (0 empty, 1/2 player, -1 removed) for the subprocess bridge.
func (s *State) ToExecutableFormat() string {
	var b strings.Builder
	for i, v := range s.board {
		if i > 0 {
			b.WriteByte(' ')
		}
		switch v {
		case removed:
			b.WriteString("-1")
		default:
			fmt.Fprintf(&b, "%d", v)
		}
	}
	return b.String()
}

// Package tictactoe is a worked example game.State/game.Move
// implementation: 3x3 tic-tac-toe, grounded directly on the original
// library's TicTacToeState/TicTacToeMove (examples/tic_tac_toe.cpp).
package tictactoe

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/stelmaszczyk/gtsago/game"
)

// Side is the board dimension; the board has Side*Side cells.
const Side = 3

const empty = 0

// line is a precomputed set of Side board indexes that must match for a
// win: the three rows, three columns, and two diagonals, mirroring the
// original's LINES table.
type line [Side]int

var lines = buildLines()

func buildLines() []line {
	var ls []line
	for y := 0; y < Side; y++ {
		var l line
		for x := 0; x < Side; x++ {
			l[x] = y*Side + x
		}
		ls = append(ls, l)
	}
	for x := 0; x < Side; x++ {
		var l line
		for y := 0; y < Side; y++ {
			l[y] = y*Side + x
		}
		ls = append(ls, l)
	}
	var diag line
	for i := 0; i < Side; i++ {
		diag[i] = i*Side + i
	}
	ls = append(ls, diag)
	var anti line
	for i := 0; i < Side; i++ {
		anti[i] = i*Side + (Side - 1 - i)
	}
	ls = append(ls, anti)
	return ls
}

// Move is a coordinate move: place the side-to-move's mark at (X, Y).
type Move struct {
	X, Y int
}

// Equals reports whether other is the same coordinate.
func (m Move) Equals(other game.Move) bool {
	o, ok := other.(Move)
	return ok && o.X == m.X && o.Y == m.Y
}

// Hash combines X and Y into a stable 64-bit digest.
func (m Move) Hash() uint64 {
	return uint64(m.Y)*Side + uint64(m.X)
}

// String renders "X Y", matching §6.1's space-separated coordinate form.
func (m Move) String() string {
	return fmt.Sprintf("%d %d", m.X, m.Y)
}

// MoveReader reads a "X Y" coordinate pair from r, the Go form of the
// original's TicTacToeMoveReader.
type MoveReader struct{}

// ReadMove parses one whitespace-separated "X Y" pair from r.
func (MoveReader) ReadMove(r io.Reader) (game.Move, error) {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)
	x, err := nextInt(scanner)
	if err != nil {
		return nil, errors.Wrap(err, "tictactoe: reading move x")
	}
	y, err := nextInt(scanner)
	if err != nil {
		return nil, errors.Wrap(err, "tictactoe: reading move y")
	}
	return Move{X: x, Y: y}, nil
}

func nextInt(scanner *bufio.Scanner) (int, error) {
	if !scanner.Scan() {
		return 0, errors.New("tictactoe: unexpected end of input")
	}
	return strconv.Atoi(scanner.Text())
}

// State is a 3x3 tic-tac-toe board. The zero value is an empty board
// with player 0 to move, the same position New returns.
type State struct {
	board        [Side * Side]byte // 0 empty, 1 player 0 ('X'), 2 player 1 ('O')
	playerToMove int
}

// New returns an empty board with player 0 to move.
func New() *State {
	return &State{}
}

// NewFromString parses a Side*Side-long string of 'X', 'O', '_' into a
// board, matching the original's constructor. playerToMove is not
// encoded in the string, so the caller supplies it directly.
func NewFromString(s string, playerToMove int) (*State, error) {
	if len(s) != Side*Side {
		return nil, errors.Errorf("tictactoe: initialization string length must be %d", Side*Side)
	}
	st := &State{playerToMove: playerToMove}
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case 'X':
			st.board[i] = 1
		case 'O':
			st.board[i] = 2
		case '_':
			st.board[i] = empty
		default:
			return nil, errors.Errorf("tictactoe: undefined symbol used: %q", s[i])
		}
	}
	return st, nil
}

func mark(player int) byte { return byte(player + 1) }

func playerChar(player int) byte {
	if player == 0 {
		return 'X'
	}
	return 'O'
}

// Clone returns an independent copy.
func (s *State) Clone() game.State {
	clone := *s
	return &clone
}

// LegalMoves lists every empty cell, row-major, truncated to maxMoves if
// positive.
func (s *State) LegalMoves(maxMoves int) []game.Move {
	var moves []game.Move
	for y := 0; y < Side; y++ {
		for x := 0; x < Side; x++ {
			if s.board[y*Side+x] == empty {
				moves = append(moves, Move{X: x, Y: y})
				if maxMoves > 0 && len(moves) == maxMoves {
					return moves
				}
			}
		}
	}
	return moves
}

// MakeMove places the side-to-move's mark and flips PlayerToMove.
func (s *State) MakeMove(m game.Move) {
	mv := m.(Move)
	s.board[mv.Y*Side+mv.X] = mark(s.playerToMove)
	s.playerToMove = s.NextPlayer(s.playerToMove)
}

// UndoMove clears the cell m occupies and restores the previous mover.
func (s *State) UndoMove(m game.Move) {
	mv := m.(Move)
	s.board[mv.Y*Side+mv.X] = empty
	s.playerToMove = s.PrevPlayer(s.playerToMove)
}

// IsTerminal reports a full board or a completed line for either player.
func (s *State) IsTerminal() bool {
	if !s.hasEmptySpace() {
		return true
	}
	return s.IsWinner(0) || s.IsWinner(1)
}

// IsWinner reports whether player has completed a full line.
func (s *State) IsWinner(player int) bool {
	want := mark(player)
	for _, l := range lines {
		complete := true
		for _, idx := range l {
			if s.board[idx] != want {
				complete = false
				break
			}
		}
		if complete {
			return true
		}
	}
	return false
}

// Goodness scores the position from PlayerToMove's perspective. A
// position where a player has completed a line scores +-game.WinThreshold,
// as the game.State contract requires. Otherwise each line contributes
// per the original's get_goodness: a one-away-from-complete open line is
// worth +-Side, a two-away untouched-by-the-enemy line is worth +-1.
func (s *State) Goodness() int {
	player := s.playerToMove
	enemy := s.NextPlayer(player)
	if s.IsWinner(player) {
		return game.WinThreshold
	}
	if s.IsWinner(enemy) {
		return -game.WinThreshold
	}
	goodness := 0
	for _, l := range lines {
		playerPlaces, enemyPlaces := s.countOnLine(l, player, enemy)
		switch {
		case playerPlaces == Side:
			goodness += Side * Side
		case enemyPlaces == Side:
			goodness -= Side * Side
		case playerPlaces == Side-1 && enemyPlaces == 0:
			goodness += Side
		case enemyPlaces == Side-1 && playerPlaces == 0:
			goodness -= Side
		case playerPlaces == Side-2 && enemyPlaces == 0:
			goodness++
		case enemyPlaces == Side-2 && playerPlaces == 0:
			goodness--
		}
	}
	return goodness
}

func (s *State) countOnLine(l line, player, enemy int) (playerPlaces, enemyPlaces int) {
	playerMark, enemyMark := mark(player), mark(enemy)
	for _, idx := range l {
		switch s.board[idx] {
		case playerMark:
			playerPlaces++
		case enemyMark:
			enemyPlaces++
		}
	}
	return
}

func (s *State) hasEmptySpace() bool {
	for _, c := range s.board {
		if c == empty {
			return true
		}
	}
	return false
}

// Hash is an FNV-1a digest over the board bytes and PlayerToMove.
func (s *State) Hash() uint64 {
	var h uint64 = 14695981039346656037
	for _, c := range s.board {
		h ^= uint64(c)
		h *= 1099511628211
	}
	h = game.CombineHash(h, uint64(s.playerToMove))
	return h
}

// PlayerToMove returns the index of the side to move.
func (s *State) PlayerToMove() int { return s.playerToMove }

// SetPlayerToMove overrides the side to move.
func (s *State) SetPlayerToMove(player int) { s.playerToMove = player }

// NumPlayers is always 2.
func (s *State) NumPlayers() int { return 2 }

// Teams returns distinct labels: tic-tac-toe is zero-sum two-player.
func (s *State) Teams() []int { return []int{0, 1} }

// NextPlayer and PrevPlayer both flip between the only two players.
func (s *State) NextPlayer(player int) int { return 1 - player }
func (s *State) PrevPlayer(player int) int { return 1 - player }

// SwapPlayers relabels every occupied cell to the other player, the
// harness's mechanism for varying which physical engine plays which
// mark across a tournament.
func (s *State) SwapPlayers() {
	for i, c := range s.board {
		switch c {
		case mark(0):
			s.board[i] = mark(1)
		case mark(1):
			s.board[i] = mark(0)
		}
	}
}

// String renders the board as Side rows of characters, followed by a
// line naming the side to move, per §6.1.
func (s *State) String() string {
	var b strings.Builder
	for y := 0; y < Side; y++ {
		for x := 0; x < Side; x++ {
			c := s.board[y*Side+x]
			if c == empty {
				b.WriteByte('_')
			} else {
				b.WriteByte(playerChar(int(c) - 1))
			}
		}
		b.WriteByte('\n')
	}
	fmt.Fprintf(&b, "%c to move\n", playerChar(s.playerToMove))
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

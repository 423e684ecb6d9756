package connectfour

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func emptyRow() string { return "________" }

func TestNewFromStringRejectsWrongLength(t *testing.T) {
	_, err := NewFromString("too short", 0)
	require.Error(t, err)
}

func TestLegalMovesOnEmptyBoard(t *testing.T) {
	st := New()
	moves := st.LegalMoves(0)
	assert.Len(t, moves, Width)
}

func TestMakeMoveUndoMoveRestoresState(t *testing.T) {
	st := New()
	before := st.String()
	m := Move{X: 3}
	st.MakeMove(m)
	assert.NotEqual(t, before, st.String())
	st.UndoMove(m)
	assert.Equal(t, before, st.String())
}

func TestHorizontalFourInARowWins(t *testing.T) {
	rows := emptyRow() + emptyRow() + emptyRow() + emptyRow() + emptyRow() + emptyRow() + "_1111___"
	st, err := NewFromString(rows, 1)
	require.NoError(t, err)
	assert.True(t, st.IsWinner(0))
	assert.False(t, st.IsWinner(1))
}

func TestGoodnessZeroWhenNonTerminal(t *testing.T) {
	st := New()
	assert.Equal(t, 0, st.Goodness())
}

func TestSwapPlayersExchangesBoards(t *testing.T) {
	rows := emptyRow() + emptyRow() + emptyRow() + emptyRow() + emptyRow() + emptyRow() + "_1111___"
	st, err := NewFromString(rows, 1)
	require.NoError(t, err)
	require.True(t, st.IsWinner(0))
	st.SwapPlayers()
	assert.True(t, st.IsWinner(1))
	assert.False(t, st.IsWinner(0))
}

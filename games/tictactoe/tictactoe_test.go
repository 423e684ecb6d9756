package tictactoe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stelmaszczyk/gtsago/game"
)

func TestNewFromStringRejectsWrongLength(t *testing.T) {
	_, err := NewFromString("XX_", 0)
	require.Error(t, err)
}

func TestNewFromStringRejectsUnknownSymbol(t *testing.T) {
	_, err := NewFromString("XX_?O____", 0)
	require.Error(t, err)
}

func TestLegalMovesCountsEmptyCells(t *testing.T) {
	st, err := NewFromString("XX_"+"_O_"+"___", 0)
	require.NoError(t, err)
	moves := st.LegalMoves(0)
	assert.Len(t, moves, 6)
}

func TestMakeMoveUndoMoveRestoresState(t *testing.T) {
	st, err := NewFromString("XX_" + "_O_" + "___", 0)
	require.NoError(t, err)
	before := st.String()
	m := Move{X: 2, Y: 0}
	st.MakeMove(m)
	assert.NotEqual(t, before, st.String())
	st.UndoMove(m)
	assert.Equal(t, before, st.String())
}

func TestWinningFinishIsFound(t *testing.T) {
	// "XX_/_O_/___", X to move -- spec.md scenario 1.
	st, err := NewFromString("XX_"+"_O_"+"___", 0)
	require.NoError(t, err)
	var winningMove game.Move
	for _, m := range st.LegalMoves(0) {
		st.MakeMove(m)
		if st.IsWinner(0) {
			winningMove = m
		}
		st.UndoMove(m)
	}
	require.NotNil(t, winningMove)
	assert.Equal(t, Move{X: 2, Y: 0}, winningMove)
}

func TestBlockingMoveIsForced(t *testing.T) {
	// "O__/OX_/___", X to move -- spec.md scenario 2: only (0,2) blocks
	// O's vertical threat in column 0.
	st, err := NewFromString("O__"+"OX_"+"___", 0)
	require.NoError(t, err)
	blocksThreat := func(m Move) bool {
		return m.X == 0 && m.Y == 2
	}
	found := false
	for _, m := range st.LegalMoves(0) {
		if blocksThreat(m.(Move)) {
			found = true
			continue
		}
		// Any other move lets O complete column 0 at (0,2).
		reply := Move{X: 0, Y: 2}
		st.MakeMove(m)
		st.MakeMove(reply)
		assert.True(t, st.IsWinner(1), "after X plays %v, O must win at (0,2)", m)
		st.UndoMove(reply)
		st.UndoMove(m)
	}
	assert.True(t, found, "blocking move (0,2) must be legal")
}

func TestTerminalOnFullBoard(t *testing.T) {
	st, err := NewFromString("XOX"+"XOX"+"OXO", 0)
	require.NoError(t, err)
	assert.True(t, st.IsTerminal())
	assert.False(t, st.IsWinner(0))
	assert.False(t, st.IsWinner(1))
}

func TestSwapPlayersFlipsMarks(t *testing.T) {
	st, err := NewFromString("XX_"+"_O_"+"___", 0)
	require.NoError(t, err)
	before := st.IsWinner(0)
	st.SwapPlayers()
	assert.Equal(t, before, st.IsWinner(1))
}

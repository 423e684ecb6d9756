package chessadapter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stelmaszczyk/gtsago/ab"
	"github.com/stelmaszczyk/gtsago/game"
)

func TestStartingPositionHasTwentyLegalMoves(t *testing.T) {
	st := New()
	assert.Len(t, st.LegalMoves(0), 20)
	assert.Equal(t, 0, st.PlayerToMove())
	assert.False(t, st.IsTerminal())
}

func TestMakeMoveUndoMoveRestoresState(t *testing.T) {
	st := New()
	before := st.String()
	m := st.LegalMoves(0)[0]
	st.MakeMove(m)
	assert.NotEqual(t, before, st.String())
	assert.Equal(t, 1, st.PlayerToMove())
	st.UndoMove(m)
	assert.Equal(t, before, st.String())
	assert.Equal(t, 0, st.PlayerToMove())
}

func TestFoolsMateIsTerminalAndWinnerIsBlack(t *testing.T) {
	// 1. f3 e5 2. g4 Qh4#: White to move, already checkmated.
	st, err := NewFromFEN("rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3")
	require.NoError(t, err)

	assert.True(t, st.IsTerminal())
	assert.True(t, st.IsWinner(1))
	assert.False(t, st.IsWinner(0))
	assert.Equal(t, -game.WinThreshold, st.Goodness())
}

func TestABEngineReturnsLegalMoveFromStartingPosition(t *testing.T) {
	st := New()

	conf := ab.DefaultConfig()
	conf.MaxDepth = 2
	e := ab.New(conf)

	move, err := e.GetMove(st)
	require.NoError(t, err)

	legal := st.LegalMoves(0)
	found := false
	for _, m := range legal {
		if m.Equals(move) {
			found = true
			break
		}
	}
	assert.True(t, found, "engine must return a move from LegalMoves")
}

func TestGetMoveReturnsErrorOnTerminalState(t *testing.T) {
	st, err := NewFromFEN("rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3")
	require.NoError(t, err)

	e := ab.New(ab.DefaultConfig())
	_, err = e.GetMove(st)
	require.Error(t, err)
}

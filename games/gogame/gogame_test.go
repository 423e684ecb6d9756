package gogame

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFromStringRejectsWrongLength(t *testing.T) {
	_, err := NewFromString("1_2", 5, 0)
	require.Error(t, err)
}

func TestPassTwiceEndsTheGame(t *testing.T) {
	st, err := NewFromString("_____"+"_____"+"_____"+"_____"+"_____", 5, 0)
	require.NoError(t, err)
	assert.False(t, st.IsTerminal())
	st.MakeMove(Pass)
	assert.False(t, st.IsTerminal())
	st.MakeMove(Pass)
	assert.True(t, st.IsTerminal())
}

func TestCaptureRemovesSurroundedStone(t *testing.T) {
	// A single player-2 stone at (1,1) surrounded by player 1 on all
	// four orthogonal neighbors is captured when the last liberty is
	// filled.
	grid := "_1___" +
		"12___" +
		"_1___" +
		"_____" +
		"_____"
	st, err := NewFromString(grid, 5, 0)
	require.NoError(t, err)
	require.Equal(t, byte(2), st.at(1, 1))

	st.MakeMove(Move{X: 2, Y: 1}) // fills the last liberty at (2,1)
	assert.Equal(t, byte(empty), st.at(1, 1))
}

func TestMakeMoveUndoMoveRestoresState(t *testing.T) {
	st, err := NewFromString("_____"+"_____"+"_____"+"_____"+"_____", 5, 0)
	require.NoError(t, err)
	before := st.String()
	m := Move{X: 2, Y: 2}
	st.MakeMove(m)
	assert.NotEqual(t, before, st.String())
	st.UndoMove(m)
	assert.Equal(t, before, st.String())
}

func TestSuicideIsPrevented(t *testing.T) {
	// Player-1 stones surround a single empty point at (1,1); playing
	// there for player 2 (index 1) is a suicide and the stone is
	// immediately cleared.
	grid := "_1___" +
		"1_1__" +
		"_1___" +
		"_____" +
		"_____"
	st, err := NewFromString(grid, 5, 1)
	require.NoError(t, err)
	st.MakeMove(Move{X: 1, Y: 1})
	assert.Equal(t, byte(empty), st.at(1, 1))
}

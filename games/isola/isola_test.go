package isola

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFromStringRejectsWrongLength(t *testing.T) {
	_, err := NewFromString("12_", 3, 0)
	require.Error(t, err)
}

func TestLegalMovesStartFromOwnPosition(t *testing.T) {
	// spec.md scenario 5: 7x7 grid, player 2 at (3,0), player 1 at
	// (3,6), player 1 to move -- every legal move must start from (3,6).
	grid := "___2___" +
		"_______" +
		"_______" +
		"_______" +
		"_______" +
		"_______" +
		"___1___"
	st, err := NewFromString(grid, 7, 0)
	require.NoError(t, err)

	moves := st.LegalMoves(0)
	require.NotEmpty(t, moves)
	for _, m := range moves {
		mv := m.(Move)
		assert.Equal(t, 3, mv.FromX)
		assert.Equal(t, 6, mv.FromY)
	}
}

func TestMakeMoveUndoMoveRestoresState(t *testing.T) {
	grid := "___2___" +
		"_______" +
		"_______" +
		"_______" +
		"_______" +
		"_______" +
		"___1___"
	st, err := NewFromString(grid, 7, 0)
	require.NoError(t, err)

	before := st.String()
	m := st.LegalMoves(1)[0]
	st.MakeMove(m)
	assert.NotEqual(t, before, st.String())
	st.UndoMove(m)
	assert.Equal(t, before, st.String())
}

func TestGetScoreRanking(t *testing.T) {
	assert.True(t, getScore(0) < getScore(1))
	assert.True(t, getScore(1) < getScore(2))
	assert.True(t, getScore(2) < getScore(3))
}

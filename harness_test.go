package gtsago_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stelmaszczyk/gtsago"
	"github.com/stelmaszczyk/gtsago/ab"
	"github.com/stelmaszczyk/gtsago/games/isola"
	"github.com/stelmaszczyk/gtsago/games/tictactoe"
	"github.com/stelmaszczyk/gtsago/mcts"
)

func TestNewHarnessRejectsWrongEngineCount(t *testing.T) {
	root := tictactoe.New()
	_, err := gtsago.NewHarness(root, []gtsago.Engine{ab.New(ab.DefaultConfig())}, 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, gtsago.ErrConfig)
}

func TestRunTwoPerfectEnginesAlwaysDraw(t *testing.T) {
	// spec.md scenario 3: empty 3x3 grid, two games with engines
	// alternating sides -- both games are draws.
	conf := ab.DefaultConfig()
	conf.MaxDepth = 9
	conf.MaxSeconds = 5

	engines := []gtsago.Engine{ab.New(conf), ab.New(conf)}
	h, err := gtsago.NewHarness(tictactoe.New(), engines, 2)
	require.NoError(t, err)

	outcome := h.Run()
	assert.Equal(t, 2, outcome.Draws)
	assert.Equal(t, []int{0, 0}, outcome.Wins)
}

func TestRunIsolaForceLosePositionCompletes(t *testing.T) {
	// spec.md scenario 5: 7x7 grid, player 2 at (3,0), player 1 at
	// (3,6), player 1 to move -- a one-game harness run between an AB
	// and an MCTS engine must complete and be tallied exactly once. Game 0
	// rotates the side to move and swaps the players, so its first move
	// is made from (3,6) by the engine in slot 1.
	grid := "___2___" +
		"_______" +
		"_______" +
		"_______" +
		"_______" +
		"_______" +
		"___1___"
	root, err := isola.NewFromString(grid, 7, 0)
	require.NoError(t, err)

	abConf := ab.DefaultConfig()
	abConf.MaxSeconds = 1
	mctsConf := mcts.DefaultConfig()
	mctsConf.MaxSeconds = 1
	mctsConf.Seed = 1

	engines := []gtsago.Engine{ab.New(abConf), mcts.New(mctsConf)}
	h, err := gtsago.NewHarness(root, engines, 1)
	require.NoError(t, err)

	outcome := h.Run()
	assert.Equal(t, 1, outcome.Wins[0]+outcome.Wins[1]+outcome.Draws)
}

package mcts_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stelmaszczyk/gtsago/games/connectfour"
	"github.com/stelmaszczyk/gtsago/games/gogame"
	"github.com/stelmaszczyk/gtsago/games/tictactoe"
	"github.com/stelmaszczyk/gtsago/mcts"
)

func TestGetMoveFinishesWinningLine(t *testing.T) {
	// spec.md scenario 1: "XX_/_O_/___", X to move -> (2, 0).
	st, err := tictactoe.NewFromString("XX_"+"_O_"+"___", 0)
	require.NoError(t, err)

	conf := mcts.DefaultConfig()
	conf.MaxSimulations = 4000
	conf.Seed = 1
	e := mcts.New(conf)

	move, err := e.GetMove(st)
	require.NoError(t, err)
	assert.Equal(t, tictactoe.Move{X: 2, Y: 0}, move)
}

func TestConnectFourWinningDrop(t *testing.T) {
	// spec.md scenario 4: player 1 to move completes a vertical
	// four-in-a-row by dropping into column 6.
	grid := "___12___" +
		"___11___" +
		"___21___" +
		"___21___" +
		"__112_1_" +
		"_222121_" +
		"_2211212"
	st, err := connectfour.NewFromString(grid, 0)
	require.NoError(t, err)

	conf := mcts.DefaultConfig()
	conf.MaxSimulations = 20000
	conf.Seed = 1
	e := mcts.New(conf)

	move, err := e.GetMove(st)
	require.NoError(t, err)
	assert.Equal(t, connectfour.Move{X: 6}, move)
}

func TestGoCapture(t *testing.T) {
	// spec.md scenario 6: 5x5 Go, player 1 to move -> (1, 1).
	grid := "__1__" +
		"__212" +
		"_1212" +
		"_1212" +
		"__12_"
	st, err := gogame.NewFromString(grid, 5, 0)
	require.NoError(t, err)

	conf := mcts.DefaultConfig()
	conf.MaxSimulations = 20000
	conf.Seed = 1
	e := mcts.New(conf)

	move, err := e.GetMove(st)
	require.NoError(t, err)
	assert.Equal(t, gogame.Move{X: 1, Y: 1}, move)
}

func TestGetMoveReturnsErrorOnTerminalState(t *testing.T) {
	st, err := tictactoe.NewFromString("XOX"+"XOX"+"OXO", 0)
	require.NoError(t, err)

	e := mcts.New(mcts.DefaultConfig())
	_, err = e.GetMove(st)
	require.Error(t, err)
}

func TestZeroVirtualVisitsStillConverges(t *testing.T) {
	// §8 invariant 9 / §9 Open Question: seeding is optional, convergence
	// must hold either way.
	st, err := tictactoe.NewFromString("XX_"+"_O_"+"___", 0)
	require.NoError(t, err)

	conf := mcts.DefaultConfig()
	conf.MaxSimulations = 4000
	conf.VirtualVisits = 0
	conf.Seed = 1
	e := mcts.New(conf)

	move, err := e.GetMove(st)
	require.NoError(t, err)
	assert.Equal(t, tictactoe.Move{X: 2, Y: 0}, move)
}

func TestGetMoveSucceedsAfterReset(t *testing.T) {
	st, err := tictactoe.NewFromString("XX_"+"_O_"+"___", 0)
	require.NoError(t, err)

	conf := mcts.DefaultConfig()
	conf.MaxSimulations = 100
	e := mcts.New(conf)

	_, err = e.GetMove(st)
	require.NoError(t, err)
	e.Reset()

	_, err = e.GetMove(st)
	require.NoError(t, err)
}

// Command gtsago is an informative CLI demo driver (§6.2): it plays one
// game of tic-tac-toe between two configured engines and prints the
// move-by-move transcript. It is not part of the core library -- no
// flag here is prescribed by gtsago itself.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/stelmaszczyk/gtsago"
	"github.com/stelmaszczyk/gtsago/ab"
	"github.com/stelmaszczyk/gtsago/games/tictactoe"
	"github.com/stelmaszczyk/gtsago/mcts"
)

var (
	mode1   = flag.String("mode1", "ab", "engine for player 1: ab or mcts")
	mode2   = flag.String("mode2", "mcts", "engine for player 2: ab or mcts")
	seconds = flag.Float64("seconds", 1, "per-move search budget in seconds")
	seed    = flag.Int64("seed", 0, "MCTS rollout RNG seed (0: seed from the clock)")
	verbose = flag.Bool("v", false, "print each engine's diagnostic log after every move")
)

func newEngine(mode string, seconds float64, seed int64) gtsago.Engine {
	switch mode {
	case "ab":
		conf := ab.DefaultConfig()
		conf.MaxSeconds = seconds
		return ab.New(conf)
	case "mcts":
		conf := mcts.DefaultConfig()
		conf.MaxSeconds = seconds
		conf.Seed = seed
		return mcts.New(conf)
	default:
		log.Fatalf("gtsago: unknown mode %q (want ab or mcts)", mode)
		return nil
	}
}

func main() {
	flag.Parse()

	engines := []gtsago.Engine{
		newEngine(*mode1, *seconds, *seed),
		newEngine(*mode2, *seconds, *seed),
	}

	state := tictactoe.New()
	fmt.Print(state)

	for !state.IsTerminal() {
		engine := engines[state.PlayerToMove()]
		move, err := engine.GetMove(state.Clone())
		if err != nil {
			fmt.Fprintf(os.Stderr, "gtsago: %s failed: %v\n", engine, err)
			os.Exit(1)
		}
		state.MakeMove(move)
		fmt.Printf("%s plays %v\n", engine, move)
		fmt.Print(state)
		if *verbose {
			fmt.Print(engine.ReadLog())
		}
	}

	switch {
	case state.IsWinner(0):
		fmt.Println("player 1 wins")
	case state.IsWinner(1):
		fmt.Println("player 2 wins")
	default:
		fmt.Println("draw")
	}
}

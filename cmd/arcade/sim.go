package main

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/arcade-hub/internal/core"
	"github.com/vovakirdan/arcade-hub/internal/engine"
	"github.com/vovakirdan/arcade-hub/internal/registry"
)

var (
	flagTicks    int
	flagTapRate  float64
	flagRealtime bool
	flagReport   bool
	flagRender   bool
)

var simCmd = &cobra.Command{
	Use:   "sim <game>",
	Short: "Run a game headless",
	Long: `Run a game without a terminal UI, feeding it seeded random key taps.
The same --seed always produces the same session.

By default ticks are stepped as fast as possible. With --realtime the
game runs on the fixed-timestep loop at its own tick rate.

Examples:
  arcade sim snake --ticks 2000 --seed 42
  arcade sim 2048 --seed 7 --render
  arcade sim tron --realtime --ticks 300
  arcade sim simon --report       # apply the outcome to your profile`,
	Args: cobra.ExactArgs(1),
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagTicks, "ticks", 1000, "Maximum number of ticks to run")
	simCmd.Flags().Float64Var(&flagTapRate, "tap-rate", 0.3, "Chance of a random key tap per tick")
	simCmd.Flags().BoolVar(&flagRealtime, "realtime", false, "Run on the fixed-timestep loop")
	simCmd.Flags().BoolVar(&flagReport, "report", false, "Report the outcome to the profile")
	simCmd.Flags().BoolVar(&flagRender, "render", false, "Print the final screen")
}

var simKeys = []core.Key{core.KeyUp, core.KeyDown, core.KeyLeft, core.KeyRight, core.KeyAction, core.KeyConfirm}

// tapper feeds seeded random taps into a latch.
type tapper struct {
	rng  *rand.Rand
	rate float64
}

func newTapper(seed int64, rate float64) *tapper {
	return &tapper{rng: rand.New(rand.NewPCG(uint64(seed), 1)), rate: rate}
}

func (t *tapper) feed(latch *core.InputLatch) {
	if t.rng.Float64() < t.rate {
		latch.Tap(simKeys[t.rng.IntN(len(simKeys))])
	}
}

// simulate steps game for at most ticks ticks and returns the final state.
func simulate(game registry.Game, cfg core.RuntimeConfig, ticks int, taps *tapper) (core.GameState, error) {
	game.Reset(cfg)
	if err := game.Start(); err != nil {
		return core.GameState{}, err
	}
	latch := core.NewInputLatch()
	for range ticks {
		taps.feed(latch)
		in := latch.Snapshot()
		if keys := in.TriggeredKeys(); len(keys) > 0 {
			log.Debug("sim input", "game", game.ID(), "keys", keys)
		}
		if res := game.Step(in); res.State.GameOver() {
			break
		}
	}
	return game.State(), nil
}

// simulateRealtime runs game on an engine.Driver until it ends or the
// tick limit has elapsed in wall time.
func simulateRealtime(game registry.Game, cfg core.RuntimeConfig, ticks int, taps *tapper) (core.GameState, error) {
	game.Reset(cfg)
	driver := engine.NewDriver(game, core.NewInputLatch())

	limit := time.Duration(ticks) * time.Second / time.Duration(game.TickRate())
	ctx, cancel := context.WithTimeout(context.Background(), limit)
	defer cancel()

	if err := driver.Start(); err != nil {
		return core.GameState{}, err
	}

	go func() {
		ticker := time.NewTicker(time.Second / time.Duration(game.TickRate()))
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				taps.feed(driver.Latch())
			}
		}
	}()

	state, err := driver.Wait(ctx)
	if err != nil && ctx.Err() == nil {
		return state, err
	}
	return state, nil
}

func runSim(_ *cobra.Command, args []string) error {
	gameID := args[0]
	if err := requireGame(gameID); err != nil {
		return err
	}
	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	cfg := core.DefaultConfig()
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	cfg.Difficulty = flagDifficulty
	taps := newTapper(flagSeed, flagTapRate)

	run := simulate
	if flagRealtime {
		run = simulateRealtime
	}
	state, err := run(game, cfg, flagTicks, taps)
	if err != nil {
		return fmt.Errorf("sim %s: %w", gameID, err)
	}

	if flagRender {
		screen := core.NewScreen(cfg.ScreenW, cfg.ScreenH)
		game.Render(screen)
		fmt.Println(screen.String())
	}
	fmt.Printf("%s: status=%s outcome=%s score=%d ticks=%d\n",
		gameID, state.Status, state.Outcome, state.Score, state.Ticks)

	if !flagReport || !state.GameOver() {
		return nil
	}
	e, err := openEnv()
	if err != nil {
		return err
	}
	defer e.close()
	rep, err := e.manager.Report(gameID, game.Policy(), state.Outcome, state.Score)
	if err != nil {
		return err
	}
	fmt.Printf("reported: +%d points, streak %s, new best %v\n", rep.Points, rep.Streak, rep.NewBest)
	return nil
}

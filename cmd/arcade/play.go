package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/arcade-hub/internal/config"
	"github.com/vovakirdan/arcade-hub/internal/platform/tui"
	"github.com/vovakirdan/arcade-hub/internal/registry"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls:
  Arrows/WASD  - Move, aim
  Space        - Flap, fire, flip
  Enter        - Place, select
  P            - Pause / resume
  R            - Restart (after game over)
  Q/Ctrl+C     - Quit

Difficulty options (flappy, breakout):
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's initial level

Examples:
  arcade play snake
  arcade play flappy --difficulty hard
  arcade play breakout --difficulty fixed
  arcade play flappy --config ./my-flappy.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	for _, c := range []*cobra.Command{playCmd, menuCmd, simCmd} {
		c.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	}
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := args[0]
	if err := requireGame(gameID); err != nil {
		return err
	}
	if flagDifficulty != "" {
		if _, err := config.ParsePreset(flagDifficulty); err != nil {
			return err
		}
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	e, err := openEnv()
	if err != nil {
		return err
	}
	defer e.close()

	cfg := runtimeConfig()
	cfg.ConfigPath = flagConfig
	cfg.Difficulty = flagDifficulty

	deps := tui.Deps{
		Reporter: e.manager,
		Accent:   e.profile.Snapshot().ThemeAccent,
	}
	if err := tui.Run(game, cfg, deps); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

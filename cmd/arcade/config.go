package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/arcade-hub/internal/config"
)

var flagConfigFile string

var configCmd = &cobra.Command{
	Use:   "config <game>",
	Short: "Print a game's effective configuration",
	Long: `Print the YAML configuration a game would load, after the search order
--file -> ~/.arcade/configs/<name>.yaml -> ./configs/<name>.yaml ->
built-in default. Redirect it to a file to start a custom config.

Examples:
  arcade config flappy > ~/.arcade/configs/flappy.yaml
  arcade config 2048`,
	Args: cobra.ExactArgs(1),
	RunE: runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagConfigFile, "file", "", "Config file to load instead of the search path")
}

// effective loads and re-encodes one game's configuration.
func effective[T any](name string, fallback T) ([]byte, error) {
	cfg, err := config.Load(name, flagConfigFile, fallback)
	if err != nil {
		return nil, err
	}
	return config.Marshal(cfg)
}

func effectiveConfig(gameID string) ([]byte, error) {
	switch gameID {
	case "breakout":
		return effective(gameID, config.DefaultBreakoutConfig())
	case "flappy":
		return effective(gameID, config.DefaultFlappyConfig())
	case "snake":
		return effective(gameID, config.DefaultSnakeConfig())
	case "bubbles":
		return effective(gameID, config.DefaultBubblesConfig())
	case "tictactoe":
		return effective(gameID, config.DefaultTicTacToeConfig())
	case "memory":
		return effective(gameID, config.DefaultMemoryConfig())
	case "simon":
		return effective(gameID, config.DefaultSimonConfig())
	case "pacman":
		return effective(gameID, config.DefaultPacmanConfig())
	case "tron":
		return effective(gameID, config.DefaultTronConfig())
	case "2048":
		return effective("t2048", config.DefaultT2048Config())
	}
	return nil, fmt.Errorf("game %q has no configuration", gameID)
}

func runConfig(_ *cobra.Command, args []string) error {
	if err := requireGame(args[0]); err != nil {
		return err
	}
	data, err := effectiveConfig(args[0])
	if err != nil {
		return err
	}
	fmt.Print(string(data))
	return nil
}

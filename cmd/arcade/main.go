// arcade is a terminal arcade hub: a set of small games sharing one
// player profile of points, streak, favorites and best scores.
//
// Usage:
//
//	arcade list              - List available games
//	arcade play <game>       - Play a game
//	arcade menu              - Start menu to pick games interactively
//	arcade scores <game>     - Show high scores for a game
//	arcade profile           - Show or edit the player profile
//	arcade serve             - Start SSH server for remote play
//	arcade web               - Start the HTTP navigation surface
//	arcade sim <game>        - Run a game headless
//	arcade config <game>     - Print a game's effective configuration
//
// Global flags:
//
//	--fps <rate>        - Override the game's tick rate
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--db <path>         - Set database path (default: ~/.arcade/arcade.db)
//	--log-level <lvl>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/arcade-hub/internal/games/breakout"
	_ "github.com/vovakirdan/arcade-hub/internal/games/bubbles"
	_ "github.com/vovakirdan/arcade-hub/internal/games/flappy"
	_ "github.com/vovakirdan/arcade-hub/internal/games/memory"
	_ "github.com/vovakirdan/arcade-hub/internal/games/pacman"
	_ "github.com/vovakirdan/arcade-hub/internal/games/simon"
	_ "github.com/vovakirdan/arcade-hub/internal/games/snake"
	_ "github.com/vovakirdan/arcade-hub/internal/games/t2048"
	_ "github.com/vovakirdan/arcade-hub/internal/games/tictactoe"
	_ "github.com/vovakirdan/arcade-hub/internal/games/tron"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arcade",
	Short: "Arcade Hub - Play small games in your terminal",
	Long: `Arcade Hub is a terminal gaming platform. Every game feeds one shared
profile: wins earn points and extend your streak, best scores are kept
per game.

Available commands:
  list     - Show all available games
  play     - Play a specific game directly
  menu     - Interactive game picker menu
  scores   - View high scores and recent sessions
  profile  - Show or edit the player profile
  serve    - Start SSH server for remote play
  web      - Start the HTTP dashboard
  sim      - Run a game headless with a fixed seed
  config   - Print a game's effective configuration

Examples:
  arcade list
  arcade play snake
  arcade menu
  arcade serve --ssh :2222
  arcade sim 2048 --ticks 500 --seed 7`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		level, err := log.ParseLevel(flagLogLevel)
		if err != nil {
			return fmt.Errorf("invalid --log-level: %w", err)
		}
		log.SetLevel(level)
		return nil
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate override (0 = game default)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/arcade.db", `Path to arcade database ("" keeps the profile in memory)`)
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(profileCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(webCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
}

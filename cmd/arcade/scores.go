package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/arcade-hub/internal/platform/tui"
	"github.com/vovakirdan/arcade-hub/internal/registry"
	"github.com/vovakirdan/arcade-hub/internal/storage"
)

var (
	flagRecent    int
	flagAllScores bool
	flagClear     bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show high scores for a game",
	Long: `Display the top 10 high scores and the latest sessions for the
specified game. Without a game, opens the interactive scoreboard.

Examples:
  arcade scores
  arcade scores snake
  arcade scores 2048 --recent 20
  arcade scores flappy --all
  arcade scores snake --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagRecent, "recent", 5, "Number of recent sessions to show")
	scoresCmd.Flags().BoolVar(&flagAllScores, "all", false, "Show every recorded score instead of the top 10")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the score history of the game")
}

func runScores(_ *cobra.Command, args []string) error {
	if len(args) == 0 {
		return runScoreboard()
	}

	gameID := args[0]
	if err := requireGame(gameID); err != nil {
		return err
	}
	info, _ := registry.Info(gameID)

	e, err := openEnv()
	if err != nil {
		return err
	}
	defer e.close()
	if e.store == nil {
		return errors.New("scores need a database, see --db")
	}

	if flagClear {
		if err := e.store.ClearScores(gameID); err != nil {
			return fmt.Errorf("clearing scores: %w", err)
		}
		fmt.Printf("Cleared the score history of %s.\n", info.Title)
		return nil
	}

	var scores []storage.ScoreEntry
	if flagAllScores {
		scores, err = e.store.AllScores(gameID)
	} else {
		scores, err = e.store.TopScores(gameID, 10)
	}
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Printf("High Scores - %s\n", info.Title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'arcade play %s' to set the first high score!\n", gameID)
		return nil
	}

	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")
	for i, entry := range scores {
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	fmt.Printf("Your best: %d\n", e.profile.BestScore(gameID))
	if high, err := e.store.HighScore(gameID); err == nil {
		fmt.Printf("Record: %d\n", high)
	}
	if wins, err := e.store.WinCount(gameID); err == nil {
		fmt.Printf("Wins: %d\n", wins)
	}

	sessions, err := e.store.RecentSessions(gameID, flagRecent)
	if err != nil {
		return fmt.Errorf("retrieving sessions: %w", err)
	}
	if len(sessions) == 0 {
		return nil
	}

	fmt.Println()
	fmt.Println("Recent sessions:")
	for _, s := range sessions {
		fmt.Printf("  %s  %-4s  score %-8d  +%d points  streak %s\n",
			s.EndedAt.Local().Format("2006-01-02 15:04"), s.Outcome, s.Score, s.Points, s.Streak)
	}
	return nil
}

// runScoreboard opens the scoreboard browser over every game.
func runScoreboard() error {
	e, err := openEnv()
	if err != nil {
		return err
	}
	defer e.close()
	if e.store == nil {
		return errors.New("scores need a database, see --db")
	}

	cfg := runtimeConfig()
	_, err = tui.RunScoreboard(e.store, e.profile, cfg.ScreenW, cfg.ScreenH)
	return err
}

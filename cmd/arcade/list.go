package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/arcade-hub/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available games",
	Long:  `Shows a list of all games registered in the arcade, with your best score and favorites.`,
	RunE:  runList,
}

func runList(_ *cobra.Command, _ []string) error {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No games available.")
		return nil
	}

	e, err := openEnv()
	if err != nil {
		return err
	}
	defer e.close()

	fmt.Println("Available games:")
	fmt.Println()

	// Calculate column widths
	maxIDLen, maxTitleLen := 2, 5 // "ID", "Title" headers
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
		maxTitleLen = max(maxTitleLen, len(g.Title))
	}

	// Play counts come from the score history, when there is one
	played := map[string]int{}
	if e.store != nil {
		if stats, err := e.store.AllGameStats(); err == nil {
			for id, st := range stats {
				played[id] = st.GamesCount
			}
		}
	}

	fmt.Printf("    %-*s  %-*s  %-8s  %s\n", maxIDLen, "ID", maxTitleLen, "Title", "Best", "Played")
	fmt.Printf("    %-*s  %-*s  %-8s  %s\n", maxIDLen, "--", maxTitleLen, "-----", "----", "------")

	for _, g := range games {
		fav := "  "
		if e.profile.IsFavorite(g.ID) {
			fav = "* "
		}
		best := "-"
		if b := e.profile.BestScore(g.ID); b > 0 {
			best = fmt.Sprintf("%d", b)
		}
		fmt.Printf("  %s%-*s  %-*s  %-8s  %d\n", fav, maxIDLen, g.ID, maxTitleLen, g.Title, best, played[g.ID])
	}

	fmt.Println()
	fmt.Println("Run 'arcade play <id>' to play a game.")
	return nil
}

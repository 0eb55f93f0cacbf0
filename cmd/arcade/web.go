package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/arcade-hub/internal/platform/web"
	"github.com/vovakirdan/arcade-hub/internal/profile"
)

var flagHTTPAddr string

var webCmd = &cobra.Command{
	Use:   "web",
	Short: "Start the HTTP dashboard",
	Long: `Serve the arcade navigation surface as JSON over HTTP.

Routes:
  GET  /                     dashboard: games, points, streak
  GET  /profile              profile
  PUT  /profile              update name, avatar, themeAccent, uiScale
  GET  /games/{id}           game info, best and top scores
  POST /games/{id}/favorite  toggle favorite
  GET  /healthz              liveness

Examples:
  arcade web
  arcade web --http 127.0.0.1:9000`,
	RunE: runWeb,
}

func init() {
	webCmd.Flags().StringVar(&flagHTTPAddr, "http", ":8080", "HTTP listen address")
}

func runWeb(_ *cobra.Command, _ []string) error {
	e, err := openEnv()
	if err != nil {
		return err
	}
	defer e.close()

	opts := []web.Option{}
	if e.store != nil {
		opts = append(opts, web.WithScores(e.store))
	}
	srv := web.NewServer(e.profile, opts...)

	cancel := e.profile.Subscribe(func(p profile.Profile) {
		log.Info("profile changed", "points", p.Points, "streak", p.Streak, "favorites", len(p.Favorites))
	})
	defer cancel()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Printf("Serving arcade dashboard on %s\n", flagHTTPAddr)
	return srv.ListenAndServe(ctx, flagHTTPAddr)
}

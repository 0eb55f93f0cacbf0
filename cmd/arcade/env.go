package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/arcade-hub/internal/core"
	"github.com/vovakirdan/arcade-hub/internal/profile"
	"github.com/vovakirdan/arcade-hub/internal/registry"
	"github.com/vovakirdan/arcade-hub/internal/session"
	"github.com/vovakirdan/arcade-hub/internal/storage"
)

// env is the profile stack shared by the commands.
type env struct {
	store   *storage.Store // nil when running without a database
	profile *profile.Store
	manager *session.Manager
}

// openEnv opens the database at --db and loads the profile from it.
// An empty --db, or a database that cannot be opened, falls back to an
// in-memory profile.
func openEnv() (*env, error) {
	logger := log.Default()

	var kv profile.KV = profile.NewMemoryKV()
	e := &env{}
	if flagDBPath != "" {
		store, err := storage.Open(flagDBPath)
		if err != nil {
			logger.Warn("could not open arcade database, profile will not persist", "err", err)
		} else {
			e.store = store
			kv = store
		}
	}

	prof, err := profile.Open(kv, profile.WithLogger(logger.WithPrefix("profile")))
	if err != nil {
		e.close()
		return nil, err
	}
	e.profile = prof

	opts := []session.Option{session.WithLogger(logger)}
	if e.store != nil {
		opts = append(opts, session.WithRecorder(e.store))
	}
	e.manager = session.NewManager(prof, prof, opts...)
	return e, nil
}

func (e *env) close() {
	if e.store != nil {
		e.store.Close()
	}
}

// runtimeConfig builds the config passed to games from the global flags
// and the terminal size.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	return cfg
}

// requireGame fails with a hint when gameID is not registered.
func requireGame(gameID string) error {
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'arcade list' to see available games", gameID)
	}
	return nil
}

// Package app is the composition root: it turns a config into a wired set of
// collaborators with a single shutdown path.
package app

import (
	"fmt"

	"aoc_companion/internal/cache"
	"aoc_companion/internal/client"
	"aoc_companion/internal/config"
	"aoc_companion/internal/cooldown"
	"aoc_companion/internal/service"
	"aoc_companion/internal/session"
	"aoc_companion/internal/state"
	"aoc_companion/internal/stats"
)

type App struct {
	Config  *config.Config
	Cache   *cache.PuzzleCache
	State   state.Store
	Session *session.Service
	Client  *client.Client
	Tracker *cooldown.Tracker
	Stats   *stats.Service
	Puzzles *service.PuzzleService
}

func New(cfg *config.Config) (*App, error) {
	store, err := openStateStore(cfg)
	if err != nil {
		return nil, err
	}

	puzzleCache := cache.New(cfg.CacheDir)
	sessionSvc := session.NewService(session.NewFileSecretStore(cfg.SecretsDir))
	httpClient := client.New(cfg)
	tracker := cooldown.New(store, nil)
	statsSvc := stats.New(store)

	return &App{
		Config:  cfg,
		Cache:   puzzleCache,
		State:   store,
		Session: sessionSvc,
		Client:  httpClient,
		Tracker: tracker,
		Stats:   statsSvc,
		Puzzles: service.New(puzzleCache, httpClient, sessionSvc, tracker, statsSvc, nil),
	}, nil
}

func openStateStore(cfg *config.Config) (state.Store, error) {
	switch cfg.State.Backend {
	case "", "file":
		return state.NewFileStore(cfg.State.Path), nil
	case "mongo":
		return state.NewMongoStore(cfg.State.Mongo)
	default:
		return nil, fmt.Errorf("unknown state backend %q (expected file or mongo)", cfg.State.Backend)
	}
}

func (a *App) Close() error {
	a.Tracker.Stop()
	return a.State.Close()
}

package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/wordcard/internal/bootstrap"
	"github.com/at-ishikawa/wordcard/internal/config"
	"github.com/at-ishikawa/wordcard/internal/database"
	"github.com/at-ishikawa/wordcard/internal/flashcard"
	"github.com/at-ishikawa/wordcard/internal/quiz"
	"github.com/at-ishikawa/wordcard/internal/storage"
)

func loadConfig() (*config.Config, error) {
	loader, err := config.NewConfigLoader(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to create config loader: %w", err)
	}
	return loader.Load()
}

// newKeyValueStore returns the store of the configured backend. Resources it
// opens are released by the shutdown hooks of app.
func newKeyValueStore(ctx context.Context, cfg *config.Config, app *bootstrap.App) (storage.KeyValueStore, error) {
	switch cfg.Storage.Backend {
	case config.StorageBackendFile:
		return storage.NewFileStore(cfg.Storage.Directory), nil
	case config.StorageBackendMemory:
		return storage.NewMemoryStore(), nil
	case config.StorageBackendMySQL:
		db, err := database.Connect(ctx, cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("database.Connect() > %w", err)
		}
		app.AddShutdownHook(func(ctx context.Context) error {
			return db.Close()
		})
		return storage.NewMySQLStore(db), nil
	}
	return nil, fmt.Errorf("unknown storage backend: %s", cfg.Storage.Backend)
}

// runWithDeck loads the configuration, opens the deck on the configured
// backend, and calls run with it.
func runWithDeck(cmd *cobra.Command, run func(ctx context.Context, cfg *config.Config, deck *flashcard.Deck) error, opts ...flashcard.Option) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	app := bootstrap.New()
	return app.Run(cmd.Context(), func(ctx context.Context) error {
		store, err := newKeyValueStore(ctx, cfg, app)
		if err != nil {
			return err
		}

		mode, err := quiz.ParseMode(cfg.Quiz.DefaultMode)
		if err != nil {
			return err
		}
		opts = append([]flashcard.Option{flashcard.WithMode(mode)}, opts...)

		deck, err := flashcard.Open(ctx, storage.NewGateway(store, cfg.Storage.Key), opts...)
		if err != nil {
			return fmt.Errorf("flashcard.Open() > %w", err)
		}
		return run(ctx, cfg, deck)
	})
}

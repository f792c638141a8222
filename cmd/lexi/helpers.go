package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/at-ishikawa/lexi/internal/bootstrap"
	"github.com/at-ishikawa/lexi/internal/config"
	"github.com/at-ishikawa/lexi/internal/database"
	"github.com/at-ishikawa/lexi/internal/dictionary"
	"github.com/at-ishikawa/lexi/internal/quote"
	"github.com/at-ishikawa/lexi/internal/wordbook"
	"github.com/at-ishikawa/lexi/internal/wordlist"
	"github.com/at-ishikawa/lexi/schemas"
)

func loadConfig() (*config.Config, error) {
	loader, err := config.NewConfigLoader(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to create config loader: %w", err)
	}
	cfg, err := loader.Load()
	if err != nil {
		return nil, err
	}
	if storageOverride.driver != "" {
		cfg.Storage.Driver = storageOverride.driver
	}
	return cfg, nil
}

// openStore opens the store for cfg.Storage.Driver. A database connection is
// closed by app when it shuts down.
func openStore(ctx context.Context, cfg *config.Config, app *bootstrap.App) (wordlist.Store, error) {
	switch cfg.Storage.Driver {
	case config.StorageDriverMySQL:
		db, err := database.Open(cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("open database: %w", err)
		}
		app.AddShutdownHook(func(context.Context) error {
			return db.Close()
		})
		if err := database.Migrate(ctx, db, schemas.Migrations); err != nil {
			return nil, fmt.Errorf("migrate database: %w", err)
		}
		return wordlist.NewDBStore(db), nil
	case config.StorageDriverMemory:
		return wordlist.NewMemoryStore(), nil
	default:
		return wordlist.NewFileStore(cfg.Storage.Directory), nil
	}
}

// openSessionWordBook never fails: when the configured store cannot be
// opened, the lists live for this session only.
func openSessionWordBook(ctx context.Context, cfg *config.Config, app *bootstrap.App) *wordbook.Manager {
	store, err := openStore(ctx, cfg, app)
	if err != nil {
		slog.WarnContext(ctx, "word lists are kept for this session only", slog.Any("error", err))
		store = wordlist.NewMemoryStore()
	}
	return wordbook.NewManager(ctx, store, slog.Default())
}

func openWordBook(ctx context.Context, cfg *config.Config, app *bootstrap.App) (*wordbook.Manager, error) {
	store, err := openStore(ctx, cfg, app)
	if err != nil {
		return nil, err
	}
	return wordbook.NewManager(ctx, store, slog.Default()), nil
}

func newDictionaryClient(cfg *config.Config) *dictionary.Client {
	return dictionary.NewClient(dictionary.Config{
		BaseURL: cfg.Dictionary.BaseURL,
		Timeout: time.Duration(cfg.Dictionary.TimeoutSeconds) * time.Second,
	}, slog.Default())
}

func newQuoteClient(cfg *config.Config, app *bootstrap.App) *quote.Client {
	client := quote.NewClient(quote.Config{
		BaseURL:       cfg.Quote.BaseURL,
		Timeout:       time.Duration(cfg.Quote.TimeoutSeconds) * time.Second,
		RetryAttempts: cfg.Quote.RetryAttempts,
	}, slog.Default())
	app.AddShutdownHook(func(context.Context) error {
		return client.Close()
	})
	return client
}

package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/lexi/internal/bootstrap"
	"github.com/at-ishikawa/lexi/internal/render"
	"github.com/at-ishikawa/lexi/internal/wordbook"
)

func newHistoryCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "history",
		Short: "Show the searched words, most recent first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithWordBook(cmd, func(ctx context.Context, manager *wordbook.Manager) error {
				return render.NewTerminal(cmd.OutOrStdout()).WriteWordList(render.RenderHistory(manager.History()))
			})
		},
	}
}

func newFavoritesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "favorites",
		Short: "Show the favorite words",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithWordBook(cmd, func(ctx context.Context, manager *wordbook.Manager) error {
				return render.NewTerminal(cmd.OutOrStdout()).WriteWordList(render.RenderFavorites(manager.Favorites()))
			})
		},
	}
}

func newFavoriteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "favorite <word>",
		Short: "Add a word to the favorites, or remove it if it is already there",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithWordBook(cmd, func(ctx context.Context, manager *wordbook.Manager) error {
				word := wordbook.Normalize(args[0])
				if word == "" {
					return fmt.Errorf("word must not be empty")
				}

				isFavorite, err := manager.ToggleFavorite(ctx, word)
				if err != nil {
					return fmt.Errorf("manager.ToggleFavorite(%s) > %w", word, err)
				}
				if isFavorite {
					_, err = fmt.Fprintf(cmd.OutOrStdout(), "Added %s to your favorites.\n", word)
				} else {
					_, err = fmt.Fprintf(cmd.OutOrStdout(), "Removed %s from your favorites.\n", word)
				}
				return err
			})
		},
	}
}

// runWithWordBook runs fn with a word book on the configured store. Unlike
// the interactive session, a store that cannot be opened is an error.
func runWithWordBook(cmd *cobra.Command, fn func(ctx context.Context, manager *wordbook.Manager) error) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	app := bootstrap.New()
	return app.Run(cmd.Context(), func(ctx context.Context) error {
		manager, err := openWordBook(ctx, cfg, app)
		if err != nil {
			return err
		}
		return fn(ctx, manager)
	})
}

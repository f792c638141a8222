package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/lexi/internal/bootstrap"
	"github.com/at-ishikawa/lexi/internal/render"
)

func newQuoteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "quote",
		Short: "Show the quote of the day",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			app := bootstrap.New()
			return app.Run(cmd.Context(), func(ctx context.Context) error {
				quotes := newQuoteClient(cfg, app)
				return render.NewTerminal(cmd.OutOrStdout()).WriteQuote(quotes.Daily(ctx))
			})
		},
	}
}

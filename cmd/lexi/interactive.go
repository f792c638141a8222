package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/lexi/internal/bootstrap"
	"github.com/at-ishikawa/lexi/internal/cli"
	"github.com/at-ishikawa/lexi/internal/quote"
	"github.com/at-ishikawa/lexi/internal/render"
)

// dailyQuoteWait bounds how long the session start waits for the quote of
// the day before showing the fallback.
const dailyQuoteWait = time.Second

func newInteractiveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "interactive",
		Short: "Look up words one after another in an interactive session",
		Args:  cobra.NoArgs,
		RunE:  runInteractive,
	}
}

func runInteractive(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	app := bootstrap.New()
	return app.Run(cmd.Context(), func(ctx context.Context) error {
		quotes := newQuoteClient(cfg, app)
		dailyQuote := make(chan quote.Quote, 1)
		go func() {
			dailyQuote <- quotes.DailyWithin(ctx, dailyQuoteWait)
		}()

		manager := openSessionWordBook(ctx, cfg, app)
		out := cmd.OutOrStdout()
		terminal := render.NewTerminal(out)
		if err := terminal.WriteQuote(<-dailyQuote); err != nil {
			return err
		}

		controller := cli.NewController(newDictionaryClient(cfg), manager, cli.NewTerminalScreen(terminal), slog.Default())
		session := cli.NewInteractiveCLI(controller, quotes, terminal, cmd.InOrStdin(), out)
		if _, err := fmt.Fprintln(out, "Type a word to look it up, or /help to see the commands."); err != nil {
			return err
		}
		return session.Run(ctx, session)
	})
}

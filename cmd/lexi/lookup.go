package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/lexi/internal/bootstrap"
	"github.com/at-ishikawa/lexi/internal/cli"
	"github.com/at-ishikawa/lexi/internal/pdf"
	"github.com/at-ishikawa/lexi/internal/render"
)

func newLookupCommand() *cobra.Command {
	var pdfPath string
	var markdown bool

	cmd := &cobra.Command{
		Use:   "lookup <word>",
		Short: "Look up a word and record it in the search history",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			app := bootstrap.New()
			return app.Run(cmd.Context(), func(ctx context.Context) error {
				manager := openSessionWordBook(ctx, cfg, app)

				var screen cli.Screen
				if markdown {
					screen = cli.NewMarkdownScreen(cmd.OutOrStdout())
				} else {
					screen = cli.NewTerminalScreen(render.NewTerminal(cmd.OutOrStdout()))
				}

				controller := cli.NewController(newDictionaryClient(cfg), manager, screen, slog.Default())
				if err := controller.Submit(ctx, args[0]); err != nil {
					return fmt.Errorf("controller.Submit() > %w", err)
				}

				if pdfPath == "" {
					return nil
				}
				writtenPath, err := pdf.Write(pdfPath, render.Markdown(controller.LastDisplay()))
				if err != nil {
					return fmt.Errorf("pdf.Write(%s) > %w", pdfPath, err)
				}
				_, err = fmt.Fprintf(cmd.OutOrStdout(), "PDF written to %s\n", writtenPath)
				return err
			})
		},
	}

	cmd.Flags().StringVar(&pdfPath, "pdf", "", "Also write the result to a PDF file")
	cmd.Flags().BoolVar(&markdown, "markdown", false, "Print the result as Markdown")
	return cmd
}

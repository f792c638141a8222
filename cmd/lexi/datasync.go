package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/lexi/internal/datasync"
	"github.com/at-ishikawa/lexi/internal/wordbook"
)

func newExportCommand() *cobra.Command {
	var outputDir string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the search history and favorites to a YAML file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithWordBook(cmd, func(ctx context.Context, manager *wordbook.Manager) error {
				lists := datasync.NewExporter(manager).Export()
				path, err := datasync.NewYAMLWordListSink(outputDir).WriteAll(lists)
				if err != nil {
					return fmt.Errorf("export word lists: %w", err)
				}

				_, err = fmt.Fprintf(cmd.OutOrStdout(), "Exported %d history words and %d favorites to %s\n", len(lists.History), len(lists.Favorites), path)
				return err
			})
		},
	}

	cmd.Flags().StringVar(&outputDir, "output", "./export", "Output directory for the YAML file")
	return cmd
}

func newImportCommand() *cobra.Command {
	var inputFile string
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Merge a YAML file of word lists into the search history and favorites",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			lists, err := datasync.ReadYAMLWordLists(inputFile)
			if err != nil {
				return fmt.Errorf("read word lists: %w", err)
			}

			return runWithWordBook(cmd, func(ctx context.Context, manager *wordbook.Manager) error {
				out := cmd.OutOrStdout()
				opts := datasync.ImportOptions{DryRun: dryRun}
				result, err := datasync.NewImporter(manager, out).Import(ctx, lists, opts)
				if err != nil {
					return fmt.Errorf("import word lists: %w", err)
				}

				fmt.Fprintln(out, "\nImport Summary:")
				if opts.DryRun {
					fmt.Fprintln(out, "  (dry-run mode, no changes made)")
				}
				fmt.Fprintf(out, "  History:    %d new, %d skipped\n", result.HistoryNew, result.HistorySkipped)
				fmt.Fprintf(out, "  Favorites:  %d new, %d skipped\n", result.FavoritesNew, result.FavoritesSkipped)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&inputFile, "input", "", "YAML file written by the export command")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Preview changes without modifying the word lists")
	_ = cmd.MarkFlagRequired("input")
	return cmd
}

package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/at-ishikawa/lexi/internal/config"
)

var (
	configFile      string
	storageOverride storageFlag
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		if _, fprintfErr := fmt.Fprintf(os.Stderr, "failed to execute a command: %+v\n", err); fprintfErr != nil {
			panic(fmt.Errorf("failed to output an error: %w. Reason: %w", err, fprintfErr))
		}
		os.Exit(1)
	}
	os.Exit(0)
}

func newRootCommand() *cobra.Command {
	var debugMode bool
	rootCommand := &cobra.Command{
		Use:           "lexi",
		Short:         "Look up English words and keep your search history and favorites",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			setupLogger(debugMode)
			return nil
		},
		RunE: runInteractive,
	}
	rootCommand.PersistentFlags().StringVar(&configFile, "config", "", "config file path")
	rootCommand.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug mode")
	rootCommand.PersistentFlags().Var(&storageOverride, "storage", "word list storage: "+storageOverride.choices())

	rootCommand.AddCommand(
		newInteractiveCommand(),
		newLookupCommand(),
		newHistoryCommand(),
		newFavoritesCommand(),
		newFavoriteCommand(),
		newQuoteCommand(),
		newExportCommand(),
		newImportCommand(),
	)
	return rootCommand
}

// setupLogger configures the default logger based on debug mode. Without
// debug mode only errors are logged, so storage and quote fallbacks stay
// off the screen.
func setupLogger(debugMode bool) {
	logLevel := slog.LevelError
	if debugMode {
		logLevel = slog.LevelDebug
	}

	slog.SetDefault(
		slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level:     logLevel,
			AddSource: true,
		})),
	)
}

// storageFlag overrides storage.driver from the config file when set.
type storageFlag struct {
	driver config.StorageDriver
}

var _ pflag.Value = (*storageFlag)(nil)

func (f *storageFlag) String() string {
	return string(f.driver)
}

func (f *storageFlag) Set(value string) error {
	for _, driver := range config.AllStorageDrivers {
		if string(driver) == value {
			f.driver = driver
			return nil
		}
	}
	return fmt.Errorf("must be one of %s", f.choices())
}

func (f *storageFlag) Type() string {
	return "driver"
}

func (f *storageFlag) choices() string {
	names := make([]string, 0, len(config.AllStorageDrivers))
	for _, driver := range config.AllStorageDrivers {
		names = append(names, string(driver))
	}
	return strings.Join(names, ", ")
}

// Package cli implements the command-line interface.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/aidanlsb/ubiq/internal/config"
	"github.com/aidanlsb/ubiq/internal/ui"
)

var (
	// Global flags
	rootFlag    string
	configPath  string
	verboseFlag bool

	// Resolved values
	cfg    *config.Config
	logger *log.Logger
)

// rootCmd represents the base command
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ubiq",
		Short: "ubiq - ubiquitous-language documentation checks",
		Long: `ubiq keeps a documentation site honest about its ubiquitous language.

It checks that glossary terms are used and linked consistently across the
documentation, lints and generates the glossary, and validates the mkdocs
navigation against the documents on disk.

All findings are advisory: commands exit non-zero only when an input they
need cannot be read or written.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			switch cmd.Name() {
			case "version", "guide", "help", "completion":
				return nil
			}

			logger = newLogger(cmd.ErrOrStderr(), verboseFlag)

			var err error
			cfg, err = config.Load(rootFlag, configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			if _, err := os.Stat(cfg.Root); os.IsNotExist(err) {
				return fmt.Errorf("project root not found: %s", cfg.Root)
			}
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&rootFlag, "root", ".", "Project root directory")
	cmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file (default <root>/"+config.FileName+")")
	cmd.PersistentFlags().BoolVar(&verboseFlag, "verbose", false, "Enable debug logging")
	return cmd
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}

func newLogger(w io.Writer, verbose bool) *log.Logger {
	l := log.NewWithOptions(w, log.Options{Prefix: "ubiq"})
	if verbose {
		l.SetLevel(log.DebugLevel)
	}
	return l
}

// getConfig returns the loaded config.
func getConfig() *config.Config {
	return cfg
}

// getLogger returns the diagnostic logger.
func getLogger() *log.Logger {
	if logger == nil {
		return log.New(io.Discard)
	}
	return logger
}

// themeFor picks plain or styled output for w.
func themeFor(w io.Writer) ui.Theme {
	if f, ok := w.(*os.File); ok {
		return ui.DetectTheme(f)
	}
	return ui.Theme{}
}

package cli

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var verbose bool

// logger is configured by the root command before any subcommand runs.
var logger = slog.New(slog.DiscardHandler)

var rootCmd = &cobra.Command{
	Use:   "corsflow",
	Short: "Explain how browsers resolve cross-origin requests",
	Long: "Classifies hypothetical browser requests (method, same-origin, CORS-enabled,\n" +
		"custom headers) into one of five CORS outcomes and lists the ordered steps\n" +
		"the request goes through.",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := slog.LevelWarn
		if verbose {
			level = slog.LevelDebug
		}
		opts := &slog.HandlerOptions{Level: level}
		logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), opts))
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log each classification to stderr")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

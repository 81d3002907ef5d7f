package main

import (
	"github.com/spf13/cobra"

	"github.com/sghaida/prox/internal/logging"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "prox",
	Short: "Lazy document proxy demos",
	Long: `prox demonstrates deferring document wrappers.

A document is expensive to load. The wrapper stores only the payload and
loads the real document on the first render, at most once per wrapper.
Diagnostics go to stderr; document output goes to stdout.`,
	PersistentPreRun: func(cmd *cobra.Command, _ []string) {
		logging.Setup(verbose, cmd.ErrOrStderr())
	},
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}

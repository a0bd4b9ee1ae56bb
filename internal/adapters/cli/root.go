// Package cli wires the bot's command-line contract (§6): a flat command
// accepting only -c/--config and -r/--runid, any other argument is a
// fatal error.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/MyForking/halite3-bot-1/internal/application/bot"
)

var (
	configPath string
	runID      string
)

// NewRootCommand builds the bot's single command.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "halite3-bot",
		Short:         "Halite III decision core: reads the game stream on stdin, writes commands on stdout",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return bot.Run(bot.Options{ConfigPath: configPath, RunID: runID})
		},
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	rootCmd.Flags().StringVarP(&configPath, "config", "c", "config.json", "path to the JSON configuration file")
	rootCmd.Flags().StringVarP(&runID, "runid", "r", "", "optional run identifier for the displayed bot name and log correlation; autogenerated when omitted")

	return rootCmd
}

// Execute runs the root command and exits nonzero on any error,
// including an unrecognized extra argument (§6).
func Execute() {
	rootCmd := NewRootCommand()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

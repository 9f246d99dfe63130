// Root cobra command: dequectl

package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "dequectl",
	Short:         "Replay operation scripts against a double-ended queue",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.AddCommand(newRunCmd())
	rootCmd.AddCommand(newDemoCmd())
}

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

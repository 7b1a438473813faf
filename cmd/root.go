package cmd

import (
	"board-cli/term"

	"github.com/spf13/cobra"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   `board [command] [flags]`,
	Short: "Board: a terminal client for the discussion board",
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		term.OutputErrorAndExit("Error executing root command: %v", err)
	}
}

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version will be set at build time using -ldflags
var Version = "development"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of the board CLI",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("Board CLI Version:", Version)
	},
}

func init() {
	RootCmd.AddCommand(versionCmd)
}

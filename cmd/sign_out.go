package cmd

import (
	"fmt"

	"board-cli/auth"
	"board-cli/term"

	"github.com/spf13/cobra"
)

var signOutCmd = &cobra.Command{
	Use:   "sign-out",
	Short: "Sign out and clear the stored session",
	Args:  cobra.NoArgs,
	Run:   signOut,
}

func init() {
	RootCmd.AddCommand(signOutCmd)
}

func signOut(cmd *cobra.Command, args []string) {
	err := auth.SignOut()

	if err != nil {
		term.OutputErrorAndExit("Error signing out: %v", err)
	}

	fmt.Println("✅ Signed out")
}

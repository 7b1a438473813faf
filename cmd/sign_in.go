package cmd

import (
	"board-cli/auth"
	"board-cli/term"

	"github.com/spf13/cobra"
)

var signInCmd = &cobra.Command{
	Use:   "sign-in",
	Short: "Sign in with email and password",
	Args:  cobra.NoArgs,
	Run:   signIn,
}

func init() {
	RootCmd.AddCommand(signInCmd)
}

func signIn(cmd *cobra.Command, args []string) {
	err := auth.PromptSignIn()

	if err != nil {
		term.OutputErrorAndExit("Error signing in: %v", err)
	}
}

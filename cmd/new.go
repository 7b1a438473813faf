package cmd

import (
	"board-cli/lib"
	"board-cli/nav"
	"board-cli/term"

	"github.com/spf13/cobra"
)

var newCmd = &cobra.Command{
	Use:     "new",
	Aliases: []string{"n"},
	Short:   "Write a new post",
	Args:    cobra.NoArgs,
	Run:     newPost,
}

func init() {
	RootCmd.AddCommand(newCmd)

	newCmd.Flags().String("type", "", "board type (info, free, brunch)")
}

func newPost(cmd *cobra.Command, args []string) {
	boardType, _ := cmd.Flags().GetString("type")

	if boardType == "" {
		selected, err := term.SelectFromList("Which board?", boardTypes())
		if err != nil {
			term.OutputErrorAndExit("Error selecting board: %v", err)
		}
		boardType = selected
	}

	next, err := lib.Create(nav.NewParams{Type: boardType})

	if err != nil {
		term.OutputErrorAndExit("%v", err)
	}

	navigateTo(next)
}

func boardTypes() []string {
	return []string{"info", "free", "brunch"}
}

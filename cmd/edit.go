package cmd

import (
	"strconv"

	"board-cli/lib"
	"board-cli/nav"
	"board-cli/term"

	"github.com/spf13/cobra"
)

var editCmd = &cobra.Command{
	Use:     "edit [post-id]",
	Aliases: []string{"e"},
	Short:   "Edit a post you wrote",
	Args:    cobra.ExactArgs(1),
	Run:     edit,
}

func init() {
	RootCmd.AddCommand(editCmd)

	editCmd.Flags().String("type", "", "board type (info, free, brunch)")
}

func edit(cmd *cobra.Command, args []string) {
	id, err := strconv.Atoi(args[0])
	if err != nil {
		term.OutputErrorAndExit("Invalid post id %q", args[0])
	}

	boardType, _ := cmd.Flags().GetString("type")
	if boardType == "" {
		boardType = "info"
	}

	next, err := lib.Edit(nav.EditParams{Id: id, Type: boardType})

	if err != nil {
		term.OutputErrorAndExit("%v", err)
	}

	navigateTo(next)
}

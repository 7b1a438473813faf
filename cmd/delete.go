package cmd

import (
	"strconv"

	"board-cli/lib"
	"board-cli/nav"
	"board-cli/term"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:     "delete [post-id]",
	Aliases: []string{"del"},
	Short:   "Delete a post you wrote",
	Args:    cobra.ExactArgs(1),
	Run:     deletePost,
}

func init() {
	RootCmd.AddCommand(deleteCmd)

	deleteCmd.Flags().String("type", "", "board type (info, free, brunch)")
}

func deletePost(cmd *cobra.Command, args []string) {
	id, err := strconv.Atoi(args[0])
	if err != nil {
		term.OutputErrorAndExit("Invalid post id %q", args[0])
	}

	boardType, _ := cmd.Flags().GetString("type")
	if boardType == "" {
		boardType = "info"
	}

	next, err := lib.Delete(nav.DetailParams{Id: id, Type: boardType})

	if err != nil {
		term.OutputErrorAndExit("%v", err)
	}

	navigateTo(next)
}

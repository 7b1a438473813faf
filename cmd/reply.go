package cmd

import (
	"strconv"

	"board-cli/lib"
	"board-cli/term"

	"github.com/spf13/cobra"
)

var replyCmd = &cobra.Command{
	Use:     "reply [post-id]",
	Aliases: []string{"r"},
	Short:   "Add or delete a reply on a post",
	Args:    cobra.ExactArgs(1),
	Run:     reply,
}

func init() {
	RootCmd.AddCommand(replyCmd)

	replyCmd.Flags().Int("delete", 0, "delete the reply with this id instead of adding one")
}

func reply(cmd *cobra.Command, args []string) {
	postId, err := strconv.Atoi(args[0])
	if err != nil {
		term.OutputErrorAndExit("Invalid post id %q", args[0])
	}

	replyId, _ := cmd.Flags().GetInt("delete")

	if replyId != 0 {
		err = lib.DeleteReply(postId, replyId)
	} else {
		err = lib.AddReply(postId)
	}

	if err != nil {
		term.OutputErrorAndExit("%v", err)
	}
}

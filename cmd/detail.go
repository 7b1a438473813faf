package cmd

import (
	"strconv"

	"board-cli/lib"
	"board-cli/nav"
	"board-cli/term"

	"github.com/spf13/cobra"
)

var detailCmd = &cobra.Command{
	Use:     "detail [post-id]",
	Aliases: []string{"d"},
	Short:   "Show a post with its replies",
	Args:    cobra.ExactArgs(1),
	Run:     detail,
}

func init() {
	RootCmd.AddCommand(detailCmd)

	detailCmd.Flags().String("type", "", "board type (info, free, brunch)")
}

func detail(cmd *cobra.Command, args []string) {
	id, err := strconv.Atoi(args[0])
	if err != nil {
		term.OutputErrorAndExit("Invalid post id %q", args[0])
	}

	boardType, _ := cmd.Flags().GetString("type")
	if boardType == "" {
		boardType = "info"
	}

	err = lib.Detail(nav.DetailParams{Id: id, Type: boardType})

	if err != nil {
		term.OutputErrorAndExit("%v", err)
	}
}

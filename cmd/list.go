package cmd

import (
	"net/url"

	"board-cli/lib"
	"board-cli/nav"
	"board-cli/term"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List posts on a board",
	Args:    cobra.NoArgs,
	Run:     list,
}

func init() {
	RootCmd.AddCommand(listCmd)

	listCmd.Flags().String("type", "", "board type (info, free, brunch)")
	listCmd.Flags().String("keyword", "", "filter posts by title keyword")
	listCmd.Flags().String("page", "", "page number (1-indexed)")
}

func list(cmd *cobra.Command, args []string) {
	values := url.Values{}
	for _, flag := range []string{"type", "keyword", "page"} {
		val, _ := cmd.Flags().GetString(flag)
		if val != "" {
			values.Set(flag, val)
		}
	}

	params := nav.ListParamsFrom(values)

	err := lib.List(params)

	if err != nil {
		term.OutputErrorAndExit("%v", err)
	}
}

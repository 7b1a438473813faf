package cmd

import (
	"fmt"

	"board-cli/lib"
	"board-cli/nav"
	"board-cli/term"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var browseCmd = &cobra.Command{
	Use:     "browse",
	Aliases: []string{"b"},
	Short:   "Browse boards interactively",
	Long:    "Browse boards by following query-string links like list?type=free&page=2 or detail?id=7&type=free. Enter `back` to go back, `q` to quit.",
	Args:    cobra.NoArgs,
	Run:     browse,
}

func init() {
	RootCmd.AddCommand(browseCmd)

	browseCmd.Flags().String("type", "", "board type to open first (info, free, brunch)")
}

func browse(cmd *cobra.Command, args []string) {
	boardType, _ := cmd.Flags().GetString("type")

	start := "list"
	if boardType != "" {
		start = "list?type=" + boardType
	}

	// history of visited targets; `back` pops it
	history := []string{start}
	current := start

	for {
		target, err := nav.Parse(current)
		if err != nil {
			term.OutputSimpleError("%v", err)
		} else if target.Page == nav.PageList || target.Page == nav.PageRoot {
			// list fetches run in the background so the loop keeps taking
			// input; navigating on before the fetch resolves supersedes the
			// render and the stale result is dropped
			done := lib.ListInBackground(nav.ListParamsFrom(target.Params))
			go func() {
				if err := <-done; err != nil {
					term.OutputSimpleError("%v", err)
				}
			}()
		} else {
			next, replace, err := runTarget(target)

			if err != nil {
				// every failure surfaces once at the workflow boundary; the
				// loop keeps running
				term.OutputSimpleError("%v", err)
			}

			if next != "" {
				if replace {
					history[len(history)-1] = next
				} else {
					history = append(history, next)
				}
				current = next
				continue
			}
		}

		fmt.Println()
		color.New(term.ColorHiMagenta, color.Bold).Print("Where to? ")
		link, err := term.GetUserStringInput(fmt.Sprintf("[%s]", current))

		if err != nil {
			term.OutputErrorAndExit("Error reading input: %v", err)
		}

		switch link {
		case "q", "quit", "exit":
			return
		case "":
			// re-run the current page
			continue
		case "back":
			if len(history) > 1 {
				history = history[:len(history)-1]
				current = history[len(history)-1]
			}
			continue
		}

		if _, err := nav.Parse(link); err != nil {
			term.OutputSimpleError("%v", err)
			continue
		}

		history = append(history, link)
		current = link
	}
}

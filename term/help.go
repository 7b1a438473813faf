package term

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
)

var CmdDesc = map[string][2]string{
	"list":     {"ls", "list posts on a board"},
	"detail":   {"d", "show a post with its replies"},
	"new":      {"n", "write a new post"},
	"edit":     {"e", "edit a post you wrote"},
	"delete":   {"del", "delete a post you wrote"},
	"reply":    {"r", "add or delete a reply on a post"},
	"browse":   {"b", "browse boards interactively"},
	"sign-in":  {"", "sign in with email and password"},
	"sign-out": {"", "sign out and clear the stored session"},
}

func PrintCmds(prefix string, cmds ...string) {
	printCmds(os.Stderr, prefix, []color.Attribute{color.Bold, color.FgHiWhite, color.BgCyan}, cmds...)
}

func printCmds(w io.Writer, prefix string, colors []color.Attribute, cmds ...string) {
	for _, cmd := range cmds {
		config, ok := CmdDesc[cmd]
		if !ok {
			continue
		}

		alias := config[0]
		desc := config[1]
		if alias != "" {
			if strings.Contains(cmd, alias) {
				cmd = strings.Replace(cmd, alias, fmt.Sprintf("(%s)", alias), 1)
			} else {
				cmd = fmt.Sprintf("%s (%s)", cmd, alias)
			}
		}
		styled := color.New(colors...).Sprintf(" board %s ", cmd)

		fmt.Fprintf(w, "%s%s 👉 %s\n", prefix, styled, desc)
	}
}

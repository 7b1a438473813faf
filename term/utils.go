package term

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

var IsDarkBg = termenv.HasDarkBackground()

// The Hi variants wash out on light backgrounds, so each attribute degrades
// to its plain counterpart there.
var (
	ColorHiGreen   = adaptive(color.FgHiGreen, color.FgGreen)
	ColorHiMagenta = adaptive(color.FgHiMagenta, color.FgMagenta)
	ColorHiRed     = adaptive(color.FgHiRed, color.FgRed)
	ColorHiYellow  = adaptive(color.FgHiYellow, color.FgYellow)
	ColorHiCyan    = adaptive(color.FgHiCyan, color.FgCyan)
)

func adaptive(dark, light color.Attribute) color.Attribute {
	if IsDarkBg {
		return dark
	}
	return light
}

func ClearCurrentLine() {
	fmt.Print("\033[2K")
}

func MoveUpLines(numLines int) {
	fmt.Printf("\033[%dA", numLines)
}

func GetDivisionLine() string {
	return strings.Repeat("─", MustGetTerminalWidth())
}

func MustGetTerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		// default width if unable to fetch width
		return 80
	}
	return width
}

package term

import (
	"fmt"
	"os"
	"sort"

	"board-cli/shared"
	"board-cli/validate"

	"github.com/fatih/color"
)

func OutputSimpleError(msg string, args ...interface{}) {
	msg = fmt.Sprintf(msg, args...)
	fmt.Fprintln(os.Stderr, color.New(ColorHiRed, color.Bold).Sprint("🚨 "+shared.Capitalize(msg)))
}

func OutputErrorAndExit(msg string, args ...interface{}) {
	StopSpinner()

	msg = fmt.Sprintf(msg, args...)
	fmt.Fprintln(os.Stderr, color.New(ColorHiRed, color.Bold).Sprint("🚨 "+shared.Capitalize(msg)))
	os.Exit(1)
}

// HandleApiError reports an exceptional (non-field-correctable) failure: the
// server-supplied message verbatim, or a generic transport message when the
// body carried none.
func HandleApiError(apiErr *shared.ApiError) {
	StopSpinner()

	msg := apiErr.Msg
	if msg == "" {
		msg = "request failed"
	}
	OutputSimpleError("%s", msg)
}

// OutputValidationMessages annotates a form's invalid fields. Non-focus
// fields print in name order; the focused field always prints last, marked.
func OutputValidationMessages(res validate.Result) {
	for _, line := range validationMessageLines(res) {
		fmt.Fprintln(os.Stderr, line)
	}
}

func validationMessageLines(res validate.Result) []string {
	fields := make([]string, 0, len(res.Messages))
	for field := range res.Messages {
		if field != res.Focus {
			fields = append(fields, field)
		}
	}
	sort.Strings(fields)

	lines := make([]string, 0, len(res.Messages))
	for _, field := range fields {
		lines = append(lines, color.New(ColorHiYellow).Sprintf("  %s: %s", field, res.Messages[field]))
	}

	if res.Focus != "" {
		lines = append(lines, color.New(ColorHiYellow, color.Bold).Sprintf("→ %s: %s", res.Focus, res.Messages[res.Focus]))
	}

	return lines
}

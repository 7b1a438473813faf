package shared

import "strings"

func Capitalize(s string) string {
	if s == "" {
		return ""
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// IsBlank reports whether s is empty after trimming whitespace. Required-field
// checks are trim-based everywhere.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

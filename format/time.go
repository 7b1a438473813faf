// Relative time formatting adapted from
// https://raw.githubusercontent.com/dustin/go-humanize/master/times.go

package format

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// ServerTimeLayout is the timestamp format the board API uses for createdAt
// and updatedAt.
const ServerTimeLayout = "2006.01.02 15:04:05"

const (
	Day   = 24 * time.Hour
	Week  = 7 * Day
	Month = 30 * Day
)

type relTimeMagnitude struct {
	D      time.Duration
	Format string
	DivBy  time.Duration
}

var defaultMagnitudes = []relTimeMagnitude{
	{time.Second, "just now", time.Second},
	{2 * time.Second, "1s %s", 1},
	{time.Minute, "%ds %s", time.Second},
	{2 * time.Minute, "1m %s", 1},
	{time.Hour, "%dm %s", time.Minute},
	{2 * time.Hour, "1h %s", 1},
	{Day, "%dh %s", time.Hour},
	{2 * Day, "1d %s", 1},
	{Week, "%dd %s", Day},
	{2 * Week, "1w %s", 1},
	{Month, "%dw %s", Week},
}

// Time formats a time into a relative string.
//
// Time(someT) -> "3 weeks ago"
func Time(then time.Time) string {
	return relTime(then.UTC(), time.Now().UTC(), "ago", "from now")
}

// ServerTime formats a server timestamp string relatively, falling back to
// the raw string when it doesn't parse.
func ServerTime(s string) string {
	then, err := time.ParseInLocation(ServerTimeLayout, s, time.Local)
	if err != nil {
		return s
	}
	return relTime(then, time.Now(), "ago", "from now")
}

func relTime(a, b time.Time, albl, blbl string) string {
	return customRelTime(a, b, albl, blbl, defaultMagnitudes)
}

func customRelTime(a, b time.Time, albl, blbl string, magnitudes []relTimeMagnitude) string {
	lbl := albl
	diff := b.Sub(a)

	if a.After(b) {
		lbl = blbl
		diff = a.Sub(b)
	}

	largestMagnitude := magnitudes[len(magnitudes)-1].D

	// Beyond the largest magnitude, show the date instead
	if diff >= largestMagnitude {
		return a.Local().Format("Jan 2 2006")
	}

	n := sort.Search(len(magnitudes), func(i int) bool {
		return magnitudes[i].D > diff
	})

	if n >= len(magnitudes) {
		n = len(magnitudes) - 1
	}
	mag := magnitudes[n]

	if !strings.Contains(mag.Format, "%") {
		return mag.Format
	}

	if mag.DivBy == 1 {
		return fmt.Sprintf(mag.Format, lbl)
	}

	return fmt.Sprintf(mag.Format, diff/mag.DivBy, lbl)
}

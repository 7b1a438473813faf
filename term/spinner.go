package term

import (
	"sync"
	"time"

	"github.com/briandowns/spinner"
)

// The spinner doubles as the loading placeholder while a fetch is in flight.
// Minimum durations keep it from flashing on fast responses.
const withMessageMinDuration = 700 * time.Millisecond
const withoutMessageMinDuration = 350 * time.Millisecond

var s = spinner.New(spinner.CharSets[33], 100*time.Millisecond)
var startedAt time.Time

var lastMessage string
var active bool

// background fetches stop the spinner from their own goroutine
var spinnerMu sync.Mutex

func StartSpinner(msg string) {
	spinnerMu.Lock()
	defer spinnerMu.Unlock()

	if active {
		if msg == lastMessage {
			return
		}

		s.Stop()
	}

	startedAt = time.Now()
	s.Prefix = msg + " "
	lastMessage = msg
	s.Start()
	active = true
}

// StopSpinner is a no-op when no spinner is running.
func StopSpinner() {
	spinnerMu.Lock()
	defer spinnerMu.Unlock()

	if !active {
		return
	}

	elapsed := time.Since(startedAt)

	if lastMessage != "" && elapsed < withMessageMinDuration {
		time.Sleep(withMessageMinDuration - elapsed)
	} else if elapsed < withoutMessageMinDuration {
		time.Sleep(withoutMessageMinDuration - elapsed)
	}

	s.Stop()
	ClearCurrentLine()

	active = false
}

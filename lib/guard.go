package lib

import (
	"sync"

	"github.com/google/uuid"
)

// Mutating workflows hold an in-flight flag so a double submit (e.g. a
// double-keyed delete confirm) issues one call, not two.
var inFlightMu sync.Mutex
var inFlight bool

func beginSubmit() bool {
	inFlightMu.Lock()
	defer inFlightMu.Unlock()

	if inFlight {
		return false
	}
	inFlight = true
	return true
}

func endSubmit() {
	inFlightMu.Lock()
	defer inFlightMu.Unlock()
	inFlight = false
}

// Render tokens identify the workflow a fetch belongs to. A fetch that
// resolves after another workflow has taken over the render target is
// discarded instead of writing into a stale view.
var renderMu sync.Mutex
var activeRenderToken string

func beginRender() string {
	renderMu.Lock()
	defer renderMu.Unlock()

	activeRenderToken = uuid.New().String()
	return activeRenderToken
}

func isCurrentRender(token string) bool {
	renderMu.Lock()
	defer renderMu.Unlock()

	return token == activeRenderToken
}

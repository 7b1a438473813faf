package auth

import "board-cli/shared"

// IsOwner reports whether the session user is the author of a resource. It
// gates which mutating controls are shown; the server re-checks authorization
// on every mutating call, so this is presentational filtering only.
func IsOwner(session *shared.Session, author shared.Author) bool {
	return session != nil && session.Id == author.Id
}

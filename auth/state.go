package auth

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"

	"board-cli/fs"
	"board-cli/shared"
)

var Current *shared.Session

// Load reads the stored session. A missing file means no session. A malformed
// file is indistinguishable from absent: the stored data is discarded rather
// than raising, matching how browser clients treat an unparseable storage
// entry.
func Load() (*shared.Session, error) {
	bytes, err := os.ReadFile(fs.HomeSessionPath)

	if err != nil {
		if os.IsNotExist(err) {
			Current = nil
			return nil, nil
		}
		return nil, fmt.Errorf("error reading session.json: %v", err)
	}

	var session shared.Session
	err = json.Unmarshal(bytes, &session)
	if err != nil {
		// treat parse failure as no session
		_ = os.Remove(fs.HomeSessionPath)
		Current = nil
		return nil, nil
	}

	Current = &session
	return Current, nil
}

// Save replaces any prior session.
func Save(session *shared.Session) error {
	bytes, err := json.Marshal(session)

	if err != nil {
		return fmt.Errorf("error marshalling session: %v", err)
	}

	err = os.WriteFile(fs.HomeSessionPath, bytes, 0600)

	if err != nil {
		return fmt.Errorf("error writing session: %v", err)
	}

	Current = session

	return nil
}

func Clear() error {
	err := os.Remove(fs.HomeSessionPath)

	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("error removing session: %v", err)
	}

	Current = nil

	return nil
}

// SetAuthHeader adds the bearer token to an outgoing request. The header is
// sent even without a session — an empty token is rejected server-side as
// unauthenticated rather than the client pre-emptively blocking the call.
func SetAuthHeader(req *http.Request) {
	var accessToken string
	if Current != nil {
		accessToken = Current.Token.AccessToken
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
}

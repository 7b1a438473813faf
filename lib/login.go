package lib

import (
	"board-cli/auth"
	"board-cli/nav"
)

// Login runs the sign-in workflow and returns the `from` return target
// (default "/"). The browse loop replaces rather than pushes the history
// entry so back-navigation doesn't land on the login form again.
func Login(params nav.LoginParams) (string, error) {
	err := auth.PromptSignIn()

	if err != nil {
		return "", err
	}

	return params.From, nil
}

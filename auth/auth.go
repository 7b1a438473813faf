package auth

import (
	"errors"
	"fmt"

	"board-cli/shared"
	"board-cli/term"
	"board-cli/validate"
)

// ErrInvalidCredentials marks a sign-in rejected with per-field messages. The
// messages have already been printed; callers re-prompt instead of exiting.
var ErrInvalidCredentials = errors.New("invalid credentials")

// MustResolveSession loads the stored session and, when none exists, runs the
// interactive sign-in before returning. Workflows that require an
// authenticated user call this at entry.
func MustResolveSession() {
	if apiClient == nil {
		term.OutputErrorAndExit("error resolving session: api client not set")
	}

	session, err := Load()

	if err != nil {
		term.OutputErrorAndExit("error reading session: %v", err)
	}

	if session == nil {
		fmt.Println("🔒 You need to sign in first.")
		err = PromptSignIn()

		if err != nil {
			term.OutputErrorAndExit("error signing in: %v", err)
		}
	}
}

// SignIn authenticates against the server and persists the returned session,
// replacing any prior one.
func SignIn(email, password string) error {
	term.StartSpinner("")
	res, apiErr := apiClient.Login(shared.LoginRequest{
		Email:    email,
		Password: password,
	})
	term.StopSpinner()

	if apiErr != nil {
		return fmt.Errorf("error signing in: %v", apiErr.Msg)
	}

	if !res.Success() {
		if len(res.Errors) > 0 {
			term.OutputValidationMessages(validate.FromFieldErrors(res.Errors))
			return ErrInvalidCredentials
		}
		msg := res.Message
		if msg == "" {
			msg = "sign in failed"
		}
		return fmt.Errorf("%s", msg)
	}

	err := Save(res.Item)

	if err != nil {
		return fmt.Errorf("error storing session: %v", err)
	}

	return nil
}

func SignOut() error {
	err := Clear()

	if err != nil {
		return fmt.Errorf("error clearing session: %v", err)
	}

	return nil
}

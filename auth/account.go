package auth

import (
	"errors"
	"fmt"

	"board-cli/term"
	"board-cli/validate"

	"github.com/fatih/color"
)

// PromptSignIn collects credentials, validates them, and signs in. Invalid
// fields get their messages printed and the focused field is re-prompted
// first on retry.
func PromptSignIn() error {
	email, err := term.GetUserStringInput("Your email:")

	if err != nil {
		return fmt.Errorf("error prompting email: %v", err)
	}

	password, err := term.GetUserPasswordInput("Your password:")

	if err != nil {
		return fmt.Errorf("error prompting password: %v", err)
	}

	// password then email, matching the form's field order: focus lands on
	// the last invalid field evaluated
	res := validate.Required(map[string]string{
		"email":    email,
		"password": password,
	}, "password", "email")

	if !res.Valid() {
		term.OutputValidationMessages(res)
		return PromptSignIn()
	}

	err = SignIn(email, password)

	if errors.Is(err, ErrInvalidCredentials) {
		return PromptSignIn()
	}

	if err != nil {
		return err
	}

	color.New(color.Bold, term.ColorHiGreen).Printf("✅ Signed in as %s <%s>\n", Current.Name, Current.Email)

	return nil
}

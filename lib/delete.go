package lib

import (
	"fmt"

	"board-cli/api"
	"board-cli/nav"
	"board-cli/term"
	"board-cli/validate"

	"github.com/fatih/color"
)

// Delete confirms interactively, deletes the post, and navigates to the list
// for the post's board type. Hard delete — there is no undo.
func Delete(params nav.DetailParams) (string, error) {
	confirmed, err := term.ConfirmYesNo("Delete post %d?", params.Id)

	if err != nil {
		return "", fmt.Errorf("error getting confirmation: %v", err)
	}

	if !confirmed {
		return "", nil
	}

	if !beginSubmit() {
		return "", nil
	}
	defer endSubmit()

	term.StartSpinner("")
	res, apiErr := api.Client.DeletePost(params.Id)
	term.StopSpinner()

	if apiErr != nil {
		return "", fmt.Errorf("error deleting post: %v", apiErr.Msg)
	}

	if !res.Success() {
		if len(res.Errors) > 0 {
			term.OutputValidationMessages(validate.FromFieldErrors(res.Errors))
			return "", nil
		}
		return "", fmt.Errorf("error deleting post: %s", res.Message)
	}

	color.New(color.Bold, term.ColorHiGreen).Println("✅ Post deleted")

	return fmt.Sprintf("list?type=%s", params.Type), nil
}

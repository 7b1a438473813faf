package lib

import (
	"fmt"

	"board-cli/api"
	"board-cli/auth"
	"board-cli/shared"
	"board-cli/term"
	"board-cli/validate"

	"github.com/fatih/color"
)

// AddReply collects a reply, validates the single required field, creates it,
// and refreshes the reply list in place. No navigation.
func AddReply(postId int) error {
	auth.MustResolveSession()

	content, err := term.GetEditorInput("Reply:")
	if err != nil {
		return fmt.Errorf("error prompting reply: %v", err)
	}

	res := validate.Required(map[string]string{
		"content": content,
	}, "content")

	if !res.Valid() {
		term.OutputValidationMessages(res)
		return nil
	}

	if !beginSubmit() {
		return nil
	}
	defer endSubmit()

	term.StartSpinner("")
	replyRes, apiErr := api.Client.CreateReply(postId, shared.CreateReplyRequest{Content: content})
	term.StopSpinner()

	if apiErr != nil {
		return fmt.Errorf("error creating reply: %v", apiErr.Msg)
	}

	if !replyRes.Success() {
		if len(replyRes.Errors) > 0 {
			term.OutputValidationMessages(validate.FromFieldErrors(replyRes.Errors))
			return nil
		}
		return fmt.Errorf("error creating reply: %s", replyRes.Message)
	}

	return replyListView(postId)
}

// DeleteReply confirms, deletes one reply scoped to its post, and refreshes
// the reply list.
func DeleteReply(postId, replyId int) error {
	confirmed, err := term.ConfirmYesNo("Delete reply %d?", replyId)

	if err != nil {
		return fmt.Errorf("error getting confirmation: %v", err)
	}

	if !confirmed {
		return nil
	}

	if !beginSubmit() {
		return nil
	}
	defer endSubmit()

	term.StartSpinner("")
	res, apiErr := api.Client.DeleteReply(postId, replyId)
	term.StopSpinner()

	if apiErr != nil {
		return fmt.Errorf("error deleting reply: %v", apiErr.Msg)
	}

	if !res.Success() {
		if len(res.Errors) > 0 {
			term.OutputValidationMessages(validate.FromFieldErrors(res.Errors))
			return nil
		}
		return fmt.Errorf("error deleting reply: %s", res.Message)
	}

	color.New(color.Bold, term.ColorHiGreen).Println("✅ Reply deleted")

	return replyListView(postId)
}

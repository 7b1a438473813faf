package lib

import (
	"fmt"

	"board-cli/api"
	"board-cli/auth"
	"board-cli/nav"
	"board-cli/shared"
	"board-cli/term"
	"board-cli/validate"

	"github.com/fatih/color"
)

// Create drives the new-post workflow: session required, title and content
// collected and validated, then created. Returns the next navigation target.
func Create(params nav.NewParams) (string, error) {
	auth.MustResolveSession()

	title, err := term.GetUserStringInput("Title:")
	if err != nil {
		return "", fmt.Errorf("error prompting title: %v", err)
	}

	content, err := term.GetEditorInput("Content:")
	if err != nil {
		return "", fmt.Errorf("error prompting content: %v", err)
	}

	// content before title: focus lands on the last invalid field evaluated
	res := validate.Required(map[string]string{
		"title":   title,
		"content": content,
	}, "content", "title")

	if !res.Valid() {
		term.OutputValidationMessages(res)
		return "", nil
	}

	if !beginSubmit() {
		return "", nil
	}
	defer endSubmit()

	term.StartSpinner("")
	postRes, apiErr := api.Client.CreatePost(shared.CreatePostRequest{
		Type:    params.Type,
		Title:   title,
		Content: content,
	})
	term.StopSpinner()

	if apiErr != nil {
		return "", fmt.Errorf("error creating post: %v", apiErr.Msg)
	}

	if !postRes.Success() {
		// server-side validation came back as an absorbed 422 field-error
		// map; annotate the form fields and stop, same as a local failure
		if len(postRes.Errors) > 0 {
			term.OutputValidationMessages(validate.FromFieldErrors(postRes.Errors))
			return "", nil
		}
		return "", fmt.Errorf("error creating post: %s", postRes.Message)
	}

	color.New(color.Bold, term.ColorHiGreen).Println("✅ Post created")

	return fmt.Sprintf("list?type=%s", params.Type), nil
}

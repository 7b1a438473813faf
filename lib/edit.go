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

// Edit fetches the existing post, pre-populates the form, and updates on
// valid input. Returns the next navigation target.
func Edit(params nav.EditParams) (string, error) {
	auth.MustResolveSession()

	term.StartSpinner("")
	res, apiErr := api.Client.GetPost(params.Id)
	term.StopSpinner()

	if apiErr != nil {
		return "", fmt.Errorf("error fetching post: %v", apiErr.Msg)
	}

	if !res.Success() {
		return "", fmt.Errorf("error fetching post: %s", res.Message)
	}

	post := res.Item

	title, err := term.GetUserStringInputWithDefault("Title:", post.Title)
	if err != nil {
		return "", fmt.Errorf("error prompting title: %v", err)
	}

	fmt.Println("Current content:")
	fmt.Println(term.GetPlain(post.Content))
	content, err := term.GetEditorInput("New content (empty line keeps current):")
	if err != nil {
		return "", fmt.Errorf("error prompting content: %v", err)
	}
	if content == "" {
		content = post.Content
	}

	validation := validate.Required(map[string]string{
		"title":   title,
		"content": content,
	}, "content", "title")

	if !validation.Valid() {
		term.OutputValidationMessages(validation)
		return "", nil
	}

	if !beginSubmit() {
		return "", nil
	}
	defer endSubmit()

	term.StartSpinner("")
	updateRes, apiErr := api.Client.UpdatePost(params.Id, shared.UpdatePostRequest{
		Title:   title,
		Content: content,
	})
	term.StopSpinner()

	if apiErr != nil {
		return "", fmt.Errorf("error updating post: %v", apiErr.Msg)
	}

	if !updateRes.Success() {
		if len(updateRes.Errors) > 0 {
			term.OutputValidationMessages(validate.FromFieldErrors(updateRes.Errors))
			return "", nil
		}
		return "", fmt.Errorf("error updating post: %s", updateRes.Message)
	}

	color.New(color.Bold, term.ColorHiGreen).Println("✅ Post updated")

	return fmt.Sprintf("detail?id=%d&type=%s", params.Id, params.Type), nil
}

package lib

import (
	"fmt"

	"board-cli/api"
	"board-cli/auth"
	"board-cli/format"
	"board-cli/nav"
	"board-cli/shared"
	"board-cli/term"

	"github.com/fatih/color"
)

// Detail fetches a post, renders it, and renders its reply list. Edit and
// delete affordances only appear when the session user is the author; reply
// delete affordances are gated the same way per reply.
func Detail(params nav.DetailParams) error {
	term.StartSpinner("")
	res, apiErr := api.Client.GetPost(params.Id)
	term.StopSpinner()

	if apiErr != nil {
		return fmt.Errorf("error fetching post: %v", apiErr.Msg)
	}

	if !res.Success() {
		return fmt.Errorf("error fetching post: %s", res.Message)
	}

	renderPost(res.Item, params)

	return replyListView(params.Id)
}

func renderPost(post *shared.Post, params nav.DetailParams) {
	fmt.Println()
	color.New(color.Bold, term.ColorHiGreen).Println(post.Title)
	fmt.Printf("by %s · %s · %d views\n", post.User.Name, format.ServerTime(post.UpdatedAt), post.Views)
	fmt.Println(term.GetDivisionLine())

	md, err := term.GetMarkdown(post.Content)
	if err != nil {
		fmt.Println(term.GetPlain(post.Content))
	} else {
		fmt.Print(md)
	}
	fmt.Println(term.GetDivisionLine())

	fmt.Printf("→ list?type=%s\n", post.Type)
	if auth.IsOwner(auth.Current, post.User) {
		fmt.Printf("→ edit?id=%d&type=%s\n", post.Id, post.Type)
		fmt.Printf("→ delete?id=%d&type=%s\n", post.Id, post.Type)
	}
}

// replyListView fetches and renders the reply list for a post. Reply
// creation and deletion re-run this to refresh the list in place.
func replyListView(postId int) error {
	term.StartSpinner("")
	res, apiErr := api.Client.ListReplies(postId)
	term.StopSpinner()

	if apiErr != nil {
		return fmt.Errorf("error fetching replies: %v", apiErr.Msg)
	}

	if !res.Success() {
		return fmt.Errorf("error fetching replies: %s", res.Message)
	}

	renderReplyList(postId, res.Item)

	return nil
}

func renderReplyList(postId int, replies []*shared.Reply) {
	fmt.Println()
	color.New(color.Bold, term.ColorHiMagenta).Printf("Replies (%d)\n", len(replies))

	for _, reply := range replies {
		marker := "👤"
		if reply.User.Image != "" {
			marker = "🖼️"
		}
		fmt.Printf("%s %s · %s\n", marker, color.New(term.ColorHiYellow).Sprint(reply.User.Name), format.ServerTime(reply.UpdatedAt))
		fmt.Println(term.GetPlain(reply.Content))

		// delete affordances are only rendered for replies of the open post,
		// and only for the reply's author
		if auth.IsOwner(auth.Current, reply.User) {
			fmt.Printf("  → reply-delete?id=%d&replyId=%d\n", postId, reply.Id)
		}
	}

	fmt.Printf("→ reply?id=%d\n", postId)
}

package lib

import (
	"fmt"
	"io"
	"net/url"
	"os"
	"strconv"

	"board-cli/api"
	"board-cli/format"
	"board-cli/nav"
	"board-cli/shared"
	"board-cli/term"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
)

// ListLimit is the fixed number of posts per list page.
const ListLimit = 3

var BoardNames = map[string]string{
	"info":   "Info",
	"free":   "Free",
	"brunch": "Brunch",
}

// render target for list output, swapped out by tests
var out io.Writer = os.Stdout

// List fetches one filtered page of posts and renders rows plus a pagination
// strip, waiting for the fetch. Requesting a page past totalPages renders an
// empty row set without error.
func List(params nav.ListParams) error {
	term.StartSpinner("")
	return <-ListInBackground(params)
}

// ListInBackground starts the fetch and renders the page whenever it
// resolves. A fetch that resolves after a later workflow has taken over the
// render target is discarded instead of writing into the stale view. The
// returned channel delivers the fetch outcome once.
func ListInBackground(params nav.ListParams) <-chan error {
	token := beginRender()
	done := make(chan error, 1)

	go func() {
		res, apiErr := api.Client.ListPosts(shared.ListPostsParams{
			Type:    params.Type,
			Keyword: params.Keyword,
			Page:    params.Page,
			Limit:   strconv.Itoa(ListLimit),
		})
		term.StopSpinner()

		if apiErr != nil {
			done <- fmt.Errorf("error fetching posts: %v", apiErr.Msg)
			return
		}

		if !res.Success() {
			done <- fmt.Errorf("error fetching posts: %s", res.Message)
			return
		}

		if !isCurrentRender(token) {
			done <- nil
			return
		}

		renderList(params, res.Item)
		if res.Pagination != nil {
			renderPagination(params, *res.Pagination)
		}
		done <- nil
	}()

	return done
}

func renderList(params nav.ListParams, posts []*shared.Post) {
	boardName := BoardNames[params.Type]
	if boardName == "" {
		boardName = params.Type
	}

	fmt.Fprintln(out)
	color.New(color.Bold, term.ColorHiMagenta).Fprintf(out, "%s board", boardName)
	if params.Keyword != "" {
		fmt.Fprintf(out, " · search %q", params.Keyword)
	}
	fmt.Fprintln(out)

	if len(posts) == 0 {
		fmt.Fprintln(out, "🤷‍♂️ No posts")
		fmt.Fprintln(out)
		term.PrintCmds("", "new")
		return
	}

	table := tablewriter.NewWriter(out)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"#", "Title", "Author", "Views", "Replies", "Created"})

	for _, post := range posts {
		table.Append([]string{
			strconv.Itoa(post.Id),
			post.Title,
			post.User.Name,
			strconv.Itoa(post.Views),
			strconv.Itoa(post.RepliesCount),
			format.ServerTime(post.CreatedAt),
		})
	}

	table.Render()
}

// PageLinks builds the pagination strip: one query-string link per page from
// 1 to totalPages, preserving the list's type and keyword.
func PageLinks(params nav.ListParams, pagination shared.Pagination) []string {
	links := make([]string, 0, pagination.TotalPages)

	for i := 1; i <= pagination.TotalPages; i++ {
		query := url.Values{}
		query.Set("type", params.Type)
		if params.Keyword != "" {
			query.Set("keyword", params.Keyword)
		}
		query.Set("page", strconv.Itoa(i))
		links = append(links, "list?"+query.Encode())
	}

	return links
}

func renderPagination(params nav.ListParams, pagination shared.Pagination) {
	links := PageLinks(params, pagination)
	if len(links) == 0 {
		return
	}

	currentPage, _ := strconv.Atoi(params.Page)

	fmt.Fprint(out, "Pages: ")
	for i := range links {
		page := i + 1
		if page == currentPage {
			color.New(color.Bold, term.ColorHiCyan).Fprintf(out, "[%d] ", page)
		} else {
			fmt.Fprintf(out, "%d ", page)
		}
	}
	fmt.Fprintln(out)

	for i, link := range links {
		if i+1 == currentPage {
			continue
		}
		fmt.Fprintf(out, "  → %s\n", link)
	}
}

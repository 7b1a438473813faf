package lib

import (
	"bytes"
	"strconv"
	"testing"

	"board-cli/api"
	"board-cli/nav"
	"board-cli/shared"
	"board-cli/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubApiClient struct {
	types.ApiClient
	listPosts func(shared.ListPostsParams) (*shared.PostListRes, *shared.ApiError)
}

func (s *stubApiClient) ListPosts(params shared.ListPostsParams) (*shared.PostListRes, *shared.ApiError) {
	return s.listPosts(params)
}

func useStubApi(t *testing.T, stub types.ApiClient) {
	t.Helper()

	orig := api.Client
	api.Client = stub
	t.Cleanup(func() { api.Client = orig })
}

func useRenderBuffer(t *testing.T) *bytes.Buffer {
	t.Helper()

	var buf bytes.Buffer
	orig := out
	out = &buf
	t.Cleanup(func() { out = orig })
	return &buf
}

func TestListRendersWhenTokenIsCurrent(t *testing.T) {
	buf := useRenderBuffer(t)

	useStubApi(t, &stubApiClient{listPosts: func(params shared.ListPostsParams) (*shared.PostListRes, *shared.ApiError) {
		return &shared.PostListRes{
			ApiRes: shared.ApiRes{Ok: 1},
			Item:   []*shared.Post{{Id: 1, Title: "fresh fetch", User: shared.Author{Name: "u"}}},
		}, nil
	}})

	require.NoError(t, <-ListInBackground(nav.ListParams{Type: "info", Page: "1"}))

	assert.Contains(t, buf.String(), "fresh fetch")
}

func TestStaleListResultIsDiscarded(t *testing.T) {
	buf := useRenderBuffer(t)

	gate := make(chan struct{})
	useStubApi(t, &stubApiClient{listPosts: func(params shared.ListPostsParams) (*shared.PostListRes, *shared.ApiError) {
		<-gate
		return &shared.PostListRes{
			ApiRes: shared.ApiRes{Ok: 1},
			Item:   []*shared.Post{{Id: 1, Title: "superseded fetch", User: shared.Author{Name: "u"}}},
		}, nil
	}})

	done := ListInBackground(nav.ListParams{Type: "info", Page: "1"})

	// a later workflow takes over the render target while the fetch is
	// still in flight
	beginRender()
	close(gate)

	require.NoError(t, <-done)
	assert.NotContains(t, buf.String(), "superseded fetch")
}

func TestFailedListFetchSurfacesOnce(t *testing.T) {
	useRenderBuffer(t)

	useStubApi(t, &stubApiClient{listPosts: func(params shared.ListPostsParams) (*shared.PostListRes, *shared.ApiError) {
		return nil, &shared.ApiError{Status: 500, Msg: "server error"}
	}})

	err := <-ListInBackground(nav.ListParams{Type: "info", Page: "1"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "server error")
}

func TestPageLinks(t *testing.T) {
	// 5 items at 3 per page -> 2 pages
	params := nav.ListParams{Type: "info", Page: "1"}
	pagination := shared.Pagination{Page: 1, Limit: 3, Total: 5, TotalPages: 2}

	links := PageLinks(params, pagination)

	require.Len(t, links, 2)
	assert.Equal(t, "list?page=1&type=info", links[0])
	assert.Equal(t, "list?page=2&type=info", links[1])
}

func TestPageLinksPreserveKeyword(t *testing.T) {
	params := nav.ListParams{Type: "free", Keyword: "go", Page: "2"}
	pagination := shared.Pagination{Page: 2, Limit: 3, Total: 7, TotalPages: 3}

	links := PageLinks(params, pagination)

	require.Len(t, links, 3)
	for i, link := range links {
		target, err := nav.Parse(link)
		require.NoError(t, err)
		assert.Equal(t, nav.PageList, target.Page)
		assert.Equal(t, "free", target.Params.Get("type"))
		assert.Equal(t, "go", target.Params.Get("keyword"))
		page, err := strconv.Atoi(target.Params.Get("page"))
		require.NoError(t, err)
		assert.Equal(t, i+1, page)
	}
}

func TestPageLinksEmpty(t *testing.T) {
	links := PageLinks(nav.ListParams{Type: "info"}, shared.Pagination{})
	assert.Empty(t, links)
}

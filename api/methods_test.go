package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"board-cli/auth"
	"board-cli/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func useTestServer(t *testing.T, handler http.Handler) {
	t.Helper()

	server := httptest.NewServer(handler)
	origHost := apiHost
	apiHost = server.URL
	t.Cleanup(func() {
		apiHost = origHost
		auth.Current = nil
		server.Close()
	})
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, body any) {
	t.Helper()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(body))
}

func TestRequestCarriesAuthAndTenantHeaders(t *testing.T) {
	var gotAuth, gotClientId, gotAccept string

	useTestServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotClientId = r.Header.Get("Client-Id")
		gotAccept = r.Header.Get("Accept")
		writeJSON(t, w, 200, shared.PostListRes{ApiRes: shared.ApiRes{Ok: 1}})
	}))

	auth.Current = &shared.Session{Id: 1, Token: shared.Token{AccessToken: "tok"}}

	_, apiErr := Client.ListPosts(shared.ListPostsParams{Type: "info", Page: "1", Limit: "3"})
	require.Nil(t, apiErr)

	assert.Equal(t, "Bearer tok", gotAuth)
	assert.Equal(t, "board", gotClientId)
	assert.Equal(t, "application/json", gotAccept)
}

func TestRequestSendsEmptyBearerWithoutSession(t *testing.T) {
	var gotAuth string

	useTestServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		writeJSON(t, w, 401, shared.ApiRes{Ok: 0, Message: "authentication required"})
	}))

	auth.Current = nil

	_, apiErr := Client.GetPost(1)
	require.NotNil(t, apiErr)

	// the header is sent either way; textproto trims the trailing space off
	// the empty token, so the server sees a bare scheme
	assert.Equal(t, "Bearer", gotAuth)
	assert.Equal(t, 401, apiErr.Status)
	assert.Equal(t, "authentication required", apiErr.Msg)
}

func TestListPostsQueryParams(t *testing.T) {
	var gotQuery url.Values

	useTestServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		writeJSON(t, w, 200, shared.PostListRes{
			ApiRes:     shared.ApiRes{Ok: 1},
			Item:       []*shared.Post{{Id: 1, Title: "t"}},
			Pagination: &shared.Pagination{Page: 1, Limit: 3, Total: 5, TotalPages: 2},
		})
	}))

	res, apiErr := Client.ListPosts(shared.ListPostsParams{
		Type:    "info",
		Keyword: "go",
		Page:    "1",
		Limit:   "3",
	})
	require.Nil(t, apiErr)

	assert.Equal(t, "info", gotQuery.Get("type"))
	assert.Equal(t, "go", gotQuery.Get("keyword"))
	assert.Equal(t, "1", gotQuery.Get("page"))
	assert.Equal(t, "3", gotQuery.Get("limit"))

	require.True(t, res.Success())
	require.NotNil(t, res.Pagination)
	assert.Equal(t, 2, res.Pagination.TotalPages)
}

func TestBaseParamsMergedCallerWins(t *testing.T) {
	var gotQuery url.Values

	useTestServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		writeJSON(t, w, 200, shared.PostListRes{ApiRes: shared.ApiRes{Ok: 1}})
	}))

	origBase := baseParams
	baseParams = url.Values{"delay": {"1000"}, "page": {"99"}}
	t.Cleanup(func() { baseParams = origBase })

	_, apiErr := Client.ListPosts(shared.ListPostsParams{Type: "info", Page: "1", Limit: "3"})
	require.Nil(t, apiErr)

	assert.Equal(t, "1000", gotQuery.Get("delay"))
	// caller value wins on key collision
	assert.Equal(t, "1", gotQuery.Get("page"))
}

func TestCreatePost422WithFieldErrorsIsAbsorbed(t *testing.T) {
	useTestServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, 422, shared.PostRes{
			ApiRes: shared.ApiRes{
				Ok:      0,
				Message: "validation failed",
				Errors: map[string]shared.FieldError{
					"title": {Type: "field", Value: "", Msg: "title is required", Location: "body"},
				},
			},
		})
	}))

	res, apiErr := Client.CreatePost(shared.CreatePostRequest{Type: "info", Content: "c"})

	// never a rejection: resolved with the failure-shaped envelope
	require.Nil(t, apiErr)
	require.NotNil(t, res)
	assert.False(t, res.Success())
	require.Len(t, res.Errors, 1)
	assert.Equal(t, "title is required", res.Errors["title"].Msg)
}

func TestCreatePost422WithoutFieldErrorsRejects(t *testing.T) {
	useTestServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, 422, shared.ApiRes{Ok: 0, Message: "unprocessable"})
	}))

	res, apiErr := Client.CreatePost(shared.CreatePostRequest{Type: "info", Title: "t", Content: "c"})

	assert.Nil(t, res)
	require.NotNil(t, apiErr)
	assert.Equal(t, 422, apiErr.Status)
	assert.Equal(t, "unprocessable", apiErr.Msg)
}

func TestGetPost422WithFieldErrorsIsAbsorbed(t *testing.T) {
	useTestServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, 422, shared.PostRes{
			ApiRes: shared.ApiRes{
				Ok:      0,
				Message: "validation failed",
				Errors: map[string]shared.FieldError{
					"id": {Type: "field", Value: "x", Msg: "id must be a number", Location: "params"},
				},
			},
		})
	}))

	res, apiErr := Client.GetPost(7)

	require.Nil(t, apiErr)
	require.NotNil(t, res)
	assert.False(t, res.Success())
	assert.Equal(t, "id must be a number", res.Errors["id"].Msg)
}

func TestDeletePost422WithFieldErrorsIsAbsorbed(t *testing.T) {
	useTestServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, 422, shared.OkRes{
			ApiRes: shared.ApiRes{
				Ok:      0,
				Message: "validation failed",
				Errors: map[string]shared.FieldError{
					"id": {Type: "field", Value: "x", Msg: "id must be a number", Location: "params"},
				},
			},
		})
	}))

	res, apiErr := Client.DeletePost(7)

	require.Nil(t, apiErr)
	require.NotNil(t, res)
	assert.False(t, res.Success())
	assert.Equal(t, "id must be a number", res.Errors["id"].Msg)
}

func TestDeleteReply422WithFieldErrorsIsAbsorbed(t *testing.T) {
	useTestServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, 422, shared.OkRes{
			ApiRes: shared.ApiRes{
				Ok: 0,
				Errors: map[string]shared.FieldError{
					"replyId": {Msg: "replyId must be a number"},
				},
			},
		})
	}))

	res, apiErr := Client.DeleteReply(7, 3)

	require.Nil(t, apiErr)
	require.NotNil(t, res)
	assert.False(t, res.Success())
	assert.Equal(t, "replyId must be a number", res.Errors["replyId"].Msg)
}

func TestLogin422WithFieldErrorsIsAbsorbed(t *testing.T) {
	useTestServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, 422, shared.LoginRes{
			ApiRes: shared.ApiRes{
				Ok: 0,
				Errors: map[string]shared.FieldError{
					"email": {Msg: "email is required"},
				},
			},
		})
	}))

	res, apiErr := Client.Login(shared.LoginRequest{Password: "pw"})

	require.Nil(t, apiErr)
	require.NotNil(t, res)
	assert.False(t, res.Success())
	assert.Equal(t, "email is required", res.Errors["email"].Msg)
}

func TestUpdatePostUsesPatch(t *testing.T) {
	var gotMethod string
	var gotBody shared.UpdatePostRequest

	useTestServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		writeJSON(t, w, 200, shared.PostRes{
			ApiRes: shared.ApiRes{Ok: 1},
			Item:   &shared.Post{Id: 7, Title: "new title"},
		})
	}))

	res, apiErr := Client.UpdatePost(7, shared.UpdatePostRequest{Title: "new title", Content: "c"})
	require.Nil(t, apiErr)

	assert.Equal(t, http.MethodPatch, gotMethod)
	assert.Equal(t, "new title", gotBody.Title)
	assert.True(t, res.Success())
}

func TestDeleteReplyPath(t *testing.T) {
	var gotPath, gotMethod string

	useTestServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotMethod = r.Method
		writeJSON(t, w, 200, shared.OkRes{ApiRes: shared.ApiRes{Ok: 1}})
	}))

	res, apiErr := Client.DeleteReply(7, 3)
	require.Nil(t, apiErr)

	assert.Equal(t, http.MethodDelete, gotMethod)
	assert.Equal(t, "/posts/7/replies/3", gotPath)
	assert.True(t, res.Success())
}

func TestNonJsonErrorBody(t *testing.T) {
	useTestServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		w.WriteHeader(502)
		_, _ = w.Write([]byte("bad gateway\n"))
	}))

	_, apiErr := Client.GetPost(1)
	require.NotNil(t, apiErr)
	assert.Equal(t, 502, apiErr.Status)
	assert.Equal(t, "bad gateway", apiErr.Msg)
}

func TestTransportFailureSurfacesOnce(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	origHost := apiHost
	apiHost = server.URL
	server.Close()
	t.Cleanup(func() { apiHost = origHost })

	res, apiErr := Client.GetPost(1)
	assert.Nil(t, res)
	require.NotNil(t, apiErr)
	assert.Contains(t, apiErr.Msg, "error sending request")
}

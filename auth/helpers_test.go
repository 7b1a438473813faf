package auth

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestRequest(t *testing.T) *http.Request {
	t.Helper()

	req, err := http.NewRequest(http.MethodGet, "http://localhost/posts", nil)
	require.NoError(t, err)
	return req
}

package api

import (
	"net"
	"net/http"
	"net/url"
	"os"
	"time"

	"board-cli/auth"
	"board-cli/types"
)

const dialTimeout = 10 * time.Second

// reqTimeout bounds every request. No retries are performed anywhere — each
// failure surfaces once to the workflow that issued the call.
const reqTimeout = 5 * time.Second

// clientId is the fixed tenant identifier sent with every request.
const clientId = "board"

type Api struct{}

var Client types.ApiClient = (*Api)(nil)

var apiHost string

func init() {
	if host := os.Getenv("BOARD_API_HOST"); host != "" {
		apiHost = host
	} else {
		apiHost = "https://fesp-api.koyeb.app/market"
	}
}

// baseParams are merged under caller-supplied query params before dispatch.
// Caller values win on key collision.
var baseParams = url.Values{}

type authenticatedTransport struct {
	underlyingTransport http.RoundTripper
}

// RoundTrip executes a single HTTP transaction, adding content negotiation,
// the tenant identifier, and the bearer token. The token header is sent even
// without a session.
func (t *authenticatedTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Client-Id", clientId)
	auth.SetAuthHeader(req)
	mergeBaseParams(req)
	return t.underlyingTransport.RoundTrip(req)
}

func mergeBaseParams(req *http.Request) {
	if len(baseParams) == 0 {
		return
	}

	query := req.URL.Query()
	for key, vals := range baseParams {
		if _, ok := query[key]; !ok {
			query[key] = vals
		}
	}
	req.URL.RawQuery = query.Encode()
}

var netDialer = &net.Dialer{
	Timeout: dialTimeout,
}

var apiClient = &http.Client{
	Transport: &authenticatedTransport{
		underlyingTransport: &http.Transport{
			Dial: netDialer.Dial,
		},
	},
	Timeout: reqTimeout,
}

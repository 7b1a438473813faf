package api

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"

	"board-cli/shared"
)

// decodeRes resolves one response. Every resource call funnels through here
// so the absorption policy is uniform across methods: absorbed 422s yield
// the parsed failure-shaped envelope, any other >=400 status rejects, and
// success bodies decode into T.
func decodeRes[T any](resp *http.Response) (*T, *shared.ApiError) {
	if resp.StatusCode >= 400 {
		errorBody, _ := io.ReadAll(resp.Body)
		if res, ok := absorbValidation[T](resp, errorBody); ok {
			return res, nil
		}
		return nil, handleApiError(resp, errorBody)
	}

	var res T
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		return nil, &shared.ApiError{Msg: fmt.Sprintf("error decoding response: %v", err)}
	}

	return &res, nil
}

func handleApiError(r *http.Response, errBody []byte) *shared.ApiError {
	// Check if the response is JSON
	if !strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		return &shared.ApiError{
			Status: r.StatusCode,
			Msg:    strings.TrimSpace(string(errBody)),
		}
	}

	var res shared.ApiRes
	if err := json.Unmarshal(errBody, &res); err != nil {
		log.Printf("Error unmarshalling JSON: %v\n", err)
		return &shared.ApiError{
			Status: r.StatusCode,
			Msg:    strings.TrimSpace(string(errBody)),
		}
	}

	msg := res.Message
	if msg == "" {
		msg = http.StatusText(r.StatusCode)
	}

	return &shared.ApiError{
		Status: r.StatusCode,
		Msg:    msg,
	}
}

// absorbValidation neutralizes a 422 response that carries a non-empty
// field-error map: the parsed failure-shaped envelope is returned as a
// resolved result instead of a rejection, and the caller applies the per-field
// messages to its form. A 422 without a field-error map is not absorbed and
// follows the normal rejection path with the original body.
func absorbValidation[T any](r *http.Response, errBody []byte) (*T, bool) {
	if r.StatusCode != http.StatusUnprocessableEntity {
		return nil, false
	}

	var probe shared.ApiRes
	if err := json.Unmarshal(errBody, &probe); err != nil {
		return nil, false
	}

	if len(probe.Errors) == 0 {
		return nil, false
	}

	var res T
	if err := json.Unmarshal(errBody, &res); err != nil {
		return nil, false
	}

	return &res, true
}

package shared

// FieldError is one entry of the per-field error map the server returns on a
// 422 status.
type FieldError struct {
	Type     string `json:"type"`
	Value    string `json:"value"`
	Msg      string `json:"msg"`
	Location string `json:"location"`
}

// ApiError covers transport-level and business failures. Validation failures
// carried by a 422 field-error map never become an ApiError — they are
// absorbed at the gateway and surface through an envelope's Errors map.
type ApiError struct {
	Status int    `json:"status"`
	Msg    string `json:"message"`
}

func (e *ApiError) Error() string {
	return e.Msg
}

// Envelope fields common to every response. Ok is the discriminant: 1 for
// success, 0 for failure. Callers branch on Ok for expected failures and on
// *ApiError for exceptional ones.
type ApiRes struct {
	Ok      int                   `json:"ok"`
	Message string                `json:"message,omitempty"`
	Errors  map[string]FieldError `json:"errors,omitempty"`
}

func (r ApiRes) Success() bool {
	return r.Ok == 1
}

type PostListRes struct {
	ApiRes
	Item       []*Post     `json:"item,omitempty"`
	Pagination *Pagination `json:"pagination,omitempty"`
}

type PostRes struct {
	ApiRes
	Item *Post `json:"item,omitempty"`
}

type ReplyListRes struct {
	ApiRes
	Item []*Reply `json:"item,omitempty"`
}

type ReplyRes struct {
	ApiRes
	Item *Reply `json:"item,omitempty"`
}

type OkRes struct {
	ApiRes
}

type LoginRes struct {
	ApiRes
	Item *Session `json:"item,omitempty"`
}

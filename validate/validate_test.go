package validate

import (
	"testing"

	"board-cli/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequiredAllValid(t *testing.T) {
	res := Required(map[string]string{
		"title":   "t",
		"content": "c",
	}, "content", "title")

	assert.True(t, res.Valid())
	assert.Empty(t, res.Messages)
	assert.Empty(t, res.Focus)
}

func TestRequiredBlankIsTrimBased(t *testing.T) {
	res := Required(map[string]string{
		"title":   "  \t ",
		"content": "c",
	}, "content", "title")

	assert.False(t, res.Valid())
	assert.Equal(t, map[string]string{"title": "Title is required."}, res.Messages)
	assert.Equal(t, "title", res.Focus)
}

func TestRequiredFocusIsLastInvalidInOrder(t *testing.T) {
	tests := []struct {
		name      string
		values    map[string]string
		fields    []string
		wantFocus string
		wantCount int
	}{
		{
			name:      "both empty, content evaluated first",
			values:    map[string]string{"title": "", "content": ""},
			fields:    []string{"content", "title"},
			wantFocus: "title",
			wantCount: 2,
		},
		{
			name:      "empty content always blocks regardless of title",
			values:    map[string]string{"title": "t", "content": ""},
			fields:    []string{"content", "title"},
			wantFocus: "content",
			wantCount: 1,
		},
		{
			name:      "login order: password then email",
			values:    map[string]string{"email": "", "password": ""},
			fields:    []string{"password", "email"},
			wantFocus: "email",
			wantCount: 2,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			res := Required(test.values, test.fields...)
			assert.False(t, res.Valid())
			assert.Equal(t, test.wantFocus, res.Focus)
			assert.Len(t, res.Messages, test.wantCount)
		})
	}
}

func TestFromFieldErrors(t *testing.T) {
	res := FromFieldErrors(map[string]shared.FieldError{
		"title":   {Type: "field", Value: "", Msg: "title is required", Location: "body"},
		"content": {Type: "field", Value: "", Msg: "content is required", Location: "body"},
	})

	require.False(t, res.Valid())
	assert.Equal(t, "title is required", res.Messages["title"])
	assert.Equal(t, "content is required", res.Messages["content"])
	// exactly one message per listed field
	assert.Len(t, res.Messages, 2)
}

func TestFromFieldErrorsEmpty(t *testing.T) {
	res := FromFieldErrors(nil)
	assert.True(t, res.Valid())
}

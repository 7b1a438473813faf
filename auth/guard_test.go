package auth

import (
	"testing"

	"board-cli/shared"

	"github.com/stretchr/testify/assert"
)

func TestIsOwner(t *testing.T) {
	session := &shared.Session{Id: 7, Email: "u@example.com", Name: "u"}

	tests := []struct {
		name    string
		session *shared.Session
		author  shared.Author
		want    bool
	}{
		{"matching ids", session, shared.Author{Id: 7, Name: "u"}, true},
		{"different author", session, shared.Author{Id: 8, Name: "other"}, false},
		{"absent session", nil, shared.Author{Id: 7, Name: "u"}, false},
		{"absent session zero author", nil, shared.Author{}, false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.want, IsOwner(test.session, test.author))
		})
	}
}

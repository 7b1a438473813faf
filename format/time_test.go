package format

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTime(t *testing.T) {
	tests := []struct {
		name string
		then time.Time
		want string
	}{
		{"just now", time.Now(), "just now"},
		{"minutes ago", time.Now().Add(-5 * time.Minute), "5m ago"},
		{"hours ago", time.Now().Add(-3 * time.Hour), "3h ago"},
		{"days ago", time.Now().Add(-2*Day - time.Hour), "2d ago"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.want, Time(test.then))
		})
	}
}

func TestServerTime(t *testing.T) {
	then := time.Now().Add(-10 * time.Minute)
	assert.Equal(t, "10m ago", ServerTime(then.Format(ServerTimeLayout)))
}

func TestServerTimeFallsBackToRawString(t *testing.T) {
	assert.Equal(t, "not a timestamp", ServerTime("not a timestamp"))
}

func TestOldTimesShowDate(t *testing.T) {
	then := time.Date(2020, 3, 14, 0, 0, 0, 0, time.Local)
	assert.Equal(t, "Mar 14 2020", Time(then))
}

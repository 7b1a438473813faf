package lib

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBeginSubmitRefusesSecondWhileInFlight(t *testing.T) {
	require.True(t, beginSubmit())
	assert.False(t, beginSubmit())

	endSubmit()
	assert.True(t, beginSubmit())
	endSubmit()
}

func TestBeginSubmitSingleWinnerUnderContention(t *testing.T) {
	var wins int32
	var wg sync.WaitGroup

	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if beginSubmit() {
				atomic.AddInt32(&wins, 1)
			}
		}()
	}
	wg.Wait()

	assert.EqualValues(t, 1, wins)
	endSubmit()
}

func TestRenderTokenSupersession(t *testing.T) {
	first := beginRender()
	assert.True(t, isCurrentRender(first))

	second := beginRender()
	assert.False(t, isCurrentRender(first))
	assert.True(t, isCurrentRender(second))
}

package surface

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandlersUnsubscribeRemovesOnlyThatHandler(t *testing.T) {
	var h Handlers
	var calls []string
	first := h.OnScroll(func() error { calls = append(calls, "first"); return nil })
	h.OnScroll(func() error { calls = append(calls, "second"); return nil })
	h.OnResize(func() error { calls = append(calls, "resize"); return nil })
	assert.Equal(t, 3, h.Subscribers())

	first.Unsubscribe()
	first.Unsubscribe()
	require.NoError(t, h.FireScroll())
	assert.Equal(t, []string{"second"}, calls)
	assert.Equal(t, 2, h.Subscribers())

	require.NoError(t, h.FireResize())
	assert.Equal(t, []string{"second", "resize"}, calls)
}

func TestHandlersUnsubscribeDuringFire(t *testing.T) {
	var h Handlers
	calls := 0
	var sub interface{ Unsubscribe() }
	sub = h.OnScroll(func() error {
		calls++
		sub.Unsubscribe()
		return nil
	})
	h.OnScroll(func() error { calls++; return nil })

	require.NoError(t, h.FireScroll())
	assert.Equal(t, 2, calls)
	assert.Equal(t, 1, h.Subscribers())
}

func TestHandlersJoinErrors(t *testing.T) {
	var h Handlers
	errA := errors.New("a")
	errB := errors.New("b")
	h.OnResize(func() error { return errA })
	h.OnResize(func() error { return errB })

	err := h.FireResize()
	assert.ErrorIs(t, err, errA)
	assert.ErrorIs(t, err, errB)
}

func TestClamp(t *testing.T) {
	tests := []struct {
		offset, content, viewport, want int
	}{
		{offset: 5, content: 20, viewport: 10, want: 5},
		{offset: 15, content: 20, viewport: 10, want: 10},
		{offset: -1, content: 20, viewport: 10, want: 0},
		{offset: 3, content: 5, viewport: 10, want: 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Clamp(tt.offset, tt.content, tt.viewport))
	}
}

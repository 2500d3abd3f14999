package surface

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryClampsOffsetToContent(t *testing.T) {
	m := NewMemory[string](10)
	m.SetContentExtent(25)

	require.NoError(t, m.Scroll(40))
	assert.Equal(t, 15, m.ScrollOffset())

	require.NoError(t, m.Scroll(-3))
	assert.Equal(t, 0, m.ScrollOffset())

	m.SetScrollOffset(12)
	m.SetContentExtent(15)
	assert.Equal(t, 5, m.ScrollOffset())
}

func TestMemoryFlushDeliversPendingScrollOnce(t *testing.T) {
	m := NewMemory[string](10)
	m.SetContentExtent(100)
	calls := 0
	m.OnScroll(func() error { calls++; return nil })

	require.NoError(t, m.Flush())
	assert.Zero(t, calls)

	m.SetScrollOffset(20)
	assert.Zero(t, calls)
	require.NoError(t, m.Flush())
	require.NoError(t, m.Flush())
	assert.Equal(t, 1, calls)
}

func TestMemoryUnsubscribe(t *testing.T) {
	m := NewMemory[string](10)
	var got []string
	a := m.OnResize(func() error { got = append(got, "a"); return nil })
	m.OnResize(func() error { got = append(got, "b"); return nil })
	assert.Equal(t, 2, m.Subscribers())

	a.Unsubscribe()
	require.NoError(t, m.Resize(12))
	assert.Equal(t, []string{"b"}, got)
	assert.Equal(t, 12, m.ViewportExtent())
	assert.Equal(t, 1, m.Subscribers())
}

func TestMemoryJoinsHandlerErrors(t *testing.T) {
	m := NewMemory[string](10)
	boom := errors.New("boom")
	m.OnScroll(func() error { return boom })

	err := m.Scroll(1)
	assert.ErrorIs(t, err, boom)
}

func TestMemoryRecordsViolations(t *testing.T) {
	m := NewMemory[string](10)
	m.Attach("a", 0)
	m.Attach("b", 0)
	m.Detach("a")
	m.Detach("a")
	m.Replace("x", "c", 5)

	assert.Len(t, m.Violations(), 3)
	assert.Equal(t, 2, m.DetachCount("a"))
	assert.Equal(t, []Placement[string]{{Node: "b", Offset: 0}, {Node: "c", Offset: 5}}, m.Attached())
	assert.Equal(t, 2, m.Attaches)
	assert.Equal(t, 1, m.Replaces)
	assert.Equal(t, 2, m.Detaches)
}

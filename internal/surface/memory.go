// Package surface provides an in-memory vlist.Surface that records every
// call made to it, and the subscriber bookkeeping every surface shares. The
// in-memory surface backs the headless simulator and the engine tests.
package surface

import (
	"fmt"
	"sort"

	"github.com/gravitrone/vlist/internal/vlist"
)

// Placement is an attached node and its offset.
type Placement[N comparable] struct {
	Node   N
	Offset int
}

// Memory is a Surface that keeps attached nodes in a map and behaves like a
// scroll container: offsets are clamped to the scrollable content.
type Memory[N comparable] struct {
	Handlers

	viewport int
	content  int
	offset   int
	pending  bool
	released bool

	attached map[N]int
	detached map[N]int

	Attaches   int
	Replaces   int
	Detaches   int
	violations []string
}

var _ vlist.Surface[string] = (*Memory[string])(nil)

// NewMemory returns a surface with the given viewport extent.
func NewMemory[N comparable](viewport int) *Memory[N] {
	return &Memory[N]{
		viewport: viewport,
		attached: make(map[N]int),
		detached: make(map[N]int),
	}
}

// Attach records node at offset.
func (m *Memory[N]) Attach(node N, offset int) {
	if _, ok := m.attached[node]; ok {
		m.violate("attach of attached node %v", node)
	}
	m.checkOverlap(offset)
	m.attached[node] = offset
	m.Attaches++
}

// Replace swaps old for node at offset.
func (m *Memory[N]) Replace(old, node N, offset int) {
	if _, ok := m.attached[old]; !ok {
		m.violate("replace of detached node %v", old)
	}
	delete(m.attached, old)
	m.detached[old]++
	if _, ok := m.attached[node]; ok {
		m.violate("replace with attached node %v", node)
	}
	m.checkOverlap(offset)
	m.attached[node] = offset
	m.Replaces++
}

// Detach removes node.
func (m *Memory[N]) Detach(node N) {
	if _, ok := m.attached[node]; !ok {
		m.violate("detach of detached node %v", node)
	}
	delete(m.attached, node)
	m.detached[node]++
	m.Detaches++
}

func (m *Memory[N]) checkOverlap(offset int) {
	for other, at := range m.attached {
		if at == offset {
			m.violate("offset %d already holds %v", offset, other)
		}
	}
}

func (m *Memory[N]) violate(format string, args ...any) {
	m.violations = append(m.violations, fmt.Sprintf(format, args...))
}

// ViewportExtent returns the visible extent.
func (m *Memory[N]) ViewportExtent() int { return m.viewport }

// SetContentExtent sets the scrollable extent and re-clamps the offset.
func (m *Memory[N]) SetContentExtent(extent int) {
	m.content = extent
	m.offset = Clamp(m.offset, m.content, m.viewport)
}

// ContentExtent returns the last extent set by the list.
func (m *Memory[N]) ContentExtent() int { return m.content }

// ScrollOffset returns the current offset.
func (m *Memory[N]) ScrollOffset() int { return m.offset }

// SetScrollOffset moves the container. The scroll notification is held until
// Flush.
func (m *Memory[N]) SetScrollOffset(offset int) {
	m.offset = Clamp(offset, m.content, m.viewport)
	m.pending = true
}

// Release marks the surface released.
func (m *Memory[N]) Release() { m.released = true }

// Released reports whether Release was called.
func (m *Memory[N]) Released() bool { return m.released }

// Scroll moves the container like a user would and notifies subscribers.
func (m *Memory[N]) Scroll(offset int) error {
	m.offset = Clamp(offset, m.content, m.viewport)
	m.pending = false
	return m.FireScroll()
}

// Flush delivers a scroll notification held by SetScrollOffset.
func (m *Memory[N]) Flush() error {
	if !m.pending {
		return nil
	}
	m.pending = false
	return m.FireScroll()
}

// Resize changes the viewport extent and notifies subscribers.
func (m *Memory[N]) Resize(extent int) error {
	m.viewport = extent
	m.offset = Clamp(m.offset, m.content, m.viewport)
	return m.FireResize()
}

// Attached returns the attached nodes ordered by offset.
func (m *Memory[N]) Attached() []Placement[N] {
	out := make([]Placement[N], 0, len(m.attached))
	for node, offset := range m.attached {
		out = append(out, Placement[N]{Node: node, Offset: offset})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Offset < out[j].Offset })
	return out
}

// DetachCount returns how many times node was removed from the surface.
func (m *Memory[N]) DetachCount(node N) int {
	return m.detached[node]
}

// Violations lists contract breaches seen so far: double attach, detach of
// a node that is not attached, or two nodes at one offset.
func (m *Memory[N]) Violations() []string {
	return m.violations
}

package ui

import (
	"github.com/gravitrone/vlist/internal/surface"
	"github.com/gravitrone/vlist/internal/vlist"
)

// Row is one rendered list item: exactly item-extent lines of plain text.
type Row struct {
	Index int
	Lines []string
}

// Line is one terminal row of the viewport.
type Line struct {
	Text string
	// Index is the item the line belongs to.
	Index int
	// Present is false where no row is attached, e.g. past the end of the
	// list or for filtered items.
	Present bool
}

// TermSurface is a vlist.Surface over terminal lines. Scroll offsets and
// extents are counted in lines. Notifications are not delivered from inside
// surface calls: the viewer emits them from its update loop.
type TermSurface struct {
	surface.Handlers

	itemExtent int
	viewport   int
	content    int
	offset     int

	byOffset map[int]*Row
	offsets  map[*Row]int

	pending  bool
	released bool
}

var _ vlist.Surface[*Row] = (*TermSurface)(nil)

// NewTermSurface returns an empty surface for items itemExtent lines tall.
func NewTermSurface(itemExtent, viewport int) *TermSurface {
	return &TermSurface{
		itemExtent: itemExtent,
		viewport:   viewport,
		byOffset:   make(map[int]*Row),
		offsets:    make(map[*Row]int),
	}
}

// Attach places row at the line offset.
func (s *TermSurface) Attach(row *Row, offset int) {
	s.byOffset[offset] = row
	s.offsets[row] = offset
}

// Replace swaps old for row.
func (s *TermSurface) Replace(old, row *Row, offset int) {
	s.Detach(old)
	s.Attach(row, offset)
}

// Detach removes row if it is attached.
func (s *TermSurface) Detach(row *Row) {
	offset, ok := s.offsets[row]
	if !ok {
		return
	}
	delete(s.offsets, row)
	if s.byOffset[offset] == row {
		delete(s.byOffset, offset)
	}
}

// ViewportExtent returns the viewport height in lines.
func (s *TermSurface) ViewportExtent() int { return s.viewport }

// SetContentExtent sets the total line count and re-clamps the offset.
func (s *TermSurface) SetContentExtent(extent int) {
	s.content = extent
	s.offset = surface.Clamp(s.offset, s.content, s.viewport)
}

// ScrollOffset returns the first visible line.
func (s *TermSurface) ScrollOffset() int { return s.offset }

// SetScrollOffset moves the viewport on behalf of the list. The matching
// scroll notification is delivered by the next EmitPending.
func (s *TermSurface) SetScrollOffset(offset int) {
	s.offset = surface.Clamp(offset, s.content, s.viewport)
	s.pending = true
}

// Release drops every attached row.
func (s *TermSurface) Release() {
	s.released = true
	s.byOffset = make(map[int]*Row)
	s.offsets = make(map[*Row]int)
}

// ScrollTo moves the viewport as the user would and notifies subscribers if
// the offset changed.
func (s *TermSurface) ScrollTo(offset int) error {
	offset = surface.Clamp(offset, s.content, s.viewport)
	if offset == s.offset {
		return nil
	}
	s.offset = offset
	s.pending = false
	return s.FireScroll()
}

// SetViewport changes the viewport height and notifies subscribers.
func (s *TermSurface) SetViewport(lines int) error {
	if lines < 0 {
		lines = 0
	}
	s.viewport = lines
	s.offset = surface.Clamp(s.offset, s.content, s.viewport)
	return s.FireResize()
}

// Pending reports whether the list moved the viewport since the last
// notification.
func (s *TermSurface) Pending() bool { return s.pending }

// EmitPending delivers the scroll notification owed for SetScrollOffset.
func (s *TermSurface) EmitPending() error {
	if !s.pending {
		return nil
	}
	s.pending = false
	return s.FireScroll()
}

// Lines returns the viewport content, one entry per terminal row.
func (s *TermSurface) Lines() []Line {
	lines := make([]Line, s.viewport)
	for y := range lines {
		abs := s.offset + y
		index := abs / s.itemExtent
		lines[y].Index = index
		row, ok := s.byOffset[index*s.itemExtent]
		if !ok {
			continue
		}
		part := abs - index*s.itemExtent
		if part < len(row.Lines) {
			lines[y].Text = row.Lines[part]
		}
		lines[y].Present = true
	}
	return lines
}

// Rows returns the number of attached rows.
func (s *TermSurface) Rows() int { return len(s.offsets) }

// Released reports whether the list released the surface.
func (s *TermSurface) Released() bool { return s.released }

// Package vlist renders a long list through a fixed pool of nodes. Only the
// items under the viewport plus a margin are materialized, and nodes are
// recycled through a ring of slots as the viewport scrolls.
package vlist

import (
	"github.com/gravitrone/vlist/internal/log"
)

// Stats counts the work a List has done since it was created.
type Stats struct {
	Rebuilds     int
	Shifts       int
	NoOps        int
	FactoryCalls int
	Attaches     int
	Replaces     int
	Detaches     int
}

// Sub returns the counters accumulated since prev.
func (s Stats) Sub(prev Stats) Stats {
	return Stats{
		Rebuilds:     s.Rebuilds - prev.Rebuilds,
		Shifts:       s.Shifts - prev.Shifts,
		NoOps:        s.NoOps - prev.NoOps,
		FactoryCalls: s.FactoryCalls - prev.FactoryCalls,
		Attaches:     s.Attaches - prev.Attaches,
		Replaces:     s.Replaces - prev.Replaces,
		Detaches:     s.Detaches - prev.Detaches,
	}
}

type options struct {
	margin int
	pinned bool
}

// Option configures New.
type Option func(*options)

// WithMargin pins the number of off-screen items kept around the visible
// range. Without it the margin follows the viewport size.
func WithMargin(margin int) Option {
	return func(o *options) {
		o.margin = margin
		o.pinned = true
	}
}

// List is a windowed view over records. It is driven by the surface's scroll
// and resize notifications and is not safe for concurrent use.
type List[T, N any] struct {
	surface    Surface[N]
	factory    Factory[T, N]
	records    []T
	itemExtent int

	margin int
	pinned bool

	viewport  int
	displayed int
	scroll    int
	maxScroll int

	first int
	last  int
	valid bool

	ring  *ring[N]
	subs  []Subscription
	stats Stats

	disposed bool
}

// New binds records to surface and materializes the first window. The
// returned list is subscribed to the surface's scroll and resize
// notifications until Teardown.
func New[T, N any](surface Surface[N], records []T, factory Factory[T, N], itemExtent int, opts ...Option) (*List[T, N], error) {
	if surface == nil {
		return nil, ErrNilSurface
	}
	if factory == nil {
		return nil, ErrNilFactory
	}
	if itemExtent <= 0 {
		return nil, ErrInvalidItemExtent
	}
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.margin < 0 {
		return nil, ErrNegativeMargin
	}

	l := &List[T, N]{
		surface:    surface,
		factory:    factory,
		records:    records,
		itemExtent: itemExtent,
		margin:     o.margin,
		pinned:     o.pinned,
		viewport:   surface.ViewportExtent(),
	}
	l.reshape()
	l.subs = append(l.subs,
		surface.OnScroll(l.NotifyScroll),
		surface.OnResize(l.NotifyResize),
	)

	if err := l.reload(); err != nil {
		l.dispose()
		return nil, err
	}
	log.Debug("vlist initialized", "records", len(records), "item_extent", itemExtent, "margin", l.margin, "capacity", l.ring.capacity())
	return l, nil
}

// UpdateData replaces the backing records and rebuilds the window.
func (l *List[T, N]) UpdateData(records []T) error {
	if l.disposed {
		return ErrDisposed
	}
	l.records = records
	return l.reload()
}

// Refresh rebuilds the window after the records were changed in place.
func (l *List[T, N]) Refresh() error {
	if l.disposed {
		return ErrDisposed
	}
	return l.reload()
}

// SetMargin pins the margin, reallocates the slot ring and rebuilds.
func (l *List[T, N]) SetMargin(margin int) error {
	if l.disposed {
		return ErrDisposed
	}
	if margin < 0 {
		return ErrNegativeMargin
	}
	l.margin = margin
	l.pinned = true
	l.ring.clearAll()
	l.reshape()
	return l.reload()
}

// NotifyResize re-reads the viewport extent. If it changed, the slot ring is
// resized and the window rebuilt.
func (l *List[T, N]) NotifyResize() error {
	if l.disposed {
		return ErrDisposed
	}
	extent := l.surface.ViewportExtent()
	if extent == l.viewport {
		return nil
	}
	log.Debug("vlist resize", "from", l.viewport, "to", extent)
	l.viewport = extent
	l.ring.clearAll()
	l.reshape()
	return l.reload()
}

// NotifyScroll re-reads the scroll offset and updates the window.
func (l *List[T, N]) NotifyScroll() error {
	if l.disposed {
		return ErrDisposed
	}
	l.scroll = ClampScroll(l.surface.ScrollOffset(), l.maxScroll)
	first, displayed := VisibleRange(l.scroll, l.viewport, l.itemExtent)
	return l.onVisibleRangeChanged(first, displayed)
}

// ScrollToIndex moves the surface so index is the first visible item. Indices
// past the end go to the last item. The window follows when the surface
// reports the scroll.
func (l *List[T, N]) ScrollToIndex(index int) error {
	if l.disposed {
		return ErrDisposed
	}
	index = min(index, len(l.records)-1)
	if index < 0 {
		index = 0
	}
	l.surface.SetScrollOffset(index * l.itemExtent)
	return nil
}

// Teardown detaches every node, drops the subscriptions and releases the
// surface. Calling it again is a no-op.
func (l *List[T, N]) Teardown() error {
	l.dispose()
	return nil
}

func (l *List[T, N]) dispose() {
	if l.disposed {
		return
	}
	l.disposed = true
	l.ring.clearAll()
	l.valid = false
	for _, sub := range l.subs {
		if sub != nil {
			sub.Unsubscribe()
		}
	}
	l.subs = nil
	l.surface.Release()
	log.Debug("vlist torn down", "stats", l.stats)
}

// Window returns the materialized index range. ok is false before the first
// successful build and after Teardown.
func (l *List[T, N]) Window() (first, last int, ok bool) {
	return l.first, l.last, l.valid
}

// VisibleRange returns the index range under the viewport at the last
// observed scroll offset.
func (l *List[T, N]) VisibleRange() (first, last int) {
	first, displayed := VisibleRange(l.scroll, l.viewport, l.itemExtent)
	return first, first + displayed - 1
}

// Stats returns the work counters.
func (l *List[T, N]) Stats() Stats { return l.stats }

// Len returns the number of records.
func (l *List[T, N]) Len() int { return len(l.records) }

// Capacity returns the number of slots in the ring.
func (l *List[T, N]) Capacity() int { return l.ring.capacity() }

// Margin returns the current margin, pinned or derived.
func (l *List[T, N]) Margin() int { return l.margin }

// MaxScroll returns the largest scroll offset the list accepts.
func (l *List[T, N]) MaxScroll() int { return l.maxScroll }

// ItemExtent returns the extent of one item.
func (l *List[T, N]) ItemExtent() int { return l.itemExtent }

// Disposed reports whether Teardown was called.
func (l *List[T, N]) Disposed() bool { return l.disposed }

// ScrollOffset returns the last observed scroll offset, clamped to MaxScroll.
func (l *List[T, N]) ScrollOffset() int { return l.scroll }

// reshape recomputes the displayed count and margin for the current viewport
// and allocates an empty ring. The window becomes invalid.
func (l *List[T, N]) reshape() {
	_, l.displayed = VisibleRange(0, l.viewport, l.itemExtent)
	if !l.pinned {
		l.margin = AutoMargin(l.displayed)
	}
	l.ring = newRing(Capacity(l.displayed, l.margin), l.surface, &l.stats)
	l.valid = false
}

// reload publishes the content extent, clamps the scroll offset to the new
// bound and rebuilds the window.
func (l *List[T, N]) reload() error {
	l.surface.SetContentExtent(len(l.records) * l.itemExtent)
	l.maxScroll = MaxScroll(len(l.records), l.itemExtent, l.viewport)

	offset := l.surface.ScrollOffset()
	l.scroll = ClampScroll(offset, l.maxScroll)
	if l.scroll != offset {
		l.surface.SetScrollOffset(l.scroll)
	}

	first, _ := VisibleRange(l.scroll, l.viewport, l.itemExtent)
	return l.rebuild(first)
}

package surface

import (
	"errors"

	"github.com/gravitrone/vlist/internal/vlist"
)

type handler struct {
	id int
	fn func() error
}

// Handlers holds a surface's scroll and resize subscribers. Embedding it
// provides the OnScroll and OnResize halves of vlist.Surface.
type Handlers struct {
	scroll []handler
	resize []handler
	nextID int
}

// OnScroll registers fn for scroll notifications.
func (h *Handlers) OnScroll(fn func() error) vlist.Subscription {
	return h.subscribe(&h.scroll, fn)
}

// OnResize registers fn for resize notifications.
func (h *Handlers) OnResize(fn func() error) vlist.Subscription {
	return h.subscribe(&h.resize, fn)
}

func (h *Handlers) subscribe(list *[]handler, fn func() error) vlist.Subscription {
	h.nextID++
	id := h.nextID
	*list = append(*list, handler{id: id, fn: fn})
	return vlist.SubscriptionFunc(func() {
		for i, s := range *list {
			if s.id == id {
				*list = append((*list)[:i], (*list)[i+1:]...)
				return
			}
		}
	})
}

// FireScroll calls every scroll handler and joins their errors.
func (h *Handlers) FireScroll() error { return fire(h.scroll) }

// FireResize calls every resize handler and joins their errors.
func (h *Handlers) FireResize() error { return fire(h.resize) }

// Subscribers returns the number of live scroll and resize handlers.
func (h *Handlers) Subscribers() int {
	return len(h.scroll) + len(h.resize)
}

func fire(handlers []handler) error {
	var errs []error
	for _, h := range append([]handler(nil), handlers...) {
		if err := h.fn(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Clamp limits offset to [0, content-viewport].
func Clamp(offset, content, viewport int) int {
	limit := content - viewport
	if offset > limit {
		offset = limit
	}
	if offset < 0 {
		offset = 0
	}
	return offset
}

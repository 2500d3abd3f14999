package vlist

type slot[N any] struct {
	node N
	used bool
}

// ring is the fixed-capacity slot buffer. ptr always points at the slot of
// the first displayed index, which is also the slot the next forward append
// overwrites.
type ring[N any] struct {
	slots   []slot[N]
	ptr     int
	surface Surface[N]
	stats   *Stats
}

func newRing[N any](capacity int, surface Surface[N], stats *Stats) *ring[N] {
	return &ring[N]{
		slots:   make([]slot[N], capacity),
		surface: surface,
		stats:   stats,
	}
}

func (r *ring[N]) capacity() int {
	return len(r.slots)
}

// appendForward writes at the cursor and then advances it.
func (r *ring[N]) appendForward(node N, ok bool, offset int) {
	r.put(r.ptr, node, ok, offset)
	r.ptr = (r.ptr + 1) % len(r.slots)
}

// appendBackward steps the cursor back and writes at the new position.
func (r *ring[N]) appendBackward(node N, ok bool, offset int) {
	r.ptr = (r.ptr - 1 + len(r.slots)) % len(r.slots)
	r.put(r.ptr, node, ok, offset)
}

func (r *ring[N]) put(i int, node N, ok bool, offset int) {
	old := r.slots[i]
	switch {
	case ok && old.used:
		r.surface.Replace(old.node, node, offset)
		r.stats.Replaces++
	case ok:
		r.surface.Attach(node, offset)
		r.stats.Attaches++
	case old.used:
		r.surface.Detach(old.node)
		r.stats.Detaches++
	}
	if ok {
		r.slots[i] = slot[N]{node: node, used: true}
	} else {
		r.slots[i] = slot[N]{}
	}
}

// clearAll detaches every occupied slot and rewinds the cursor.
func (r *ring[N]) clearAll() {
	for i := range r.slots {
		if !r.slots[i].used {
			continue
		}
		r.surface.Detach(r.slots[i].node)
		r.stats.Detaches++
		r.slots[i] = slot[N]{}
	}
	r.ptr = 0
}

func (r *ring[N]) occupied() int {
	n := 0
	for _, s := range r.slots {
		if s.used {
			n++
		}
	}
	return n
}

package vlist

import (
	"fmt"

	"github.com/gravitrone/vlist/internal/log"
)

// onVisibleRangeChanged brings the materialized window in line with a new
// visible range, either by doing nothing, shifting at one edge, or
// rebuilding.
func (l *List[T, N]) onVisibleRangeChanged(firstVisible, displayed int) error {
	if !l.valid {
		return l.rebuild(firstVisible)
	}

	lastVisible := firstVisible + displayed - 1
	if firstVisible >= l.first && lastVisible <= l.last {
		l.stats.NoOps++
		return nil
	}

	half := HalfMargin(l.margin)
	var shift int
	if firstVisible < l.first {
		shift = firstVisible - l.first - half
	} else {
		shift = lastVisible - l.last + half
	}

	if shift >= l.ring.capacity() || -shift >= l.ring.capacity() {
		return l.rebuild(firstVisible)
	}

	l.stats.Shifts++
	log.Debug("vlist shift", "shift", shift, "first", l.first+shift, "last", l.last+shift)
	if shift > 0 {
		return l.growForward(shift)
	}
	return l.growBackward(-shift)
}

// growForward materializes n indices past the trailing edge. Each one
// overwrites the slot of the current leading index.
func (l *List[T, N]) growForward(n int) error {
	for i := 0; i < n; i++ {
		index := l.last + 1
		node, ok, err := l.create(index)
		if err != nil {
			return err
		}
		l.ring.appendForward(node, ok, index*l.itemExtent)
		l.first++
		l.last++
	}
	return nil
}

// growBackward materializes n indices before the leading edge. Each one
// overwrites the slot of the current trailing index.
func (l *List[T, N]) growBackward(n int) error {
	for i := 0; i < n; i++ {
		index := l.first - 1
		node, ok, err := l.create(index)
		if err != nil {
			return err
		}
		l.ring.appendBackward(node, ok, index*l.itemExtent)
		l.first--
		l.last--
	}
	return nil
}

// rebuild discards every slot and refills the window around firstVisible.
// Indices outside the list still advance the cursor so it lands back on the
// slot of the first index.
func (l *List[T, N]) rebuild(firstVisible int) error {
	l.stats.Rebuilds++
	l.valid = false
	l.ring.clearAll()

	l.first = firstVisible - HalfMargin(l.margin)
	l.last = l.first + l.ring.capacity() - 1
	log.Debug("vlist rebuild", "first", l.first, "last", l.last, "capacity", l.ring.capacity(), "records", len(l.records))

	for index := l.first; index <= l.last; index++ {
		node, ok, err := l.create(index)
		if err != nil {
			return err
		}
		l.ring.appendForward(node, ok, index*l.itemExtent)
	}
	l.valid = true
	return nil
}

func (l *List[T, N]) create(index int) (N, bool, error) {
	var zero N
	if index < 0 || index >= len(l.records) {
		return zero, false, nil
	}
	l.stats.FactoryCalls++
	node, ok, err := l.factory(l.records[index], index, l.records)
	if err != nil {
		return zero, false, fmt.Errorf("create item %d: %w", index, err)
	}
	return node, ok, nil
}

package vlist

// VisibleRange returns the index of the first item under scrollOffset and the
// number of items that must be displayed to cover the viewport. The count
// includes one extra item for a partially scrolled top row and is never
// below 1.
func VisibleRange(scrollOffset, viewportExtent, itemExtent int) (first, displayed int) {
	if scrollOffset < 0 {
		scrollOffset = 0
	}
	if viewportExtent < 0 {
		viewportExtent = 0
	}
	first = scrollOffset / itemExtent
	displayed = 1 + ceilDiv(viewportExtent, itemExtent)
	return first, displayed
}

// MaxScroll returns the largest scroll offset the list accepts. One item
// extent is held back below the true end of the content.
func MaxScroll(count, itemExtent, viewportExtent int) int {
	limit := count*itemExtent - viewportExtent - itemExtent
	if limit < 0 {
		return 0
	}
	return limit
}

// ClampScroll clamps offset into [0, max].
func ClampScroll(offset, max int) int {
	if offset < 0 {
		return 0
	}
	if offset > max {
		return max
	}
	return offset
}

// Capacity is the number of slots needed for displayed items plus margin.
func Capacity(displayed, margin int) int {
	return displayed + margin
}

// HalfMargin is the share of the margin kept before the visible range. The
// odd remainder goes after it.
func HalfMargin(margin int) int {
	return margin >> 1
}

// AutoMargin is the margin used when none was pinned.
func AutoMargin(displayed int) int {
	return displayed << 1
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}

package components

// Cursor tracks a selected index over a list of Count items and the first
// index of the page that keeps it visible. It never holds the items.
type Cursor struct {
	Count    int
	Cursor   int
	Offset   int
	PageSize int
}

// NewCursor creates a cursor with the given page size.
func NewCursor(pageSize int) *Cursor {
	c := &Cursor{}
	c.SetPageSize(pageSize)
	return c
}

// SetCount replaces the item count and clamps cursor and offset into it.
func (c *Cursor) SetCount(count int) {
	if count < 0 {
		count = 0
	}
	c.Count = count
	c.clamp()
}

// SetPageSize changes the page size and keeps the cursor on the page.
func (c *Cursor) SetPageSize(size int) {
	if size < 1 {
		size = 1
	}
	c.PageSize = size
	c.MoveTo(c.Cursor)
}

// Down moves the cursor down.
func (c *Cursor) Down() {
	c.MoveBy(1)
}

// Up moves the cursor up.
func (c *Cursor) Up() {
	c.MoveBy(-1)
}

// PageDown moves the cursor one page down.
func (c *Cursor) PageDown() {
	c.MoveBy(c.PageSize)
}

// PageUp moves the cursor one page up.
func (c *Cursor) PageUp() {
	c.MoveBy(-c.PageSize)
}

// Home jumps to the first item.
func (c *Cursor) Home() {
	c.MoveTo(0)
}

// End jumps to the last item.
func (c *Cursor) End() {
	c.MoveTo(c.Count - 1)
}

// MoveBy moves the cursor by delta items.
func (c *Cursor) MoveBy(delta int) {
	c.MoveTo(c.Cursor + delta)
}

// MoveTo places the cursor at index, scrolling the page only as far as
// needed to keep it visible.
func (c *Cursor) MoveTo(index int) {
	c.Cursor = index
	if c.Cursor >= c.Offset+c.PageSize {
		c.Offset = c.Cursor - c.PageSize + 1
	}
	if c.Cursor < c.Offset {
		c.Offset = c.Cursor
	}
	c.clamp()
}

// SetOffset scrolls the page to offset and pulls the cursor onto it.
func (c *Cursor) SetOffset(offset int) {
	c.Offset = offset
	c.clampOffset()
	if c.Cursor < c.Offset {
		c.Cursor = c.Offset
	}
	if c.Cursor >= c.Offset+c.PageSize {
		c.Cursor = c.Offset + c.PageSize - 1
	}
	c.clamp()
}

// Selected returns the index of the selected item.
func (c *Cursor) Selected() int {
	return c.Cursor
}

// IsSelected returns true if the given absolute index is the cursor.
func (c *Cursor) IsSelected(absIdx int) bool {
	return c.Count > 0 && absIdx == c.Cursor
}

// RelToAbs converts a relative (visible) index to absolute.
func (c *Cursor) RelToAbs(relIdx int) int {
	return c.Offset + relIdx
}

func (c *Cursor) clamp() {
	if c.Cursor > c.Count-1 {
		c.Cursor = c.Count - 1
	}
	if c.Cursor < 0 {
		c.Cursor = 0
	}
	c.clampOffset()
	if c.Cursor < c.Offset {
		c.Offset = c.Cursor
	}
}

func (c *Cursor) clampOffset() {
	maxOffset := c.Count - c.PageSize
	if c.Offset > maxOffset {
		c.Offset = maxOffset
	}
	if c.Offset < 0 {
		c.Offset = 0
	}
}

package vlist_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gravitrone/vlist/internal/vlist"
)

func TestVisibleRangeCoversViewport(t *testing.T) {
	for ext := 1; ext <= 7; ext++ {
		for viewport := 0; viewport <= 40; viewport++ {
			for offset := 0; offset <= 60; offset++ {
				first, displayed := vlist.VisibleRange(offset, viewport, ext)
				assert.Equal(t, offset/ext, first)
				assert.GreaterOrEqual(t, displayed, 1+viewport/ext)
				// The last item touching the viewport is inside the range.
				assert.LessOrEqual(t, (offset+viewport)/ext, first+displayed-1)
			}
		}
	}
}

func TestVisibleRangeMinimumOne(t *testing.T) {
	first, displayed := vlist.VisibleRange(0, 0, 5)
	assert.Equal(t, 0, first)
	assert.Equal(t, 1, displayed)

	first, displayed = vlist.VisibleRange(-10, -3, 5)
	assert.Equal(t, 0, first)
	assert.Equal(t, 1, displayed)
}

func TestMaxScroll(t *testing.T) {
	tests := []struct {
		count, ext, viewport int
		want                 int
	}{
		{100, 1, 10, 89},
		{100, 3, 10, 287},
		{5, 1, 10, 0},
		{0, 1, 10, 0},
		{11, 1, 10, 0},
		{12, 1, 10, 1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, vlist.MaxScroll(tt.count, tt.ext, tt.viewport), "%+v", tt)
	}
}

func TestClampScroll(t *testing.T) {
	assert.Equal(t, 0, vlist.ClampScroll(-4, 10))
	assert.Equal(t, 7, vlist.ClampScroll(7, 10))
	assert.Equal(t, 10, vlist.ClampScroll(11, 10))
	assert.Equal(t, 0, vlist.ClampScroll(3, 0))
}

func TestMarginSplit(t *testing.T) {
	assert.Equal(t, 2, vlist.HalfMargin(4))
	assert.Equal(t, 2, vlist.HalfMargin(5))
	assert.Equal(t, 0, vlist.HalfMargin(1))
	assert.Equal(t, 16, vlist.Capacity(11, 5))
	assert.Equal(t, 22, vlist.AutoMargin(11))
}

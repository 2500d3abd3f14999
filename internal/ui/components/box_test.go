package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestBoxWidthBounds(t *testing.T) {
	assert.Equal(t, 40, boxWidth(10))
	assert.Equal(t, 80, boxWidth(200))
	assert.Equal(t, 70, boxWidth(100))
	assert.Equal(t, 10, safeBoxWidth(10))
}

func TestTitledBoxNarrowTerminalClampsWidth(t *testing.T) {
	out := TitledBox("Keys", "line", 20)
	for _, line := range strings.Split(out, "\n") {
		assert.LessOrEqual(t, lipgloss.Width(line), 20)
	}
}

func TestTitledBoxIncludesTitle(t *testing.T) {
	out := TitledBox("My Title", "Content", 80)
	assert.Contains(t, out, "My Title")
	assert.Contains(t, out, "Content")
}

func TestTitledBoxEmptyTitleFallsBack(t *testing.T) {
	out := TitledBox("", "Content", 80)
	assert.Contains(t, out, "Content")
}

func TestErrorBoxIncludesMessage(t *testing.T) {
	out := ErrorBox("Error", "Something broke", 80)
	assert.Contains(t, out, "Something broke")
	assert.Contains(t, out, "Error")
}

func TestClampTextWidthUsesCells(t *testing.T) {
	assert.Equal(t, "hello", ClampTextWidth("hello", 0))
	assert.Equal(t, "he…", ClampTextWidth("hello", 3))
	assert.Equal(t, "a b", ClampTextWidth("a\nb", 10))
	assert.LessOrEqual(t, lipgloss.Width(ClampTextWidth("你好世界", 5)), 5)
}

func TestPadToWidth(t *testing.T) {
	assert.Equal(t, "ab   ", PadToWidth("ab", 5))
	assert.Equal(t, "abc", PadToWidth("abcdef", 3))
	assert.Equal(t, "ab", PadToWidth("ab", 0))
}

func TestInfoRowIncludesLabelAndValue(t *testing.T) {
	out := InfoRow("Index", "42")
	assert.Contains(t, out, "Index:")
	assert.Contains(t, out, "42")
}

package ui

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestQuitKeys(t *testing.T) {
	k := newKeyMap(false)
	assert.True(t, isQuitKey(tea.KeyMsg{Type: tea.KeyCtrlC}, k))
	assert.True(t, isQuitKey(runeKey('q'), k))
	assert.False(t, isQuitKey(runeKey('a'), k))
}

func TestVimKeysOnlyWhenEnabled(t *testing.T) {
	plain := newKeyMap(false)
	assert.True(t, key.Matches(tea.KeyMsg{Type: tea.KeyDown}, plain.Down))
	assert.False(t, key.Matches(runeKey('j'), plain.Down))
	assert.False(t, key.Matches(runeKey('G'), plain.End))

	vim := newKeyMap(true)
	assert.True(t, key.Matches(runeKey('j'), vim.Down))
	assert.True(t, key.Matches(runeKey('k'), vim.Up))
	assert.True(t, key.Matches(runeKey('g'), vim.Home))
	assert.True(t, key.Matches(runeKey('G'), vim.End))
	assert.True(t, key.Matches(tea.KeyMsg{Type: tea.KeyCtrlF}, vim.PageDown))
}

func TestSpaceIsPageDown(t *testing.T) {
	k := newKeyMap(false)
	assert.True(t, key.Matches(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, k.PageDown))
}

func TestHelpSetsHaveDescriptions(t *testing.T) {
	k := newKeyMap(true)
	for _, b := range k.fullHelp() {
		assert.NotEmpty(t, b.Help().Key)
		assert.NotEmpty(t, b.Help().Desc)
	}
	assert.Subset(t, k.fullHelp(), k.shortHelp())
}

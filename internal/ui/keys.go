package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// --- Key Bindings ---

type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Home     key.Binding
	End      key.Binding
	Goto     key.Binding
	Filter   key.Binding
	Refresh  key.Binding
	Detail   key.Binding
	Help     key.Binding
	Quit     key.Binding
	Submit   key.Binding
	Cancel   key.Binding
}

func newKeyMap(vim bool) keyMap {
	up := []string{"up"}
	down := []string{"down"}
	home := []string{"home"}
	end := []string{"end"}
	pgup := []string{"pgup"}
	pgdown := []string{"pgdown", " "}
	if vim {
		up = append(up, "k")
		down = append(down, "j")
		home = append(home, "g")
		end = append(end, "G")
		pgup = append(pgup, "ctrl+b")
		pgdown = append(pgdown, "ctrl+f")
	}
	return keyMap{
		Up:       key.NewBinding(key.WithKeys(up...), key.WithHelp("↑", "up")),
		Down:     key.NewBinding(key.WithKeys(down...), key.WithHelp("↓", "down")),
		PageUp:   key.NewBinding(key.WithKeys(pgup...), key.WithHelp("pgup", "page up")),
		PageDown: key.NewBinding(key.WithKeys(pgdown...), key.WithHelp("pgdn", "page down")),
		Home:     key.NewBinding(key.WithKeys(home...), key.WithHelp("home", "first")),
		End:      key.NewBinding(key.WithKeys(end...), key.WithHelp("end", "last")),
		Goto:     key.NewBinding(key.WithKeys(":"), key.WithHelp(":", "go to")),
		Filter:   key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "filter")),
		Refresh:  key.NewBinding(key.WithKeys("r", "ctrl+r"), key.WithHelp("r", "refresh")),
		Detail:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "details")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Submit:   key.NewBinding(key.WithKeys("enter")),
		Cancel:   key.NewBinding(key.WithKeys("esc", "ctrl+["), key.WithHelp("esc", "back")),
	}
}

// shortHelp is the set shown in the status bar.
func (k keyMap) shortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Goto, k.Filter, k.Help, k.Quit}
}

// fullHelp is the set shown in the help overlay.
func (k keyMap) fullHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.PageUp, k.PageDown, k.Home, k.End, k.Goto, k.Filter, k.Refresh, k.Detail, k.Help, k.Quit}
}

func isQuitKey(msg tea.KeyMsg, k keyMap) bool {
	return key.Matches(msg, k.Quit)
}

package ui

import "github.com/charmbracelet/lipgloss"

// --- Theme Colors ---

// Palette is the set of colors a theme is built from.
type Palette struct {
	Primary    lipgloss.Color
	Secondary  lipgloss.Color
	Background lipgloss.Color
	Text       lipgloss.Color
	Muted      lipgloss.Color
	Border     lipgloss.Color
	Stripe     lipgloss.Color
}

var darkPalette = Palette{
	Primary:    lipgloss.Color("#7f57b4"), // purple
	Secondary:  lipgloss.Color("#436b77"), // teal
	Background: lipgloss.Color("#16161d"), // dark
	Text:       lipgloss.Color("#d7d9da"), // main text
	Muted:      lipgloss.Color("#9ba0bf"), // muted text
	Border:     lipgloss.Color("#273540"), // border
	Stripe:     lipgloss.Color("#1f2530"),
}

var lightPalette = Palette{
	Primary:    lipgloss.Color("#5b3a8c"),
	Secondary:  lipgloss.Color("#2f5560"),
	Background: lipgloss.Color("#f4f4f6"),
	Text:       lipgloss.Color("#1e1e24"),
	Muted:      lipgloss.Color("#5c6078"),
	Border:     lipgloss.Color("#c5cad3"),
	Stripe:     lipgloss.Color("#e6e8ee"),
}

// --- Reusable Styles ---

// Theme holds the styles the viewer renders with.
type Theme struct {
	Title    lipgloss.Style
	Meta     lipgloss.Style
	Row      lipgloss.Style
	Detail   lipgloss.Style
	Selected lipgloss.Style
	Gutter   lipgloss.Style
	Empty    lipgloss.Style
}

// NewTheme returns the named theme. Unknown names get the dark theme.
func NewTheme(name string) Theme {
	p := darkPalette
	if name == "light" {
		p = lightPalette
	}
	return Theme{
		Title: lipgloss.NewStyle().
			Foreground(p.Primary).
			Bold(true),
		Meta: lipgloss.NewStyle().
			Foreground(p.Muted),
		Row: lipgloss.NewStyle().
			Foreground(p.Text),
		Detail: lipgloss.NewStyle().
			Foreground(p.Muted),
		Selected: lipgloss.NewStyle().
			Foreground(p.Text).
			Background(p.Stripe).
			Bold(true),
		Gutter: lipgloss.NewStyle().
			Foreground(p.Secondary),
		Empty: lipgloss.NewStyle().
			Foreground(p.Border),
	}
}

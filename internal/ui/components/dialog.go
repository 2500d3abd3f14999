package components

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	dialogStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#273540")).
			Padding(0, 2).
			Width(40)
	dialogHeaderStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#7f57b4")).
				Bold(true)
	dialogFieldStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#436b77"))
	dialogHintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#9ba0bf"))
	dialogErrorStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#e06c75"))
)

// InputDialog renders a one-line prompt with the current input and an
// optional validation message.
func InputDialog(title, input, problem string) string {
	body := dialogHeaderStyle.Render(title) + "\n" +
		dialogFieldStyle.Render("> "+SanitizeOneLine(input)+"█")
	if problem != "" {
		body += "\n" + dialogErrorStyle.Render(problem)
	}
	body += "\n" + dialogHintStyle.Render("enter: submit | esc: cancel")
	return dialogStyle.Render(body)
}

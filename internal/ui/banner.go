package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const bannerArt = `
 █████ █████ ████   ███             █████
░░███ ░░███ ░░███  ░░░             ░░███
 ░███  ░███  ░███  ████   █████   ███████
 ░███  ░███  ░███ ░░███  ███░░   ░░░███░
 ░░███ ███   ░███  ░███ ░░█████    ░███
  ░░█████    ░███  ░███  ░░░░███   ░███ ███
   ░░███     █████ █████ ██████    ░░█████
    ░░░     ░░░░░ ░░░░░ ░░░░░░      ░░░░░`

const bannerSubtitle = "no records to show • r reloads • q quits"

// RenderBanner returns the ASCII banner shown when the list is empty.
func RenderBanner(theme Theme) string {
	lines := splitLines(bannerArt)

	maxWidth := 0
	for _, line := range lines {
		if w := lipgloss.Width(line); w > maxWidth {
			maxWidth = w
		}
	}

	var rendered strings.Builder
	for _, line := range lines {
		if line == "" {
			continue
		}
		rendered.WriteString(theme.Title.Render(line))
		rendered.WriteString("\n")
	}

	subtitleWidth := lipgloss.Width(bannerSubtitle)
	blockWidth := max(maxWidth, subtitleWidth)

	subtitle := theme.Meta.
		Width(blockWidth).
		Align(lipgloss.Center).
		Render(bannerSubtitle)
	underline := theme.Empty.
		Width(blockWidth).
		Align(lipgloss.Center).
		Render(strings.Repeat("─", subtitleWidth))

	return rendered.String() + "\n" + subtitle + "\n" + underline
}

func splitLines(s string) []string {
	var lines []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			lines = append(lines, s[start:i])
			start = i + 1
		}
	}
	if start < len(s) {
		lines = append(lines, s[start:])
	}
	return lines
}

// Package styles defines the visual styling for tunectl's terminal
// output. All styles use semantic names and adaptive colors that
// adjust to light and dark terminal themes.
package styles

import "github.com/charmbracelet/lipgloss"

var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#1a1a8c", Dark: "#8787ff"})

	Success = lipgloss.NewStyle().
		Foreground(lipgloss.AdaptiveColor{Light: "#006400", Dark: "#5fd75f"})

	Skipped = lipgloss.NewStyle().
		Foreground(lipgloss.AdaptiveColor{Light: "#8c6d1f", Dark: "#d7af5f"})

	Failed = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#a80000", Dark: "#ff5f5f"})

	Muted = lipgloss.NewStyle().
		Foreground(lipgloss.AdaptiveColor{Light: "#6c6c6c", Dark: "#8a8a8a"})

	Bold = lipgloss.NewStyle().Bold(true)
)

// ABOUTME: Shared lipgloss styles for consistent TUI appearance
// ABOUTME: Defines colors, badges, and text styles used across screens

package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Colors - Core palette
	Primary   = lipgloss.Color("#7C3AED") // Purple
	Secondary = lipgloss.Color("#10B981") // Green
	Warning   = lipgloss.Color("#F59E0B") // Amber
	Danger    = lipgloss.Color("#EF4444") // Red
	Muted     = lipgloss.Color("#6B7280") // Gray
	Text      = lipgloss.Color("#F9FAFB") // Light

	// Base styles
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		MarginBottom(1)

	Subtitle = lipgloss.NewStyle().
			Foreground(Muted).
			MarginBottom(1)

	// Status indicators
	StatusOK = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	StatusWarning = lipgloss.NewStyle().
			Foreground(Warning).
			Bold(true)

	StatusCritical = lipgloss.NewStyle().
			Foreground(Danger).
			Bold(true)

	// Panels
	Panel = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Muted).
		Padding(1, 2)

	// Help text in the footer
	Help = lipgloss.NewStyle().
		Foreground(Muted)

	// Error line rendered above the footer
	ErrorText = lipgloss.NewStyle().
			Foreground(Danger)

	// Selected row in list screens
	Selected = lipgloss.NewStyle().
			Foreground(Text).
			Background(Primary).
			Bold(true)
)

// Difficulty renders a colored difficulty label
func Difficulty(level string) string {
	switch level {
	case "easy":
		return StatusOK.Render(level)
	case "medium":
		return StatusWarning.Render(level)
	case "hard":
		return StatusCritical.Render(level)
	default:
		return level
	}
}

// SubmissionStatus renders a colored submission status label
func SubmissionStatus(status string) string {
	switch status {
	case "accepted":
		return StatusOK.Render(status)
	case "pending":
		return StatusWarning.Render(status)
	case "wrong_answer", "error":
		return StatusCritical.Render(status)
	default:
		return status
	}
}

package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	Primary   = lipgloss.Color("#7C3AED") // Purple
	Secondary = lipgloss.Color("#10B981") // Green
	Muted     = lipgloss.Color("#6B7280") // Gray
	Warning   = lipgloss.Color("#F59E0B") // Amber

	// Base styles
	App = lipgloss.NewStyle().
		Padding(1, 2)

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		MarginBottom(1)

	// Agenda styles
	DateHeading = lipgloss.NewStyle().
			Bold(true).
			Foreground(Secondary)

	Weekday = lipgloss.NewStyle().
		Foreground(Muted)

	Reminder = lipgloss.NewStyle().
			PaddingLeft(2)

	NoReminders = lipgloss.NewStyle().
			PaddingLeft(2).
			Foreground(Muted).
			Italic(true)

	Help = lipgloss.NewStyle().
		Foreground(Muted).
		MarginTop(1)
)

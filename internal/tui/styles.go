package tui

import "github.com/charmbracelet/lipgloss"

// Styles holds the lipgloss styles for the game screen.
type Styles struct {
	Banner    lipgloss.Style
	Password  lipgloss.Style
	Cursor    lipgloss.Style
	Satisfied lipgloss.Style
	Current   lipgloss.Style
	Won       lipgloss.Style
	Flagged   lipgloss.Style
	Help      lipgloss.Style
}

// DefaultStyles returns the default game styling.
func DefaultStyles() Styles {
	return Styles{
		Banner: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			MarginBottom(1),
		Password: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1).
			MarginBottom(1),
		Cursor: lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")),
		Satisfied: lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")),
		Current: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("214")),
		Won: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("42")).
			MarginTop(1),
		Flagged: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("196")).
			MarginTop(1),
		Help: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1),
	}
}

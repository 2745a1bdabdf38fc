// Package tui renders an interactive game session in the terminal.
//
// The model owns nothing: all game state lives in the engine session, and
// the view is a pure function of it. Keystrokes map one-to-one onto session
// edits, so the TUI can never drift from the engine's evaluation.
package tui

import (
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/olincollege/passwordgame/internal/engine"
)

// Model is the bubbletea model wrapping one game session.
type Model struct {
	session *engine.Session
	styles  Styles
	width   int
	flagged bool
}

// NewModel creates a model over an engine session.
func NewModel(session *engine.Session) Model {
	return Model{
		session: session,
		styles:  DefaultStyles(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model. Printable keys append to the password,
// backspace removes, enter confirms a winning password, esc or ctrl+c
// abandons the game.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit

		case tea.KeyEnter:
			if m.session.IsComplete() {
				return m, tea.Quit
			}

		case tea.KeyBackspace:
			m.session.RemoveLast()

		case tea.KeyRunes:
			for _, r := range msg.Runes {
				if _, err := m.session.Append(r); errors.Is(err, engine.ErrSessionTerminated) {
					m.flagged = true
					return m, tea.Quit
				}
			}
		}
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.styles.Banner.Render("The Password Game"))
	b.WriteString("\n")
	b.WriteString(m.styles.Password.Render(m.session.Text() + m.styles.Cursor.Render("▌")))
	b.WriteString("\n")
	b.WriteString(m.rulesView())

	switch {
	case m.flagged:
		b.WriteString(m.styles.Flagged.Render("✗ Game over. The content filter flagged your password."))
		b.WriteString("\n")
	case m.session.IsComplete():
		b.WriteString(m.styles.Won.Render("✓ All rules satisfied! Press enter to claim your password."))
		b.WriteString("\n")
	}

	b.WriteString(m.styles.Help.Render("type to edit · backspace to delete · esc to give up"))
	b.WriteString("\n")
	return b.String()
}

// rulesView lists the revealed rules: everything satisfied so far plus the
// rule at the gate. Rules past the gate stay hidden, which is the game.
func (m Model) rulesView() string {
	state := m.session.State()
	messages := m.session.Messages()

	revealed := state.GateIndex
	if !state.Complete {
		revealed++
	}

	var b strings.Builder
	// Newest rule on top, so the one the player is working on never
	// scrolls away as the list grows.
	for i := revealed - 1; i >= 0; i-- {
		line := fmt.Sprintf("Rule %d: %s", i+1, messages[i])
		if i < state.GateIndex {
			b.WriteString(m.styles.Satisfied.Render("✓ " + line))
		} else {
			b.WriteString(m.styles.Current.Render("✗ " + line))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// Flagged reports whether the content filter ended the game.
func (m Model) Flagged() bool {
	return m.flagged
}

// Run plays the session in a full-screen terminal program and blocks until
// the game ends.
func Run(session *engine.Session) error {
	p := tea.NewProgram(NewModel(session), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

package dialog

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattsolo1/grove-core/tui/theme"
)

// --- Messages ---

// ConfirmedMsg is sent when the user accepts a dialog.
type ConfirmedMsg struct{}

// CancelledMsg is sent when the user backs out of a dialog.
type CancelledMsg struct{}

// --- Model ---

// Confirm is a yes/no question.
type Confirm struct {
	Prompt   string
	Answered bool
	Accepted bool
	keys     confirmKeyMap
}

// NewConfirm creates a confirmation dialog asking prompt.
func NewConfirm(prompt string) Confirm {
	return Confirm{Prompt: prompt, keys: defaultConfirmKeyMap}
}

func (m Confirm) Init() tea.Cmd { return nil }

// --- Update ---

func (m Confirm) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.Answered {
		return m, nil
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keys.Confirm):
			m.Answered, m.Accepted = true, true
			return m, tea.Sequence(func() tea.Msg { return ConfirmedMsg{} }, tea.Quit)
		case key.Matches(msg, m.keys.Cancel):
			m.Answered = true
			return m, tea.Sequence(func() tea.Msg { return CancelledMsg{} }, tea.Quit)
		}
	}

	return m, nil
}

// --- View ---

func (m Confirm) View() string {
	if m.Answered {
		return ""
	}

	dialogBox := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.DefaultTheme.Colors.Orange).
		Padding(1, 2).
		Render(m.Prompt)

	helpText := lipgloss.NewStyle().
		Faint(true).
		Width(lipgloss.Width(dialogBox)).
		Align(lipgloss.Center).
		Render("\n(y/n)")

	return lipgloss.JoinVertical(lipgloss.Left, dialogBox, helpText)
}

// --- KeyMap ---

type confirmKeyMap struct {
	Confirm key.Binding
	Cancel  key.Binding
}

var defaultConfirmKeyMap = confirmKeyMap{
	Confirm: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "confirm"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("n", "esc", "ctrl+c"),
		key.WithHelp("n/esc", "cancel"),
	),
}

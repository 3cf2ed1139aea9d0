// Package dialog holds the small terminal forms used to name bookmarks and
// folders and to confirm deletions.
package dialog

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattsolo1/grove-core/tui/theme"
)

// Field is one labelled input of a form.
type Field struct {
	Label       string
	Value       string
	Placeholder string
	CharLimit   int
}

// Form collects a few text values. Tab cycles focus, enter submits and esc
// cancels.
type Form struct {
	Title     string
	Submitted bool
	Cancelled bool
	Err       string

	inputs []textinput.Model
	labels []string
	focus  int
	keys   formKeyMap
}

// NewForm creates a form with the given fields, focusing the first one.
func NewForm(title string, fields ...Field) Form {
	m := Form{Title: title, keys: defaultFormKeyMap}
	for i, f := range fields {
		ti := textinput.New()
		ti.Placeholder = f.Placeholder
		ti.CharLimit = f.CharLimit
		if ti.CharLimit == 0 {
			ti.CharLimit = 200
		}
		ti.Width = 48
		ti.SetValue(f.Value)
		if i == 0 {
			ti.Focus()
		}
		m.inputs = append(m.inputs, ti)
		m.labels = append(m.labels, f.Label)
	}
	return m
}

// Values returns the trimmed input values in field order.
func (m Form) Values() []string {
	out := make([]string, len(m.inputs))
	for i, in := range m.inputs {
		out[i] = strings.TrimSpace(in.Value())
	}
	return out
}

// Focused is the index of the field receiving keys.
func (m Form) Focused() int { return m.focus }

func (m Form) Init() tea.Cmd { return textinput.Blink }

func (m Form) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.Submitted || m.Cancelled {
		return m, nil
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keys.Cancel):
			m.Cancelled = true
			return m, tea.Sequence(func() tea.Msg { return CancelledMsg{} }, tea.Quit)
		case key.Matches(msg, m.keys.Submit):
			// the first field is the name and may not be blank
			if len(m.inputs) > 0 && strings.TrimSpace(m.inputs[0].Value()) == "" {
				m.Err = m.labels[0] + " is required"
				return m, nil
			}
			m.Submitted = true
			return m, tea.Sequence(func() tea.Msg { return ConfirmedMsg{} }, tea.Quit)
		case key.Matches(msg, m.keys.Next):
			return m.setFocus(m.focus + 1)
		case key.Matches(msg, m.keys.Prev):
			return m.setFocus(m.focus - 1)
		}
	}

	if len(m.inputs) == 0 {
		return m, nil
	}
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	m.Err = ""
	return m, cmd
}

func (m Form) setFocus(i int) (tea.Model, tea.Cmd) {
	if len(m.inputs) == 0 {
		return m, nil
	}
	n := len(m.inputs)
	m.inputs[m.focus].Blur()
	m.focus = ((i % n) + n) % n
	return m, m.inputs[m.focus].Focus()
}

func (m Form) View() string {
	if m.Submitted || m.Cancelled {
		return ""
	}

	var b strings.Builder
	b.WriteString(theme.DefaultTheme.Header.Render(m.Title))
	b.WriteString("\n\n")
	for i, in := range m.inputs {
		label := m.labels[i]
		if i == m.focus {
			label = theme.DefaultTheme.Highlight.Render(label)
		} else {
			label = theme.DefaultTheme.Muted.Render(label)
		}
		b.WriteString(label + "\n" + in.View() + "\n\n")
	}
	if m.Err != "" {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.DefaultTheme.Colors.Red).Render(m.Err) + "\n")
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.DefaultTheme.Colors.Orange).
		Padding(1, 2).
		Render(strings.TrimRight(b.String(), "\n"))

	help := lipgloss.NewStyle().
		Faint(true).
		Render("tab: next field • enter: save • esc: cancel")

	return lipgloss.JoinVertical(lipgloss.Left, box, help)
}

// --- KeyMap ---

type formKeyMap struct {
	Next   key.Binding
	Prev   key.Binding
	Submit key.Binding
	Cancel key.Binding
}

var defaultFormKeyMap = formKeyMap{
	Next: key.NewBinding(
		key.WithKeys("tab", "down"),
		key.WithHelp("tab", "next field"),
	),
	Prev: key.NewBinding(
		key.WithKeys("shift+tab", "up"),
		key.WithHelp("shift+tab", "previous field"),
	),
	Submit: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "save"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc", "ctrl+c"),
		key.WithHelp("esc", "cancel"),
	),
}

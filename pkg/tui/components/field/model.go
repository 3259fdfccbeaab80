package field

import (
	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/fundflow/pkg/tui/theme"
)

// Model is a labelled single-line text input.
type Model struct {
	Name  string
	label string
	input textinput.Model
	theme theme.Theme
}

// Option configures a Model.
type Option func(*Model)

// WithPlaceholder sets the hint shown while empty.
func WithPlaceholder(p string) Option { return func(m *Model) { m.input.Placeholder = p } }

// WithSecret masks the typed text.
func WithSecret() Option {
	return func(m *Model) {
		m.input.EchoMode = textinput.EchoPassword
		m.input.EchoCharacter = '•'
	}
}

// WithWidth sets the input width.
func WithWidth(w int) Option { return func(m *Model) { m.input.SetWidth(w) } }

// WithLimit caps the input length.
func WithLimit(n int) Option { return func(m *Model) { m.input.CharLimit = n } }

// New constructs a field.
func New(name, label string, th theme.Theme, opts ...Option) *Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.SetWidth(40)
	m := &Model{Name: name, label: label, input: ti, theme: th}
	for _, o := range opts {
		o(m)
	}
	return m
}

// Value returns the typed text.
func (m *Model) Value() string { return m.input.Value() }

// SetValue replaces the text.
func (m *Model) SetValue(v string) { m.input.SetValue(v) }

// Focus gives the input the keyboard.
func (m *Model) Focus() tea.Cmd { return m.input.Focus() }

// Blur releases the keyboard.
func (m *Model) Blur() { m.input.Blur() }

// Focused reports whether the input holds the keyboard.
func (m *Model) Focused() bool { return m.input.Focused() }

// Update forwards keys to the input and reports whether the text changed.
func (m *Model) Update(msg tea.Msg) (bool, tea.Cmd) {
	before := m.input.Value()
	next, cmd := m.input.Update(msg)
	m.input = next
	return m.input.Value() != before, cmd
}

// View renders the label above the input.
func (m *Model) View() string {
	label := m.theme.Field.Label
	if m.input.Focused() {
		label = m.theme.Field.FocusedLabel
	}
	return lipgloss.JoinVertical(lipgloss.Left, label.Render(m.label), m.input.View())
}

package tageditor

import (
	"strings"

	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/fundflow/pkg/tags"
	"tableflip.dev/fundflow/pkg/tui/events"
	"tableflip.dev/fundflow/pkg/tui/theme"
)

var _ tags.Surface = (*Model)(nil)

// Model is the tag input box with its chip row. Enter commits the input;
// up moves into the chips where x removes the highlighted one.
type Model struct {
	id     events.ComponentID
	theme  theme.Theme
	editor *tags.Editor

	input   textinput.Model
	chips   []string
	focused bool
	onChips bool
	chip    int
}

// New constructs the widget wired to a fresh tags.Editor.
func New(id events.ComponentID, th theme.Theme, opts ...tags.Option) *Model {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = "Add a tag and press enter"
	ti.SetWidth(28)
	m := &Model{id: id, theme: th, input: ti}
	m.editor = tags.New(nil, append(opts, tags.WithSurface(m))...)
	return m
}

// SetChips implements tags.Surface.
func (m *Model) SetChips(chips []string) {
	m.chips = chips
	if m.chip >= len(chips) {
		m.chip = len(chips) - 1
	}
	if len(chips) == 0 {
		m.chip = 0
		m.onChips = false
	}
}

// SetInput implements tags.Surface.
func (m *Model) SetInput(text string) {
	if m.input.Value() != text {
		m.input.SetValue(text)
	}
}

// Editor exposes the backing tag list.
func (m *Model) Editor() *tags.Editor { return m.editor }

// Tags returns the committed chips.
func (m *Model) Tags() []string { return m.editor.Chips() }

// Focus gives the widget the keyboard.
func (m *Model) Focus() tea.Cmd {
	m.focused = true
	if m.onChips {
		return nil
	}
	return m.input.Focus()
}

// Blur releases the keyboard.
func (m *Model) Blur() {
	m.focused = false
	m.onChips = false
	m.input.Blur()
}

// Capturing reports whether typed characters go to the input.
func (m *Model) Capturing() bool { return m.focused && !m.onChips }

// Update handles keys while focused.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok || !m.focused {
		return nil
	}
	if m.onChips {
		switch key.String() {
		case "left", "h":
			if m.chip > 0 {
				m.chip--
			}
		case "right", "l":
			if m.chip < len(m.chips)-1 {
				m.chip++
			}
		case "x", "delete", "backspace":
			m.editor.Remove(m.chip)
		case "down", "esc":
			m.onChips = false
			return m.input.Focus()
		}
		return nil
	}
	switch key.String() {
	case "enter":
		m.editor.Enter()
		return nil
	case "up":
		if len(m.chips) > 0 {
			m.onChips = true
			m.chip = len(m.chips) - 1
			m.input.Blur()
		}
		return nil
	}
	next, cmd := m.input.Update(key)
	m.input = next
	if m.input.Value() != m.editor.Input() {
		m.editor.SetInput(m.input.Value())
	}
	return cmd
}

// Reset clears chips and input.
func (m *Model) Reset() { m.editor.Reset() }

// View renders the chips above the input.
func (m *Model) View() string {
	label := m.theme.Field.Label
	if m.focused {
		label = m.theme.Field.FocusedLabel
	}
	chips := make([]string, 0, len(m.chips))
	for i, c := range m.chips {
		style := m.theme.Choice.Chip
		if m.onChips && i == m.chip {
			style = m.theme.Choice.ChipHot
		}
		chips = append(chips, style.Render(c+" ×"))
	}
	row := strings.Join(chips, " ")
	if row == "" {
		row = m.theme.Card.Meta.Render("no tags yet")
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		label.Render("Tags"),
		row,
		"> "+m.input.View(),
	)
}

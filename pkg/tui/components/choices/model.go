package choices

import (
	"strings"

	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/fundflow/pkg/selection"
	"tableflip.dev/fundflow/pkg/tui/events"
	"tableflip.dev/fundflow/pkg/tui/theme"
)

// Layout controls how options are drawn.
type Layout int

const (
	// Tabs draws a single underlined row.
	Tabs Layout = iota
	// Tiles draws bordered boxes side by side.
	Tiles
	// List draws one option per line with a radio marker.
	List
)

var _ selection.Marker = (*Model)(nil)

// Model renders a selection.Group and moves its selection from the keyboard.
type Model struct {
	id     events.ComponentID
	label  string
	layout Layout
	theme  theme.Theme

	group  *selection.Group
	marked map[string]bool

	focused  bool
	custom   *textinput.Model
	onCustom bool
}

// Option configures a Model.
type Option func(*Model)

// WithLabel sets the caption shown before the options.
func WithLabel(label string) Option { return func(m *Model) { m.label = label } }

// WithLayout picks how the options are drawn.
func WithLayout(l Layout) Option { return func(m *Model) { m.layout = l } }

// WithCustomInput adds a free-text slot after the options. Focusing it clears
// the selection and picking an option clears it.
func WithCustomInput(placeholder string) Option {
	return func(m *Model) {
		ti := textinput.New()
		ti.Placeholder = placeholder
		ti.Prompt = ""
		ti.CharLimit = 12
		ti.SetWidth(12)
		m.custom = &ti
	}
}

// New constructs the widget and its backing group.
func New(id events.ComponentID, options []selection.Option, th theme.Theme, opts ...Option) *Model {
	m := &Model{id: id, theme: th, marked: map[string]bool{}}
	for _, o := range opts {
		o(m)
	}
	gopts := []selection.GroupOption{selection.WithMarker(m)}
	if m.custom != nil {
		gopts = append(gopts, selection.WithCustom())
	}
	m.group = selection.New(options, gopts...)
	return m
}

// SetSelected implements selection.Marker.
func (m *Model) SetSelected(id string, selected bool) {
	if selected {
		m.marked[id] = true
		return
	}
	delete(m.marked, id)
}

// Group exposes the backing selection group.
func (m *Model) Group() *selection.Group { return m.group }

// ID returns the component id.
func (m *Model) ID() events.ComponentID { return m.id }

// Value returns the selected option id, or the custom text when the free
// slot is in use.
func (m *Model) Value() string {
	if id, ok := m.group.Selected(); ok {
		return id
	}
	return strings.TrimSpace(m.group.Custom())
}

// Focus gives the widget the keyboard.
func (m *Model) Focus() tea.Cmd {
	m.focused = true
	if m.onCustom {
		return m.custom.Focus()
	}
	return nil
}

// Blur releases the keyboard.
func (m *Model) Blur() {
	m.focused = false
	if m.custom != nil {
		m.custom.Blur()
	}
}

// Focused reports whether the widget holds the keyboard.
func (m *Model) Focused() bool { return m.focused }

// Capturing reports whether typed characters belong to the custom slot.
func (m *Model) Capturing() bool { return m.focused && m.onCustom }

// Reset clears the selection and the custom slot.
func (m *Model) Reset() {
	m.group.Clear()
	m.leaveCustom()
	if m.custom != nil {
		m.custom.SetValue("")
		m.group.SetCustom("")
	}
}

// Update handles navigation keys while focused. It reports whether the
// selection or custom value changed.
func (m *Model) Update(msg tea.Msg) (bool, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok || !m.focused {
		return false, nil
	}
	if m.onCustom {
		return m.updateCustom(key)
	}
	prev := m.group.SelectedIndex()
	switch key.String() {
	case "left", "h", "up", "k":
		if m.custom != nil && prev <= 0 {
			return true, m.enterCustom()
		}
		m.group.Move(-1)
	case "right", "l", "down", "j":
		if m.custom != nil && prev == m.group.Len()-1 {
			return true, m.enterCustom()
		}
		m.group.Move(1)
	default:
		return false, nil
	}
	return m.group.SelectedIndex() != prev, nil
}

func (m *Model) updateCustom(key tea.KeyMsg) (bool, tea.Cmd) {
	switch key.String() {
	case "left":
		if m.custom.Position() == 0 {
			m.leaveCustom()
			m.group.Move(-1)
			return true, nil
		}
	case "up", "down":
		m.leaveCustom()
		m.group.Move(1)
		return true, nil
	}
	before := m.custom.Value()
	next, cmd := m.custom.Update(key)
	*m.custom = next
	if m.custom.Value() == before {
		return false, cmd
	}
	m.group.SetCustom(m.custom.Value())
	return true, cmd
}

// SetCustom places text in the free slot, as if typed.
func (m *Model) SetCustom(text string) {
	if m.custom == nil {
		return
	}
	m.group.FocusCustom()
	m.custom.SetValue(text)
	m.group.SetCustom(text)
}

func (m *Model) enterCustom() tea.Cmd {
	m.onCustom = true
	m.group.FocusCustom()
	m.group.SetCustom(m.custom.Value())
	return m.custom.Focus()
}

func (m *Model) leaveCustom() {
	m.onCustom = false
	if m.custom == nil {
		return
	}
	m.custom.Blur()
	m.custom.SetValue("")
}

// View renders the options using the configured layout.
func (m *Model) View() string {
	th := m.theme.Choice
	parts := make([]string, 0, m.group.Len()+1)
	for _, o := range m.group.Options() {
		on := m.marked[o.ID]
		switch m.layout {
		case Tiles:
			style := th.Option
			if on {
				style = th.Selected
			}
			parts = append(parts, style.Render(o.Label))
		case List:
			mark := "○ "
			if on {
				mark = "● "
			}
			line := mark + o.Label
			if on {
				line = th.Cursor.Render(line)
			}
			parts = append(parts, line)
		default:
			style := m.theme.Header.Tab
			if on {
				style = m.theme.Header.ActiveTab
			}
			parts = append(parts, style.Render(o.Label))
		}
	}
	if m.custom != nil {
		style := th.Option
		if m.onCustom {
			style = th.Selected
		}
		parts = append(parts, style.Render("$ "+m.custom.View()))
	}

	var body string
	switch m.layout {
	case List:
		body = lipgloss.JoinVertical(lipgloss.Left, parts...)
	default:
		body = lipgloss.JoinHorizontal(lipgloss.Center, parts...)
	}
	if m.label == "" {
		return body
	}
	label := m.theme.Field.Label
	if m.focused {
		label = m.theme.Field.FocusedLabel
	}
	if m.layout == List {
		return lipgloss.JoinVertical(lipgloss.Left, label.Render(m.label), body)
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, label.Render(m.label+" "), body)
}

package dialog

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/reflow/wordwrap"

	"tableflip.dev/fundflow/pkg/modal"
	"tableflip.dev/fundflow/pkg/selection"
	"tableflip.dev/fundflow/pkg/tui/components/choices"
	"tableflip.dev/fundflow/pkg/tui/events"
	"tableflip.dev/fundflow/pkg/tui/theme"
	"tableflip.dev/fundflow/pkg/tui/ui"
	"tableflip.dev/fundflow/pkg/tui/ui/overlay"
	"tableflip.dev/fundflow/pkg/validate"
)

// Result reports what a key or click did to the dialog.
type Result int

const (
	// Pending means the dialog is still open and nothing was decided.
	Pending Result = iota
	// Confirmed means the policy passed, the effect ran and the dialog closed.
	Confirmed
	// Cancelled means the dialog closed without side effects.
	Cancelled
	// Rejected means confirm failed and the dialog stayed open.
	Rejected
)

const idealWidth = 52

type field struct {
	def   modal.Field
	input *textinput.Model
	pick  *choices.Model
}

// Model draws a modal.Controller as a centered box and feeds it keys.
type Model struct {
	ctl   *modal.Controller
	theme theme.Theme
	body  string

	fields []field
	ring   *ui.FocusRing
	err    string
	width  int
}

// New wraps ctl. Body is optional prose shown under the title.
func New(ctl *modal.Controller, th theme.Theme, body string) *Model {
	m := &Model{ctl: ctl, theme: th, body: body}
	for _, f := range ctl.Fields() {
		fd := field{def: f}
		if len(f.Choices) > 0 {
			opts := make([]selection.Option, len(f.Choices))
			for i, c := range f.Choices {
				opts[i] = selection.Option{ID: c, Label: c}
			}
			fd.pick = choices.New(events.ComponentID(ctl.ID()+"."+f.Name), opts, th, choices.WithLayout(choices.List), choices.WithLabel(f.Label))
		} else {
			ti := textinput.New()
			ti.Prompt = ""
			ti.Placeholder = f.Placeholder
			ti.SetWidth(idealWidth - 10)
			if f.Secret {
				ti.EchoMode = textinput.EchoPassword
				ti.EchoCharacter = '•'
			}
			fd.input = &ti
		}
		m.fields = append(m.fields, fd)
	}
	m.ring = ui.NewFocusRing(len(m.fields))
	return m
}

// Controller returns the wrapped modal.
func (m *Model) Controller() *modal.Controller { return m.ctl }

// IsOpen reports whether the modal is visible.
func (m *Model) IsOpen() bool { return m.ctl.IsOpen() }

// Err returns the inline validation message from the last confirm.
func (m *Model) Err() string { return m.err }

// Open clears the inputs and shows the modal for subject.
func (m *Model) Open(subject modal.Subject) tea.Cmd {
	m.err = ""
	for _, f := range m.fields {
		if f.input != nil {
			f.input.SetValue("")
		}
		if f.pick != nil {
			f.pick.Reset()
		}
	}
	m.ctl.OpenFor(subject)
	m.ring.Set(0)
	return m.focus()
}

// SetValue fills a field as if the user typed or picked it.
func (m *Model) SetValue(name, value string) {
	for _, f := range m.fields {
		if f.def.Name != name {
			continue
		}
		if f.input != nil {
			f.input.SetValue(value)
		}
		if f.pick != nil {
			f.pick.Group().Select(value)
		}
	}
}

// Values collects the current field values.
func (m *Model) Values() validate.Values {
	values := validate.Values{}
	for _, f := range m.fields {
		switch {
		case f.input != nil:
			values[f.def.Name] = f.input.Value()
		case f.pick != nil:
			values[f.def.Name] = f.pick.Value()
		}
	}
	return values
}

// Capturing reports whether the dialog holds the keyboard.
func (m *Model) Capturing() bool { return m.ctl.IsOpen() }

// Update handles keys and clicks while the modal is open.
func (m *Model) Update(ctx context.Context, msg tea.Msg) (Result, tea.Cmd) {
	if !m.ctl.IsOpen() {
		return Pending, nil
	}
	switch msg := msg.(type) {
	case events.ClickMsg:
		if m.ctl.ClickAt(msg.X, msg.Y) {
			m.blurAll()
			return Cancelled, nil
		}
		return Pending, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			m.ctl.Cancel()
			m.blurAll()
			return Cancelled, nil
		case "tab":
			m.ring.Next()
			return Pending, m.focus()
		case "shift+tab":
			m.ring.Prev()
			return Pending, m.focus()
		case "enter":
			return m.confirm(ctx)
		}
		return Pending, m.forward(msg)
	}
	return Pending, nil
}

func (m *Model) confirm(ctx context.Context) (Result, tea.Cmd) {
	err := m.ctl.Confirm(ctx, m.Values())
	if err == nil {
		m.err = ""
		m.blurAll()
		return Confirmed, nil
	}
	var verr *validate.Error
	if errors.As(err, &verr) {
		m.err = verr.Message
	} else {
		m.err = err.Error()
	}
	return Rejected, nil
}

func (m *Model) forward(msg tea.KeyMsg) tea.Cmd {
	if len(m.fields) == 0 {
		return nil
	}
	f := m.fields[m.ring.Current()]
	if f.pick != nil {
		_, cmd := f.pick.Update(msg)
		return cmd
	}
	next, cmd := f.input.Update(msg)
	*f.input = next
	return cmd
}

func (m *Model) focus() tea.Cmd {
	m.blurAll()
	if len(m.fields) == 0 {
		return nil
	}
	f := m.fields[m.ring.Current()]
	if f.pick != nil {
		return f.pick.Focus()
	}
	return f.input.Focus()
}

func (m *Model) blurAll() {
	for _, f := range m.fields {
		if f.input != nil {
			f.input.Blur()
		}
		if f.pick != nil {
			f.pick.Blur()
		}
	}
}

// View renders the dialog box, or nothing when closed.
func (m *Model) View() string {
	if !m.ctl.IsOpen() {
		return ""
	}
	th := m.theme.Modal
	width := idealWidth
	if m.width > 0 && m.width-4 < width {
		width = max(m.width-4, 24)
	}
	inner := width - th.Frame.GetHorizontalFrameSize()

	lines := []string{th.Title.Render(m.ctl.Title())}
	if s := m.ctl.Subject(); s.Title != "" {
		lines = append(lines, th.Label.Render(s.Title))
	}
	if m.body != "" {
		lines = append(lines, "", th.Body.Render(wordwrap.String(m.body, inner)))
	}
	for i, f := range m.fields {
		lines = append(lines, "")
		if f.pick != nil {
			lines = append(lines, f.pick.View())
			continue
		}
		label := m.theme.Field.Label
		if m.ring.Is(i) {
			label = m.theme.Field.FocusedLabel
		}
		lines = append(lines, label.Render(f.def.Label), "> "+f.input.View())
	}
	if m.err != "" {
		lines = append(lines, "", th.Error.Render(wordwrap.String(m.err, inner)))
	}
	lines = append(lines, "", m.theme.Footer.Help.Render("enter confirm · esc cancel · tab next field"))
	return th.Frame.Width(width).Render(strings.Join(lines, "\n"))
}

// Render draws the dialog centered over background and records its bounds
// on the controller so clicks outside it dismiss it.
func (m *Model) Render(background string, width, height int) string {
	m.width = width
	fg := m.View()
	if fg == "" {
		m.ctl.SetBounds(modal.Rect{})
		return background
	}
	placement := overlay.Placement{Horizontal: lipgloss.Center, Vertical: lipgloss.Center}
	view, r := overlay.Compose(background, width, height, fg, placement)
	m.ctl.SetBounds(modal.Rect{X: r.X, Y: r.Y, W: r.W, H: r.H})
	return view
}

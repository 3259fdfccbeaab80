package flash

import (
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/fundflow/pkg/notify"
	"tableflip.dev/fundflow/pkg/tui/events"
	"tableflip.dev/fundflow/pkg/tui/theme"
)

// Duration is how long a notice stays on screen.
const Duration = 3 * time.Second

var _ notify.Notifier = (*Model)(nil)

type hideMsg struct {
	id  events.ComponentID
	tag int
}

// Model is the transient notice line that replaces blocking alerts. Each
// notice hides itself after Duration unless a newer one replaced it.
type Model struct {
	id       events.ComponentID
	theme    theme.Theme
	duration time.Duration

	notice  notify.Notice
	visible bool
	tag     int
	armed   bool
}

// New constructs an empty notice line.
func New(id events.ComponentID, th theme.Theme) *Model {
	return &Model{id: id, theme: th, duration: Duration}
}

// Notify implements notify.Notifier.
func (m *Model) Notify(n notify.Notice) {
	m.notice = n
	m.visible = true
	m.tag++
	m.armed = true
}

// Arm returns the hide timer for the latest notice. It returns nil when no
// notice arrived since the previous call.
func (m *Model) Arm() tea.Cmd {
	if !m.armed {
		return nil
	}
	m.armed = false
	id, tag := m.id, m.tag
	return tea.Tick(m.duration, func(time.Time) tea.Msg {
		return hideMsg{id: id, tag: tag}
	})
}

// Update hides the notice when its own timer fires.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	if h, ok := msg.(hideMsg); ok && h.id == m.id && h.tag == m.tag {
		m.visible = false
	}
	return nil
}

// Stop hides the notice and invalidates pending timers.
func (m *Model) Stop() {
	m.tag++
	m.visible = false
	m.armed = false
}

// Visible reports whether a notice is showing.
func (m *Model) Visible() bool { return m.visible }

// Notice returns the latest notice.
func (m *Model) Notice() notify.Notice { return m.notice }

// View renders the notice or an empty line.
func (m *Model) View() string {
	if !m.visible {
		return ""
	}
	style := m.theme.Flash.Info
	switch m.notice.Level {
	case notify.Success:
		style = m.theme.Flash.Success
	case notify.Error:
		style = m.theme.Flash.Error
	}
	return style.Render(m.notice.Text)
}

package eventviewer

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/v2/viewport"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/fundflow/pkg/notify"
	"tableflip.dev/fundflow/pkg/tui/events"
	"tableflip.dev/fundflow/pkg/tui/ui"
)

// Level indicates the severity of a logged event.
type Level int

const (
	// LevelInfo is the default severity.
	LevelInfo Level = iota
	// LevelWarn highlights potential issues.
	LevelWarn
	// LevelError highlights failures, such as an intent the backend refused.
	LevelError
)

// LevelOf maps a notice level onto the log's severities.
func LevelOf(l notify.Level) Level {
	if l == notify.Error {
		return LevelError
	}
	return LevelInfo
}

// Entry captures a rendered event.
type Entry struct {
	Timestamp time.Time
	Source    string
	Summary   string
	Detail    string
	Level     Level
}

// EntryFor describes a program message, reporting false for messages not
// worth logging (ticks, raw keys).
func EntryFor(msg tea.Msg) (Entry, bool) {
	switch v := msg.(type) {
	case events.IntentMsg:
		e := Entry{Source: string(v.Component), Summary: string(v.Intent.Action), Detail: v.Intent.Describe()}
		if v.Err != nil {
			e.Level = LevelError
			e.Detail = v.Err.Error()
		}
		return e, true
	case events.NavigateMsg:
		return Entry{Source: string(v.Component), Summary: "navigate", Detail: v.Describe()}, true
	case events.CardChangeMsg:
		return Entry{Source: string(v.Component), Summary: "card", Detail: v.Describe()}, true
	case events.RatingChangedMsg:
		return Entry{Source: "store", Summary: "rating", Detail: v.Describe()}, true
	case tea.WindowSizeMsg:
		return Entry{Source: "tea", Summary: "resize", Detail: fmt.Sprintf("%dx%d", v.Width, v.Height)}, true
	}
	return Entry{}, false
}

// Model renders a streaming event log, newest first.
type Model struct {
	viewport viewport.Model
	entries  []Entry

	maxEntries int

	width  int
	height int

	styles Styles
}

// Styles controls the log's presentation.
type Styles struct {
	Frame     lipgloss.Style
	Header    lipgloss.Style
	Info      lipgloss.Style
	Warn      lipgloss.Style
	Error     lipgloss.Style
	Timestamp lipgloss.Style
	Source    lipgloss.Style
}

// DefaultStyles returns the stock styling.
func DefaultStyles() Styles {
	return Styles{
		Frame: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240")),
		Header:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("248")),
		Info:      lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Warn:      lipgloss.NewStyle().Foreground(lipgloss.Color("#FFB347")),
		Error:     lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5F5F")),
		Timestamp: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		Source:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	}
}

// NewModel constructs an event log capped at maxEntries.
func NewModel(maxEntries int) *Model {
	if maxEntries <= 0 {
		maxEntries = 200
	}
	return &Model{
		viewport:   viewport.New(viewport.WithWidth(1), viewport.WithHeight(1)),
		maxEntries: maxEntries,
		styles:     DefaultStyles(),
	}
}

// Init implements ui.Component.
func (m *Model) Init() tea.Cmd { return nil }

// Update implements ui.Component. It scrolls on pgup/pgdown.
func (m *Model) Update(msg tea.Msg) (ui.Component, tea.Cmd) {
	vp, cmd := m.viewport.Update(msg)
	m.viewport = vp
	return m, cmd
}

// SetSize resizes the viewport inside the border and header.
func (m *Model) SetSize(width, height int) {
	width = max(width, 4)
	height = max(height, 3)
	if m.width == width && m.height == height {
		return
	}
	m.width = width
	m.height = height
	m.viewport.SetWidth(max(1, width-2))
	m.viewport.SetHeight(max(1, height-3))
	m.refreshContent()
}

// View renders the bordered viewport.
func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	body := lipgloss.JoinVertical(lipgloss.Left,
		m.styles.Header.Render(fmt.Sprintf("Events (%d)", len(m.entries))),
		m.viewport.View(),
	)
	return m.styles.Frame.Width(m.width).Height(m.height).Render(body)
}

// Append inserts a new entry at the top of the log.
func (m *Model) Append(entry Entry) {
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now()
	}
	if entry.Source == "" {
		entry.Source = "app"
	}
	if entry.Summary == "" {
		entry.Summary = "event"
	}
	m.entries = append([]Entry{entry}, m.entries...)
	if len(m.entries) > m.maxEntries {
		m.entries = m.entries[:m.maxEntries]
	}
	m.refreshContent()
	m.viewport.SetYOffset(0)
}

// Entries returns the log, newest first.
func (m *Model) Entries() []Entry { return append([]Entry(nil), m.entries...) }

// Clear drops all logged entries.
func (m *Model) Clear() {
	m.entries = nil
	m.refreshContent()
}

func (m *Model) refreshContent() {
	lines := make([]string, 0, len(m.entries))
	for _, entry := range m.entries {
		lines = append(lines, m.renderEntry(entry))
	}
	content := strings.Join(lines, "\n")
	if content == "" {
		content = m.styles.Timestamp.Render("No events yet")
	}
	m.viewport.SetContent(content)
}

func (m *Model) renderEntry(entry Entry) string {
	ts := m.styles.Timestamp.Render(entry.Timestamp.Format("15:04:05"))
	source := m.styles.Source.Render("[" + entry.Source + "]")
	msg := entry.Summary
	if entry.Detail != "" {
		msg += ": " + entry.Detail
	}
	switch entry.Level {
	case LevelWarn:
		msg = m.styles.Warn.Render(msg)
	case LevelError:
		msg = m.styles.Error.Render(msg)
	default:
		msg = m.styles.Info.Render(msg)
	}
	return ts + " " + source + " " + msg
}

// Package help renders the key reference overlay, opened on the section for
// the page the user is looking at.
package help

import (
	_ "embed"
	"strings"

	"github.com/charmbracelet/bubbles/v2/viewport"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/fundflow/pkg/tui/events"
	"tableflip.dev/fundflow/pkg/tui/theme"
	"tableflip.dev/fundflow/pkg/tui/ui"
)

//go:embed help.md
var helpMarkdown string

// topics maps a page to the heading of its help section.
var topics = map[events.PageID]string{
	events.PageHome:     "Moving around",
	events.PageProjects: "Projects",
	events.PageProject:  "Project page",
	events.PageCreate:   "Creating a project",
	events.PageProfile:  "Profile",
	events.PageAdmin:    "Admin",
	events.PageAuth:     "Signing in",
}

// Document is the help text split at its second-level headings.
type Document struct {
	Intro    string
	Sections []Section
}

// Section is one "## " block.
type Section struct {
	Heading string
	Body    string
}

// Parse splits markdown at "## " headings. Text before the first heading
// is the intro.
func Parse(markdown string) Document {
	var doc Document
	var cur *Section
	var intro strings.Builder
	for _, line := range strings.Split(strings.TrimSpace(markdown), "\n") {
		if h, ok := strings.CutPrefix(line, "## "); ok {
			doc.Sections = append(doc.Sections, Section{Heading: strings.TrimSpace(h)})
			cur = &doc.Sections[len(doc.Sections)-1]
			continue
		}
		if cur == nil {
			intro.WriteString(line + "\n")
			continue
		}
		cur.Body += line + "\n"
	}
	doc.Intro = strings.TrimSpace(intro.String())
	return doc
}

// Focus returns the markdown with the named section moved first, right
// after the intro. Unknown headings leave the order alone.
func (d Document) Focus(heading string) string {
	ordered := make([]Section, 0, len(d.Sections))
	for _, s := range d.Sections {
		if s.Heading == heading {
			ordered = append(ordered, s)
		}
	}
	for _, s := range d.Sections {
		if s.Heading != heading {
			ordered = append(ordered, s)
		}
	}
	var b strings.Builder
	b.WriteString(d.Intro + "\n\n")
	for _, s := range ordered {
		b.WriteString("## " + s.Heading + "\n" + s.Body + "\n")
	}
	return strings.TrimSpace(b.String())
}

// Model is the help overlay: rendered markdown in a scrolling viewport.
type Model struct {
	viewport viewport.Model
	doc      Document
	topic    string
	width    int
	height   int

	frame lipgloss.Style
	title lipgloss.Style
	err   error
}

// New builds the overlay for page, sized width x height.
func New(page events.PageID, th theme.Theme, width, height int) *Model {
	vp := viewport.New(viewport.WithWidth(1), viewport.WithHeight(1))
	vp.MouseWheelEnabled = true
	m := &Model{
		viewport: vp,
		doc:      Parse(helpMarkdown),
		topic:    topics[page],
		frame:    th.Modal.Frame.Padding(0, 1),
		title:    th.Modal.Title,
	}
	m.SetSize(width, height)
	return m
}

// Topic is the section shown first.
func (m *Model) Topic() string { return m.topic }

// Init implements ui.Overlay.
func (m *Model) Init() tea.Cmd { return nil }

// Update scrolls; esc, q or ? close the overlay.
func (m *Model) Update(msg tea.Msg) (ui.Overlay, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc", "q", "?":
			return nil, nil
		}
	}
	vp, cmd := m.viewport.Update(msg)
	m.viewport = vp
	return m, cmd
}

// View implements ui.Overlay.
func (m *Model) View() (string, *tea.Cursor) {
	heading := "Help"
	if m.topic != "" {
		heading += ": " + m.topic
	}
	body := lipgloss.JoinVertical(lipgloss.Left, m.title.Render(heading), m.viewport.View())
	return m.frame.Width(m.width).Height(m.height).Render(body), nil
}

// SetSize re-renders the markdown for the new width.
func (m *Model) SetSize(width, height int) {
	width, height = max(width, 32), max(height, 8)
	if m.width == width && m.height == height {
		return
	}
	m.width, m.height = width, height

	inner := max(width-m.frame.GetHorizontalFrameSize(), 1)
	m.viewport.SetWidth(inner)
	m.viewport.SetHeight(max(height-m.frame.GetVerticalFrameSize()-1, 1))
	m.render(inner)
}

func (m *Model) render(wrap int) {
	content, err := renderMarkdown(m.doc.Focus(m.topic), max(wrap, 10))
	if err != nil {
		m.err = err
		content = "help unavailable: " + err.Error()
	}
	m.viewport.SetContent(content)
	m.viewport.SetYOffset(0)
}

// renderMarkdown uses the notty style so the overlay carries no escape
// codes of its own; the frame supplies the colour.
func renderMarkdown(md string, wrap int) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("notty"),
		glamour.WithWordWrap(wrap),
	)
	if err != nil {
		return "", err
	}
	return r.Render(md)
}

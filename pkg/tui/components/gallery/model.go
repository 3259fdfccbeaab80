package gallery

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/fundflow/pkg/carousel"
	"tableflip.dev/fundflow/pkg/tui/events"
	"tableflip.dev/fundflow/pkg/tui/theme"
)

// TickMsg advances the gallery when its tag is still current.
type TickMsg struct {
	Component events.ComponentID
	Tag       int
}

// Model is the image slider on the project page.
type Model struct {
	id       events.ComponentID
	theme    theme.Theme
	interval time.Duration

	slides   []string
	carousel *carousel.Carousel
	focused  bool
	width    int
}

// New constructs an empty gallery.
func New(id events.ComponentID, th theme.Theme) *Model {
	return &Model{id: id, theme: th, interval: carousel.Interval, carousel: carousel.New(0)}
}

// SetSlides replaces the slides and rewinds to the first one. A running
// auto-advance is stopped; call Start again.
func (m *Model) SetSlides(slides []string) {
	m.carousel.Stop()
	m.slides = append([]string(nil), slides...)
	m.carousel = carousel.New(len(slides))
}

// Start begins auto-advance.
func (m *Model) Start() tea.Cmd {
	if m.carousel.Len() < 2 {
		return nil
	}
	return m.schedule(m.carousel.Start())
}

// Stop halts auto-advance; pending ticks are ignored.
func (m *Model) Stop() { m.carousel.Stop() }

// Running reports whether auto-advance is on.
func (m *Model) Running() bool { return m.carousel.Running() }

func (m *Model) schedule(tag int) tea.Cmd {
	id := m.id
	return tea.Tick(m.interval, func(time.Time) tea.Msg {
		return TickMsg{Component: id, Tag: tag}
	})
}

// Focus gives the gallery the arrow keys.
func (m *Model) Focus() { m.focused = true }

// Blur releases the arrow keys.
func (m *Model) Blur() { m.focused = false }

// Current returns the active slide index.
func (m *Model) Current() int { return m.carousel.Current() }

// SetWidth sets the render width.
func (m *Model) SetWidth(w int) { m.width = w }

// Update handles ticks and, while focused, arrow and digit keys.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case TickMsg:
		if msg.Component != m.id {
			return nil
		}
		if m.carousel.Tick(msg.Tag) {
			return m.schedule(msg.Tag)
		}
	case tea.KeyMsg:
		if !m.focused {
			return nil
		}
		switch key := msg.String(); key {
		case "left", "h":
			m.carousel.Prev()
		case "right", "l":
			m.carousel.Next()
		default:
			if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
				m.carousel.Go(int(key[0] - '1'))
			}
		}
	}
	return nil
}

// View renders the current slide with arrows and position dots.
func (m *Model) View() string {
	if len(m.slides) == 0 {
		return m.theme.Card.Meta.Render("No images")
	}
	width := m.width
	if width <= 0 {
		width = 40
	}
	frame := m.theme.Card.Frame
	if m.focused {
		frame = m.theme.Card.Focused
	}
	slide := frame.Width(max(width-4, 10)).Align(lipgloss.Center).Render(m.slides[m.Current()])

	dots := make([]string, len(m.slides))
	for i := range m.slides {
		if i == m.Current() {
			dots[i] = "●"
		} else {
			dots[i] = "○"
		}
	}
	nav := fmt.Sprintf("‹  %s  ›", strings.Join(dots, " "))
	return lipgloss.JoinVertical(lipgloss.Center, slide, nav)
}

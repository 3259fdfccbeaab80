package ratingview

import (
	"math"
	"strings"

	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
	colorful "github.com/lucasb-eyer/go-colorful"

	"tableflip.dev/fundflow/pkg/rating"
	"tableflip.dev/fundflow/pkg/tui/events"
	"tableflip.dev/fundflow/pkg/tui/theme"
)

const (
	sliderWidth = 21
	starGlyph   = "★"
)

// Part identifies the focused half of the widget.
type Part int

const (
	PartSlider Part = iota
	PartField
)

var _ rating.Display = (*Model)(nil)

// Model draws the rating slider, numeric field and star row, and feeds
// keyboard input into a rating.Pair.
type Model struct {
	id    events.ComponentID
	theme theme.Theme
	pair  *rating.Pair

	slider float64
	field  textinput.Model
	stars  rating.Stars

	focused bool
	part    Part
	typing  bool
}

// New constructs the widget. Bind must be called with the pair that uses
// the widget as its display.
func New(id events.ComponentID, th theme.Theme) *Model {
	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = 5
	ti.SetWidth(5)
	return &Model{id: id, theme: th, field: ti, stars: rating.Render(rating.Min)}
}

// Bind attaches the pair driven by this widget.
func (m *Model) Bind(p *rating.Pair) { m.pair = p }

// SetSlider implements rating.Display.
func (m *Model) SetSlider(v float64) { m.slider = v }

// SetField implements rating.Display. While the user is typing the field
// keeps their raw text.
func (m *Model) SetField(text string) {
	if m.typing {
		return
	}
	m.field.SetValue(text)
}

// SetStars implements rating.Display.
func (m *Model) SetStars(s rating.Stars) { m.stars = s }

// Focus gives the widget the keyboard.
func (m *Model) Focus() tea.Cmd {
	m.focused = true
	if m.part == PartField {
		return m.field.Focus()
	}
	return nil
}

// Blur releases the keyboard and normalizes the field text.
func (m *Model) Blur() {
	m.focused = false
	m.field.Blur()
	if m.pair != nil {
		m.field.SetValue(m.pair.Text())
	}
}

// Part returns the focused half.
func (m *Model) Part() Part { return m.part }

// Capturing reports whether typed characters go to the numeric field.
func (m *Model) Capturing() bool { return m.focused && m.part == PartField }

// Update routes keys to the slider or the field. It reports true when the
// user asked to submit.
func (m *Model) Update(msg tea.Msg) (bool, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok || !m.focused || m.pair == nil {
		return false, nil
	}
	switch key.String() {
	case "enter":
		return true, nil
	case "up", "down":
		return false, m.switchPart()
	}
	if m.part == PartSlider {
		switch key.String() {
		case "left", "h":
			m.pair.Nudge(-0.1)
		case "right", "l":
			m.pair.Nudge(0.1)
		case "pgdown":
			m.pair.Nudge(-1)
		case "pgup":
			m.pair.Nudge(1)
		case "home":
			m.pair.SetSlider(rating.Min)
		case "end":
			m.pair.SetSlider(rating.Max)
		}
		return false, nil
	}

	before := m.field.Value()
	next, cmd := m.field.Update(key)
	m.field = next
	if m.field.Value() != before {
		m.typing = true
		m.pair.SetText(m.field.Value())
		m.typing = false
	}
	return false, cmd
}

func (m *Model) switchPart() tea.Cmd {
	if m.part == PartSlider {
		m.part = PartField
		return m.field.Focus()
	}
	m.part = PartSlider
	m.field.Blur()
	m.field.SetValue(m.pair.Text())
	return nil
}

// Slider returns the slider position.
func (m *Model) Slider() float64 { return m.slider }

// Field returns the numeric field text.
func (m *Model) Field() string { return m.field.Value() }

// Stars returns the last star row pushed by the pair.
func (m *Model) Stars() rating.Stars { return m.stars }

// View renders the slider, the field and the stars.
func (m *Model) View() string {
	label := m.theme.Field.Label
	if m.focused {
		label = m.theme.Field.FocusedLabel
	}
	slider := m.sliderView()
	field := "[" + m.field.View() + "]"
	if m.focused && m.part == PartSlider {
		slider = m.theme.Choice.Cursor.Render(slider)
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		label.Render("Rate this project"),
		slider+"  "+field+" /10",
		RenderStars(m.stars, m.theme.Stars),
	)
}

func (m *Model) sliderView() string {
	pos := int(math.Round(m.slider / rating.Max * float64(sliderWidth-1)))
	var b strings.Builder
	b.WriteString("0 ")
	for i := 0; i < sliderWidth; i++ {
		switch {
		case i == pos:
			b.WriteString("●")
		case i < pos:
			b.WriteString("━")
		default:
			b.WriteString("─")
		}
	}
	b.WriteString(" 10")
	return b.String()
}

// RenderStars draws the star row. The partial star is tinted between the
// empty and full colors by its fill fraction, since a terminal cell cannot
// be clipped.
func RenderStars(s rating.Stars, th theme.StarTheme) string {
	full, err := colorful.Hex(th.FullHex)
	if err != nil {
		full = colorful.Color{R: 1, G: 0.7, B: 0}
	}
	empty, err := colorful.Hex(th.EmptyHex)
	if err != nil {
		empty = colorful.Color{R: 0.3, G: 0.3, B: 0.3}
	}
	fullStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(full.Hex()))
	emptyStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(empty.Hex()))

	var b strings.Builder
	b.WriteString(fullStyle.Render(strings.Repeat(starGlyph, s.Full)))
	if s.HasPartial() {
		tint := empty.BlendLab(full, s.Partial).Clamped()
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(tint.Hex())).Render(starGlyph))
	}
	b.WriteString(emptyStyle.Render(strings.Repeat(starGlyph, s.Empty)))
	b.WriteString(th.Label.Render(s.Label()))
	return b.String()
}

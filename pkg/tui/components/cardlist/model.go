package cardlist

import (
	"fmt"
	"math"
	"strings"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/fundflow/pkg/catalog"
	"tableflip.dev/fundflow/pkg/filter"
	"tableflip.dev/fundflow/pkg/tui/events"
	"tableflip.dev/fundflow/pkg/tui/theme"
	"tableflip.dev/fundflow/pkg/tui/uiutil"
)

// NoResultsText is the placeholder shown when a query matches nothing.
const NoResultsText = "No projects found matching your criteria."

const (
	linesPerCard = 3
	barWidth     = 12
)

var _ filter.Surface = (*Model)(nil)

// Model lists the visible cards of a filter.Filter with a cursor.
type Model struct {
	id    events.ComponentID
	theme theme.Theme

	source       *filter.Filter
	shown        map[string]bool
	count        int
	placeholders int

	cursor  int
	offset  int
	focused bool
	width   int
	height  int
}

// New constructs an empty list. Attach binds it to a filter.
func New(id events.ComponentID, th theme.Theme) *Model {
	return &Model{id: id, theme: th, shown: map[string]bool{}}
}

// Attach sets the filter whose Visible cards are listed.
func (m *Model) Attach(f *filter.Filter) { m.source = f }

// SetVisible implements filter.Surface.
func (m *Model) SetVisible(cardID string, visible bool) { m.shown[cardID] = visible }

// SetCount implements filter.Surface.
func (m *Model) SetCount(n int) {
	m.count = n
	if m.cursor >= n {
		m.cursor = max(n-1, 0)
	}
}

// SetNoResults implements filter.Surface.
func (m *Model) SetNoResults(show bool) {
	if show {
		m.placeholders++
		return
	}
	if m.placeholders > 0 {
		m.placeholders--
	}
}

// Count returns the number of visible cards.
func (m *Model) Count() int { return m.count }

// Placeholders returns how many "no results" placeholders are on screen.
func (m *Model) Placeholders() int { return m.placeholders }

// SetSize sets the render area.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Focus gives the list the arrow keys.
func (m *Model) Focus() { m.focused = true }

// Blur releases the arrow keys.
func (m *Model) Blur() { m.focused = false }

// Focused reports whether the list holds the keyboard.
func (m *Model) Focused() bool { return m.focused }

// Selected returns the card under the cursor.
func (m *Model) Selected() (catalog.Card, bool) {
	cards := m.cards()
	if m.cursor < 0 || m.cursor >= len(cards) {
		return catalog.Card{}, false
	}
	return cards[m.cursor], true
}

// Update moves the cursor. It reports true when enter picked a card.
func (m *Model) Update(msg tea.Msg) (bool, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok || !m.focused {
		return false, nil
	}
	switch key.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.cards())-1 {
			m.cursor++
		}
	case "home", "g":
		m.cursor = 0
	case "end", "G":
		m.cursor = max(len(m.cards())-1, 0)
	case "enter":
		_, ok := m.Selected()
		return ok, nil
	}
	return false, nil
}

func (m *Model) cards() []catalog.Card {
	if m.source == nil {
		return nil
	}
	return m.source.Visible()
}

// View renders a window of cards around the cursor.
func (m *Model) View() string {
	cards := m.cards()
	if len(cards) == 0 {
		if m.placeholders > 0 {
			return m.theme.Card.NoResults.Render(NoResultsText)
		}
		return ""
	}
	window := len(cards)
	if m.height > 0 {
		window = max(m.height/linesPerCard, 1)
	}
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+window {
		m.offset = m.cursor - window + 1
	}
	end := min(m.offset+window, len(cards))

	blocks := make([]string, 0, end-m.offset)
	for i := m.offset; i < end; i++ {
		blocks = append(blocks, m.renderCard(cards[i], i == m.cursor))
	}
	return lipgloss.JoinVertical(lipgloss.Left, blocks...)
}

func (m *Model) renderCard(c catalog.Card, current bool) string {
	th := m.theme.Card
	marker := "  "
	title := th.Title.Render(c.Title)
	if current && m.focused {
		marker = m.theme.Choice.Cursor.Render("→ ")
		title = m.theme.Choice.Cursor.Bold(true).Render(c.Title)
	}
	status := c.EffectiveStatus()
	statusStyle, ok := th.Status[status]
	if !ok {
		statusStyle = th.Meta
	}
	head := fmt.Sprintf("%s%s  %s %s", marker, title, th.Meta.Render(c.Category+" ·"), statusStyle.Render(status))

	meta := fmt.Sprintf("   by %s · %s %s of %s · %d backers",
		c.Creator, m.bar(c.Funded()), uiutil.Money(c.Raised), uiutil.Money(c.Goal), c.Backers)
	if status == catalog.StatusActive && c.DaysLeft > 0 {
		meta += fmt.Sprintf(" · %d days left", c.DaysLeft)
	}

	tags := make([]string, 0, len(c.Tags))
	for _, t := range c.Tags {
		tags = append(tags, th.Tag.Render("#"+t))
	}
	return lipgloss.JoinVertical(lipgloss.Left, head, th.Meta.Render(meta), "   "+strings.Join(tags, " "))
}

func (m *Model) bar(pct float64) string {
	filled := int(math.Round(math.Min(pct, 100) / 100 * barWidth))
	return m.theme.Card.ProgressOn.Render(strings.Repeat("█", filled)) +
		m.theme.Card.ProgressOff.Render(strings.Repeat("░", barWidth-filled)) +
		fmt.Sprintf(" %.0f%%", pct)
}

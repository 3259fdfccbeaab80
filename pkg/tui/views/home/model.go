package home

import (
	"fmt"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/fundflow/pkg/catalog"
	"tableflip.dev/fundflow/pkg/forms"
	"tableflip.dev/fundflow/pkg/intent"
	"tableflip.dev/fundflow/pkg/tui/components/choices"
	"tableflip.dev/fundflow/pkg/tui/components/field"
	"tableflip.dev/fundflow/pkg/tui/events"
	"tableflip.dev/fundflow/pkg/tui/ui"
	"tableflip.dev/fundflow/pkg/tui/uiutil"
)

// ID identifies the page in events.
const ID events.ComponentID = "home"

// FeaturedCount is how many cards the landing page highlights.
const FeaturedCount = 3

const (
	slotSearch = iota
	slotCategories
	slotFeatured
	slotCount
)

var _ ui.Page = (*Model)(nil)

// Model is the landing page: search box, category tiles and featured cards.
type Model struct {
	env *uiutil.Env

	search     *field.Model
	categories *choices.Model
	cursor     int
	ring       *ui.FocusRing
	width      int
	height     int
}

// New builds the page.
func New(env *uiutil.Env) *Model {
	th := env.Theme
	m := &Model{env: env, ring: ui.NewFocusRing(slotCount)}
	m.search = field.New("search", "Search projects", th, field.WithPlaceholder("solar, garden, kids..."), field.WithWidth(40))
	m.categories = choices.New(ID+".categories", uiutil.Options(env.Catalog.Categories, false), th,
		choices.WithLayout(choices.Tiles), choices.WithLabel("Browse by category"))
	return m
}

// Featured returns the active cards closest to their goal.
func (m *Model) Featured() []catalog.Card {
	var out []catalog.Card
	for _, c := range m.env.Catalog.Cards {
		if c.EffectiveStatus() == catalog.StatusActive {
			out = append(out, c)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Funded() > out[j].Funded() })
	if len(out) > FeaturedCount {
		out = out[:FeaturedCount]
	}
	return out
}

// Title implements ui.Page.
func (m *Model) Title() string { return "Home" }

// Capturing implements ui.Page.
func (m *Model) Capturing() bool { return m.ring.Is(slotSearch) }

// Init implements ui.Component.
func (m *Model) Init() tea.Cmd { return nil }

// SetSize implements ui.Component.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Enter implements ui.Page.
func (m *Model) Enter(string) tea.Cmd { return m.focus() }

// Leave implements ui.Page.
func (m *Model) Leave() {
	m.search.Blur()
	m.categories.Blur()
}

// Update implements ui.Component.
func (m *Model) Update(msg tea.Msg) (ui.Component, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "tab":
		m.ring.Next()
		return m, m.focus()
	case "shift+tab":
		m.ring.Prev()
		return m, m.focus()
	}

	switch m.ring.Current() {
	case slotSearch:
		if key.String() == "enter" {
			return m, m.runSearch()
		}
		_, cmd := m.search.Update(key)
		return m, cmd
	case slotCategories:
		if key.String() == "enter" {
			if c := m.categories.Value(); c != "" {
				return m, events.NavigateCmd(ID, events.PageProjects, "category:"+c)
			}
			return m, nil
		}
		_, cmd := m.categories.Update(key)
		return m, cmd
	case slotFeatured:
		featured := m.Featured()
		switch key.String() {
		case "up", "k", "left", "h":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j", "right", "l":
			if m.cursor < len(featured)-1 {
				m.cursor++
			}
		case "enter":
			if m.cursor < len(featured) {
				return m, m.open(featured[m.cursor])
			}
		}
	}
	return m, nil
}

func (m *Model) runSearch() tea.Cmd {
	in, ok := forms.Search(m.search.Value())
	if !ok {
		return nil
	}
	cmd, err := m.env.Emit(ID, in)
	if err != nil {
		return cmd
	}
	m.search.SetValue("")
	return tea.Batch(cmd, events.NavigateCmd(ID, events.PageProjects, "search:"+in.Payload["term"]))
}

func (m *Model) open(card catalog.Card) tea.Cmd {
	cmd, err := m.env.Emit(ID, intent.New(intent.OpenProject, map[string]string{
		"project": card.ID,
		"title":   card.Title,
	}))
	if err != nil {
		return cmd
	}
	return tea.Batch(cmd, events.NavigateCmd(ID, events.PageProject, card.ID))
}

func (m *Model) focus() tea.Cmd {
	m.search.Blur()
	m.categories.Blur()
	switch m.ring.Current() {
	case slotSearch:
		return m.search.Focus()
	case slotCategories:
		if m.categories.Value() == "" && len(m.env.Catalog.Categories) > 0 {
			m.categories.Group().Select(m.env.Catalog.Categories[0])
		}
		return m.categories.Focus()
	}
	return nil
}

// View implements ui.Component.
func (m *Model) View() string {
	th := m.env.Theme
	lines := []string{
		th.Header.Brand.Render("Fund the ideas you believe in"),
		"",
		m.search.View(),
		"",
		m.categories.View(),
		"",
		th.Field.Section.Render("Featured projects"),
	}
	for i, c := range m.Featured() {
		marker := "  "
		if m.ring.Is(slotFeatured) && i == m.cursor {
			marker = th.Choice.Cursor.Render("→ ")
		}
		lines = append(lines, fmt.Sprintf("%s%s  %s  %s",
			marker,
			th.Card.Title.Render(c.Title),
			th.Card.Meta.Render(fmt.Sprintf("%.0f%% funded", c.Funded())),
			th.Card.Meta.Render(fmt.Sprintf("%d days left", c.DaysLeft)),
		))
	}
	return lipgloss.NewStyle().MaxWidth(max(m.width, 40)).Render(strings.Join(lines, "\n"))
}

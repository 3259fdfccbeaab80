package projects

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/fundflow/pkg/catalog"
	"tableflip.dev/fundflow/pkg/filter"
	"tableflip.dev/fundflow/pkg/intent"
	"tableflip.dev/fundflow/pkg/selection"
	"tableflip.dev/fundflow/pkg/tui/components/cardlist"
	"tableflip.dev/fundflow/pkg/tui/components/choices"
	"tableflip.dev/fundflow/pkg/tui/components/field"
	"tableflip.dev/fundflow/pkg/tui/events"
	"tableflip.dev/fundflow/pkg/tui/ui"
	"tableflip.dev/fundflow/pkg/tui/uiutil"
)

// ID identifies the page in events.
const ID events.ComponentID = "projects"

const (
	slotSearch = iota
	slotCategory
	slotStatus
	slotSort
	slotTags
	slotList
	slotCount
)

var _ ui.Page = (*Model)(nil)

// Model is the browse page: a search box, category, status and sort
// pickers, the tag shortcut bar and the card list.
type Model struct {
	env *uiutil.Env

	search   *field.Model
	category *choices.Model
	status   *choices.Model
	sort     *choices.Model
	tags     *choices.Model
	list     *cardlist.Model
	filter   *filter.Filter

	ring   *ui.FocusRing
	width  int
	height int
}

// New builds the page over the catalog in env.
func New(env *uiutil.Env) *Model {
	th := env.Theme
	m := &Model{env: env, ring: ui.NewFocusRing(slotCount)}
	m.search = field.New("search", "Search projects", th, field.WithPlaceholder("title or tag"))
	m.category = choices.New(ID+".category", uiutil.Options(env.Catalog.Categories, true), th, choices.WithLabel("Category"))
	m.status = choices.New(ID+".status", uiutil.Options([]string{catalog.StatusActive, catalog.StatusCompleted, catalog.StatusCancelled}, true), th, choices.WithLabel("Status"))
	m.sort = choices.New(ID+".sort", sortOptions(), th, choices.WithLabel("Sort"))
	m.tags = choices.New(ID+".tags", uiutil.Options(env.Catalog.Tags(), true), th, choices.WithLabel("Tags"))
	m.list = cardlist.New(ID+".cards", th)
	m.filter = filter.New(env.Catalog.Cards, filter.WithSurface(m.list))
	m.list.Attach(m.filter)

	m.category.Group().Select(filter.All)
	m.status.Group().Select(filter.All)
	m.sort.Group().Select(string(filter.Newest))
	m.tags.Group().Select(filter.All)
	return m
}

func sortOptions() []selection.Option {
	labels := map[filter.Order]string{
		filter.Newest:  "Newest",
		filter.Popular: "Most Popular",
		filter.Funded:  "Most Funded",
		filter.Ending:  "Ending Soon",
	}
	out := make([]selection.Option, 0, len(filter.Orders))
	for _, o := range filter.Orders {
		out = append(out, selection.Option{ID: string(o), Label: labels[o]})
	}
	return out
}

// Filter exposes the list filter.
func (m *Model) Filter() *filter.Filter { return m.filter }

// List exposes the card list.
func (m *Model) List() *cardlist.Model { return m.list }

// Title implements ui.Page.
func (m *Model) Title() string { return "Projects" }

// Capturing implements ui.Page.
func (m *Model) Capturing() bool { return m.ring.Is(slotSearch) }

// Init implements ui.Component.
func (m *Model) Init() tea.Cmd { return nil }

// SetSize implements ui.Component.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.list.SetSize(width, max(height-11, 3))
}

// Enter implements ui.Page. Subject may preset the filter with
// "category:<name>" or "search:<term>".
func (m *Model) Enter(subject string) tea.Cmd {
	if kind, value, ok := strings.Cut(subject, ":"); ok {
		switch kind {
		case "category":
			m.category.Group().Select(value)
			m.apply()
			m.ring.Set(slotList)
		case "search":
			m.search.SetValue(value)
			m.apply()
			m.ring.Set(slotList)
		}
	}
	return m.focus()
}

// Leave implements ui.Page.
func (m *Model) Leave() { m.blurAll() }

func (m *Model) apply() {
	m.filter.Apply(filter.Query{
		Search:   m.search.Value(),
		Category: m.category.Value(),
		Status:   m.status.Value(),
		Sort:     filter.ParseOrder(m.sort.Value()),
	})
	m.tags.Group().Select(filter.All)
}

// Update implements ui.Component.
func (m *Model) Update(msg tea.Msg) (ui.Component, tea.Cmd) {
	switch msg := msg.(type) {
	case events.CardChangeMsg:
		m.filter.Update(msg.Card)
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "tab":
			m.ring.Next()
			return m, m.focus()
		case "shift+tab":
			m.ring.Prev()
			return m, m.focus()
		}
		return m, m.route(msg)
	}
	return m, nil
}

func (m *Model) route(msg tea.KeyMsg) tea.Cmd {
	switch m.ring.Current() {
	case slotSearch:
		if msg.String() == "enter" {
			m.ring.Set(slotList)
			return m.focus()
		}
		changed, cmd := m.search.Update(msg)
		if changed {
			m.apply()
		}
		return cmd
	case slotCategory:
		return m.onChoice(m.category, msg, m.apply)
	case slotStatus:
		return m.onChoice(m.status, msg, m.apply)
	case slotSort:
		return m.onChoice(m.sort, msg, func() {
			m.filter.SetSort(filter.ParseOrder(m.sort.Value()))
		})
	case slotTags:
		return m.onChoice(m.tags, msg, func() {
			m.filter.ApplyTag(m.tags.Value())
		})
	case slotList:
		picked, cmd := m.list.Update(msg)
		if picked {
			return tea.Batch(cmd, m.open())
		}
		return cmd
	}
	return nil
}

func (m *Model) onChoice(c *choices.Model, msg tea.KeyMsg, changed func()) tea.Cmd {
	ok, cmd := c.Update(msg)
	if ok {
		changed()
	}
	return cmd
}

func (m *Model) open() tea.Cmd {
	card, ok := m.list.Selected()
	if !ok {
		return nil
	}
	sent, err := m.env.Emit(ID, intent.New(intent.OpenProject, map[string]string{
		"project": card.ID,
		"title":   card.Title,
	}))
	if err != nil {
		return sent
	}
	return tea.Batch(sent, events.NavigateCmd(ID, events.PageProject, card.ID))
}

func (m *Model) focus() tea.Cmd {
	m.blurAll()
	switch m.ring.Current() {
	case slotSearch:
		return m.search.Focus()
	case slotCategory:
		return m.category.Focus()
	case slotStatus:
		return m.status.Focus()
	case slotSort:
		return m.sort.Focus()
	case slotTags:
		return m.tags.Focus()
	case slotList:
		m.list.Focus()
	}
	return nil
}

func (m *Model) blurAll() {
	m.search.Blur()
	m.category.Blur()
	m.status.Blur()
	m.sort.Blur()
	m.tags.Blur()
	m.list.Blur()
}

// View implements ui.Component.
func (m *Model) View() string {
	th := m.env.Theme
	summary := fmt.Sprintf("Showing %d of %d projects", m.filter.Count(), m.filter.Total())
	if tag := m.filter.ActiveTag(); tag != "" {
		summary += fmt.Sprintf(" tagged %q", tag)
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		m.search.View(),
		m.category.View(),
		lipgloss.JoinHorizontal(lipgloss.Top, m.status.View(), "   ", m.sort.View()),
		m.tags.View(),
		"",
		th.Footer.Status.Render(summary),
		m.list.View(),
	)
}

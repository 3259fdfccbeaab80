package admin

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/fundflow/pkg/catalog"
	"tableflip.dev/fundflow/pkg/filter"
	"tableflip.dev/fundflow/pkg/intent"
	"tableflip.dev/fundflow/pkg/modal"
	"tableflip.dev/fundflow/pkg/selection"
	"tableflip.dev/fundflow/pkg/tui/components/cardlist"
	"tableflip.dev/fundflow/pkg/tui/components/choices"
	"tableflip.dev/fundflow/pkg/tui/components/dialog"
	"tableflip.dev/fundflow/pkg/tui/events"
	"tableflip.dev/fundflow/pkg/tui/ui"
	"tableflip.dev/fundflow/pkg/tui/uiutil"
)

// ID identifies the page in events.
const ID events.ComponentID = "admin"

// Tabs.
const (
	TabDashboard  = "dashboard"
	TabUsers      = "users"
	TabProjects   = "projects"
	TabCategories = "categories"
)

// User is a row of the users table.
type User struct {
	Name  string
	Email string
	Role  string
}

var sampleUsers = []User{
	{Name: "Green Energy Co.", Email: "hello@greenenergy.example", Role: "creator"},
	{Name: "Lina Haddad", Email: "lina@example.com", Role: "creator"},
	{Name: "Sam Ortiz", Email: "sam@example.com", Role: "backer"},
	{Name: "Admin", Email: "admin@fundflow.example", Role: "admin"},
}

var _ ui.Page = (*Model)(nil)

// Model is the admin console: top-level tabs, status tabs over the project
// list, the add-category dialog and the logout confirmation.
type Model struct {
	env *uiutil.Env

	tabs     *choices.Model
	statuses *choices.Model
	filter   *filter.Filter
	list     *cardlist.Model
	inTab    bool

	addCategory *dialog.Model
	logout      *dialog.Model
	modals      *modal.Set
	pending     []tea.Cmd

	width  int
	height int
}

// New builds the page.
func New(env *uiutil.Env) *Model {
	th := env.Theme
	m := &Model{env: env}
	m.tabs = choices.New(ID+".tabs", []selection.Option{
		{ID: TabDashboard, Label: "Dashboard"},
		{ID: TabUsers, Label: "Users"},
		{ID: TabProjects, Label: "Projects"},
		{ID: TabCategories, Label: "Categories"},
	}, th)
	m.tabs.Group().Select(TabDashboard)

	m.statuses = choices.New(ID+".status", uiutil.Options([]string{
		catalog.StatusActive, catalog.StatusCompleted, catalog.StatusCancelled,
	}, true), th)
	m.statuses.Group().Select("all")

	m.list = cardlist.New(ID+".list", th)
	m.filter = filter.New(env.Catalog.Cards, filter.WithSurface(m.list))
	m.list.Attach(m.filter)
	m.filter.Apply(filter.Query{})

	addCtl := modal.New("add-category",
		modal.WithTitle("Add Category"),
		modal.WithFields(
			modal.Field{Name: "name", Label: "Name"},
			modal.Field{Name: "description", Label: "Description"},
		),
		modal.WithPolicy(modal.AddCategoryPolicy),
		modal.WithNotifier(env.Notifier),
		modal.WithEffect(m.saveCategory),
	)
	logoutCtl := modal.New("logout",
		modal.WithTitle("Log out"),
		modal.WithPolicy(modal.None),
		modal.WithNotifier(env.Notifier),
		modal.WithEffect(m.signOut),
	)
	m.addCategory = dialog.New(addCtl, th, "")
	m.logout = dialog.New(logoutCtl, th, "Are you sure you want to log out?")
	m.modals = modal.NewSet(addCtl, logoutCtl)
	return m
}

func (m *Model) saveCategory(_ context.Context, req modal.Request) error {
	name := strings.TrimSpace(req.Values.Get("name"))
	for _, existing := range m.env.Catalog.Categories {
		if strings.EqualFold(existing, name) {
			return fmt.Errorf("category %q already exists", name)
		}
	}
	cmd, err := m.env.Emit(ID, intent.New(intent.AddCategory, map[string]string{
		"name":        name,
		"description": strings.TrimSpace(req.Values.Get("description")),
	}))
	m.pending = append(m.pending, cmd)
	if err != nil {
		return err
	}
	m.env.Catalog.AddCategory(name)
	return nil
}

func (m *Model) signOut(_ context.Context, _ modal.Request) error {
	cmd, err := m.env.Emit(ID, intent.New(intent.Logout, nil))
	m.pending = append(m.pending, cmd)
	if err != nil {
		return err
	}
	m.pending = append(m.pending, events.NavigateCmd(ID, events.PageAuth, ""))
	return nil
}

// Filter exposes the project filter.
func (m *Model) Filter() *filter.Filter { return m.filter }

// Title implements ui.Page.
func (m *Model) Title() string { return "Admin" }

// Capturing implements ui.Page.
func (m *Model) Capturing() bool { return m.addCategory.Capturing() || m.logout.Capturing() }

// Init implements ui.Component.
func (m *Model) Init() tea.Cmd { return nil }

// SetSize implements ui.Component.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.list.SetSize(width, max(height-6, 3))
}

// Enter implements ui.Page. Subject may name a tab.
func (m *Model) Enter(subject string) tea.Cmd {
	if subject != "" {
		m.tabs.Group().Select(subject)
	}
	m.inTab = false
	m.statuses.Blur()
	m.list.Blur()
	return m.tabs.Focus()
}

// Leave implements ui.Page.
func (m *Model) Leave() {
	m.addCategory.Controller().Cancel()
	m.logout.Controller().Cancel()
}

// Update implements ui.Component.
func (m *Model) Update(msg tea.Msg) (ui.Component, tea.Cmd) {
	for _, d := range []*dialog.Model{m.addCategory, m.logout} {
		if !d.IsOpen() {
			continue
		}
		switch msg.(type) {
		case tea.KeyMsg, events.ClickMsg:
			_, cmd := d.Update(m.env.Context(), msg)
			return m, m.flush(cmd)
		}
	}
	switch msg := msg.(type) {
	case events.CardChangeMsg:
		m.filter.Update(msg.Card)
	case tea.KeyMsg:
		return m, m.onKey(msg)
	}
	return m, nil
}

func (m *Model) flush(cmd tea.Cmd) tea.Cmd {
	cmds := append(m.pending, cmd)
	m.pending = nil
	return tea.Batch(cmds...)
}

func (m *Model) onKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "L":
		return m.logout.Open(modal.Subject{})
	case "tab", "shift+tab":
		m.inTab = !m.inTab
		if m.inTab {
			m.tabs.Blur()
			if m.tabs.Value() == TabProjects {
				return m.statuses.Focus()
			}
			return nil
		}
		m.statuses.Blur()
		m.list.Blur()
		return m.tabs.Focus()
	}
	if !m.inTab {
		if msg.String() == "enter" {
			m.inTab = true
			m.tabs.Blur()
			if m.tabs.Value() == TabProjects {
				return m.statuses.Focus()
			}
			return nil
		}
		m.tabs.Update(msg)
		return nil
	}

	switch m.tabs.Value() {
	case TabProjects:
		return m.projectsKey(msg)
	case TabCategories:
		if msg.String() == "a" || msg.String() == "enter" {
			return m.addCategory.Open(modal.Subject{})
		}
	}
	return nil
}

func (m *Model) projectsKey(msg tea.KeyMsg) tea.Cmd {
	if m.list.Focused() {
		if msg.String() == "esc" {
			m.list.Blur()
			return m.statuses.Focus()
		}
		picked, cmd := m.list.Update(msg)
		if !picked {
			return cmd
		}
		card, _ := m.list.Selected()
		return tea.Batch(cmd, events.NavigateCmd(ID, events.PageProject, card.ID))
	}
	if msg.String() == "enter" {
		m.statuses.Blur()
		m.list.Focus()
		return nil
	}
	if changed, cmd := m.statuses.Update(msg); changed {
		m.filter.Apply(filter.Query{Status: m.statuses.Value()})
		return cmd
	}
	return nil
}

// View implements ui.Component.
func (m *Model) View() string {
	th := m.env.Theme
	var body string
	switch m.tabs.Value() {
	case TabUsers:
		body = m.usersView()
	case TabProjects:
		body = lipgloss.JoinVertical(lipgloss.Left,
			m.statuses.View(),
			th.Card.Meta.Render(fmt.Sprintf("%d projects", m.filter.Count())),
			m.list.View(),
		)
	case TabCategories:
		body = m.categoriesView()
	default:
		body = m.dashboardView()
	}
	view := lipgloss.JoinVertical(lipgloss.Left,
		m.tabs.View(),
		"",
		body,
		"",
		th.Footer.Help.Render("L log out"),
	)
	width, height := m.width, m.height
	if width <= 0 {
		width = 80
	}
	if height <= 0 {
		height = lipgloss.Height(view)
	}
	view = m.addCategory.Render(view, width, height)
	return m.logout.Render(view, width, height)
}

func (m *Model) dashboardView() string {
	th := m.env.Theme
	counts := map[string]int{}
	var raised float64
	for _, c := range m.env.Catalog.Cards {
		counts[c.EffectiveStatus()]++
		raised += c.Raised
	}
	rows := []string{
		fmt.Sprintf("%s %d", th.Field.Label.Render("Users:          "), len(sampleUsers)),
		fmt.Sprintf("%s %d", th.Field.Label.Render("Projects:       "), len(m.env.Catalog.Cards)),
		fmt.Sprintf("%s %s", th.Field.Label.Render("Total raised:   "), uiutil.Money(raised)),
	}
	for _, s := range []string{catalog.StatusActive, catalog.StatusCompleted, catalog.StatusCancelled} {
		style, ok := th.Card.Status[s]
		if !ok {
			style = th.Card.Meta
		}
		rows = append(rows, fmt.Sprintf("  %s %d", style.Render(uiutil.Label(s)+":"), counts[s]))
	}
	return strings.Join(rows, "\n")
}

func (m *Model) usersView() string {
	th := m.env.Theme
	rows := make([]string, 0, len(sampleUsers))
	for _, u := range sampleUsers {
		rows = append(rows, fmt.Sprintf("%-20s %-28s %s",
			th.Card.Title.Render(u.Name), th.Card.Meta.Render(u.Email), th.Card.Tag.Render(u.Role)))
	}
	return strings.Join(rows, "\n")
}

func (m *Model) categoriesView() string {
	th := m.env.Theme
	rows := make([]string, 0, len(m.env.Catalog.Categories)+2)
	for _, c := range m.env.Catalog.Categories {
		rows = append(rows, "• "+uiutil.Label(c))
	}
	rows = append(rows, "", th.Footer.Help.Render("a add category"))
	return strings.Join(rows, "\n")
}

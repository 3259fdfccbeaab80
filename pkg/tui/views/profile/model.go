package profile

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/fundflow/pkg/catalog"
	"tableflip.dev/fundflow/pkg/intent"
	"tableflip.dev/fundflow/pkg/modal"
	"tableflip.dev/fundflow/pkg/notify"
	"tableflip.dev/fundflow/pkg/selection"
	"tableflip.dev/fundflow/pkg/tui/components/choices"
	"tableflip.dev/fundflow/pkg/tui/components/dialog"
	"tableflip.dev/fundflow/pkg/tui/events"
	"tableflip.dev/fundflow/pkg/tui/ui"
	"tableflip.dev/fundflow/pkg/tui/uiutil"
)

// ID identifies the page in events.
const ID events.ComponentID = "profile"

// Tabs.
const (
	TabOverview = "overview"
	TabProjects = "projects"
	TabSettings = "settings"
)

var _ ui.Page = (*Model)(nil)

// Model is the user profile with its tabs, the cancel-project dialog and the
// delete-account dialog.
type Model struct {
	env *uiutil.Env

	tabs    *choices.Model
	cursor  int
	inTab   bool
	cancel  *dialog.Model
	remove  *dialog.Model
	modals  *modal.Set
	pending []tea.Cmd
	width   int
	height  int
}

// New builds the page.
func New(env *uiutil.Env) *Model {
	th := env.Theme
	m := &Model{env: env}
	m.tabs = choices.New(ID+".tabs", []selection.Option{
		{ID: TabOverview, Label: "Overview"},
		{ID: TabProjects, Label: "My Projects"},
		{ID: TabSettings, Label: "Settings"},
	}, th)
	m.tabs.Group().Select(TabOverview)

	cancelCtl := modal.New("cancel-project",
		modal.WithTitle("Cancel Project"),
		modal.WithFields(modal.Field{Name: "reason", Label: "Reason for cancellation", Placeholder: "Tell your backers why"}),
		modal.WithPolicy(modal.CancelProjectPolicy),
		modal.WithNotifier(env.Notifier),
		modal.WithEffect(m.cancelProject),
	)
	deleteCtl := modal.New("delete-account",
		modal.WithTitle("Delete Account"),
		modal.WithFields(modal.Field{Name: "password", Label: "Password", Secret: true}),
		modal.WithPolicy(modal.DeleteAccountPolicy),
		modal.WithNotifier(env.Notifier),
		modal.WithEffect(m.deleteAccount),
	)
	m.cancel = dialog.New(cancelCtl, th, "Backers will be refunded. This cannot be undone.")
	m.remove = dialog.New(deleteCtl, th, "Your account and all of its projects will be removed.")
	m.modals = modal.NewSet(cancelCtl, deleteCtl)
	return m
}

func (m *Model) cancelProject(_ context.Context, req modal.Request) error {
	cmd, err := m.env.Emit(ID, intent.New(intent.CancelProject, map[string]string{
		"project": req.Subject.ID,
		"reason":  req.Values.Get("reason"),
	}))
	m.pending = append(m.pending, cmd)
	if err != nil {
		return err
	}
	card, ok := m.env.Catalog.Find(req.Subject.ID)
	if !ok {
		return nil
	}
	updated := *card
	updated.Status = catalog.StatusCancelled
	m.env.Catalog.Replace(updated)
	m.pending = append(m.pending, events.CardChangeCmd(ID, updated))
	return nil
}

func (m *Model) deleteAccount(_ context.Context, _ modal.Request) error {
	cmd, err := m.env.Emit(ID, intent.New(intent.DeleteAccount, map[string]string{"user": m.env.Profile}))
	m.pending = append(m.pending, cmd)
	if err != nil {
		return err
	}
	m.pending = append(m.pending, events.NavigateCmd(ID, events.PageAuth, ""))
	return nil
}

// Projects lists the profile's own cards.
func (m *Model) Projects() []catalog.Card { return m.env.Catalog.ByCreator(m.env.Profile) }

// Title implements ui.Page.
func (m *Model) Title() string { return "Profile" }

// Capturing implements ui.Page.
func (m *Model) Capturing() bool { return m.cancel.Capturing() || m.remove.Capturing() }

// Init implements ui.Component.
func (m *Model) Init() tea.Cmd { return nil }

// SetSize implements ui.Component.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Enter implements ui.Page. Subject may name a tab.
func (m *Model) Enter(subject string) tea.Cmd {
	if subject != "" {
		m.tabs.Group().Select(subject)
	}
	m.inTab = false
	return m.tabs.Focus()
}

// Leave implements ui.Page.
func (m *Model) Leave() {
	m.cancel.Controller().Cancel()
	m.remove.Controller().Cancel()
	m.tabs.Blur()
}

// Update implements ui.Component.
func (m *Model) Update(msg tea.Msg) (ui.Component, tea.Cmd) {
	if open := m.openDialog(); open != nil {
		switch msg.(type) {
		case tea.KeyMsg, events.ClickMsg:
			_, cmd := open.Update(m.env.Context(), msg)
			return m, m.flush(cmd)
		}
	}
	switch msg := msg.(type) {
	case events.ClickMsg:
		m.modals.ClickAt(msg.X, msg.Y)
	case tea.KeyMsg:
		return m, m.onKey(msg)
	}
	return m, nil
}

func (m *Model) openDialog() *dialog.Model {
	switch {
	case m.cancel.IsOpen():
		return m.cancel
	case m.remove.IsOpen():
		return m.remove
	}
	return nil
}

func (m *Model) flush(cmd tea.Cmd) tea.Cmd {
	cmds := append(m.pending, cmd)
	m.pending = nil
	return tea.Batch(cmds...)
}

func (m *Model) onKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "tab", "shift+tab":
		m.inTab = !m.inTab
		if m.inTab {
			m.tabs.Blur()
			return nil
		}
		return m.tabs.Focus()
	}
	if !m.inTab {
		if msg.String() == "enter" {
			m.inTab = true
			m.tabs.Blur()
			return nil
		}
		if changed, _ := m.tabs.Update(msg); changed {
			m.cursor = 0
		}
		return nil
	}

	switch m.tabs.Value() {
	case TabProjects:
		projects := m.Projects()
		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(projects)-1 {
				m.cursor++
			}
		case "enter", "x":
			if m.cursor >= len(projects) {
				return nil
			}
			card := projects[m.cursor]
			if card.EffectiveStatus() != catalog.StatusActive {
				m.env.Notify(notify.Info, "Only active projects can be cancelled")
				return nil
			}
			return m.cancel.Open(modal.Subject{ID: card.ID, Title: card.Title})
		}
	case TabSettings:
		if msg.String() == "enter" {
			return m.remove.Open(modal.Subject{})
		}
	}
	return nil
}

// View implements ui.Component.
func (m *Model) View() string {
	th := m.env.Theme
	name := m.env.Profile
	if name == "" {
		name = "Guest"
	}
	header := lipgloss.JoinVertical(lipgloss.Left,
		th.Field.Section.Render(name),
		m.tabs.View(),
		"",
	)

	var body string
	switch m.tabs.Value() {
	case TabProjects:
		body = m.projectsView()
	case TabSettings:
		button := th.Choice.Option.Render("Delete Account")
		if m.inTab {
			button = th.Choice.Selected.Render("Delete Account")
		}
		body = lipgloss.JoinVertical(lipgloss.Left,
			th.Field.Label.Render("Danger zone"),
			button,
		)
	default:
		body = m.overviewView()
	}

	view := lipgloss.JoinVertical(lipgloss.Left, header, body)
	width, height := m.width, m.height
	if width <= 0 {
		width = 80
	}
	if height <= 0 {
		height = lipgloss.Height(view)
	}
	view = m.cancel.Render(view, width, height)
	return m.remove.Render(view, width, height)
}

func (m *Model) overviewView() string {
	th := m.env.Theme
	projects := m.Projects()
	var raised float64
	backers, active := 0, 0
	for _, c := range projects {
		raised += c.Raised
		backers += c.Backers
		if c.EffectiveStatus() == catalog.StatusActive {
			active++
		}
	}
	return strings.Join([]string{
		fmt.Sprintf("%s %d (%d active)", th.Field.Label.Render("Projects:"), len(projects), active),
		fmt.Sprintf("%s %s", th.Field.Label.Render("Raised:  "), uiutil.Money(raised)),
		fmt.Sprintf("%s %d", th.Field.Label.Render("Backers: "), backers),
	}, "\n")
}

func (m *Model) projectsView() string {
	th := m.env.Theme
	projects := m.Projects()
	if len(projects) == 0 {
		return th.Card.NoResults.Render("You have not created any projects yet.")
	}
	lines := make([]string, 0, len(projects)+1)
	for i, c := range projects {
		marker := "  "
		if m.inTab && i == m.cursor {
			marker = th.Choice.Cursor.Render("→ ")
		}
		status := c.EffectiveStatus()
		style, ok := th.Card.Status[status]
		if !ok {
			style = th.Card.Meta
		}
		lines = append(lines, fmt.Sprintf("%s%s  %s  %s of %s",
			marker, th.Card.Title.Render(c.Title), style.Render(status), uiutil.Money(c.Raised), uiutil.Money(c.Goal)))
	}
	lines = append(lines, "", th.Footer.Help.Render("enter cancel project"))
	return strings.Join(lines, "\n")
}

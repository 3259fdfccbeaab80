// Package app hosts the FundFlow pages in one Bubble Tea program: a header
// with page tabs, the active page, a notice line and optional overlays.
package app

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/sirupsen/logrus"

	"tableflip.dev/fundflow/pkg/catalog"
	"tableflip.dev/fundflow/pkg/intent"
	"tableflip.dev/fundflow/pkg/logging"
	"tableflip.dev/fundflow/pkg/rating"
	"tableflip.dev/fundflow/pkg/store"
	"tableflip.dev/fundflow/pkg/tui/components/eventviewer"
	"tableflip.dev/fundflow/pkg/tui/components/flash"
	"tableflip.dev/fundflow/pkg/tui/components/help"
	"tableflip.dev/fundflow/pkg/tui/components/overlaypane"
	"tableflip.dev/fundflow/pkg/tui/events"
	"tableflip.dev/fundflow/pkg/tui/theme"
	"tableflip.dev/fundflow/pkg/tui/ui"
	"tableflip.dev/fundflow/pkg/tui/uiutil"
	"tableflip.dev/fundflow/pkg/tui/views/admin"
	"tableflip.dev/fundflow/pkg/tui/views/auth"
	"tableflip.dev/fundflow/pkg/tui/views/create"
	"tableflip.dev/fundflow/pkg/tui/views/home"
	"tableflip.dev/fundflow/pkg/tui/views/profile"
	"tableflip.dev/fundflow/pkg/tui/views/project"
	"tableflip.dev/fundflow/pkg/tui/views/projects"
)

// DefaultProfile is the demo user whose projects the profile page lists.
const DefaultProfile = "Green Energy Co."

const (
	headerRows = 2
	footerRows = 2
	logRows    = 8
)

// tabs are the pages reachable from the header; the project page is only
// reached by opening a card.
var tabs = []events.PageID{
	events.PageHome,
	events.PageProjects,
	events.PageCreate,
	events.PageProfile,
	events.PageAdmin,
	events.PageAuth,
}

// Options configures a program run.
type Options struct {
	Catalog *catalog.Catalog
	// Store keeps the rating and the intent outbox. Nil keeps both in memory.
	Store store.Persistence
	// Backend receives intents; defaults to the logging local backend.
	Backend intent.Sink
	Log     *logrus.Logger
	Profile string
	Start   events.PageID
	Now     func() time.Time
}

// Model is the root tea.Model.
type Model struct {
	env   *uiutil.Env
	pages map[events.PageID]ui.Page
	page  events.PageID

	flash  *flash.Model
	pane   *overlaypane.Model
	events *eventviewer.Model
	debug  bool

	updates <-chan store.Event

	width  int
	height int
}

// New wires the pages to a shared environment.
func New(ctx context.Context, opts Options) *Model {
	if ctx == nil {
		ctx = context.Background()
	}
	log := opts.Log
	if log == nil {
		log = logging.Discard()
	}
	cat := opts.Catalog
	if cat == nil {
		cat = catalog.Sample()
	}
	backend := opts.Backend
	if backend == nil {
		backend = intent.NewLocal(log)
	}
	profileName := opts.Profile
	if profileName == "" {
		profileName = DefaultProfile
	}
	th := theme.Default()

	m := &Model{
		flash:  flash.New("flash", th),
		pane:   overlaypane.New(0, 0),
		events: eventviewer.NewModel(200),
	}
	var ratings rating.Store = &memoryRatings{}
	var outbox Outbox
	if opts.Store != nil {
		ratings = opts.Store
		outbox = opts.Store
	}
	m.env = &uiutil.Env{
		Ctx:      ctx,
		Theme:    th,
		Catalog:  cat,
		Notifier: m.flash,
		Ratings:  ratings,
		Log:      log,
		Profile:  profileName,
		Now:      opts.Now,
	}
	m.env.Sink = &dispatcher{backend: backend, outbox: outbox, notifier: m.flash, log: log}

	m.pages = map[events.PageID]ui.Page{
		events.PageHome:     home.New(m.env),
		events.PageProjects: projects.New(m.env),
		events.PageProject:  project.New(m.env),
		events.PageCreate:   create.New(m.env),
		events.PageProfile:  profile.New(m.env),
		events.PageAdmin:    admin.New(m.env),
		events.PageAuth:     auth.New(m.env),
	}
	m.page = opts.Start
	if _, ok := m.pages[m.page]; !ok {
		m.page = events.PageHome
	}
	return m
}

// Run launches the program and blocks until it exits.
func Run(ctx context.Context, opts Options) error {
	m := New(ctx, opts)
	if opts.Store != nil {
		ch, err := opts.Store.Watch(ctx)
		if err != nil {
			m.env.Logger().WithError(err).Warn("store watch disabled")
		} else {
			m.updates = ch
		}
	}
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}

// Env exposes the shared page environment.
func (m *Model) Env() *uiutil.Env { return m.env }

// Page returns the active page id.
func (m *Model) Page() events.PageID { return m.page }

// Current returns the active page.
func (m *Model) Current() ui.Page { return m.pages[m.page] }

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.Current().Enter(""), m.waitForStore())
}

func (m *Model) waitForStore() tea.Cmd {
	ch := m.updates
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		for ev := range ch {
			if ev.Type == store.EventRatingChanged {
				return events.RatingChangedMsg{}
			}
		}
		return nil
	}
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if entry, ok := eventviewer.EntryFor(msg); ok {
		m.events.Append(entry)
	}
	m.flash.Update(msg)

	var cmds []tea.Cmd
	switch v := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = v.Width, v.Height
		m.layout()
	case tea.KeyMsg:
		cmds = append(cmds, m.onKey(v))
	case tea.MouseClickMsg:
		if !m.pane.HasOverlay() {
			mouse := v.Mouse()
			cmds = append(cmds, m.forward(events.ClickMsg{X: mouse.X, Y: mouse.Y - headerRows}))
		}
	case events.NavigateMsg:
		cmds = append(cmds, m.navigate(v.Page, v.Subject))
	case events.CardChangeMsg:
		for _, p := range m.pages {
			if _, cmd := p.Update(v); cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
	case events.IntentMsg:
		m.logIntent(v)
	case events.RatingChangedMsg:
		cmds = append(cmds, m.forward(v), m.waitForStore())
	default:
		cmds = append(cmds, m.forward(msg))
	}
	cmds = append(cmds, m.flash.Arm())
	return m, tea.Batch(cmds...)
}

func (m *Model) onKey(key tea.KeyMsg) tea.Cmd {
	switch key.String() {
	case "ctrl+c":
		return tea.Quit
	case "ctrl+d":
		m.debug = !m.debug
		m.layout()
		return nil
	}
	if m.pane.HasOverlay() {
		return m.pane.Update(key)
	}
	switch key.String() {
	case "ctrl+n":
		return m.cycle(1)
	case "ctrl+p":
		return m.cycle(-1)
	}
	if !m.Current().Capturing() {
		switch s := key.String(); s {
		case "q":
			return tea.Quit
		case "?":
			return m.openHelp()
		case "1", "2", "3", "4", "5", "6":
			return m.navigate(tabs[int(s[0]-'1')], "")
		}
	}
	return m.forward(key)
}

func (m *Model) forward(msg tea.Msg) tea.Cmd {
	_, cmd := m.Current().Update(msg)
	return cmd
}

func (m *Model) cycle(delta int) tea.Cmd {
	idx := 0
	for i, id := range tabs {
		if id == m.page {
			idx = i
		}
	}
	idx = (idx + delta + len(tabs)) % len(tabs)
	return m.navigate(tabs[idx], "")
}

func (m *Model) navigate(page events.PageID, subject string) tea.Cmd {
	next, ok := m.pages[page]
	if !ok {
		return nil
	}
	m.Current().Leave()
	m.page = page
	m.layout()
	m.env.Logger().WithFields(logrus.Fields{"page": page, "subject": subject}).Debug("navigate")
	return next.Enter(subject)
}

func (m *Model) openHelp() tea.Cmd {
	w := int(math.Round(float64(m.width) * 0.8))
	h := int(math.Round(float64(m.height) * 0.8))
	overlay := help.New(m.page, m.env.Theme, max(w, 20), max(h, 5))
	return m.pane.SetOverlay(overlay, ui.OverlayPlacement{
		Width:      max(w, 20),
		Height:     max(h, 5),
		Horizontal: lipgloss.Center,
		Vertical:   lipgloss.Center,
	})
}

// HelpVisible reports whether the help overlay is mounted.
func (m *Model) HelpVisible() bool { return m.pane.HasOverlay() }

func (m *Model) logIntent(v events.IntentMsg) {
	entry := m.env.Logger().WithFields(logrus.Fields{
		"component": v.Component,
		"intent":    v.Intent.ID,
		"action":    v.Intent.Action,
	})
	if v.Err != nil {
		entry.WithError(v.Err).Warn("intent rejected")
		return
	}
	entry.Info("intent accepted")
}

func (m *Model) bodyRows() int {
	rows := m.height - headerRows - footerRows
	if m.debug {
		rows -= logRows
	}
	return max(rows, 1)
}

func (m *Model) layout() {
	if m.width <= 0 || m.height <= 0 {
		return
	}
	m.Current().SetSize(m.width, m.bodyRows())
	m.pane.SetSize(m.width, m.height)
	m.events.SetSize(m.width, logRows)
}

// View implements tea.Model.
func (m *Model) View() (string, *tea.Cursor) {
	parts := []string{m.header(), m.body()}
	if m.debug {
		parts = append(parts, m.events.View())
	}
	parts = append(parts, m.footer())
	m.pane.SetBackground(strings.Join(parts, "\n"), nil)
	return m.pane.View()
}

func (m *Model) header() string {
	th := m.env.Theme
	items := []string{th.Header.Brand.Render("FundFlow")}
	for i, id := range tabs {
		label := fmt.Sprintf("%d %s", i+1, m.pages[id].Title())
		if id == m.page {
			items = append(items, th.Header.ActiveTab.Render(label))
			continue
		}
		items = append(items, th.Header.Tab.Render(label))
	}
	if m.page == events.PageProject {
		items = append(items, th.Header.ActiveTab.Render(m.Current().Title()))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, items...) + "\n"
}

func (m *Model) body() string {
	view := m.Current().View()
	if m.height <= 0 {
		return view
	}
	rows := strings.Split(view, "\n")
	limit := m.bodyRows()
	if len(rows) > limit {
		rows = rows[:limit]
	}
	for len(rows) < limit {
		rows = append(rows, "")
	}
	return strings.Join(rows, "\n")
}

func (m *Model) footer() string {
	th := m.env.Theme
	hints := "ctrl+n/p pages • ? help • ctrl+d events • q quit"
	if m.Current().Capturing() {
		hints = "tab next field • ctrl+n/p pages • ctrl+c quit"
	}
	return m.flash.View() + "\n" + th.Footer.Help.Render(hints)
}

// memoryRatings keeps the rating for runs without a durable store.
type memoryRatings struct {
	value float64
	ok    bool
}

func (r *memoryRatings) Rating() (float64, bool, error) { return r.value, r.ok, nil }

func (r *memoryRatings) SetRating(v float64) error {
	r.value, r.ok = v, true
	return nil
}

package project

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/reflow/wordwrap"

	"tableflip.dev/fundflow/pkg/catalog"
	"tableflip.dev/fundflow/pkg/forms"
	"tableflip.dev/fundflow/pkg/intent"
	"tableflip.dev/fundflow/pkg/modal"
	"tableflip.dev/fundflow/pkg/notify"
	"tableflip.dev/fundflow/pkg/preview"
	"tableflip.dev/fundflow/pkg/rating"
	"tableflip.dev/fundflow/pkg/selection"
	"tableflip.dev/fundflow/pkg/tui/components/choices"
	"tableflip.dev/fundflow/pkg/tui/components/dialog"
	"tableflip.dev/fundflow/pkg/tui/components/gallery"
	"tableflip.dev/fundflow/pkg/tui/components/ratingview"
	"tableflip.dev/fundflow/pkg/tui/events"
	"tableflip.dev/fundflow/pkg/tui/ui"
	"tableflip.dev/fundflow/pkg/tui/uiutil"
)

// ID identifies the page in events.
const ID events.ComponentID = "project"

// DefaultRating seeds the rating widget when nothing was saved yet.
const DefaultRating = 7.5

const (
	slotGallery = iota
	slotDonate
	slotRating
	slotComments
	slotCount
)

// Comment is one entry under the project.
type Comment struct {
	ID     string
	Author string
	Text   string
}

var sampleComments = []Comment{
	{ID: "c1", Author: "Maya", Text: "Backed! Can't wait to see this happen."},
	{ID: "c2", Author: "Tom", Text: "Will there be updates on the build progress?"},
	{ID: "c3", Author: "Priya", Text: "Shared this with my whole team."},
}

var _ ui.Page = (*Model)(nil)

// Model is the single-project page: gallery, donation panel, rating,
// comments and the report dialog.
type Model struct {
	env  *uiutil.Env
	card catalog.Card

	gallery  *gallery.Model
	donation *choices.Model
	rating   *ratingview.Model
	pair     *rating.Pair
	report   *dialog.Model
	modals   *modal.Set

	comments []Comment
	comment  int
	pending  []tea.Cmd

	ring   *ui.FocusRing
	width  int
	height int
}

// New builds the page. Enter selects which card it shows.
func New(env *uiutil.Env) *Model {
	th := env.Theme
	m := &Model{env: env, ring: ui.NewFocusRing(slotCount), comments: sampleComments}
	m.gallery = gallery.New(ID+".gallery", th)
	m.donation = choices.New(ID+".donation", []selection.Option{
		{ID: "10", Label: "$10"},
		{ID: "25", Label: "$25"},
		{ID: "50", Label: "$50"},
		{ID: "100", Label: "$100"},
	}, th, choices.WithLayout(choices.Tiles), choices.WithCustomInput("Other"))

	m.rating = ratingview.New(ID+".rating", th)
	m.pair = rating.NewPair(env.Ratings, rating.WithDisplay(m.rating), rating.WithNotifier(env.Notifier))
	m.rating.Bind(m.pair)

	reportCtl := modal.New("report",
		modal.WithTitle("Report Project"),
		modal.WithFields(modal.Field{Name: "reason", Label: "Why are you reporting this project?", Choices: modal.ReportReasons}),
		modal.WithPolicy(modal.ReportPolicy),
		modal.WithNotifier(env.Notifier),
		modal.WithEffect(m.sendReport),
	)
	m.report = dialog.New(reportCtl, th, "")
	m.modals = modal.NewSet(reportCtl)
	return m
}

func (m *Model) sendReport(_ context.Context, req modal.Request) error {
	cmd, err := m.env.Emit(ID, intent.New(intent.ReportProject, map[string]string{
		"project": req.Subject.ID,
		"reason":  req.Values.Get("reason"),
	}))
	m.pending = append(m.pending, cmd)
	return err
}

// Card returns the card on show.
func (m *Model) Card() catalog.Card { return m.card }

// Pair exposes the rating pair.
func (m *Model) Pair() *rating.Pair { return m.pair }

// Title implements ui.Page.
func (m *Model) Title() string { return "Project" }

// Capturing implements ui.Page.
func (m *Model) Capturing() bool {
	return m.report.Capturing() || m.donation.Capturing() || m.rating.Capturing()
}

// Init implements ui.Component.
func (m *Model) Init() tea.Cmd { return nil }

// SetSize implements ui.Component.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.gallery.SetWidth(min(width, 60))
}

// Enter implements ui.Page. Subject is the card id.
func (m *Model) Enter(subject string) tea.Cmd {
	if card, ok := m.env.Catalog.Find(subject); ok {
		m.card = *card
	} else if subject == "" && m.card.ID == "" && len(m.env.Catalog.Cards) > 0 {
		m.card = m.env.Catalog.Cards[0]
	}
	m.gallery.SetSlides(m.slides())
	m.donation.Reset()
	m.comment = 0
	if err := m.pair.Load(DefaultRating); err != nil {
		m.env.Logger().WithError(err).Warn("rating load failed")
	}
	m.ring.Set(slotGallery)
	return tea.Batch(m.gallery.Start(), m.focus())
}

// Leave implements ui.Page.
func (m *Model) Leave() {
	m.gallery.Stop()
	m.report.Controller().Cancel()
	m.blurAll()
}

func (m *Model) slides() []string {
	if len(m.card.Images) == 0 {
		return []string{
			fmt.Sprintf("%s\n\n%s", m.card.Title, m.card.Summary),
			fmt.Sprintf("%s\n\nby %s", uiutil.Label(m.card.Category), m.card.Creator),
			fmt.Sprintf("%s raised of %s", uiutil.Money(m.card.Raised), uiutil.Money(m.card.Goal)),
		}
	}
	out := make([]string, 0, len(m.card.Images))
	for _, path := range m.card.Images {
		img, err := preview.Inspect(path)
		if err != nil {
			out = append(out, filepath.Base(path))
			continue
		}
		out = append(out, fmt.Sprintf("%s\n%s %dx%d", img.Name, strings.ToUpper(img.Format), img.Width, img.Height))
	}
	return out
}

// Update implements ui.Component.
func (m *Model) Update(msg tea.Msg) (ui.Component, tea.Cmd) {
	if m.report.IsOpen() {
		switch msg.(type) {
		case tea.KeyMsg, events.ClickMsg:
			_, cmd := m.report.Update(m.env.Context(), msg)
			return m, m.flush(cmd)
		}
	}
	switch msg := msg.(type) {
	case gallery.TickMsg:
		return m, m.gallery.Update(msg)
	case events.CardChangeMsg:
		if msg.Card.ID == m.card.ID {
			m.card = msg.Card
		}
		return m, nil
	case events.RatingChangedMsg:
		if !m.rating.Capturing() {
			if err := m.pair.Load(DefaultRating); err != nil {
				m.env.Logger().WithError(err).Warn("rating reload failed")
			}
		}
		return m, nil
	case events.ClickMsg:
		m.modals.ClickAt(msg.X, msg.Y)
		return m, nil
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
	case "tab":
		m.ring.Next()
		return m.focus()
	case "shift+tab":
		m.ring.Prev()
		return m.focus()
	}
	if !m.Capturing() {
		switch msg.String() {
		case "r":
			return m.report.Open(modal.Subject{ID: m.card.ID, Title: m.card.Title})
		case "c":
			if m.ring.Is(slotComments) {
				return m.reportComment()
			}
		}
	}

	switch m.ring.Current() {
	case slotGallery:
		return m.gallery.Update(msg)
	case slotDonate:
		if msg.String() == "enter" {
			return m.donate()
		}
		_, cmd := m.donation.Update(msg)
		return cmd
	case slotRating:
		submit, cmd := m.rating.Update(msg)
		if submit {
			return tea.Batch(cmd, m.submitRating())
		}
		return cmd
	case slotComments:
		switch msg.String() {
		case "up", "k":
			if m.comment > 0 {
				m.comment--
			}
		case "down", "j":
			if m.comment < len(m.comments)-1 {
				m.comment++
			}
		case "enter":
			return m.reportComment()
		}
	}
	return nil
}

func (m *Model) donate() tea.Cmd {
	form := forms.DonationForm{ProjectID: m.card.ID, Custom: m.donation.Group().Custom()}
	if id, ok := m.donation.Group().Selected(); ok {
		form.Preset = id
	}
	in, err := form.Intent()
	if err != nil {
		m.env.Notify(notify.Error, "%s", err.Error())
		return nil
	}
	cmd, err := m.env.Emit(ID, in)
	if err == nil {
		m.donation.Reset()
	}
	return cmd
}

func (m *Model) submitRating() tea.Cmd {
	if _, err := m.pair.Submit(m.env.Context()); err != nil {
		m.env.Logger().WithError(err).Warn("rating submit failed")
		return nil
	}
	cmd, _ := m.env.Emit(ID, intent.New(intent.RateProject, map[string]string{
		"project": m.card.ID,
		"rating":  rating.Format(m.pair.Value()),
	}))
	return cmd
}

func (m *Model) reportComment() tea.Cmd {
	if len(m.comments) == 0 {
		return nil
	}
	c := m.comments[m.comment]
	cmd, _ := m.env.Emit(ID, intent.New(intent.ReportComment, map[string]string{
		"project": m.card.ID,
		"comment": c.ID,
	}))
	return cmd
}

func (m *Model) focus() tea.Cmd {
	m.blurAll()
	switch m.ring.Current() {
	case slotGallery:
		m.gallery.Focus()
	case slotDonate:
		return m.donation.Focus()
	case slotRating:
		return m.rating.Focus()
	}
	return nil
}

func (m *Model) blurAll() {
	m.gallery.Blur()
	m.donation.Blur()
	m.rating.Blur()
}

// View implements ui.Component.
func (m *Model) View() string {
	th := m.env.Theme
	width := m.width
	if width <= 0 {
		width = 80
	}
	c := m.card
	status := c.EffectiveStatus()
	statusStyle, ok := th.Card.Status[status]
	if !ok {
		statusStyle = th.Card.Meta
	}

	header := lipgloss.JoinVertical(lipgloss.Left,
		th.Card.Title.Render(c.Title)+"  "+statusStyle.Render(status),
		th.Card.Meta.Render(fmt.Sprintf("by %s · %s · %s raised of %s · %d backers",
			c.Creator, uiutil.Label(c.Category), uiutil.Money(c.Raised), uiutil.Money(c.Goal), c.Backers)),
		wordwrap.String(c.Summary, min(width, 80)),
	)

	donateLabel := th.Field.Label
	if m.ring.Is(slotDonate) {
		donateLabel = th.Field.FocusedLabel
	}
	donate := lipgloss.JoinVertical(lipgloss.Left,
		donateLabel.Render("Back this project"),
		m.donation.View(),
	)

	commentsLabel := th.Field.Label
	if m.ring.Is(slotComments) {
		commentsLabel = th.Field.FocusedLabel
	}
	lines := []string{commentsLabel.Render(fmt.Sprintf("Comments (%d)", len(m.comments)))}
	for i, cm := range m.comments {
		marker := "  "
		if i == m.comment && m.ring.Is(slotComments) {
			marker = th.Choice.Cursor.Render("→ ")
		}
		lines = append(lines, fmt.Sprintf("%s%s: %s", marker, th.Card.Title.Render(cm.Author), cm.Text))
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		header, "",
		m.gallery.View(), "",
		donate, "",
		m.rating.View(), "",
		strings.Join(lines, "\n"), "",
		th.Footer.Help.Render("r report project · c report comment · enter donate/submit"),
	)
	height := m.height
	if height <= 0 {
		height = lipgloss.Height(body)
	}
	return m.report.Render(body, width, height)
}

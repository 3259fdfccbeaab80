package create

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/fundflow/pkg/forms"
	"tableflip.dev/fundflow/pkg/notify"
	"tableflip.dev/fundflow/pkg/preview"
	"tableflip.dev/fundflow/pkg/tui/components/choices"
	"tableflip.dev/fundflow/pkg/tui/components/field"
	"tableflip.dev/fundflow/pkg/tui/components/tageditor"
	"tableflip.dev/fundflow/pkg/tui/events"
	"tableflip.dev/fundflow/pkg/tui/ui"
	"tableflip.dev/fundflow/pkg/tui/uiutil"
)

// ID identifies the page in events.
const ID events.ComponentID = "create"

const (
	slotTitle = iota
	slotDetails
	slotTarget
	slotStart
	slotEnd
	slotCategory
	slotImages
	slotTags
	slotSubmit
	slotCount
)

var _ ui.Page = (*Model)(nil)

// Model is the create-project form.
type Model struct {
	env *uiutil.Env

	inputs   []*field.Model
	category *choices.Model
	images   *field.Model
	slots    *preview.Slots
	tags     *tageditor.Model

	onSlots bool
	slot    int

	ring   *ui.FocusRing
	width  int
	height int
}

// New builds an empty form.
func New(env *uiutil.Env) *Model {
	th := env.Theme
	m := &Model{env: env, ring: ui.NewFocusRing(slotCount), slots: preview.New(preview.DefaultSlots)}
	m.inputs = []*field.Model{
		field.New("title", "Project title", th, field.WithLimit(80)),
		field.New("details", "Project details", th, field.WithWidth(60)),
		field.New("target", "Funding target ($)", th, field.WithPlaceholder("5000"), field.WithWidth(12)),
		field.New("startDate", "Start date", th, field.WithPlaceholder("YYYY-MM-DD"), field.WithWidth(12)),
		field.New("endDate", "End date", th, field.WithPlaceholder("YYYY-MM-DD"), field.WithWidth(12)),
	}
	m.category = choices.New(ID+".category", uiutil.Options(env.Catalog.Categories, false), th,
		choices.WithLayout(choices.Tiles), choices.WithLabel("Category"))
	m.images = field.New("images", "Images (comma separated paths, up to 3)", th, field.WithWidth(60))
	m.tags = tageditor.New(ID+".tags", th)
	return m
}

// Title implements ui.Page.
func (m *Model) Title() string { return "Start a Project" }

// Capturing implements ui.Page.
func (m *Model) Capturing() bool {
	c := m.ring.Current()
	return c <= slotEnd || (c == slotImages && !m.onSlots) || m.tags.Capturing()
}

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
func (m *Model) Leave() { m.blurAll() }

// Form collects the current values.
func (m *Model) Form() forms.ProjectForm {
	return forms.ProjectForm{
		Title:     m.inputs[slotTitle].Value(),
		Details:   m.inputs[slotDetails].Value(),
		Target:    m.inputs[slotTarget].Value(),
		StartDate: m.inputs[slotStart].Value(),
		EndDate:   m.inputs[slotEnd].Value(),
		Category:  m.category.Value(),
		Tags:      m.tags.Tags(),
		Images:    m.slots.Paths(),
	}
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
	case "ctrl+s":
		return m, m.submit()
	}

	cur := m.ring.Current()
	switch {
	case cur <= slotEnd:
		if key.String() == "enter" {
			m.ring.Next()
			return m, m.focus()
		}
		_, cmd := m.inputs[cur].Update(key)
		return m, cmd
	case cur == slotCategory:
		_, cmd := m.category.Update(key)
		return m, cmd
	case cur == slotImages:
		return m, m.updateImages(key)
	case cur == slotTags:
		return m, m.tags.Update(key)
	case cur == slotSubmit:
		if key.String() == "enter" {
			return m, m.submit()
		}
	}
	return m, nil
}

func (m *Model) updateImages(key tea.KeyMsg) tea.Cmd {
	if m.onSlots {
		switch key.String() {
		case "left", "h":
			if m.slot > 0 {
				m.slot--
			}
		case "right", "l":
			if m.slot < m.slots.Len()-1 {
				m.slot++
			}
		case "x", "delete", "backspace":
			m.slots.Remove(m.slot)
		case "down", "esc":
			m.onSlots = false
			return m.images.Focus()
		}
		return nil
	}
	switch key.String() {
	case "enter":
		m.loadImages()
		return nil
	case "up":
		if m.slots.HasAny() {
			m.onSlots = true
			m.slot = 0
			m.images.Blur()
		}
		return nil
	}
	_, cmd := m.images.Update(key)
	return cmd
}

func (m *Model) loadImages() {
	var paths []string
	for _, p := range strings.Split(m.images.Value(), ",") {
		if p = strings.TrimSpace(p); p != "" {
			paths = append(paths, p)
		}
	}
	if len(paths) == 0 {
		return
	}
	m.slots.Reset()
	errs := m.slots.Load(paths)
	for _, err := range errs {
		m.env.Notify(notify.Error, "%s", err.Error())
	}
	if len(paths) > m.slots.Len() {
		m.env.Notify(notify.Info, "Only the first %d images are kept", m.slots.Len())
	}
	m.images.SetValue("")
}

func (m *Model) submit() tea.Cmd {
	form := m.Form()
	if err := form.Validate(m.env.Today()); err != nil {
		m.env.Notify(notify.Error, "%s", err.Error())
		return nil
	}
	cmd, err := m.env.Emit(ID, form.Intent())
	if err != nil {
		return cmd
	}
	m.reset()
	return tea.Batch(cmd, m.focus())
}

func (m *Model) reset() {
	for _, in := range m.inputs {
		in.SetValue("")
	}
	m.category.Reset()
	m.images.SetValue("")
	m.slots.Reset()
	m.tags.Reset()
	m.onSlots = false
	m.ring.Set(slotTitle)
}

func (m *Model) focus() tea.Cmd {
	m.blurAll()
	cur := m.ring.Current()
	switch {
	case cur <= slotEnd:
		return m.inputs[cur].Focus()
	case cur == slotCategory:
		return m.category.Focus()
	case cur == slotImages:
		if m.onSlots {
			return nil
		}
		return m.images.Focus()
	case cur == slotTags:
		return m.tags.Focus()
	}
	return nil
}

func (m *Model) blurAll() {
	for _, in := range m.inputs {
		in.Blur()
	}
	m.category.Blur()
	m.images.Blur()
	m.tags.Blur()
}

// View implements ui.Component.
func (m *Model) View() string {
	th := m.env.Theme
	rows := []string{th.Field.Section.Render("Start a Project")}
	for _, in := range m.inputs {
		rows = append(rows, in.View())
	}
	rows = append(rows, m.category.View(), m.images.View(), m.slotsView(), m.tags.View())

	button := th.Choice.Option.Render("Create Project")
	if m.ring.Is(slotSubmit) {
		button = th.Choice.Selected.Render("Create Project")
	}
	rows = append(rows, button, th.Footer.Help.Render("tab next field · enter on images loads them · ctrl+s submit"))
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m *Model) slotsView() string {
	th := m.env.Theme
	cells := make([]string, m.slots.Len())
	for i := range cells {
		text := "empty"
		if img := m.slots.At(i); img != nil {
			text = fmt.Sprintf("%s %dx%d", img.Name, img.Width, img.Height)
		}
		style := th.Choice.Option
		if m.onSlots && i == m.slot {
			style = th.Choice.Selected
		}
		cells[i] = style.Render(text + " ×")
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}

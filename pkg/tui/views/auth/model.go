package auth

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/fundflow/pkg/forms"
	"tableflip.dev/fundflow/pkg/intent"
	"tableflip.dev/fundflow/pkg/notify"
	"tableflip.dev/fundflow/pkg/selection"
	"tableflip.dev/fundflow/pkg/tui/components/choices"
	"tableflip.dev/fundflow/pkg/tui/components/field"
	"tableflip.dev/fundflow/pkg/tui/events"
	"tableflip.dev/fundflow/pkg/tui/ui"
	"tableflip.dev/fundflow/pkg/tui/uiutil"
)

// ID identifies the page in events.
const ID events.ComponentID = "auth"

// Modes.
const (
	ModeLogin  = "login"
	ModeSignup = "signup"
)

type slot string

const (
	slotTabs     slot = "tabs"
	slotName     slot = "name"
	slotEmail    slot = "email"
	slotPassword slot = "password"
	slotConfirm  slot = "confirm"
	slotTerms    slot = "terms"
	slotSubmit   slot = "submit"
	slotSocial   slot = "social"
)

var layouts = map[string][]slot{
	ModeLogin:  {slotTabs, slotEmail, slotPassword, slotSubmit, slotSocial},
	ModeSignup: {slotTabs, slotName, slotEmail, slotPassword, slotConfirm, slotTerms, slotSubmit, slotSocial},
}

var _ ui.Page = (*Model)(nil)

// Model is the login/signup page.
type Model struct {
	env *uiutil.Env

	tabs   *choices.Model
	fields map[slot]*field.Model
	terms  bool
	social *choices.Model
	ring   *ui.FocusRing
	width  int
	height int
}

// New builds the page in login mode.
func New(env *uiutil.Env) *Model {
	th := env.Theme
	m := &Model{env: env}
	m.tabs = choices.New(ID+".mode", []selection.Option{
		{ID: ModeLogin, Label: "Login"},
		{ID: ModeSignup, Label: "Sign Up"},
	}, th)
	m.tabs.Group().Select(ModeLogin)
	m.fields = map[slot]*field.Model{
		slotName:     field.New("name", "Full name", th),
		slotEmail:    field.New("email", "Email", th, field.WithPlaceholder("you@example.com")),
		slotPassword: field.New("password", "Password", th, field.WithSecret()),
		slotConfirm:  field.New("confirm", "Confirm password", th, field.WithSecret()),
	}
	m.social = choices.New(ID+".social", []selection.Option{
		{ID: "google", Label: "Google"},
		{ID: "facebook", Label: "Facebook"},
		{ID: "twitter", Label: "Twitter"},
	}, th, choices.WithLayout(choices.Tiles), choices.WithLabel("Or continue with"))
	m.social.Group().Select("google")
	m.ring = ui.NewFocusRing(len(layouts[ModeLogin]))
	return m
}

// Mode returns login or signup.
func (m *Model) Mode() string { return m.tabs.Value() }

// SetMode switches between login and signup.
func (m *Model) SetMode(mode string) tea.Cmd {
	if _, ok := layouts[mode]; !ok {
		return nil
	}
	m.tabs.Group().Select(mode)
	m.ring = ui.NewFocusRing(len(layouts[mode]))
	return m.focus()
}

// Field returns the input named name.
func (m *Model) Field(name string) *field.Model { return m.fields[slot(name)] }

// Terms reports whether the terms box is ticked.
func (m *Model) Terms() bool { return m.terms }

func (m *Model) current() slot { return layouts[m.Mode()][m.ring.Current()] }

// Title implements ui.Page.
func (m *Model) Title() string { return "Sign In" }

// Capturing implements ui.Page.
func (m *Model) Capturing() bool {
	_, ok := m.fields[m.current()]
	return ok
}

// Init implements ui.Component.
func (m *Model) Init() tea.Cmd { return nil }

// SetSize implements ui.Component.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Enter implements ui.Page. Subject may pick the mode.
func (m *Model) Enter(subject string) tea.Cmd {
	if subject != "" {
		return m.SetMode(subject)
	}
	return m.focus()
}

// Leave implements ui.Page.
func (m *Model) Leave() { m.blurAll() }

// Update implements ui.Component.
func (m *Model) Update(msg tea.Msg) (ui.Component, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "tab", "down":
		m.ring.Next()
		return m, m.focus()
	case "shift+tab", "up":
		m.ring.Prev()
		return m, m.focus()
	}

	cur := m.current()
	switch cur {
	case slotTabs:
		if changed, _ := m.tabs.Update(key); changed {
			return m, m.SetMode(m.tabs.Value())
		}
	case slotTerms:
		switch key.String() {
		case "space", "enter", "x":
			m.terms = !m.terms
		}
	case slotSubmit:
		if key.String() == "enter" {
			return m, m.submit()
		}
	case slotSocial:
		if key.String() == "enter" {
			return m, m.emit(forms.SocialLogin(m.social.Value()))
		}
		_, cmd := m.social.Update(key)
		return m, cmd
	default:
		if key.String() == "enter" {
			return m, m.submit()
		}
		_, cmd := m.fields[cur].Update(key)
		return m, cmd
	}
	return m, nil
}

func (m *Model) submit() tea.Cmd {
	var (
		in  intent.Intent
		err error
	)
	if m.Mode() == ModeSignup {
		form := forms.SignupForm{
			Name:     m.fields[slotName].Value(),
			Email:    m.fields[slotEmail].Value(),
			Password: m.fields[slotPassword].Value(),
			Confirm:  m.fields[slotConfirm].Value(),
			Terms:    m.terms,
		}
		in, err = form.Intent(), form.Validate()
	} else {
		form := forms.LoginForm{
			Email:    m.fields[slotEmail].Value(),
			Password: m.fields[slotPassword].Value(),
		}
		in, err = form.Intent(), form.Validate()
	}
	if err != nil {
		m.env.Notify(notify.Error, "%s", err.Error())
		return nil
	}
	return m.emit(in)
}

func (m *Model) emit(in intent.Intent) tea.Cmd {
	cmd, err := m.env.Emit(ID, in)
	if err != nil {
		return cmd
	}
	m.reset()
	return tea.Batch(cmd, events.NavigateCmd(ID, events.PageHome, ""))
}

func (m *Model) reset() {
	for _, f := range m.fields {
		f.SetValue("")
	}
	m.terms = false
	m.ring.Set(0)
	m.blurAll()
}

func (m *Model) focus() tea.Cmd {
	m.blurAll()
	switch cur := m.current(); cur {
	case slotTabs:
		return m.tabs.Focus()
	case slotSocial:
		return m.social.Focus()
	default:
		if f, ok := m.fields[cur]; ok {
			return f.Focus()
		}
	}
	return nil
}

func (m *Model) blurAll() {
	m.tabs.Blur()
	m.social.Blur()
	for _, f := range m.fields {
		f.Blur()
	}
}

// View implements ui.Component.
func (m *Model) View() string {
	th := m.env.Theme
	lines := []string{m.tabs.View(), ""}
	for i, s := range layouts[m.Mode()] {
		focused := m.ring.Is(i)
		switch s {
		case slotTabs:
		case slotTerms:
			box := "[ ]"
			if m.terms {
				box = "[x]"
			}
			label := th.Field.Label
			if focused {
				label = th.Field.FocusedLabel
			}
			lines = append(lines, label.Render(box+" I agree to the terms and conditions"))
		case slotSubmit:
			text := "Login"
			if m.Mode() == ModeSignup {
				text = "Create Account"
			}
			style := th.Choice.Option
			if focused {
				style = th.Choice.Selected
			}
			lines = append(lines, "", style.Render(text))
		case slotSocial:
			lines = append(lines, "", m.social.View())
		default:
			lines = append(lines, m.fields[s].View())
		}
	}
	return lipgloss.NewStyle().MaxWidth(max(m.width, 40)).Render(strings.Join(lines, "\n"))
}

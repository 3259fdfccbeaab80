package events

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/fundflow/pkg/catalog"
	"tableflip.dev/fundflow/pkg/intent"
)

// ComponentID uniquely identifies a component instance emitting events.
type ComponentID string

// PageID names one of the top-level pages.
type PageID string

// Pages, in navigation order.
const (
	PageHome     PageID = "home"
	PageProjects PageID = "projects"
	PageProject  PageID = "project"
	PageCreate   PageID = "create"
	PageProfile  PageID = "profile"
	PageAdmin    PageID = "admin"
	PageAuth     PageID = "auth"
)

// NavigateMsg asks the app to show another page. Subject carries the card id
// for the project page.
type NavigateMsg struct {
	Component ComponentID
	Page      PageID
	Subject   string
}

// Describe renders the navigation in a human-friendly format for logs.
func (m NavigateMsg) Describe() string {
	return fmt.Sprintf(`page:%q subject:%q`, m.Page, m.Subject)
}

// NavigateCmd wraps NavigateMsg into a tea.Cmd.
func NavigateCmd(component ComponentID, page PageID, subject string) tea.Cmd {
	return func() tea.Msg {
		return NavigateMsg{Component: component, Page: page, Subject: subject}
	}
}

// ClickMsg is a mouse click translated into page-local coordinates.
type ClickMsg struct {
	X, Y int
}

// Describe implements the logging helper.
func (m ClickMsg) Describe() string {
	return fmt.Sprintf(`x:%d y:%d`, m.X, m.Y)
}

// IntentMsg reports an intent that has been handed to the sink.
type IntentMsg struct {
	Component ComponentID
	Intent    intent.Intent
	Err       error
}

// Describe implements the logging helper.
func (m IntentMsg) Describe() string {
	state := "accepted"
	if m.Err != nil {
		state = "rejected"
	}
	return fmt.Sprintf(`action:%q id:%q state:%q`, m.Intent.Action, m.Intent.ID, state)
}

// IntentCmd wraps IntentMsg into a tea.Cmd.
func IntentCmd(component ComponentID, in intent.Intent, err error) tea.Cmd {
	return func() tea.Msg {
		return IntentMsg{Component: component, Intent: in, Err: err}
	}
}

// CardChangeMsg announces that a card's fields changed, for example when its
// creator cancels it, so other pages can refresh their listings.
type CardChangeMsg struct {
	Component ComponentID
	Card      catalog.Card
}

// Describe implements the logging helper.
func (m CardChangeMsg) Describe() string {
	return fmt.Sprintf(`card:%q status:%q`, m.Card.ID, m.Card.EffectiveStatus())
}

// CardChangeCmd wraps CardChangeMsg into a tea.Cmd.
func CardChangeCmd(component ComponentID, card catalog.Card) tea.Cmd {
	return func() tea.Msg {
		return CardChangeMsg{Component: component, Card: card}
	}
}

// RatingChangedMsg is emitted when the durable rating changed on disk.
type RatingChangedMsg struct{}

// Describe implements the logging helper.
func (RatingChangedMsg) Describe() string { return `key:"projectRating"` }

// FocusMsg indicates a component just gained focus.
type FocusMsg struct {
	Component ComponentID
}

// Describe implements the logging helper.
func (m FocusMsg) Describe() string {
	return fmt.Sprintf(`component:%q state:"focus"`, m.Component)
}

// BlurMsg indicates a component just lost focus.
type BlurMsg struct {
	Component ComponentID
}

// Describe implements the logging helper.
func (m BlurMsg) Describe() string {
	return fmt.Sprintf(`component:%q state:"blur"`, m.Component)
}

// FocusCmd wraps a FocusMsg in a tea.Cmd helper.
func FocusCmd(component ComponentID) tea.Cmd {
	return func() tea.Msg {
		return FocusMsg{Component: component}
	}
}

// BlurCmd wraps a BlurMsg in a tea.Cmd helper.
func BlurCmd(component ComponentID) tea.Cmd {
	return func() tea.Msg {
		return BlurMsg{Component: component}
	}
}

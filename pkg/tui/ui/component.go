package ui

import (
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
)

// Component defines the contract for reusable Bubble Tea widgets.
type Component interface {
	Init() tea.Cmd
	Update(tea.Msg) (Component, tea.Cmd)
	View() string
	SetSize(width, height int)
}

// Page is a top-level screen hosted by the app.
type Page interface {
	Component
	// Title is shown in the navigation bar.
	Title() string
	// Capturing reports whether the page wants raw keys, for example while a
	// text input or modal is focused, so global shortcuts stay off.
	Capturing() bool
	// Enter runs when the page becomes active.
	Enter(subject string) tea.Cmd
	// Leave runs when another page takes over.
	Leave()
}

// Overlay is a floating surface drawn above a page.
type Overlay interface {
	Init() tea.Cmd
	Update(tea.Msg) (Overlay, tea.Cmd)
	View() (string, *tea.Cursor)
	SetSize(width, height int)
}

// OverlayPlacement controls where an overlay is rendered relative to the
// content viewport.
type OverlayPlacement struct {
	Width      int
	Height     int
	Horizontal lipgloss.Position
	Vertical   lipgloss.Position
	MarginX    int
	MarginY    int
	Fullscreen bool
}

// FocusRing tracks which of n focusable slots holds the keyboard.
type FocusRing struct {
	n   int
	cur int
}

// NewFocusRing returns a ring over n slots with the first focused.
func NewFocusRing(n int) *FocusRing { return &FocusRing{n: n} }

// Current returns the focused slot.
func (r *FocusRing) Current() int { return r.cur }

// Is reports whether slot i is focused.
func (r *FocusRing) Is(i int) bool { return r.cur == i }

// Next moves focus forward, wrapping.
func (r *FocusRing) Next() int { return r.Move(1) }

// Prev moves focus backward, wrapping.
func (r *FocusRing) Prev() int { return r.Move(-1) }

// Move shifts focus by delta, wrapping.
func (r *FocusRing) Move(delta int) int {
	if r.n == 0 {
		return 0
	}
	r.cur = ((r.cur+delta)%r.n + r.n) % r.n
	return r.cur
}

// Set focuses slot i when it exists.
func (r *FocusRing) Set(i int) {
	if i >= 0 && i < r.n {
		r.cur = i
	}
}

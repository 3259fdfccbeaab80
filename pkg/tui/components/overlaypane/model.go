package overlaypane

import (
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/fundflow/pkg/tui/ui"
	overlaymgr "tableflip.dev/fundflow/pkg/tui/ui/overlay"
)

// Model composes a background surface with an optional overlay.
type Model struct {
	width  int
	height int

	background string
	bgCursor   *tea.Cursor

	overlay   ui.Overlay
	placement ui.OverlayPlacement
}

// New constructs a container sized to width x height.
func New(width, height int) *Model {
	m := &Model{}
	m.SetSize(width, height)
	return m
}

// SetSize updates the container bounds.
func (m *Model) SetSize(width, height int) {
	m.width = max(width, 1)
	m.height = max(height, 1)
	if m.overlay != nil {
		m.overlay.SetSize(m.overlaySize())
	}
}

// SetBackground records the background view and cursor.
func (m *Model) SetBackground(view string, cursor *tea.Cursor) {
	m.background = view
	m.bgCursor = nil
	if cursor != nil {
		c := *cursor
		m.bgCursor = &c
	}
}

// SetOverlay mounts an overlay using the provided placement.
func (m *Model) SetOverlay(overlay ui.Overlay, placement ui.OverlayPlacement) tea.Cmd {
	if overlay == nil {
		return nil
	}
	m.overlay = overlay
	m.placement = placement
	m.overlay.SetSize(m.overlaySize())
	return m.overlay.Init()
}

// ClearOverlay removes any active overlay.
func (m *Model) ClearOverlay() { m.overlay = nil }

// HasOverlay reports if an overlay is currently mounted.
func (m *Model) HasOverlay() bool { return m.overlay != nil }

// Update forwards messages to the overlay when present. An overlay that
// returns nil from Update is unmounted.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	if m.overlay == nil {
		return nil
	}
	next, cmd := m.overlay.Update(msg)
	m.overlay = next
	return cmd
}

// View renders the composed view.
func (m *Model) View() (string, *tea.Cursor) {
	if m.overlay == nil {
		return m.background, m.cursor(nil, 0, 0)
	}
	fg, cur := m.overlay.View()
	placement := m.composePlacement()
	view, r := overlaymgr.Compose(m.background, m.width, m.height, fg, placement)
	return view, m.cursor(cur, r.X, r.Y)
}

func (m *Model) cursor(overlayCursor *tea.Cursor, x, y int) *tea.Cursor {
	if overlayCursor != nil {
		c := *overlayCursor
		c.X += x
		c.Y += y
		return &c
	}
	if m.bgCursor != nil {
		c := *m.bgCursor
		return &c
	}
	return nil
}

func (m *Model) overlaySize() (int, int) {
	w := m.placement.Width
	if w <= 0 || w > m.width {
		w = m.width
	}
	h := m.placement.Height
	if h <= 0 || h > m.height {
		h = m.height
	}
	return w, h
}

func (m *Model) composePlacement() overlaymgr.Placement {
	if m.placement.Fullscreen {
		return overlaymgr.Placement{
			Horizontal: lipgloss.Left,
			Vertical:   lipgloss.Top,
			Width:      m.width,
			Height:     m.height,
		}
	}
	w, h := m.overlaySize()
	return overlaymgr.Placement{
		Horizontal: m.placement.Horizontal,
		Vertical:   m.placement.Vertical,
		MarginX:    m.placement.MarginX,
		MarginY:    m.placement.MarginY,
		Width:      w,
		Height:     h,
	}
}

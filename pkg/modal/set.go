package modal

// Set groups the modals of one page so that at most one is visible.
type Set struct {
	modals []*Controller
}

// NewSet registers the given modals.
func NewSet(modals ...*Controller) *Set {
	s := &Set{}
	for _, m := range modals {
		s.Add(m)
	}
	return s
}

// Add registers m. Opening m closes every other modal in the set.
func (s *Set) Add(m *Controller) {
	if m == nil {
		return
	}
	m.onOpen = s.closeOthers
	s.modals = append(s.modals, m)
}

// Get returns the modal with id.
func (s *Set) Get(id string) (*Controller, bool) {
	for _, m := range s.modals {
		if m.id == id {
			return m, true
		}
	}
	return nil, false
}

// Visible returns the open modal, if any.
func (s *Set) Visible() (*Controller, bool) {
	for _, m := range s.modals {
		if m.IsOpen() {
			return m, true
		}
	}
	return nil, false
}

// ClickAt forwards a click to the visible modal.
func (s *Set) ClickAt(x, y int) bool {
	if m, ok := s.Visible(); ok {
		return m.ClickAt(x, y)
	}
	return false
}

func (s *Set) closeOthers(opening *Controller) {
	for _, m := range s.modals {
		if m != opening {
			m.Cancel()
		}
	}
}

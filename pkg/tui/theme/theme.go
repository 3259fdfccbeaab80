package theme

import "github.com/charmbracelet/lipgloss/v2"

// Theme centralizes Lip Gloss styles for the Bubble Tea UI.
type Theme struct {
	Header HeaderTheme
	Footer FooterTheme
	Card   CardTheme
	Choice ChoiceTheme
	Modal  ModalTheme
	Flash  FlashTheme
	Stars  StarTheme
	Field  FieldTheme
}

// HeaderTheme styles the brand line and page navigation.
type HeaderTheme struct {
	Brand     lipgloss.Style
	Tab       lipgloss.Style
	ActiveTab lipgloss.Style
}

// FooterTheme groups styles used by the bottom help line.
type FooterTheme struct {
	Help   lipgloss.Style
	Status lipgloss.Style
}

// CardTheme styles project cards in listings.
type CardTheme struct {
	Frame       lipgloss.Style
	Focused     lipgloss.Style
	Title       lipgloss.Style
	Meta        lipgloss.Style
	Tag         lipgloss.Style
	Status      map[string]lipgloss.Style
	NoResults   lipgloss.Style
	ProgressOn  lipgloss.Style
	ProgressOff lipgloss.Style
}

// ChoiceTheme styles option groups: tabs, tiles and chips.
type ChoiceTheme struct {
	Option   lipgloss.Style
	Selected lipgloss.Style
	Cursor   lipgloss.Style
	Chip     lipgloss.Style
	ChipHot  lipgloss.Style
}

// ModalTheme styles centered modal overlays.
type ModalTheme struct {
	Frame lipgloss.Style
	Title lipgloss.Style
	Body  lipgloss.Style
	Label lipgloss.Style
	Error lipgloss.Style
}

// FlashTheme styles transient notices by level.
type FlashTheme struct {
	Info    lipgloss.Style
	Success lipgloss.Style
	Error   lipgloss.Style
}

// StarTheme colors the rating row. Partial stars blend Empty toward Full.
type StarTheme struct {
	FullHex  string
	EmptyHex string
	Label    lipgloss.Style
}

// FieldTheme styles form labels and focus.
type FieldTheme struct {
	Label        lipgloss.Style
	FocusedLabel lipgloss.Style
	Section      lipgloss.Style
}

// Default returns the built-in theme used across the UI.
func Default() Theme {
	primary := lipgloss.Color("212")
	muted := lipgloss.Color("244")

	option := lipgloss.NewStyle().Padding(0, 1).Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240"))
	selected := option.BorderForeground(primary).Foreground(primary).Bold(true)

	return Theme{
		Header: HeaderTheme{
			Brand:     lipgloss.NewStyle().Foreground(primary).Bold(true),
			Tab:       lipgloss.NewStyle().Foreground(muted).Padding(0, 1),
			ActiveTab: lipgloss.NewStyle().Foreground(primary).Bold(true).Underline(true).Padding(0, 1),
		},
		Footer: FooterTheme{
			Help:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			Status: lipgloss.NewStyle().Foreground(muted),
		},
		Card: CardTheme{
			Frame:   lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1),
			Focused: lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(primary).Padding(0, 1),
			Title:   lipgloss.NewStyle().Bold(true),
			Meta:    lipgloss.NewStyle().Foreground(muted),
			Tag:     lipgloss.NewStyle().Foreground(lipgloss.Color("111")),
			Status: map[string]lipgloss.Style{
				"active":    lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
				"completed": lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
				"cancelled": lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Strikethrough(true),
			},
			NoResults:   lipgloss.NewStyle().Foreground(muted).Italic(true).Padding(1, 4),
			ProgressOn:  lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
			ProgressOff: lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
		},
		Choice: ChoiceTheme{
			Option:   option,
			Selected: selected,
			Cursor:   lipgloss.NewStyle().Foreground(primary),
			Chip:     lipgloss.NewStyle().Background(lipgloss.Color("237")).Padding(0, 1),
			ChipHot:  lipgloss.NewStyle().Background(primary).Foreground(lipgloss.Color("0")).Padding(0, 1),
		},
		Modal: ModalTheme{
			Frame: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(primary).
				Padding(1, 2),
			Title: lipgloss.NewStyle().Bold(true),
			Body:  lipgloss.NewStyle(),
			Label: lipgloss.NewStyle().Foreground(muted),
			Error: lipgloss.NewStyle().Foreground(lipgloss.Color("204")),
		},
		Flash: FlashTheme{
			Info:    lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
			Success: lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true),
			Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("204")).Bold(true),
		},
		Stars: StarTheme{
			FullHex:  "#f5b301",
			EmptyHex: "#4a4a4a",
			Label:    lipgloss.NewStyle().Bold(true).MarginLeft(1),
		},
		Field: FieldTheme{
			Label:        lipgloss.NewStyle().Foreground(muted),
			FocusedLabel: lipgloss.NewStyle().Foreground(primary).Bold(true),
			Section:      lipgloss.NewStyle().Bold(true).Underline(true),
		},
	}
}

package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/spf13/cobra"

	"tableflip.dev/fundflow/pkg/catalog"
	"tableflip.dev/fundflow/pkg/modal"
	"tableflip.dev/fundflow/pkg/rating"
	"tableflip.dev/fundflow/pkg/tui/components/choices"
	"tableflip.dev/fundflow/pkg/tui/components/dialog"
	"tableflip.dev/fundflow/pkg/tui/components/eventviewer"
	"tableflip.dev/fundflow/pkg/tui/components/flash"
	"tableflip.dev/fundflow/pkg/tui/components/gallery"
	"tableflip.dev/fundflow/pkg/tui/components/ratingview"
	"tableflip.dev/fundflow/pkg/tui/components/tageditor"
	"tableflip.dev/fundflow/pkg/tui/theme"
	"tableflip.dev/fundflow/pkg/tui/uiutil"
)

type options struct {
	width  int
	height int
}

// harness hosts one component in a frame with the event log underneath.
type harness interface {
	update(tea.Msg) tea.Cmd
	view() string
	init() tea.Cmd
}

func main() {
	var opts options

	rootCmd := &cobra.Command{
		Use:   "testbed",
		Short: "Run one TUI component on its own",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	rootCmd.PersistentFlags().IntVar(&opts.width, "width", 80, "frame width")
	rootCmd.PersistentFlags().IntVar(&opts.height, "height", 16, "frame height")

	th := theme.Default()
	add := func(use, short string, build func() harness) {
		rootCmd.AddCommand(&cobra.Command{
			Use:   use,
			Short: short,
			RunE: func(cmd *cobra.Command, args []string) error {
				return run(opts, build())
			},
		})
	}
	add("rating", "slider, field and stars kept in sync", func() harness { return newRating(th) })
	add("gallery", "auto-advancing carousel", func() harness { return newGallery(th) })
	add("tags", "tag editor", func() harness { return &tagsHarness{m: tageditor.New("tags", th)} })
	add("donate", "donation tiles with a custom amount", func() harness {
		c := choices.New("donate", uiutil.Options([]string{"10", "25", "50", "100"}, false), th,
			choices.WithLayout(choices.Tiles), choices.WithCustomInput("amount"))
		return &choicesHarness{m: c}
	})
	add("dialog", "report dialog", func() harness { return newDialog(th) })

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(opts options, h harness) error {
	m := &testbedModel{opts: opts, h: h, events: eventviewer.NewModel(100)}
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

type testbedModel struct {
	opts   options
	h      harness
	events *eventviewer.Model
}

func (m *testbedModel) Init() tea.Cmd { return m.h.init() }

func (m *testbedModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch v := msg.(type) {
	case tea.WindowSizeMsg:
		m.events.SetSize(v.Width, max(v.Height-m.opts.height-2, 3))
	case tea.KeyMsg:
		m.events.Append(eventviewer.Entry{Source: "key", Summary: v.String()})
		if v.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}
	if e, ok := eventviewer.EntryFor(msg); ok {
		m.events.Append(e)
	}
	return m, m.h.update(msg)
}

func (m *testbedModel) View() (string, *tea.Cursor) {
	frame := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Width(m.opts.width).
		Height(m.opts.height).
		Render(m.h.view())
	return lipgloss.JoinVertical(lipgloss.Left, frame, m.events.View()), nil
}

type ratingHarness struct {
	rv    *ratingview.Model
	pair  *rating.Pair
	flash *flash.Model
}

type memStore struct{ v float64 }

func (s *memStore) Rating() (float64, bool, error) { return s.v, s.v > 0, nil }
func (s *memStore) SetRating(v float64) error      { s.v = v; return nil }

func newRating(th theme.Theme) *ratingHarness {
	h := &ratingHarness{rv: ratingview.New("rating", th), flash: flash.New("flash", th)}
	h.pair = rating.NewPair(&memStore{}, rating.WithDisplay(h.rv), rating.WithNotifier(h.flash))
	h.rv.Bind(h.pair)
	_ = h.pair.Load(7.5)
	return h
}

func (h *ratingHarness) init() tea.Cmd { return h.rv.Focus() }

func (h *ratingHarness) update(msg tea.Msg) tea.Cmd {
	h.flash.Update(msg)
	submit, cmd := h.rv.Update(msg)
	if submit {
		_, _ = h.pair.Submit(context.Background())
	}
	return tea.Batch(cmd, h.flash.Arm())
}

func (h *ratingHarness) view() string { return h.rv.View() + "\n\n" + h.flash.View() }

type galleryHarness struct{ m *gallery.Model }

func newGallery(th theme.Theme) *galleryHarness {
	g := gallery.New("gallery", th)
	g.SetWidth(60)
	var slides []string
	for _, c := range catalog.Sample().Cards {
		slides = append(slides, c.Title+"\n\n"+c.Summary)
	}
	g.SetSlides(slides)
	g.Focus()
	return &galleryHarness{m: g}
}

func (h *galleryHarness) init() tea.Cmd              { return h.m.Start() }
func (h *galleryHarness) update(msg tea.Msg) tea.Cmd { return h.m.Update(msg) }
func (h *galleryHarness) view() string               { return h.m.View() }

type tagsHarness struct{ m *tageditor.Model }

func (h *tagsHarness) init() tea.Cmd              { return h.m.Focus() }
func (h *tagsHarness) update(msg tea.Msg) tea.Cmd { return h.m.Update(msg) }
func (h *tagsHarness) view() string {
	return h.m.View() + "\n\ntags: " + strings.Join(h.m.Tags(), ", ")
}

type choicesHarness struct{ m *choices.Model }

func (h *choicesHarness) init() tea.Cmd { return h.m.Focus() }
func (h *choicesHarness) update(msg tea.Msg) tea.Cmd {
	_, cmd := h.m.Update(msg)
	return cmd
}
func (h *choicesHarness) view() string { return h.m.View() + "\n\nvalue: " + h.m.Value() }

type dialogHarness struct {
	d      *dialog.Model
	flash  *flash.Model
	status string
}

func newDialog(th theme.Theme) *dialogHarness {
	h := &dialogHarness{flash: flash.New("flash", th)}
	ctl := modal.New("report",
		modal.WithTitle("Report Project"),
		modal.WithFields(modal.Field{Name: "reason", Label: "Reason", Choices: modal.ReportReasons}),
		modal.WithPolicy(modal.ReportPolicy),
		modal.WithNotifier(h.flash),
	)
	h.d = dialog.New(ctl, th, "Tell us what is wrong with this project.")
	return h
}

func (h *dialogHarness) init() tea.Cmd { return h.d.Open(modal.Subject{ID: "p1", Title: "Solar Kit"}) }

func (h *dialogHarness) update(msg tea.Msg) tea.Cmd {
	h.flash.Update(msg)
	if key, ok := msg.(tea.KeyMsg); ok && !h.d.IsOpen() && key.String() == "r" {
		return h.d.Open(modal.Subject{ID: "p1", Title: "Solar Kit"})
	}
	res, cmd := h.d.Update(context.Background(), msg)
	switch res {
	case dialog.Confirmed:
		h.status = "confirmed (press r to reopen)"
	case dialog.Cancelled:
		h.status = "cancelled (press r to reopen)"
	}
	return tea.Batch(cmd, h.flash.Arm())
}

func (h *dialogHarness) view() string {
	return h.d.Render(h.status+"\n\n"+h.flash.View(), 76, 14)
}

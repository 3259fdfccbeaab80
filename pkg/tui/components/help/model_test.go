package help

import (
	"regexp"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/fundflow/pkg/tui/events"
	"tableflip.dev/fundflow/pkg/tui/theme"
)

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;:]*[A-Za-z~]`)

func stripANSI(s string) string { return ansiPattern.ReplaceAllString(s, "") }

func TestEverySectionIsParsed(t *testing.T) {
	doc := Parse(helpMarkdown)
	if !strings.HasPrefix(doc.Intro, "# FundFlow") {
		t.Fatalf("unexpected intro %q", doc.Intro)
	}
	have := map[string]bool{}
	for _, s := range doc.Sections {
		have[s.Heading] = true
	}
	for page, heading := range topics {
		if !have[heading] {
			t.Fatalf("page %s points at missing section %q", page, heading)
		}
	}
}

func TestFocusMovesSectionFirst(t *testing.T) {
	doc := Parse("# T\nintro\n## A\na\n## B\nb\n## C\nc\n")
	got := doc.Focus("C")
	if !strings.HasPrefix(got, "# T\nintro\n\n## C\nc") {
		t.Fatalf("focused section not first: %q", got)
	}
	if strings.Index(got, "## A") > strings.Index(got, "## B") {
		t.Fatalf("other sections should keep their order: %q", got)
	}
	if doc.Focus("missing") != doc.Focus("") {
		t.Fatalf("unknown heading should keep the order")
	}
}

func TestOverlayOpensOnPageSection(t *testing.T) {
	m := New(events.PageCreate, theme.Default(), 80, 40)
	if m.Topic() != "Creating a project" {
		t.Fatalf("unexpected topic %q", m.Topic())
	}
	view, _ := m.View()
	plain := stripANSI(view)
	if !strings.Contains(plain, "Help: Creating a project") {
		t.Fatalf("missing title in %q", plain)
	}
	create := strings.Index(plain, "Fill in every field")
	moving := strings.Index(plain, "Clicking outside an open dialog")
	if create < 0 || (moving >= 0 && moving < create) {
		t.Fatalf("create section should come first: %q", plain)
	}
}

func TestHelpClosesOnEsc(t *testing.T) {
	m := New(events.PageHome, theme.Default(), 60, 20)
	next, _ := m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if next != nil {
		t.Fatalf("expected esc to close help")
	}
	next, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if next == nil {
		t.Fatalf("scrolling should keep help open")
	}
}

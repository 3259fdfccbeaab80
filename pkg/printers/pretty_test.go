package printers

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"

	"tableflip.dev/fundflow/pkg/catalog"
)

func newPrinter(t *testing.T, showID bool) (*PrettyPrint, *bytes.Buffer) {
	t.Helper()
	prev := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = prev })
	buf := &bytes.Buffer{}
	return &PrettyPrint{ShowID: showID, Out: buf}, buf
}

func TestCardsEmptyPrintsPlaceholderOnce(t *testing.T) {
	pp, buf := newPrinter(t, false)
	pp.Cards()
	if got := strings.Count(buf.String(), "No projects found matching your criteria."); got != 1 {
		t.Fatalf("expected one placeholder, got %d in %q", got, buf.String())
	}
}

func TestCardsShowsStatusAndIDs(t *testing.T) {
	pp, buf := newPrinter(t, true)
	c := catalog.Card{ID: "p9", Title: "Bee Hotel", Category: "environment", Goal: 200, Raised: 50, Tags: []string{"bees", "garden"}}
	pp.Cards(c)
	out := buf.String()
	for _, want := range []string{"p9", "Bee Hotel", "active", "25%", "bees, garden"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in %q", want, out)
		}
	}
}

func TestTitleWithCountPluralizes(t *testing.T) {
	pp, buf := newPrinter(t, false)
	pp.TitleWithCount("Projects", 1, 1)
	pp.TitleWithCount("Projects", 2, 6)
	out := buf.String()
	if !strings.Contains(out, "Projects - 1 of 1 project\n") {
		t.Fatalf("singular line missing: %q", out)
	}
	if !strings.Contains(out, "Projects - 2 of 6 projects\n") {
		t.Fatalf("plural line missing: %q", out)
	}
}

func TestRatingStars(t *testing.T) {
	pp, buf := newPrinter(t, false)
	pp.Rating(7.5, true)
	out := buf.String()
	if strings.Count(out, "★") != 8 || strings.Count(out, "☆") != 2 {
		t.Fatalf("unexpected stars: %q", out)
	}
	if !strings.Contains(out, "(7.5/10)") {
		t.Fatalf("missing label: %q", out)
	}

	buf.Reset()
	pp.Rating(0, false)
	if !strings.Contains(buf.String(), "no rating saved") {
		t.Fatalf("unexpected output: %q", buf.String())
	}
}

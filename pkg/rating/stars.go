package rating

import (
	"fmt"
	"math"
)

// Stars is the star row for a value: Full filled stars, an optional partial
// star filled to Partial (0 < Partial < 1), then Empty unfilled stars.
type Stars struct {
	Value   float64
	Full    int
	Partial float64
	Empty   int
}

// Render computes the star row for v after clamping.
func Render(v float64) Stars {
	v = Clamp(v)
	full := math.Floor(v)
	return Stars{
		Value:   v,
		Full:    int(full),
		Partial: v - full,
		Empty:   int(Max - math.Ceil(v)),
	}
}

// HasPartial reports whether a clipped star is drawn.
func (s Stars) HasPartial() bool { return s.Partial > 0 }

// PartialWidth is the partial star's fill as a CSS-style percentage.
func (s Stars) PartialWidth() string {
	return Format(math.Round(s.Partial*10000)/100) + "%"
}

// Slots is the number of star glyphs drawn.
func (s Stars) Slots() int {
	n := s.Full + s.Empty
	if s.HasPartial() {
		n++
	}
	return n
}

// Label is the trailing "(v/10)" text.
func (s Stars) Label() string {
	return fmt.Sprintf("(%s/10)", Format(s.Value))
}

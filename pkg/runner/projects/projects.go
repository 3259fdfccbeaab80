// Package projects lists catalog cards on the command line.
package projects

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/manifoldco/promptui"

	"tableflip.dev/fundflow/pkg/catalog"
	"tableflip.dev/fundflow/pkg/filter"
	"tableflip.dev/fundflow/pkg/printers"
)

// Projects prints the cards matching Query, or Tag when set.
type Projects struct {
	Catalog *catalog.Catalog
	Query   filter.Query
	Tag     string
	// Within keeps only active cards with at most this many days left.
	Within      int
	ShowID      bool
	JSON        bool
	Interactive bool
	Out         io.Writer
	// In feeds the interactive prompt; nil reads the terminal.
	In io.ReadCloser
}

// Do runs the listing.
func (p *Projects) Do(ctx context.Context) error {
	if p.Catalog == nil {
		return errors.New("can not list, no catalog")
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	out := p.Out
	if out == nil {
		out = color.Output
	}

	f := filter.New(p.Catalog.Cards)
	f.Apply(p.Query)
	if strings.TrimSpace(p.Tag) != "" {
		f.ApplyTag(p.Tag)
	}
	visible := f.Visible()
	count := f.Count()
	if p.Within > 0 {
		visible = endingWithin(visible, p.Within)
		count = len(visible)
	}

	if p.JSON {
		if visible == nil {
			visible = []catalog.Card{}
		}
		b, err := json.MarshalIndent(visible, "", "  ")
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintln(out, string(b))
		return nil
	}

	pp := printers.PrettyPrint{ShowID: p.ShowID, Out: out}
	if p.Interactive && len(visible) > 0 {
		card, err := p.pick(visible)
		if err != nil {
			return err
		}
		pp.Card(card)
		return nil
	}

	pp.NewLine()
	pp.TitleWithCount("Projects", count, f.Total())
	pp.Cards(visible...)
	return nil
}

func (p *Projects) pick(cards []catalog.Card) (catalog.Card, error) {
	templates := &promptui.SelectTemplates{
		Label:    "{{ . }}?",
		Active:   "➜  {{ .Title | bold }} {{ .Category | cyan }}",
		Inactive: "   {{ .Title }} {{ .Category | cyan }}",
		Selected: "{{ .Title | bold }}",
	}
	searcher := func(input string, index int) bool {
		title := strings.ReplaceAll(strings.ToLower(cards[index].Title), " ", "")
		input = strings.ReplaceAll(strings.ToLower(input), " ", "")
		return strings.Contains(title, input)
	}
	prompt := promptui.Select{
		HideHelp:  true,
		Label:     "Projects",
		Items:     cards,
		Templates: templates,
		Size:      10,
		Searcher:  searcher,
		Stdin:     p.In,
	}
	i, _, err := prompt.Run()
	if err != nil {
		return catalog.Card{}, fmt.Errorf("prompt: %w", err)
	}
	return cards[i], nil
}

func endingWithin(cards []catalog.Card, days int) []catalog.Card {
	var out []catalog.Card
	for _, c := range cards {
		if c.EffectiveStatus() == catalog.StatusActive && c.DaysLeft <= days {
			out = append(out, c)
		}
	}
	return out
}

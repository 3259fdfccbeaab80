package printers

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/fundflow/pkg/catalog"
	"tableflip.dev/fundflow/pkg/intent"
	"tableflip.dev/fundflow/pkg/rating"
)

type PrettyPrint struct {
	ShowID bool
	// Out defaults to color.Output.
	Out io.Writer
}

var (
	spacing = strings.Repeat(" ", len("p00  "))

	statusColors = map[string]*color.Color{
		catalog.StatusActive:    color.New(color.FgGreen),
		catalog.StatusCompleted: color.New(color.FgCyan),
		catalog.StatusCancelled: color.New(color.FgRed, color.Faint),
	}
)

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out == nil {
		return color.Output
	}
	return pp.Out
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.out(), "")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)

	if pp.ShowID {
		_, _ = t.Fprint(pp.out(), spacing)
	}
	_, _ = t.Fprintln(pp.out(), title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count, total int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	if pp.ShowID {
		_, _ = t.Fprint(pp.out(), spacing)
	}
	_, _ = t.Fprint(pp.out(), title)
	_, _ = c.Fprintf(pp.out(), " - %d of %d", count, total)

	switch total {
	case 1:
		_, _ = c.Fprintln(pp.out(), " project")
	default:
		_, _ = c.Fprintln(pp.out(), " projects")
	}
}

// Cards prints one row per card, or the no-results line.
func (pp *PrettyPrint) Cards(cards ...catalog.Card) {
	if len(cards) == 0 {
		f := color.New(color.Faint, color.Italic)
		if pp.ShowID {
			_, _ = f.Fprint(pp.out(), spacing)
		}
		_, _ = f.Fprint(pp.out(), " No projects found matching your criteria.\n\n")
		return
	}

	y := color.New(color.FgHiYellow, color.Italic, color.Faint)
	faint := color.New(color.Faint)

	tbl := uitable.New()
	tbl.Separator = "  "
	for _, c := range cards {
		status := c.EffectiveStatus()
		sc, ok := statusColors[status]
		if !ok {
			sc = color.New()
		}
		row := []interface{}{
			c.Title,
			sc.Sprint(status),
			c.Category,
			fmt.Sprintf("%.0f%%", c.Funded()),
			faint.Sprint(strings.Join(c.Tags, ", ")),
		}
		if pp.ShowID {
			row = append([]interface{}{y.Sprint(c.ID)}, row...)
		}
		tbl.AddRow(row...)
	}
	_, _ = fmt.Fprintln(pp.out(), tbl)
	_, _ = fmt.Fprintln(pp.out(), "")
}

// Card prints the details of one card.
func (pp *PrettyPrint) Card(c catalog.Card) {
	bold := color.New(color.Bold)
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.Wrap = true
	tbl.MaxColWidth = 60
	tbl.AddRow(bold.Sprint("Title"), c.Title)
	tbl.AddRow(bold.Sprint("Creator"), c.Creator)
	tbl.AddRow(bold.Sprint("Category"), c.Category)
	tbl.AddRow(bold.Sprint("Status"), c.EffectiveStatus())
	tbl.AddRow(bold.Sprint("Raised"), fmt.Sprintf("$%.0f of $%.0f (%.0f%%)", c.Raised, c.Goal, c.Funded()))
	tbl.AddRow(bold.Sprint("Backers"), c.Backers)
	tbl.AddRow(bold.Sprint("Days left"), c.DaysLeft)
	tbl.AddRow(bold.Sprint("Tags"), strings.Join(c.Tags, ", "))
	tbl.AddRow(bold.Sprint("Summary"), c.Summary)
	tbl.RightAlign(0)
	_, _ = fmt.Fprintln(pp.out(), tbl)
}

// Rating prints the saved rating as stars.
func (pp *PrettyPrint) Rating(v float64, ok bool) {
	if !ok {
		_, _ = color.New(color.Faint, color.Italic).Fprintln(pp.out(), "no rating saved")
		return
	}
	s := rating.Render(v)
	gold := color.New(color.FgHiYellow)
	empty := color.New(color.Faint)

	b := strings.Builder{}
	b.WriteString(gold.Sprint(strings.Repeat("★", s.Full)))
	if s.Partial > 0 {
		b.WriteString(color.New(color.FgYellow).Sprint("★"))
	}
	b.WriteString(empty.Sprint(strings.Repeat("☆", s.Empty)))
	_, _ = fmt.Fprintf(pp.out(), "%s %s\n", b.String(), s.Label())
}

// Intents prints the outbox, oldest first.
func (pp *PrettyPrint) Intents(all ...intent.Intent) {
	if len(all) == 0 {
		_, _ = color.New(color.Faint, color.Italic).Fprint(pp.out(), " none\n\n")
		return
	}
	faint := color.New(color.Faint)
	tbl := uitable.New()
	tbl.Separator = "  "
	for _, in := range all {
		row := []interface{}{faint.Sprint(in.Created.Format("2006-01-02 15:04")), in.Action, in.Describe()}
		if pp.ShowID {
			row = append([]interface{}{color.New(color.FgHiYellow, color.Faint).Sprint(in.ID)}, row...)
		}
		tbl.AddRow(row...)
	}
	_, _ = fmt.Fprintln(pp.out(), tbl)
}

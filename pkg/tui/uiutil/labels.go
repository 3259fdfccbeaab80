package uiutil

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"tableflip.dev/fundflow/pkg/filter"
	"tableflip.dev/fundflow/pkg/selection"
)

var titler = cases.Title(language.English)

// Label turns an identifier such as "education" into "Education".
func Label(id string) string { return titler.String(id) }

// Options builds selection options from ids, labelled with Label. When all
// is set an "All" option with id filter.All leads the list.
func Options(ids []string, all bool) []selection.Option {
	out := make([]selection.Option, 0, len(ids)+1)
	if all {
		out = append(out, selection.Option{ID: filter.All, Label: "All"})
	}
	for _, id := range ids {
		out = append(out, selection.Option{ID: id, Label: Label(id)})
	}
	return out
}

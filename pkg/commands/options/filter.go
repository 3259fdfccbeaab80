// Package options defines shared flag helpers for CLI commands.
package options

import (
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/fundflow/pkg/filter"
	"tableflip.dev/fundflow/pkg/timeutil"
)

// FilterOptions captures the project listing flags.
type FilterOptions struct {
	Search   string
	Category string
	Status   string
	Tag      string
	Sort     string
	Ending   string
}

// AddFilterArgs wires the listing flags on cmd.
func AddFilterArgs(cmd *cobra.Command, o *FilterOptions) {
	cmd.Flags().StringVarP(&o.Search, "search", "s", "",
		"Match titles or tags containing the term.")
	cmd.Flags().StringVarP(&o.Category, "category", "c", filter.All,
		"Only show this category.")
	cmd.Flags().StringVar(&o.Status, "status", filter.All,
		"Only show projects with this status: active, completed or cancelled.")
	cmd.Flags().StringVarP(&o.Tag, "tag", "t", "",
		"Only show projects with a tag containing this text. Overrides the other filters.")
	cmd.Flags().StringVar(&o.Sort, "sort", "",
		"Order by newest, popular, funded or ending.")
	cmd.Flags().StringVar(&o.Ending, "ending-within", "",
		"Only show active projects ending within a window such as 3d, 2w or 1mo.")
}

// Query converts the flags into a filter query.
func (o *FilterOptions) Query() filter.Query {
	return filter.Query{
		Search:   o.Search,
		Category: o.Category,
		Status:   o.Status,
		Sort:     filter.ParseOrder(o.Sort),
	}
}

// EndingWithin parses --ending-within into days; zero means unset.
func (o *FilterOptions) EndingWithin() (int, error) {
	if strings.TrimSpace(o.Ending) == "" {
		return 0, nil
	}
	days, _, err := timeutil.ParseWindow(o.Ending)
	return days, err
}

package options

import (
	"testing"

	"github.com/spf13/cobra"

	"tableflip.dev/fundflow/pkg/filter"
)

func TestFilterArgsBuildQuery(t *testing.T) {
	o := &FilterOptions{}
	cmd := &cobra.Command{Use: "projects", RunE: func(*cobra.Command, []string) error { return nil }}
	AddFilterArgs(cmd, o)
	if err := cmd.ParseFlags([]string{"--search", "garden", "--sort", "funded", "--ending-within", "2w"}); err != nil {
		t.Fatalf("parse: %v", err)
	}
	q := o.Query()
	if q.Search != "garden" || q.Category != filter.All || q.Status != filter.All || q.Sort != filter.Funded {
		t.Fatalf("unexpected query %+v", q)
	}
	days, err := o.EndingWithin()
	if err != nil || days != 14 {
		t.Fatalf("expected 14 days, got %d %v", days, err)
	}
}

func TestEndingWithinUnset(t *testing.T) {
	o := &FilterOptions{}
	if days, err := o.EndingWithin(); err != nil || days != 0 {
		t.Fatalf("expected unset window, got %d %v", days, err)
	}
	o.Ending = "soon"
	if _, err := o.EndingWithin(); err == nil {
		t.Fatalf("expected error for bad window")
	}
}

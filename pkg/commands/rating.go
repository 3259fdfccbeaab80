package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/fundflow/pkg/runner/rating"
)

func addRating(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "rating",
		Short: "Show or change the saved project rating",
		Example: `
fundflow rating
fundflow rating set 8.5
fundflow rating clear
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			e, err := loadEnv()
			if err != nil {
				return err
			}
			g := rating.Get{Persistence: e.persist}
			return g.Do(cmd.Context())
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "set <value>",
		Short: "Save a rating between 0 and 10",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			e, err := loadEnv()
			if err != nil {
				return err
			}
			s := rating.Set{Value: args[0], Persistence: e.persist}
			return s.Do(cmd.Context())
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Forget the saved rating",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := loadEnv()
			if err != nil {
				return err
			}
			c := rating.Clear{Persistence: e.persist}
			return c.Do(cmd.Context())
		},
	})

	topLevel.AddCommand(cmd)
}

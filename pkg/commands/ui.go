package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/fundflow/pkg/runner/ui"
	"tableflip.dev/fundflow/pkg/tui/app"
)

func addUI(topLevel *cobra.Command) {
	var (
		profile string
		page    string
	)
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "open the text-based user interface",
		Example: `
fundflow ui
fundflow ui --page projects
fundflow ui --profile "Byte Club"
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv()
			if err != nil {
				return err
			}
			i := ui.UI{
				Persistence: e.persist,
				Catalog:     e.catalog,
				Log:         e.log,
				Profile:     profile,
				Page:        page,
			}
			return i.Do(cmd.Context())
		},
	}
	cmd.Flags().StringVar(&profile, "profile", app.DefaultProfile, "Creator name the profile page lists projects for.")
	cmd.Flags().StringVar(&page, "page", "home", "Page to open: home, projects, create, profile, admin or auth.")

	topLevel.AddCommand(cmd)
}

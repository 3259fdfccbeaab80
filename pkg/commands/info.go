package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/fundflow/pkg/runner/info"
)

func addInfo(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Details about the config, catalog and where state is stored.",
		Example: `
fundflow info
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			e, err := loadEnv()
			if err != nil {
				return err
			}
			s := info.Info{
				Config:      e.cfg,
				Persistence: e.persist,
			}
			return s.Do(cmd.Context())
		},
	}

	topLevel.AddCommand(cmd)
}

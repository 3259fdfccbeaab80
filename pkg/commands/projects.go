package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/fundflow/pkg/commands/options"
	"tableflip.dev/fundflow/pkg/runner/projects"
)

func addProjects(topLevel *cobra.Command) {
	fo := &options.FilterOptions{}
	io := &options.InteractiveOptions{}
	var showID bool

	cmd := &cobra.Command{
		Use:     "projects",
		Aliases: []string{"ls"},
		Short:   "List projects, filtered like the browse page",
		Example: `
fundflow projects
fundflow projects --category tech --status active
fundflow projects --search garden --sort funded
fundflow projects --tag water
fundflow projects --ending-within 2w --sort ending
fundflow projects -i
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			e, err := loadEnv()
			if err != nil {
				return output.HandleError(err)
			}
			within, err := fo.EndingWithin()
			if err != nil {
				return output.HandleError(err)
			}
			p := projects.Projects{
				Catalog:     e.catalog,
				Query:       fo.Query(),
				Tag:         fo.Tag,
				Within:      within,
				ShowID:      showID,
				JSON:        output.JSON,
				Interactive: io.Interactive,
			}
			return output.HandleError(p.Do(cmd.Context()))
		},
	}
	options.AddFilterArgs(cmd, fo)
	options.InteractiveArgs(cmd, io)
	options.AddOutputArg(cmd, output)
	cmd.Flags().BoolVarP(&showID, "show-id", "k", false, "Show the ID of each project.")

	_ = cmd.RegisterFlagCompletionFunc("category", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		e, err := loadEnv()
		if err != nil {
			return nil, cobra.ShellCompDirectiveError
		}
		return e.catalog.Categories, cobra.ShellCompDirectiveNoFileComp
	})

	topLevel.AddCommand(cmd)
}

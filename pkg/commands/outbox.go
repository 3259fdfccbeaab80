package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/fundflow/pkg/commands/options"
	"tableflip.dev/fundflow/pkg/intent"
	"tableflip.dev/fundflow/pkg/runner/outbox"
)

func addOutbox(topLevel *cobra.Command) {
	o := outbox.Outbox{}
	cmd := &cobra.Command{
		Use:   "outbox [action]",
		Short: "List the intents the local backend accepted",
		Example: `
fundflow outbox
fundflow outbox donate --json
`,
		Args: cobra.MaximumNArgs(1),
		ValidArgs: []string{
			string(intent.Login), string(intent.Signup), string(intent.SocialLogin), string(intent.Logout),
			string(intent.CreateProject), string(intent.Donate), string(intent.CancelProject),
			string(intent.DeleteAccount), string(intent.ReportProject), string(intent.ReportComment),
			string(intent.AddCategory), string(intent.RateProject), string(intent.OpenProject), string(intent.Search),
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			e, err := loadEnv()
			if err != nil {
				return output.HandleError(err)
			}
			if len(args) == 1 {
				o.Action = args[0]
			}
			o.JSON = output.JSON
			o.Persistence = e.persist
			return output.HandleError(o.Do(cmd.Context()))
		},
	}
	options.AddOutputArg(cmd, output)
	cmd.Flags().BoolVarP(&o.ShowID, "show-id", "k", false, "Show the ID of each intent.")

	topLevel.AddCommand(cmd)
}

package cli

import "github.com/spf13/cobra"

func RootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:     "specdoc",
		Short:   "Specdoc - schema-driven API documentation and diagnostics",
		Version: "1.0.0",

		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	root.AddCommand(DocsCommand(), CheckCommand())

	return root
}

package cli

import "github.com/spf13/cobra"

func RootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:     "oasgen",
		Short:   "oasgen - dereference OpenAPI specs and generate typed code",
		Version: "0.1.0",

		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	root.AddCommand(ResolveCommand(), GenerateCommand())

	return root
}

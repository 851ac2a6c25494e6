package cli

import (
	"github.com/spf13/cobra"

	"github.com/oasgen/oasgen/internal/config"
)

func GenerateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate code from an OpenAPI specification",
	}

	config.BindCommonFlags(cmd)
	cmd.AddCommand(NewGoCmd())

	return cmd
}

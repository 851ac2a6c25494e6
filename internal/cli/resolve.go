package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v4"

	"github.com/oasgen/oasgen/internal/loader"
	"github.com/oasgen/oasgen/internal/resolver"
)

func ResolveCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve [spec]",
		Short: "Print a spec with all $ref pointers dereferenced",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source, _ := cmd.Flags().GetString("spec")
			if source == "" && len(args) > 0 {
				source = args[0]
			}
			if source == "" {
				return fmt.Errorf("spec file is required")
			}

			result, err := loader.Load(source)
			if err != nil {
				return fmt.Errorf("loading spec: %w", err)
			}

			resolved, err := resolver.Resolve(result.Document)
			if err != nil {
				return fmt.Errorf("resolving refs: %w", err)
			}

			out, err := yaml.Marshal(resolved)
			if err != nil {
				return fmt.Errorf("encoding resolved spec: %w", err)
			}

			cmd.Print(string(out))
			return nil
		},
	}

	cmd.Flags().StringP("spec", "s", "", "OpenAPI spec file path or HTTPS URL")

	return cmd
}

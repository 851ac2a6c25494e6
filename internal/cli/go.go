package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/oasgen/oasgen/internal/codegen"
	"github.com/oasgen/oasgen/internal/config"
	"github.com/oasgen/oasgen/internal/loader"
	"github.com/oasgen/oasgen/internal/parser"
	"github.com/oasgen/oasgen/internal/resolver"
)

func NewGoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "go",
		Short: "Generate Go code from an OpenAPI spec",
	}

	flags := cmd.PersistentFlags()
	flags.StringP("output-dir", "o", "", "Output directory for generated Go code")
	flags.StringP("package", "p", "", "Go package name")
	flags.StringSlice("additional-initialisms", nil, "Additional initialisms")

	cmd.AddCommand(newGoTypesCmd())

	return cmd
}

func newGoTypesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "Generate Go type definitions",
		RunE:  runGoGenerate,
	}
}

func runGoGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cmd)
	if err != nil {
		return err
	}

	result, err := loader.Load(cfg.Spec)
	if err != nil {
		return fmt.Errorf("loading spec: %w", err)
	}

	resolved, err := resolver.Resolve(result.Document)
	if err != nil {
		return fmt.Errorf("resolving refs: %w", err)
	}

	spec, err := parser.Parse(resolved)
	if err != nil {
		return fmt.Errorf("parsing spec: %w", err)
	}

	cmd.PrintErrf("Loaded OpenAPI %s\n", spec.Version)
	cmd.PrintErrf("  Paths: %d\n", len(spec.Paths))

	gen, err := codegen.New(cfg)
	if err != nil {
		return fmt.Errorf("creating generator: %w", err)
	}

	outputs, err := gen.Generate(spec)
	if err != nil {
		return fmt.Errorf("generating code: %w", err)
	}

	dryRun, _ := cmd.Flags().GetBool("dry-run")
	if dryRun {
		for _, out := range outputs {
			cmd.Printf("// %s\n%s\n", out.Filename, out.Content)
		}
		return nil
	}

	if err := os.MkdirAll(cfg.Go.OutputDir, 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	for _, out := range outputs {
		path := filepath.Join(cfg.Go.OutputDir, out.Filename)
		if err := os.WriteFile(path, []byte(out.Content), 0644); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
		cmd.PrintErrf("Written: %s\n", path)
	}

	return nil
}

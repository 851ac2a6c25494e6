package config

import (
	"fmt"
	"os"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"
)

type Config struct {
	Spec      string         `koanf:"spec"`
	Templates TemplateConfig `koanf:"templates"`
	Go        GoConfig       `koanf:"go"`
}

type TemplateConfig struct {
	Dir string `koanf:"dir"`
}

type GoConfig struct {
	OutputDir     string        `koanf:"output-dir"`
	Package       string        `koanf:"package"`
	OutputOptions OutputOptions `koanf:"output-options"`
}

type OutputOptions struct {
	AdditionalInitialisms []string `koanf:"additional-initialisms"`
}

// BindCommonFlags binds language-agnostic flags to the generate command.
func BindCommonFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()

	flags.StringP("config", "c", "", "Config file path (default: oasgen.yaml)")
	flags.StringP("spec", "s", "", "OpenAPI spec file path or HTTPS URL")
	flags.String("templates", "", "Custom templates directory")
	flags.Bool("dry-run", false, "Print output without writing files")
}

// Load layers the config file under any flags set on the command line.
func Load(cmd *cobra.Command) (*Config, error) {
	k := koanf.New(".")

	configFile, _ := cmd.Flags().GetString("config")
	if configFile == "" {
		configFile, _ = cmd.PersistentFlags().GetString("config")
	}
	if configFile == "" {
		if _, err := os.Stat("oasgen.yaml"); err == nil {
			configFile = "oasgen.yaml"
		}
	}

	if configFile != "" {
		if err := k.Load(file.Provider(configFile), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	flagsMap := buildFlagsMap(cmd)
	if len(flagsMap) > 0 {
		if err := k.Load(confmap.Provider(flagsMap, "."), nil); err != nil {
			return nil, fmt.Errorf("loading flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func buildFlagsMap(cmd *cobra.Command) map[string]any {
	m := make(map[string]any)

	getString := func(name string) string {
		if v, err := cmd.Flags().GetString(name); err == nil && v != "" {
			return v
		}
		if v, err := cmd.PersistentFlags().GetString(name); err == nil && v != "" {
			return v
		}
		return ""
	}

	getStringSlice := func(name string) []string {
		if v, err := cmd.Flags().GetStringSlice(name); err == nil && len(v) > 0 {
			return v
		}
		if v, err := cmd.PersistentFlags().GetStringSlice(name); err == nil && len(v) > 0 {
			return v
		}
		return nil
	}

	if v := getString("spec"); v != "" {
		m["spec"] = v
	}
	if v := getString("templates"); v != "" {
		m["templates.dir"] = v
	}
	if v := getString("output-dir"); v != "" {
		m["go.output-dir"] = v
	}
	if v := getString("package"); v != "" {
		m["go.package"] = v
	}
	if v := getStringSlice("additional-initialisms"); len(v) > 0 {
		m["go.output-options.additional-initialisms"] = v
	}

	return m
}

func (c *Config) Validate() error {
	if c.Spec == "" {
		return fmt.Errorf("spec file is required")
	}
	if c.Go.Package == "" {
		return fmt.Errorf("package name is required")
	}
	if c.Go.OutputDir == "" {
		return fmt.Errorf("output directory is required")
	}
	return nil
}

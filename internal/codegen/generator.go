package codegen

import (
	"fmt"

	"github.com/oasgen/oasgen/internal/config"
	"github.com/oasgen/oasgen/internal/golang"
	"github.com/oasgen/oasgen/internal/model"
	"github.com/oasgen/oasgen/internal/targets/types"
	"github.com/oasgen/oasgen/internal/templates"
	embeddedtmpl "github.com/oasgen/oasgen/templates"
)

type Generator struct {
	config *config.Config
	engine templates.Engine
}

type Output struct {
	Filename string
	Content  string
}

func New(cfg *config.Config) (*Generator, error) {
	if len(cfg.Go.OutputOptions.AdditionalInitialisms) > 0 {
		golang.SetAdditionalInitialisms(cfg.Go.OutputOptions.AdditionalInitialisms)
	}

	engine, err := templates.NewEngine(embeddedtmpl.FS, cfg.Templates.Dir, golang.TemplateFuncs())
	if err != nil {
		return nil, fmt.Errorf("creating template engine: %w", err)
	}

	return &Generator{
		config: cfg,
		engine: engine,
	}, nil
}

func (g *Generator) Generate(spec *model.Spec) ([]Output, error) {
	target := types.New()
	content, err := target.Generate(g.engine, spec, g.config.Go.Package)
	if err != nil {
		return nil, fmt.Errorf("generating types: %w", err)
	}
	formatted, err := golang.Format([]byte(content))
	if err != nil {
		return nil, fmt.Errorf("formatting types: %w", err)
	}
	return []Output{{
		Filename: "types.go",
		Content:  string(formatted),
	}}, nil
}

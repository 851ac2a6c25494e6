package types

import (
	"sort"

	"github.com/oasgen/oasgen/internal/golang"
	"github.com/oasgen/oasgen/internal/model"
	"github.com/oasgen/oasgen/internal/parser"
	"github.com/oasgen/oasgen/internal/templates"
)

type Target struct{}

func New() *Target {
	return &Target{}
}

func (t *Target) Name() string {
	return "types"
}

// NamedSchema pairs a component schema with its component name.
type NamedSchema struct {
	Name   string
	Schema *model.Schema
}

type templateData struct {
	Package   string
	Schemas   []NamedSchema
	Inline    []golang.InlineSchema
	NeedsTime bool
}

// Generate renders one Go type per named component schema and per inline
// request/response schema.
func (t *Target) Generate(engine templates.Engine, spec *model.Spec, pkg string) (string, error) {
	schemas := componentSchemas(spec)
	inline := golang.CollectInlineSchemas(spec)

	needsTime := false
	for _, s := range schemas {
		if golang.NeedsTimeImport(s.Schema) {
			needsTime = true
			break
		}
	}
	if !needsTime {
		for _, s := range inline {
			if golang.NeedsTimeImport(s.Schema) {
				needsTime = true
				break
			}
		}
	}

	data := templateData{
		Package:   pkg,
		Schemas:   schemas,
		Inline:    inline,
		NeedsTime: needsTime,
	}
	return engine.Execute("go/types.tmpl", data)
}

// componentSchemas types the schemas section of components, sorted by
// name for deterministic output.
func componentSchemas(spec *model.Spec) []NamedSchema {
	raw, _ := spec.Components["schemas"].(map[string]any)
	if len(raw) == 0 {
		return nil
	}

	names := make([]string, 0, len(raw))
	for name := range raw {
		names = append(names, name)
	}
	sort.Strings(names)

	result := make([]NamedSchema, 0, len(names))
	for _, name := range names {
		if m, ok := raw[name].(map[string]any); ok {
			result = append(result, NamedSchema{Name: name, Schema: parser.ParseSchema(m)})
		}
	}
	return result
}

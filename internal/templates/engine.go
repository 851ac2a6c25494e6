// Package templates renders code generation templates, layering user
// overrides on top of the embedded defaults.
package templates

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"text/template"
)

type Engine interface {
	Execute(name string, data any) (string, error)
}

// TextTemplateEngine holds one parsed template set. Templates are named by
// their slash-separated path, e.g. "go/types.tmpl". A file in the override
// directory with the same relative path shadows the embedded template.
type TextTemplateEngine struct {
	set *template.Template
}

func NewEngine(embedded embed.FS, overrideDir string, funcs template.FuncMap) (*TextTemplateEngine, error) {
	set := template.New("").Funcs(funcs)

	if err := parseEmbedded(set, embedded); err != nil {
		return nil, err
	}
	if overrideDir != "" {
		if err := parseOverrides(set, overrideDir); err != nil {
			return nil, err
		}
	}

	return &TextTemplateEngine{set: set}, nil
}

func parseEmbedded(set *template.Template, embedded embed.FS) error {
	err := fs.WalkDir(embedded, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() || !strings.HasSuffix(path, ".tmpl") {
			return err
		}
		content, err := embedded.ReadFile(path)
		if err != nil {
			return err
		}
		_, err = set.New(path).Parse(string(content))
		return err
	})
	if err != nil {
		return fmt.Errorf("loading embedded templates: %w", err)
	}
	return nil
}

func parseOverrides(set *template.Template, dir string) error {
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() || !strings.HasSuffix(path, ".tmpl") {
			return err
		}
		content, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		_, err = set.New(filepath.ToSlash(rel)).Parse(string(content))
		return err
	})
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("loading custom templates from %s: %w", dir, err)
	}
	return nil
}

func (e *TextTemplateEngine) Execute(name string, data any) (string, error) {
	tmpl := e.set.Lookup(name)
	if tmpl == nil {
		return "", fmt.Errorf("template %s not found", name)
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("executing template %s: %w", name, err)
	}
	return buf.String(), nil
}

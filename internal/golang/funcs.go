package golang

import (
	"slices"
	"strings"
	"text/template"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/oasgen/oasgen/internal/model"
)

// toSchemaPtr converts any schema value to a pointer. Templates hand
// schemas around both as *model.Schema and as model.Schema values.
func toSchemaPtr(s any) *model.Schema {
	switch v := s.(type) {
	case *model.Schema:
		return v
	case model.Schema:
		return &v
	default:
		return nil
	}
}

// TemplateFuncs returns the function map available to generation
// templates, embedded and user-supplied alike.
func TemplateFuncs() template.FuncMap {
	titleCaser := cases.Title(language.English)

	return template.FuncMap{
		"pascalCase":    PascalCase,
		"camelCase":     CamelCase,
		"snakeCase":     SnakeCase,
		"title":         titleCaser.String,
		"goName":        ToGoIdentifier,
		"escapeKeyword": EscapeKeyword,
		"goComment":     GoComment,
		"goType": func(s any) string {
			return GoType(toSchemaPtr(s))
		},
		"kind": func(s any) string {
			return toSchemaPtr(s).Kind().String()
		},
		"properties": func(s any) []model.Property {
			return FlattenedProperties(toSchemaPtr(s))
		},
		"isRequired": func(s any, name string) bool {
			return IsRequired(toSchemaPtr(s), name)
		},
		"jsonTag": JSONTag,
	}
}

// FlattenedProperties returns the schema's own properties followed by the
// properties of its allOf members, first occurrence of a name winning.
func FlattenedProperties(s *model.Schema) []model.Property {
	if s == nil {
		return nil
	}
	seen := make(map[string]bool)
	var result []model.Property

	add := func(props []model.Property) {
		for _, prop := range props {
			if seen[prop.Name] {
				continue
			}
			seen[prop.Name] = true
			result = append(result, prop)
		}
	}

	add(s.Properties)
	for _, member := range s.AllOf {
		if member != nil {
			add(member.Properties)
		}
	}
	return result
}

// IsRequired reports whether the named property is required, looking
// through allOf members as well.
func IsRequired(s *model.Schema, name string) bool {
	if s == nil {
		return false
	}
	if slices.Contains(s.Required, name) {
		return true
	}
	for _, member := range s.AllOf {
		if member != nil && slices.Contains(member.Required, name) {
			return true
		}
	}
	return false
}

// JSONTag renders the json struct tag for a property. Optional
// properties get omitempty.
func JSONTag(name string, required bool) string {
	if required {
		return `json:"` + name + `"`
	}
	return `json:"` + name + `,omitempty"`
}

// GoComment renders free-form description text as a Go comment block.
// Empty text renders as nothing.
func GoComment(text string) string {
	text = strings.TrimRight(text, "\n")
	if text == "" {
		return ""
	}
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight("// "+line, " ")
	}
	return strings.Join(lines, "\n")
}

package golang

import (
	"strings"

	"github.com/oasgen/oasgen/internal/model"
)

// GoType maps a schema to the Go type used for a struct field. The
// mapping is driven entirely by the schema's effective kind.
func GoType(s *model.Schema) string {
	switch s.Kind() {
	case model.KindRef:
		return refToTypeName(s.Ref)
	case model.KindString:
		return goStringType(s.Format)
	case model.KindInteger:
		return goIntegerType(s.Format)
	case model.KindNumber:
		return goNumberType(s.Format)
	case model.KindBoolean:
		return "bool"
	case model.KindArray:
		if s.Items == nil {
			return "[]any"
		}
		return "[]" + GoType(s.Items)
	case model.KindObject:
		if ap := s.AdditionalProperties; ap != nil && ap.Schema != nil && len(s.Properties) == 0 {
			return "map[string]" + GoType(ap.Schema)
		}
		if len(s.Properties) == 0 {
			return "map[string]any"
		}
		// Anonymous nested objects are not lifted into named types.
		return "map[string]any"
	case model.KindUnion, model.KindNull, model.KindUnknown:
		return "any"
	default:
		return "any"
	}
}

func goStringType(format string) string {
	switch format {
	case "date-time", "date":
		return "time.Time"
	case "byte", "binary":
		return "[]byte"
	default:
		return "string"
	}
}

func goIntegerType(format string) string {
	switch format {
	case "int32":
		return "int32"
	case "int64":
		return "int64"
	default:
		return "int"
	}
}

func goNumberType(format string) string {
	switch format {
	case "float":
		return "float32"
	default:
		return "float64"
	}
}

// refToTypeName derives a type name from a cycle-marker ref, using the
// pointer's last segment: "#/components/schemas/Pet" becomes "Pet".
func refToTypeName(ref string) string {
	parts := strings.Split(strings.TrimPrefix(ref, "#/"), "/")
	if len(parts) == 0 || parts[len(parts)-1] == "" {
		return "any"
	}
	return ToGoIdentifier(parts[len(parts)-1])
}

// NeedsTimeImport reports whether generating the schema requires the
// time package.
func NeedsTimeImport(s *model.Schema) bool {
	if s == nil {
		return false
	}
	if s.Kind() == model.KindString && (s.Format == "date-time" || s.Format == "date") {
		return true
	}
	for _, prop := range s.Properties {
		if NeedsTimeImport(prop.Schema) {
			return true
		}
	}
	if NeedsTimeImport(s.Items) {
		return true
	}
	for _, list := range [][]*model.Schema{s.AllOf, s.OneOf, s.AnyOf} {
		for _, sub := range list {
			if NeedsTimeImport(sub) {
				return true
			}
		}
	}
	if ap := s.AdditionalProperties; ap != nil && NeedsTimeImport(ap.Schema) {
		return true
	}
	return false
}

package parser

import "github.com/oasgen/oasgen/internal/model"

// ParseSchema builds a typed Schema from one raw schema mapping. Callers
// that keep parts of the document unparsed (request bodies, component
// sections) use this to type individual schemas on demand.
func ParseSchema(raw map[string]any) *model.Schema {
	return parseSchema(raw)
}

// parseSchema maps one schema mapping onto the typed Schema, recursing
// through properties, items, and the composition keywords.
func parseSchema(raw map[string]any) *model.Schema {
	s := &model.Schema{
		Title:       asString(raw["title"]),
		Description: asString(raw["description"]),
		Type:        model.SchemaType(asString(raw["type"])),
		Format:      asString(raw["format"]),
		Nullable:    asBool(raw["nullable"]),
		Enum:        asSeq(raw["enum"]),
		Example:     raw["example"],
		Default:     raw["default"],
		Ref:         asString(raw["$ref"]),
	}

	for _, name := range asSeq(raw["required"]) {
		if str, ok := name.(string); ok {
			s.Required = append(s.Required, str)
		}
	}

	properties := asMap(raw["properties"])
	for _, name := range sortedKeys(properties) {
		if m := asMap(properties[name]); m != nil {
			s.Properties = append(s.Properties, model.Property{
				Name:   name,
				Schema: parseSchema(m),
			})
		}
	}

	if m := asMap(raw["items"]); m != nil {
		s.Items = parseSchema(m)
	}

	s.AllOf = parseSchemaList(raw["allOf"])
	s.OneOf = parseSchemaList(raw["oneOf"])
	s.AnyOf = parseSchemaList(raw["anyOf"])

	if d := asMap(raw["discriminator"]); d != nil {
		s.Discriminator = &model.Discriminator{
			PropertyName: asString(d["propertyName"]),
			Mapping:      asStringMap(d["mapping"]),
		}
	}

	switch ap := raw["additionalProperties"].(type) {
	case bool:
		s.AdditionalProperties = &model.AdditionalProperties{Allowed: ap}
	case map[string]any:
		s.AdditionalProperties = &model.AdditionalProperties{
			Allowed: true,
			Schema:  parseSchema(ap),
		}
	}

	return s
}

func parseSchemaList(raw any) []*model.Schema {
	var result []*model.Schema
	for _, item := range asSeq(raw) {
		if m := asMap(item); m != nil {
			result = append(result, parseSchema(m))
		}
	}
	return result
}

package model

type Schema struct {
	Title       string
	Description string
	Type        SchemaType
	Format      string

	// Object properties, sorted by name.
	Properties []Property
	Required   []string

	// Array items
	Items *Schema

	Enum    []any
	Example any
	Default any

	Nullable bool

	// Composition
	AllOf []*Schema
	OneOf []*Schema
	AnyOf []*Schema

	Discriminator *Discriminator

	// AdditionalProperties captures the boolean-or-schema form of the
	// additionalProperties keyword. Nil means the keyword is absent.
	AdditionalProperties *AdditionalProperties

	// Ref is the original pointer for nodes the resolver left unexpanded
	// (cycle markers). Fully resolved schemas have an empty Ref.
	Ref string
}

type Property struct {
	Name   string
	Schema *Schema
}

type Discriminator struct {
	PropertyName string
	Mapping      map[string]string
}

// AdditionalProperties is either a boolean toggle or a value schema.
// When Schema is non-nil it takes precedence over Allowed.
type AdditionalProperties struct {
	Allowed bool
	Schema  *Schema
}

type SchemaType string

const (
	TypeString  SchemaType = "string"
	TypeNumber  SchemaType = "number"
	TypeInteger SchemaType = "integer"
	TypeBoolean SchemaType = "boolean"
	TypeArray   SchemaType = "array"
	TypeObject  SchemaType = "object"
	TypeNull    SchemaType = "null"
)

// SchemaKind is the single effective classification of a schema used to
// drive code-generation decisions.
type SchemaKind int

const (
	KindUnknown SchemaKind = iota
	KindString
	KindNumber
	KindInteger
	KindBoolean
	KindArray
	KindObject
	KindNull
	KindRef
	KindUnion
)

func (k SchemaKind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindInteger:
		return "integer"
	case KindBoolean:
		return "boolean"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	case KindNull:
		return "null"
	case KindRef:
		return "ref"
	case KindUnion:
		return "union"
	default:
		return "unknown"
	}
}

// Kind computes the effective type of the schema. The precedence is fixed:
// an explicit type always wins; otherwise a ref marker, then allOf (an
// object), then oneOf/anyOf (a union), then bare properties (an object).
// Anything else is untyped.
func (s *Schema) Kind() SchemaKind {
	if s == nil {
		return KindUnknown
	}
	switch s.Type {
	case TypeString:
		return KindString
	case TypeNumber:
		return KindNumber
	case TypeInteger:
		return KindInteger
	case TypeBoolean:
		return KindBoolean
	case TypeArray:
		return KindArray
	case TypeObject:
		return KindObject
	case TypeNull:
		return KindNull
	}
	switch {
	case s.Ref != "":
		return KindRef
	case len(s.AllOf) > 0:
		return KindObject
	case len(s.OneOf) > 0 || len(s.AnyOf) > 0:
		return KindUnion
	case len(s.Properties) > 0:
		return KindObject
	}
	return KindUnknown
}

// IsInlineObject reports whether the schema is an anonymous object defined
// in place: not a ref marker, effectively an object, and carrying at least
// one property. These are the schemas that get synthesized type names.
func (s *Schema) IsInlineObject() bool {
	return s != nil && s.Ref == "" && s.Kind() == KindObject && len(s.Properties) > 0
}

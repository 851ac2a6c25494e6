package model

// Spec is the fully typed, immutable view of a dereferenced OpenAPI 3
// document. It is built exactly once per document and never mutated
// afterwards; code generation consumes it read-only.
type Spec struct {
	// Version is the value of the top-level "openapi" key, e.g. "3.0.3".
	Version string
	Info    map[string]any
	Paths   []Path

	// Top-level sections that code generation does not interpret are
	// carried through unparsed.
	Servers      []any
	Components   map[string]any
	Security     []any
	Tags         []any
	ExternalDocs map[string]any
}

type Path struct {
	// Path is the template string, e.g. "/users/{id}".
	Path       string
	Operations []Operation
	// Parameters are the path-level parameters shared by all operations.
	Parameters []Parameter
}

// VisibleParameters returns the parameters available to a single generated
// function: path-level parameters followed by the operation's own,
// deduplicated by InternalName with the first occurrence winning.
func (p Path) VisibleParameters(op Operation) []Parameter {
	seen := make(map[string]bool, len(p.Parameters)+len(op.Parameters))
	var result []Parameter
	for _, param := range p.Parameters {
		if seen[param.InternalName] {
			continue
		}
		seen[param.InternalName] = true
		result = append(result, param)
	}
	for _, param := range op.Parameters {
		if seen[param.InternalName] {
			continue
		}
		seen[param.InternalName] = true
		result = append(result, param)
	}
	return result
}

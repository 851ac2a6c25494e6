package golang

import (
	"strings"

	"github.com/oasgen/oasgen/internal/model"
	"github.com/oasgen/oasgen/internal/parser"
)

// InlineSchema is an anonymous object schema found in a request or
// response body, paired with the type name synthesized for it. Code
// generation emits one named type per entry.
type InlineSchema struct {
	Name   string
	Path   string
	Method model.Method
	// Status is the response status code; empty for request bodies.
	Status string
	Schema *model.Schema
}

// CollectInlineSchemas walks every operation and names the inline object
// schemas of its JSON request body and its 2xx JSON responses. A schema
// qualifies when it is defined in place (no ref marker), is effectively
// an object, and has at least one property.
//
// Names are deterministic: PascalCase of the operation id plus a
// "Request" or "Response" suffix, with the status code appended for
// non-200 2xx responses. Operations without an id fall back to a name
// built from the method and path segments. Uniqueness per (path, method,
// status) follows from the construction; colliding operation ids are the
// document author's problem, not handled here.
func CollectInlineSchemas(spec *model.Spec) []InlineSchema {
	var result []InlineSchema

	for _, path := range spec.Paths {
		for _, op := range path.Operations {
			base := operationTypeName(op)

			if schema := requestBodyJSONSchema(op.RequestBody); schema.IsInlineObject() {
				result = append(result, InlineSchema{
					Name:   base + "Request",
					Path:   path.Path,
					Method: op.Method,
					Schema: schema,
				})
			}

			for _, resp := range op.Responses {
				if !isSuccess(resp.StatusCode) {
					continue
				}
				content := resp.JSONContent()
				if content == nil || !content.Schema.IsInlineObject() {
					continue
				}
				suffix := "Response"
				if resp.StatusCode != "200" {
					suffix += resp.StatusCode
				}
				result = append(result, InlineSchema{
					Name:   base + suffix,
					Path:   path.Path,
					Method: op.Method,
					Status: resp.StatusCode,
					Schema: content.Schema,
				})
			}
		}
	}

	return result
}

// operationTypeName returns the PascalCase base name for types derived
// from an operation: the operation id when present, otherwise the method
// followed by the path segments ("POST /users/{id}/pets" becomes
// "PostUsersIDPets").
func operationTypeName(op model.Operation) string {
	if op.ID != "" {
		return ToGoIdentifier(op.ID)
	}
	name := capitalize(strings.ToLower(string(op.Method)))
	for _, segment := range strings.Split(op.Path, "/") {
		segment = strings.Trim(segment, "{}")
		if segment == "" {
			continue
		}
		name += ToGoIdentifier(segment)
	}
	return name
}

// requestBodyJSONSchema digs the application/json schema out of a raw
// request body mapping, typed through the schema parser.
func requestBodyJSONSchema(body map[string]any) *model.Schema {
	content, _ := body["content"].(map[string]any)
	mediaType, _ := content["application/json"].(map[string]any)
	raw, _ := mediaType["schema"].(map[string]any)
	if raw == nil {
		return nil
	}
	return parser.ParseSchema(raw)
}

func isSuccess(code string) bool {
	return len(code) == 3 && code[0] == '2'
}

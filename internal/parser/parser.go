// Package parser builds the typed specification model from a
// dereferenced OpenAPI document tree.
//
// Parse assumes its input has already been through resolver.Resolve; it
// performs no reference resolution and no validation beyond the keys it
// needs to build the model.
package parser

import (
	"fmt"
	"strings"

	"github.com/oasgen/oasgen/internal/model"
)

// Parse builds a Spec from a resolved document.
func Parse(doc map[string]any) (*model.Spec, error) {
	version := asString(doc["openapi"])
	if version == "" {
		return nil, fmt.Errorf(`missing or invalid top-level "openapi" key`)
	}

	spec := &model.Spec{
		Version:      version,
		Info:         asMap(doc["info"]),
		Servers:      asSeq(doc["servers"]),
		Components:   asMap(doc["components"]),
		Security:     asSeq(doc["security"]),
		Tags:         asSeq(doc["tags"]),
		ExternalDocs: asMap(doc["externalDocs"]),
	}

	paths := asMap(doc["paths"])
	for _, template := range sortedKeys(paths) {
		item := asMap(paths[template])
		if item == nil {
			continue
		}
		spec.Paths = append(spec.Paths, parsePath(template, item))
	}

	return spec, nil
}

func parsePath(template string, item map[string]any) model.Path {
	path := model.Path{Path: template}

	for _, raw := range asSeq(item["parameters"]) {
		if m := asMap(raw); m != nil {
			path.Parameters = append(path.Parameters, parseParameter(m))
		}
	}

	// Operations follow the canonical method table, not document order.
	for _, method := range model.CanonicalMethods {
		raw := asMap(item[strings.ToLower(string(method))])
		if raw == nil {
			continue
		}
		path.Operations = append(path.Operations, parseOperation(method, template, raw))
	}

	return path
}

func parseOperation(method model.Method, template string, raw map[string]any) model.Operation {
	op := model.Operation{
		ID:          asString(raw["operationId"]),
		Method:      method,
		Path:        template,
		Summary:     asString(raw["summary"]),
		Description: asString(raw["description"]),
		Deprecated:  asBool(raw["deprecated"]),
		RequestBody: asMap(raw["requestBody"]),
		Security:    asSeq(raw["security"]),
	}

	for _, tag := range asSeq(raw["tags"]) {
		if s, ok := tag.(string); ok {
			op.Tags = append(op.Tags, s)
		}
	}

	for _, p := range asSeq(raw["parameters"]) {
		if m := asMap(p); m != nil {
			op.Parameters = append(op.Parameters, parseParameter(m))
		}
	}

	responses := asMap(raw["responses"])
	for _, code := range sortedKeys(responses) {
		if m := asMap(responses[code]); m != nil {
			op.Responses = append(op.Responses, parseResponse(code, m))
		}
	}

	return op
}

func parseParameter(raw map[string]any) model.Parameter {
	name := asString(raw["name"])
	param := model.Parameter{
		Name:         name,
		InternalName: InternalName(name),
		In:           model.ParameterLocation(asString(raw["in"])),
		Description:  asString(raw["description"]),
		Style:        asString(raw["style"]),
		Content:      asMap(raw["content"]),

		Required:        asBool(raw["required"]),
		Deprecated:      asBool(raw["deprecated"]),
		Explode:         asBool(raw["explode"]),
		AllowReserved:   asBool(raw["allowReserved"]),
		AllowEmptyValue: asBool(raw["allowEmptyValue"]),
	}

	if m := asMap(raw["schema"]); m != nil {
		param.Schema = parseSchema(m)
	}

	// A single "example" and the keyed "examples" mapping both feed the
	// flat example list; the mapping's entries are added in key order.
	if example, ok := raw["example"]; ok {
		param.Examples = append(param.Examples, example)
	}
	examples := asMap(raw["examples"])
	for _, key := range sortedKeys(examples) {
		param.Examples = append(param.Examples, examples[key])
	}

	return param
}

func parseResponse(code string, raw map[string]any) model.Response {
	resp := model.Response{
		StatusCode:  code,
		Description: asString(raw["description"]),
		Headers:     asMap(raw["headers"]),
		Links:       asMap(raw["links"]),
	}

	content := asMap(raw["content"])
	for _, mediaType := range sortedKeys(content) {
		m := asMap(content[mediaType])
		if m == nil {
			continue
		}
		mtc := model.MediaTypeContent{
			MediaType: mediaType,
			Examples:  asMap(m["examples"]),
		}
		if sm := asMap(m["schema"]); sm != nil {
			mtc.Schema = parseSchema(sm)
		}
		resp.Content = append(resp.Content, mtc)
	}

	return resp
}

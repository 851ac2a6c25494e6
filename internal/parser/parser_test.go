package parser

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oasgen/oasgen/internal/model"
	"github.com/oasgen/oasgen/internal/resolver"
)

func TestParseResolvedDocument(t *testing.T) {
	doc := map[string]any{
		"openapi": "3.0.3",
		"info":    map[string]any{"title": "Users", "version": "1.0.0"},
		"paths": map[string]any{
			"/users": map[string]any{
				"parameters": []any{
					map[string]any{"$ref": "#/components/parameters/Query"},
				},
			},
		},
		"components": map[string]any{
			"parameters": map[string]any{
				"Query": map[string]any{"in": "query", "name": "q"},
			},
		},
	}

	resolved, err := resolver.Resolve(doc)
	require.NoError(t, err)

	spec, err := Parse(resolved)
	require.NoError(t, err)
	require.Equal(t, "3.0.3", spec.Version)
	require.Equal(t, map[string]any{"title": "Users", "version": "1.0.0"}, spec.Info)

	require.Len(t, spec.Paths, 1)
	path := spec.Paths[0]
	require.Equal(t, "/users", path.Path)
	require.Empty(t, path.Operations)
	require.Equal(t, []model.Parameter{{
		Name:         "q",
		InternalName: "q",
		In:           model.LocationQuery,
	}}, path.Parameters)
}

func TestParseMissingVersion(t *testing.T) {
	_, err := Parse(map[string]any{"paths": map[string]any{}})
	require.ErrorContains(t, err, `"openapi"`)
}

func TestParseMethodOrdering(t *testing.T) {
	// Methods come out in the canonical table order regardless of how the
	// document lists them; unknown keys are dropped.
	doc := map[string]any{
		"openapi": "3.0.3",
		"paths": map[string]any{
			"/things": map[string]any{
				"delete":  map[string]any{"operationId": "deleteThing"},
				"get":     map[string]any{"operationId": "getThing"},
				"post":    map[string]any{"operationId": "createThing"},
				"subscribe": map[string]any{
					"operationId": "notAMethod",
				},
				"summary": "not an operation",
			},
		},
	}

	spec, err := Parse(doc)
	require.NoError(t, err)
	require.Len(t, spec.Paths, 1)

	var methods []model.Method
	var ids []string
	for _, op := range spec.Paths[0].Operations {
		methods = append(methods, op.Method)
		ids = append(ids, op.ID)
	}
	require.Equal(t, []model.Method{model.MethodGet, model.MethodPost, model.MethodDelete}, methods)
	require.Equal(t, []string{"getThing", "createThing", "deleteThing"}, ids)
}

func TestParseOperation(t *testing.T) {
	doc := map[string]any{
		"openapi": "3.0.3",
		"paths": map[string]any{
			"/pets/{petId}": map[string]any{
				"get": map[string]any{
					"operationId": "getPet",
					"summary":     "Fetch one pet",
					"description": "Returns a single pet by id.",
					"deprecated":  true,
					"tags":        []any{"pets", "read"},
					"security":    []any{map[string]any{"api_key": []any{}}},
					"parameters": []any{
						map[string]any{
							"name":     "petId",
							"in":       "path",
							"required": true,
							"schema":   map[string]any{"type": "integer", "format": "int64"},
						},
						map[string]any{
							"name":            "verbose",
							"in":              "query",
							"explode":         true,
							"allowReserved":   true,
							"allowEmptyValue": true,
							"style":           "form",
							"example":         true,
						},
					},
					"responses": map[string]any{
						"404": map[string]any{"description": "not found"},
						"200": map[string]any{
							"description": "ok",
							"headers": map[string]any{
								"X-RateLimit": map[string]any{"schema": map[string]any{"type": "integer"}},
							},
							"content": map[string]any{
								"text/plain": map[string]any{
									"schema": map[string]any{"type": "string"},
								},
								"application/json": map[string]any{
									"schema": map[string]any{
										"type":       "object",
										"properties": map[string]any{"name": map[string]any{"type": "string"}},
									},
									"examples": map[string]any{"default": map[string]any{"value": "Rex"}},
								},
							},
						},
					},
				},
			},
		},
	}

	spec, err := Parse(doc)
	require.NoError(t, err)
	require.Len(t, spec.Paths, 1)
	require.Len(t, spec.Paths[0].Operations, 1)

	op := spec.Paths[0].Operations[0]
	require.Equal(t, "getPet", op.ID)
	require.Equal(t, model.MethodGet, op.Method)
	require.Equal(t, "/pets/{petId}", op.Path)
	require.Equal(t, "Fetch one pet", op.Summary)
	require.True(t, op.Deprecated)
	require.Equal(t, []string{"pets", "read"}, op.Tags)
	require.Len(t, op.Security, 1)

	require.Len(t, op.Parameters, 2)
	petID := op.Parameters[0]
	require.Equal(t, "petId", petID.Name)
	require.Equal(t, "pet_id", petID.InternalName)
	require.Equal(t, model.LocationPath, petID.In)
	require.True(t, petID.Required)
	require.Equal(t, model.TypeInteger, petID.Schema.Type)
	require.Equal(t, "int64", petID.Schema.Format)

	verbose := op.Parameters[1]
	require.True(t, verbose.Explode)
	require.True(t, verbose.AllowReserved)
	require.True(t, verbose.AllowEmptyValue)
	require.Equal(t, "form", verbose.Style)
	require.Equal(t, []any{true}, verbose.Examples)

	// Responses are sorted by status code, content by media type.
	require.Len(t, op.Responses, 2)
	ok := op.Responses[0]
	require.Equal(t, "200", ok.StatusCode)
	require.Contains(t, ok.Headers, "X-RateLimit")
	require.Len(t, ok.Content, 2)
	require.Equal(t, "application/json", ok.Content[0].MediaType)
	require.Equal(t, model.KindObject, ok.Content[0].Schema.Kind())
	require.Contains(t, ok.Content[0].Examples, "default")
	require.Equal(t, "text/plain", ok.Content[1].MediaType)

	require.Equal(t, "404", op.Responses[1].StatusCode)
	require.Equal(t, "not found", op.Responses[1].Description)
}

func TestParsePassthroughSections(t *testing.T) {
	doc := map[string]any{
		"openapi":      "3.1.0",
		"servers":      []any{map[string]any{"url": "https://api.example.com"}},
		"security":     []any{map[string]any{"bearer": []any{}}},
		"tags":         []any{map[string]any{"name": "pets"}},
		"externalDocs": map[string]any{"url": "https://docs.example.com"},
		"components": map[string]any{
			"schemas": map[string]any{"Pet": map[string]any{"type": "object"}},
		},
	}

	spec, err := Parse(doc)
	require.NoError(t, err)
	require.Len(t, spec.Servers, 1)
	require.Len(t, spec.Security, 1)
	require.Len(t, spec.Tags, 1)
	require.Equal(t, "https://docs.example.com", spec.ExternalDocs["url"])
	require.Contains(t, spec.Components, "schemas")
}

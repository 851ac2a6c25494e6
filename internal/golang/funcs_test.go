package golang

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oasgen/oasgen/internal/model"
)

func TestFlattenedProperties(t *testing.T) {
	s := &model.Schema{
		Properties: []model.Property{
			{Name: "id", Schema: &model.Schema{Type: model.TypeString}},
		},
		AllOf: []*model.Schema{
			{Properties: []model.Property{
				// Shadowed by the schema's own property.
				{Name: "id", Schema: &model.Schema{Type: model.TypeInteger}},
				{Name: "name", Schema: &model.Schema{Type: model.TypeString}},
			}},
			nil,
			{Properties: []model.Property{
				{Name: "age", Schema: &model.Schema{Type: model.TypeInteger}},
			}},
		},
	}

	props := FlattenedProperties(s)
	require.Len(t, props, 3)
	require.Equal(t, "id", props[0].Name)
	require.Equal(t, model.TypeString, props[0].Schema.Type)
	require.Equal(t, "name", props[1].Name)
	require.Equal(t, "age", props[2].Name)

	require.Nil(t, FlattenedProperties(nil))
}

func TestIsRequired(t *testing.T) {
	s := &model.Schema{
		Required: []string{"id"},
		AllOf: []*model.Schema{
			{Required: []string{"name"}},
			nil,
		},
	}

	require.True(t, IsRequired(s, "id"))
	require.True(t, IsRequired(s, "name"))
	require.False(t, IsRequired(s, "age"))
	require.False(t, IsRequired(nil, "id"))
}

func TestJSONTag(t *testing.T) {
	require.Equal(t, `json:"id"`, JSONTag("id", true))
	require.Equal(t, `json:"name,omitempty"`, JSONTag("name", false))
}

func TestGoComment(t *testing.T) {
	require.Equal(t, "", GoComment(""))
	require.Equal(t, "// A pet.", GoComment("A pet.\n"))
	require.Equal(t, "// line one\n// line two", GoComment("line one\nline two"))
	require.Equal(t, "// line one\n//\n// line two", GoComment("line one\n\nline two"))
}

func TestTemplateFuncs(t *testing.T) {
	funcs := TemplateFuncs()

	goType := funcs["goType"].(func(any) string)
	require.Equal(t, "string", goType(&model.Schema{Type: model.TypeString}))
	require.Equal(t, "string", goType(model.Schema{Type: model.TypeString}))
	require.Equal(t, "any", goType("not a schema"))

	kind := funcs["kind"].(func(any) string)
	require.Equal(t, "object", kind(&model.Schema{Type: model.TypeObject}))

	title := funcs["title"].(func(string) string)
	require.Equal(t, "Pet Store", title("pet store"))
}

package loader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeSpec(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadYAML(t *testing.T) {
	path := writeSpec(t, "spec.yaml", `
openapi: 3.0.3
info:
  title: Pets
  version: 1.0.0
paths: {}
`)

	result, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, path, result.Source)
	require.Equal(t, "3.0.3", result.Version)
	require.Equal(t, "Pets", result.Document["info"].(map[string]any)["title"])
	require.NotEmpty(t, result.Raw)
}

func TestLoadJSON(t *testing.T) {
	path := writeSpec(t, "spec.json", `{
  "openapi": "3.1.0",
  "info": {"title": "Pets", "version": "1.0.0"},
  "paths": {}
}`)

	result, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "3.1.0", result.Version)
}

func TestLoadUnsupportedVersion(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"swagger 2", "swagger: \"2.0\"\ninfo: {}\n"},
		{"openapi 2", "openapi: 2.0.0\n"},
		{"missing version", "info: {}\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeSpec(t, "spec.yaml", tt.content))
			require.ErrorContains(t, err, "unsupported OpenAPI version")
		})
	}
}

func TestLoadRejectsInsecureURL(t *testing.T) {
	_, err := Load("http://example.com/spec.yaml")
	require.ErrorContains(t, err, "insecure http")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.ErrorContains(t, err, "reading spec")
}

func TestLoadMalformedDocument(t *testing.T) {
	_, err := Load(writeSpec(t, "spec.yaml", "openapi: [\n"))
	require.ErrorContains(t, err, "decoding spec")
}

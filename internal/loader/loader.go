// Package loader fetches and decodes OpenAPI documents into the generic
// tree consumed by the resolver.
package loader

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"go.yaml.in/yaml/v4"
)

// MaxDocumentSize caps how much input is read from a file or URL, keeping
// a hostile or misconfigured source from exhausting memory.
const MaxDocumentSize = 10 * 1024 * 1024

type Result struct {
	// Source is the file path or URL the document was read from.
	Source string
	// Version is the top-level "openapi" value.
	Version string
	// Document is the decoded generic tree.
	Document map[string]any
	// Raw is the undecoded input.
	Raw []byte
}

// Load reads an OpenAPI document from a local file or an HTTPS URL and
// decodes it. JSON input decodes through the YAML parser as well.
func Load(source string) (*Result, error) {
	var data []byte
	var err error
	switch {
	case strings.HasPrefix(source, "https://"):
		data, err = fetch(source)
	case strings.HasPrefix(source, "http://"):
		return nil, fmt.Errorf("insecure http URLs are not supported: %s", source)
	default:
		data, err = os.ReadFile(source)
	}
	if err != nil {
		return nil, fmt.Errorf("reading spec: %w", err)
	}
	if len(data) > MaxDocumentSize {
		return nil, fmt.Errorf("spec %s exceeds maximum size (%d bytes)", source, MaxDocumentSize)
	}

	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decoding spec: %w", err)
	}

	version, _ := doc["openapi"].(string)
	if !strings.HasPrefix(version, "3.") {
		return nil, fmt.Errorf("unsupported OpenAPI version: %q (only 3.x supported)", version)
	}

	return &Result{
		Source:   source,
		Version:  version,
		Document: doc,
		Raw:      data,
	}, nil
}

func fetch(url string) ([]byte, error) {
	resp, err := http.Get(url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching %s: unexpected status %s", url, resp.Status)
	}
	return io.ReadAll(io.LimitReader(resp.Body, MaxDocumentSize+1))
}

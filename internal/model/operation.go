package model

type Operation struct {
	ID          string
	Method      Method
	Path        string
	Summary     string
	Description string
	Tags        []string
	// Parameters preserves the document order of the operation's own
	// parameter list. Path-level parameters live on Path.
	Parameters []Parameter
	Responses  []Response
	// RequestBody and Security are carried through unparsed.
	RequestBody map[string]any
	Security    []any
	Deprecated  bool
}

type Method string

const (
	MethodGet     Method = "GET"
	MethodPut     Method = "PUT"
	MethodPost    Method = "POST"
	MethodDelete  Method = "DELETE"
	MethodOptions Method = "OPTIONS"
	MethodHead    Method = "HEAD"
	MethodPatch   Method = "PATCH"
	MethodTrace   Method = "TRACE"
)

// CanonicalMethods is the fixed ordering of operations under a path.
// Operations always appear in this order regardless of document order;
// unrecognized method keys under a path are dropped.
var CanonicalMethods = []Method{
	MethodGet,
	MethodPut,
	MethodPost,
	MethodDelete,
	MethodOptions,
	MethodHead,
	MethodPatch,
	MethodTrace,
}

type ParameterLocation string

const (
	LocationPath   ParameterLocation = "path"
	LocationQuery  ParameterLocation = "query"
	LocationHeader ParameterLocation = "header"
	LocationCookie ParameterLocation = "cookie"
)

type Parameter struct {
	// Name is the parameter name exactly as it appears in the document.
	Name string
	// InternalName is Name normalized into a safe generated identifier.
	// The normalization pipeline lives in the parser package.
	InternalName string
	In           ParameterLocation
	Description  string
	Schema       *Schema
	// Content is carried through unparsed (content-style parameters).
	Content map[string]any
	Style   string

	Required        bool
	Deprecated      bool
	Explode         bool
	AllowReserved   bool
	AllowEmptyValue bool

	Examples []any
}

type Response struct {
	StatusCode  string
	Description string
	Content     []MediaTypeContent
	// Headers and Links are carried through unparsed.
	Headers map[string]any
	Links   map[string]any
}

// MediaTypeContent pairs one media type of a request or response body with
// its schema. Content slices are sorted by media type so generated output
// is deterministic.
type MediaTypeContent struct {
	MediaType string
	Schema    *Schema
	Examples  map[string]any
}

// JSONContent returns the application/json entry of a response body, or
// nil if it has none.
func (r Response) JSONContent() *MediaTypeContent {
	for i := range r.Content {
		if r.Content[i].MediaType == "application/json" {
			return &r.Content[i]
		}
	}
	return nil
}

// Package resolver dereferences $ref pointers in a decoded OpenAPI
// document tree.
//
// Input and output are generic trees as produced by yaml unmarshaling:
// map[string]any mappings, []any sequences, and scalar leaves. Resolve
// builds a new tree and never mutates its input; on failure no partial
// result is returned.
//
// Circular references are not an error. When expanding a reference would
// re-enter a reference that is already being expanded, the $ref mapping is
// left in place as a cycle marker. For cycles longer than two nodes the
// marker lands on the first node whose expansion is re-entered.
package resolver

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	// maxDepth bounds recursion so pathologically nested documents fail
	// with an error instead of exhausting the stack. Long (but sane)
	// reference chains stay well below this.
	maxDepth = 1000

	// Expansion results larger than these thresholds are not cached, to
	// bound memory held by the cache when documents contain huge schema
	// trees. Scalars and small structures are always cached.
	maxCachedMapKeys = 100
	maxCachedSeqLen  = 50
)

// resolver carries the per-call state of one Resolve invocation: the root
// document for pointer lookups, the set of references currently being
// expanded, and a cache of completed expansions. All three are created
// fresh for each call and discarded when it returns.
type resolver struct {
	root     map[string]any
	visiting map[string]struct{}
	cache    map[string]any
}

// Resolve returns a copy of doc in which every reachable $ref mapping has
// been replaced by the content its pointer addresses, with nested
// references inside the target expanded as well. Only references that
// participate in a cycle remain as $ref markers.
func Resolve(doc map[string]any) (map[string]any, error) {
	r := &resolver{
		root:     doc,
		visiting: make(map[string]struct{}),
		cache:    make(map[string]any),
	}
	resolved, err := r.resolveNode(doc, 0)
	if err != nil {
		return nil, err
	}
	out, ok := resolved.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("resolved document is not a mapping (got %T)", resolved)
	}
	return out, nil
}

func (r *resolver) resolveNode(node any, depth int) (any, error) {
	if depth > maxDepth {
		return nil, &LimitError{Resource: "depth", Limit: maxDepth}
	}

	switch v := node.(type) {
	case map[string]any:
		if ref, ok := refTarget(v); ok {
			return r.resolveRef(v, ref, depth)
		}
		out := make(map[string]any, len(v))
		for key, val := range v {
			resolved, err := r.resolveNode(val, depth+1)
			if err != nil {
				return nil, err
			}
			out[key] = resolved
		}
		return out, nil

	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			resolved, err := r.resolveNode(item, depth+1)
			if err != nil {
				return nil, err
			}
			out[i] = resolved
		}
		return out, nil

	default:
		// Scalar leaves pass through unchanged.
		return v, nil
	}
}

// resolveRef expands a single $ref mapping. The visiting set breaks
// cycles; the cache short-circuits repeated expansion of the same pointer.
func (r *resolver) resolveRef(node map[string]any, ref string, depth int) (any, error) {
	if _, ok := r.visiting[ref]; ok {
		// Cycle: return the unexpanded $ref mapping. Copied so the
		// output tree shares no mutable structure with the input.
		marker := make(map[string]any, len(node))
		for key, val := range node {
			marker[key] = val
		}
		return marker, nil
	}

	if cached, ok := r.cache[ref]; ok {
		return cached, nil
	}

	target, err := r.pointer(ref)
	if err != nil {
		return nil, err
	}

	r.visiting[ref] = struct{}{}
	resolved, err := r.resolveNode(target, depth+1)
	delete(r.visiting, ref)
	if err != nil {
		return nil, err
	}

	if cacheable(resolved) {
		r.cache[ref] = resolved
	}
	return resolved, nil
}

// pointer resolves one fragment-only JSON Pointer ("#/seg1/seg2/...")
// against the root document. Tokens are unescaped per RFC 6901 before
// being used as mapping keys or sequence indices.
func (r *resolver) pointer(ref string) (any, error) {
	if !strings.HasPrefix(ref, "#/") {
		return nil, &ReferenceError{Ref: ref, Unsupported: true}
	}

	current := any(r.root)
	for _, token := range strings.Split(strings.TrimPrefix(ref, "#/"), "/") {
		token = unescapePointerToken(token)

		switch v := current.(type) {
		case map[string]any:
			next, ok := v[token]
			if !ok {
				return nil, &ReferenceError{Ref: ref, Message: fmt.Sprintf("missing key %q", token)}
			}
			current = next

		case []any:
			index, err := strconv.Atoi(token)
			if err != nil || index < 0 || index >= len(v) {
				return nil, &ReferenceError{Ref: ref, Message: fmt.Sprintf("invalid sequence index %q", token)}
			}
			current = v[index]

		default:
			// Indexing into a scalar is reported identically to a
			// missing key.
			return nil, &ReferenceError{Ref: ref, Message: fmt.Sprintf("cannot traverse into %T", v)}
		}
	}
	return current, nil
}

// refTarget returns the pointer string when the mapping is a $ref node.
func refTarget(m map[string]any) (string, bool) {
	ref, ok := m["$ref"].(string)
	return ref, ok
}

// cacheable reports whether an expansion result is small enough to cache.
func cacheable(node any) bool {
	switch v := node.(type) {
	case map[string]any:
		return len(v) <= maxCachedMapKeys
	case []any:
		return len(v) <= maxCachedSeqLen
	default:
		return true
	}
}

// unescapePointerToken unescapes JSON Pointer tokens per RFC 6901:
// ~1 represents / and ~0 represents ~.
func unescapePointerToken(token string) string {
	token = strings.ReplaceAll(token, "~1", "/")
	token = strings.ReplaceAll(token, "~0", "~")
	return token
}

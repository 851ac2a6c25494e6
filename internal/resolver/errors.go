package resolver

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
var (
	// ErrNotFound indicates a $ref pointed at a location that does not
	// exist in the document. Pointers that index into non-traversable
	// branches are reported the same way.
	ErrNotFound = errors.New("reference not found")

	// ErrUnsupportedRef indicates a $ref value that is not a
	// same-document fragment pointer ("#/...").
	ErrUnsupportedRef = errors.New("unsupported reference format")

	// ErrLimit indicates a resource limit was exceeded during resolution.
	ErrLimit = errors.New("resource limit exceeded")
)

// ReferenceError represents a failure to resolve a single $ref.
type ReferenceError struct {
	// Ref is the full reference string that failed to resolve.
	Ref string
	// Unsupported is true when the reference format itself is rejected,
	// false when the target could not be found.
	Unsupported bool
	// Message provides additional context about the failure.
	Message string
}

func (e *ReferenceError) Error() string {
	msg := "reference not found"
	if e.Unsupported {
		msg = "unsupported reference format"
	}
	if e.Ref != "" {
		msg += ": " + e.Ref
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// Is reports whether target matches this error's category.
func (e *ReferenceError) Is(target error) bool {
	if e.Unsupported {
		return target == ErrUnsupportedRef
	}
	return target == ErrNotFound
}

// LimitError represents a resolution aborted because the document
// exceeded a structural limit.
type LimitError struct {
	// Resource names the exhausted limit, e.g. "depth".
	Resource string
	Limit    int
}

func (e *LimitError) Error() string {
	return fmt.Sprintf("resource limit exceeded: %s > %d", e.Resource, e.Limit)
}

// Is reports whether target matches this error type.
func (e *LimitError) Is(target error) bool {
	return target == ErrLimit
}

package parser

import "sort"

// Decode helpers for reading the generic tree produced by yaml
// unmarshaling. Missing or mistyped values decode to zero values; the
// parser treats those as absent.

func asMap(v any) map[string]any {
	m, _ := v.(map[string]any)
	return m
}

func asSeq(v any) []any {
	s, _ := v.([]any)
	return s
}

func asString(v any) string {
	s, _ := v.(string)
	return s
}

func asBool(v any) bool {
	b, _ := v.(bool)
	return b
}

func asStringMap(v any) map[string]string {
	m := asMap(v)
	if m == nil {
		return nil
	}
	result := make(map[string]string, len(m))
	for key, val := range m {
		if s, ok := val.(string); ok {
			result[key] = s
		}
	}
	return result
}

// sortedKeys returns the mapping's keys in lexical order. Generic maps
// have no iteration order, so every place the model depends on ordering
// sorts first.
func sortedKeys(m map[string]any) []string {
	if len(m) == 0 {
		return nil
	}
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

package golang

import (
	"strings"
	"unicode"
)

// initialisms are rendered fully upper-cased in generated names, matching
// the convention the standard library and staticcheck expect.
var initialisms = map[string]bool{
	"API": true, "CPU": true, "CSS": true, "DNS": true, "EOF": true,
	"HTML": true, "HTTP": true, "HTTPS": true, "ID": true, "IP": true,
	"JSON": true, "OAS": true, "RPC": true, "SQL": true, "SSH": true,
	"TCP": true, "TLS": true, "TTL": true, "UDP": true, "UI": true,
	"UID": true, "URI": true, "URL": true, "UUID": true, "XML": true,
	"YAML": true,
}

// SetAdditionalInitialisms registers extra initialisms for name
// generation. Call once during setup, before any generation runs.
func SetAdditionalInitialisms(extra []string) {
	for _, word := range extra {
		initialisms[strings.ToUpper(word)] = true
	}
}

// PascalCase converts a name to PascalCase, upper-casing known
// initialisms ("api_key" becomes "APIKey").
func PascalCase(s string) string {
	var b strings.Builder
	for _, word := range splitWords(s) {
		if upper := strings.ToUpper(word); initialisms[upper] {
			b.WriteString(upper)
		} else {
			b.WriteString(capitalize(word))
		}
	}
	return b.String()
}

// CamelCase converts a name to camelCase, preserving initialisms except
// in the leading word.
func CamelCase(s string) string {
	var b strings.Builder
	for i, word := range splitWords(s) {
		switch upper := strings.ToUpper(word); {
		case i == 0:
			b.WriteString(strings.ToLower(word))
		case initialisms[upper]:
			b.WriteString(upper)
		default:
			b.WriteString(capitalize(word))
		}
	}
	return b.String()
}

// SnakeCase converts a name to lower snake_case.
func SnakeCase(s string) string {
	words := splitWords(s)
	for i, word := range words {
		words[i] = strings.ToLower(word)
	}
	return strings.Join(words, "_")
}

// splitWords breaks a name into words on separators and on
// lower-to-upper case boundaries.
func splitWords(s string) []string {
	var words []string
	var current strings.Builder

	flush := func() {
		if current.Len() > 0 {
			words = append(words, current.String())
			current.Reset()
		}
	}

	for i, r := range s {
		switch {
		case r == '_' || r == '-' || r == ' ' || r == '.':
			flush()
		case unicode.IsUpper(r) && i > 0:
			prev := rune(s[i-1])
			if unicode.IsLower(prev) || unicode.IsDigit(prev) {
				flush()
			}
			current.WriteRune(r)
		default:
			current.WriteRune(r)
		}
	}
	flush()

	return words
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])
	for i := 1; i < len(runes); i++ {
		runes[i] = unicode.ToLower(runes[i])
	}
	return string(runes)
}

// ToGoIdentifier produces a valid exported Go identifier from an
// arbitrary name. Names starting with a digit get an "X" prefix.
func ToGoIdentifier(s string) string {
	result := PascalCase(s)
	if result == "" {
		return "X"
	}
	if unicode.IsDigit(rune(result[0])) {
		return "X" + result
	}
	return result
}

var goKeywords = map[string]bool{
	"break": true, "case": true, "chan": true, "const": true, "continue": true,
	"default": true, "defer": true, "else": true, "fallthrough": true, "for": true,
	"func": true, "go": true, "goto": true, "if": true, "import": true,
	"interface": true, "map": true, "package": true, "range": true, "return": true,
	"select": true, "struct": true, "switch": true, "type": true, "var": true,
}

// EscapeKeyword appends an underscore to names that collide with a Go
// keyword.
func EscapeKeyword(s string) string {
	if goKeywords[strings.ToLower(s)] {
		return s + "_"
	}
	return s
}

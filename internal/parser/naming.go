package parser

import (
	"strings"
	"unicode"
)

// reservedWords are names that cannot be used as parameter identifiers in
// generated code. A colliding name gets a trailing underscore.
var reservedWords = map[string]bool{
	"begin": true, "break": true, "case": true, "chan": true, "class": true,
	"const": true, "continue": true, "def": true, "default": true,
	"defer": true, "do": true, "elif": true, "else": true, "end": true,
	"fallthrough": true, "false": true, "for": true, "func": true,
	"go": true, "goto": true, "if": true, "import": true, "in": true,
	"interface": true, "lambda": true, "map": true, "module": true,
	"nil": true, "none": true, "not": true, "package": true, "range": true,
	"return": true, "select": true, "self": true, "struct": true,
	"super": true, "switch": true, "true": true, "type": true, "var": true,
	"while": true, "yield": true,
}

var stage1 = strings.NewReplacer("@", "at_", "$", "dollar_", ".", "_")
var stage4 = strings.NewReplacer("[", "_", "]", "")

// InternalName normalizes a parameter name into an identifier safe for
// generated code. The stages run in a fixed order and each operates on the
// previous stage's output, so the order is part of the contract:
//
//  1. "@" becomes "at_", "$" becomes "dollar_", "." becomes "_"
//  2. snake_case conversion, aware of camelCase and PascalCase boundaries
//  3. dashes are removed outright: "user-id" becomes "userid", not
//     "user_id" (dashes are not word separators here)
//  4. "[" becomes "_", "]" is dropped
//  5. reserved words and dunder-style names get a trailing underscore
func InternalName(name string) string {
	s := stage1.Replace(name)
	s = snakeCase(s)
	s = strings.ReplaceAll(s, "-", "")
	s = stage4.Replace(s)
	if reservedWords[s] || isDunder(s) {
		s += "_"
	}
	return s
}

// snakeCase lowercases the string, inserting underscores at case
// boundaries. Unlike general-purpose snake casing it leaves dashes and
// every other character untouched; only letter case drives word splits.
func snakeCase(s string) string {
	runes := []rune(s)
	var b strings.Builder
	b.Grow(len(runes) + 4)

	for i, r := range runes {
		if unicode.IsUpper(r) {
			if i > 0 {
				prev := runes[i-1]
				switch {
				case unicode.IsLower(prev) || unicode.IsDigit(prev):
					b.WriteRune('_')
				case unicode.IsUpper(prev) && i+1 < len(runes) && unicode.IsLower(runes[i+1]):
					b.WriteRune('_')
				}
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// isDunder reports whether the name is dunder-styled, i.e. wrapped in
// double underscores like "__init__".
func isDunder(s string) bool {
	return len(s) > 4 && strings.HasPrefix(s, "__") && strings.HasSuffix(s, "__")
}

package golang

import (
	"golang.org/x/tools/imports"
)

// Format runs goimports over generated source, fixing up the import block
// and applying gofmt formatting in one pass.
func Format(src []byte) ([]byte, error) {
	return imports.Process("", src, &imports.Options{
		Comments:  true,
		TabIndent: true,
		TabWidth:  8,
	})
}

// Package render finalizes generated sources before they are written.
package render

import (
	"fmt"

	"golang.org/x/tools/imports"
)

// Spec describes a generated file to render. Raw content passes through
// untouched; Go source is formatted with goimports so the emitted file is
// gofmt-clean and carries a resolved import list.
type Spec struct {
	Path string
	Raw  []byte
	Go   bool
}

// File contains the rendered content for a path.
type File struct {
	Path    string
	Content []byte
}

// Format renders all provided specs.
func Format(specs []Spec) ([]File, error) {
	rendered := make([]File, 0, len(specs))
	for _, spec := range specs {
		if len(spec.Raw) == 0 {
			return nil, fmt.Errorf("render %s: empty content", spec.Path)
		}
		if !spec.Go {
			rawCopy := append([]byte(nil), spec.Raw...)
			rendered = append(rendered, File{Path: spec.Path, Content: rawCopy})
			continue
		}
		formatted, err := imports.Process("", spec.Raw, nil)
		if err != nil {
			return nil, fmt.Errorf("goimports %s: %w", spec.Path, err)
		}
		rendered = append(rendered, File{Path: spec.Path, Content: formatted})
	}
	return rendered, nil
}

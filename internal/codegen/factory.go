// Package codegen selects and drives the output-language generators.
package codegen

import (
	"fmt"

	"github.com/quangDecember/Shark/internal/codegen/golang"
	"github.com/quangDecember/Shark/internal/codegen/render"
	"github.com/quangDecember/Shark/internal/codegen/swift"
	"github.com/quangDecember/Shark/internal/namespace"
)

// Target identifies an output language.
type Target string

const (
	// TargetSwift emits nested Swift enum declarations.
	TargetSwift Target = "swift"
	// TargetGo emits a flat Go accessor package.
	TargetGo Target = "go"
)

// File is a generated output file.
type File struct {
	Path    string
	Content []byte
}

// Options configures generator construction.
type Options struct {
	// Package is the package name for the Go target.
	Package string
	// FileName overrides the default output file name.
	FileName string
}

// Generator renders a finished namespace tree into output files.
type Generator interface {
	Generate(root *namespace.Node) ([]File, error)
}

// New returns the generator for target; an empty target defaults to Swift.
func New(target Target, opts Options) (Generator, error) {
	switch target {
	case TargetSwift, "":
		return &swiftWrapper{gen: swift.New(swift.Options{FileName: opts.FileName})}, nil
	case TargetGo:
		return &goWrapper{gen: golang.New(golang.Options{Package: opts.Package, FileName: opts.FileName})}, nil
	default:
		return nil, fmt.Errorf("unsupported target: %s", target)
	}
}

type swiftWrapper struct {
	gen *swift.Generator
}

func (w *swiftWrapper) Generate(root *namespace.Node) ([]File, error) {
	file, err := w.gen.Generate(root)
	if err != nil {
		return nil, fmt.Errorf("generate swift: %w", err)
	}
	return finalize([]render.Spec{{Path: file.Path, Raw: file.Content}})
}

type goWrapper struct {
	gen *golang.Generator
}

func (w *goWrapper) Generate(root *namespace.Node) ([]File, error) {
	file, err := w.gen.Generate(root)
	if err != nil {
		return nil, fmt.Errorf("generate go: %w", err)
	}
	return finalize([]render.Spec{{Path: file.Path, Raw: file.Content, Go: true}})
}

func finalize(specs []render.Spec) ([]File, error) {
	rendered, err := render.Format(specs)
	if err != nil {
		return nil, err
	}
	files := make([]File, len(rendered))
	for i, f := range rendered {
		files[i] = File{Path: f.Path, Content: f.Content}
	}
	return files, nil
}

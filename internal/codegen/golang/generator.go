// Package golang renders the namespace tree as a flat Go accessor package.
//
// Swift nests namespaces as enums; Go has no equivalent, so the tree is
// flattened into exported functions whose names join the namespace path.
// Placeholder tokens are rewritten into fmt verbs so the generated code can
// format with the standard library.
package golang

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/quangDecember/Shark/internal/interp"
	"github.com/quangDecember/Shark/internal/namespace"
	"github.com/quangDecember/Shark/internal/naming"
)

// Options configures the Go generator.
type Options struct {
	// Package is the generated package name; defaults to "loc".
	Package string
	// FileName overrides the output file name; defaults to strings.gen.go.
	FileName string
}

// Generator produces one Go source file from a finished namespace tree.
type Generator struct {
	opts Options
}

// New constructs a Generator.
func New(opts Options) *Generator {
	return &Generator{opts: opts}
}

// File is a rendered output file.
type File struct {
	Path    string
	Content []byte
}

type accessor struct {
	name  string
	key   string
	text  string
	types []interp.Type
}

// Generate renders root into a single Go file. The output is not yet
// gofmt-formatted; callers run it through the render package.
func (g *Generator) Generate(root *namespace.Node) (File, error) {
	if root == nil {
		return File{}, fmt.Errorf("golang: nil root node")
	}
	pkg := g.opts.Package
	if pkg == "" {
		pkg = "loc"
	}

	accessors := collect(root)

	var b strings.Builder
	b.WriteString("// Code generated by shark. DO NOT EDIT.\n\n")
	fmt.Fprintf(&b, "package %s\n\n", pkg)
	b.WriteString("import \"fmt\"\n\n")
	b.WriteString("// Table resolves a lookup key to its localized Go format string.\n")
	b.WriteString("// Replace it to plug in a runtime catalog; an empty result falls back\n")
	b.WriteString("// to the embedded source-table text.\n")
	b.WriteString("var Table = func(key string) string { return \"\" }\n\n")
	b.WriteString("func lookup(key, fallback string) string {\n")
	b.WriteString("\tif s := Table(key); s != \"\" {\n\t\treturn s\n\t}\n\treturn fallback\n}\n")

	for _, acc := range accessors {
		b.WriteString("\n")
		writeAccessor(&b, acc)
	}

	path := g.opts.FileName
	if path == "" {
		path = "strings.gen.go"
	}
	return File{Path: path, Content: []byte(b.String())}, nil
}

func writeAccessor(b *strings.Builder, acc accessor) {
	for _, line := range strings.Split(acc.text, "\n") {
		b.WriteString("// ")
		b.WriteString(line)
		b.WriteString("\n")
	}
	if len(acc.types) == 0 {
		fmt.Fprintf(b, "func %s() string { return lookup(%q, %q) }\n", acc.name, acc.key, acc.text)
		return
	}
	params := make([]string, len(acc.types))
	args := make([]string, len(acc.types))
	for i, typ := range acc.types {
		pname := paramName(i)
		params[i] = pname + " " + typ.GoName()
		args[i] = pname
	}
	fmt.Fprintf(b, "func %s(%s) string {\n", acc.name, strings.Join(params, ", "))
	fmt.Fprintf(b, "\treturn fmt.Sprintf(lookup(%q, %q), %s)\n", acc.key, RewriteFormat(acc.text), strings.Join(args, ", "))
	b.WriteString("}\n")
}

var ordinals = []string{
	"first", "second", "third", "fourth", "fifth",
	"sixth", "seventh", "eighth", "ninth", "tenth",
}

func paramName(i int) string {
	if i < len(ordinals) {
		return ordinals[i]
	}
	return fmt.Sprintf("arg%d", i+1)
}

// collect flattens the tree into accessors in tree order. The tree is sorted
// and sibling-collision-free, but joining path segments can still fuse
// distinct paths into one exported name ("foo.bar" and "fooBar" both yield
// FooBar), so later occurrences are underscored until unique.
func collect(root *namespace.Node) []accessor {
	accessors := make([]accessor, 0, 16)
	used := make(map[string]struct{})
	var descend func(n *namespace.Node, prefix []string)
	descend = func(n *namespace.Node, prefix []string) {
		for _, child := range n.Children {
			if child.Value.Kind == namespace.KindNamespace {
				descend(child, append(prefix, child.Value.Name))
				continue
			}
			parts := append(append([]string(nil), prefix...), child.Value.Name)
			name := exportedName(parts)
			for {
				if _, taken := used[name]; !taken {
					break
				}
				name = naming.Underscore(name)
			}
			used[name] = struct{}{}
			accessors = append(accessors, accessor{
				name:  name,
				key:   child.Value.Key,
				text:  child.Value.Text,
				types: interp.Classify(child.Value.Text),
			})
		}
	}
	descend(root, nil)
	return accessors
}

// exportedName joins sanitized path segments into one exported identifier.
func exportedName(parts []string) string {
	var b strings.Builder
	for _, part := range parts {
		trimmed := strings.TrimLeft(part, "_")
		if trimmed == "" {
			trimmed = "X"
		}
		r, size := utf8.DecodeRuneInString(trimmed)
		b.WriteRune(unicode.ToUpper(r))
		b.WriteString(trimmed[size:])
	}
	name := b.String()
	if name == "" {
		return "X"
	}
	if r, _ := utf8.DecodeRuneInString(name); unicode.IsDigit(r) {
		return "X" + name
	}
	return name
}

// RewriteFormat converts placeholder tokens in text to Go fmt verbs,
// dropping positional prefixes. Text without placeholders passes through.
func RewriteFormat(text string) string {
	tokens := interp.Tokens(text)
	if len(tokens) == 0 {
		return text
	}
	var b strings.Builder
	b.Grow(len(text))
	last := 0
	for _, tok := range tokens {
		b.WriteString(text[last:tok.Start])
		b.WriteString(tok.Type.GoVerb())
		last = tok.End
	}
	b.WriteString(text[last:])
	return b.String()
}

// Package swift renders the namespace tree as Swift accessor declarations.
package swift

import (
	"fmt"
	"strings"

	"github.com/quangDecember/Shark/internal/interp"
	"github.com/quangDecember/Shark/internal/namespace"
)

const indentUnit = "    "

// ordinals names positional accessor parameters.
var ordinals = []string{
	"first", "second", "third", "fourth", "fifth",
	"sixth", "seventh", "eighth", "ninth", "tenth",
}

// Options configures the Swift generator.
type Options struct {
	// FileName overrides the generated file name; defaults to <Root>.swift.
	FileName string
}

// Generator produces one Swift source file from a finished namespace tree.
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

// Generate renders root into a single Swift file. The tree must already be
// sorted and collision-free; rendering itself never mutates it.
func (g *Generator) Generate(root *namespace.Node) (File, error) {
	if root == nil {
		return File{}, fmt.Errorf("swift: nil root node")
	}
	if root.Value.Kind != namespace.KindNamespace {
		return File{}, fmt.Errorf("swift: root %q is not a namespace", root.Value.Name)
	}
	var b strings.Builder
	b.WriteString("// Generated by shark. DO NOT EDIT.\n\n")
	b.WriteString("import Foundation\n\n")
	b.WriteString(Render(root, 0))
	b.WriteString("\n")

	path := g.opts.FileName
	if path == "" {
		path = root.Value.Name + ".swift"
	}
	return File{Path: path, Content: []byte(b.String())}, nil
}

// Render emits the declaration for node at the given indent level.
// Namespaces become enum blocks whose children are joined by a blank line;
// leaves become documented accessors.
func Render(node *namespace.Node, indent int) string {
	switch node.Value.Kind {
	case namespace.KindLeaf:
		return renderLeaf(node.Value, indent)
	default:
		return renderNamespace(node, indent)
	}
}

func renderNamespace(node *namespace.Node, indent int) string {
	pad := strings.Repeat(indentUnit, indent)
	if len(node.Children) == 0 {
		return pad + "enum " + node.Value.Name + " {}"
	}
	rendered := make([]string, 0, len(node.Children))
	for _, child := range node.Children {
		rendered = append(rendered, Render(child, indent+1))
	}
	var b strings.Builder
	b.WriteString(pad)
	b.WriteString("enum ")
	b.WriteString(node.Value.Name)
	b.WriteString(" {\n")
	b.WriteString(strings.Join(rendered, "\n\n"))
	b.WriteString("\n")
	b.WriteString(pad)
	b.WriteString("}")
	return b.String()
}

func renderLeaf(value namespace.Value, indent int) string {
	pad := strings.Repeat(indentUnit, indent)
	var b strings.Builder
	for _, line := range strings.Split(value.Text, "\n") {
		b.WriteString(pad)
		b.WriteString("/// ")
		b.WriteString(line)
		b.WriteString("\n")
	}
	types := interp.Classify(value.Text)
	key := quote(value.Key)
	if len(types) == 0 {
		fmt.Fprintf(&b, "%sstatic var %s: String { return NSLocalizedString(%s, comment: \"\") }",
			pad, value.Name, key)
		return b.String()
	}
	params := make([]string, len(types))
	args := make([]string, len(types))
	for i, typ := range types {
		name := paramName(i)
		params[i] = fmt.Sprintf("_ %s: %s", name, typ.SwiftName())
		args[i] = name
	}
	fmt.Fprintf(&b, "%sstatic func %s(%s) -> String {\n", pad, value.Name, strings.Join(params, ", "))
	fmt.Fprintf(&b, "%s%sreturn String(format: NSLocalizedString(%s, comment: \"\"), %s)\n",
		pad, indentUnit, key, strings.Join(args, ", "))
	b.WriteString(pad)
	b.WriteString("}")
	return b.String()
}

func paramName(i int) string {
	if i < len(ordinals) {
		return ordinals[i]
	}
	return fmt.Sprintf("arg%d", i+1)
}

// quote produces a Swift string literal for s.
func quote(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\t':
			b.WriteString(`\t`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}

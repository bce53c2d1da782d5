// Package namespace builds the hierarchical tree of generated declarations.
//
// Dotted lookup keys are merged into a single tree of namespace and leaf
// nodes. Three passes run in order: build (repeated Insert), sort
// (canonical child order), and collision resolution (fixed-point renaming).
package namespace

import (
	"slices"
	"strings"

	"github.com/quangDecember/Shark/internal/naming"
)

// Kind tags a node value as a namespace or a leaf.
type Kind int

const (
	// KindNamespace is a grouping container derived from one path segment.
	KindNamespace Kind = iota
	// KindLeaf is a generated accessor for one full dotted key.
	KindLeaf
)

// Value is the tagged payload of a tree node.
//
// Name is the current, possibly renamed, identifier. For leaves, Key is the
// original lookup key and Text the original value; neither is ever renamed.
type Value struct {
	Kind Kind
	Name string
	Key  string
	Text string
}

// Node is a mutable node in the ordered namespace tree. Children are owned
// exclusively by their parent; leaves never have children.
type Node struct {
	Value    Value
	Children []*Node
}

// NewRoot returns the top-level namespace node for a generation run.
func NewRoot(name string) *Node {
	return &Node{Value: Value{Kind: KindNamespace, Name: naming.Identifier(name)}}
}

// Insert merges one (dottedKey, text) pair into the tree rooted at n.
//
// Segments before the last form the namespace path; the last segment becomes
// a new leaf. Leaves are never merged, even on identical names or identical
// full keys; the collision pass renames them apart later. Keys with no usable
// segments are skipped.
func (n *Node) Insert(dottedKey, text string) {
	segments := splitKey(dottedKey)
	if len(segments) == 0 {
		return
	}
	current := n
	for _, segment := range segments[:len(segments)-1] {
		name := naming.Identifier(segment)
		current = current.childNamespace(name)
	}
	leaf := &Node{Value: Value{
		Kind: KindLeaf,
		Name: naming.Identifier(segments[len(segments)-1]),
		Key:  dottedKey,
		Text: text,
	}}
	current.Children = append(current.Children, leaf)
}

// childNamespace descends into an existing namespace child named name, or
// appends a fresh one.
func (n *Node) childNamespace(name string) *Node {
	for _, child := range n.Children {
		if child.Value.Kind == KindNamespace && child.Value.Name == name {
			return child
		}
	}
	child := &Node{Value: Value{Kind: KindNamespace, Name: name}}
	n.Children = append(n.Children, child)
	return child
}

func splitKey(dottedKey string) []string {
	parts := strings.Split(dottedKey, ".")
	segments := make([]string, 0, len(parts))
	for _, part := range parts {
		if part == "" {
			continue
		}
		segments = append(segments, part)
	}
	return segments
}

// Compare is the total order over node values: any namespace sorts before any
// leaf, and within one kind names sort ascending.
func Compare(a, b Value) int {
	if a.Kind != b.Kind {
		if a.Kind == KindNamespace {
			return -1
		}
		return 1
	}
	return strings.Compare(a.Name, b.Name)
}

// Sort recursively reorders children into the canonical order, making the
// tree shape independent of insertion order.
func (n *Node) Sort() {
	slices.SortStableFunc(n.Children, func(a, b *Node) int {
		return Compare(a.Value, b.Value)
	})
	for _, child := range n.Children {
		child.Sort()
	}
}

// ResolveCollisions renames children until, at every depth, no two siblings
// share a name and no child shares its parent's name. Each level is driven to
// a fixed point before its subtrees are visited. Only presentation names
// change; leaf keys and texts are untouched.
func (n *Node) ResolveCollisions() {
	for {
		if n.resolveLevel() {
			break
		}
	}
	for _, child := range n.Children {
		child.ResolveCollisions()
	}
}

// resolveLevel makes one pass over n's children and reports whether the pass
// completed without renaming anything.
func (n *Node) resolveLevel() bool {
	seen := make(map[string]int, len(n.Children))
	for _, child := range n.Children {
		name := child.Value.Name
		if prior := seen[name]; prior > 0 {
			for i := 0; i < prior; i++ {
				child.Value.Name = naming.Underscore(child.Value.Name)
			}
			return false
		}
		if name == n.Value.Name {
			child.Value.Name = naming.Underscore(child.Value.Name)
			return false
		}
		seen[name]++
	}
	return true
}

// Walk visits n and every descendant depth-first in child order.
func (n *Node) Walk(visit func(node *Node, depth int)) {
	n.walk(visit, 0)
}

func (n *Node) walk(visit func(node *Node, depth int), depth int) {
	visit(n, depth)
	for _, child := range n.Children {
		child.walk(visit, depth+1)
	}
}

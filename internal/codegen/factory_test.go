package codegen

import (
	"strings"
	"testing"

	"github.com/quangDecember/Shark/internal/namespace"
)

func TestNewDefaultsToSwift(t *testing.T) {
	gen, err := New("", Options{})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	root := namespace.NewRoot("Strings")
	root.Insert("home.title", "Welcome")
	root.Sort()
	root.ResolveCollisions()
	files, err := gen.Generate(root)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if len(files) != 1 || files[0].Path != "Strings.swift" {
		t.Errorf("files = %+v, want single Strings.swift", files)
	}
}

func TestNewGoTarget(t *testing.T) {
	gen, err := New(TargetGo, Options{Package: "loc"})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	root := namespace.NewRoot("Strings")
	root.Insert("home.title", "Welcome")
	root.Sort()
	root.ResolveCollisions()
	files, err := gen.Generate(root)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if len(files) != 1 || files[0].Path != "strings.gen.go" {
		t.Fatalf("files = %+v, want single strings.gen.go", files)
	}
	if !strings.Contains(string(files[0].Content), "package loc") {
		t.Errorf("missing package clause:\n%s", files[0].Content)
	}
}

func TestNewUnknownTarget(t *testing.T) {
	if _, err := New("kotlin", Options{}); err == nil {
		t.Fatal("New(kotlin) succeeded, want error")
	}
}

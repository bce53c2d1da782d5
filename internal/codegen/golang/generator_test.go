package golang

import (
	"go/parser"
	"go/token"
	"strings"
	"testing"

	"github.com/quangDecember/Shark/internal/namespace"
)

func buildTree(t *testing.T, pairs [][2]string) *namespace.Node {
	t.Helper()
	root := namespace.NewRoot("Strings")
	for _, pair := range pairs {
		root.Insert(pair[0], pair[1])
	}
	root.Sort()
	root.ResolveCollisions()
	return root
}

func TestGenerateFlattensNamespaces(t *testing.T) {
	root := buildTree(t, [][2]string{
		{"home.title", "Welcome"},
		{"settings.account.email", "Email"},
	})
	gen := New(Options{Package: "loc"})
	file, err := gen.Generate(root)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	content := string(file.Content)
	if !strings.Contains(content, "package loc") {
		t.Errorf("missing package clause:\n%s", content)
	}
	if !strings.Contains(content, `func HomeTitle() string { return lookup("home.title", "Welcome") }`) {
		t.Errorf("constant accessor missing:\n%s", content)
	}
	if !strings.Contains(content, "func SettingsAccountEmail() string") {
		t.Errorf("nested key not flattened:\n%s", content)
	}
}

func TestGenerateRewritesPlaceholders(t *testing.T) {
	root := buildTree(t, [][2]string{
		{"cart.summary", "%d items, %.2f total"},
		{"greeting", "Hello %@"},
		{"count", "Count: %ld"},
	})
	gen := New(Options{})
	file, err := gen.Generate(root)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	content := string(file.Content)
	if !strings.Contains(content, "func CartSummary(first int, second float64) string") {
		t.Errorf("parameterized signature missing:\n%s", content)
	}
	if !strings.Contains(content, `lookup("cart.summary", "%d items, %f total")`) {
		t.Errorf("placeholder modifiers not rewritten:\n%s", content)
	}
	if !strings.Contains(content, "func Greeting(first string) string") {
		t.Errorf("string placeholder signature missing:\n%s", content)
	}
	if !strings.Contains(content, `lookup("greeting", "Hello %s")`) {
		t.Errorf("%%@ not rewritten to %%s:\n%s", content)
	}
	if !strings.Contains(content, "func Count(first int64) string") {
		t.Errorf("%%ld signature missing:\n%s", content)
	}
}

func TestGenerateFlattenedNamesStayUnique(t *testing.T) {
	// Sibling uniqueness in the tree does not survive flattening: the path
	// foo.bar and the top-level key fooBar join to the same exported name.
	root := buildTree(t, [][2]string{
		{"foo.bar", "dotted"},
		{"fooBar", "camel"},
	})
	gen := New(Options{Package: "loc"})
	file, err := gen.Generate(root)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	content := string(file.Content)
	if got := strings.Count(content, "func FooBar()"); got != 1 {
		t.Errorf("FooBar declared %d times, want 1:\n%s", got, content)
	}
	if !strings.Contains(content, `func FooBar() string { return lookup("foo.bar", "dotted") }`) {
		t.Errorf("first flattened accessor missing:\n%s", content)
	}
	if !strings.Contains(content, `func FooBar_() string { return lookup("fooBar", "camel") }`) {
		t.Errorf("colliding accessor not renamed:\n%s", content)
	}
	fset := token.NewFileSet()
	if _, err := parser.ParseFile(fset, file.Path, file.Content, 0); err != nil {
		t.Fatalf("generated file does not parse: %v\n%s", err, file.Content)
	}
}

func TestGenerateOutputParses(t *testing.T) {
	root := buildTree(t, [][2]string{
		{"a.b", "plain"},
		{"a.c", "%u of %i"},
	})
	gen := New(Options{Package: "loc"})
	file, err := gen.Generate(root)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	fset := token.NewFileSet()
	if _, err := parser.ParseFile(fset, file.Path, file.Content, 0); err != nil {
		t.Fatalf("generated file does not parse: %v\n%s", err, file.Content)
	}
	if file.Path != "strings.gen.go" {
		t.Errorf("file path = %q, want strings.gen.go", file.Path)
	}
}

func TestRewriteFormat(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Hello %@", "Hello %s"},
		{"%d items, %.2f total", "%d items, %f total"},
		{"Count: %ld", "Count: %d"},
		{"%1$@ then %2$d", "%s then %d"},
		{"no placeholders", "no placeholders"},
		{"100% done", "100% done"},
	}
	for _, tc := range cases {
		if got := RewriteFormat(tc.in); got != tc.want {
			t.Errorf("RewriteFormat(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestExportedName(t *testing.T) {
	cases := []struct {
		parts []string
		want  string
	}{
		{[]string{"home", "title"}, "HomeTitle"},
		{[]string{"_2fa", "code"}, "X2faCode"},
		{[]string{"_enum"}, "Enum"},
	}
	for _, tc := range cases {
		if got := exportedName(tc.parts); got != tc.want {
			t.Errorf("exportedName(%v) = %q, want %q", tc.parts, got, tc.want)
		}
	}
}

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"

	"github.com/quangDecember/Shark/internal/fileset"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "shark.toml")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func memResolver(files map[string]string) fileset.Resolver {
	fsys := fstest.MapFS{}
	for name, contents := range files {
		fsys[name] = &fstest.MapFile{Data: []byte(contents)}
	}
	return fileset.NewResolver(fsys)
}

func TestLoadResolvesPlan(t *testing.T) {
	path := writeConfig(t, `
name = "Strings"
out = "Generated"
target = "swift"
tables = ["*.strings"]

[generation]
file_name = "Localization.swift"
`)
	resolver := memResolver(map[string]string{
		"Localizable.strings": `"a" = "b";`,
		"Extra.strings":       `"c" = "d";`,
	})
	res, err := Load(path, LoadOptions{Resolver: &resolver})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	want := JobPlan{
		Name:     "Strings",
		Out:      filepath.Join(filepath.Dir(path), "Generated"),
		Target:   "swift",
		Tables:   []string{"Extra.strings", "Localizable.strings"},
		FileName: "Localization.swift",
	}
	if diff := cmp.Diff(want, res.Plan); diff != "" {
		t.Errorf("plan mismatch (-want +got):\n%s", diff)
	}
	if len(res.Warnings) != 0 {
		t.Errorf("unexpected warnings: %v", res.Warnings)
	}
}

func TestLoadDefaults(t *testing.T) {
	path := writeConfig(t, ``)
	resolver := memResolver(nil)
	res, err := Load(path, LoadOptions{Resolver: &resolver})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if res.Plan.Name != "Strings" {
		t.Errorf("default name = %q, want Strings", res.Plan.Name)
	}
	if res.Plan.Out != filepath.Join(filepath.Dir(path), "Generated") {
		t.Errorf("default out = %q", res.Plan.Out)
	}
	if res.Plan.Target != "" {
		t.Errorf("default target = %q, want empty", res.Plan.Target)
	}
}

func TestLoadUnknownKeysWarn(t *testing.T) {
	path := writeConfig(t, "name = \"S\"\nbogus = 1\n")
	resolver := memResolver(nil)
	res, err := Load(path, LoadOptions{Resolver: &resolver})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(res.Warnings) != 1 || !strings.Contains(res.Warnings[0], "bogus") {
		t.Errorf("warnings = %v, want one naming bogus", res.Warnings)
	}
}

func TestLoadUnknownKeysStrict(t *testing.T) {
	path := writeConfig(t, "name = \"S\"\nbogus = 1\n")
	resolver := memResolver(nil)
	if _, err := Load(path, LoadOptions{Strict: true, Resolver: &resolver}); err == nil {
		t.Fatal("Load() succeeded with unknown key in strict mode")
	}
}

func TestLoadRejectsUnknownTarget(t *testing.T) {
	path := writeConfig(t, "target = \"kotlin\"\n")
	resolver := memResolver(nil)
	if _, err := Load(path, LoadOptions{Resolver: &resolver}); err == nil {
		t.Fatal("Load() accepted unknown target")
	}
}

func TestLoadUnmatchedPatternsMeanNoInput(t *testing.T) {
	path := writeConfig(t, "tables = [\"missing/*.strings\"]\n")
	resolver := memResolver(nil)
	res, err := Load(path, LoadOptions{Resolver: &resolver})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(res.Plan.Tables) != 0 {
		t.Errorf("tables = %v, want none", res.Plan.Tables)
	}
}

func TestLoadMalformedTOML(t *testing.T) {
	path := writeConfig(t, "name = [unclosed\n")
	resolver := memResolver(nil)
	if _, err := Load(path, LoadOptions{Resolver: &resolver}); err == nil {
		t.Fatal("Load() accepted malformed TOML")
	}
}

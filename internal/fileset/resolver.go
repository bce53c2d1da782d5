// Package fileset locates localization table files via glob patterns.
package fileset

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// Resolver expands table glob patterns against a filesystem. Matches come back
// sorted and de-duplicated so the rest of the generation never depends on
// directory enumeration order.
type Resolver struct {
	fsys fs.FS
	join func(name string) string
}

// ErrNoPatterns indicates that Resolve was invoked without any glob patterns.
var ErrNoPatterns = errors.New("fileset: no patterns provided")

// PatternError reports a glob pattern that does not parse.
type PatternError struct {
	Pattern string
	Err     error
}

func (e PatternError) Error() string {
	return fmt.Sprintf("invalid glob pattern %q: %v", e.Pattern, e.Err)
}

func (e PatternError) Unwrap() error { return e.Err }

// NoMatchError lists the patterns that matched no table files.
type NoMatchError struct {
	Patterns []string
}

func (e NoMatchError) Error() string {
	return "patterns matched no files: " + strings.Join(e.Patterns, ", ")
}

// NewResolver constructs a Resolver over fsys that reports match names as-is.
// Useful for tests.
func NewResolver(fsys fs.FS) Resolver {
	return Resolver{
		fsys: fsys,
		join: func(name string) string { return name },
	}
}

// NewOSResolver constructs a Resolver rooted at base, typically the directory
// holding shark.toml, that reports absolute OS paths for each match.
func NewOSResolver(base string) (Resolver, error) {
	absBase, err := filepath.Abs(base)
	if err != nil {
		return Resolver{}, fmt.Errorf("resolve base %q: %w", base, err)
	}

	info, err := os.Stat(absBase)
	if err != nil {
		return Resolver{}, fmt.Errorf("stat base %q: %w", absBase, err)
	}
	if !info.IsDir() {
		return Resolver{}, fmt.Errorf("base %q is not a directory", absBase)
	}

	return Resolver{
		fsys: os.DirFS(absBase),
		join: func(name string) string {
			if filepath.IsAbs(name) {
				return filepath.Clean(name)
			}
			return filepath.Join(absBase, filepath.FromSlash(name))
		},
	}, nil
}

// Resolve evaluates every pattern and returns the combined table paths in
// canonical order. A pattern that matches nothing is collected rather than
// skipped: callers decide whether an empty table set is acceptable, so the
// full list of dead patterns comes back in one NoMatchError.
func (r Resolver) Resolve(patterns []string) ([]string, error) {
	if r.fsys == nil {
		return nil, errors.New("fileset: resolver has no filesystem")
	}
	if len(patterns) == 0 {
		return nil, ErrNoPatterns
	}

	paths := make([]string, 0, len(patterns))
	missing := make([]string, 0)
	for _, pattern := range patterns {
		matches, err := r.glob(pattern)
		if err != nil {
			return nil, err
		}
		if len(matches) == 0 {
			missing = append(missing, pattern)
			continue
		}
		paths = append(paths, matches...)
	}
	if len(missing) > 0 {
		return nil, NoMatchError{Patterns: missing}
	}

	slices.Sort(paths)
	return slices.Compact(paths), nil
}

// glob matches one pattern and rewrites each hit through the join function.
func (r Resolver) glob(pattern string) ([]string, error) {
	matches, err := fs.Glob(r.fsys, filepath.ToSlash(pattern))
	if err != nil {
		return nil, PatternError{Pattern: pattern, Err: err}
	}
	join := r.join
	if join == nil {
		join = func(name string) string { return name }
	}
	paths := make([]string, 0, len(matches))
	for _, match := range matches {
		paths = append(paths, join(match))
	}
	return paths, nil
}

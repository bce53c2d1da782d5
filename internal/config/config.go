// Package config loads and validates the shark configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/quangDecember/Shark/internal/fileset"
)

// GenerationOptions captures additional generation options.
type GenerationOptions struct {
	// Package is the package name used by the Go target.
	Package string `toml:"package"`
	// FileName overrides the default output file name.
	FileName string `toml:"file_name"`
}

// Config mirrors the expected shark TOML schema.
type Config struct {
	// Name is the top-level namespace of the generated declarations.
	Name string `toml:"name"`
	// Out is the output directory, relative to the config file.
	Out string `toml:"out"`
	// Target selects the output language ("swift" or "go").
	Target string `toml:"target"`
	// Tables are glob patterns locating the localization table files.
	Tables     []string          `toml:"tables"`
	Generation GenerationOptions `toml:"generation"`
}

// JobPlan is the fully-resolved configuration used by downstream stages.
type JobPlan struct {
	Name    string
	Out     string
	Target  string
	Tables  []string
	Package string
	// FileName, when set, overrides the generator's default output name.
	FileName string
}

// LoadOptions tunes config loading behavior.
type LoadOptions struct {
	Strict   bool
	Resolver *fileset.Resolver
}

// Result wraps a loaded job plan alongside any non-fatal warnings.
type Result struct {
	Plan     JobPlan
	Warnings []string
}

var validTargets = map[string]struct{}{
	"":      {},
	"swift": {},
	"go":    {},
}

// Load reads, validates, and resolves a shark configuration file.
func Load(path string, opts LoadOptions) (Result, error) {
	var res Result

	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return res, fmt.Errorf("read %s: %w", path, err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return res, fmt.Errorf("%s: %w", path, err)
	}

	unknownKeys, err := collectUnknownKeys(data)
	if err != nil {
		return res, fmt.Errorf("%s: %w", path, err)
	}
	if len(unknownKeys) > 0 {
		slices.Sort(unknownKeys)
		message := fmt.Sprintf("%s: unknown configuration keys: %s", path, strings.Join(unknownKeys, ", "))
		if opts.Strict {
			return res, errors.New(message)
		}
		res.Warnings = append(res.Warnings, message)
	}

	if _, ok := validTargets[cfg.Target]; !ok {
		return res, fmt.Errorf("%s: unknown target %q (expected swift or go)", path, cfg.Target)
	}

	name := cfg.Name
	if name == "" {
		name = "Strings"
	}

	out, err := resolveOut(path, cfg.Out)
	if err != nil {
		return res, err
	}

	baseDir := filepath.Dir(path)
	var resolver fileset.Resolver
	if opts.Resolver != nil {
		resolver = *opts.Resolver
	} else {
		resolver, err = fileset.NewOSResolver(baseDir)
		if err != nil {
			return res, fmt.Errorf("%s: %w", path, err)
		}
	}

	tables, err := resolvePatterns(resolver, cfg.Tables)
	if err != nil {
		return res, fmt.Errorf("%s: %w", path, err)
	}

	res.Plan = JobPlan{
		Name:     name,
		Out:      out,
		Target:   cfg.Target,
		Tables:   tables,
		Package:  cfg.Generation.Package,
		FileName: cfg.Generation.FileName,
	}

	return res, nil
}

func collectUnknownKeys(data []byte) ([]string, error) {
	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	known := map[string]struct{}{
		"name":       {},
		"out":        {},
		"target":     {},
		"tables":     {},
		"generation": {},
	}

	unknown := make([]string, 0)
	for key := range raw {
		if _, ok := known[key]; !ok {
			unknown = append(unknown, key)
		}
	}

	return unknown, nil
}

func resolveOut(configPath, out string) (string, error) {
	if out == "" {
		out = "Generated"
	}
	if filepath.IsAbs(out) {
		return filepath.Clean(out), nil
	}
	baseDir := filepath.Dir(configPath)
	return filepath.Clean(filepath.Join(baseDir, out)), nil
}

func resolvePatterns(resolver fileset.Resolver, patterns []string) ([]string, error) {
	if len(patterns) == 0 {
		return nil, nil
	}
	paths, err := resolver.Resolve(patterns)
	if err != nil {
		var noMatch fileset.NoMatchError
		if errors.As(err, &noMatch) {
			// Tables that do not exist yet are a no-input condition for the
			// pipeline, not a configuration failure.
			return nil, nil
		}
		return nil, fmt.Errorf("resolve tables: %w", err)
	}
	return paths, nil
}

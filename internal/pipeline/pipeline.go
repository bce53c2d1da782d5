// Package pipeline orchestrates the entire generation process.
package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"log/slog"

	"github.com/google/uuid"

	"github.com/quangDecember/Shark/internal/codegen"
	"github.com/quangDecember/Shark/internal/config"
	"github.com/quangDecember/Shark/internal/fileset"
	"github.com/quangDecember/Shark/internal/interp"
	"github.com/quangDecember/Shark/internal/namespace"
	"github.com/quangDecember/Shark/internal/table"
)

// Environment captures external dependencies used by the pipeline.
type Environment struct {
	FSResolver func(string) (fileset.Resolver, error)
	Logger     *slog.Logger
	Writer     Writer
	// LoadTable parses one table file; defaults to table.Load.
	LoadTable func(path string) (table.Table, error)
}

// Writer writes generated files to persistent storage.
type Writer interface {
	WriteFile(path string, data []byte) error
}

// Pipeline orchestrates configuration loading, table parsing, tree
// construction, and code generation.
type Pipeline struct {
	Env Environment
}

// RunOptions configures a pipeline execution.
type RunOptions struct {
	ConfigPath   string
	OutOverride  string
	DryRun       bool
	ListKeys     bool
	StrictConfig bool
}

// KeyInfo summarizes one loaded entry for -list-keys output.
type KeyInfo struct {
	Key    string
	Params []interp.Type
}

// Summary captures generated files and per-key details collected during a run.
type Summary struct {
	Files    []codegen.File
	Keys     []KeyInfo
	Warnings []string
}

// WriteError wraps failures encountered while writing generated files.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

// NewOSWriter returns a Writer that performs atomic writes on the local filesystem.
func NewOSWriter() Writer {
	return &osWriter{perm: 0o644}
}

type osWriter struct {
	perm fs.FileMode
}

func (w *osWriter) WriteFile(path string, data []byte) error {
	if path == "" {
		return errors.New("pipeline: empty path")
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("mkdir %s: %w", dir, err)
	}
	tmp, err := os.CreateTemp(dir, ".shark-")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	success := false
	defer func() {
		if !success {
			_ = os.Remove(tmpName)
		}
		_ = tmp.Close()
	}()
	if w.perm != 0 {
		if err := tmp.Chmod(w.perm); err != nil {
			return fmt.Errorf("chmod temp file: %w", err)
		}
	}
	if _, err := tmp.Write(data); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("rename temp file: %w", err)
	}
	success = true
	return nil
}

// Run executes the pipeline according to the provided options.
func (p *Pipeline) Run(ctx context.Context, opts RunOptions) (Summary, error) {
	var summary Summary

	logger := p.Env.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	logger = logger.With("run", uuid.NewString())

	configPath := opts.ConfigPath
	if configPath == "" {
		configPath = "shark.toml"
	}
	absConfigPath, err := filepath.Abs(configPath)
	if err != nil {
		return summary, fmt.Errorf("resolve config path: %w", err)
	}

	baseDir := filepath.Dir(absConfigPath)
	resolverFn := p.Env.FSResolver
	if resolverFn == nil {
		resolverFn = fileset.NewOSResolver
	}
	resolver, err := resolverFn(baseDir)
	if err != nil {
		return summary, fmt.Errorf("resolve filesystem: %w", err)
	}

	loadResult, err := config.Load(absConfigPath, config.LoadOptions{Strict: opts.StrictConfig, Resolver: &resolver})
	if err != nil {
		return summary, err
	}
	summary.Warnings = append(summary.Warnings, loadResult.Warnings...)
	for _, warning := range loadResult.Warnings {
		logger.Warn("configuration warning", "detail", warning)
	}

	plan := loadResult.Plan
	outDir := plan.Out
	if opts.OutOverride != "" {
		override := opts.OutOverride
		if !filepath.IsAbs(override) {
			override = filepath.Join(baseDir, override)
		}
		outDir = filepath.Clean(override)
	}

	if err := ctx.Err(); err != nil {
		return summary, err
	}

	if len(plan.Tables) == 0 {
		logger.Info("no tables to load, nothing to generate")
		return summary, nil
	}

	tables, err := p.loadTables(ctx, plan.Tables)
	if err != nil {
		return summary, err
	}
	logger.Debug("tables loaded", "count", len(tables))

	root := namespace.NewRoot(plan.Name)
	for _, tbl := range tables {
		for _, entry := range tbl.Entries {
			root.Insert(entry.Key, entry.Text)
			summary.Keys = append(summary.Keys, KeyInfo{Key: entry.Key, Params: interp.Classify(entry.Text)})
		}
	}
	root.Sort()
	root.ResolveCollisions()

	if opts.ListKeys {
		return summary, nil
	}

	generator, err := codegen.New(codegen.Target(plan.Target), codegen.Options{
		Package:  plan.Package,
		FileName: plan.FileName,
	})
	if err != nil {
		return summary, err
	}

	generatedFiles, err := generator.Generate(root)
	if err != nil {
		return summary, fmt.Errorf("code generation: %w", err)
	}

	finalFiles := make([]codegen.File, 0, len(generatedFiles))
	for _, file := range generatedFiles {
		finalPath := filepath.Join(outDir, file.Path)
		finalFiles = append(finalFiles, codegen.File{Path: finalPath, Content: file.Content})
	}
	summary.Files = finalFiles

	if opts.DryRun {
		return summary, nil
	}

	writer := p.Env.Writer
	if writer == nil {
		writer = NewOSWriter()
	}

	for _, file := range finalFiles {
		if err := ctx.Err(); err != nil {
			return summary, err
		}
		same, cmpErr := fileMatches(file.Path, file.Content)
		if cmpErr != nil {
			return summary, &WriteError{Path: file.Path, Err: cmpErr}
		}
		if same {
			logger.Debug("file unchanged", "path", file.Path)
			continue
		}
		if err := writer.WriteFile(file.Path, file.Content); err != nil {
			return summary, &WriteError{Path: file.Path, Err: err}
		}
		logger.Debug("file written", "path", file.Path)
	}

	return summary, nil
}

// loadTables parses every table file. Loads fan out per path since tables
// have no ordering dependency on each other; results keep the input path
// order so failure reporting and tree insertion stay deterministic. The
// first unparseable table aborts the whole run with no output.
func (p *Pipeline) loadTables(ctx context.Context, paths []string) ([]table.Table, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	loadFn := p.Env.LoadTable
	if loadFn == nil {
		loadFn = table.Load
	}

	tables := make([]table.Table, len(paths))
	errs := make([]error, len(paths))
	var wg sync.WaitGroup
	for i, path := range paths {
		wg.Add(1)
		go func(i int, path string) {
			defer wg.Done()
			tables[i], errs[i] = loadFn(path)
		}(i, path)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return tables, nil
}

func fileMatches(path string, content []byte) (bool, error) {
	existing, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	return bytes.Equal(existing, content), nil
}

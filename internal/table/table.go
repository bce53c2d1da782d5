// Package table loads flat key/value localization tables from disk.
package table

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Entry is a single resolved key/text pair read from a table. Entries are
// immutable once loaded.
type Entry struct {
	Key  string
	Text string
}

// Table is the parsed contents of one localization file.
type Table struct {
	Path    string
	Entries []Entry
}

// ParseError indicates that a path's contents do not parse as a flat
// string-to-string table. It is fatal to the whole generation run.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Load reads and parses the table at path. The format is chosen by file
// extension: .strings uses the quoted pair grammar, .json and .yaml/.yml are
// flat string maps. Anything unparseable yields a ParseError naming path.
func Load(path string) (Table, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return Table{}, &ParseError{Path: path, Err: err}
	}
	return Parse(path, data)
}

// Parse decodes data as the table format implied by path's extension.
func Parse(path string, data []byte) (Table, error) {
	var (
		entries []Entry
		err     error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		entries, err = parseJSON(data)
	case ".yaml", ".yml":
		entries, err = parseYAML(data)
	default:
		entries, err = parseStrings(data)
	}
	if err != nil {
		return Table{}, &ParseError{Path: path, Err: err}
	}
	return Table{Path: path, Entries: entries}, nil
}

func parseJSON(data []byte) ([]Entry, error) {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	return flatEntries(raw)
}

func parseYAML(data []byte) ([]Entry, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	return flatEntries(raw)
}

// flatEntries checks that every value is a plain string and returns the pairs
// in sorted key order so map iteration cannot leak into the output.
func flatEntries(raw map[string]any) ([]Entry, error) {
	entries := make([]Entry, 0, len(raw))
	for key, value := range raw {
		text, ok := value.(string)
		if !ok {
			return nil, fmt.Errorf("key %q: value is not a string (table must be flat)", key)
		}
		entries = append(entries, Entry{Key: key, Text: text})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Key < entries[j].Key })
	return entries, nil
}

// Package interp classifies format placeholders embedded in localized text.
package interp

import (
	"regexp"
	"strings"
)

// Type is the inferred parameter type of one placeholder occurrence.
type Type int

const (
	// TypeString covers %@ markers, positional or not, and anything else
	// the narrower rules do not claim.
	TypeString Type = iota
	// TypeInt covers %d and %i.
	TypeInt
	// TypeInt64 covers %ld.
	TypeInt64
	// TypeUInt covers %u.
	TypeUInt
	// TypeDouble covers %f.
	TypeDouble
)

// SwiftName returns the Swift spelling of the type.
func (t Type) SwiftName() string {
	switch t {
	case TypeInt:
		return "Int"
	case TypeInt64:
		return "Int64"
	case TypeUInt:
		return "UInt"
	case TypeDouble:
		return "Double"
	default:
		return "String"
	}
}

// GoName returns the Go spelling of the type.
func (t Type) GoName() string {
	switch t {
	case TypeInt:
		return "int"
	case TypeInt64:
		return "int64"
	case TypeUInt:
		return "uint"
	case TypeDouble:
		return "float64"
	default:
		return "string"
	}
}

// GoVerb returns the fmt verb used when the placeholder is rewritten for Go.
func (t Type) GoVerb() string {
	switch t {
	case TypeInt, TypeInt64, TypeUInt:
		return "%d"
	case TypeDouble:
		return "%f"
	default:
		return "%s"
	}
}

// Token is one placeholder occurrence inside a text value.
type Token struct {
	Start int
	End   int
	Type  Type
}

// tokenPattern matches a placeholder: an optional positional prefix (its
// number never affects typing), an optional width/precision modifier, then a
// specifier. Stray percent signs that do not complete the grammar are not
// tokens.
var tokenPattern = regexp.MustCompile(`%(?:\d+\$)?([0-9.]*(?:ld|[diuf@]))`)

// Tokens scans text left to right and returns every placeholder occurrence in
// order. It never fails.
func Tokens(text string) []Token {
	matches := tokenPattern.FindAllStringSubmatchIndex(text, -1)
	if len(matches) == 0 {
		return nil
	}
	tokens := make([]Token, 0, len(matches))
	for _, m := range matches {
		spec := text[m[2]:m[3]]
		tokens = append(tokens, Token{Start: m[0], End: m[1], Type: classifySpecifier(spec)})
	}
	return tokens
}

// Classify returns the inferred parameter types of text, in occurrence order.
// An empty result means the text has no placeholders.
func Classify(text string) []Type {
	tokens := Tokens(text)
	if len(tokens) == 0 {
		return nil
	}
	types := make([]Type, len(tokens))
	for i, tok := range tokens {
		types[i] = tok.Type
	}
	return types
}

func classifySpecifier(spec string) Type {
	switch {
	case strings.Contains(spec, "ld"):
		return TypeInt64
	case strings.Contains(spec, "d"), strings.Contains(spec, "i"):
		return TypeInt
	case strings.Contains(spec, "u"):
		return TypeUInt
	case strings.Contains(spec, "f"):
		return TypeDouble
	default:
		return TypeString
	}
}

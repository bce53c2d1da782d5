// Package naming converts raw key segments into valid Swift identifiers.
package naming

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

const escapePrefix = "_"

// swiftKeywords holds the reserved words that may not be used bare as
// declaration names.
var swiftKeywords = map[string]struct{}{
	"associatedtype": {}, "class": {}, "deinit": {}, "enum": {}, "extension": {},
	"fileprivate": {}, "func": {}, "import": {}, "init": {}, "inout": {},
	"internal": {}, "let": {}, "open": {}, "operator": {}, "private": {},
	"protocol": {}, "public": {}, "rethrows": {}, "static": {}, "struct": {},
	"subscript": {}, "typealias": {}, "var": {},
	"break": {}, "case": {}, "continue": {}, "default": {}, "defer": {},
	"do": {}, "else": {}, "fallthrough": {}, "for": {}, "guard": {}, "if": {},
	"in": {}, "repeat": {}, "return": {}, "switch": {}, "where": {}, "while": {},
	"as": {}, "catch": {}, "false": {}, "is": {}, "nil": {}, "self": {},
	"super": {}, "throw": {}, "throws": {}, "true": {}, "try": {},
	"Any": {}, "Self": {},
}

// Identifier converts an arbitrary key segment into a valid identifier.
// The mapping is pure: case and word separators survive, characters with no
// place in an identifier are dropped, and a leading digit or a reserved word
// picks up the escape prefix.
func Identifier(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_':
			b.WriteRune(r)
		case r == '-' || r == ' ':
			b.WriteRune('_')
		default:
			// skip unsupported characters
		}
	}
	ident := b.String()
	if ident == "" {
		return "x"
	}
	if r, _ := utf8.DecodeRuneInString(ident); unicode.IsDigit(r) {
		return escapePrefix + ident
	}
	if _, reserved := swiftKeywords[ident]; reserved {
		return escapePrefix + ident
	}
	return ident
}

// Underscore perturbs an already-valid identifier into a different valid one.
// Repeated application keeps producing fresh names; it never returns its input.
func Underscore(ident string) string {
	return ident + "_"
}

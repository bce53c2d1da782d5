package table

import (
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// stringsLexer tokenizes the .strings table format: quoted key/value pairs
// separated by = and terminated by ;, with C-style comments.
var stringsLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Whitespace", Pattern: `[ \t\r\n]+`},
	{Name: "BlockComment", Pattern: `/\*[\s\S]*?\*/`},
	{Name: "LineComment", Pattern: `//[^\n]*`},
	{Name: "String", Pattern: `"(\\.|[^"\\])*"`},
	{Name: "Punct", Pattern: `[=;]`},
})

//nolint:govet // Participle struct tags are DSL, not reflect tags
type stringsFile struct {
	Pairs []*stringsPair `parser:"@@*"`
}

//nolint:govet // Participle struct tags are DSL, not reflect tags
type stringsPair struct {
	Key   string `parser:"@String '='"`
	Value string `parser:"@String ';'"`
}

var stringsParser = participle.MustBuild[stringsFile](
	participle.Lexer(stringsLexer),
	participle.Elide("Whitespace", "BlockComment", "LineComment"),
)

// parseStrings parses a .strings table, preserving pair order.
func parseStrings(data []byte) ([]Entry, error) {
	file, err := stringsParser.ParseBytes("", data)
	if err != nil {
		return nil, err
	}
	entries := make([]Entry, 0, len(file.Pairs))
	for _, pair := range file.Pairs {
		key, err := unquote(pair.Key)
		if err != nil {
			return nil, fmt.Errorf("key %s: %w", pair.Key, err)
		}
		value, err := unquote(pair.Value)
		if err != nil {
			return nil, fmt.Errorf("value for key %s: %w", pair.Key, err)
		}
		entries = append(entries, Entry{Key: key, Text: value})
	}
	return entries, nil
}

// unquote strips the surrounding quotes and resolves the escape sequences the
// .strings format uses. Unknown escapes keep the escaped character verbatim.
func unquote(quoted string) (string, error) {
	if len(quoted) < 2 || quoted[0] != '"' || quoted[len(quoted)-1] != '"' {
		return "", fmt.Errorf("malformed string literal %s", quoted)
	}
	body := quoted[1 : len(quoted)-1]
	if !strings.ContainsRune(body, '\\') {
		return body, nil
	}
	var b strings.Builder
	b.Grow(len(body))
	escaped := false
	for _, r := range body {
		if !escaped {
			if r == '\\' {
				escaped = true
				continue
			}
			b.WriteRune(r)
			continue
		}
		switch r {
		case 'n':
			b.WriteRune('\n')
		case 't':
			b.WriteRune('\t')
		case 'r':
			b.WriteRune('\r')
		default:
			b.WriteRune(r)
		}
		escaped = false
	}
	return b.String(), nil
}

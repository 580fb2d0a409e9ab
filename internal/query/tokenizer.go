// Package query turns raw search-box input into resolved search terms.
//
// Grammar: whitespace-separated tokens, double-quoted phrases kept whole,
// field:value directives (see field.go for the alias table), numeric
// comparison prefixes on numeric fields. All terms combine with AND; there
// is no OR or NOT operator.
package query

import (
	"strings"
	"unicode"
)

// Tokenize splits a raw query on whitespace, keeping double-quoted substrings
// inside a single token with the quotes removed. An unterminated quote runs to
// the end of input. Case is preserved; empty tokens are dropped.
func Tokenize(s string) []string {
	var (
		tokens  []string
		cur     strings.Builder
		inQuote bool
	)
	flush := func() {
		if cur.Len() > 0 {
			tokens = append(tokens, cur.String())
		}
		cur.Reset()
	}

	for _, r := range s {
		switch {
		case r == '"':
			inQuote = !inQuote
		case unicode.IsSpace(r) && !inQuote:
			flush()
		default:
			cur.WriteRune(r)
		}
	}
	flush()
	return tokens
}

// Join renders tokens back into query text, quoting tokens that contain
// whitespace so that Tokenize(Join(t)) == t.
func Join(tokens []string) string {
	parts := make([]string, len(tokens))
	for i, t := range tokens {
		if strings.IndexFunc(t, unicode.IsSpace) >= 0 {
			if k, v, ok := splitDirective(t); ok {
				parts[i] = k + ":\"" + v + "\""
				continue
			}
			parts[i] = "\"" + t + "\""
			continue
		}
		parts[i] = t
	}
	return strings.Join(parts, " ")
}

package query

import (
	"strings"

	"github.com/kailas-cloud/cardquery/internal/domain/card"
	"github.com/kailas-cloud/cardquery/internal/domain/search/filter"
)

// Kind discriminates resolved terms.
type Kind int

// Term kinds.
const (
	// FreeText matches across all text attributes.
	FreeText Kind = iota
	// Text is a field-scoped substring directive.
	Text
	// Numeric is a field-scoped comparison directive.
	Numeric
	// Category matches the category by name prefix.
	Category
	// Rarity matches by name prefix, or by rank when Op is set.
	Rarity
	// Element requires every listed element.
	Element
	// Never is a fail-closed term that no card satisfies.
	Never
	// Skip is a term that imposes no constraint (incomplete input).
	Skip
)

// Term is one resolved query token.
type Term struct {
	Kind     Kind
	Field    Field
	Token    string
	Value    string
	Op       filter.Op
	Number   float64
	Elements []card.Element
}

// Query is a parsed search string.
type Query struct {
	raw    string
	tokens []string
	terms  []Term
}

// Parse tokenizes and resolves a raw query.
func Parse(raw string) Query {
	tokens := Tokenize(raw)
	terms := make([]Term, len(tokens))
	for i, t := range tokens {
		terms[i] = Resolve(t)
	}
	return Query{raw: raw, tokens: tokens, terms: terms}
}

// Raw returns the original query text.
func (q Query) Raw() string { return q.raw }

// Tokens returns the tokens in input order.
func (q Query) Tokens() []string { return q.tokens }

// Terms returns the resolved terms in input order.
func (q Query) Terms() []Term { return q.terms }

// IsEmpty reports whether the query has no tokens.
func (q Query) IsEmpty() bool { return len(q.tokens) == 0 }

// FreeText returns the lower-cased free-text terms.
func (q Query) FreeText() []string {
	var out []string
	for _, t := range q.terms {
		if t.Kind == FreeText {
			out = append(out, t.Value)
		}
	}
	return out
}

// Resolve classifies a single token.
func Resolve(token string) Term {
	key, value, ok := splitDirective(token)
	if !ok {
		return Term{Kind: FreeText, Token: token, Value: strings.ToLower(unescape(token))}
	}

	field, known := LookupField(key)
	if !known {
		return Term{Kind: Never, Token: token}
	}

	value = strings.TrimSpace(unescape(value))
	if value == "" {
		return Term{Kind: Skip, Field: field, Token: token}
	}
	lower := strings.ToLower(value)

	switch {
	case field.IsNumeric():
		op, n, ok := parseComparison(value)
		if !ok {
			return Term{Kind: Skip, Field: field, Token: token}
		}
		return Term{Kind: Numeric, Field: field, Token: token, Value: lower, Op: op, Number: n}
	case field == FieldType:
		return Term{Kind: Category, Field: field, Token: token, Value: lower}
	case field == FieldRarity:
		return resolveRarity(token, lower)
	case field == FieldElement:
		return resolveElements(token, lower)
	default:
		return Term{Kind: Text, Field: field, Token: token, Value: lower}
	}
}

func resolveRarity(token, value string) Term {
	op, rest := splitOp(value)
	if op == "" {
		return Term{Kind: Rarity, Field: FieldRarity, Token: token, Value: value}
	}
	rest = strings.TrimSpace(rest)
	if rest == "" {
		return Term{Kind: Skip, Field: FieldRarity, Token: token}
	}
	for _, r := range card.Rarities() {
		if strings.HasPrefix(string(r), rest) {
			return Term{
				Kind: Rarity, Field: FieldRarity, Token: token,
				Value: string(r), Op: op, Number: float64(r.Rank()),
			}
		}
	}
	return Term{Kind: Never, Field: FieldRarity, Token: token}
}

func resolveElements(token, value string) Term {
	var els []card.Element
	for _, part := range strings.Split(value, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		e, ok := card.ParseElement(part)
		if !ok {
			return Term{Kind: Never, Field: FieldElement, Token: token}
		}
		els = append(els, e)
	}
	if len(els) == 0 {
		return Term{Kind: Skip, Field: FieldElement, Token: token}
	}
	return Term{Kind: Element, Field: FieldElement, Token: token, Value: value, Elements: els}
}

// opPrefixes is ordered so two-character operators win over their one-character prefixes.
var opPrefixes = []struct {
	prefix string
	op     filter.Op
}{
	{">=", filter.OpGTE},
	{"<=", filter.OpLTE},
	{"!=", filter.OpNE},
	{">", filter.OpGT},
	{"<", filter.OpLT},
	{"!", filter.OpNE},
	{"=", filter.OpEQ},
}

func splitOp(value string) (filter.Op, string) {
	for _, p := range opPrefixes {
		if strings.HasPrefix(value, p.prefix) {
			return p.op, value[len(p.prefix):]
		}
	}
	return "", value
}

// parseComparison reads an optional operator and a finite numeric literal.
func parseComparison(value string) (filter.Op, float64, bool) {
	op, rest := splitOp(value)
	if op == "" {
		op = filter.OpEQ
	}
	n := filter.NewNumeric(op, rest)
	v, ok := n.Value()
	if !ok {
		return "", 0, false
	}
	return op, v, true
}

// splitDirective splits at the first colon not preceded by a backslash.
func splitDirective(token string) (string, string, bool) {
	for i := 0; i < len(token); i++ {
		switch token[i] {
		case '\\':
			i++
		case ':':
			return token[:i], token[i+1:], true
		}
	}
	return "", "", false
}

func unescape(s string) string {
	if !strings.Contains(s, `\:`) {
		return s
	}
	return strings.ReplaceAll(s, `\:`, ":")
}

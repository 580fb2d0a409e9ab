package search

import (
	"strings"
	"unicode/utf8"

	"github.com/sahilm/fuzzy"

	"github.com/kailas-cloud/cardquery/internal/index"
	"github.com/kailas-cloud/cardquery/internal/query"
)

// MinAutocompleteRunes is the shortest input that produces completions.
const MinAutocompleteRunes = 2

// autocomplete draws candidates from card names, field directives and keywords,
// in that order, until limit is reached.
func autocomplete(snap *index.Snapshot, partial string, limit int) []string {
	in := strings.ToLower(strings.TrimSpace(partial))
	out := make([]string, 0)
	if utf8.RuneCountInString(in) < MinAutocompleteRunes || limit <= 0 {
		return out
	}

	seen := make(map[string]struct{})
	add := func(s string) bool {
		k := strings.ToLower(s)
		if _, dup := seen[k]; dup {
			return len(out) < limit
		}
		seen[k] = struct{}{}
		out = append(out, s)
		return len(out) < limit
	}

	for _, name := range snap.Names() {
		if strings.Contains(strings.ToLower(name), in) && !add(name) {
			return out
		}
	}
	for _, f := range query.Fields() {
		if strings.HasPrefix(f.String(), in) && !add(f.String()+":") {
			return out
		}
	}
	for _, kw := range snap.Keywords() {
		if strings.Contains(strings.ToLower(kw), in) && !add(kw) {
			return out
		}
	}
	return out
}

// nameSource adapts snapshot names to fuzzy.Source.
type nameSource []string

func (n nameSource) String(i int) string { return strings.ToLower(n[i]) }
func (n nameSource) Len() int            { return len(n) }

// didYouMean proposes card names close to the free-text terms of a query
// that matched nothing, rendered as quoted queries. A card named exactly
// like the terms comes first.
func didYouMean(snap *index.Snapshot, terms []string, limit int) []string {
	pattern := strings.TrimSpace(strings.Join(terms, " "))
	if pattern == "" || limit <= 0 {
		return nil
	}

	var out []string
	exact := ""
	if c, ok := snap.LookupName(pattern); ok {
		exact = c.Name()
		out = append(out, `"`+exact+`"`)
		if len(out) == limit {
			return out
		}
	}

	names := nameSource(snap.Names())
	for _, m := range fuzzy.FindFrom(pattern, names) {
		if strings.EqualFold(names[m.Index], exact) {
			continue
		}
		out = append(out, `"`+names[m.Index]+`"`)
		if len(out) == limit {
			break
		}
	}
	return out
}

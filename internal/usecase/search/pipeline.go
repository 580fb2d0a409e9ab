package search

import (
	"github.com/kailas-cloud/cardquery/internal/domain/search/filter"
	"github.com/kailas-cloud/cardquery/internal/index"
	"github.com/kailas-cloud/cardquery/internal/query"
)

// plan is the compiled predicate list of one search.
type plan struct {
	preds []predicate
	words []string
	never bool
}

// compile combines structured filters and query terms into one AND.
func compile(f filter.Filters, q query.Query) plan {
	p := plan{preds: filterPredicates(f)}
	for _, t := range q.Terms() {
		pred, ok, never := termPredicate(t)
		if never {
			p.never = true
			return p
		}
		if !ok {
			continue
		}
		if t.Kind == query.FreeText && index.IsWord(t.Value) {
			p.words = append(p.words, t.Value)
		}
		p.preds = append(p.preds, pred)
	}
	return p
}

// run returns matching corpus positions in corpus order.
func (p plan) run(snap *index.Snapshot) []int {
	if p.never {
		return nil
	}

	var mask []bool
	for _, w := range p.words {
		m, ok := snap.Candidates(w)
		if !ok {
			continue
		}
		if mask == nil {
			mask = m
			continue
		}
		for i := range mask {
			mask[i] = mask[i] && m[i]
		}
	}

	out := make([]int, 0)
	for i := 0; i < snap.Len(); i++ {
		if mask != nil && !mask[i] {
			continue
		}
		if p.match(snap.Doc(i)) {
			out = append(out, i)
		}
	}
	return out
}

func (p plan) match(d *index.Doc) bool {
	for _, pred := range p.preds {
		if !pred(d) {
			return false
		}
	}
	return true
}

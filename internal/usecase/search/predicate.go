package search

import (
	"strings"

	"github.com/kailas-cloud/cardquery/internal/domain/search/filter"
	"github.com/kailas-cloud/cardquery/internal/index"
	"github.com/kailas-cloud/cardquery/internal/query"
)

// predicate is a pure test over one indexed card.
type predicate func(d *index.Doc) bool

// filterPredicates compiles the active structured filters, cheapest first.
func filterPredicates(f filter.Filters) []predicate {
	var ps []predicate

	if f.Categories.IsActive() {
		sel := f.Categories
		ps = append(ps, func(d *index.Doc) bool { return sel.Match(d.Card.Category()) })
	}
	if f.Rarities.IsActive() {
		sel := f.Rarities
		ps = append(ps, func(d *index.Doc) bool { return sel.Match(d.Card.Rarity()) })
	}
	if f.Cost.IsActive() {
		n := f.Cost
		ps = append(ps, func(d *index.Doc) bool { return n.Match(d.Card.Cost()) })
	}
	if f.Strength.IsActive() {
		ps = append(ps, strengthPredicate(f.Strength.Match))
	}
	if f.Price.IsActive() {
		r := f.Price
		ps = append(ps, func(d *index.Doc) bool {
			v, ok := d.Card.Price()
			return r.Match(v, ok)
		})
	}
	if f.Elements.IsActive() {
		e := f.Elements
		ps = append(ps, func(d *index.Doc) bool { return e.Match(d.ElementSet) })
	}

	texts := []struct {
		f     filter.Text
		field func(d *index.Doc) string
	}{
		{f.Name, func(d *index.Doc) string { return d.Name }},
		{f.Text, func(d *index.Doc) string { return d.Description }},
		{f.Artist, func(d *index.Doc) string { return d.Artist }},
		{f.Set, func(d *index.Doc) string { return d.Set }},
		{f.Flavor, func(d *index.Doc) string { return d.Flavor }},
	}
	for _, t := range texts {
		if !t.f.IsActive() {
			continue
		}
		txt, field := t.f, t.field
		ps = append(ps, func(d *index.Doc) bool { return txt.Match(field(d)) })
	}
	if f.Keywords.IsActive() {
		kw := f.Keywords
		ps = append(ps, func(d *index.Doc) bool { return kw.MatchAny(d.Keywords) })
	}
	return ps
}

// strengthPredicate rejects cards without strength regardless of the comparison.
func strengthPredicate(match func(float64) bool) predicate {
	return func(d *index.Doc) bool {
		if !d.Card.Category().IsCreatureLike() {
			return false
		}
		v, ok := d.Card.Strength()
		return ok && match(v)
	}
}

// textFields maps text directives to the lower-cased field they search.
var textFields = map[query.Field]func(d *index.Doc) []string{
	query.FieldName:        func(d *index.Doc) []string { return []string{d.Name} },
	query.FieldDescription: func(d *index.Doc) []string { return []string{d.Description} },
	query.FieldArtist:      func(d *index.Doc) []string { return []string{d.Artist} },
	query.FieldSet:         func(d *index.Doc) []string { return []string{d.Set} },
	query.FieldFlavor:      func(d *index.Doc) []string { return []string{d.Flavor} },
	query.FieldKeyword:     func(d *index.Doc) []string { return d.Keywords },
}

// termPredicate compiles one resolved query term. ok is false for terms that
// impose no constraint; never is true for terms no card can satisfy.
func termPredicate(t query.Term) (p predicate, ok, never bool) {
	switch t.Kind {
	case query.FreeText:
		v := t.Value
		return func(d *index.Doc) bool { return d.ContainsText(v) }, true, false

	case query.Text:
		values, known := textFields[t.Field]
		if !known {
			return nil, false, true
		}
		v := t.Value
		return func(d *index.Doc) bool {
			for _, s := range values(d) {
				if strings.Contains(s, v) {
					return true
				}
			}
			return false
		}, true, false

	case query.Numeric:
		op, n := t.Op, t.Number
		cmp := func(v float64) bool { return op.Compare(v, n) }
		switch t.Field {
		case query.FieldCost:
			return func(d *index.Doc) bool { return cmp(d.Card.Cost()) }, true, false
		case query.FieldStrength:
			return strengthPredicate(cmp), true, false
		case query.FieldPrice:
			return func(d *index.Doc) bool {
				v, has := d.Card.Price()
				return has && cmp(v)
			}, true, false
		}
		return nil, false, true

	case query.Category:
		v := t.Value
		return func(d *index.Doc) bool { return strings.HasPrefix(d.Category, v) }, true, false

	case query.Rarity:
		if t.Op == "" {
			v := t.Value
			return func(d *index.Doc) bool { return strings.HasPrefix(d.Rarity, v) }, true, false
		}
		op, rank := t.Op, t.Number
		return func(d *index.Doc) bool {
			return op.Compare(float64(d.Card.Rarity().Rank()), rank)
		}, true, false

	case query.Element:
		els := t.Elements
		return func(d *index.Doc) bool {
			for _, e := range els {
				if !d.ElementSet.Has(e) {
					return false
				}
			}
			return true
		}, true, false

	case query.Never:
		return nil, false, true
	}
	return nil, false, false
}

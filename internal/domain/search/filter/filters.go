package filter

import (
	"math"

	"github.com/kailas-cloud/cardquery/internal/domain/card"
)

// Filters is the structured filter configuration, one field per searchable
// attribute. Zero-valued fields are inactive; active fields AND together.
// The caller owns the value and updates it through the With setters.
type Filters struct {
	Name       Text
	Text       Text
	Artist     Text
	Set        Text
	Keywords   Text
	Flavor     Text
	Cost       Numeric
	Strength   Numeric
	Elements   Elements
	Rarities   MultiSelect[card.Rarity]
	Categories MultiSelect[card.Category]
	Price      Range
}

// IsEmpty reports whether no field constrains results.
func (f Filters) IsEmpty() bool {
	return !f.Name.IsActive() &&
		!f.Text.IsActive() &&
		!f.Artist.IsActive() &&
		!f.Set.IsActive() &&
		!f.Keywords.IsActive() &&
		!f.Flavor.IsActive() &&
		!f.Cost.IsActive() &&
		!f.Strength.IsActive() &&
		!f.Elements.IsActive() &&
		!f.Rarities.IsActive() &&
		!f.Categories.IsActive() &&
		!f.Price.IsActive()
}

// ActiveCount returns the number of active fields.
func (f Filters) ActiveCount() int {
	n := 0
	for _, active := range []bool{
		f.Name.IsActive(), f.Text.IsActive(), f.Artist.IsActive(), f.Set.IsActive(),
		f.Keywords.IsActive(), f.Flavor.IsActive(), f.Cost.IsActive(), f.Strength.IsActive(),
		f.Elements.IsActive(), f.Rarities.IsActive(), f.Categories.IsActive(), f.Price.IsActive(),
	} {
		if active {
			n++
		}
	}
	return n
}

// WithName returns a copy with the name filter replaced.
func (f Filters) WithName(v string) Filters { f.Name = NewText(v); return f }

// WithText returns a copy with the rules-text filter replaced.
func (f Filters) WithText(v string) Filters { f.Text = NewText(v); return f }

// WithArtist returns a copy with the artist filter replaced.
func (f Filters) WithArtist(v string) Filters { f.Artist = NewText(v); return f }

// WithSet returns a copy with the set filter replaced.
func (f Filters) WithSet(v string) Filters { f.Set = NewText(v); return f }

// WithKeywords returns a copy with the keyword filter replaced.
func (f Filters) WithKeywords(v string) Filters { f.Keywords = NewText(v); return f }

// WithFlavor returns a copy with the flavor filter replaced.
func (f Filters) WithFlavor(v string) Filters { f.Flavor = NewText(v); return f }

// WithCost returns a copy with the cost comparison replaced.
func (f Filters) WithCost(op Op, raw string) Filters { f.Cost = NewNumeric(op, raw); return f }

// WithStrength returns a copy with the strength comparison replaced.
func (f Filters) WithStrength(op Op, raw string) Filters { f.Strength = NewNumeric(op, raw); return f }

// WithElements returns a copy with the element selection replaced.
func (f Filters) WithElements(mode ElementMode, els ...card.Element) Filters {
	f.Elements = NewElements(mode, els...)
	return f
}

// WithRarities returns a copy with the rarity selection replaced.
func (f Filters) WithRarities(rs ...card.Rarity) Filters {
	f.Rarities = NewMultiSelect(rs...)
	return f
}

// WithCategories returns a copy with the category selection replaced.
func (f Filters) WithCategories(cs ...card.Category) Filters {
	f.Categories = NewMultiSelect(cs...)
	return f
}

// WithPrice returns a copy with the price range replaced.
func (f Filters) WithPrice(lo, hi *float64) Filters { f.Price = NewRange(lo, hi); return f }

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

package cardquery

import (
	"time"

	"github.com/kailas-cloud/cardquery/internal/domain/card"
	"github.com/kailas-cloud/cardquery/internal/domain/search/filter"
	"github.com/kailas-cloud/cardquery/internal/domain/search/request"
	"github.com/kailas-cloud/cardquery/internal/domain/search/result"
	"github.com/kailas-cloud/cardquery/internal/domain/search/sortkey"
)

// Element is an element tag.
type Element = card.Element

// Element values.
const (
	Fire   = card.Fire
	Water  = card.Water
	Earth  = card.Earth
	Air    = card.Air
	Light  = card.Light
	Shadow = card.Shadow
)

// Rarity is an ordered card rarity.
type Rarity = card.Rarity

// Rarity values, lowest first.
const (
	Common    = card.Common
	Uncommon  = card.Uncommon
	Rare      = card.Rare
	Epic      = card.Epic
	Legendary = card.Legendary
)

// Category is the card shape. Only Creature carries strength.
type Category = card.Category

// Category values.
const (
	Creature    = card.Creature
	Spell       = card.Spell
	Artifact    = card.Artifact
	Enchantment = card.Enchantment
)

// Op is a numeric comparison operator.
type Op = filter.Op

// Comparison operators.
const (
	OpEQ  = filter.OpEQ
	OpNE  = filter.OpNE
	OpLT  = filter.OpLT
	OpGT  = filter.OpGT
	OpLTE = filter.OpLTE
	OpGTE = filter.OpGTE
)

// ElementMode selects how an element selection is compared with a card.
type ElementMode = filter.ElementMode

// Element modes.
const (
	Exactly   = filter.Exactly
	Including = filter.Including
	AtMost    = filter.AtMost
	Excluding = filter.Excluding
)

// SortKey is the attribute results are ordered by.
type SortKey = sortkey.Key

// Sort keys.
const (
	SortName     = sortkey.Name
	SortCost     = sortkey.Cost
	SortRarity   = sortkey.Rarity
	SortCategory = sortkey.Category
	SortStrength = sortkey.Strength
	SortSet      = sortkey.Set
	SortPrice    = sortkey.Price
)

// Direction is the sort direction.
type Direction = sortkey.Direction

// Sort directions.
const (
	Asc  = sortkey.Asc
	Desc = sortkey.Desc
)

// Card is one card of the corpus. Strength must be set for creatures and
// only for creatures. Category, rarity and element names are case-insensitive.
type Card struct {
	ID          string
	Name        string
	Cost        float64
	Category    Category
	Description string
	Rarity      Rarity
	Elements    []Element
	Keywords    []string
	Strength    *float64
	Artist      string
	Set         string
	Flavor      string
	Price       *float64
}

// Filters are the structured search filters. The zero value matches
// everything; each With method returns a modified copy.
type Filters struct {
	f filter.Filters
}

// WithName constrains the name to contain v (case-insensitive).
func (f Filters) WithName(v string) Filters { return Filters{f.f.WithName(v)} }

// WithText constrains the rules text to contain v.
func (f Filters) WithText(v string) Filters { return Filters{f.f.WithText(v)} }

// WithArtist constrains the artist to contain v.
func (f Filters) WithArtist(v string) Filters { return Filters{f.f.WithArtist(v)} }

// WithSet constrains the set name to contain v.
func (f Filters) WithSet(v string) Filters { return Filters{f.f.WithSet(v)} }

// WithKeywords requires a keyword containing v.
func (f Filters) WithKeywords(v string) Filters { return Filters{f.f.WithKeywords(v)} }

// WithFlavor constrains the flavor text to contain v.
func (f Filters) WithFlavor(v string) Filters { return Filters{f.f.WithFlavor(v)} }

// WithCost compares cost with raw as typed; empty or partial input is ignored.
func (f Filters) WithCost(op Op, raw string) Filters { return Filters{f.f.WithCost(op, raw)} }

// WithStrength compares strength with raw; non-creatures never match an active filter.
func (f Filters) WithStrength(op Op, raw string) Filters { return Filters{f.f.WithStrength(op, raw)} }

// WithElements sets the element selection and mode.
func (f Filters) WithElements(mode ElementMode, els ...Element) Filters {
	return Filters{f.f.WithElements(mode, els...)}
}

// WithRarities keeps cards of any listed rarity.
func (f Filters) WithRarities(rs ...Rarity) Filters { return Filters{f.f.WithRarities(rs...)} }

// WithCategories keeps cards of any listed category.
func (f Filters) WithCategories(cs ...Category) Filters { return Filters{f.f.WithCategories(cs...)} }

// WithPrice keeps priced cards within [lo, hi]; nil leaves an end open.
func (f Filters) WithPrice(lo, hi *float64) Filters { return Filters{f.f.WithPrice(lo, hi)} }

// IsEmpty reports whether no filter is active.
func (f Filters) IsEmpty() bool { return f.f.IsEmpty() }

// Preferences control ordering and pagination.
type Preferences struct {
	p request.Preferences
}

// DefaultPreferences sorts by name ascending, 20 cards per page, first page.
func DefaultPreferences() Preferences {
	return Preferences{request.DefaultPreferences()}
}

// WithSort returns a copy ordered by key in dir. Unknown values fall back to name ascending.
func (p Preferences) WithSort(key SortKey, dir Direction) Preferences {
	return Preferences{p.internal().WithSort(key, dir)}
}

// WithPageSize returns a copy with n cards per page.
func (p Preferences) WithPageSize(n int) Preferences {
	return Preferences{p.internal().WithPageSize(n)}
}

// WithPage returns a copy showing the 1-based page n.
func (p Preferences) WithPage(n int) Preferences {
	return Preferences{p.internal().WithPage(n)}
}

// SortKey returns the sort key.
func (p Preferences) SortKey() SortKey { return p.internal().SortKey() }

// Direction returns the sort direction.
func (p Preferences) Direction() Direction { return p.internal().Direction() }

// PageSize returns the number of cards per page.
func (p Preferences) PageSize() int { return p.internal().PageSize() }

// Page returns the 1-based page number.
func (p Preferences) Page() int { return p.internal().Page() }

// internal treats the zero value as DefaultPreferences.
func (p Preferences) internal() request.Preferences {
	if p.p.PageSize() == 0 {
		return request.DefaultPreferences()
	}
	return p.p
}

// Result is one page of search results.
type Result struct {
	Cards       []Card
	Total       int
	Elapsed     time.Duration
	Suggestions []string
	Warnings    []string
	Generation  uint64
}

// Stats describes the current index.
type Stats struct {
	Built      bool
	Generation uint64
	Cards      int
	Tokens     int
	Names      int
	Keywords   int
}

func toInternalCard(c Card) (card.Card, error) {
	p := card.Params{
		ID:          c.ID,
		Name:        c.Name,
		Cost:        c.Cost,
		Category:    c.Category,
		Description: c.Description,
		Rarity:      c.Rarity,
		Elements:    c.Elements,
		Keywords:    c.Keywords,
		Strength:    c.Strength,
		Artist:      c.Artist,
		Set:         c.Set,
		Flavor:      c.Flavor,
		Price:       c.Price,
	}
	if cat, ok := card.ParseCategory(string(c.Category)); ok {
		p.Category = cat
	}
	if r, ok := card.ParseRarity(string(c.Rarity)); ok {
		p.Rarity = r
	}
	return card.New(p)
}

func fromInternalCard(c card.Card) Card {
	p := c.Params()
	return Card{
		ID:          p.ID,
		Name:        p.Name,
		Cost:        p.Cost,
		Category:    p.Category,
		Description: p.Description,
		Rarity:      p.Rarity,
		Elements:    p.Elements,
		Keywords:    p.Keywords,
		Strength:    p.Strength,
		Artist:      p.Artist,
		Set:         p.Set,
		Flavor:      p.Flavor,
		Price:       p.Price,
	}
}

func fromInternalResult(r *result.Result) Result {
	cards := make([]Card, len(r.Cards()))
	for i, c := range r.Cards() {
		cards[i] = fromInternalCard(c)
	}
	return Result{
		Cards:       cards,
		Total:       r.Total(),
		Elapsed:     r.Elapsed(),
		Suggestions: r.Suggestions(),
		Warnings:    r.Warnings(),
		Generation:  r.Generation(),
	}
}

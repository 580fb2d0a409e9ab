package chi

import (
	"fmt"

	"github.com/kailas-cloud/cardquery/internal/domain"
	"github.com/kailas-cloud/cardquery/internal/domain/card"
	"github.com/kailas-cloud/cardquery/internal/domain/search/filter"
	"github.com/kailas-cloud/cardquery/internal/domain/search/request"
	"github.com/kailas-cloud/cardquery/internal/domain/search/result"
	"github.com/kailas-cloud/cardquery/internal/domain/search/sortkey"
	"github.com/kailas-cloud/cardquery/internal/repository/record"
	searchuc "github.com/kailas-cloud/cardquery/internal/usecase/search"
)

// SearchRequest is the body of POST /api/v1/search.
type SearchRequest struct {
	Query     string       `json:"query"`
	Filters   *FiltersBody `json:"filters,omitempty"`
	Sort      string       `json:"sort,omitempty"`
	Direction string       `json:"direction,omitempty"`
	PageSize  int          `json:"page_size,omitempty"`
	Page      int          `json:"page,omitempty"`
}

// FiltersBody carries the structured filters. Absent fields are inactive.
type FiltersBody struct {
	Name       string        `json:"name,omitempty"`
	Text       string        `json:"text,omitempty"`
	Artist     string        `json:"artist,omitempty"`
	Set        string        `json:"set,omitempty"`
	Keywords   string        `json:"keywords,omitempty"`
	Flavor     string        `json:"flavor,omitempty"`
	Cost       *NumericBody  `json:"cost,omitempty"`
	Strength   *NumericBody  `json:"strength,omitempty"`
	Elements   *ElementsBody `json:"elements,omitempty"`
	Rarities   []string      `json:"rarities,omitempty"`
	Categories []string      `json:"categories,omitempty"`
	Price      *RangeBody    `json:"price,omitempty"`
}

// NumericBody is an operator plus the raw value as typed by the user.
// An empty or unparseable value leaves the filter inactive.
type NumericBody struct {
	Op    string `json:"op"`
	Value string `json:"value"`
}

// ElementsBody is an element selection with its comparison mode.
type ElementsBody struct {
	Mode     string   `json:"mode"`
	Selected []string `json:"selected"`
}

// RangeBody is a closed interval with optional ends.
type RangeBody struct {
	Min *float64 `json:"min,omitempty"`
	Max *float64 `json:"max,omitempty"`
}

// SearchResponse is the body of a successful search.
type SearchResponse struct {
	Cards       []record.Card `json:"cards"`
	Total       int           `json:"total"`
	Page        int           `json:"page"`
	PageSize    int           `json:"page_size"`
	ElapsedMS   float64       `json:"elapsed_ms"`
	Suggestions []string      `json:"suggestions"`
	Warnings    []string      `json:"warnings"`
	Generation  uint64        `json:"generation"`
}

// AutocompleteResponse is the body of GET /api/v1/autocomplete.
type AutocompleteResponse struct {
	Suggestions []string `json:"suggestions"`
}

// CorpusResponse reports a corpus replacement or reload.
type CorpusResponse struct {
	Generation uint64 `json:"generation"`
	Cards      int    `json:"cards"`
	Sources    int    `json:"sources,omitempty"`
}

// StatsResponse is the body of GET /api/v1/corpus.
type StatsResponse struct {
	Built      bool   `json:"built"`
	Generation uint64 `json:"generation"`
	Cards      int    `json:"cards"`
	Tokens     int    `json:"tokens"`
	Names      int    `json:"names"`
	Keywords   int    `json:"keywords"`
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

// searchRequestFromBody converts the envelope. Closed-set values (sort key,
// direction, element mode, rarity, category, element) must be known; the
// query text and numeric values are never rejected.
func searchRequestFromBody(body SearchRequest, defaultPageSize int) (request.Request, error) {
	key := sortkey.Name
	if body.Sort != "" {
		k, ok := sortkey.Parse(body.Sort)
		if !ok {
			return request.Request{}, fmt.Errorf("%w: unknown sort key %q", domain.ErrInvalidRequest, body.Sort)
		}
		key = k
	}
	dir := sortkey.Asc
	if body.Direction != "" {
		d, ok := sortkey.ParseDirection(body.Direction)
		if !ok {
			return request.Request{}, fmt.Errorf("%w: unknown direction %q", domain.ErrInvalidRequest, body.Direction)
		}
		dir = d
	}
	if body.PageSize < 0 || body.Page < 0 {
		return request.Request{}, fmt.Errorf("%w: page and page_size must not be negative", domain.ErrInvalidRequest)
	}
	pageSize := body.PageSize
	if pageSize == 0 {
		pageSize = defaultPageSize
	}

	f, err := filtersFromBody(body.Filters)
	if err != nil {
		return request.Request{}, err
	}
	prefs := request.NewPreferences(key, dir, pageSize, body.Page)
	return request.New(body.Query, f, prefs), nil
}

func filtersFromBody(b *FiltersBody) (filter.Filters, error) {
	var f filter.Filters
	if b == nil {
		return f, nil
	}
	f = f.WithName(b.Name).
		WithText(b.Text).
		WithArtist(b.Artist).
		WithSet(b.Set).
		WithKeywords(b.Keywords).
		WithFlavor(b.Flavor)

	if b.Cost != nil {
		f = f.WithCost(opFromBody(b.Cost.Op), b.Cost.Value)
	}
	if b.Strength != nil {
		f = f.WithStrength(opFromBody(b.Strength.Op), b.Strength.Value)
	}
	if b.Elements != nil && len(b.Elements.Selected) > 0 {
		mode := filter.Including
		if b.Elements.Mode != "" {
			mode = filter.ElementMode(b.Elements.Mode)
			if !mode.IsValid() {
				return f, fmt.Errorf("%w: unknown element mode %q", domain.ErrInvalidRequest, b.Elements.Mode)
			}
		}
		els := make([]card.Element, 0, len(b.Elements.Selected))
		for _, raw := range b.Elements.Selected {
			e, ok := card.ParseElement(raw)
			if !ok {
				return f, fmt.Errorf("%w: unknown element %q", domain.ErrInvalidRequest, raw)
			}
			els = append(els, e)
		}
		f = f.WithElements(mode, els...)
	}
	if len(b.Rarities) > 0 {
		rs := make([]card.Rarity, 0, len(b.Rarities))
		for _, raw := range b.Rarities {
			r, ok := card.ParseRarity(raw)
			if !ok {
				return f, fmt.Errorf("%w: unknown rarity %q", domain.ErrInvalidRequest, raw)
			}
			rs = append(rs, r)
		}
		f = f.WithRarities(rs...)
	}
	if len(b.Categories) > 0 {
		cs := make([]card.Category, 0, len(b.Categories))
		for _, raw := range b.Categories {
			c, ok := card.ParseCategory(raw)
			if !ok {
				return f, fmt.Errorf("%w: unknown category %q", domain.ErrInvalidRequest, raw)
			}
			cs = append(cs, c)
		}
		f = f.WithCategories(cs...)
	}
	if b.Price != nil {
		f = f.WithPrice(b.Price.Min, b.Price.Max)
	}
	return f, nil
}

// opFromBody resolves an operator spelling. Unknown spellings produce an
// invalid Op, which leaves the numeric filter inactive.
func opFromBody(s string) filter.Op {
	if op, ok := filter.ParseOp(s); ok {
		return op
	}
	return filter.Op(s)
}

func searchResponseFromResult(res *result.Result, prefs request.Preferences) SearchResponse {
	cards := record.FromCards(res.Cards())
	suggestions := res.Suggestions()
	if suggestions == nil {
		suggestions = []string{}
	}
	warns := res.Warnings()
	if warns == nil {
		warns = []string{}
	}
	return SearchResponse{
		Cards:       cards,
		Total:       res.Total(),
		Page:        prefs.Page(),
		PageSize:    prefs.PageSize(),
		ElapsedMS:   float64(res.Elapsed().Microseconds()) / 1000,
		Suggestions: suggestions,
		Warnings:    warns,
		Generation:  res.Generation(),
	}
}

func statsToResponse(st searchuc.Stats) StatsResponse {
	return StatsResponse{
		Built:      st.Built,
		Generation: st.Generation,
		Cards:      st.Cards,
		Tokens:     st.Tokens,
		Names:      st.Names,
		Keywords:   st.Keywords,
	}
}

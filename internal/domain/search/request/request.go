package request

import (
	"unicode/utf8"

	"github.com/kailas-cloud/cardquery/internal/domain/search/filter"
	"github.com/kailas-cloud/cardquery/internal/domain/search/sortkey"
)

// Search parameter limits.
const (
	// MaxQueryLength is the maximum query length in bytes; longer input is truncated.
	MaxQueryLength  = 1024
	DefaultPageSize = 20
	MaxPageSize     = 500
)

// Preferences control ordering and pagination. They never affect which cards match.
type Preferences struct {
	key      sortkey.Key
	dir      sortkey.Direction
	pageSize int
	page     int
}

// NewPreferences normalizes sort and page settings.
// Defaults: key=name, dir=asc, pageSize=20, page=1. Page size is clamped to MaxPageSize.
func NewPreferences(key sortkey.Key, dir sortkey.Direction, pageSize, page int) Preferences {
	if !key.IsValid() {
		key = sortkey.Name
	}
	if !dir.IsValid() {
		dir = sortkey.Asc
	}
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}
	if page < 1 {
		page = 1
	}
	return Preferences{key: key, dir: dir, pageSize: pageSize, page: page}
}

// DefaultPreferences returns name-ascending, first page of DefaultPageSize.
func DefaultPreferences() Preferences {
	return NewPreferences(sortkey.Name, sortkey.Asc, DefaultPageSize, 1)
}

// SortKey returns the sort key.
func (p Preferences) SortKey() sortkey.Key { return p.key }

// Direction returns the sort direction.
func (p Preferences) Direction() sortkey.Direction { return p.dir }

// PageSize returns the number of cards per page.
func (p Preferences) PageSize() int { return p.pageSize }

// Page returns the 1-based page number.
func (p Preferences) Page() int { return p.page }

// WithSort returns a copy with a new key and direction.
func (p Preferences) WithSort(key sortkey.Key, dir sortkey.Direction) Preferences {
	return NewPreferences(key, dir, p.pageSize, p.page)
}

// WithPageSize returns a copy with a new page size.
func (p Preferences) WithPageSize(n int) Preferences {
	return NewPreferences(p.key, p.dir, n, p.page)
}

// WithPage returns a copy with a new page number.
func (p Preferences) WithPage(n int) Preferences {
	return NewPreferences(p.key, p.dir, p.pageSize, n)
}

// ClampPageSize returns a copy whose page size does not exceed limit.
func (p Preferences) ClampPageSize(limit int) Preferences {
	if limit > 0 && p.pageSize > limit {
		p.pageSize = limit
	}
	return p
}

// Bounds returns the [start, end) slice bounds of the page within total results.
// Pages past the end yield an empty range.
func (p Preferences) Bounds(total int) (int, int) {
	size := p.pageSize
	if size <= 0 {
		size = DefaultPageSize
	}
	page := max(p.page, 1)
	if total <= 0 || page-1 > (total-1)/size {
		return max(total, 0), max(total, 0)
	}
	start := (page - 1) * size
	end := start + size
	if end > total {
		end = total
	}
	return start, end
}

// Request is one search invocation: raw query text, structured filters and preferences.
type Request struct {
	query   string
	filters filter.Filters
	prefs   Preferences
}

// New builds a request. It never fails: overlong queries are truncated at a rune boundary.
func New(query string, filters filter.Filters, prefs Preferences) Request {
	if len(query) > MaxQueryLength {
		cut := MaxQueryLength
		for cut > 0 && !utf8.RuneStart(query[cut]) {
			cut--
		}
		query = query[:cut]
	}
	if prefs.pageSize == 0 {
		prefs = DefaultPreferences()
	}
	return Request{query: query, filters: filters, prefs: prefs}
}

// Query returns the raw query text.
func (r *Request) Query() string { return r.query }

// Filters returns the structured filters.
func (r *Request) Filters() filter.Filters { return r.filters }

// Preferences returns the sort and page preferences.
func (r *Request) Preferences() Preferences { return r.prefs }

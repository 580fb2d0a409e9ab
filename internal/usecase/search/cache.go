package search

import (
	"fmt"
	"strconv"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/kailas-cloud/cardquery/internal/domain/search/filter"
	"github.com/kailas-cloud/cardquery/internal/domain/search/request"
	"github.com/kailas-cloud/cardquery/internal/query"
)

// LRUCache is a bounded Cache backed by golang-lru.
type LRUCache struct {
	c *lru.Cache[string, []int]
}

// NewLRUCache creates a cache holding up to size entries.
func NewLRUCache(size int) (*LRUCache, error) {
	c, err := lru.New[string, []int](size)
	if err != nil {
		return nil, fmt.Errorf("create result cache: %w", err)
	}
	return &LRUCache{c: c}, nil
}

// Get returns the cached positions for key.
func (l *LRUCache) Get(key string) ([]int, bool) { return l.c.Get(key) }

// Add stores positions under key, evicting the least recently used entry when full.
func (l *LRUCache) Add(key string, positions []int) { l.c.Add(key, positions) }

// Purge drops every entry.
func (l *LRUCache) Purge() { l.c.Purge() }

// Len returns the number of cached entries.
func (l *LRUCache) Len() int { return l.c.Len() }

// cacheKey identifies an ordered match list. Pagination is excluded so every
// page of one search shares an entry. Every caller-supplied string is quoted so
// distinct requests never share a key.
func cacheKey(gen uint64, q query.Query, f filter.Filters, prefs request.Preferences) string {
	var b strings.Builder
	b.WriteString(strconv.FormatUint(gen, 10))
	b.WriteString("|q=[")
	for i, tok := range q.Tokens() {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Quote(strings.ToLower(tok)))
	}
	b.WriteString("]|")
	b.WriteString(string(prefs.SortKey()))
	b.WriteByte(' ')
	b.WriteString(string(prefs.Direction()))
	writeFilters(&b, f)
	return b.String()
}

func writeFilters(b *strings.Builder, f filter.Filters) {
	for _, t := range []struct {
		tag string
		f   filter.Text
	}{
		{"n", f.Name}, {"t", f.Text}, {"a", f.Artist}, {"s", f.Set}, {"k", f.Keywords}, {"f", f.Flavor},
	} {
		if t.f.IsActive() {
			fmt.Fprintf(b, "|%s=%q", t.tag, strings.ToLower(t.f.Value()))
		}
	}
	for _, n := range []struct {
		tag string
		f   filter.Numeric
	}{
		{"c", f.Cost}, {"str", f.Strength},
	} {
		if v, ok := n.f.Value(); ok {
			fmt.Fprintf(b, "|%s%s%s", n.tag, n.f.Op(), strconv.FormatFloat(v, 'g', -1, 64))
		}
	}
	if f.Elements.IsActive() {
		fmt.Fprintf(b, "|e:%s=%q", f.Elements.Mode(), f.Elements.Selected())
	}
	if f.Rarities.IsActive() {
		fmt.Fprintf(b, "|r=%q", f.Rarities.Values())
	}
	if f.Categories.IsActive() {
		fmt.Fprintf(b, "|cat=%q", f.Categories.Values())
	}
	if f.Price.IsActive() {
		b.WriteString("|p=")
		if lo := f.Price.Min(); lo != nil {
			b.WriteString(strconv.FormatFloat(*lo, 'g', -1, 64))
		}
		b.WriteByte(',')
		if hi := f.Price.Max(); hi != nil {
			b.WriteString(strconv.FormatFloat(*hi, 'g', -1, 64))
		}
	}
}

package search

import (
	"bytes"
	"cmp"
	"slices"
	"strings"
	"sync"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/kailas-cloud/cardquery/internal/domain/search/sortkey"
	"github.com/kailas-cloud/cardquery/internal/index"
)

// Collators are not safe for concurrent use.
var collators = sync.Pool{
	New: func() any { return collate.New(language.English, collate.IgnoreCase) },
}

// sortPositions orders positions in place. The sort is stable, so ties keep
// corpus order in both directions.
func sortPositions(snap *index.Snapshot, positions []int, key sortkey.Key, dir sortkey.Direction) {
	if len(positions) < 2 {
		return
	}
	compare := comparator(snap, positions, key)
	if dir == sortkey.Desc {
		slices.SortStableFunc(positions, func(a, b int) int { return compare(b, a) })
		return
	}
	slices.SortStableFunc(positions, compare)
}

func comparator(snap *index.Snapshot, positions []int, key sortkey.Key) func(a, b int) int {
	switch key {
	case sortkey.Cost:
		return func(a, b int) int {
			return cmp.Compare(snap.Doc(a).Card.Cost(), snap.Doc(b).Card.Cost())
		}
	case sortkey.Strength:
		return func(a, b int) int {
			sa, _ := snap.Doc(a).Card.Strength()
			sb, _ := snap.Doc(b).Card.Strength()
			return cmp.Compare(sa, sb)
		}
	case sortkey.Price:
		return func(a, b int) int {
			pa, _ := snap.Doc(a).Card.Price()
			pb, _ := snap.Doc(b).Card.Price()
			return cmp.Compare(pa, pb)
		}
	case sortkey.Rarity:
		return func(a, b int) int {
			return cmp.Compare(snap.Doc(a).Card.Rarity().Rank(), snap.Doc(b).Card.Rarity().Rank())
		}
	case sortkey.Category:
		return func(a, b int) int {
			return strings.Compare(string(snap.Doc(a).Card.Category()), string(snap.Doc(b).Card.Category()))
		}
	case sortkey.Set:
		return func(a, b int) int {
			return strings.Compare(snap.Doc(a).Card.Set(), snap.Doc(b).Card.Set())
		}
	default:
		keys := collationKeys(snap, positions)
		return func(a, b int) int { return bytes.Compare(keys[a], keys[b]) }
	}
}

// collationKeys computes name sort keys once per matched card.
func collationKeys(snap *index.Snapshot, positions []int) map[int][]byte {
	col := collators.Get().(*collate.Collator)
	defer collators.Put(col)

	var buf collate.Buffer
	keys := make(map[int][]byte, len(positions))
	for _, p := range positions {
		k := col.KeyFromString(&buf, snap.Doc(p).Card.Name())
		keys[p] = append([]byte(nil), k...)
		buf.Reset()
	}
	return keys
}

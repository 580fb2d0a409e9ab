package catalog

import (
	"context"
	"sort"
	"testing"

	"github.com/kailas-cloud/cardquery/internal/db"
	"github.com/kailas-cloud/cardquery/internal/domain/card"
)

const testPrefix = "cardquery:"

// memStore is an in-memory store for tests. Error hooks override behavior.
type memStore struct {
	data    map[string][]byte
	scanErr error
	getErr  error
	setErr  error
	delErr  error
	deleted []string
}

func newMemStore() *memStore {
	return &memStore{data: make(map[string][]byte)}
}

func (m *memStore) GetMulti(_ context.Context, keys []string) ([][]byte, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	out := make([][]byte, len(keys))
	for i, k := range keys {
		out[i] = m.data[k]
	}
	return out, nil
}

func (m *memStore) SetMulti(_ context.Context, items []db.KVItem) error {
	if m.setErr != nil {
		return m.setErr
	}
	for _, it := range items {
		m.data[it.Key] = it.Value
	}
	return nil
}

func (m *memStore) Del(_ context.Context, keys ...string) error {
	if m.delErr != nil {
		return m.delErr
	}
	for _, k := range keys {
		delete(m.data, k)
		m.deleted = append(m.deleted, k)
	}
	return nil
}

func (m *memStore) Scan(_ context.Context, _ string) ([]string, error) {
	if m.scanErr != nil {
		return nil, m.scanErr
	}
	keys := make([]string, 0, len(m.data))
	for k := range m.data {
		keys = append(keys, k)
	}
	// Reverse order so Load must restore corpus order itself.
	sort.Sort(sort.Reverse(sort.StringSlice(keys)))
	return keys, nil
}

func newTestRepo(t *testing.T) (*Repo, *memStore) {
	t.Helper()
	ms := newMemStore()
	return New(ms, testPrefix), ms
}

func floatPtr(f float64) *float64 { return &f }

func testCards(t *testing.T) []card.Card {
	t.Helper()
	return []card.Card{
		card.MustNew(card.Params{
			ID: "b", Name: "Fire Imp", Cost: 2, Category: card.Creature, Rarity: card.Common,
			Elements: []card.Element{card.Fire}, Strength: floatPtr(2),
		}),
		card.MustNew(card.Params{
			ID: "a", Name: "Water Shield", Cost: 1, Category: card.Spell, Rarity: card.Uncommon,
			Price: floatPtr(0.5),
		}),
	}
}

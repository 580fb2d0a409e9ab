// Package catalog stores the card corpus in Valkey/Redis, one JSON document per card.
package catalog

import (
	"context"
	"fmt"
	"sort"

	"github.com/kailas-cloud/cardquery/internal/db"
	"github.com/kailas-cloud/cardquery/internal/domain"
	"github.com/kailas-cloud/cardquery/internal/domain/card"
	"github.com/kailas-cloud/cardquery/internal/repository/record"
)

// store is the consumer interface for the catalog (ISP).
type store interface {
	GetMulti(ctx context.Context, keys []string) ([][]byte, error)
	SetMulti(ctx context.Context, items []db.KVItem) error
	Del(ctx context.Context, keys ...string) error
	Scan(ctx context.Context, pattern string) ([]string, error)
}

// Repo reads and replaces the stored corpus.
type Repo struct {
	store  store
	prefix string
}

// New creates a catalog repository. Keys are "<prefix>card:<id>".
func New(s store, prefix string) *Repo {
	return &Repo{store: s, prefix: prefix}
}

// Name identifies the source in logs.
func (r *Repo) Name() string { return "catalog:" + r.prefix }

func (r *Repo) cardKey(id string) string { return r.prefix + "card:" + id }

// Load returns every stored card in saved corpus order.
func (r *Repo) Load(ctx context.Context) ([]card.Card, error) {
	keys, err := r.store.Scan(ctx, r.cardKey("*"))
	if err != nil {
		return nil, fmt.Errorf("%w: scan cards: %w", domain.ErrCorpusSource, err)
	}
	if len(keys) == 0 {
		return []card.Card{}, nil
	}

	values, err := r.store.GetMulti(ctx, keys)
	if err != nil {
		return nil, fmt.Errorf("%w: get cards: %w", domain.ErrCorpusSource, err)
	}

	entries := make([]entry, 0, len(values))
	for i, data := range values {
		if data == nil {
			// deleted between SCAN and GET
			continue
		}
		e, err := unmarshalEntry(keys[i], data)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", domain.ErrCorpusSource, err)
		}
		entries = append(entries, e)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Position != entries[j].Position {
			return entries[i].Position < entries[j].Position
		}
		return entries[i].ID < entries[j].ID
	})

	records := make([]record.Card, len(entries))
	for i, e := range entries {
		records[i] = e.Card
	}
	cards, err := record.ToCards(records)
	if err != nil {
		return nil, fmt.Errorf("catalog: %w", err)
	}
	return cards, nil
}

// Replace stores cards and removes stored cards that are no longer present.
func (r *Repo) Replace(ctx context.Context, cards []card.Card) error {
	existing, err := r.store.Scan(ctx, r.cardKey("*"))
	if err != nil {
		return fmt.Errorf("scan cards: %w", err)
	}

	items := make([]db.KVItem, 0, len(cards))
	keep := make(map[string]struct{}, len(cards))
	for i, c := range cards {
		data, err := marshalEntry(record.FromCard(c), i)
		if err != nil {
			return err
		}
		key := r.cardKey(c.ID())
		keep[key] = struct{}{}
		items = append(items, db.KVItem{Key: key, Value: data})
	}

	if err := r.store.SetMulti(ctx, items); err != nil {
		return fmt.Errorf("store cards: %w", err)
	}

	var stale []string
	for _, key := range existing {
		if _, ok := keep[key]; !ok {
			stale = append(stale, key)
		}
	}
	if err := r.store.Del(ctx, stale...); err != nil {
		return fmt.Errorf("delete stale cards: %w", err)
	}
	return nil
}

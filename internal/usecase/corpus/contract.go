package corpus

import (
	"context"

	"github.com/kailas-cloud/cardquery/internal/domain/card"
)

// Source supplies cards from one place (a file, the catalog).
type Source interface {
	Name() string
	Load(ctx context.Context) ([]card.Card, error)
}

// Saver persists a replaced corpus.
type Saver interface {
	Replace(ctx context.Context, cards []card.Card) error
}

// Engine receives the assembled corpus.
type Engine interface {
	ReplaceCorpus(cards []card.Card) uint64
}

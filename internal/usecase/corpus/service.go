package corpus

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/kailas-cloud/cardquery/internal/domain"
	"github.com/kailas-cloud/cardquery/internal/domain/card"
)

// DefaultConcurrency bounds parallel source loads.
const DefaultConcurrency = 4

// Report summarizes a corpus replacement.
type Report struct {
	Generation uint64
	Cards      int
	Sources    int
}

// Service assembles the corpus from sources and hands it to the engine.
type Service struct {
	sources     []Source
	saver       Saver
	engine      Engine
	concurrency int
	logger      *zap.Logger
}

// New creates a corpus service. saver may be nil when nothing persists a replaced corpus.
func New(engine Engine, sources []Source, saver Saver, concurrency int, logger *zap.Logger) *Service {
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		sources:     sources,
		saver:       saver,
		engine:      engine,
		concurrency: concurrency,
		logger:      logger,
	}
}

// Reload loads every source concurrently and replaces the corpus with their
// concatenation in source order. Any source failure aborts the reload and
// leaves the current corpus in place.
func (s *Service) Reload(ctx context.Context) (Report, error) {
	start := time.Now()
	parts := make([][]card.Card, len(s.sources))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)
	for i, src := range s.sources {
		g.Go(func() error {
			cards, err := src.Load(gctx)
			if err != nil {
				return fmt.Errorf("load %s: %w", src.Name(), err)
			}
			parts[i] = cards
			s.logger.Debug("Corpus source loaded",
				zap.String("source", src.Name()),
				zap.Int("cards", len(cards)),
			)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		s.logger.Error("Corpus reload failed", zap.Error(err))
		return Report{}, err
	}

	var all []card.Card
	for _, p := range parts {
		all = append(all, p...)
	}

	gen := s.engine.ReplaceCorpus(all)
	s.logger.Info("Corpus reloaded",
		zap.Int("sources", len(s.sources)),
		zap.Int("cards", len(all)),
		zap.Uint64("generation", gen),
		zap.Duration("duration", time.Since(start)),
	)
	return Report{Generation: gen, Cards: len(all), Sources: len(s.sources)}, nil
}

// Replace persists cards (when a saver is configured) and swaps them in.
func (s *Service) Replace(ctx context.Context, cards []card.Card) (Report, error) {
	if err := validateIDs(cards); err != nil {
		return Report{}, err
	}
	if s.saver != nil {
		if err := s.saver.Replace(ctx, cards); err != nil {
			return Report{}, fmt.Errorf("save corpus: %w", err)
		}
	}
	gen := s.engine.ReplaceCorpus(cards)
	return Report{Generation: gen, Cards: len(cards)}, nil
}

// validateIDs rejects duplicate ids; the catalog stores one document per id.
func validateIDs(cards []card.Card) error {
	seen := make(map[string]struct{}, len(cards))
	for i := range cards {
		id := cards[i].ID()
		if _, dup := seen[id]; dup {
			return fmt.Errorf("%w: duplicate card id %q", domain.ErrInvalidRequest, id)
		}
		seen[id] = struct{}{}
	}
	return nil
}

package cardquery

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/kailas-cloud/cardquery/internal/domain/card"
	"github.com/kailas-cloud/cardquery/internal/domain/search/request"
	"github.com/kailas-cloud/cardquery/internal/index"
	"github.com/kailas-cloud/cardquery/internal/metrics"
	"github.com/kailas-cloud/cardquery/internal/repository/cardfile"
	corpusuc "github.com/kailas-cloud/cardquery/internal/usecase/corpus"
	searchuc "github.com/kailas-cloud/cardquery/internal/usecase/search"
)

// Engine indexes a card corpus and answers queries against it.
// All methods are safe for concurrent use; searches never block on a
// corpus replacement.
type Engine struct {
	idx         *index.Holder
	svc         *searchuc.Service
	logger      *zap.Logger
	concurrency int
}

// New creates an Engine with an empty corpus.
func New(opts ...Option) (*Engine, error) {
	cfg := &engineConfig{}
	for _, o := range opts {
		o.apply(cfg)
	}
	if cfg.logger == nil {
		cfg.logger = zap.NewNop()
	}

	scfg := searchuc.DefaultConfig()
	if cfg.largeResultThreshold > 0 {
		scfg.LargeResultThreshold = cfg.largeResultThreshold
	}
	if cfg.autocompleteLimit > 0 {
		scfg.AutocompleteLimit = cfg.autocompleteLimit
	}
	if cfg.suggestionLimit > 0 {
		scfg.SuggestionLimit = cfg.suggestionLimit
	}
	if cfg.maxPageSize > 0 {
		scfg.MaxPageSize = min(cfg.maxPageSize, request.MaxPageSize)
	}

	var svcOpts []searchuc.Option
	if cfg.cacheSize > 0 {
		cache, err := searchuc.NewLRUCache(cfg.cacheSize)
		if err != nil {
			return nil, fmt.Errorf("cardquery: result cache: %w", err)
		}
		svcOpts = append(svcOpts, searchuc.WithCache(cache))
	}
	if cfg.metricsReg != nil {
		obs, err := metrics.NewSearchObserver(cfg.metricsReg)
		if err != nil {
			return nil, fmt.Errorf("cardquery: %w", err)
		}
		svcOpts = append(svcOpts, searchuc.WithObserver(obs))
	}

	idx := index.NewHolder()
	return &Engine{
		idx:         idx,
		svc:         searchuc.New(idx, scfg, cfg.logger, svcOpts...),
		logger:      cfg.logger,
		concurrency: cfg.loadConcurrency,
	}, nil
}

// ReplaceCorpus validates cards and swaps them in as the new corpus,
// returning the new index generation. If any card is invalid the current
// corpus is kept and the error wraps ErrInvalidCard.
func (e *Engine) ReplaceCorpus(cards []Card) (uint64, error) {
	internal := make([]card.Card, 0, len(cards))
	for i, c := range cards {
		ic, err := toInternalCard(c)
		if err != nil {
			return 0, fmt.Errorf("cardquery: card %d: %w", i, err)
		}
		internal = append(internal, ic)
	}
	return e.svc.ReplaceCorpus(internal), nil
}

// LoadFiles reads YAML or JSON card files concurrently and replaces the
// corpus with their concatenation in argument order.
func (e *Engine) LoadFiles(ctx context.Context, paths ...string) (uint64, error) {
	sources := make([]corpusuc.Source, len(paths))
	for i, p := range paths {
		sources[i] = cardfile.New(p)
	}
	report, err := corpusuc.New(e.svc, sources, nil, e.concurrency, e.logger).Reload(ctx)
	if err != nil {
		return 0, fmt.Errorf("cardquery: %w", err)
	}
	return report.Generation, nil
}

// Search runs query with filters and returns the page selected by prefs.
// It never fails: malformed syntax narrows the result or is ignored.
// A blank query without active filters returns no cards.
func (e *Engine) Search(query string, f Filters, prefs Preferences) Result {
	res := e.svc.Search(request.New(query, f.f, prefs.internal()))
	return fromInternalResult(&res)
}

// Autocomplete returns up to the configured number of completions for
// partial input: card names, field directives, then keywords.
// Input shorter than two characters yields an empty list.
func (e *Engine) Autocomplete(partial string) []string {
	return e.svc.Autocomplete(partial)
}

// Cards returns the current corpus in order.
func (e *Engine) Cards() []Card {
	cs := e.svc.Cards()
	out := make([]Card, len(cs))
	for i, c := range cs {
		out[i] = fromInternalCard(c)
	}
	return out
}

// Stats reports the current index.
func (e *Engine) Stats() Stats {
	st := e.svc.Stats()
	return Stats{
		Built:      st.Built,
		Generation: st.Generation,
		Cards:      st.Cards,
		Tokens:     st.Tokens,
		Names:      st.Names,
		Keywords:   st.Keywords,
	}
}

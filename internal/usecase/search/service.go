package search

import (
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/cardquery/internal/domain/card"
	"github.com/kailas-cloud/cardquery/internal/domain/search/filter"
	"github.com/kailas-cloud/cardquery/internal/domain/search/request"
	"github.com/kailas-cloud/cardquery/internal/domain/search/result"
	"github.com/kailas-cloud/cardquery/internal/index"
	"github.com/kailas-cloud/cardquery/internal/query"
)

// Defaults for Config.
const (
	DefaultLargeResultThreshold = 1000
	DefaultAutocompleteLimit    = 10
	DefaultSuggestionLimit      = 5
)

// Config tunes result assembly.
type Config struct {
	LargeResultThreshold int
	AutocompleteLimit    int
	SuggestionLimit      int
	MaxPageSize          int
}

// DefaultConfig returns the stock engine settings.
func DefaultConfig() Config {
	return Config{
		LargeResultThreshold: DefaultLargeResultThreshold,
		AutocompleteLimit:    DefaultAutocompleteLimit,
		SuggestionLimit:      DefaultSuggestionLimit,
		MaxPageSize:          request.MaxPageSize,
	}
}

// Stats describes the current index snapshot.
type Stats struct {
	Built      bool
	Generation uint64
	Cards      int
	Tokens     int
	Names      int
	Keywords   int
}

// Option configures a Service.
type Option func(*Service)

// WithCache enables the ordered-result cache.
func WithCache(c Cache) Option {
	return func(s *Service) { s.cache = c }
}

// WithObserver sets the telemetry sink.
func WithObserver(o Observer) Option {
	return func(s *Service) { s.obs = o }
}

// Service runs searches against the current index snapshot.
// All methods are synchronous and safe for concurrent use.
type Service struct {
	idx    *index.Holder
	cfg    Config
	cache  Cache
	obs    Observer
	logger *zap.Logger
}

// New creates a search service over idx.
func New(idx *index.Holder, cfg Config, logger *zap.Logger, opts ...Option) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Service{idx: idx, cfg: cfg, obs: nopObserver{}, logger: logger}
	for _, o := range opts {
		o(s)
	}
	return s
}

// ReplaceCorpus rebuilds the index from cards and publishes it atomically.
// It returns the new generation.
func (s *Service) ReplaceCorpus(cards []card.Card) uint64 {
	start := time.Now()
	snap := s.idx.Replace(cards)
	if s.cache != nil {
		s.cache.Purge()
	}
	elapsed := time.Since(start)
	s.obs.ObserveRebuild(snap.Len(), elapsed)

	s.logger.Info("Index rebuilt",
		zap.Uint64("generation", snap.Generation()),
		zap.Int("cards", snap.Len()),
		zap.Int("tokens", snap.TokenCount()),
		zap.Duration("duration", elapsed),
	)
	return snap.Generation()
}

// Search filters, sorts and pages the corpus. It never fails: malformed input
// narrows the result or is skipped.
func (s *Service) Search(req request.Request) result.Result {
	start := time.Now()
	snap := s.idx.Load()
	q := query.Parse(req.Query())
	f := req.Filters()
	prefs := req.Preferences().ClampPageSize(s.cfg.MaxPageSize)

	outcome := OutcomeBlank
	var ordered []int
	if !q.IsEmpty() || !f.IsEmpty() {
		ordered = s.match(snap, q, f, prefs)
		outcome = OutcomeMatched
		if len(ordered) == 0 {
			outcome = OutcomeEmpty
		}
	}

	var suggestions []string
	if len(ordered) == 0 && !q.IsEmpty() {
		suggestions = didYouMean(snap, q.FreeText(), s.cfg.SuggestionLimit)
	}
	warns := warnings(q.IsEmpty(), len(ordered), s.cfg.LargeResultThreshold)

	elapsed := time.Since(start)
	res := assemble(snap, ordered, prefs, elapsed, suggestions, warns)
	s.obs.ObserveQuery(outcome, elapsed)

	s.logger.Debug("Search completed",
		zap.String("query", req.Query()),
		zap.Int("filters", f.ActiveCount()),
		zap.String("sort", string(prefs.SortKey())),
		zap.String("direction", string(prefs.Direction())),
		zap.Int("total", res.Total()),
		zap.Uint64("generation", snap.Generation()),
		zap.Duration("duration", elapsed),
	)
	return res
}

func (s *Service) match(snap *index.Snapshot, q query.Query, f filter.Filters, prefs request.Preferences) []int {
	var key string
	if s.cache != nil {
		key = cacheKey(snap.Generation(), q, f, prefs)
		if hit, ok := s.cache.Get(key); ok {
			s.obs.ObserveCache(true)
			return hit
		}
		s.obs.ObserveCache(false)
	}

	ordered := compile(f, q).run(snap)
	sortPositions(snap, ordered, prefs.SortKey(), prefs.Direction())

	if s.cache != nil {
		s.cache.Add(key, ordered)
	}
	return ordered
}

// Autocomplete returns completion candidates for partial input.
func (s *Service) Autocomplete(partial string) []string {
	return autocomplete(s.idx.Load(), partial, s.cfg.AutocompleteLimit)
}

// Cards returns the current corpus in order.
func (s *Service) Cards() []card.Card {
	return s.idx.Load().Cards()
}

// Stats reports the current snapshot.
func (s *Service) Stats() Stats {
	snap := s.idx.Load()
	return Stats{
		Built:      s.idx.Built(),
		Generation: snap.Generation(),
		Cards:      snap.Len(),
		Tokens:     snap.TokenCount(),
		Names:      len(snap.Names()),
		Keywords:   len(snap.Keywords()),
	}
}

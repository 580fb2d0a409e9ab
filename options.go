package cardquery

import (
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

// Option configures the Engine.
type Option interface {
	apply(*engineConfig)
}

// optionFunc adapts a function to the Option interface.
type optionFunc func(*engineConfig)

func (f optionFunc) apply(c *engineConfig) { f(c) }

type engineConfig struct {
	logger     *zap.Logger
	metricsReg prometheus.Registerer

	cacheSize            int
	largeResultThreshold int
	autocompleteLimit    int
	suggestionLimit      int
	maxPageSize          int
	loadConcurrency      int
}

// WithLogger enables structured logging of rebuilds and queries.
// Pass nil to disable (default).
func WithLogger(l *zap.Logger) Option {
	return optionFunc(func(c *engineConfig) {
		c.logger = l
	})
}

// WithPrometheus registers engine metrics (query outcomes, latency, rebuilds,
// cache efficiency) on the given registerer. Pass nil to disable (default).
func WithPrometheus(reg prometheus.Registerer) Option {
	return optionFunc(func(c *engineConfig) {
		c.metricsReg = reg
	})
}

// WithCacheSize enables an LRU cache of filtered and sorted results holding
// up to n entries. The cache is cleared on every corpus replacement.
// Default: 0 (disabled).
func WithCacheSize(n int) Option {
	return optionFunc(func(c *engineConfig) {
		c.cacheSize = n
	})
}

// WithLargeResultThreshold sets the total above which a result carries a
// "large result set" warning. Default: 1000.
func WithLargeResultThreshold(n int) Option {
	return optionFunc(func(c *engineConfig) {
		c.largeResultThreshold = n
	})
}

// WithAutocompleteLimit caps autocomplete candidates. Default: 10.
func WithAutocompleteLimit(n int) Option {
	return optionFunc(func(c *engineConfig) {
		c.autocompleteLimit = n
	})
}

// WithSuggestionLimit caps "did you mean" suggestions. Default: 5.
func WithSuggestionLimit(n int) Option {
	return optionFunc(func(c *engineConfig) {
		c.suggestionLimit = n
	})
}

// WithMaxPageSize clamps the page size of every search. Default: 500.
func WithMaxPageSize(n int) Option {
	return optionFunc(func(c *engineConfig) {
		c.maxPageSize = n
	})
}

// WithLoadConcurrency bounds parallel file reads in LoadFiles. Default: 4.
func WithLoadConcurrency(n int) Option {
	return optionFunc(func(c *engineConfig) {
		c.loadConcurrency = n
	})
}

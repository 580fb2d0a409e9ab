package result

import (
	"time"

	"github.com/kailas-cloud/cardquery/internal/domain/card"
)

// Result is the outcome of one search: the requested page of ordered cards plus metadata.
type Result struct {
	cards       []card.Card
	total       int
	elapsed     time.Duration
	suggestions []string
	warnings    []string
	generation  uint64
}

// New creates a search result.
func New(
	cards []card.Card, total int, elapsed time.Duration,
	suggestions, warnings []string, generation uint64,
) Result {
	return Result{
		cards: cards, total: total, elapsed: elapsed,
		suggestions: suggestions, warnings: warnings, generation: generation,
	}
}

// Cards returns the ordered cards of the requested page.
func (r *Result) Cards() []card.Card { return r.cards }

// Total returns the number of matching cards before pagination.
func (r *Result) Total() int { return r.total }

// Elapsed returns the processing time.
func (r *Result) Elapsed() time.Duration { return r.elapsed }

// Suggestions returns follow-up query suggestions (may be nil).
func (r *Result) Suggestions() []string { return r.suggestions }

// Warnings returns advisory warnings (may be nil).
func (r *Result) Warnings() []string { return r.warnings }

// Generation returns the index generation the query ran against (0 = unbuilt).
func (r *Result) Generation() uint64 { return r.generation }

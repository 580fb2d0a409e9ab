package search

import "time"

// Query outcomes reported to the Observer.
const (
	OutcomeMatched = "matched"
	OutcomeEmpty   = "empty"
	OutcomeBlank   = "blank"
)

// Observer records engine telemetry.
type Observer interface {
	ObserveQuery(outcome string, d time.Duration)
	ObserveRebuild(cards int, d time.Duration)
	ObserveCache(hit bool)
}

// Cache stores ordered match positions per snapshot generation and normalized request.
type Cache interface {
	Get(key string) ([]int, bool)
	Add(key string, positions []int)
	Purge()
}

type nopObserver struct{}

func (nopObserver) ObserveQuery(string, time.Duration) {}
func (nopObserver) ObserveRebuild(int, time.Duration)  {}
func (nopObserver) ObserveCache(bool)                  {}

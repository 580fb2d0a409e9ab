package cardquery

import "github.com/kailas-cloud/cardquery/internal/domain"

// Sentinel errors re-exported from the domain layer.
// Use errors.Is() to check.
var (
	ErrInvalidCard  = domain.ErrInvalidCard
	ErrCorpusSource = domain.ErrCorpusSource
)

package domain

import "errors"

var (
	// ErrInvalidCard signals a card record that violates the card invariants.
	ErrInvalidCard = errors.New("invalid card")
	// ErrInvalidRequest signals a malformed search request envelope (not query syntax).
	ErrInvalidRequest = errors.New("invalid request")
	// ErrCorpusSource signals a failure to read cards from a corpus source.
	ErrCorpusSource = errors.New("corpus source error")
	// ErrNotFound signals a missing resource.
	ErrNotFound = errors.New("not found")
	// ErrRateLimited signals a rate limit hit.
	ErrRateLimited = errors.New("rate limited")
)

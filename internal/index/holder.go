package index

import (
	"sync"
	"sync/atomic"

	"github.com/kailas-cloud/cardquery/internal/domain/card"
)

// Holder publishes the current snapshot. Reads are lock-free; writers are serialized
// so generations are published in increasing order.
type Holder struct {
	mu      sync.Mutex
	current atomic.Pointer[Snapshot]
	gen     uint64
	empty   *Snapshot
}

// NewHolder creates a holder in the unbuilt state.
func NewHolder() *Holder {
	return &Holder{empty: Empty()}
}

// Load returns the current snapshot, or an empty one if nothing was built yet.
func (h *Holder) Load() *Snapshot {
	if s := h.current.Load(); s != nil {
		return s
	}
	return h.empty
}

// Built reports whether a corpus has ever been assigned.
func (h *Holder) Built() bool {
	return h.current.Load() != nil
}

// Replace builds a snapshot for cards and publishes it.
func (h *Holder) Replace(cards []card.Card) *Snapshot {
	h.mu.Lock()
	defer h.mu.Unlock()

	s := Build(cards)
	h.gen++
	s.generation = h.gen
	h.current.Store(s)
	return s
}

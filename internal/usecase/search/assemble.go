package search

import (
	"fmt"
	"time"

	"github.com/kailas-cloud/cardquery/internal/domain/card"
	"github.com/kailas-cloud/cardquery/internal/domain/search/request"
	"github.com/kailas-cloud/cardquery/internal/domain/search/result"
	"github.com/kailas-cloud/cardquery/internal/index"
)

// WarningNoMatches is emitted when a non-empty query matched nothing.
const WarningNoMatches = "no cards match the query"

// largeResultWarning nudges the caller to narrow a broad search.
func largeResultWarning(total int) string {
	return fmt.Sprintf("large result set (%d cards), consider narrowing the filters", total)
}

// warnings applies the advisory policy. An empty query with zero results is not an anomaly.
func warnings(queryEmpty bool, total, threshold int) []string {
	var out []string
	if !queryEmpty && total == 0 {
		out = append(out, WarningNoMatches)
	}
	if threshold > 0 && total > threshold {
		out = append(out, largeResultWarning(total))
	}
	return out
}

// assemble cuts the requested page out of the ordered matches.
func assemble(
	snap *index.Snapshot, ordered []int, prefs request.Preferences,
	elapsed time.Duration, suggestions, warns []string,
) result.Result {
	total := len(ordered)
	start, end := prefs.Bounds(total)
	page := make([]card.Card, 0, end-start)
	for _, p := range ordered[start:end] {
		page = append(page, snap.Doc(p).Card)
	}
	return result.New(page, total, elapsed, suggestions, warns, snap.Generation())
}

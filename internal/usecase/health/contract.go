package health

import "context"

// DBPinger checks database availability.
type DBPinger interface {
	Ping(ctx context.Context) error
}

// IndexChecker reports whether a corpus has been indexed.
type IndexChecker interface {
	Built() bool
}

package store

import (
	"context"

	"github.com/poiesic/gazetteer/core"
)

// EntryCache caches parsed dictionary entries keyed by a content ID of
// the source file, so a reload of an unchanged dictionary skips
// decompression and parsing. Implementations must be thread-safe.
type EntryCache interface {
	// GetEntries returns the cached entries for key.
	// Returns ErrNotFound if the key has never been stored.
	GetEntries(ctx context.Context, key core.ID) ([]core.Entry, error)

	// PutEntries stores entries under key, replacing any previous value.
	PutEntries(ctx context.Context, key core.ID, entries []core.Entry) error

	// Close closes the cache and releases resources.
	Close() error
}

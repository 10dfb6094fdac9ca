package badger

import (
	"context"
	"errors"
	"log/slog"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/gazetteer/core"
	"github.com/poiesic/gazetteer/store"
)

// EntryCache is the BadgerDB-backed implementation of store.EntryCache.
type EntryCache struct {
	backend *Backend
	logger  *slog.Logger
}

var _ store.EntryCache = (*EntryCache)(nil)

// NewEntryCache creates an entry cache on top of an open backend. The
// cache does not own the backend; closing the cache does not close it.
func NewEntryCache(backend *Backend) (*EntryCache, error) {
	if backend == nil {
		return nil, ErrBackendRequired
	}
	return &EntryCache{
		backend: backend,
		logger:  slog.Default(),
	}, nil
}

// GetEntries implements store.EntryCache.
func (c *EntryCache) GetEntries(ctx context.Context, key core.ID) ([]core.Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if c.backend.IsClosed() {
		return nil, store.ErrStorageClosed
	}

	var entries []core.Entry
	err := c.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get(makeEntriesKey(key))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return store.ErrNotFound
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			entries, err = store.UnmarshalEntries(val)
			return err
		})
	}, false)
	if err != nil {
		return nil, err
	}

	return entries, nil
}

// PutEntries implements store.EntryCache.
func (c *EntryCache) PutEntries(ctx context.Context, key core.ID, entries []core.Entry) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if c.backend.IsClosed() {
		return store.ErrStorageClosed
	}

	return c.backend.WithTx(func(tx *badger.Txn) error {
		if err := tx.Set(makeEntriesKey(key), store.MarshalEntries(entries)); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

// Close implements store.EntryCache. The shared backend stays open.
func (c *EntryCache) Close() error {
	return nil
}

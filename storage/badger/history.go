package badger

import (
	"context"
	"slices"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/SaiPrasanna98/Smartroomate/core"
	"github.com/SaiPrasanna98/Smartroomate/storage"
)

// MatchHistoryRepository implements storage.MatchHistoryRepository for BadgerDB.
// History is append-only; entries are never rewritten once committed.
type MatchHistoryRepository struct {
	backend *Backend
	idSeq   *badger.Sequence
}

var _ storage.MatchHistoryRepository = (*MatchHistoryRepository)(nil)

// NewMatchHistoryRepository creates a new MatchHistoryRepository.
func NewMatchHistoryRepository(backend *Backend) (*MatchHistoryRepository, error) {
	idSeq, err := backend.GetSequence(historyIDSeq)
	if err != nil {
		return nil, err
	}

	return &MatchHistoryRepository{
		backend: backend,
		idSeq:   idSeq,
	}, nil
}

// Close releases the ID sequence.
func (r *MatchHistoryRepository) Close() error {
	return r.idSeq.Release()
}

// WithTransaction delegates to the backend.
func (r *MatchHistoryRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.backend.WithTransaction(ctx, fn)
}

// AppendEntries appends one or more match history entries.
func (r *MatchHistoryRepository) AppendEntries(ctx context.Context, entries ...*core.MatchHistoryEntry) ([]*core.MatchHistoryEntry, error) {
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, entry := range entries {
			nextID, err := r.idSeq.Next()
			if err != nil {
				return err
			}
			// BadgerDB sequences can return 0 on first call, so we skip it
			if nextID == 0 {
				nextID, err = r.idSeq.Next()
				if err != nil {
					return err
				}
			}
			entry.Id = core.ID(nextID)

			if entry.CreatedAt.IsZero() {
				entry.CreatedAt = time.Now().UTC()
			}

			value, err := storage.MarshalMatchHistoryEntry(entry)
			if err != nil {
				return err
			}
			if err := tx.Set(makeHistoryKey(entry.Id), value); err != nil {
				return err
			}

			userKey := makeHistoryUserKey(entry.UserId, entry.CreatedAt, entry.Id)
			if err := tx.Set(userKey, storage.MarshalID(entry.Id)); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)

	return entries, err
}

// GetEntriesForUser retrieves a user's match history, newest first.
func (r *MatchHistoryRepository) GetEntriesForUser(ctx context.Context, userID core.ID, limit int) ([]*core.MatchHistoryEntry, error) {
	var results []*core.MatchHistoryEntry
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		// Walk the per-user index backwards so newer timestamps come first
		opts := badger.DefaultIteratorOptions
		opts.Reverse = true

		iter := tx.NewIterator(opts)
		defer iter.Close()

		prefix := makePartialHistoryUserKey(userID)
		startKey := makeHistoryUserKey(userID, time.Date(9999, 12, 31, 23, 59, 59, 999999999, time.UTC), ^core.ID(0))

		count := 0
		for iter.Seek(startKey); iter.Valid() && count < limit; iter.Next() {
			key := iter.Item().Key()
			if len(key) < len(prefix) || slices.Compare(key[:len(prefix)], prefix) != 0 {
				break
			}

			var entryID core.ID
			if err := iter.Item().Value(func(val []byte) error {
				var err error
				entryID, err = storage.UnmarshalID(val)
				return err
			}); err != nil {
				return err
			}

			entry, err := r.readEntry(tx, makeHistoryKey(entryID))
			if err != nil {
				return err
			}
			if entry != nil {
				results = append(results, entry)
				count++
			}
		}
		return nil
	}, false)

	return results, err
}

// readEntry reads a history entry from the transaction.
func (r *MatchHistoryRepository) readEntry(tx *badger.Txn, key []byte) (*core.MatchHistoryEntry, error) {
	item, err := tx.Get(key)
	if err != nil {
		if err == badger.ErrKeyNotFound {
			return nil, nil
		}
		return nil, err
	}

	var entry *core.MatchHistoryEntry
	err = item.Value(func(val []byte) error {
		var unmarshalErr error
		entry, unmarshalErr = storage.UnmarshalMatchHistoryEntry(val)
		return unmarshalErr
	})
	return entry, err
}

// Package snapshots persists the encoded vault+ledger snapshot in the
// KV store, keyed so the latest is found at startup.
package snapshots

import (
	"context"
	"encoding/binary"

	"github.com/openfrac/gofracd/internal/storage/database"
)

var (
	keyLatest    = []byte("snapshot/latest")
	prefixTaken  = []byte("snapshot/at/")
	keyTakenSize = len(prefixTaken) + 8
)

// Store reads and writes snapshots.
type Store struct {
	db database.DB
}

// New creates a snapshot store on the given database.
func New(db database.DB) *Store {
	return &Store{db: db}
}

// takenKey builds the history key for a snapshot time.
func takenKey(takenAt uint64) []byte {
	key := make([]byte, keyTakenSize)
	copy(key, prefixTaken)
	binary.BigEndian.PutUint64(key[len(prefixTaken):], takenAt)
	return key
}

// Save writes a snapshot payload as the latest, and files it under its
// timestamp so operators can inspect past state.
func (s *Store) Save(ctx context.Context, payload []byte, takenAt uint64) error {
	return s.db.Batch(ctx, []database.BatchOperation{
		{Type: database.BatchPut, Key: keyLatest, Value: payload},
		{Type: database.BatchPut, Key: takenKey(takenAt), Value: payload},
	})
}

// Latest returns the most recent snapshot payload.
// Returns database.ErrKeyNotFound when no snapshot was ever written.
func (s *Store) Latest(ctx context.Context) ([]byte, error) {
	return s.db.Read(ctx, keyLatest)
}

// Package store persists market snapshots as opaque JSON blobs in a
// local pebble database. The engine never touches disk itself; the
// host decides when to save and restore.
package store

import (
	"encoding/json"
	"errors"

	"github.com/cockroachdb/pebble"

	"github.com/gnoobs75/Expedition-sub004/pkg/exchange"
)

var snapshotKey = []byte("market/snapshot")

type Store struct {
	db *pebble.DB
}

func Open(dir string) (*Store, error) {
	db, err := pebble.Open(dir, &pebble.Options{})
	if err != nil {
		return nil, err
	}
	return &Store{db: db}, nil
}

// Save writes the snapshot, replacing any previous one. The write is
// synced so a crash right after save cannot lose it.
func (s *Store) Save(snap exchange.Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return err
	}
	return s.db.Set(snapshotKey, data, pebble.Sync)
}

// Load reads the latest snapshot. The second return is false when no
// snapshot has ever been saved; a blob that fails to decode returns an
// error so the caller can fall back to a fresh market.
func (s *Store) Load() (exchange.Snapshot, bool, error) {
	value, closer, err := s.db.Get(snapshotKey)
	if errors.Is(err, pebble.ErrNotFound) {
		return exchange.Snapshot{}, false, nil
	}
	if err != nil {
		return exchange.Snapshot{}, false, err
	}
	defer closer.Close()

	var snap exchange.Snapshot
	if err := json.Unmarshal(value, &snap); err != nil {
		return exchange.Snapshot{}, false, err
	}
	return snap, true, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

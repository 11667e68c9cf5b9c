package store

import (
	"errors"
	"fmt"

	badger "github.com/dgraph-io/badger/v4"

	"marketplace-auction/utils"
)

// BadgerStore is a durable implementation of Store backed by BadgerDB.
// The Store contract has no transient-error channel, so write failures
// are logged and treated as fatal to the record in question; in practice
// badger only fails once the disk does.
type BadgerStore struct {
	db *badger.DB
}

// OpenBadgerStore opens (or creates) a badger database at path.
func OpenBadgerStore(path string) (*BadgerStore, error) {
	opts := badger.DefaultOptions(path)
	opts.Logger = nil
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger store at %s: %w", path, err)
	}
	return &BadgerStore{db: db}, nil
}

// Close releases the underlying database.
func (s *BadgerStore) Close() error {
	return s.db.Close()
}

// Get returns the value stored under key, if any.
func (s *BadgerStore) Get(key Key) ([]byte, bool) {
	var value []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		value, err = item.ValueCopy(nil)
		return err
	})
	if err != nil {
		if !errors.Is(err, badger.ErrKeyNotFound) {
			utils.Error("badger get failed", map[string]any{"key": string(key), "error": err.Error()})
		}
		return nil, false
	}
	return value, true
}

// Set stores value under key, replacing any previous value.
func (s *BadgerStore) Set(key Key, value []byte) {
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), value)
	})
	if err != nil {
		utils.Error("badger set failed", map[string]any{"key": string(key), "error": err.Error()})
	}
}

// Has reports whether key is present.
func (s *BadgerStore) Has(key Key) bool {
	err := s.db.View(func(txn *badger.Txn) error {
		_, err := txn.Get([]byte(key))
		return err
	})
	return err == nil
}

// Remove deletes key. Removing an absent key is a no-op.
func (s *BadgerStore) Remove(key Key) {
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(key))
	})
	if err != nil {
		utils.Error("badger remove failed", map[string]any{"key": string(key), "error": err.Error()})
	}
}

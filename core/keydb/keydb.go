// Package keydb implements a low-level in-memory key/value store ordered by
// key. It backs the committed contract state of the settlement context and
// serves prefix scans for the query surface. Derived from buntdb, stripped of
// file persistence.
package keydb

import (
	"bytes"
	"sync"

	"github.com/tidwall/btree"
)

const btreeDegrees = 64

// DB represents a collection of key-value pairs.
// It uses locking for multiple readers and a single writer.
type DB struct {
	mu     sync.RWMutex
	keys   *btree.BTree // a tree of all items ordered by key
	closed bool
}

// dbItem is the btree node payload
type dbItem struct {
	key  []byte
	data []byte
}

// Less determines if a b-tree item is less than another, ordered by key.
func (dbi *dbItem) Less(item btree.Item, ctx interface{}) bool {
	return bytes.Compare(dbi.key, item.(*dbItem).key) < 0
}

// New returns an empty DB
func New() *DB {
	return &DB{
		keys: btree.New(btreeDegrees, nil),
	}
}

// Close releases all database resources.
func (db *DB) Close() error {
	db.mu.Lock()
	defer db.mu.Unlock()
	if db.closed {
		return ErrDatabaseClosed
	}
	db.closed = true
	db.keys = nil
	return nil
}

// Set inserts or replaces the value of the key.
// An empty value deletes the key.
func (db *DB) Set(key []byte, data []byte) error {
	db.mu.Lock()
	defer db.mu.Unlock()
	if db.closed {
		return ErrDatabaseClosed
	}
	if len(data) == 0 {
		db.keys.Delete(&dbItem{key: key})
		return nil
	}
	db.keys.ReplaceOrInsert(&dbItem{key: key, data: data})
	return nil
}

// Get returns the value of the key or nil when the key does not exist
func (db *DB) Get(key []byte) []byte {
	db.mu.RLock()
	defer db.mu.RUnlock()
	if db.closed {
		return nil
	}
	item := db.keys.Get(&dbItem{key: key})
	if item == nil {
		return nil
	}
	return item.(*dbItem).data
}

// Has returns the existence of the key
func (db *DB) Has(key []byte) bool {
	db.mu.RLock()
	defer db.mu.RUnlock()
	if db.closed {
		return false
	}
	return db.keys.Get(&dbItem{key: key}) != nil
}

// Delete removes the key
func (db *DB) Delete(key []byte) error {
	db.mu.Lock()
	defer db.mu.Unlock()
	if db.closed {
		return ErrDatabaseClosed
	}
	db.keys.Delete(&dbItem{key: key})
	return nil
}

// Iterate calls fn in ascending key order for every key starting with the
// prefix until fn returns false
func (db *DB) Iterate(prefix []byte, fn func(key []byte, data []byte) bool) error {
	db.mu.RLock()
	defer db.mu.RUnlock()
	if db.closed {
		return ErrDatabaseClosed
	}
	db.keys.AscendGreaterOrEqual(&dbItem{key: prefix}, func(item btree.Item) bool {
		dbi := item.(*dbItem)
		if !bytes.HasPrefix(dbi.key, prefix) {
			return false
		}
		return fn(dbi.key, dbi.data)
	})
	return nil
}

// Count returns the number of the stored keys
func (db *DB) Count() int {
	db.mu.RLock()
	defer db.mu.RUnlock()
	if db.closed {
		return 0
	}
	return db.keys.Len()
}

// Package store is the persisted key-value store backing every storefront
// collection. Each collection lives under a single key as one JSON document
// and is always replaced wholesale: callers read, modify, and write back the
// full collection. There is no atomicity across keys.
//
// The store is deliberately forgiving. Reads of absent or undecodable values
// yield the zero value, and every operation on an unavailable store is a
// logged no-op. Storefront modules never see a storage error.
package store

import (
	"fmt"
	"reflect"

	jsoniter "github.com/json-iterator/go"
	bolt "go.etcd.io/bbolt"
	"go.uber.org/zap"
)

// Collection keys. Each key holds one independently owned JSON document.
const (
	KeyCart        = "cart"
	KeyWishlist    = "wishlist"
	KeyOrders      = "orders"
	KeyCurrentUser = "currentUser"
)

var bucketName = []byte("collections")

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Store struct {
	db *bolt.DB
}

// Open opens (or creates) the store file at path.
func Open(path string) (*Store, error) {
	db, err := bolt.Open(path, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("open store %s: %w", path, err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketName)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("init store bucket: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *Store) available() bool {
	return s != nil && s.db != nil
}

// Read decodes the collection stored under key into out. out is left
// untouched when the key is absent, the stored value is malformed, or the
// store is unavailable, so callers start from their zero value.
func (s *Store) Read(key string, out any) {
	if !s.available() {
		return
	}
	err := s.db.View(func(tx *bolt.Tx) error {
		raw := tx.Bucket(bucketName).Get([]byte(key))
		if raw == nil {
			return nil
		}
		// Decode into a fresh value first: a document that fails half-way
		// through must not leave partially decoded elements in out.
		tmp := reflect.New(reflect.TypeOf(out).Elem())
		if err := json.Unmarshal(raw, tmp.Interface()); err != nil {
			zap.S().Warnf("store: discarding malformed %q collection: %v", key, err)
			return nil
		}
		reflect.ValueOf(out).Elem().Set(tmp.Elem())
		return nil
	})
	if err != nil {
		zap.S().Errorf("store: read %q: %v", key, err)
	}
}

// Write serializes v and persists it under key, replacing any prior
// contents. Skipped silently when the store is unavailable.
func (s *Store) Write(key string, v any) {
	if !s.available() {
		return
	}
	raw, err := json.Marshal(v)
	if err != nil {
		zap.S().Errorf("store: encode %q: %v", key, err)
		return
	}
	err = s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketName).Put([]byte(key), raw)
	})
	if err != nil {
		zap.S().Errorf("store: write %q: %v", key, err)
	}
}

// Delete removes the collection stored under key. Deleting an absent key is
// a no-op.
func (s *Store) Delete(key string) {
	if !s.available() {
		return
	}
	err := s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketName).Delete([]byte(key))
	})
	if err != nil {
		zap.S().Errorf("store: delete %q: %v", key, err)
	}
}

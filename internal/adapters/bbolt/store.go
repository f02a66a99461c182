// Package bbolt implements the ports.SetStore interface using bbolt (embedded B+ tree).
// Every named pattern set is one JSON value in the "sets" bucket, keyed by name.
// Writes are transactional — a crash mid-write cannot corrupt previously
// committed sets.
package bbolt

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/corey/wordscan/internal/domain/patternset"
	"github.com/corey/wordscan/internal/ports"
)

// Bucket keys
var bucketSets = []byte("sets")

// Store implements ports.SetStore backed by bbolt.
type Store struct {
	db  *bolt.DB
	now func() time.Time
}

// NewStore opens (or creates) a bbolt database at the given path.
// A second process holding the file lock makes this fail after one second.
func NewStore(path string) (*Store, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("bbolt open: %w", err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketSets)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("bbolt init: %w", err)
	}
	return &Store{db: db, now: time.Now}, nil
}

// Close closes the underlying bbolt database.
func (s *Store) Close() error {
	return s.db.Close()
}

// SaveSet stores set under name, overwriting any prior set with that name.
// The fingerprint and timestamp are recomputed on every save.
func (s *Store) SaveSet(name string, set *ports.PatternSet) error {
	if set == nil {
		return fmt.Errorf("nil pattern set")
	}
	if name == "" {
		return fmt.Errorf("empty set name")
	}
	if err := patternset.Validate(set.Patterns); err != nil {
		return err
	}

	stored := ports.PatternSet{
		Name:        name,
		Patterns:    append([]string(nil), set.Patterns...),
		Fingerprint: patternset.Fingerprint(set.Patterns),
		SavedAt:     s.now().UTC(),
	}
	data, err := json.Marshal(&stored)
	if err != nil {
		return fmt.Errorf("marshal set %q: %w", name, err)
	}

	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketSets).Put([]byte(name), data)
	})
}

// LoadSet retrieves the set stored under name.
func (s *Store) LoadSet(name string) (*ports.PatternSet, error) {
	var data []byte

	err := s.db.View(func(tx *bolt.Tx) error {
		// Copy bytes out of the transaction (bbolt slices are only valid within tx)
		if v := tx.Bucket(bucketSets).Get([]byte(name)); v != nil {
			data = make([]byte, len(v))
			copy(data, v)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, fmt.Errorf("%q: %w", name, ports.ErrSetNotFound)
	}

	var set ports.PatternSet
	if err := json.Unmarshal(data, &set); err != nil {
		return nil, fmt.Errorf("unmarshal set %q: %w", name, err)
	}
	return &set, nil
}

// ListSets returns every stored set in key (name) order.
func (s *Store) ListSets() ([]*ports.PatternSet, error) {
	var sets []*ports.PatternSet

	err := s.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketSets).ForEach(func(k, v []byte) error {
			var set ports.PatternSet
			if err := json.Unmarshal(v, &set); err != nil {
				return fmt.Errorf("unmarshal set %q: %w", k, err)
			}
			sets = append(sets, &set)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return sets, nil
}

// DeleteSet removes a set. Idempotent: deleting a nonexistent set is not an error.
func (s *Store) DeleteSet(name string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		err := tx.Bucket(bucketSets).Delete([]byte(name))
		if errors.Is(err, bolt.ErrBucketNotFound) {
			return nil
		}
		return err
	})
}

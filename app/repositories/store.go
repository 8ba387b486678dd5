// Package repositories persists the three collections — products, orders and
// contacts — as flat JSON files. Each collection is one document; every
// mutation is a full read-modify-write serialized by a per-collection mutex.
// Lost updates across processes are an accepted limitation of this model.
package repositories

import (
	"encoding/json"
	"errors"
	"fmt"
	"path"
	"sync"
	"time"

	"github.com/sweetdelights/bakery/config"
	"github.com/sweetdelights/bakery/pkg/metrics"
	"github.com/sweetdelights/bakery/pkg/storage"
)

// ErrCorrupt is returned when a collection file exists but cannot be parsed.
// It is never masked as an empty collection; callers must surface it.
var ErrCorrupt = errors.New("collection file corrupt")

// ErrNotFound is returned when a record id is absent from its collection.
var ErrNotFound = errors.New("record not found")

// collectionFile is a flat-file JSON store for one collection.
type collectionFile[T any] struct {
	name string
	path string
	disk storage.Disk
	mu   sync.Mutex
}

func newCollectionFile[T any](disk storage.Disk, name string) *collectionFile[T] {
	return &collectionFile[T]{
		name: name,
		path: path.Join(config.DataDir(), name+".json"),
		disk: disk,
	}
}

// load reads and decodes the whole collection. A missing file is an empty
// collection; an unreadable or unparseable file is an error.
// Callers must hold c.mu.
func (c *collectionFile[T]) load() ([]T, error) {
	if c.disk.Missing(c.path) {
		return []T{}, nil
	}
	raw, err := c.disk.Get(c.path)
	if err != nil {
		return nil, fmt.Errorf("repositories: read %s: %w", c.name, err)
	}
	var out []T
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("repositories: parse %s: %w: %v", c.name, ErrCorrupt, err)
	}
	return out, nil
}

// flush encodes and rewrites the whole collection. Callers must hold c.mu.
func (c *collectionFile[T]) flush(records []T) error {
	defer metrics.ObserveRewrite(c.name, time.Now())
	raw, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("repositories: encode %s: %w", c.name, err)
	}
	if err := c.disk.Put(c.path, raw); err != nil {
		return fmt.Errorf("repositories: write %s: %w", c.name, err)
	}
	return nil
}

// All returns a snapshot of the collection.
func (c *collectionFile[T]) All() ([]T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.load()
}

// Mutate applies fn to the current records and rewrites the file with its
// result. The whole read-modify-write cycle runs under the collection mutex.
func (c *collectionFile[T]) Mutate(fn func(records []T) ([]T, error)) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	records, err := c.load()
	if err != nil {
		return err
	}
	next, err := fn(records)
	if err != nil {
		return err
	}
	return c.flush(next)
}

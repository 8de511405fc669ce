package store

import (
	"errors"
	"sync"
)

// ErrNotFound is returned when a record with the given ID does not exist.
var ErrNotFound = errors.New("record not found")

// ErrEmptyID is returned when trying to store a record with an empty ID.
var ErrEmptyID = errors.New("empty record ID")

// Entry pairs a record ID with its value for batch inserts.
type Entry[T any] struct {
	ID    string
	Value T
}

// Collection is an in-memory document collection. Writes are last-write-wins
// per record; no cross-record or cross-collection transaction exists. All
// returns records newest first, an explicit insertion-order contract rather
// than an accident of the backing map.
type Collection[T any] struct {
	mu   sync.RWMutex
	recs map[string]T
	seq  []string
}

func NewCollection[T any]() *Collection[T] {
	return &Collection[T]{
		recs: map[string]T{},
	}
}

// Put inserts or replaces the record with the given ID. A replaced record
// keeps its original position in the insertion order.
func (c *Collection[T]) Put(id string, value T) error {
	if id == "" {
		return ErrEmptyID
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, exists := c.recs[id]; !exists {
		c.seq = append(c.seq, id)
	}
	c.recs[id] = value
	return nil
}

// PutBatch inserts every entry, preserving slice order as insertion order.
func (c *Collection[T]) PutBatch(entries []Entry[T]) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, e := range entries {
		if e.ID == "" {
			return ErrEmptyID
		}
		if _, exists := c.recs[e.ID]; !exists {
			c.seq = append(c.seq, e.ID)
		}
		c.recs[e.ID] = e.Value
	}
	return nil
}

// Get retrieves a record by ID. Returns ErrNotFound if it does not exist.
func (c *Collection[T]) Get(id string) (T, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.recs[id]
	if !ok {
		var zero T
		return zero, ErrNotFound
	}
	return v, nil
}

// All returns every record, newest first.
func (c *Collection[T]) All() ([]T, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]T, 0, len(c.seq))
	for i := len(c.seq) - 1; i >= 0; i-- {
		out = append(out, c.recs[c.seq[i]])
	}
	return out, nil
}

// Remove deletes a record by ID. Returns ErrNotFound if it does not exist.
func (c *Collection[T]) Remove(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.recs[id]; !ok {
		return ErrNotFound
	}
	delete(c.recs, id)
	for i, sid := range c.seq {
		if sid == id {
			c.seq = append(c.seq[:i], c.seq[i+1:]...)
			break
		}
	}
	return nil
}

// RemoveBatch deletes every listed record, skipping IDs that do not exist.
// It reports how many records were actually removed.
func (c *Collection[T]) RemoveBatch(ids []string) int {
	removed := 0
	for _, id := range ids {
		if err := c.Remove(id); err == nil {
			removed++
		}
	}
	return removed
}

// Len reports the number of stored records.
func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.recs)
}

package ledger

import (
	"errors"

	"promohub/internal/store"
)

// ErrNotFound is returned when a ledger entry with the given ID is not found.
var ErrNotFound = errors.New("ledger entry not found")

// Storage is the main interface for the ledger storage layer.
type Storage interface {
	Set(e *Entry) error
	Read(id string) (*Entry, error)
	GetAll() ([]*Entry, error)
}

// LocalStorage provides an in-memory implementation for storing entries.
type LocalStorage struct {
	c *store.Collection[*Entry]
}

// NewLocalStorage instantiates an empty LocalStorage for ledger entries.
func NewLocalStorage() *LocalStorage {
	return &LocalStorage{c: store.NewCollection[*Entry]()}
}

func (l *LocalStorage) Set(e *Entry) error {
	return l.c.Put(e.ID, e)
}

func (l *LocalStorage) Read(id string) (*Entry, error) {
	e, err := l.c.Get(id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrNotFound
	}
	return e, err
}

// GetAll retrieves all ledger entries, newest first.
func (l *LocalStorage) GetAll() ([]*Entry, error) {
	return l.c.All()
}

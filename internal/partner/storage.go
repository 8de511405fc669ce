package partner

import (
	"errors"

	"promohub/internal/store"
)

// ErrNotFound is returned when a partner with the given ID is not found.
var ErrNotFound = errors.New("partner not found")

// Storage is the main interface for the partner registry storage layer.
type Storage interface {
	Set(p *Partner) error
	Read(id string) (*Partner, error)
	GetAll() ([]*Partner, error)
	Delete(id string) error
}

// LocalStorage provides an in-memory implementation for storing partners.
type LocalStorage struct {
	c *store.Collection[*Partner]
}

// NewLocalStorage instantiates an empty LocalStorage for partners.
func NewLocalStorage() *LocalStorage {
	return &LocalStorage{c: store.NewCollection[*Partner]()}
}

func (l *LocalStorage) Set(p *Partner) error {
	return l.c.Put(p.ID, p)
}

func (l *LocalStorage) Read(id string) (*Partner, error) {
	p, err := l.c.Get(id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrNotFound
	}
	return p, err
}

// GetAll retrieves all partners, newest first.
func (l *LocalStorage) GetAll() ([]*Partner, error) {
	return l.c.All()
}

func (l *LocalStorage) Delete(id string) error {
	if err := l.c.Remove(id); errors.Is(err, store.ErrNotFound) {
		return ErrNotFound
	} else if err != nil {
		return err
	}
	return nil
}

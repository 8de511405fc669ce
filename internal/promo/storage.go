package promo

import (
	"errors"

	"promohub/internal/store"
)

// ErrNotFound is returned when a promotion with the given ID is not found.
var ErrNotFound = errors.New("promotion not found")

// Storage is the main interface for the promotion storage layer.
type Storage interface {
	Set(p *Promotion) error
	Read(id string) (*Promotion, error)
	GetAll() ([]*Promotion, error)
	Delete(id string) error
}

// LocalStorage provides an in-memory implementation for storing promotions.
type LocalStorage struct {
	c *store.Collection[*Promotion]
}

// NewLocalStorage instantiates an empty LocalStorage for promotions.
func NewLocalStorage() *LocalStorage {
	return &LocalStorage{c: store.NewCollection[*Promotion]()}
}

func (l *LocalStorage) Set(p *Promotion) error {
	return l.c.Put(p.ID, p)
}

func (l *LocalStorage) Read(id string) (*Promotion, error) {
	p, err := l.c.Get(id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrNotFound
	}
	return p, err
}

// GetAll retrieves all promotions, newest first.
func (l *LocalStorage) GetAll() ([]*Promotion, error) {
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

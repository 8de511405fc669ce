package catalog

import (
	"errors"

	"promohub/internal/store"
)

// ErrNotFound is returned when a SKU with the given ID is not found.
var ErrNotFound = errors.New("sku not found")

// Storage is the main interface for the catalog storage layer.
type Storage interface {
	Set(sku *SKU) error
	Read(id string) (*SKU, error)
	GetAll() ([]*SKU, error)
	Delete(id string) error
	SetBatch(skus []*SKU) error
	DeleteBatch(ids []string) int
}

// LocalStorage provides an in-memory implementation for storing SKUs.
type LocalStorage struct {
	c *store.Collection[*SKU]
}

// NewLocalStorage instantiates an empty LocalStorage for SKUs.
func NewLocalStorage() *LocalStorage {
	return &LocalStorage{c: store.NewCollection[*SKU]()}
}

func (l *LocalStorage) Set(sku *SKU) error {
	return l.c.Put(sku.ID, sku)
}

// Read retrieves a SKU by ID. Returns ErrNotFound if it does not exist.
func (l *LocalStorage) Read(id string) (*SKU, error) {
	sku, err := l.c.Get(id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrNotFound
	}
	return sku, err
}

// GetAll retrieves all SKUs, newest first.
func (l *LocalStorage) GetAll() ([]*SKU, error) {
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

func (l *LocalStorage) SetBatch(skus []*SKU) error {
	entries := make([]store.Entry[*SKU], 0, len(skus))
	for _, sku := range skus {
		entries = append(entries, store.Entry[*SKU]{ID: sku.ID, Value: sku})
	}
	return l.c.PutBatch(entries)
}

func (l *LocalStorage) DeleteBatch(ids []string) int {
	return l.c.RemoveBatch(ids)
}

package auth

import (
	"errors"

	"promohub/internal/store"
)

// ErrNotFound is returned when a user with the given ID is not found.
var ErrNotFound = errors.New("user not found")

// Storage is the main interface for the user storage layer.
type Storage interface {
	Set(u *User) error
	Read(id string) (*User, error)
	GetAll() ([]*User, error)
	Delete(id string) error
}

// LocalStorage provides an in-memory implementation for storing users.
type LocalStorage struct {
	c *store.Collection[*User]
}

// NewLocalStorage instantiates an empty LocalStorage for users.
func NewLocalStorage() *LocalStorage {
	return &LocalStorage{c: store.NewCollection[*User]()}
}

func (l *LocalStorage) Set(u *User) error {
	return l.c.Put(u.ID, u)
}

func (l *LocalStorage) Read(id string) (*User, error) {
	u, err := l.c.Get(id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrNotFound
	}
	return u, err
}

// GetAll retrieves all users, newest first.
func (l *LocalStorage) GetAll() ([]*User, error) {
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

// Package store defines the key-value record store: every collection is kept
// as one JSON document under its name.
package store

import (
	"context"
	"errors"
	"fmt"
)

type Collection string

const (
	Clients      Collection = "clients"
	Services     Collection = "services"
	Appointments Collection = "appointments"
	History      Collection = "history"
)

// Collections lists the known collections in load order.
var Collections = []Collection{Clients, Services, Appointments, History}

var (
	// ErrNotFound means the collection was never saved.
	ErrNotFound = errors.New("collection not found")

	// ErrInvalidFormat marks stored or imported data that is not the expected
	// JSON shape.
	ErrInvalidFormat = errors.New("invalid format")
)

// Store is implemented by the memory, redis and postgres backends.
type Store interface {
	Load(ctx context.Context, c Collection) ([]byte, error)
	Save(ctx context.Context, c Collection, payload []byte) error
	Delete(ctx context.Context, c Collection) error
	Close() error
}

// ParseCollection validates a collection name coming from the outside.
func ParseCollection(name string) (Collection, error) {
	for _, c := range Collections {
		if string(c) == name {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown collection %q", name)
}

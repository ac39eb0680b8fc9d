package storage

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("key not found")

// KeyValue is a string slot store. Get returns ErrNotFound for keys never set.
type KeyValue interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Close() error
}

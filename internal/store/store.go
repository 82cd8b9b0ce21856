// Package store keeps raw shopping documents addressed by id. It stores
// documents only; resolution results are always recomputed.
package store

import (
	"context"
	"errors"
)

type Store interface {
	Put(ctx context.Context, id string, raw []byte) error
	Get(ctx context.Context, id string) ([]byte, bool, error)
	Close() error
}

var ErrReadOnly = errors.New("store is read-only")

type StoreError struct {
	Backend string
	Err     error
}

func (e *StoreError) Error() string {
	return e.Backend + ": " + e.Err.Error()
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

func NewStoreError(backend string, err error) *StoreError {
	return &StoreError{
		Backend: backend,
		Err:     err,
	}
}

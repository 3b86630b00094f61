package storage

import (
	"context"

	"github.com/civicwatch/civicwatch/internal/common"
)

// Unavailable is the Repository used when no durable substrate exists in
// the current execution environment (the database could not be opened).
// Every call fails with common.ErrUnavailable; the Store layer turns that
// into silent no-ops with safe defaults.
type Unavailable struct{}

func (Unavailable) Get(ctx context.Context, key string) ([]byte, error) {
	return nil, common.ErrUnavailable
}

func (Unavailable) Set(ctx context.Context, key string, value []byte) error {
	return common.ErrUnavailable
}

func (Unavailable) Delete(ctx context.Context, key string) error {
	return common.ErrUnavailable
}

func (Unavailable) List(ctx context.Context) (map[string][]byte, error) {
	return nil, common.ErrUnavailable
}

package storage

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/civicwatch/civicwatch/internal/common"
	"github.com/civicwatch/civicwatch/internal/logging"
)

// Store is the JSON persistence contract used by the collections. No method
// fails loudly: serialization and storage errors are logged and reported as
// a boolean, absent keys leave the caller's default untouched, and with an
// Unavailable repository every call degrades to a no-op.
type Store struct {
	repo Repository
	log  logging.Logger
}

func NewStore(repo Repository, log logging.Logger) *Store {
	if log == nil {
		log = logging.NewNopLogger()
	}
	return &Store{repo: repo, log: log}
}

// Write serializes value as JSON and stores it under key, overwriting any
// prior value. Returns false on serialization or storage failure.
func (s *Store) Write(ctx context.Context, key string, value any) bool {
	data, err := json.Marshal(value)
	if err != nil {
		s.log.Warn(ctx, "failed to serialize value", "key", key, "error", err)
		return false
	}
	if err := s.repo.Set(ctx, key, data); err != nil {
		if !errors.Is(err, common.ErrUnavailable) {
			s.log.Warn(ctx, "failed to persist value", "key", key, "error", err)
		}
		return false
	}
	return true
}

// Read loads the value stored under key into out. Returns false when the
// key is absent, the substrate is unavailable, or the stored text does not
// deserialize; out is left untouched so the caller keeps its default.
func (s *Store) Read(ctx context.Context, key string, out any) bool {
	data, err := s.repo.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, common.ErrUnavailable) {
			s.log.Warn(ctx, "failed to read value", "key", key, "error", err)
		}
		return false
	}
	if data == nil {
		return false
	}
	if err := json.Unmarshal(data, out); err != nil {
		s.log.Warn(ctx, "failed to deserialize value", "key", key, "error", err)
		return false
	}
	return true
}

// Remove deletes the value stored under key. Removing an absent key
// succeeds.
func (s *Store) Remove(ctx context.Context, key string) bool {
	if err := s.repo.Delete(ctx, key); err != nil {
		if !errors.Is(err, common.ErrUnavailable) {
			s.log.Warn(ctx, "failed to remove value", "key", key, "error", err)
		}
		return false
	}
	return true
}

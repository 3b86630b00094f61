// Package storage implements the durable key/value substrate backing the
// civicwatch stores. Two layers live here: Repository, a byte-oriented KV
// over a local sqlite database, and Store, the never-fail JSON contract the
// in-memory collections talk to. The substrate is dumb by design: one key
// per logical collection, no cross-key transactions, last writer wins.
package storage

import "context"

// Repository is a raw byte KV. Get returns (nil, nil) when the key is
// absent. Delete is idempotent.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	List(ctx context.Context) (map[string][]byte, error)
}

// Package idgen supplies id-generation strategies as an injectable
// capability. Callers treat ids as opaque strings whose only guarantee is
// uniqueness within one process, in creation order.
package idgen

import (
	"strconv"
	"time"

	"github.com/google/uuid"
)

// Generator produces a fresh string id per call.
type Generator interface {
	NewID() string
}

// Sequence issues millisecond-timestamp ids, bumping by one when the clock
// has not advanced since the previous call. Not safe for concurrent use;
// the stores run in a single execution context.
type Sequence struct {
	now  func() time.Time
	last int64
}

// NewSequence returns a Sequence driven by the given clock.
// A nil clock defaults to time.Now.
func NewSequence(now func() time.Time) *Sequence {
	if now == nil {
		now = time.Now
	}
	return &Sequence{now: now}
}

func (s *Sequence) NewID() string {
	ms := s.now().UnixMilli()
	if ms <= s.last {
		ms = s.last + 1
	}
	s.last = ms
	return strconv.FormatInt(ms, 10)
}

// UUID issues random UUIDv4 ids. Used for the per-process client instance
// id, where creation order carries no meaning.
type UUID struct{}

func (UUID) NewID() string { return uuid.NewString() }

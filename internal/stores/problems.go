package stores

import (
	"context"
	"time"

	"github.com/civicwatch/civicwatch/internal/idgen"
	"github.com/civicwatch/civicwatch/internal/logging"
	"github.com/civicwatch/civicwatch/internal/models"
	"github.com/civicwatch/civicwatch/internal/seed"
	"github.com/civicwatch/civicwatch/internal/storage"
)

// KeyProblems is the durable-store key holding the whole problems
// collection as one JSON array.
const KeyProblems = "civicwatch_problems"

// SeedProblemsFunc supplies the fallback dataset used when the durable
// store is empty.
type SeedProblemsFunc func() ([]models.Problem, error)

// Problems owns the reported-issue collection. Every mutation updates the
// in-memory slice first and then persists the entire collection under one
// key; a failed durable write is logged but does not roll the mutation
// back.
type Problems struct {
	store    *storage.Store
	loadSeed SeedProblemsFunc
	ids      idgen.Generator
	now      func() time.Time
	log      logging.Logger

	items []models.Problem
}

// NewProblems wires a problems store. Nil seed defaults to the bundled
// dataset, nil ids to a clock-driven sequence, nil now to time.Now.
func NewProblems(store *storage.Store, loadSeed SeedProblemsFunc, ids idgen.Generator, now func() time.Time, log logging.Logger) *Problems {
	if loadSeed == nil {
		loadSeed = seed.Problems
	}
	if now == nil {
		now = time.Now
	}
	if ids == nil {
		ids = idgen.NewSequence(now)
	}
	if log == nil {
		log = logging.NewNopLogger()
	}
	return &Problems{store: store, loadSeed: loadSeed, ids: ids, now: now, log: log}
}

// FetchAll populates the in-memory collection: durable content when
// non-empty, otherwise the seed dataset, which is immediately persisted so
// later runs read the stored copy rather than the seed.
func (p *Problems) FetchAll(ctx context.Context) []models.Problem {
	var stored []models.Problem
	if p.store.Read(ctx, KeyProblems, &stored) && len(stored) > 0 {
		p.items = stored
		return p.All()
	}

	seeded, err := p.loadSeed()
	if err != nil {
		p.log.Error(ctx, "failed to load problem seed data", "error", err)
		p.items = nil
		return nil
	}
	p.items = seeded
	p.persist(ctx)
	return p.All()
}

// Add assigns a fresh id and timestamps, appends the problem, and persists
// the collection. New problems always start in the "new" state.
func (p *Problems) Add(ctx context.Context, problem models.Problem) (string, models.Result) {
	now := p.now()
	problem.ID = p.ids.NewID()
	problem.Status = models.StatusNew
	problem.CreatedAt = now
	problem.UpdatedAt = now

	p.items = append(p.items, problem)
	p.persist(ctx)
	return problem.ID, models.OK()
}

// UpdateStatus changes the state of the first problem matching id.
func (p *Problems) UpdateStatus(ctx context.Context, id string, status models.Status) models.Result {
	for i := range p.items {
		if p.items[i].ID == id {
			p.items[i].Status = status
			p.items[i].UpdatedAt = p.touch(p.items[i].UpdatedAt)
			p.persist(ctx)
			return models.OK()
		}
	}
	return models.Fail("problem not found")
}

// Update replaces the full record matching updated.ID, refreshing
// UpdatedAt. CreatedAt is preserved from the existing record when the
// caller left it zero.
func (p *Problems) Update(ctx context.Context, updated models.Problem) models.Result {
	for i := range p.items {
		if p.items[i].ID == updated.ID {
			if updated.CreatedAt.IsZero() {
				updated.CreatedAt = p.items[i].CreatedAt
			}
			updated.UpdatedAt = p.touch(p.items[i].UpdatedAt)
			p.items[i] = updated
			p.persist(ctx)
			return models.OK()
		}
	}
	return models.Fail("problem not found")
}

// Delete removes the first problem matching id and persists the collection.
func (p *Problems) Delete(ctx context.Context, id string) models.Result {
	for i := range p.items {
		if p.items[i].ID == id {
			p.items = append(p.items[:i], p.items[i+1:]...)
			p.persist(ctx)
			return models.OK()
		}
	}
	return models.Fail("problem not found")
}

// All returns a copy of the in-memory collection.
func (p *Problems) All() []models.Problem {
	out := make([]models.Problem, len(p.items))
	copy(out, p.items)
	return out
}

// ByID returns the problem matching id, if present.
func (p *Problems) ByID(id string) (models.Problem, bool) {
	for _, item := range p.items {
		if item.ID == id {
			return item, true
		}
	}
	return models.Problem{}, false
}

// ByStatus returns the problems currently in the given state.
func (p *Problems) ByStatus(status models.Status) []models.Problem {
	var out []models.Problem
	for _, item := range p.items {
		if item.Status == status {
			out = append(out, item)
		}
	}
	return out
}

// touch returns a timestamp strictly after prev, so UpdatedAt always moves
// forward even when the clock stalls within one operation burst.
func (p *Problems) touch(prev time.Time) time.Time {
	ts := p.now()
	if !ts.After(prev) {
		ts = prev.Add(time.Nanosecond)
	}
	return ts
}

func (p *Problems) persist(ctx context.Context) {
	if !p.store.Write(ctx, KeyProblems, p.items) {
		p.log.Warn(ctx, "problems not persisted, in-memory state kept", "count", len(p.items))
	}
}

package stores

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/civicwatch/civicwatch/internal/models"
	"github.com/civicwatch/civicwatch/internal/storage"

	_ "modernc.org/sqlite"
)

// setupStore opens an in-memory substrate shared by the stores under test.
func setupStore(t *testing.T) *storage.Store {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, storage.RunMigrations(context.Background(), db))
	return storage.NewStore(storage.NewSQLiteRepository(db), nil)
}

// fakeClock steps forward a fixed amount on every reading.
type fakeClock struct {
	now  time.Time
	step time.Duration
}

func newFakeClock() *fakeClock {
	return &fakeClock{
		now:  time.Date(2025, 5, 10, 9, 0, 0, 0, time.UTC),
		step: 250 * time.Millisecond,
	}
}

func (c *fakeClock) Now() time.Time {
	c.now = c.now.Add(c.step)
	return c.now
}

func testRoster() ([]models.User, error) {
	return []models.User{
		{ID: "1", Username: "alice", Password: "pw123", Role: models.RoleUser, Name: "Alice"},
		{ID: "2", Username: "root", Password: "toor", Role: models.RoleAdmin, Name: "Root"},
	}, nil
}

func testSeedProblems() ([]models.Problem, error) {
	created := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	return []models.Problem{
		{
			ID:          "seed-1",
			Title:       "Cracked sidewalk",
			Description: "Slabs lifted by tree roots",
			Coordinates: models.Coordinates{Lat: 51.5, Lng: -0.12},
			Status:      models.StatusNew,
			CreatedAt:   created,
			UpdatedAt:   created,
		},
	}, nil
}

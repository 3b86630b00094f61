package stores

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/civicwatch/civicwatch/internal/models"
)

func newComments(t *testing.T) *Comments {
	t.Helper()
	return NewComments(setupStore(t), nil, newFakeClock().Now, nil)
}

func TestComments_LoadAbsentProblemGivesEmptyList(t *testing.T) {
	c := newComments(t)
	got := c.Load(context.Background(), "p1")
	assert.Empty(t, got)
}

func TestComments_AddAutoInitializesList(t *testing.T) {
	c := newComments(t)
	ctx := context.Background()

	comment, res := c.Add(ctx, "p1", "first!", "Maria")

	require.True(t, res.Success)
	assert.NotEmpty(t, comment.ID)
	assert.Equal(t, "p1", comment.ProblemID)
	assert.Equal(t, "Maria", comment.Author)
	assert.False(t, comment.CreatedAt.IsZero())

	list := c.ForProblem("p1")
	require.Len(t, list, 1)
	assert.Equal(t, comment.ID, list[0].ID)
}

func TestComments_AddDefaultsToAnonymousAuthor(t *testing.T) {
	c := newComments(t)

	comment, res := c.Add(context.Background(), "p1", "hi", "")
	require.True(t, res.Success)
	assert.Equal(t, AnonymousAuthor, comment.Author)
}

func TestComments_AddThenDeleteLeavesTheOther(t *testing.T) {
	c := newComments(t)
	ctx := context.Background()

	first, _ := c.Add(ctx, "p1", "hi", "")
	second, _ := c.Add(ctx, "p1", "there", "")
	require.NotEqual(t, first.ID, second.ID)

	res := c.Delete(ctx, "p1", first.ID)
	require.True(t, res.Success)

	list := c.ForProblem("p1")
	require.Len(t, list, 1)
	assert.Equal(t, "there", list[0].Text)
}

func TestComments_DeleteUnknownCommentFails(t *testing.T) {
	c := newComments(t)
	ctx := context.Background()

	c.Add(ctx, "p1", "hi", "")

	res := c.Delete(ctx, "p1", "nope")
	assert.False(t, res.Success)
	assert.Equal(t, "comment not found", res.Message)
}

func TestComments_DeleteWithoutLoadedParentFails(t *testing.T) {
	c := newComments(t)

	res := c.Delete(context.Background(), "never-loaded", "id")
	assert.False(t, res.Success)
	assert.Equal(t, "comments not found", res.Message)
}

func TestComments_ListsAreIndependentPerProblem(t *testing.T) {
	store := setupStore(t)
	c := NewComments(store, nil, newFakeClock().Now, nil)
	ctx := context.Background()

	c.Add(ctx, "p1", "on p1", "")
	c.Add(ctx, "p2", "on p2", "")

	// each parent has its own durable record
	var p1 []models.Comment
	require.True(t, store.Read(ctx, CommentKeyPrefix+"p1", &p1))
	require.Len(t, p1, 1)
	assert.Equal(t, "on p1", p1[0].Text)

	var p2 []models.Comment
	require.True(t, store.Read(ctx, CommentKeyPrefix+"p2", &p2))
	require.Len(t, p2, 1)
	assert.Equal(t, "on p2", p2[0].Text)
}

func TestComments_ReloadInFreshProcess(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	first := NewComments(store, nil, newFakeClock().Now, nil)
	added, _ := first.Add(ctx, "p1", "persisted", "Maria")

	second := NewComments(store, nil, newFakeClock().Now, nil)
	got := second.Load(ctx, "p1")

	require.Len(t, got, 1)
	assert.Equal(t, added.ID, got[0].ID)
	assert.Equal(t, "persisted", got[0].Text)
}

package stores

import (
	"context"
	"time"

	"github.com/civicwatch/civicwatch/internal/idgen"
	"github.com/civicwatch/civicwatch/internal/logging"
	"github.com/civicwatch/civicwatch/internal/models"
	"github.com/civicwatch/civicwatch/internal/storage"
)

// CommentKeyPrefix prefixes the per-problem durable keys, one comment list
// per parent problem id.
const CommentKeyPrefix = "comments_"

// AnonymousAuthor is the display name used when a commenter supplies none.
const AnonymousAuthor = "Anonymous"

// Comments owns the per-problem comment lists. Each parent's list is an
// independent durable record; mutating one problem's comments rewrites only
// that problem's key.
type Comments struct {
	store *storage.Store
	ids   idgen.Generator
	now   func() time.Time
	log   logging.Logger

	byProblem map[string][]models.Comment
}

func NewComments(store *storage.Store, ids idgen.Generator, now func() time.Time, log logging.Logger) *Comments {
	if now == nil {
		now = time.Now
	}
	if ids == nil {
		ids = idgen.NewSequence(now)
	}
	if log == nil {
		log = logging.NewNopLogger()
	}
	return &Comments{store: store, ids: ids, now: now, log: log, byProblem: make(map[string][]models.Comment)}
}

func commentKey(problemID string) string { return CommentKeyPrefix + problemID }

// Load populates the in-memory list for one problem from durable storage,
// empty when nothing is stored.
func (c *Comments) Load(ctx context.Context, problemID string) []models.Comment {
	list := []models.Comment{}
	c.store.Read(ctx, commentKey(problemID), &list)
	c.byProblem[problemID] = list
	return c.ForProblem(problemID)
}

// Add appends a comment to the problem's list (auto-initializing an empty
// list for a first comment) and persists that list. An empty author falls
// back to the anonymous label.
func (c *Comments) Add(ctx context.Context, problemID, text, author string) (models.Comment, models.Result) {
	if author == "" {
		author = AnonymousAuthor
	}

	comment := models.Comment{
		ID:        c.ids.NewID(),
		ProblemID: problemID,
		Text:      text,
		Author:    author,
		CreatedAt: c.now(),
	}

	c.byProblem[problemID] = append(c.byProblem[problemID], comment)
	c.persist(ctx, problemID)
	return comment, models.OK()
}

// Delete removes a comment by id within one problem's list.
func (c *Comments) Delete(ctx context.Context, problemID, commentID string) models.Result {
	list, ok := c.byProblem[problemID]
	if !ok {
		return models.Fail("comments not found")
	}

	kept := list[:0:0]
	for _, comment := range list {
		if comment.ID != commentID {
			kept = append(kept, comment)
		}
	}
	if len(kept) == len(list) {
		return models.Fail("comment not found")
	}

	c.byProblem[problemID] = kept
	c.persist(ctx, problemID)
	return models.OK()
}

// ForProblem returns a copy of the in-memory comment list for one problem.
func (c *Comments) ForProblem(problemID string) []models.Comment {
	list := c.byProblem[problemID]
	out := make([]models.Comment, len(list))
	copy(out, list)
	return out
}

func (c *Comments) persist(ctx context.Context, problemID string) {
	if !c.store.Write(ctx, commentKey(problemID), c.byProblem[problemID]) {
		c.log.Warn(ctx, "comments not persisted, in-memory state kept", "problem_id", problemID)
	}
}

package repository

import (
	"context"
	"testing"
	"time"

	"github.com/futig/interview-assistant/internal/entity"
	"github.com/stretchr/testify/require"
)

type countingRepo struct {
	gets  int
	lists int
	subs  map[string]*entity.Submission
}

func (c *countingRepo) Create(_ context.Context, q, e string) (*entity.Submission, error) {
	sub := &entity.Submission{ID: "id-" + q, Question: q, Explanation: e, CreatedAt: time.Now()}
	c.subs[sub.ID] = sub
	return sub, nil
}

func (c *countingRepo) GetByID(_ context.Context, id string) (*entity.Submission, error) {
	c.gets++
	sub, ok := c.subs[id]
	if !ok {
		return nil, entity.ErrSubmissionNotFound
	}
	cp := *sub
	return &cp, nil
}

func (c *countingRepo) ListRecent(context.Context, int) ([]*entity.Submission, error) {
	c.lists++
	return []*entity.Submission{}, nil
}

func TestCachedSubmissionRepository(t *testing.T) {
	ctx := context.Background()
	next := &countingRepo{subs: map[string]*entity.Submission{
		"stored": {ID: "stored", Question: "q", Explanation: "e"},
	}}
	repo := NewCachedSubmissionRepository(next, time.Minute, time.Minute)

	created, err := repo.Create(ctx, "new", "x")
	require.NoError(t, err)

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, created.Question, got.Question)
	require.Equal(t, 0, next.gets, "created submission served from cache")

	for range 2 {
		got, err = repo.GetByID(ctx, "stored")
		require.NoError(t, err)
		require.Equal(t, "q", got.Question)
	}
	require.Equal(t, 1, next.gets)

	// Mutating a returned value leaves the cached copy intact.
	got.Question = "changed"
	again, err := repo.GetByID(ctx, "stored")
	require.NoError(t, err)
	require.Equal(t, "q", again.Question)

	_, err = repo.GetByID(ctx, "missing")
	require.ErrorIs(t, err, entity.ErrSubmissionNotFound)
	_, err = repo.GetByID(ctx, "missing")
	require.ErrorIs(t, err, entity.ErrSubmissionNotFound)
	require.Equal(t, 3, next.gets, "misses are not cached")

	_, err = repo.ListRecent(ctx, 30)
	require.NoError(t, err)
	_, err = repo.ListRecent(ctx, 30)
	require.NoError(t, err)
	require.Equal(t, 2, next.lists)
}

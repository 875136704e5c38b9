package repository

import (
	"context"
	"time"

	"github.com/futig/interview-assistant/internal/entity"
	"github.com/patrickmn/go-cache"
)

var _ SubmissionRepository = &CachedSubmissionRepository{}

// CachedSubmissionRepository keeps recently created or fetched submissions in
// memory. Submissions are immutable, so entries never need invalidation.
// Listing always goes to the underlying store.
type CachedSubmissionRepository struct {
	next  SubmissionRepository
	cache *cache.Cache
}

func NewCachedSubmissionRepository(next SubmissionRepository, ttl, cleanup time.Duration) *CachedSubmissionRepository {
	return &CachedSubmissionRepository{
		next:  next,
		cache: cache.New(ttl, cleanup),
	}
}

func (r *CachedSubmissionRepository) Create(ctx context.Context, question, explanation string) (*entity.Submission, error) {
	sub, err := r.next.Create(ctx, question, explanation)
	if err != nil {
		return nil, err
	}

	r.put(sub)
	return sub, nil
}

func (r *CachedSubmissionRepository) GetByID(ctx context.Context, id string) (*entity.Submission, error) {
	if cached, ok := r.cache.Get(id); ok {
		sub := cached.(entity.Submission)
		return &sub, nil
	}

	sub, err := r.next.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	r.put(sub)
	return sub, nil
}

func (r *CachedSubmissionRepository) ListRecent(ctx context.Context, limit int) ([]*entity.Submission, error) {
	return r.next.ListRecent(ctx, limit)
}

// put stores a copy so callers cannot mutate cached entries.
func (r *CachedSubmissionRepository) put(sub *entity.Submission) {
	r.cache.Set(sub.ID, *sub, cache.DefaultExpiration)
}

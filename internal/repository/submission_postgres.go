package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/futig/interview-assistant/internal/entity"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// SubmissionRepository defines the interface for submission persistence
type SubmissionRepository interface {
	Create(ctx context.Context, question, explanation string) (*entity.Submission, error)
	GetByID(ctx context.Context, id string) (*entity.Submission, error)
	ListRecent(ctx context.Context, limit int) ([]*entity.Submission, error)
}

var _ SubmissionRepository = &SubmissionPostgres{}

const (
	createSubmissionQuery = `INSERT INTO submissions (id, question, explanation)
VALUES ($1, $2, $3)
RETURNING id::text, question, explanation, created_at`

	getSubmissionQuery = `SELECT id::text, question, explanation, created_at
FROM submissions
WHERE id = $1`

	listSubmissionsQuery = `SELECT id::text, question, explanation, created_at
FROM submissions
ORDER BY created_at DESC, id DESC
LIMIT $1`
)

// SubmissionPostgres implements SubmissionRepository using PostgreSQL
type SubmissionPostgres struct {
	db Provider
}

func NewSubmissionPostgres(db Provider) *SubmissionPostgres {
	return &SubmissionPostgres{
		db: db,
	}
}

func (r *SubmissionPostgres) Create(ctx context.Context, question, explanation string) (*entity.Submission, error) {
	db, err := r.db.DB(ctx)
	if err != nil {
		return nil, err
	}

	row := db.QueryRow(ctx, createSubmissionQuery, uuid.New().String(), question, explanation)
	sub, err := scanSubmission(row)
	if err != nil {
		return nil, fmt.Errorf("%w: create submission: %w", entity.ErrPersistence, err)
	}

	return sub, nil
}

func (r *SubmissionPostgres) GetByID(ctx context.Context, id string) (*entity.Submission, error) {
	// Anything that is not a UUID cannot name a stored record.
	submissionID, err := uuid.Parse(id)
	if err != nil {
		return nil, entity.ErrSubmissionNotFound
	}

	db, err := r.db.DB(ctx)
	if err != nil {
		return nil, err
	}

	sub, err := scanSubmission(db.QueryRow(ctx, getSubmissionQuery, submissionID.String()))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entity.ErrSubmissionNotFound
		}
		return nil, fmt.Errorf("%w: get submission: %w", entity.ErrPersistence, err)
	}

	return sub, nil
}

func (r *SubmissionPostgres) ListRecent(ctx context.Context, limit int) ([]*entity.Submission, error) {
	db, err := r.db.DB(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := db.Query(ctx, listSubmissionsQuery, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: list submissions: %w", entity.ErrPersistence, err)
	}
	defer rows.Close()

	submissions := make([]*entity.Submission, 0, limit)
	for rows.Next() {
		sub, err := scanSubmission(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scan submission: %w", entity.ErrPersistence, err)
		}
		submissions = append(submissions, sub)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: list submissions: %w", entity.ErrPersistence, err)
	}

	return submissions, nil
}

func scanSubmission(row pgx.Row) (*entity.Submission, error) {
	var (
		sub       entity.Submission
		createdAt time.Time
	)

	if err := row.Scan(&sub.ID, &sub.Question, &sub.Explanation, &createdAt); err != nil {
		return nil, err
	}

	sub.CreatedAt = createdAt.UTC()
	return &sub, nil
}

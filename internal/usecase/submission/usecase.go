package submission

import (
	"context"
	"fmt"

	"github.com/futig/interview-assistant/internal/entity"
	"github.com/futig/interview-assistant/internal/pkg/formatter"
	"github.com/futig/interview-assistant/internal/pkg/validator"
	"github.com/futig/interview-assistant/internal/repository"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

// SubmissionUsecase implements submission business logic
type SubmissionUsecase struct {
	repo       repository.SubmissionRepository
	formatters FormatterFactory
	logger     *zap.Logger
}

func NewUsecase(
	repo repository.SubmissionRepository,
	formatters FormatterFactory,
	logger *zap.Logger,
) *SubmissionUsecase {
	return &SubmissionUsecase{
		repo:       repo,
		formatters: formatters,
		logger:     logger,
	}
}

// Create stores the trimmed question and explanation.
func (uc *SubmissionUsecase) Create(ctx context.Context, question, explanation string) (*entity.Submission, error) {
	question, explanation, err := validator.NormalizeSubmission(question, explanation)
	if err != nil {
		return nil, err
	}

	sub, err := uc.repo.Create(ctx, question, explanation)
	if err != nil {
		return nil, fmt.Errorf("create submission: %w", err)
	}

	ctxzap.Info(ctx, "submission created", zap.String("submission_id", sub.ID))

	return sub, nil
}

func (uc *SubmissionUsecase) ListRecent(ctx context.Context, req *entity.ListSubmissionsRequest) ([]*entity.Submission, error) {
	req.Normalize()

	items, err := uc.repo.ListRecent(ctx, req.Limit)
	if err != nil {
		return nil, fmt.Errorf("list submissions: %w", err)
	}

	return items, nil
}

func (uc *SubmissionUsecase) Get(ctx context.Context, id string) (*entity.Submission, error) {
	return uc.repo.GetByID(ctx, id)
}

// Export renders a stored submission in the requested format.
func (uc *SubmissionUsecase) Export(ctx context.Context, id string, format entity.ExportFormat) (*entity.ExportedFile, error) {
	if err := format.Validate(); err != nil {
		return nil, err
	}

	sub, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	f, err := uc.formatters.Create(format)
	if err != nil {
		return nil, err
	}

	body, err := f.Format(sub)
	if err != nil {
		return nil, fmt.Errorf("format submission as %s: %w", format, err)
	}

	ctxzap.Info(ctx, "submission exported",
		zap.String("submission_id", sub.ID),
		zap.String("format", string(format)),
		zap.Int("bytes", len(body)),
	)

	return &entity.ExportedFile{
		Filename:    formatter.Filename(sub, f),
		ContentType: f.ContentType(),
		Body:        body,
	}, nil
}

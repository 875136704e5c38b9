package submission

import (
	"context"

	"github.com/futig/interview-assistant/internal/entity"
)

type SubmissionUsecase interface {
	Create(ctx context.Context, question, explanation string) (*entity.Submission, error)
	ListRecent(ctx context.Context, req *entity.ListSubmissionsRequest) ([]*entity.Submission, error)
	Get(ctx context.Context, id string) (*entity.Submission, error)
	Export(ctx context.Context, id string, format entity.ExportFormat) (*entity.ExportedFile, error)
}

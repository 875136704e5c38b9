package analyze

import (
	"context"

	"github.com/futig/interview-assistant/internal/entity"
)

type AnalysisUsecase interface {
	Analyze(ctx context.Context, question string) (*entity.Analysis, error)
}

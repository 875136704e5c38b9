package analysis

import (
	"context"

	"github.com/futig/interview-assistant/internal/entity"
)

type CompletionConnector interface {
	Analyze(ctx context.Context, question string) (*entity.Analysis, error)
}

package analysis

import (
	"context"
	"fmt"

	"github.com/futig/interview-assistant/internal/entity"
	"github.com/futig/interview-assistant/internal/pkg/validator"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

// AnalysisUsecase turns a question into a markdown explanation. It never
// touches the submission store.
type AnalysisUsecase struct {
	completion CompletionConnector
	logger     *zap.Logger
}

func NewUsecase(completion CompletionConnector, logger *zap.Logger) *AnalysisUsecase {
	return &AnalysisUsecase{
		completion: completion,
		logger:     logger,
	}
}

func (uc *AnalysisUsecase) Analyze(ctx context.Context, question string) (*entity.Analysis, error) {
	question, err := validator.NormalizeQuestion(question)
	if err != nil {
		return nil, err
	}

	ctxzap.Debug(ctx, "analyzing question", zap.Int("question_length", len(question)))

	analysis, err := uc.completion.Analyze(ctx, question)
	if err != nil {
		return nil, fmt.Errorf("analyze question: %w", err)
	}

	return analysis, nil
}

package analyze

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/futig/interview-assistant/internal/entity"
	"github.com/futig/interview-assistant/internal/pkg/logger"
	"github.com/futig/interview-assistant/internal/pkg/response"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

const (
	msgInvalidBody     = "Invalid request body. Question is required."
	msgEmptyQuestion   = "Question cannot be empty"
	msgQuestionTooLong = "Question is too long. Please limit to 2000 characters."
	msgAnalyzeFailed   = "Failed to analyze question. Please try again."
)

type Handler struct {
	usecase AnalysisUsecase
}

func NewHandler(usecase AnalysisUsecase) *Handler {
	return &Handler{
		usecase: usecase,
	}
}

// Analyze handles POST /api/analyze
func (h *Handler) Analyze(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "Analyze")

	var req entity.AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Question == nil {
		ctxzap.Warn(ctx, "invalid analyze request body", zap.Error(err))
		response.Error(w, http.StatusBadRequest, msgInvalidBody)
		return
	}

	analysis, err := h.usecase.Analyze(ctx, *req.Question)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	ctxzap.Info(ctx, "question analyzed", zap.Int("explanation_length", len(analysis.Explanation)))
	response.Success(w, &entity.AnalyzeResponse{Analysis: analysis})
}

func (h *Handler) handleUsecaseError(ctx context.Context, w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, entity.ErrQuestionEmpty):
		ctxzap.Warn(ctx, "empty question", zap.Error(err))
		response.Error(w, http.StatusBadRequest, msgEmptyQuestion)
	case errors.Is(err, entity.ErrQuestionTooLong):
		ctxzap.Warn(ctx, "question too long", zap.Error(err))
		response.Error(w, http.StatusBadRequest, msgQuestionTooLong)
	default:
		ctxzap.Error(ctx, "failed to analyze question", zap.Error(err))
		response.Error(w, http.StatusInternalServerError, msgAnalyzeFailed)
	}
}

package submission

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/futig/interview-assistant/internal/entity"
	"github.com/futig/interview-assistant/internal/pkg/logger"
	"github.com/futig/interview-assistant/internal/pkg/response"
	"github.com/go-chi/chi/v5"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

const (
	msgInvalidBody      = "Invalid body"
	msgFieldsRequired   = "Question and explanation are required"
	msgListFailed       = "Failed to list submissions"
	msgSaveFailed       = "Failed to save submission"
	msgNotFound         = "Not found"
	msgFetchFailed      = "Failed to fetch submission"
	msgInvalidFormat    = "Invalid export format"
	msgFormatNotSupport = "Export format is not supported"
	msgExportFailed     = "Failed to export submission"
)

type Handler struct {
	usecase SubmissionUsecase
}

func NewHandler(usecase SubmissionUsecase) *Handler {
	return &Handler{
		usecase: usecase,
	}
}

// ListSubmissions handles GET /api/submissions
func (h *Handler) ListSubmissions(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "ListSubmissions")

	// Unparseable limits fall back to the default.
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	req := entity.ListSubmissionsRequest{Limit: limit}

	items, err := h.usecase.ListRecent(ctx, &req)
	if err != nil {
		h.handleUsecaseError(ctx, w, err, msgListFailed)
		return
	}

	ctxzap.Info(ctx, "submissions listed", zap.Int("count", len(items)), zap.Int("limit", req.Limit))
	response.Success(w, &entity.ListSubmissionsResponse{Items: items})
}

// CreateSubmission handles POST /api/submissions
func (h *Handler) CreateSubmission(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "CreateSubmission")

	var req entity.CreateSubmissionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Question == nil || req.Explanation == nil {
		ctxzap.Warn(ctx, "invalid submission body", zap.Error(err))
		response.Error(w, http.StatusBadRequest, msgInvalidBody)
		return
	}

	sub, err := h.usecase.Create(ctx, *req.Question, *req.Explanation)
	if err != nil {
		h.handleUsecaseError(ctx, w, err, msgSaveFailed)
		return
	}

	response.Created(w, &entity.CreateSubmissionResponse{Submission: sub})
}

// GetSubmission handles GET /api/submissions/{submission_id}
func (h *Handler) GetSubmission(w http.ResponseWriter, r *http.Request) {
	submissionID := chi.URLParam(r, "submission_id")
	ctx := logger.AddFields(r.Context(),
		zap.String("submission_id", submissionID),
		zap.String("action", "GetSubmission"),
	)

	sub, err := h.usecase.Get(ctx, submissionID)
	if err != nil {
		h.handleUsecaseError(ctx, w, err, msgFetchFailed)
		return
	}

	response.Success(w, &entity.GetSubmissionResponse{Submission: sub})
}

// ExportSubmission handles GET /api/submissions/{submission_id}/export
func (h *Handler) ExportSubmission(w http.ResponseWriter, r *http.Request) {
	submissionID := chi.URLParam(r, "submission_id")
	ctx := logger.AddFields(r.Context(),
		zap.String("submission_id", submissionID),
		zap.String("action", "ExportSubmission"),
	)

	format := entity.ExportFormat(r.URL.Query().Get("format"))
	if format == "" {
		format = entity.FormatMarkdown
	}

	file, err := h.usecase.Export(ctx, submissionID, format)
	if err != nil {
		h.handleUsecaseError(ctx, w, err, msgExportFailed)
		return
	}

	response.Attachment(w, file.ContentType, file.Filename, file.Body)
}

// handleUsecaseError maps domain errors to the response envelope. Anything
// unrecognised becomes a 500 with the operation's fallback message.
func (h *Handler) handleUsecaseError(ctx context.Context, w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, entity.ErrSubmissionNotFound):
		ctxzap.Info(ctx, "submission not found")
		response.Error(w, http.StatusNotFound, msgNotFound)
	case errors.Is(err, entity.ErrMissingField):
		ctxzap.Warn(ctx, "missing submission field", zap.Error(err))
		response.Error(w, http.StatusBadRequest, msgFieldsRequired)
	case errors.Is(err, entity.ErrInvalidFormat):
		ctxzap.Warn(ctx, "invalid export format", zap.Error(err))
		response.Error(w, http.StatusBadRequest, msgInvalidFormat)
	case errors.Is(err, entity.ErrFormatNotImplemented):
		ctxzap.Warn(ctx, "export format not implemented", zap.Error(err))
		response.Error(w, http.StatusNotImplemented, msgFormatNotSupport)
	default:
		ctxzap.Error(ctx, fallback, zap.Error(err))
		response.Error(w, http.StatusInternalServerError, fallback)
	}
}

package api

import (
	"net/http"
	"time"

	analyzeapi "github.com/futig/interview-assistant/internal/api/analyze"
	"github.com/futig/interview-assistant/internal/api/docs"
	"github.com/futig/interview-assistant/internal/api/middleware"
	submissionapi "github.com/futig/interview-assistant/internal/api/submission"
	"github.com/futig/interview-assistant/internal/pkg/response"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

const maxRequestBody = 1 << 20

type RouterConfig struct {
	RequestTimeout time.Duration
	SwaggerPath    string
}

// SetupRouter creates and configures the HTTP router
func SetupRouter(
	cfg RouterConfig,
	analyzeHandler *analyzeapi.Handler,
	submissionHandler *submissionapi.Handler,
	logger *zap.Logger,
) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Headers)
	r.Use(middleware.MaxBodySize(maxRequestBody))
	r.Use(chimiddleware.Timeout(cfg.RequestTimeout))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		response.Success(w, map[string]string{"status": "healthy"})
	})

	if cfg.SwaggerPath != "" {
		docs.RegisterRoutes(r, cfg.SwaggerPath)
	}

	r.Route("/api", func(r chi.Router) {
		analyzeapi.RegisterRoutes(r, analyzeHandler)
		submissionapi.RegisterRoutes(r, submissionHandler)
	})

	return r
}

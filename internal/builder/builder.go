package builder

import (
	"fmt"
	"net/http"
	"time"

	"github.com/futig/interview-assistant/internal/api"
	analyzeapi "github.com/futig/interview-assistant/internal/api/analyze"
	submissionapi "github.com/futig/interview-assistant/internal/api/submission"
	"github.com/futig/interview-assistant/internal/client/apiclient"
	"github.com/futig/interview-assistant/internal/config"
	"github.com/futig/interview-assistant/internal/integration/completion"
	"github.com/futig/interview-assistant/internal/pkg/formatter"
	"github.com/futig/interview-assistant/internal/repository"
	"github.com/futig/interview-assistant/internal/usecase/analysis"
	"github.com/futig/interview-assistant/internal/usecase/submission"
	"go.uber.org/zap"
)

// Build wires the HTTP server from environment configuration.
func Build() (*App, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logger, err := setupLogger(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("setup logger: %w", err)
	}

	logger.Info("Building application",
		zap.String("environment", cfg.Environment),
		zap.String("server_addr", cfg.ServerAddr),
	)

	db := setupDatabase(cfg, logger)

	var submissionRepo repository.SubmissionRepository = repository.NewSubmissionPostgres(db)
	submissionRepo = repository.NewCachedSubmissionRepository(submissionRepo, cfg.SubmissionCacheTTL, cfg.SubmissionCacheCleanup)

	var completionConnector analysis.CompletionConnector
	if cfg.AnthropicAPIKey == "" {
		logger.Warn("ANTHROPIC_API_KEY is not set, using fallback analysis")
		completionConnector = completion.NewMockConnector(logger)
	} else {
		completionConnector = completion.NewConnector(cfg.CompletionCfg, cfg.AnthropicAPIKey, logger)
	}

	if err := formatter.SetDOCXLicense(cfg.UnidocLicenseKey); err != nil {
		logger.Warn("DOCX export license rejected, DOCX export will fail", zap.Error(err))
	}

	analysisUC := analysis.NewUsecase(completionConnector, logger)
	submissionUC := submission.NewUsecase(submissionRepo, formatter.NewFactory(), logger)

	router := api.SetupRouter(
		api.RouterConfig{
			RequestTimeout: cfg.RequestTimeout,
			SwaggerPath:    cfg.SwaggerPath,
		},
		analyzeapi.NewHandler(analysisUC),
		submissionapi.NewHandler(submissionUC),
		logger,
	)

	server := &http.Server{
		Addr:              cfg.ServerAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      cfg.RequestTimeout + 10*time.Second,
		IdleTimeout:       60 * time.Second,
	}

	logger.Info("Application built successfully",
		zap.Bool("completion_configured", cfg.AnthropicAPIKey != ""),
		zap.Bool("store_configured", cfg.DatabaseURL != ""),
	)

	return &App{
		server: server,
		db:     db,
		logger: logger,
	}, nil
}

// BuildClient wires the terminal client's API access from environment
// configuration.
func BuildClient() (*config.ClientConfig, *apiclient.Client, *zap.Logger, error) {
	cfg, err := config.LoadClientConfig()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logger, err := setupCLILogger(cfg.LogLevel)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("setup logger: %w", err)
	}

	client := apiclient.New(apiclient.Config{
		BaseURL: cfg.APIURL,
		Timeout: cfg.Timeout,
	}, logger)

	return cfg, client, logger, nil
}

package builder

import (
	"github.com/futig/interview-assistant/internal/config"
	"github.com/futig/interview-assistant/internal/repository"
	"go.uber.org/zap"
)

// setupDatabase prepares the lazily connected pool. Nothing is dialed here:
// the first store operation connects and migrates.
func setupDatabase(cfg *config.Config, logger *zap.Logger) *repository.LazyPool {
	if cfg.DatabaseURL == "" {
		logger.Warn("DATABASE_URL is not set, submission endpoints will fail until it is configured")
	}

	return repository.NewLazyPool(repository.PoolConfig{
		DatabaseURL:       cfg.DatabaseURL,
		MigrationsPath:    cfg.MigrationsPath,
		MaxConns:          cfg.DBMaxConns,
		MinConns:          cfg.DBMinConns,
		MaxConnLifetime:   cfg.DBMaxConnLifetime,
		MaxConnIdleTime:   cfg.DBMaxConnIdleTime,
		HealthCheckPeriod: cfg.DBHealthCheckPeriod,
		ConnectRetry:      &cfg.DBConnectRetry,
	}, logger)
}

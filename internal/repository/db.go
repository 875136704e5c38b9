package repository

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/futig/interview-assistant/internal/entity"
	pkgRetry "github.com/futig/interview-assistant/internal/pkg/retry"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// DBTX is the query surface shared by pgxpool.Pool, pgx.Tx and pgxmock.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Provider hands out a ready-to-use connection, establishing it on demand.
type Provider interface {
	DB(ctx context.Context) (DBTX, error)
}

type PoolConfig struct {
	DatabaseURL       string
	MigrationsPath    string
	MaxConns          int
	MinConns          int
	MaxConnLifetime   time.Duration
	MaxConnIdleTime   time.Duration
	HealthCheckPeriod time.Duration
	ConnectRetry      *pkgRetry.RetryConfig
}

var _ Provider = &LazyPool{}

// LazyPool connects to Postgres on first use and runs migrations at that
// point. A failed attempt is not remembered, so the next call tries again.
type LazyPool struct {
	cfg    PoolConfig
	logger *zap.Logger

	mu   sync.Mutex
	pool *pgxpool.Pool
}

func NewLazyPool(cfg PoolConfig, logger *zap.Logger) *LazyPool {
	return &LazyPool{
		cfg:    cfg,
		logger: logger,
	}
}

func (p *LazyPool) DB(ctx context.Context) (DBTX, error) {
	if p.cfg.DatabaseURL == "" {
		return nil, entity.ErrStoreNotConfigured
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.pool != nil {
		return p.pool, nil
	}

	var pool *pgxpool.Pool
	err := pkgRetry.Do(ctx, p.cfg.ConnectRetry, func() error {
		var cerr error
		pool, cerr = p.connect(ctx)
		return cerr
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", entity.ErrPersistence, err)
	}

	p.pool = pool
	return pool, nil
}

func (p *LazyPool) connect(ctx context.Context) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(p.cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse database URL: %w", err)
	}

	if p.cfg.MaxConns > 0 {
		poolConfig.MaxConns = int32(p.cfg.MaxConns)
	}
	poolConfig.MinConns = int32(p.cfg.MinConns)
	if p.cfg.MaxConnLifetime > 0 {
		poolConfig.MaxConnLifetime = p.cfg.MaxConnLifetime
	}
	if p.cfg.MaxConnIdleTime > 0 {
		poolConfig.MaxConnIdleTime = p.cfg.MaxConnIdleTime
	}
	if p.cfg.HealthCheckPeriod > 0 {
		poolConfig.HealthCheckPeriod = p.cfg.HealthCheckPeriod
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if p.cfg.MigrationsPath != "" {
		p.logger.Info("Running database migrations", zap.String("source", p.cfg.MigrationsPath))
		if err := RunMigrations(p.cfg.MigrationsPath, p.cfg.DatabaseURL); err != nil {
			pool.Close()
			return nil, err
		}
	}

	p.logger.Info("database connection pool established",
		zap.Int32("max_conns", poolConfig.MaxConns),
		zap.Int32("min_conns", poolConfig.MinConns),
		zap.Duration("max_conn_lifetime", poolConfig.MaxConnLifetime),
		zap.Duration("max_conn_idle_time", poolConfig.MaxConnIdleTime),
	)

	return pool, nil
}

// Close releases the pool if one was ever opened.
func (p *LazyPool) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.pool != nil {
		p.pool.Close()
		p.pool = nil
	}
}

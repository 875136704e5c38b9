package config

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	pkgRetry "github.com/futig/interview-assistant/internal/pkg/retry"
	"github.com/joho/godotenv"
)

// Config holds the server configuration
type Config struct {
	// Server configuration
	ServerAddr     string        `env:"SERVER_ADDR" envDefault:":8080"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"150s"`
	SwaggerPath    string        `env:"SWAGGER_PATH" envDefault:"docs/swagger.yaml"`

	// Database configuration. An empty DatabaseURL is allowed: store
	// operations then fail on first use instead of at startup.
	DatabaseURL         string               `env:"DATABASE_URL"`
	DBMaxConns          int                  `env:"DB_MAX_CONNS" envDefault:"25"`
	DBMinConns          int                  `env:"DB_MIN_CONNS" envDefault:"0"`
	DBMaxConnLifetime   time.Duration        `env:"DB_MAX_CONN_LIFETIME" envDefault:"1h"`
	DBMaxConnIdleTime   time.Duration        `env:"DB_MAX_CONN_IDLE_TIME" envDefault:"30m"`
	DBHealthCheckPeriod time.Duration        `env:"DB_HEALTH_CHECK_PERIOD" envDefault:"1m"`
	DBConnectRetry      pkgRetry.RetryConfig `envPrefix:"DB_CONNECT_RETRY_"`
	MigrationsPath      string               `env:"MIGRATIONS_PATH" envDefault:"file://internal/repository/migrations"`

	// Submission read cache
	SubmissionCacheTTL     time.Duration `env:"SUBMISSION_CACHE_TTL" envDefault:"10m"`
	SubmissionCacheCleanup time.Duration `env:"SUBMISSION_CACHE_CLEANUP" envDefault:"30m"`

	// Completion service. Without AnthropicAPIKey the fallback connector is used.
	AnthropicAPIKey string                    `env:"ANTHROPIC_API_KEY"`
	CompletionCfg   CompletionConnectorConfig `envPrefix:"COMPLETION_"`

	// Optional metered key for DOCX export
	UnidocLicenseKey string `env:"UNIDOC_LICENSE_API_KEY"`

	// Logging configuration
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// Environment (set from flag, not from env var)
	Environment string
}

type CompletionConnectorConfig struct {
	HTTPClientConfig
	Endpoint   string `env:"ENDPOINT" envDefault:"/v1/messages"`
	Model      string `env:"MODEL" envDefault:"claude-3-7-sonnet-20250219"`
	MaxTokens  int    `env:"MAX_TOKENS" envDefault:"2000"`
	APIVersion string `env:"API_VERSION" envDefault:"2023-06-01"`
}

// HTTPClientConfig tunes the outbound connector. Zero durations keep the
// connector defaults.
type HTTPClientConfig struct {
	RequestTimeout        time.Duration `env:"TIMEOUT"`
	ConnTimeout           time.Duration `env:"CONN_TIMEOUT"`
	KeepAlive             time.Duration `env:"KEEP_ALIVE"`
	IdleConnTimeout       time.Duration `env:"IDLE_CONN_TIMEOUT"`
	ResponseHeaderTimeout time.Duration `env:"RESPONSE_HEADER_TIMEOUT"`
	Url                   string        `env:"SERVICE_URL" envDefault:"https://api.anthropic.com"`
}

// ClientConfig holds the terminal client configuration
type ClientConfig struct {
	APIURL        string        `env:"ASSISTANT_API_URL" envDefault:"http://localhost:8080"`
	Timeout       time.Duration `env:"ASSISTANT_TIMEOUT" envDefault:"3m"`
	AutoSave      bool          `env:"ASSISTANT_AUTO_SAVE" envDefault:"false"`
	TriggerPhrase string        `env:"ASSISTANT_TRIGGER_PHRASE" envDefault:"let me think"`
	LogLevel      string        `env:"LOG_LEVEL" envDefault:"warn"`

	Environment string
}

func LoadConfig() (*Config, error) {
	return loadConfig(os.Args[1:])
}

func loadConfig(args []string) (*Config, error) {
	environment, err := parseEnvFlag("interview-assistant", args)
	if err != nil {
		return nil, err
	}

	loadEnvFile(environment)

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	cfg.Environment = environment

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

func LoadClientConfig() (*ClientConfig, error) {
	return loadClientConfig(os.Args[1:])
}

func loadClientConfig(args []string) (*ClientConfig, error) {
	environment, err := parseEnvFlag("assistant-cli", args)
	if err != nil {
		return nil, err
	}

	loadEnvFile(environment)

	cfg := &ClientConfig{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	cfg.Environment = environment

	if strings.TrimSpace(cfg.APIURL) == "" {
		return nil, fmt.Errorf("config validation failed: ASSISTANT_API_URL must not be empty")
	}
	if strings.TrimSpace(cfg.TriggerPhrase) == "" {
		return nil, fmt.Errorf("config validation failed: ASSISTANT_TRIGGER_PHRASE must not be empty")
	}

	return cfg, nil
}

func parseEnvFlag(name string, args []string) (string, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	envFlag := fs.String("env", "local", "Environment to run (local, prod, or custom)")
	if err := fs.Parse(args); err != nil {
		return "", fmt.Errorf("parse flags: %w", err)
	}
	return *envFlag, nil
}

func loadEnvFile(environment string) {
	envFile := getEnvFile(environment)
	// Try to load env file, but don't fail if it's missing.
	// In containerized/prod environments variables are usually set externally.
	if err := godotenv.Load(envFile); err != nil && !os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "Warning: could not load %s file: %v\n", envFile, err)
	}
}

func validateConfig(cfg *Config) error {
	var errors []string

	if strings.TrimSpace(cfg.ServerAddr) == "" {
		errors = append(errors, "SERVER_ADDR must not be empty")
	}

	if cfg.RequestTimeout <= 0 {
		errors = append(errors, fmt.Sprintf("REQUEST_TIMEOUT must be positive, got %s", cfg.RequestTimeout))
	}

	if cfg.DBMaxConns < 1 || cfg.DBMaxConns > 200 {
		errors = append(errors, fmt.Sprintf("DB_MAX_CONNS must be between 1 and 200, got %d", cfg.DBMaxConns))
	}

	if cfg.DBMinConns < 0 || cfg.DBMinConns > cfg.DBMaxConns {
		errors = append(errors, fmt.Sprintf("DB_MIN_CONNS must be between 0 and DB_MAX_CONNS(%d), got %d", cfg.DBMaxConns, cfg.DBMinConns))
	}

	if cfg.CompletionCfg.MaxTokens < 1 || cfg.CompletionCfg.MaxTokens > 64000 {
		errors = append(errors, fmt.Sprintf("COMPLETION_MAX_TOKENS must be between 1 and 64000, got %d", cfg.CompletionCfg.MaxTokens))
	}

	if strings.TrimSpace(cfg.CompletionCfg.Model) == "" {
		errors = append(errors, "COMPLETION_MODEL must not be empty")
	}

	if cfg.SubmissionCacheTTL <= 0 {
		errors = append(errors, fmt.Sprintf("SUBMISSION_CACHE_TTL must be positive, got %s", cfg.SubmissionCacheTTL))
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation errors:\n  - %s", strings.Join(errors, "\n  - "))
	}

	return nil
}

func getEnvFile(environment string) string {
	switch environment {
	case "prod", "production":
		return ".env.prod"
	case "local", "dev", "development":
		return ".env.local"
	default:
		return fmt.Sprintf(".env.%s", environment)
	}
}

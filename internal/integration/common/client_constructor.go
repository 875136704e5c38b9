package common

import (
	"github.com/futig/interview-assistant/internal/config"
	pkgHTTP "github.com/futig/interview-assistant/pkg/http"
	"go.uber.org/zap"
)

// NewBaseConnector builds an outbound JSON connector from the shared HTTP
// client settings. Credentials are attached by the caller through opts.
func NewBaseConnector(cfg config.HTTPClientConfig, logger *zap.Logger, opts ...pkgHTTP.HttpOpts) *pkgHTTP.Connector {
	connCfg := &pkgHTTP.ConnectorConfig{
		Logger:  logger,
		BaseURL: cfg.Url,
	}

	base := []pkgHTTP.HttpOpts{
		pkgHTTP.WithRequestTimeout(cfg.RequestTimeout),
		pkgHTTP.WithConnClientTimeout(cfg.ConnTimeout),
		pkgHTTP.WithClientKeepAlive(cfg.KeepAlive),
		pkgHTTP.WithIdleConnTimeout(cfg.IdleConnTimeout),
		pkgHTTP.WithResponseHeaderTimeout(cfg.ResponseHeaderTimeout),
		pkgHTTP.WithRequestLogging(),
	}

	return pkgHTTP.NewConnector(connCfg, append(base, opts...)...)
}

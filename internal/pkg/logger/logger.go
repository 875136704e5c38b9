package logger

import (
	"context"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

// AddFields adds fields to the logger in context and returns new context
func AddFields(ctx context.Context, fields ...zap.Field) context.Context {
	return ctxzap.ToContext(ctx, ctxzap.Extract(ctx).With(fields...))
}

// WithAction tags the context logger with the handler or use case name
func WithAction(ctx context.Context, action string) context.Context {
	return AddFields(ctx, zap.String("action", action))
}

// WithLogger attaches a base logger to ctx. Used outside of HTTP requests,
// where the middleware has not installed one.
func WithLogger(ctx context.Context, l *zap.Logger) context.Context {
	return ctxzap.ToContext(ctx, l)
}

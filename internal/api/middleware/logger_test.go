package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLogger_RequestScopedLoggerAndLevels(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)

	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctxzap.Info(r.Context(), "inside handler")
		w.WriteHeader(http.StatusBadGateway)
	})
	h := chimiddleware.RequestID(Logger(zap.New(core))(inner))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/submissions", nil))

	inside := logs.FilterMessage("inside handler").All()
	require.Len(t, inside, 1)
	require.NotEmpty(t, inside[0].ContextMap()["request_id"])

	finished := logs.FilterMessage("Finish handle HTTP request").All()
	require.Len(t, finished, 1)
	require.Equal(t, zapcore.ErrorLevel, finished[0].Level)
	require.EqualValues(t, http.StatusBadGateway, finished[0].ContextMap()["status"])
}

func TestLevelForStatus(t *testing.T) {
	require.Equal(t, zapcore.InfoLevel, levelForStatus(200))
	require.Equal(t, zapcore.WarnLevel, levelForStatus(404))
	require.Equal(t, zapcore.ErrorLevel, levelForStatus(500))
}

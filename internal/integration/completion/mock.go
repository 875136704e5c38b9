package completion

import (
	"context"
	"fmt"

	"github.com/futig/interview-assistant/internal/entity"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

// FallbackMarker appears in every explanation produced without a completion
// credential.
const FallbackMarker = "This is a mock response since the Anthropic API key is not configured."

const fallbackTemplate = `# Analysis for: %s

%s

## What you would get with the real API:
- Detailed problem breakdown
- Solution approaches with pseudocode
- Time and space complexity analysis
- Step-by-step explanation

To enable real analysis, please set your ANTHROPIC_API_KEY environment variable.`

// MockConnector answers without calling any service. It is wired in when no
// API key is configured.
type MockConnector struct {
	logger *zap.Logger
}

func NewMockConnector(logger *zap.Logger) *MockConnector {
	return &MockConnector{
		logger: logger,
	}
}

func (m *MockConnector) Analyze(ctx context.Context, question string) (*entity.Analysis, error) {
	ctxzap.Warn(ctx, "[MOCK] ANTHROPIC_API_KEY not set, returning fallback analysis")

	return &entity.Analysis{
		Explanation: fmt.Sprintf(fallbackTemplate, question, FallbackMarker),
	}, nil
}

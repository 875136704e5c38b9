package completion

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/futig/interview-assistant/internal/config"
	"github.com/futig/interview-assistant/internal/entity"
	"github.com/futig/interview-assistant/internal/integration/common"
	pkghttp "github.com/futig/interview-assistant/pkg/http"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

const (
	apiKeyHeader     = "x-api-key"
	apiVersionHeader = "anthropic-version"
	textBlockType    = "text"
)

// Connector calls the Anthropic Messages API once per question.
type Connector struct {
	config    config.CompletionConnectorConfig
	connector *pkghttp.Connector
	logger    *zap.Logger
}

func NewConnector(
	cfg config.CompletionConnectorConfig,
	apiKey string,
	logger *zap.Logger,
) *Connector {
	return &Connector{
		connector: common.NewBaseConnector(cfg.HTTPClientConfig, logger, pkghttp.WithAuthHeader(apiKeyHeader, apiKey)),
		config:    cfg,
		logger:    logger,
	}
}

// Analyze sends the question to the completion service and returns the first
// content block, which must be text.
func (c *Connector) Analyze(ctx context.Context, question string) (*entity.Analysis, error) {
	ctxzap.Info(ctx, "requesting analysis from completion service",
		zap.String("model", c.config.Model),
		zap.Int("max_tokens", c.config.MaxTokens),
	)

	req := &entity.CompletionRequest{
		Model:     c.config.Model,
		MaxTokens: c.config.MaxTokens,
		Messages: []entity.CompletionMessage{
			{Role: "user", Content: BuildPrompt(question)},
		},
	}

	var resp entity.CompletionResponse
	err := c.connector.DoRequest(ctx, http.MethodPost, c.config.Endpoint, req, &resp,
		pkghttp.WithHeader(apiVersionHeader, c.config.APIVersion),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", entity.ErrUpstream, err)
	}

	explanation, err := firstText(&resp)
	if err != nil {
		return nil, err
	}

	ctxzap.Info(ctx, "analysis received",
		zap.String("completion_id", resp.ID),
		zap.String("stop_reason", resp.StopReason),
		zap.Int("explanation_length", len(explanation)),
	)

	return &entity.Analysis{Explanation: explanation}, nil
}

func firstText(resp *entity.CompletionResponse) (string, error) {
	if len(resp.Content) == 0 {
		return "", fmt.Errorf("%w: response has no content blocks", entity.ErrUpstream)
	}

	block := resp.Content[0]
	if block.Type != textBlockType {
		return "", fmt.Errorf("%w: unexpected content block type %q", entity.ErrUpstream, block.Type)
	}

	if strings.TrimSpace(block.Text) == "" {
		return "", fmt.Errorf("%w: empty text block", entity.ErrUpstream)
	}

	return block.Text, nil
}

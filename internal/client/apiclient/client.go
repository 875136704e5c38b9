package apiclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/futig/interview-assistant/internal/entity"
	pkghttp "github.com/futig/interview-assistant/pkg/http"
	"go.uber.org/zap"
)

const msgUnreachable = "Could not reach the assistant API. Please check your connection."

type Config struct {
	BaseURL string
	Timeout time.Duration
}

// Client talks to the interview assistant HTTP API.
type Client struct {
	conn   *pkghttp.Connector
	logger *zap.Logger
}

func New(cfg Config, logger *zap.Logger) *Client {
	return &Client{
		conn: pkghttp.NewConnector(
			&pkghttp.ConnectorConfig{
				BaseURL: strings.TrimRight(cfg.BaseURL, "/"),
				Logger:  logger,
			},
			pkghttp.WithRequestTimeout(cfg.Timeout),
			pkghttp.WithResponseHeaderTimeout(cfg.Timeout),
			pkghttp.WithRequestLogging(),
		),
		logger: logger,
	}
}

// APIError is a failed call, carrying the message meant for the user.
type APIError struct {
	StatusCode int
	Message    string
	Err        error
}

func (e *APIError) Error() string {
	if e.StatusCode == 0 {
		return e.Message
	}
	return fmt.Sprintf("%d: %s", e.StatusCode, e.Message)
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// UserMessage returns the text to show for err, or fallback when err does
// not carry one.
func UserMessage(err error, fallback string) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}

func (c *Client) Analyze(ctx context.Context, question string) (*entity.AnalyzeResponse, error) {
	var resp entity.AnalyzeResponse
	if err := c.do(ctx, http.MethodPost, "/api/analyze", &entity.AnalyzeRequest{Question: &question}, &resp); err != nil {
		return nil, err
	}
	if resp.Analysis == nil {
		return nil, &APIError{Message: "The assistant returned an empty analysis."}
	}
	return &resp, nil
}

func (c *Client) ListSubmissions(ctx context.Context, limit int) ([]*entity.Submission, error) {
	endpoint := "/api/submissions"
	if limit > 0 {
		endpoint += "?" + url.Values{"limit": {strconv.Itoa(limit)}}.Encode()
	}

	var resp entity.ListSubmissionsResponse
	if err := c.do(ctx, http.MethodGet, endpoint, nil, &resp); err != nil {
		return nil, err
	}
	if resp.Items == nil {
		resp.Items = []*entity.Submission{}
	}
	return resp.Items, nil
}

func (c *Client) CreateSubmission(ctx context.Context, question, explanation string) (*entity.Submission, error) {
	var resp entity.CreateSubmissionResponse
	req := &entity.CreateSubmissionRequest{Question: &question, Explanation: &explanation}
	if err := c.do(ctx, http.MethodPost, "/api/submissions", req, &resp); err != nil {
		return nil, err
	}
	return resp.Submission, nil
}

func (c *Client) GetSubmission(ctx context.Context, id string) (*entity.Submission, error) {
	var resp entity.GetSubmissionResponse
	if err := c.do(ctx, http.MethodGet, "/api/submissions/"+url.PathEscape(id), nil, &resp); err != nil {
		return nil, err
	}
	return resp.Submission, nil
}

func (c *Client) do(ctx context.Context, method, endpoint string, reqBody, respBody any) error {
	err := c.conn.DoRequest(ctx, method, endpoint, reqBody, respBody)
	if err == nil {
		return nil
	}

	c.logger.Debug("assistant API call failed",
		zap.String("method", method),
		zap.String("endpoint", endpoint),
		zap.Error(err),
	)

	var httpErr *pkghttp.HTTPError
	if errors.As(err, &httpErr) {
		return &APIError{
			StatusCode: httpErr.StatusCode,
			Message:    envelopeMessage(httpErr),
			Err:        err,
		}
	}

	var netErr *pkghttp.NetworkError
	if errors.As(err, &netErr) {
		return &APIError{Message: msgUnreachable, Err: err}
	}

	return &APIError{Message: "Unexpected response from the assistant API.", Err: err}
}

func envelopeMessage(httpErr *pkghttp.HTTPError) string {
	var envelope struct {
		Error string `json:"error"`
	}
	if json.Unmarshal([]byte(httpErr.Message), &envelope) == nil && envelope.Error != "" {
		return envelope.Error
	}
	return http.StatusText(httpErr.StatusCode)
}

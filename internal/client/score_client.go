package client

import (
	"context"
	"fmt"
	"strings"
	"time"

	"mavita-score/internal/models"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// envelope 服务端统一响应
type envelope[T any] struct {
	Code    int    `json:"code"`
	Type    string `json:"type"`
	Message string `json:"message"`
	Result  T      `json:"result"`
}

type validationResult struct {
	Errors []models.FieldError `json:"errors"`
}

// APIError 非 2xx 响应
type APIError struct {
	StatusCode int
	Message    string
	Errors     []models.FieldError
}

func (e *APIError) Error() string {
	if len(e.Errors) == 0 {
		return fmt.Sprintf("score API error: %s (status: %d)", e.Message, e.StatusCode)
	}
	parts := make([]string, 0, len(e.Errors))
	for _, fe := range e.Errors {
		parts = append(parts, fe.Error())
	}
	return fmt.Sprintf("score API error: %s (status: %d): %s", e.Message, e.StatusCode, strings.Join(parts, "; "))
}

// Options ScoreClient 选项
type Options struct {
	Token      string // Bearer token（/api/scores 需要）
	Timeout    time.Duration
	RetryCount int
}

// ScoreClient mavita-score HTTP API 客户端
type ScoreClient struct {
	httpClient *resty.Client
	logger     *zap.Logger
}

// NewScoreClient 创建客户端
func NewScoreClient(baseURL string, opts Options, logger *zap.Logger) *ScoreClient {
	if opts.Timeout <= 0 {
		opts.Timeout = 10 * time.Second
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	c := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetTimeout(opts.Timeout).
		SetRetryCount(opts.RetryCount).
		SetRetryWaitTime(500 * time.Millisecond).
		SetRetryMaxWaitTime(3 * time.Second).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")
	if opts.Token != "" {
		c.SetAuthToken(opts.Token)
	}
	return &ScoreClient{httpClient: c, logger: logger}
}

// Assess POST /api/health-score
func (c *ScoreClient) Assess(ctx context.Context, req models.AssessmentRequest) (*models.Assessment, error) {
	var result envelope[models.Assessment]
	var failure envelope[validationResult]
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&result).
		SetError(&failure).
		Post("/api/health-score")
	if err != nil {
		return nil, fmt.Errorf("failed to call score API: %w", err)
	}
	if resp.IsError() {
		return nil, c.apiError(resp.StatusCode(), failure.Message, failure.Result.Errors)
	}
	return &result.Result, nil
}

// CurrentScores GET /api/scores
func (c *ScoreClient) CurrentScores(ctx context.Context) ([]models.IndicatorResult, error) {
	var result envelope[[]models.IndicatorResult]
	var failure envelope[any]
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetResult(&result).
		SetError(&failure).
		Get("/api/scores")
	if err != nil {
		return nil, fmt.Errorf("failed to call score API: %w", err)
	}
	if resp.IsError() {
		return nil, c.apiError(resp.StatusCode(), failure.Message, nil)
	}
	return result.Result, nil
}

func (c *ScoreClient) apiError(status int, message string, errs []models.FieldError) error {
	if message == "" {
		message = "request failed"
	}
	c.logger.Warn("Score API returned error",
		zap.Int("status_code", status),
		zap.String("msg", message),
		zap.Int("field_errors", len(errs)),
	)
	return &APIError{StatusCode: status, Message: message, Errors: errs}
}

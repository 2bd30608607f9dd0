// Package gemini implements the Gemini API client used for AI-assisted
// tutor matchmaking and profile bio generation.
package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/findateacher/tutorhub/internal/domain/shared"
	"github.com/findateacher/tutorhub/internal/domain/tutor"
	"github.com/findateacher/tutorhub/pkg/circuitbreaker"
	"github.com/findateacher/tutorhub/pkg/retry"
)

// DefaultBaseURL is the public Gemini API endpoint.
const DefaultBaseURL = "https://generativelanguage.googleapis.com"

// DefaultModel is the model used when none is configured.
const DefaultModel = "gemini-3-flash-preview"

// Config contains configuration for the Gemini client.
type Config struct {
	// BaseURL of the Gemini API. Tests point this at a local server.
	BaseURL string

	// APIKey authenticates requests. Required.
	APIKey string

	// Model is the model name used for all calls.
	Model string

	// Timeout bounds a single HTTP request.
	Timeout time.Duration

	// RetryConfig for transient failures.
	RetryConfig retry.Config

	// BreakerConfig guards against a persistently failing API.
	BreakerConfig circuitbreaker.Config

	// Logger for structured logging.
	Logger *zap.Logger
}

// DefaultConfig returns sensible defaults for the given API key.
func DefaultConfig(apiKey string) Config {
	return Config{
		BaseURL:       DefaultBaseURL,
		APIKey:        apiKey,
		Model:         DefaultModel,
		Timeout:       15 * time.Second,
		RetryConfig:   retry.DefaultConfig(),
		BreakerConfig: circuitbreaker.DefaultConfig("gemini"),
	}
}

// Client calls the Gemini generateContent API.
type Client struct {
	config     Config
	httpClient *http.Client
	retrier    *retry.Retrier
	breaker    *circuitbreaker.CircuitBreaker
	logger     *zap.Logger
}

// NewClient creates a new Gemini API client.
func NewClient(config Config) *Client {
	if config.BaseURL == "" {
		config.BaseURL = DefaultBaseURL
	}
	if config.Model == "" {
		config.Model = DefaultModel
	}
	if config.Timeout <= 0 {
		config.Timeout = 15 * time.Second
	}
	if config.Logger == nil {
		config.Logger = zap.NewNop()
	}

	return &Client{
		config:     config,
		httpClient: &http.Client{Timeout: config.Timeout},
		retrier:    retry.New(config.RetryConfig),
		breaker:    circuitbreaker.New(config.BreakerConfig),
		logger:     config.Logger,
	}
}

// SmartMatch asks the model to pick up to three tutors for a free-form
// student query. Returned ids are in the model's preference order; ids
// unknown to the caller must be ignored, not treated as errors.
func (c *Client) SmartMatch(ctx context.Context, query string, candidates []*tutor.Tutor) (ids []string, reasoning string, err error) {
	prompt, err := buildSmartMatchPrompt(query, candidates)
	if err != nil {
		return nil, "", err
	}

	request := generateContentRequest{
		Contents: []contentDT{{Parts: []partDT{{Text: prompt}}}},
		GenerationConfig: &generationConfig{
			ResponseMIMEType: "application/json",
			ResponseSchema:   smartMatchSchema(),
		},
	}

	text, err := c.generate(ctx, request)
	if err != nil {
		return nil, "", shared.NewDomainError("gemini", "SmartMatch", shared.ErrExternalService,
			fmt.Sprintf("smart match call failed: %v", err))
	}

	var parsed smartMatchResponse
	if err := json.Unmarshal([]byte(text), &parsed); err != nil {
		return nil, "", shared.NewDomainError("gemini", "SmartMatch", shared.ErrExternalService,
			fmt.Sprintf("unparseable model output: %v", err))
	}

	return parsed.RecommendedTutorIDs, parsed.Reasoning, nil
}

// GenerateBio produces a short profile bio from free-form inputs.
func (c *Client) GenerateBio(ctx context.Context, experience, subjects, style string) (string, error) {
	request := generateContentRequest{
		Contents: []contentDT{{Parts: []partDT{{Text: buildBioPrompt(experience, subjects, style)}}}},
	}

	text, err := c.generate(ctx, request)
	if err != nil {
		return "", shared.NewDomainError("gemini", "GenerateBio", shared.ErrExternalService,
			fmt.Sprintf("bio generation failed: %v", err))
	}

	bio := strings.TrimSpace(text)
	if bio == "" {
		return "", shared.NewDomainError("gemini", "GenerateBio", shared.ErrExternalService,
			"model returned an empty bio")
	}
	return bio, nil
}

// generate performs a single generateContent call with retries and the
// circuit breaker, and returns the first text part of the response.
func (c *Client) generate(ctx context.Context, request generateContentRequest) (string, error) {
	if c.config.APIKey == "" {
		return "", retry.Permanent(fmt.Errorf("gemini api key is not configured"))
	}

	body, err := json.Marshal(request)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	var text string
	err = c.breaker.Execute(ctx, func(ctx context.Context) error {
		return c.retrier.Do(ctx, func(ctx context.Context) error {
			result, err := c.doRequest(ctx, body)
			if err != nil {
				return err
			}
			text = result
			return nil
		})
	})
	if err != nil {
		return "", err
	}
	return text, nil
}

func (c *Client) doRequest(ctx context.Context, body []byte) (string, error) {
	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", c.config.BaseURL, c.config.Model)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", retry.Permanent(fmt.Errorf("create request: %w", err))
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.config.APIKey)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("http request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	c.logger.Debug("gemini api call",
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", time.Since(start)),
	)

	if resp.StatusCode != http.StatusOK {
		var apiErr apiErrorResponse
		msg := fmt.Sprintf("status %d", resp.StatusCode)
		if json.Unmarshal(respBody, &apiErr) == nil && apiErr.Error.Message != "" {
			msg = fmt.Sprintf("status %d: %s", resp.StatusCode, apiErr.Error.Message)
		}
		// Client errors will not succeed on retry.
		if resp.StatusCode >= 400 && resp.StatusCode < 500 && resp.StatusCode != http.StatusTooManyRequests {
			return "", retry.Permanent(fmt.Errorf("gemini api error: %s", msg))
		}
		return "", fmt.Errorf("gemini api error: %s", msg)
	}

	var parsed generateContentResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", retry.Permanent(fmt.Errorf("unmarshal response: %w", err))
	}

	text := parsed.text()
	if text == "" {
		return "", retry.Permanent(fmt.Errorf("empty model response"))
	}
	return text, nil
}

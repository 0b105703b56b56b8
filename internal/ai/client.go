package ai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	apperrors "carevo/internal/errors"
)

const defaultBaseURL = "https://generativelanguage.googleapis.com"

// Provider is a stateless text-completion capability. Implementations must
// honor the context deadline.
type Provider interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// ClientConfig configures the Gemini client.
type ClientConfig struct {
	APIKey  string
	Model   string
	BaseURL string
	Timeout time.Duration
	// MaxRetries bounds re-attempts after a failed call. Zero means a
	// single attempt.
	MaxRetries int
}

// Client calls the Gemini generateContent REST API.
type Client struct {
	http  *resty.Client
	model string
}

// NewClient builds a Gemini client with a bounded request timeout.
func NewClient(cfg ClientConfig) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout).
		SetHeader("Content-Type", "application/json").
		SetQueryParam("key", cfg.APIKey)

	if cfg.MaxRetries > 0 {
		cli.SetRetryCount(cfg.MaxRetries).
			SetRetryWaitTime(500 * time.Millisecond).
			SetRetryMaxWaitTime(5 * time.Second)
	}

	return &Client{http: cli, model: cfg.Model}
}

type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Complete sends a prompt and returns the normalized completion text.
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	var out generateResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(generateRequest{Contents: []content{{Parts: []part{{Text: prompt}}}}}).
		SetResult(&out).
		Post(fmt.Sprintf("/v1beta/models/%s:generateContent", c.model))
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || isTimeout(err) {
			return "", fmt.Errorf("%w: %v", apperrors.ErrAITimeout, err)
		}
		return "", fmt.Errorf("%w: %v", apperrors.ErrAIProvider, err)
	}
	if resp.StatusCode() != http.StatusOK {
		msg := resp.Status()
		var errBody generateResponse
		if jsonErr := json.Unmarshal(resp.Body(), &errBody); jsonErr == nil && errBody.Error != nil && errBody.Error.Message != "" {
			msg = errBody.Error.Message
		}
		return "", fmt.Errorf("%w: %s", apperrors.ErrAIProvider, msg)
	}

	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("%w: empty completion", apperrors.ErrAIProvider)
	}

	var b strings.Builder
	for _, p := range out.Candidates[0].Content.Parts {
		b.WriteString(p.Text)
	}
	return StripCodeFences(b.String()), nil
}

func isTimeout(err error) bool {
	var nerr interface{ Timeout() bool }
	return errors.As(err, &nerr) && nerr.Timeout()
}

// StripCodeFences unwraps a completion the model wrapped in a markdown
// code block, a habit of Gemini when asked for structured output.
func StripCodeFences(text string) string {
	text = strings.TrimSpace(text)
	if strings.Contains(text, "```json") {
		after := strings.SplitN(text, "```json", 2)[1]
		return strings.TrimSpace(strings.SplitN(after, "```", 2)[0])
	}
	if strings.Contains(text, "```") {
		parts := strings.SplitN(text, "```", 3)
		if len(parts) >= 2 {
			return strings.TrimSpace(parts[1])
		}
	}
	return text
}

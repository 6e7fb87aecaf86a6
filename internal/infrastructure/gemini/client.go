package gemini

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/time/rate"
	"google.golang.org/genai"
)

// Config selects the models and the minimum spacing between remote calls.
type Config struct {
	APIKey      string
	TextModel   string
	ImageModel  string
	VisionModel string
	CallSpacing time.Duration
}

// Client wraps the genai SDK client together with the shared call
// limiter. Every remote call waits on the limiter first, so successive
// calls are spaced by at least CallSpacing regardless of which stage
// issues them.
type Client struct {
	genai   *genai.Client
	cfg     Config
	limiter *rate.Limiter
}

// NewClient validates the configuration and dials the Gemini API.
func NewClient(ctx context.Context, cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini api key is required")
	}
	if cfg.TextModel == "" {
		cfg.TextModel = "gemini-2.5-flash"
	}
	if cfg.ImageModel == "" {
		cfg.ImageModel = "gemini-2.5-flash-image"
	}
	if cfg.VisionModel == "" {
		cfg.VisionModel = cfg.TextModel
	}
	if cfg.CallSpacing <= 0 {
		cfg.CallSpacing = 2 * time.Second
	}

	gc, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: cfg.APIKey})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	return &Client{
		genai:   gc,
		cfg:     cfg,
		limiter: rate.NewLimiter(rate.Every(cfg.CallSpacing), 1),
	}, nil
}

// wait blocks until the informal per-call rate limit allows another call.
func (c *Client) wait(ctx context.Context) error {
	return c.limiter.Wait(ctx)
}

// Package gemini holds the LLM collaborators of the analysis pipeline: the
// video perception step that breaks a process into tasks, and the planning
// step that maps human tasks onto robots. Both produce plain data records;
// downstream consumers never see raw model output.
package gemini

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

const (
	defaultModel           = "gemini-2.0-flash-001"
	defaultTemperature     = 0.4
	defaultMaxOutputTokens = 8192
)

// Client calls the Gemini API for the two LLM steps of an analysis.
type Client struct {
	client      *genai.Client
	model       string
	temperature float32
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithModel overrides the Gemini model name.
func WithModel(model string) ClientOption {
	return func(c *Client) {
		if model != "" {
			c.model = model
		}
	}
}

// NewClient creates a Gemini client using an API key.
func NewClient(ctx context.Context, apiKey string, opts ...ClientOption) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini api key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return nil, fmt.Errorf("creating gemini client: %w", err)
	}

	c := &Client{
		client:      client,
		model:       defaultModel,
		temperature: defaultTemperature,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// generate runs one generation call and returns the raw text reply.
func (c *Client) generate(ctx context.Context, contents []*genai.Content) (string, error) {
	result, err := c.client.Models.GenerateContent(ctx, c.model, contents, &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(c.temperature),
		MaxOutputTokens: defaultMaxOutputTokens,
	})
	if err != nil {
		return "", fmt.Errorf("gemini generate content: %w", err)
	}

	text := result.Text()
	if text == "" {
		return "", fmt.Errorf("gemini returned an empty reply")
	}
	return text, nil
}

// Package gemini wraps the Google GenAI SDK for single-shot prompt
// generation. The underlying client is created lazily on first use because
// genai.NewClient needs a context.
package gemini

import (
	"context"
	"strings"
	"sync"

	"github.com/rotisserie/eris"
	"google.golang.org/genai"
)

const defaultModel = "gemini-2.5-flash"

// Client generates text from a system preamble plus a user prompt.
type Client struct {
	apiKey string
	model  string

	once    sync.Once
	client  *genai.Client
	initErr error
}

// NewClient creates a Gemini client. The API key is validated on first
// generation, not here.
func NewClient(apiKey, model string) *Client {
	if strings.TrimSpace(model) == "" {
		model = defaultModel
	}
	return &Client{apiKey: strings.TrimSpace(apiKey), model: model}
}

func (c *Client) init(ctx context.Context) error {
	c.once.Do(func() {
		if c.apiKey == "" {
			c.initErr = eris.New("gemini: api key is required")
			return
		}
		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  c.apiKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			c.initErr = eris.Wrap(err, "gemini: create client")
			return
		}
		c.client = client
	})
	return c.initErr
}

// Generate sends the prompt with an optional system instruction and
// returns the first textual response.
func (c *Client) Generate(ctx context.Context, system, prompt string) (string, error) {
	if err := c.init(ctx); err != nil {
		return "", err
	}

	var cfg *genai.GenerateContentConfig
	if system != "" {
		cfg = &genai.GenerateContentConfig{
			SystemInstruction: &genai.Content{
				Parts: []*genai.Part{{Text: system}},
			},
		}
	}

	contents := []*genai.Content{{
		Role:  genai.RoleUser,
		Parts: []*genai.Part{{Text: prompt}},
	}}

	resp, err := c.client.Models.GenerateContent(ctx, c.model, contents, cfg)
	if err != nil {
		return "", eris.Wrap(err, "gemini: generate content")
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", eris.New("gemini: empty response")
	}
	return text, nil
}

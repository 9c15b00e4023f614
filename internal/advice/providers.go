package advice

import (
	"context"
	"fmt"

	"github.com/tapiwanashenyerenyere-afk/Career-Craft-V7/pkg/anthropic"
	"github.com/tapiwanashenyerenyere-afk/Career-Craft-V7/pkg/gemini"
	"github.com/tapiwanashenyerenyere-afk/Career-Craft-V7/pkg/openai"
)

// userPrompt combines the context summary and the user's free text the
// same way for every provider.
func userPrompt(question string, actx Context) string {
	return fmt.Sprintf("Context: %s\n\nUser Question: %s", actx.Summary(), question)
}

// AnthropicProvider asks Claude via the official SDK.
type AnthropicProvider struct {
	client anthropic.Client
	model  string
}

// NewAnthropicProvider builds the provider. An empty API key yields a
// provider that reports unavailable instead of failing construction.
func NewAnthropicProvider(apiKey, model string) *AnthropicProvider {
	p := &AnthropicProvider{model: model}
	if apiKey != "" {
		p.client = anthropic.NewClient(apiKey, anthropic.WithModel(model))
	}
	return p
}

func (p *AnthropicProvider) Name() string { return "anthropic" }

func (p *AnthropicProvider) Ask(ctx context.Context, question string, actx Context) (string, error) {
	if p.client == nil {
		return "", ErrUnavailable
	}

	resp, err := p.client.CreateMessage(ctx, anthropic.MessageRequest{
		System: systemPrompt,
		Messages: []anthropic.Message{
			{Role: "user", Content: userPrompt(question, actx)},
		},
	})
	if err != nil {
		return "", err
	}
	return resp.Text, nil
}

// OpenAIProvider asks an OpenAI chat model.
type OpenAIProvider struct {
	client openai.Client
}

// NewOpenAIProvider builds the provider; empty key means unavailable.
func NewOpenAIProvider(apiKey, baseURL, model string) *OpenAIProvider {
	p := &OpenAIProvider{}
	if apiKey != "" {
		opts := []openai.Option{}
		if baseURL != "" {
			opts = append(opts, openai.WithBaseURL(baseURL))
		}
		if model != "" {
			opts = append(opts, openai.WithModel(model))
		}
		p.client = openai.NewClient(apiKey, opts...)
	}
	return p
}

func (p *OpenAIProvider) Name() string { return "openai" }

func (p *OpenAIProvider) Ask(ctx context.Context, question string, actx Context) (string, error) {
	if p.client == nil {
		return "", ErrUnavailable
	}

	resp, err := p.client.ChatCompletion(ctx, openai.ChatCompletionRequest{
		Messages: []openai.Message{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt(question, actx)},
		},
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", nil
	}
	return resp.Choices[0].Message.Content, nil
}

// GeminiProvider asks a Gemini model via the GenAI SDK.
type GeminiProvider struct {
	client *gemini.Client
}

// NewGeminiProvider builds the provider; empty key means unavailable.
func NewGeminiProvider(apiKey, model string) *GeminiProvider {
	p := &GeminiProvider{}
	if apiKey != "" {
		p.client = gemini.NewClient(apiKey, model)
	}
	return p
}

func (p *GeminiProvider) Name() string { return "gemini" }

func (p *GeminiProvider) Ask(ctx context.Context, question string, actx Context) (string, error) {
	if p.client == nil {
		return "", ErrUnavailable
	}
	return p.client.Generate(ctx, systemPrompt, userPrompt(question, actx))
}

package generator

import (
	"context"
	"fmt"
	"net/http"

	"github.com/sashabaranov/go-openai"
)

const (
	openRouterBaseURL = "https://openrouter.ai/api/v1"

	// OpenRouter uses these headers for app attribution and rankings.
	openRouterReferer = "https://github.com/zpeteman/content-repurposer"
	openRouterTitle   = "ContentCraft"
)

// DefaultOpenRouterModel is used when no model is configured.
const DefaultOpenRouterModel = "mistralai/mistral-7b-instruct"

// OpenRouterClient is a ChatClient backed by the OpenRouter chat completions
// API, which speaks the OpenAI wire protocol.
type OpenRouterClient struct {
	client *openai.Client
	model  string
}

// NewOpenRouterClient creates an OpenRouter-backed chat client.
func NewOpenRouterClient(apiKey, model string) *OpenRouterClient {
	if model == "" {
		model = DefaultOpenRouterModel
	}

	cfg := openai.DefaultConfig(apiKey)
	cfg.BaseURL = openRouterBaseURL
	cfg.HTTPClient = &http.Client{
		Transport: &attributionTransport{base: http.DefaultTransport},
	}

	return &OpenRouterClient{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
	}
}

// Complete sends one system+user chat exchange and returns the reply text.
func (c *OpenRouterClient) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userPrompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("openrouter chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openrouter returned no choices")
	}

	return resp.Choices[0].Message.Content, nil
}

type attributionTransport struct {
	base http.RoundTripper
}

func (t *attributionTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.Header.Set("HTTP-Referer", openRouterReferer)
	req.Header.Set("X-Title", openRouterTitle)
	return t.base.RoundTrip(req)
}

var _ ChatClient = (*OpenRouterClient)(nil)

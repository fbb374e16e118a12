package ai

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

const (
	// Groq exposes an OpenAI-compatible API surface.
	groqBaseURL = "https://api.groq.com/openai/v1"
	groqModel   = "llama3-8b-8192"
)

// GroqClient implements Client using Groq's OpenAI-compatible chat API.
type GroqClient struct {
	client *openai.Client
}

// NewGroqClient initializes a Groq-backed client. An empty apiKey yields a
// client whose calls report ErrUnavailable instead of failing construction,
// so the rest of the pipeline can run on fallbacks.
func NewGroqClient(apiKey string) *GroqClient {
	if apiKey == "" {
		return &GroqClient{}
	}
	cfg := openai.DefaultConfig(apiKey)
	cfg.BaseURL = groqBaseURL
	return &GroqClient{client: openai.NewClientWithConfig(cfg)}
}

// Complete runs one chat completion against llama3-8b-8192.
func (c *GroqClient) Complete(ctx context.Context, system, user string, opts Options) (string, error) {
	if c.client == nil {
		return "", ErrUnavailable
	}

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: groqModel,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
		Temperature: opts.Temperature,
		MaxTokens:   opts.MaxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("groq completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", nil
	}
	return resp.Choices[0].Message.Content, nil
}

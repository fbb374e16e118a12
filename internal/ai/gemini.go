package ai

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const geminiModel = "gemini-2.0-flash"

// GeminiClient implements Client using Google's Gemini models.
type GeminiClient struct {
	client *genai.Client
}

// NewGeminiClient initializes a new Gemini-backed client.
// apiKey should be provided from environment variables; when empty the
// returned client reports ErrUnavailable on every call.
func NewGeminiClient(ctx context.Context, apiKey string) (*GeminiClient, error) {
	if apiKey == "" {
		return &GeminiClient{}, nil
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &GeminiClient{client: client}, nil
}

// Close cleans up the Gemini client resources.
func (c *GeminiClient) Close() {
	if c.client != nil {
		c.client.Close()
	}
}

// Complete runs one generation call. Gemini has no separate system role in
// this SDK path, so the system prompt is prepended to the user prompt; the
// combined-prompt approach binds context per request just as well.
func (c *GeminiClient) Complete(ctx context.Context, system, user string, opts Options) (string, error) {
	if c.client == nil {
		return "", ErrUnavailable
	}

	model := c.client.GenerativeModel(geminiModel)
	model.SetTemperature(opts.Temperature)
	if opts.MaxTokens > 0 {
		model.SetMaxOutputTokens(int32(opts.MaxTokens))
	}

	fullPrompt := fmt.Sprintf("%s\n\n%s", system, user)

	resp, err := model.GenerateContent(ctx, genai.Text(fullPrompt))
	if err != nil {
		return "", fmt.Errorf("gemini generation error: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", nil
	}

	var out strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			out.WriteString(string(txt))
		}
	}
	return out.String(), nil
}

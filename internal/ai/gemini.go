package ai

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// ChatModel is the generation surface the chatbot needs.
type ChatModel interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// GeminiModel backs ChatModel with the Gemini API.
type GeminiModel struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

// NewGeminiModel constructs a Gemini-backed chat model. Close must be called
// on shutdown to release the underlying connection.
func NewGeminiModel(ctx context.Context, apiKey, model string) (*GeminiModel, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	return &GeminiModel{
		client: client,
		model:  client.GenerativeModel(model),
	}, nil
}

// Generate sends the prompt and returns the concatenated text parts of the
// first candidate. An empty candidate list is a transport-level failure.
func (m *GeminiModel) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := m.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", errors.New("gemini returned no candidates")
	}

	var out string
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			out += string(text)
		}
	}
	return out, nil
}

// Close releases the underlying API client.
func (m *GeminiModel) Close() error {
	return m.client.Close()
}

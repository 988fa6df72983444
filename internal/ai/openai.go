package ai

import (
	"context"
	"errors"

	openai "github.com/sashabaranov/go-openai"
)

// ReportModel is the completion surface the adapter needs for report
// analysis and generation. The model is asked for a JSON object response.
type ReportModel interface {
	CompleteJSON(ctx context.Context, prompt string) (string, error)
}

// OpenAIModel backs ReportModel with the OpenAI chat completion API.
type OpenAIModel struct {
	client *openai.Client
	model  string
}

// NewOpenAIModel constructs an OpenAI-backed report model. The client is
// created once at process start and injected wherever it is needed.
func NewOpenAIModel(apiKey, model string) *OpenAIModel {
	return &OpenAIModel{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

// CompleteJSON sends the prompt as a single user message with JSON-object
// response format enforced and returns the raw response text.
func (m *OpenAIModel) CompleteJSON(ctx context.Context, prompt string) (string, error) {
	if m.client == nil {
		return "", errors.New("openai client not initialized")
	}

	resp, err := m.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: m.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
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

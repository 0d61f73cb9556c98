// internal/translate/openai.go
//
// LLM-backed translation provider using the OpenAI chat API.
// Enabled with TRANSLATOR=openai; requires OPENAI_API_KEY.

package translate

import (
	"context"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAI translates via a chat completion with a translate-only prompt.
type OpenAI struct {
	apiKey string
	client *openai.Client
}

// NewOpenAI creates the provider.
func NewOpenAI(apiKey string) *OpenAI {
	return &OpenAI{
		apiKey: apiKey,
		client: openai.NewClient(apiKey),
	}
}

// Translate asks the model for a bare translation of text.
func (o *OpenAI) Translate(ctx context.Context, text, from, to string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", ErrEmptyText
	}
	if o.apiKey == "" {
		return "", fmt.Errorf("openai: API key not configured")
	}

	req := openai.ChatCompletionRequest{
		Model: openai.GPT4oMini,
		Messages: []openai.ChatCompletionMessage{
			{
				Role: openai.ChatMessageRoleUser,
				Content: fmt.Sprintf(
					"Translate the following text from %s to %s. Respond with only the translation, nothing else.\n\n%s",
					from, to, text),
			},
		},
		MaxTokens:   200,
		Temperature: 0.3,
	}

	resp, err := o.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("openai: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai: no translation returned")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

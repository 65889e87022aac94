package openai

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/sashabaranov/go-openai"

	domai "github.com/dealcheck/contract-audit/internal/domain/ai"
)

const maxTokens = 4096

type Client struct {
	*openai.Client
	Model string
}

func NewClient(apiKey, model, baseURL string) *Client {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return &Client{Client: openai.NewClientWithConfig(cfg), Model: model}
}

// GenerateContent sends the fixed prompt plus one inline binary part as a
// single blocking chat completion and returns the raw response text.
func (c *Client) GenerateContent(ctx context.Context, prompt string, doc domai.InlinePart) (string, error) {
	model := c.Model
	if model == "" {
		model = "gpt-4o-2024-11-20"
	}
	req := openai.ChatCompletionRequest{
		Model: model,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Messages: []openai.ChatCompletionMessage{
			{
				Role: openai.ChatMessageRoleUser,
				MultiContent: []openai.ChatMessagePart{
					{
						Type: openai.ChatMessagePartTypeText,
						Text: prompt,
					},
					{
						Type: openai.ChatMessagePartTypeImageURL,
						ImageURL: &openai.ChatMessageImageURL{
							URL:    fmt.Sprintf("data:%s;base64,%s", doc.MediaType, doc.Data),
							Detail: openai.ImageURLDetailAuto,
						},
					},
				},
			},
		},
	}
	// For reasoning models (o1/o3/o4/gpt-5*) use MaxCompletionTokens instead of MaxTokens
	if strings.HasPrefix(model, "o1") || strings.HasPrefix(model, "o3") || strings.HasPrefix(model, "o4") || strings.HasPrefix(model, "gpt-5") {
		req.MaxCompletionTokens = maxTokens
	} else {
		req.MaxTokens = maxTokens
	}

	resp, err := c.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", classify(err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("chat completion returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}

// classify tags provider failures at this boundary so callers never have to
// sniff message text. Status codes first; wording only as a fallback for
// providers that bury the condition inside a generic error.
func classify(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		if apiErr.HTTPStatusCode == http.StatusTooManyRequests {
			return fmt.Errorf("%w: %s", domai.ErrRateLimited, apiErr.Message)
		}
		if code, ok := apiErr.Code.(string); ok && strings.Contains(code, "deprecated") {
			return fmt.Errorf("%w: %s", domai.ErrModelDeprecated, apiErr.Message)
		}
	}
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "deprecated"):
		return fmt.Errorf("%w: %v", domai.ErrModelDeprecated, err)
	case strings.Contains(msg, "rate limit"):
		return fmt.Errorf("%w: %v", domai.ErrRateLimited, err)
	}
	return fmt.Errorf("failed to create chat completion: %w", err)
}

package generator

import (
	"context"
	"errors"
	"fmt"

	"github.com/revrost/go-openrouter"
)

// OpenRouterClient is the slice of the openrouter client used here, kept as
// an interface for tests.
type OpenRouterClient interface {
	CreateChatCompletion(ctx context.Context,
		ccr openrouter.ChatCompletionRequest) (openrouter.ChatCompletionResponse, error)
}

type OpenRouter struct {
	client       OpenRouterClient
	model        string
	systemPrompt string
}

func NewOpenRouter(apiKey, model, systemPrompt string) *OpenRouter {
	return &OpenRouter{
		client:       openrouter.NewClient(apiKey, openrouter.WithXTitle("marvin")),
		model:        model,
		systemPrompt: systemPrompt,
	}
}

func (g *OpenRouter) GenerateFromPrompt(ctx context.Context, prompt string) (string, error) {
	ccr := openrouter.ChatCompletionRequest{
		Model: g.model,
		Messages: []openrouter.ChatCompletionMessage{
			{
				Role:    openrouter.ChatMessageRoleSystem,
				Content: openrouter.Content{Text: g.systemPrompt},
			},
			{
				Role:    openrouter.ChatMessageRoleUser,
				Content: openrouter.Content{Text: prompt},
			},
		},
	}

	resp, err := g.client.CreateChatCompletion(ctx, ccr)
	if err != nil {
		return "", fmt.Errorf("openrouter API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", errors.New("no choices in openrouter response")
	}

	return resp.Choices[0].Message.Content.Text, nil
}

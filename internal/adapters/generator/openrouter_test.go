package generator

import (
	"context"
	"errors"
	"testing"

	"github.com/revrost/go-openrouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockClient struct {
	createChatCompletionFunc func(ctx context.Context,
		ccr openrouter.ChatCompletionRequest) (openrouter.ChatCompletionResponse, error)
}

func (m *mockClient) CreateChatCompletion(ctx context.Context,
	ccr openrouter.ChatCompletionRequest) (openrouter.ChatCompletionResponse, error) {
	return m.createChatCompletionFunc(ctx, ccr)
}

func TestOpenRouterGenerateFromPrompt(t *testing.T) {
	testCases := []struct {
		description string
		mockResp    openrouter.ChatCompletionResponse
		mockErr     error
		want        string
		wantErr     bool
	}{
		{
			description: "success",
			mockResp: openrouter.ChatCompletionResponse{
				Choices: []openrouter.ChatCompletionChoice{{
					Message: openrouter.ChatCompletionMessage{
						Content: openrouter.Content{Text: "hello!"},
					},
				}},
			},
			want: "hello!",
		},
		{
			description: "api error",
			mockErr:     errors.New("api down"),
			wantErr:     true,
		},
		{
			description: "no choices",
			mockResp:    openrouter.ChatCompletionResponse{},
			wantErr:     true,
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.description, func(t *testing.T) {
			g := &OpenRouter{
				client: &mockClient{
					createChatCompletionFunc: func(_ context.Context,
						_ openrouter.ChatCompletionRequest) (openrouter.ChatCompletionResponse, error) {
						return testCase.mockResp, testCase.mockErr
					},
				},
				model:        "test/model",
				systemPrompt: "system",
			}

			got, err := g.GenerateFromPrompt(t.Context(), "hi")

			if testCase.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, testCase.want, got)
		})
	}
}

func TestOpenRouterSendsSystemAndUserMessages(t *testing.T) {
	var captured openrouter.ChatCompletionRequest

	g := &OpenRouter{
		client: &mockClient{
			createChatCompletionFunc: func(_ context.Context,
				ccr openrouter.ChatCompletionRequest) (openrouter.ChatCompletionResponse, error) {
				captured = ccr
				return openrouter.ChatCompletionResponse{
					Choices: []openrouter.ChatCompletionChoice{{
						Message: openrouter.ChatCompletionMessage{
							Content: openrouter.Content{Text: "ok"},
						},
					}},
				}, nil
			},
		},
		model:        "test/model",
		systemPrompt: "be terse",
	}

	_, err := g.GenerateFromPrompt(t.Context(), "what's up")
	require.NoError(t, err)

	require.Len(t, captured.Messages, 2)
	assert.Equal(t, "test/model", captured.Model)
	assert.Equal(t, openrouter.ChatMessageRoleSystem, captured.Messages[0].Role)
	assert.Equal(t, "be terse", captured.Messages[0].Content.Text)
	assert.Equal(t, openrouter.ChatMessageRoleUser, captured.Messages[1].Role)
	assert.Equal(t, "what's up", captured.Messages[1].Content.Text)
}

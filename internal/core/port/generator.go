package port

import "context"

type TextGenerator interface {
	GenerateFromPrompt(ctx context.Context, prompt string) (string, error)
}

type ImageGenerator interface {
	GenerateFromPrompt(ctx context.Context, prompt string) (string, error)
}

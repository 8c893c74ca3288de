package commands

import (
	"context"
	"fmt"
	"strings"

	"marvin/internal/core/domain"
	"marvin/internal/core/port"

	"github.com/rs/zerolog/log"
)

const imagePrompt = "What should I draw?"

// Image generates a picture from a prompt, or arms a wait for one.
type Image struct {
	generator port.ImageGenerator
	waits     port.Waiter
}

func NewImage(generator port.ImageGenerator, waits port.Waiter) *Image {
	return &Image{generator: generator, waits: waits}
}

func (i *Image) Execute(ctx context.Context, req *domain.Request) ([]domain.Response, error) {
	prompt := strings.TrimSpace(req.Args)
	if prompt == "" {
		i.waits.Put(req.Message.ChatID, req.Message.UserID, ImageID)
		return []domain.Response{domain.Text(domain.FormatPlain, imagePrompt)}, nil
	}

	log.Debug().Int64("chatId", req.Message.ChatID).Str("handler", ImageID).
		Str("prompt", prompt).Msg("handling request")

	url, err := i.generator.GenerateFromPrompt(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("%w: generating image: %v", domain.ErrUpstreamUnavailable, err)
	}

	return []domain.Response{domain.File(domain.FilePhoto, url)}, nil
}

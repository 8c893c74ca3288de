package commands

import (
	"context"
	"fmt"
	"strings"

	"marvin/internal/core/domain"
	"marvin/internal/core/port"

	"github.com/rs/zerolog/log"
)

const askPrompt = "What do you want to ask?"

// Ask forwards a prompt to the text generator. Called without an argument it
// arms a wait instead, so the next message from the same user completes it.
type Ask struct {
	generator port.TextGenerator
	waits     port.Waiter
}

func NewAsk(generator port.TextGenerator, waits port.Waiter) *Ask {
	return &Ask{generator: generator, waits: waits}
}

func (a *Ask) Execute(ctx context.Context, req *domain.Request) ([]domain.Response, error) {
	prompt := strings.TrimSpace(req.Args)
	if prompt == "" {
		a.waits.Put(req.Message.ChatID, req.Message.UserID, AskID)
		return []domain.Response{domain.Text(domain.FormatPlain, askPrompt)}, nil
	}

	l := log.With().
		Int64("chatId", req.Message.ChatID).
		Str("handler", AskID).
		Logger()
	l.Debug().Str("prompt", prompt).Msg("handling request")

	answer, err := a.generator.GenerateFromPrompt(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("%w: generating answer: %v", domain.ErrUpstreamUnavailable, err)
	}

	return []domain.Response{domain.Text(domain.FormatMarkdown, answer)}, nil
}

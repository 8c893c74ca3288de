package commands

import (
	"context"
	"fmt"
	"strings"

	"marvin/internal/core/domain"
	"marvin/internal/core/domain/command"
	"marvin/internal/core/port"
)

// Help lists the commands available at the caller's effective level, so a
// guest never sees admin commands advertised.
type Help struct {
	registry *command.Registry
	levels   port.LevelSource
}

func NewHelp(registry *command.Registry, levels port.LevelSource) *Help {
	return &Help{registry: registry, levels: levels}
}

func (h *Help) Execute(_ context.Context, req *domain.Request) ([]domain.Response, error) {
	actx := domain.AccessContext{
		ChatLevel: h.levels.ChatLevel(req.Message.ChatID),
		UserLevel: h.levels.UserLevel(req.Message.UserID),
	}
	effective := actx.Effective()

	sb := &strings.Builder{}
	sb.WriteString("Here's what I can do:\n\n")

	for _, descriptor := range h.registry.List() {
		if descriptor.MinLevel > effective {
			continue
		}
		fmt.Fprintf(sb, "%s — %s\n", descriptor.Name, descriptor.Help)
	}

	return []domain.Response{domain.Text(domain.FormatPlain, sb.String())}, nil
}

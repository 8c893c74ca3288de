package commands

import (
	"context"
	"fmt"

	"marvin/internal/core/domain"
)

// Purge removes the replied-to message along with the invoking command.
type Purge struct{}

func NewPurge() *Purge {
	return &Purge{}
}

func (p *Purge) Execute(_ context.Context, req *domain.Request) ([]domain.Response, error) {
	if req.Message.ReplyToMessageID == nil {
		return nil, fmt.Errorf("%w: reply to the message you want removed",
			domain.ErrInvalidArgument)
	}

	return []domain.Response{
		domain.Delete(*req.Message.ReplyToMessageID),
		domain.Delete(req.Message.ID),
	}, nil
}

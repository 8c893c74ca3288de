package port

import (
	"context"
	"marvin/internal/core/domain"
)

type ResponseSender interface {
	// Send delivers the responses to the chat the message came from, in order.
	Send(ctx context.Context, msg *domain.Message, responses []domain.Response) error
}

package port

import (
	"context"
	"marvin/internal/core/domain"
)

type Handler interface {
	// Execute runs the command against the routed request and returns the
	// outgoing payloads. Expected rejections are signalled by wrapping
	// domain.ErrInvalidArgument or domain.ErrUpstreamUnavailable; anything
	// else is treated as an internal failure.
	Execute(ctx context.Context, req *domain.Request) ([]domain.Response, error)
}

type Waiter interface {
	// Put arms a single follow-up slot: the next free-form message from this
	// chat and user is routed to the handler identified by handlerID.
	Put(chatID, userID int64, handlerID string)
}

type Dispatcher interface {
	// Dispatch resolves and runs the message's command and returns the
	// responses to deliver. An empty result means the message is ignored.
	Dispatch(ctx context.Context, msg *domain.Message) []domain.Response
}

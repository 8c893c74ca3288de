package service

import (
	"context"
	"errors"
	"strings"

	"marvin/internal/core/domain"
	"marvin/internal/core/domain/command"
	"marvin/internal/core/port"

	"github.com/gofrs/uuid/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	deniedReply      = "You are not allowed to do that."
	unavailableReply = "That service is not available right now, try again later."
	failedReply      = "Something went wrong on my end, sorry."
)

// Dispatcher resolves one inbound message to exactly one command handler,
// gates it, runs it, and normalizes its output. Unknown commands are silent;
// every other outcome maps to a user-visible response.
type Dispatcher struct {
	registry    *command.Registry
	levels      port.LevelSource
	waits       *PendingWaits
	last        *LastCommands
	textLimit   int
	repeatToken string
}

type DispatcherParams struct {
	Registry *command.Registry
	Levels   port.LevelSource
	Waits    *PendingWaits
	Last     *LastCommands
	// TextLimit is the platform's maximum text payload length; longer text
	// responses are chunked.
	TextLimit int
	// RepeatToken is the bare message that replays the chat's last command.
	RepeatToken string
}

func NewDispatcher(p DispatcherParams) *Dispatcher {
	return &Dispatcher{
		registry:    p.Registry,
		levels:      p.Levels,
		waits:       p.Waits,
		last:        p.Last,
		textLimit:   p.TextLimit,
		repeatToken: p.RepeatToken,
	}
}

type resolution struct {
	binding *command.Binding
	args    string
	replay  bool
}

func (d *Dispatcher) Dispatch(ctx context.Context, msg *domain.Message) []domain.Response {
	requestID, _ := uuid.NewV4()
	l := log.With().
		Str("requestId", requestID.String()).
		Int64("chatId", msg.ChatID).
		Int64("userId", msg.UserID).
		Logger()

	res, err := d.resolve(&l, msg)
	if err != nil {
		// UnknownCommand: most messages are not commands at all
		l.Debug().Str("text", msg.Text).Msg("no handler resolved, ignoring message")
		return nil
	}

	l = l.With().Str("command", res.binding.Name).Bool("replay", res.replay).Logger()

	actx := domain.AccessContext{
		ChatID:    msg.ChatID,
		ChatLevel: d.levels.ChatLevel(msg.ChatID),
		UserID:    msg.UserID,
		UserLevel: d.levels.UserLevel(msg.UserID),
	}

	if err := Authorize(actx, res.binding.MinLevel); err != nil {
		l.Info().Err(err).Msg("dispatch denied")
		return []domain.Response{domain.Text(domain.FormatPlain, deniedReply)}
	}

	l.Debug().Str("args", res.args).Msg("executing handler")

	responses, err := res.binding.Handler.Execute(ctx, &domain.Request{Message: msg, Args: res.args})
	if err != nil || ctx.Err() != nil {
		// a wait present now was armed by this failed execution; a request
		// that did not complete normally must not leave one behind
		d.waits.Clear(msg.ChatID, msg.UserID)
		return d.failure(&l, err, ctx.Err())
	}

	if !res.replay {
		d.last.Record(msg.ChatID, res.binding.HandlerID, res.args)
	}

	return d.normalize(responses)
}

// resolve picks the target handler: the repeat trigger first, then an open
// pending wait, then a fresh command token. A pending wait deliberately wins
// over command-looking text so a prompt can be answered with anything.
func (d *Dispatcher) resolve(l *zerolog.Logger, msg *domain.Message) (resolution, error) {
	text := strings.TrimSpace(msg.Text)

	if strings.EqualFold(text, d.repeatToken) {
		last, ok := d.last.Get(msg.ChatID)
		if !ok {
			l.Debug().Msg("repeat trigger with no last command")
			return resolution{}, domain.ErrUnknownCommand
		}
		binding, ok := d.registry.ByHandlerID(last.HandlerID)
		if !ok {
			l.Warn().Str("handlerId", last.HandlerID).Msg("last command no longer registered")
			return resolution{}, domain.ErrUnknownCommand
		}
		return resolution{binding: binding, args: last.RawArgs, replay: true}, nil
	}

	if handlerID, ok := d.waits.TakeIfPresent(msg.ChatID, msg.UserID); ok {
		binding, ok := d.registry.ByHandlerID(handlerID)
		if ok {
			l.Debug().Str("handlerId", handlerID).Msg("routing message as wait continuation")
			return resolution{binding: binding, args: text}, nil
		}
		l.Warn().Str("handlerId", handlerID).Msg("pending wait for unregistered handler")
	}

	binding, ok := d.registry.Resolve(command.ParseCommand(text))
	if !ok {
		return resolution{}, domain.ErrUnknownCommand
	}

	return resolution{binding: binding, args: command.ParseCommandArgs(text)}, nil
}

func (d *Dispatcher) failure(l *zerolog.Logger, err, ctxErr error) []domain.Response {
	switch {
	case ctxErr != nil,
		errors.Is(err, context.Canceled),
		errors.Is(err, context.DeadlineExceeded):
		l.Warn().Err(err).Msg("dispatch cancelled before completing")
		return nil
	case errors.Is(err, domain.ErrInvalidArgument):
		l.Debug().Err(err).Msg("handler rejected argument")
		return []domain.Response{domain.Text(domain.FormatPlain, err.Error())}
	case errors.Is(err, domain.ErrUpstreamUnavailable):
		l.Warn().Err(err).Msg("handler upstream unavailable")
		return []domain.Response{domain.Text(domain.FormatPlain, unavailableReply)}
	default:
		l.Error().Err(err).Msg("handler failed")
		return []domain.Response{domain.Text(domain.FormatPlain, failedReply)}
	}
}

// normalize expands every text response above the platform limit into
// limit-sized chunks; other payloads pass through unchanged.
func (d *Dispatcher) normalize(responses []domain.Response) []domain.Response {
	out := make([]domain.Response, 0, len(responses))

	for _, r := range responses {
		if r.Kind != domain.KindText || r.TextLen() <= d.textLimit {
			out = append(out, r)
			continue
		}
		for _, chunk := range domain.ChunkSegments(r.Segments, d.textLimit) {
			out = append(out, domain.Text(r.Format, chunk))
		}
	}

	return out
}

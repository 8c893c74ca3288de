package domain

import "errors"

var (
	// ErrUnknownCommand marks a message that resolved to no handler. Never
	// surfaced to the chat.
	ErrUnknownCommand = errors.New("unknown command")
	// ErrAccessDenied marks a request whose effective level is below the
	// command's minimum.
	ErrAccessDenied = errors.New("access denied")
	// ErrInvalidArgument is wrapped by handlers rejecting their argument text.
	// The wrapped message is shown to the user as-is.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrUpstreamUnavailable is wrapped by handlers whose backing service
	// failed. Surfaced as a generic unavailability notice.
	ErrUpstreamUnavailable = errors.New("upstream unavailable")
)

package domain

import "time"

type Message struct {
	ID               int
	ChatID           int64
	UserID           int64
	Username         string
	Text             string
	ReplyToMessageID *int
	Timestamp        time.Time
}

// Request is what a resolved handler receives: the inbound message plus the
// argument text the dispatcher routed to it. For a wait continuation the
// argument is the full message text.
type Request struct {
	Message *Message
	Args    string
}

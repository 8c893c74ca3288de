package service

import (
	"sync"
	"time"
)

// LastCommand is an immutable record of the most recent successful dispatch
// in a chat, kept for the repeat trigger.
type LastCommand struct {
	HandlerID string
	RawArgs   string
	At        time.Time
}

// LastCommands keeps one LastCommand per chat, last write wins. Records are
// swapped whole, so a reader never sees a handler id paired with another
// write's arguments.
type LastCommands struct {
	chats sync.Map // int64 -> *LastCommand
}

func NewLastCommands() *LastCommands {
	return &LastCommands{}
}

func (s *LastCommands) Record(chatID int64, handlerID, rawArgs string) {
	s.chats.Store(chatID, &LastCommand{
		HandlerID: handlerID,
		RawArgs:   rawArgs,
		At:        time.Now(),
	})
}

func (s *LastCommands) Get(chatID int64) (LastCommand, bool) {
	v, ok := s.chats.Load(chatID)
	if !ok {
		return LastCommand{}, false
	}
	return *v.(*LastCommand), true
}

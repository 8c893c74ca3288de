package service

import (
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

type waitKey struct {
	chatID int64
	userID int64
}

type pendingWait struct {
	handlerID string
	createdAt time.Time
}

// PendingWaits holds at most one open follow-up slot per (chat, user) pair:
// the handler that should receive that pair's next free-form message as its
// argument. Entries expire lazily after the TTL; there is no sweeper.
type PendingWaits struct {
	ttl   time.Duration
	now   func() time.Time
	waits sync.Map // waitKey -> *pendingWait
}

func NewPendingWaits(ttl time.Duration) *PendingWaits {
	return &PendingWaits{ttl: ttl, now: time.Now}
}

// Put arms the slot for the pair, replacing any previous wait. Last writer
// wins; there is no queueing.
func (s *PendingWaits) Put(chatID, userID int64, handlerID string) {
	log.Debug().Int64("chatId", chatID).Int64("userId", userID).
		Str("handlerId", handlerID).Msg("arming pending wait")

	s.waits.Store(waitKey{chatID: chatID, userID: userID},
		&pendingWait{handlerID: handlerID, createdAt: s.now()})
}

// TakeIfPresent consumes the slot for the pair. The read-and-clear is atomic
// per key, so two concurrent takes see at most one hit between them. An entry
// past the TTL reads as absent and stays cleared.
func (s *PendingWaits) TakeIfPresent(chatID, userID int64) (string, bool) {
	v, ok := s.waits.LoadAndDelete(waitKey{chatID: chatID, userID: userID})
	if !ok {
		return "", false
	}

	wait := v.(*pendingWait)
	if s.now().Sub(wait.createdAt) > s.ttl {
		log.Debug().Int64("chatId", chatID).Int64("userId", userID).
			Str("handlerId", wait.handlerID).Msg("pending wait expired")
		return "", false
	}

	return wait.handlerID, true
}

// Clear drops the slot for the pair without reading it.
func (s *PendingWaits) Clear(chatID, userID int64) {
	s.waits.Delete(waitKey{chatID: chatID, userID: userID})
}

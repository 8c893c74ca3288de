package service

import (
	"sync"

	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"
)

// ChatLimiter keeps one token bucket per chat so a noisy chat throttles only
// itself.
type ChatLimiter struct {
	chats sync.Map // int64 -> *rate.Limiter
	limit rate.Limit
	burst int
}

func NewChatLimiter(perSecond float64, burst int) *ChatLimiter {
	return &ChatLimiter{limit: rate.Limit(perSecond), burst: burst}
}

// Allow reports whether the chat may process one more inbound message now.
func (l *ChatLimiter) Allow(chatID int64) bool {
	v, ok := l.chats.Load(chatID)
	if !ok {
		v, _ = l.chats.LoadOrStore(chatID, rate.NewLimiter(l.limit, l.burst))
	}

	allowed := v.(*rate.Limiter).Allow()
	if !allowed {
		log.Debug().Int64("chatId", chatID).Msg("chat over rate limit, dropping message")
	}

	return allowed
}

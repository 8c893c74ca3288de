package handler

import (
	"context"
	"time"

	"marvin/internal/core/domain"
	"marvin/internal/core/port"
	"marvin/internal/core/service"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/rs/zerolog/log"
)

// Inbound adapts Telegram updates to dispatcher calls. Every text message,
// command-looking or not, goes through the dispatcher so that pending waits
// see their continuations.
type Inbound struct {
	dispatcher port.Dispatcher
	sender     port.ResponseSender
	limiter    *service.ChatLimiter
	timeout    time.Duration
}

func NewInbound(dispatcher port.Dispatcher, sender port.ResponseSender,
	limiter *service.ChatLimiter, timeout time.Duration) *Inbound {
	return &Inbound{dispatcher: dispatcher, sender: sender, limiter: limiter, timeout: timeout}
}

func (h *Inbound) Handle(ctx context.Context, _ *bot.Bot, update *models.Update) {
	m := update.Message
	if m == nil || m.From == nil {
		return
	}

	text := m.Text
	if text == "" {
		text = m.Caption
	}
	if text == "" {
		return
	}

	if !h.limiter.Allow(m.Chat.ID) {
		return
	}

	log.Debug().Int64("chatId", m.Chat.ID).Str("message", text).Msg("received message")

	msg := &domain.Message{
		ID:        m.ID,
		ChatID:    m.Chat.ID,
		UserID:    m.From.ID,
		Username:  getUserNameOrFirstName(m.From),
		Text:      text,
		Timestamp: time.Unix(int64(m.Date), 0),
	}
	if m.ReplyToMessage != nil {
		replyTo := m.ReplyToMessage.ID
		msg.ReplyToMessageID = &replyTo
	}

	go func() {
		ctx, cancel := context.WithTimeout(ctx, h.timeout)
		defer cancel()

		responses := h.dispatcher.Dispatch(ctx, msg)
		if len(responses) == 0 {
			return
		}

		if err := h.sender.Send(ctx, msg, responses); err != nil {
			log.Err(err).Int64("chatId", msg.ChatID).Msg("failed to deliver responses")
		}
	}()
}

func getUserNameOrFirstName(user *models.User) string {
	if user.Username == "" {
		return user.FirstName
	}

	return "@" + user.Username
}

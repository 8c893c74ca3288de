package sender

import (
	"context"
	"fmt"

	"marvin/internal/core/domain"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/rs/zerolog/log"
)

// TelegramBot is the slice of the bot API the sender needs, kept as an
// interface so tests can mock it.
type TelegramBot interface {
	SendMessage(ctx context.Context, params *bot.SendMessageParams) (*models.Message, error)
	SendPhoto(ctx context.Context, params *bot.SendPhotoParams) (*models.Message, error)
	SendDocument(ctx context.Context, params *bot.SendDocumentParams) (*models.Message, error)
	SendLocation(ctx context.Context, params *bot.SendLocationParams) (*models.Message, error)
	DeleteMessage(ctx context.Context, params *bot.DeleteMessageParams) (bool, error)
}

type Telegram struct {
	bot TelegramBot
}

func NewTelegram(bot TelegramBot) *Telegram {
	return &Telegram{bot: bot}
}

// Send delivers the responses in order, stopping at the first failure so a
// partially delivered list is at least a prefix of the intended one.
func (s *Telegram) Send(ctx context.Context, msg *domain.Message, responses []domain.Response) error {
	for _, r := range responses {
		var err error

		switch r.Kind {
		case domain.KindText:
			err = s.sendText(ctx, msg, r)
		case domain.KindFile:
			err = s.sendFile(ctx, msg, r)
		case domain.KindLocation:
			err = s.sendLocation(ctx, msg, r)
		case domain.KindDelete:
			err = s.deleteMessage(ctx, msg, r)
		default:
			err = fmt.Errorf("unhandled response kind %d", r.Kind)
		}

		if err != nil {
			log.Error().Err(err).Int64("chatId", msg.ChatID).Msg("failed to deliver response")
			return err
		}
	}

	return nil
}

func (s *Telegram) sendText(ctx context.Context, msg *domain.Message, r domain.Response) error {
	_, err := s.bot.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:    msg.ChatID,
		Text:      r.Body(),
		ParseMode: parseMode(r.Format),
		ReplyParameters: &models.ReplyParameters{
			MessageID: msg.ID,
			ChatID:    msg.ChatID,
		},
	})

	return err
}

func (s *Telegram) sendFile(ctx context.Context, msg *domain.Message, r domain.Response) error {
	replyParams := &models.ReplyParameters{
		MessageID: msg.ID,
		ChatID:    msg.ChatID,
	}

	var err error
	switch r.FileKind {
	case domain.FileDocument:
		_, err = s.bot.SendDocument(ctx, &bot.SendDocumentParams{
			ChatID:          msg.ChatID,
			Document:        &models.InputFileString{Data: r.FileURL},
			ReplyParameters: replyParams,
		})
	default:
		_, err = s.bot.SendPhoto(ctx, &bot.SendPhotoParams{
			ChatID:          msg.ChatID,
			Photo:           &models.InputFileString{Data: r.FileURL},
			ReplyParameters: replyParams,
		})
	}

	return err
}

func (s *Telegram) sendLocation(ctx context.Context, msg *domain.Message, r domain.Response) error {
	_, err := s.bot.SendLocation(ctx, &bot.SendLocationParams{
		ChatID:    msg.ChatID,
		Latitude:  r.Latitude,
		Longitude: r.Longitude,
		ReplyParameters: &models.ReplyParameters{
			MessageID: msg.ID,
			ChatID:    msg.ChatID,
		},
	})

	return err
}

func (s *Telegram) deleteMessage(ctx context.Context, msg *domain.Message, r domain.Response) error {
	_, err := s.bot.DeleteMessage(ctx, &bot.DeleteMessageParams{
		ChatID:    msg.ChatID,
		MessageID: r.DeleteMessageID,
	})

	return err
}

func parseMode(format domain.Format) models.ParseMode {
	switch format {
	case domain.FormatMarkdown:
		return models.ParseModeMarkdown
	case domain.FormatHTML:
		return models.ParseModeHTML
	default:
		return ""
	}
}

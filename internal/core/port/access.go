package port

import "marvin/internal/core/domain"

type LevelSource interface {
	// ChatLevel returns the configured level for a chat, falling back to the
	// configured default for unknown chats.
	ChatLevel(chatID int64) domain.Level
	// UserLevel returns the configured level for a user, falling back to the
	// configured default for unknown users.
	UserLevel(userID int64) domain.Level
}

package access

import (
	"fmt"
	"strconv"

	"marvin/internal/core/domain"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

// Levels resolves chat and user access levels from configuration. The maps
// are read once at construction; the registry of levels is static for the
// process lifetime like the command registry itself.
type Levels struct {
	defaultLevel domain.Level
	chats        map[int64]domain.Level
	users        map[int64]domain.Level
}

func NewLevels() (*Levels, error) {
	defaultLevel := domain.Guest
	if s := viper.GetString("access.default_level"); s != "" {
		var err error
		defaultLevel, err = domain.ParseLevel(s)
		if err != nil {
			return nil, fmt.Errorf("access.default_level: %w", err)
		}
	}

	chats, err := parseLevelMap(viper.GetStringMapString("access.chat_levels"))
	if err != nil {
		return nil, fmt.Errorf("access.chat_levels: %w", err)
	}

	users, err := parseLevelMap(viper.GetStringMapString("access.user_levels"))
	if err != nil {
		return nil, fmt.Errorf("access.user_levels: %w", err)
	}

	log.Info().Int("chats", len(chats)).Int("users", len(users)).
		Stringer("default", defaultLevel).Msg("loaded access levels")

	return &Levels{defaultLevel: defaultLevel, chats: chats, users: users}, nil
}

func (l *Levels) ChatLevel(chatID int64) domain.Level {
	if level, ok := l.chats[chatID]; ok {
		return level
	}
	return l.defaultLevel
}

func (l *Levels) UserLevel(userID int64) domain.Level {
	if level, ok := l.users[userID]; ok {
		return level
	}
	return l.defaultLevel
}

func parseLevelMap(raw map[string]string) (map[int64]domain.Level, error) {
	levels := make(map[int64]domain.Level, len(raw))

	for key, value := range raw {
		id, err := strconv.ParseInt(key, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid id %q: %w", key, err)
		}

		level, err := domain.ParseLevel(value)
		if err != nil {
			return nil, err
		}

		levels[id] = level
	}

	return levels, nil
}

package domain

import "fmt"

// Level is an ordered permission tier. Higher values grant access to
// everything a lower value does.
type Level int

const (
	Guest Level = iota
	User
	Admin
)

func (l Level) String() string {
	switch l {
	case Guest:
		return "guest"
	case User:
		return "user"
	case Admin:
		return "admin"
	default:
		return fmt.Sprintf("level(%d)", int(l))
	}
}

func ParseLevel(s string) (Level, error) {
	switch s {
	case "guest":
		return Guest, nil
	case "user":
		return User, nil
	case "admin":
		return Admin, nil
	default:
		return Guest, fmt.Errorf("unknown access level %q", s)
	}
}

// AccessContext carries the configured levels of the chat and the user behind
// one request.
type AccessContext struct {
	ChatID    int64
	ChatLevel Level
	UserID    int64
	UserLevel Level
}

// Effective returns the level a request acts with: the higher of the chat's
// and the user's configured level.
func (c AccessContext) Effective() Level {
	if c.UserLevel > c.ChatLevel {
		return c.UserLevel
	}
	return c.ChatLevel
}

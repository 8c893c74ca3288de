package commands

import (
	"context"

	"marvin/internal/core/domain"
)

type MockGenerator struct {
	response string
	err      error
	prompt   string
}

func (m *MockGenerator) GenerateFromPrompt(_ context.Context, prompt string) (string, error) {
	m.prompt = prompt
	return m.response, m.err
}

type MockWaiter struct {
	chatID    int64
	userID    int64
	handlerID string
	calls     int
}

func (m *MockWaiter) Put(chatID, userID int64, handlerID string) {
	m.calls++
	m.chatID = chatID
	m.userID = userID
	m.handlerID = handlerID
}

type MockLevels struct {
	chatLevel domain.Level
	userLevel domain.Level
}

func (m *MockLevels) ChatLevel(_ int64) domain.Level { return m.chatLevel }
func (m *MockLevels) UserLevel(_ int64) domain.Level { return m.userLevel }

func request(text, args string) *domain.Request {
	return &domain.Request{
		Message: &domain.Message{ID: 1, ChatID: 10, UserID: 20, Username: "@unit", Text: text},
		Args:    args,
	}
}

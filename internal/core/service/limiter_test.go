package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChatLimiterBurstThenDrop(t *testing.T) {
	l := NewChatLimiter(1, 2)

	assert.True(t, l.Allow(1))
	assert.True(t, l.Allow(1))
	assert.False(t, l.Allow(1))
}

func TestChatLimiterChatsAreIndependent(t *testing.T) {
	l := NewChatLimiter(1, 1)

	assert.True(t, l.Allow(1))
	assert.False(t, l.Allow(1))

	assert.True(t, l.Allow(2))
}

package commands

import (
	"testing"

	"marvin/internal/core/domain"
	"marvin/internal/core/domain/command"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func helpRegistry(t *testing.T) *command.Registry {
	t.Helper()

	r := command.NewRegistry()
	require.NoError(t, r.Register(command.Descriptor{
		Name: "/roll", HandlerID: RollID, MinLevel: domain.Guest, Help: "throw dice",
	}, NewRoll()))
	require.NoError(t, r.Register(command.Descriptor{
		Name: "/purge", HandlerID: PurgeID, MinLevel: domain.Admin, Help: "remove a message",
	}, NewPurge()))

	return r
}

func TestHelpFiltersByLevel(t *testing.T) {
	help := NewHelp(helpRegistry(t), &MockLevels{chatLevel: domain.Guest, userLevel: domain.Guest})

	responses, err := help.Execute(t.Context(), request("/help", ""))

	require.NoError(t, err)
	require.Len(t, responses, 1)
	body := responses[0].Body()
	assert.Contains(t, body, "/roll — throw dice")
	assert.NotContains(t, body, "/purge")
}

func TestHelpShowsAdminCommandsToAdmins(t *testing.T) {
	help := NewHelp(helpRegistry(t), &MockLevels{chatLevel: domain.Guest, userLevel: domain.Admin})

	responses, err := help.Execute(t.Context(), request("/help", ""))

	require.NoError(t, err)
	assert.Contains(t, responses[0].Body(), "/purge — remove a message")
}

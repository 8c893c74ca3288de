package commands

import (
	"testing"

	"marvin/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPurgeDeletesTargetAndCommand(t *testing.T) {
	purge := NewPurge()

	req := request("/purge", "")
	target := 99
	req.Message.ReplyToMessageID = &target

	responses, err := purge.Execute(t.Context(), req)

	require.NoError(t, err)
	require.Len(t, responses, 2)
	assert.Equal(t, domain.KindDelete, responses[0].Kind)
	assert.Equal(t, 99, responses[0].DeleteMessageID)
	assert.Equal(t, req.Message.ID, responses[1].DeleteMessageID)
}

func TestPurgeWithoutReply(t *testing.T) {
	purge := NewPurge()

	_, err := purge.Execute(t.Context(), request("/purge", ""))

	require.ErrorIs(t, err, domain.ErrInvalidArgument)
}

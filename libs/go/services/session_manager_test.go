package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mergepost/mergepost-api/libs/go/constants"
	"github.com/mergepost/mergepost-api/libs/go/services"
	"github.com/mergepost/mergepost-api/libs/go/types/api/params"
)

func TestSessionManager_Get(t *testing.T) {
	manager := services.NewSessionManager()

	t.Run("creates session on first use", func(t *testing.T) {
		session := manager.Get("team-a")

		require.NotNil(t, session)
		assert.Equal(t, "team-a", session.ID)
		assert.Equal(t, constants.BatchStateIdle, session.State())
		assert.Equal(t, 0, session.Recipients.Len())
	})

	t.Run("returns the same session for the same id", func(t *testing.T) {
		first := manager.Get("team-a")
		_, err := first.Recipients.Add(params.UpsertRecipientParams{Email: "a@example.com"})
		require.NoError(t, err)

		second := manager.Get("team-a")
		assert.Same(t, first, second)
		assert.Equal(t, 1, second.Recipients.Len())
	})

	t.Run("blank id maps to the default session", func(t *testing.T) {
		blank := manager.Get("")
		named := manager.Get(constants.DefaultSessionID)

		assert.Same(t, blank, named)
		assert.Equal(t, constants.DefaultSessionID, blank.ID)
	})

	t.Run("sessions are isolated from each other", func(t *testing.T) {
		a := manager.Get("iso-a")
		b := manager.Get("iso-b")

		_, err := a.Recipients.Add(params.UpsertRecipientParams{Email: "only-a@example.com"})
		require.NoError(t, err)

		assert.Equal(t, 1, a.Recipients.Len())
		assert.Equal(t, 0, b.Recipients.Len())
	})
}

func TestCampaignSession_Cancel(t *testing.T) {
	t.Run("cancel with no batch in flight reports false", func(t *testing.T) {
		session := services.NewCampaignSession("test")
		assert.False(t, session.Cancel())
	})
}

func TestCampaignSession_Results(t *testing.T) {
	t.Run("no results before a batch completes", func(t *testing.T) {
		session := services.NewCampaignSession("test")

		results, summary, ok := session.Results()
		assert.False(t, ok)
		assert.Nil(t, results)
		assert.Zero(t, summary.Success)
		assert.Zero(t, summary.Failed)
	})
}

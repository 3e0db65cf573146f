package services

import (
	"context"
	"testing"

	"pdrims-http-service/internal/domain/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListInboxNewestFirst(t *testing.T) {
	l := newTestLedger(t)
	inbox := NewInboxService(l.db, l.cfg)

	empty, err := inbox.ListInbox(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)

	for _, subject := range []string{"Water supply", "Relief schedule", "Evacuation center"} {
		require.NoError(t, l.db.Create(&models.InboxMessage{
			Category: "Inquiry",
			Sender:   "Resident",
			Subject:  subject,
			DateSent: "2024-08-01",
		}).Error)
	}

	messages, err := inbox.ListInbox(context.Background())
	require.NoError(t, err)
	require.Len(t, messages, 3)
	assert.Equal(t, "Evacuation center", messages[0].Subject)
	assert.Equal(t, "Water supply", messages[2].Subject)
	assert.Greater(t, messages[0].ID, messages[1].ID)
}

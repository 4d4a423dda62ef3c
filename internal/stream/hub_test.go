package stream

import (
	"encoding/json"
	"testing"

	"wishlist-backend/internal/database/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHub_DeliverReachesOnlyRecipientSockets(t *testing.T) {
	hub := NewHub()
	recipientID := uuid.New()
	otherID := uuid.New()

	recipientClient := NewClient(hub, nil, recipientID)
	secondDevice := NewClient(hub, nil, recipientID)
	otherClient := NewClient(hub, nil, otherID)
	hub.Register(recipientClient)
	hub.Register(secondDevice)
	hub.Register(otherClient)
	require.Equal(t, 3, hub.ClientCount())

	splitID := uuid.New()
	notification := models.Notification{
		BaseModel:    models.BaseModel{ID: uuid.New()},
		RecipientID:  recipientID,
		ActorID:      uuid.New(),
		Type:         models.NotificationTypeSplitConfirmed,
		Message:      "The split is complete",
		SplitClaimID: &splitID,
	}
	hub.Deliver(notification)

	for _, c := range []*Client{recipientClient, secondDevice} {
		select {
		case data := <-c.send:
			var payload map[string]any
			require.NoError(t, json.Unmarshal(data, &payload))
			assert.Equal(t, string(models.NotificationTypeSplitConfirmed), payload["type"])
			assert.Equal(t, notification.ID.String(), payload["notification_id"])
			assert.Equal(t, splitID.String(), payload["split_claim_id"])
		default:
			t.Fatal("expected a delivered event on the recipient's socket")
		}
	}

	select {
	case <-otherClient.send:
		t.Fatal("event leaked to another user's socket")
	default:
	}
}

func TestHub_DeliverDropsWhenBufferFull(t *testing.T) {
	hub := NewHub()
	userID := uuid.New()
	client := NewClient(hub, nil, userID)
	hub.Register(client)

	notification := models.Notification{
		BaseModel:   models.BaseModel{ID: uuid.New()},
		RecipientID: userID,
		Type:        models.NotificationTypeSplitJoined,
	}
	// one more than the buffer; the overflow is dropped, not blocking
	for i := 0; i <= sendBufferSize; i++ {
		hub.Deliver(notification)
	}
	assert.Len(t, client.send, sendBufferSize)
}

func TestHub_UnregisterClosesAndPrunes(t *testing.T) {
	hub := NewHub()
	userID := uuid.New()
	client := NewClient(hub, nil, userID)
	hub.Register(client)

	hub.Unregister(client)
	assert.Equal(t, 0, hub.ClientCount())

	_, open := <-client.send
	assert.False(t, open)

	// unregistering twice is safe
	hub.Unregister(client)
}

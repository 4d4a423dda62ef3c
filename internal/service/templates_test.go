package service

import (
	"os"
	"path/filepath"
	"testing"

	"wishlist-backend/internal/database/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMessageTemplates_DefaultsOnly(t *testing.T) {
	templates, err := LoadMessageTemplates("")
	require.NoError(t, err)

	msg := templates.Render(models.NotificationTypeFriendRequest, "Alice", "")
	assert.Equal(t, "Alice sent you a friend request", msg)

	msg = templates.Render(models.NotificationTypeSplitJoined, "Bob", "Espresso machine")
	assert.Equal(t, `Bob joined the split for "Espresso machine"`, msg)
}

func TestLoadMessageTemplates_YamlOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "templates.yaml")
	content := "friend_request: \"{actor} wants to be friends\"\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	templates, err := LoadMessageTemplates(path)
	require.NoError(t, err)

	assert.Equal(t, "Alice wants to be friends",
		templates.Render(models.NotificationTypeFriendRequest, "Alice", ""))
	// non-overridden types keep the defaults
	assert.Equal(t, "Carol has a birthday today",
		templates.Render(models.NotificationTypeBirthdayReminder, "Carol", ""))
}

func TestLoadMessageTemplates_MissingFile(t *testing.T) {
	_, err := LoadMessageTemplates(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestRender_UnknownTypeIsEmpty(t *testing.T) {
	templates, err := LoadMessageTemplates("")
	require.NoError(t, err)

	assert.Empty(t, templates.Render(models.NotificationType("mystery"), "Alice", "Thing"))
}

func TestRender_AllDefaultTypesCovered(t *testing.T) {
	templates, err := LoadMessageTemplates("")
	require.NoError(t, err)

	for _, nt := range []models.NotificationType{
		models.NotificationTypeFriendRequest,
		models.NotificationTypeFriendAccepted,
		models.NotificationTypeBirthdayReminder,
		models.NotificationTypeSplitInvite,
		models.NotificationTypeSplitJoined,
		models.NotificationTypeSplitLeft,
		models.NotificationTypeSplitConfirmed,
		models.NotificationTypeSplitCancelled,
		models.NotificationTypeFlagCreated,
		models.NotificationTypeFlagConfirmed,
		models.NotificationTypeFlagDenied,
		models.NotificationTypeGiftReceived,
	} {
		assert.NotEmpty(t, templates.Render(nt, "Alice", "Thing"), "type %s", nt)
	}
}

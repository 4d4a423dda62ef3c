package service

import (
	"fmt"
	"os"
	"strings"

	"wishlist-backend/internal/database/models"

	"gopkg.in/yaml.v3"
)

// MessageTemplates renders notification message text. Templates use {actor}
// and {item} placeholders and can be overridden per type from a yaml file;
// anything not overridden keeps the built-in default.
type MessageTemplates struct {
	templates map[models.NotificationType]string
}

var defaultTemplates = map[models.NotificationType]string{
	models.NotificationTypeFriendRequest:    "{actor} sent you a friend request",
	models.NotificationTypeFriendAccepted:   "{actor} accepted your friend request",
	models.NotificationTypeBirthdayReminder: "{actor} has a birthday today",
	models.NotificationTypeSplitInvite:      "{actor} started a split for \"{item}\", want to chip in?",
	models.NotificationTypeSplitJoined:      "{actor} joined the split for \"{item}\"",
	models.NotificationTypeSplitLeft:        "{actor} left the split for \"{item}\"",
	models.NotificationTypeSplitConfirmed:   "The split for \"{item}\" is complete",
	models.NotificationTypeSplitCancelled:   "The split for \"{item}\" was cancelled",
	models.NotificationTypeFlagCreated:      "{actor} thinks you already own \"{item}\"",
	models.NotificationTypeFlagConfirmed:    "{actor} confirmed already owning \"{item}\"",
	models.NotificationTypeFlagDenied:       "{actor} does not own \"{item}\" after all",
	models.NotificationTypeGiftReceived:     "{actor} received \"{item}\"",
}

// LoadMessageTemplates builds the template set, applying overrides from the
// yaml file at path when it is non-empty and readable
func LoadMessageTemplates(path string) (*MessageTemplates, error) {
	templates := make(map[models.NotificationType]string, len(defaultTemplates))
	for t, msg := range defaultTemplates {
		templates[t] = msg
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read notification templates: %w", err)
		}
		var overrides map[string]string
		if err := yaml.Unmarshal(data, &overrides); err != nil {
			return nil, fmt.Errorf("parse notification templates: %w", err)
		}
		for t, msg := range overrides {
			templates[models.NotificationType(t)] = msg
		}
	}

	return &MessageTemplates{templates: templates}, nil
}

// Render produces the message for a notification type. Unknown types render
// as an empty message rather than an error; the type tag still deep-links.
func (m *MessageTemplates) Render(t models.NotificationType, actorName, itemTitle string) string {
	template, ok := m.templates[t]
	if !ok {
		return ""
	}
	msg := strings.ReplaceAll(template, "{actor}", actorName)
	msg = strings.ReplaceAll(msg, "{item}", itemTitle)
	return msg
}

//go:build integration
// +build integration

package service_test

import (
	"fmt"
	"testing"

	"wishlist-backend/internal/database/models"
	apperrors "wishlist-backend/internal/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type NotificationServiceTestSuite struct {
	ServiceIntegrationSuite
}

// seedNotifications inserts n inbox notifications for the recipient and
// returns them in insertion order
func (suite *NotificationServiceTestSuite) seedNotifications(recipient, actor *models.User, n int) []models.Notification {
	batch := make([]models.Notification, 0, n)
	for i := 0; i < n; i++ {
		batch = append(batch, models.Notification{
			RecipientID: recipient.ID,
			ActorID:     actor.ID,
			Type:        models.NotificationTypeFriendRequest,
			Message:     fmt.Sprintf("message %d", i),
			Status:      models.NotificationStatusInbox,
		})
	}
	suite.Require().NoError(suite.base.DB.Create(&batch).Error)
	return batch
}

func (suite *NotificationServiceTestSuite) TestList_StatusPartition() {
	recipient := suite.createUser("Recipient")
	actor := suite.createUser("Actor")
	seeded := suite.seedNotifications(recipient, actor, 3)

	suite.Require().NoError(suite.notifications.Archive(seeded[0].ID, recipient.ID))

	inbox, err := suite.notifications.List(recipient.ID, models.NotificationStatusInbox, 1, 20)
	suite.Require().NoError(err)
	suite.Equal(int64(2), inbox.Total)

	archived, err := suite.notifications.List(recipient.ID, models.NotificationStatusArchived, 1, 20)
	suite.Require().NoError(err)
	suite.Require().Equal(int64(1), archived.Total)
	suite.Equal(seeded[0].ID, archived.Notifications[0].ID)
	suite.True(archived.Notifications[0].IsRead)
}

func (suite *NotificationServiceTestSuite) TestList_InvalidStatus() {
	recipient := suite.createUser("Recipient")

	_, err := suite.notifications.List(recipient.ID, models.NotificationStatus("trash"), 1, 20)

	suite.ErrorIs(err, apperrors.ErrInvalidStatusFilter)
}

func (suite *NotificationServiceTestSuite) TestList_PaginationClamp() {
	recipient := suite.createUser("Recipient")
	actor := suite.createUser("Actor")
	suite.seedNotifications(recipient, actor, 25)

	// out-of-range page and page size fall back to 1 and 20
	page, err := suite.notifications.List(recipient.ID, models.NotificationStatusInbox, -1, 5000)
	suite.Require().NoError(err)
	suite.Equal(1, page.Page)
	suite.Equal(20, page.PageSize)
	suite.Equal(int64(25), page.Total)
	suite.Len(page.Notifications, 20)

	second, err := suite.notifications.List(recipient.ID, models.NotificationStatusInbox, 2, 20)
	suite.Require().NoError(err)
	suite.Len(second.Notifications, 5)
}

func (suite *NotificationServiceTestSuite) TestMarkReadAndUnreadCount() {
	recipient := suite.createUser("Recipient")
	actor := suite.createUser("Actor")
	seeded := suite.seedNotifications(recipient, actor, 3)

	count, err := suite.notifications.UnreadCount(recipient.ID)
	suite.Require().NoError(err)
	suite.Equal(int64(3), count)

	suite.Require().NoError(suite.notifications.MarkRead(seeded[1].ID, recipient.ID))
	// marking a read notification again is a no-op
	suite.Require().NoError(suite.notifications.MarkRead(seeded[1].ID, recipient.ID))

	count, err = suite.notifications.UnreadCount(recipient.ID)
	suite.Require().NoError(err)
	suite.Equal(int64(2), count)

	suite.Require().NoError(suite.notifications.MarkAllRead(recipient.ID))

	count, err = suite.notifications.UnreadCount(recipient.ID)
	suite.Require().NoError(err)
	suite.Equal(int64(0), count)
}

func (suite *NotificationServiceTestSuite) TestMarkRead_WrongRecipientForbidden() {
	recipient := suite.createUser("Recipient")
	actor := suite.createUser("Actor")
	intruder := suite.createUser("Intruder")
	seeded := suite.seedNotifications(recipient, actor, 1)

	err := suite.notifications.MarkRead(seeded[0].ID, intruder.ID)
	suite.ErrorIs(err, apperrors.ErrNotRecipient)

	err = suite.notifications.Archive(seeded[0].ID, intruder.ID)
	suite.ErrorIs(err, apperrors.ErrNotRecipient)
}

func (suite *NotificationServiceTestSuite) TestMarkRead_MissingNotification() {
	recipient := suite.createUser("Recipient")

	err := suite.notifications.MarkRead(uuid.New(), recipient.ID)
	suite.ErrorIs(err, apperrors.ErrNotificationNotFound)
}

func TestNotificationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(NotificationServiceTestSuite))
}

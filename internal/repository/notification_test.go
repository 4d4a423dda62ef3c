//go:build integration
// +build integration

package repository

import (
	"testing"
	"time"

	"wishlist-backend/internal/database/models"
	"wishlist-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// NotificationRepositoryTestSuite tests the NotificationRepository
type NotificationRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *NotificationRepository
}

// SetupSuite runs before all tests in the suite
func (suite *NotificationRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewNotificationRepository(suite.baseTestSuite.DB)
}

// TearDownSuite runs after all tests in the suite
func (suite *NotificationRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *NotificationRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *NotificationRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *NotificationRepositoryTestSuite) notification(recipientID, actorID uuid.UUID, createdAt time.Time) models.Notification {
	return models.Notification{
		BaseModel:   models.BaseModel{ID: uuid.New(), CreatedAt: createdAt, UpdatedAt: createdAt},
		RecipientID: recipientID,
		ActorID:     actorID,
		Type:        models.NotificationTypeSplitInvite,
		Message:     "test message",
		Status:      models.NotificationStatusInbox,
	}
}

func (suite *NotificationRepositoryTestSuite) TestCreateBatch_EmptyIsNoop() {
	suite.NoError(suite.repo.CreateBatch(nil))
	suite.NoError(suite.repo.CreateBatch([]models.Notification{}))
}

func (suite *NotificationRepositoryTestSuite) TestGetByRecipient_NewestFirstWithTotal() {
	recipient := uuid.New()
	actor := uuid.New()
	now := time.Now()

	oldest := suite.notification(recipient, actor, now.Add(-2*time.Hour))
	middle := suite.notification(recipient, actor, now.Add(-time.Hour))
	newest := suite.notification(recipient, actor, now)
	other := suite.notification(uuid.New(), actor, now)
	suite.Require().NoError(suite.repo.CreateBatch([]models.Notification{oldest, middle, newest, other}))

	page, total, err := suite.repo.GetByRecipient(recipient, models.NotificationStatusInbox, 2, 0)
	suite.Require().NoError(err)
	suite.Equal(int64(3), total)
	suite.Require().Len(page, 2)
	suite.Equal(newest.ID, page[0].ID)
	suite.Equal(middle.ID, page[1].ID)

	page, total, err = suite.repo.GetByRecipient(recipient, models.NotificationStatusInbox, 2, 2)
	suite.Require().NoError(err)
	suite.Equal(int64(3), total)
	suite.Require().Len(page, 1)
	suite.Equal(oldest.ID, page[0].ID)
}

func (suite *NotificationRepositoryTestSuite) TestGetByRecipient_StatusPartition() {
	recipient := uuid.New()
	actor := uuid.New()
	now := time.Now()

	archived := suite.notification(recipient, actor, now)
	archived.Status = models.NotificationStatusArchived
	inbox := suite.notification(recipient, actor, now)
	suite.Require().NoError(suite.repo.CreateBatch([]models.Notification{archived, inbox}))

	page, total, err := suite.repo.GetByRecipient(recipient, models.NotificationStatusArchived, 10, 0)
	suite.Require().NoError(err)
	suite.Equal(int64(1), total)
	suite.Require().Len(page, 1)
	suite.Equal(archived.ID, page[0].ID)
}

func (suite *NotificationRepositoryTestSuite) TestUnreadCountAndMarkAllRead() {
	recipient := uuid.New()
	actor := uuid.New()
	now := time.Now()

	read := suite.notification(recipient, actor, now)
	read.IsRead = true
	unread := suite.notification(recipient, actor, now)
	archivedUnread := suite.notification(recipient, actor, now)
	archivedUnread.Status = models.NotificationStatusArchived
	suite.Require().NoError(suite.repo.CreateBatch([]models.Notification{read, unread, archivedUnread}))

	count, err := suite.repo.UnreadCount(recipient)
	suite.Require().NoError(err)
	suite.Equal(int64(1), count)

	suite.Require().NoError(suite.repo.MarkAllRead(recipient))

	count, err = suite.repo.UnreadCount(recipient)
	suite.Require().NoError(err)
	suite.Equal(int64(0), count)

	// archived rows are untouched by MarkAllRead
	found, err := suite.repo.GetByID(archivedUnread.ID)
	suite.Require().NoError(err)
	suite.False(found.IsRead)
}

func (suite *NotificationRepositoryTestSuite) TestExistsForActorSince() {
	recipient := uuid.New()
	actor := uuid.New()
	now := time.Now()

	reminder := suite.notification(recipient, actor, now.Add(-time.Hour))
	reminder.Type = models.NotificationTypeBirthdayReminder
	suite.Require().NoError(suite.repo.CreateBatch([]models.Notification{reminder}))

	exists, err := suite.repo.ExistsForActorSince(recipient, actor, models.NotificationTypeBirthdayReminder, now.Add(-2*time.Hour))
	suite.Require().NoError(err)
	suite.True(exists)

	// cutoff after the row
	exists, err = suite.repo.ExistsForActorSince(recipient, actor, models.NotificationTypeBirthdayReminder, now)
	suite.Require().NoError(err)
	suite.False(exists)

	// different type or actor does not match
	exists, err = suite.repo.ExistsForActorSince(recipient, actor, models.NotificationTypeFriendRequest, now.Add(-2*time.Hour))
	suite.Require().NoError(err)
	suite.False(exists)

	exists, err = suite.repo.ExistsForActorSince(recipient, uuid.New(), models.NotificationTypeBirthdayReminder, now.Add(-2*time.Hour))
	suite.Require().NoError(err)
	suite.False(exists)
}

func TestNotificationRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(NotificationRepositoryTestSuite))
}

//go:build integration
// +build integration

package repository

import (
	"testing"

	"wishlist-backend/internal/database/models"
	"wishlist-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// PushSubscriptionRepositoryTestSuite tests the PushSubscriptionRepository
type PushSubscriptionRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *PushSubscriptionRepository
}

// SetupSuite runs before all tests in the suite
func (suite *PushSubscriptionRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewPushSubscriptionRepository(suite.baseTestSuite.DB)
}

// TearDownSuite runs after all tests in the suite
func (suite *PushSubscriptionRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *PushSubscriptionRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *PushSubscriptionRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *PushSubscriptionRepositoryTestSuite) subscription(userID uuid.UUID, endpoint string) *models.PushSubscription {
	return &models.PushSubscription{
		UserID:    userID,
		Endpoint:  endpoint,
		P256dhKey: "p256dh-key",
		AuthKey:   "auth-key",
	}
}

func (suite *PushSubscriptionRepositoryTestSuite) TestUpsert_RefreshesKeysOnEndpointConflict() {
	userID := uuid.New()
	endpoint := "https://push.example.com/sub/abc"

	suite.Require().NoError(suite.repo.Upsert(suite.subscription(userID, endpoint)))

	rotated := suite.subscription(userID, endpoint)
	rotated.P256dhKey = "rotated-p256dh"
	rotated.AuthKey = "rotated-auth"
	suite.Require().NoError(suite.repo.Upsert(rotated))

	subs, err := suite.repo.GetByUser(userID)
	suite.Require().NoError(err)
	suite.Require().Len(subs, 1)
	suite.Equal("rotated-p256dh", subs[0].P256dhKey)
	suite.Equal("rotated-auth", subs[0].AuthKey)
}

func (suite *PushSubscriptionRepositoryTestSuite) TestGetByUser_MultipleDevices() {
	userID := uuid.New()
	suite.Require().NoError(suite.repo.Upsert(suite.subscription(userID, "https://push.example.com/sub/phone")))
	suite.Require().NoError(suite.repo.Upsert(suite.subscription(userID, "https://push.example.com/sub/laptop")))
	suite.Require().NoError(suite.repo.Upsert(suite.subscription(uuid.New(), "https://push.example.com/sub/other")))

	subs, err := suite.repo.GetByUser(userID)
	suite.Require().NoError(err)
	suite.Len(subs, 2)
}

func (suite *PushSubscriptionRepositoryTestSuite) TestDeleteByEndpoint() {
	userID := uuid.New()
	endpoint := "https://push.example.com/sub/gone"
	suite.Require().NoError(suite.repo.Upsert(suite.subscription(userID, endpoint)))

	suite.Require().NoError(suite.repo.DeleteByEndpoint(endpoint))

	subs, err := suite.repo.GetByUser(userID)
	suite.Require().NoError(err)
	suite.Empty(subs)

	// deleting an unknown endpoint is not an error
	suite.NoError(suite.repo.DeleteByEndpoint("https://push.example.com/sub/unknown"))
}

func TestPushSubscriptionRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(PushSubscriptionRepositoryTestSuite))
}

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

// FriendshipRepositoryTestSuite tests the FriendshipRepository
type FriendshipRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *FriendshipRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *FriendshipRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewFriendshipRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *FriendshipRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *FriendshipRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *FriendshipRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *FriendshipRepositoryTestSuite) TestAreFriends_BothDirections() {
	a := uuid.New()
	b := uuid.New()
	suite.Require().NoError(suite.repo.Create(suite.factories.Friendship.Accepted(a, b)))

	friends, err := suite.repo.AreFriends(a, b)
	suite.Require().NoError(err)
	suite.True(friends)

	friends, err = suite.repo.AreFriends(b, a)
	suite.Require().NoError(err)
	suite.True(friends)
}

func (suite *FriendshipRepositoryTestSuite) TestAreFriends_PendingDoesNotCount() {
	a := uuid.New()
	b := uuid.New()
	suite.Require().NoError(suite.repo.Create(suite.factories.Friendship.Pending(a, b)))

	friends, err := suite.repo.AreFriends(a, b)
	suite.Require().NoError(err)
	suite.False(friends)
}

func (suite *FriendshipRepositoryTestSuite) TestAreFriends_NoEdge() {
	friends, err := suite.repo.AreFriends(uuid.New(), uuid.New())
	suite.Require().NoError(err)
	suite.False(friends)
}

func (suite *FriendshipRepositoryTestSuite) TestGetBetween_DirectionAgnostic() {
	a := uuid.New()
	b := uuid.New()
	edge := suite.factories.Friendship.Pending(a, b)
	suite.Require().NoError(suite.repo.Create(edge))

	found, err := suite.repo.GetBetween(b, a)
	suite.Require().NoError(err)
	suite.Require().NotNil(found)
	suite.Equal(edge.ID, found.ID)

	found, err = suite.repo.GetBetween(a, uuid.New())
	suite.Require().NoError(err)
	suite.Nil(found)
}

func (suite *FriendshipRepositoryTestSuite) TestGetFriendIDs_AcceptedEitherSide() {
	me := uuid.New()
	requested := uuid.New()
	requester := uuid.New()
	pending := uuid.New()

	suite.Require().NoError(suite.repo.Create(suite.factories.Friendship.Accepted(me, requested)))
	suite.Require().NoError(suite.repo.Create(suite.factories.Friendship.Accepted(requester, me)))
	suite.Require().NoError(suite.repo.Create(suite.factories.Friendship.Pending(me, pending)))

	ids, err := suite.repo.GetFriendIDs(me)
	suite.Require().NoError(err)
	suite.ElementsMatch([]uuid.UUID{requested, requester}, ids)
}

func (suite *FriendshipRepositoryTestSuite) TestUpdate_StatusTransition() {
	edge := suite.factories.Friendship.Pending(uuid.New(), uuid.New())
	suite.Require().NoError(suite.repo.Create(edge))

	edge.Status = models.FriendshipStatusAccepted
	suite.Require().NoError(suite.repo.Update(edge))

	found, err := suite.repo.GetByID(edge.ID)
	suite.Require().NoError(err)
	suite.Equal(models.FriendshipStatusAccepted, found.Status)
}

func TestFriendshipRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(FriendshipRepositoryTestSuite))
}

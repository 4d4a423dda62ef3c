//go:build integration
// +build integration

package service_test

import (
	"testing"

	"wishlist-backend/internal/database/models"
	apperrors "wishlist-backend/internal/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type FriendshipServiceTestSuite struct {
	ServiceIntegrationSuite
}

func (suite *FriendshipServiceTestSuite) TestSendRequest_NotifiesAddressee() {
	alice := suite.createUser("Alice")
	bob := suite.createUser("Bob")

	request, err := suite.friendships.SendRequest(alice.ID, bob.ID)

	suite.Require().NoError(err)
	suite.Equal(string(models.FriendshipStatusPending), request.Status)
	suite.Equal([]string{string(models.NotificationTypeFriendRequest)}, suite.inboxTypesFor(bob.ID))
}

func (suite *FriendshipServiceTestSuite) TestSendRequest_SelfForbidden() {
	alice := suite.createUser("Alice")

	_, err := suite.friendships.SendRequest(alice.ID, alice.ID)

	suite.ErrorIs(err, apperrors.ErrSelfFriendRequest)
}

func (suite *FriendshipServiceTestSuite) TestSendRequest_UnknownAddressee() {
	alice := suite.createUser("Alice")

	_, err := suite.friendships.SendRequest(alice.ID, uuid.New())

	suite.ErrorIs(err, apperrors.ErrUserNotFound)
}

func (suite *FriendshipServiceTestSuite) TestSendRequest_ExistingEdgeBlocksEitherDirection() {
	alice := suite.createUser("Alice")
	bob := suite.createUser("Bob")

	_, err := suite.friendships.SendRequest(alice.ID, bob.ID)
	suite.Require().NoError(err)

	_, err = suite.friendships.SendRequest(alice.ID, bob.ID)
	suite.ErrorIs(err, apperrors.ErrFriendRequestExists)

	_, err = suite.friendships.SendRequest(bob.ID, alice.ID)
	suite.ErrorIs(err, apperrors.ErrFriendRequestExists)
}

func (suite *FriendshipServiceTestSuite) TestRespond_AcceptNotifiesRequester() {
	alice := suite.createUser("Alice")
	bob := suite.createUser("Bob")

	request, err := suite.friendships.SendRequest(alice.ID, bob.ID)
	suite.Require().NoError(err)

	accepted, err := suite.friendships.Respond(request.ID, bob.ID, true)
	suite.Require().NoError(err)
	suite.Equal(string(models.FriendshipStatusAccepted), accepted.Status)

	suite.Contains(suite.inboxTypesFor(alice.ID), string(models.NotificationTypeFriendAccepted))
}

func (suite *FriendshipServiceTestSuite) TestRespond_DeclineIsSilent() {
	alice := suite.createUser("Alice")
	bob := suite.createUser("Bob")

	request, err := suite.friendships.SendRequest(alice.ID, bob.ID)
	suite.Require().NoError(err)

	declined, err := suite.friendships.Respond(request.ID, bob.ID, false)
	suite.Require().NoError(err)
	suite.Equal(string(models.FriendshipStatusDeclined), declined.Status)

	suite.Empty(suite.inboxFor(alice.ID))
}

func (suite *FriendshipServiceTestSuite) TestRespond_OnlyAddressee() {
	alice := suite.createUser("Alice")
	bob := suite.createUser("Bob")

	request, err := suite.friendships.SendRequest(alice.ID, bob.ID)
	suite.Require().NoError(err)

	_, err = suite.friendships.Respond(request.ID, alice.ID, true)
	suite.ErrorIs(err, apperrors.ErrNotAddressee)
}

func (suite *FriendshipServiceTestSuite) TestRespond_ClosedRequestConflicts() {
	alice := suite.createUser("Alice")
	bob := suite.createUser("Bob")

	request, err := suite.friendships.SendRequest(alice.ID, bob.ID)
	suite.Require().NoError(err)
	_, err = suite.friendships.Respond(request.ID, bob.ID, true)
	suite.Require().NoError(err)

	_, err = suite.friendships.Respond(request.ID, bob.ID, false)
	suite.ErrorIs(err, apperrors.ErrFriendRequestClosed)
}

func (suite *FriendshipServiceTestSuite) TestListFriends_AcceptedOnlyBothDirections() {
	alice := suite.createUser("Alice")
	bob := suite.createUser("Bob")
	carol := suite.createUser("Carol")
	dave := suite.createUser("Dave")

	// alice -> bob accepted, carol -> alice accepted, alice -> dave pending
	request, err := suite.friendships.SendRequest(alice.ID, bob.ID)
	suite.Require().NoError(err)
	_, err = suite.friendships.Respond(request.ID, bob.ID, true)
	suite.Require().NoError(err)

	request, err = suite.friendships.SendRequest(carol.ID, alice.ID)
	suite.Require().NoError(err)
	_, err = suite.friendships.Respond(request.ID, alice.ID, true)
	suite.Require().NoError(err)

	_, err = suite.friendships.SendRequest(alice.ID, dave.ID)
	suite.Require().NoError(err)

	friends, err := suite.friendships.ListFriends(alice.ID)
	suite.Require().NoError(err)

	names := make([]string, 0, len(friends))
	for _, f := range friends {
		names = append(names, f.DisplayName)
	}
	suite.ElementsMatch([]string{"Bob", "Carol"}, names)
}

func TestFriendshipServiceTestSuite(t *testing.T) {
	suite.Run(t, new(FriendshipServiceTestSuite))
}

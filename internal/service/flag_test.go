//go:build integration
// +build integration

package service_test

import (
	"testing"

	"wishlist-backend/internal/database/models"
	apperrors "wishlist-backend/internal/errors"

	"github.com/stretchr/testify/suite"
)

type FlagServiceTestSuite struct {
	ServiceIntegrationSuite
}

func (suite *FlagServiceTestSuite) TestCreateFlag_NotifiesOwner() {
	owner := suite.createUser("Owner")
	friend := suite.createUser("Friend")
	suite.befriend(owner, friend)
	_, item := suite.createListWithItem(owner)

	flag, err := suite.flags.CreateFlag(item.ID, friend.ID)

	suite.Require().NoError(err)
	suite.Equal(string(models.OwnershipFlagStatusPending), flag.Status)
	suite.Equal([]string{string(models.NotificationTypeFlagCreated)}, suite.inboxTypesFor(owner.ID))
}

func (suite *FlagServiceTestSuite) TestCreateFlag_OwnItemForbidden() {
	owner := suite.createUser("Owner")
	_, item := suite.createListWithItem(owner)

	_, err := suite.flags.CreateFlag(item.ID, owner.ID)

	suite.ErrorIs(err, apperrors.ErrOwnItemFlag)
}

func (suite *FlagServiceTestSuite) TestCreateFlag_OnePerItemEver() {
	owner := suite.createUser("Owner")
	friend := suite.createUser("Friend")
	other := suite.createUser("Other")
	suite.befriend(owner, friend)
	suite.befriend(owner, other)
	_, item := suite.createListWithItem(owner)

	flag, err := suite.flags.CreateFlag(item.ID, friend.ID)
	suite.Require().NoError(err)

	_, err = suite.flags.CreateFlag(item.ID, other.ID)
	suite.ErrorIs(err, apperrors.ErrFlagExists)

	// a denied flag stays on record and keeps blocking
	_, err = suite.flags.ResolveFlag(flag.ID, owner.ID, string(models.OwnershipFlagStatusDenied))
	suite.Require().NoError(err)

	_, err = suite.flags.CreateFlag(item.ID, other.ID)
	suite.ErrorIs(err, apperrors.ErrFlagExists)
}

func (suite *FlagServiceTestSuite) TestResolveFlag_InvalidDecision() {
	owner := suite.createUser("Owner")
	friend := suite.createUser("Friend")
	suite.befriend(owner, friend)
	_, item := suite.createListWithItem(owner)

	flag, err := suite.flags.CreateFlag(item.ID, friend.ID)
	suite.Require().NoError(err)

	_, err = suite.flags.ResolveFlag(flag.ID, owner.ID, "maybe")
	suite.ErrorIs(err, apperrors.ErrInvalidFlagDecision)
}

func (suite *FlagServiceTestSuite) TestResolveFlag_OnlyOwner() {
	owner := suite.createUser("Owner")
	friend := suite.createUser("Friend")
	suite.befriend(owner, friend)
	_, item := suite.createListWithItem(owner)

	flag, err := suite.flags.CreateFlag(item.ID, friend.ID)
	suite.Require().NoError(err)

	_, err = suite.flags.ResolveFlag(flag.ID, friend.ID, string(models.OwnershipFlagStatusConfirmed))
	suite.ErrorIs(err, apperrors.ErrNotOwner)
}

func (suite *FlagServiceTestSuite) TestResolveFlag_DeniedNotifiesFlagger() {
	owner := suite.createUser("Owner")
	friend := suite.createUser("Friend")
	suite.befriend(owner, friend)
	_, item := suite.createListWithItem(owner)

	flag, err := suite.flags.CreateFlag(item.ID, friend.ID)
	suite.Require().NoError(err)

	resolved, err := suite.flags.ResolveFlag(flag.ID, owner.ID, string(models.OwnershipFlagStatusDenied))
	suite.Require().NoError(err)
	suite.Equal(string(models.OwnershipFlagStatusDenied), resolved.Status)
	suite.NotNil(resolved.ResolvedAt)

	suite.Contains(suite.inboxTypesFor(friend.ID), string(models.NotificationTypeFlagDenied))
}

func (suite *FlagServiceTestSuite) TestResolveFlag_ConfirmCancelsSoloClaim() {
	owner := suite.createUser("Owner")
	flagger := suite.createUser("Flagger")
	claimer := suite.createUser("Claimer")
	suite.befriend(owner, flagger)
	suite.befriend(owner, claimer)
	_, item := suite.createListWithItem(owner)

	claim, err := suite.claims.CreateSoloClaim(item.ID, claimer.ID)
	suite.Require().NoError(err)
	flag, err := suite.flags.CreateFlag(item.ID, flagger.ID)
	suite.Require().NoError(err)

	_, err = suite.flags.ResolveFlag(flag.ID, owner.ID, string(models.OwnershipFlagStatusConfirmed))
	suite.Require().NoError(err)

	stored, err := suite.soloClaimRepo.GetByID(claim.ID)
	suite.Require().NoError(err)
	suite.Equal(models.SoloClaimStatusCancelled, stored.Status)

	suite.Contains(suite.inboxTypesFor(flagger.ID), string(models.NotificationTypeFlagConfirmed))
}

func (suite *FlagServiceTestSuite) TestResolveFlag_ConfirmDissolvesSplit() {
	owner := suite.createUser("Owner")
	flagger := suite.createUser("Flagger")
	alice := suite.createUser("Alice")
	bob := suite.createUser("Bob")
	for _, u := range []*models.User{flagger, alice, bob} {
		suite.befriend(owner, u)
	}
	_, item := suite.createListWithItem(owner)

	split, err := suite.splits.InitiateSplit(item.ID, alice.ID, 3)
	suite.Require().NoError(err)
	_, err = suite.splits.JoinSplit(split.ID, bob.ID)
	suite.Require().NoError(err)
	flag, err := suite.flags.CreateFlag(item.ID, flagger.ID)
	suite.Require().NoError(err)

	_, err = suite.flags.ResolveFlag(flag.ID, owner.ID, string(models.OwnershipFlagStatusConfirmed))
	suite.Require().NoError(err)

	active, err := suite.splitRepo.FindActiveByItem(item.ID)
	suite.Require().NoError(err)
	suite.Nil(active)

	for _, u := range []*models.User{alice, bob} {
		suite.Contains(suite.inboxTypesFor(u.ID), string(models.NotificationTypeSplitCancelled))
	}
}

func (suite *FlagServiceTestSuite) TestResolveFlag_TwiceConflicts() {
	owner := suite.createUser("Owner")
	friend := suite.createUser("Friend")
	suite.befriend(owner, friend)
	_, item := suite.createListWithItem(owner)

	flag, err := suite.flags.CreateFlag(item.ID, friend.ID)
	suite.Require().NoError(err)
	_, err = suite.flags.ResolveFlag(flag.ID, owner.ID, string(models.OwnershipFlagStatusDenied))
	suite.Require().NoError(err)

	_, err = suite.flags.ResolveFlag(flag.ID, owner.ID, string(models.OwnershipFlagStatusConfirmed))
	suite.ErrorIs(err, apperrors.ErrFlagResolved)
}

func (suite *FlagServiceTestSuite) TestDeleteFlag_OnlyFlaggerWhilePending() {
	owner := suite.createUser("Owner")
	friend := suite.createUser("Friend")
	other := suite.createUser("Other")
	suite.befriend(owner, friend)
	suite.befriend(owner, other)
	_, item := suite.createListWithItem(owner)

	flag, err := suite.flags.CreateFlag(item.ID, friend.ID)
	suite.Require().NoError(err)

	suite.ErrorIs(suite.flags.DeleteFlag(flag.ID, other.ID), apperrors.ErrNotFlagger)
	suite.NoError(suite.flags.DeleteFlag(flag.ID, friend.ID))

	// withdrawal frees the item for a new flag
	_, err = suite.flags.CreateFlag(item.ID, other.ID)
	suite.NoError(err)
}

func TestFlagServiceTestSuite(t *testing.T) {
	suite.Run(t, new(FlagServiceTestSuite))
}

//go:build integration
// +build integration

package service_test

import (
	"sync"
	"testing"

	"wishlist-backend/internal/database/models"
	apperrors "wishlist-backend/internal/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// Claim creation and split joins race through separate connections here; the
// item and split row locks must leave exactly one winner.
type ClaimConcurrencyTestSuite struct {
	ServiceIntegrationSuite
}

func (suite *ClaimConcurrencyTestSuite) TestConcurrentSoloAndSplitCreation_OneSurvivor() {
	owner := suite.createUser("Owner")
	soloBuyer := suite.createUser("SoloBuyer")
	organizer := suite.createUser("Organizer")
	suite.befriend(owner, soloBuyer)
	suite.befriend(owner, organizer)
	_, item := suite.createListWithItem(owner)

	start := make(chan struct{})
	var wg sync.WaitGroup
	var soloErr, splitErr error
	wg.Add(2)
	go func() {
		defer wg.Done()
		<-start
		_, soloErr = suite.claims.CreateSoloClaim(item.ID, soloBuyer.ID)
	}()
	go func() {
		defer wg.Done()
		<-start
		_, splitErr = suite.splits.InitiateSplit(item.ID, organizer.ID, 2)
	}()
	close(start)
	wg.Wait()

	if soloErr == nil {
		suite.ErrorIs(splitErr, apperrors.ErrItemAlreadyClaimed)
	} else {
		suite.ErrorIs(soloErr, apperrors.ErrItemAlreadyClaimed)
		suite.NoError(splitErr)
	}

	solo, err := suite.soloClaimRepo.FindActiveByItem(item.ID)
	suite.Require().NoError(err)
	split, err := suite.splitRepo.FindActiveByItem(item.ID)
	suite.Require().NoError(err)
	suite.False(solo != nil && split != nil, "an active solo claim and an active split must not coexist")
	suite.True(solo != nil || split != nil, "the winning claim must survive")
}

func (suite *ClaimConcurrencyTestSuite) TestConcurrentJoins_NeverOvershootTarget() {
	owner := suite.createUser("Owner")
	initiator := suite.createUser("Initiator")
	joinerA := suite.createUser("JoinerA")
	joinerB := suite.createUser("JoinerB")
	for _, u := range []*models.User{initiator, joinerA, joinerB} {
		suite.befriend(owner, u)
	}
	_, item := suite.createListWithItem(owner)

	split, err := suite.splits.InitiateSplit(item.ID, initiator.ID, 2)
	suite.Require().NoError(err)

	// one slot left, two joiners race for it
	start := make(chan struct{})
	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i, joiner := range []*models.User{joinerA, joinerB} {
		wg.Add(1)
		go func(i int, userID uuid.UUID) {
			defer wg.Done()
			<-start
			_, errs[i] = suite.splits.JoinSplit(split.ID, userID)
		}(i, joiner.ID)
	}
	close(start)
	wg.Wait()

	winners := 0
	for _, err := range errs {
		if err == nil {
			winners++
		} else {
			suite.ErrorIs(err, apperrors.ErrSplitNotPending)
		}
	}
	suite.Equal(1, winners)

	count, err := suite.splitRepo.CountParticipants(split.ID)
	suite.Require().NoError(err)
	suite.Equal(int64(2), count)

	stored, err := suite.splitRepo.GetByID(split.ID)
	suite.Require().NoError(err)
	suite.Equal(models.SplitClaimStatusConfirmed, stored.Status)
	suite.NotNil(stored.ConfirmedAt)
}

func TestClaimConcurrencyTestSuite(t *testing.T) {
	suite.Run(t, new(ClaimConcurrencyTestSuite))
}

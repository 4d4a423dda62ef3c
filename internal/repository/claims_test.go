//go:build integration
// +build integration

package repository

import (
	"testing"

	"wishlist-backend/internal/database/models"
	apperrors "wishlist-backend/internal/errors"
	"wishlist-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// ClaimRepositoriesTestSuite covers the solo and split claim repositories,
// in particular the partial unique indexes behind claim exclusivity
type ClaimRepositoriesTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	soloRepo      *SoloClaimRepository
	splitRepo     *SplitClaimRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *ClaimRepositoriesTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.soloRepo = NewSoloClaimRepository(suite.baseTestSuite.DB)
	suite.splitRepo = NewSplitClaimRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *ClaimRepositoriesTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *ClaimRepositoriesTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *ClaimRepositoriesTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// seedItem creates a user, wishlist and item and returns the item and claimer ids
func (suite *ClaimRepositoriesTestSuite) seedItem() (itemID, claimerID uuid.UUID) {
	owner := suite.factories.User.Create()
	claimer := suite.factories.User.Create()
	suite.Require().NoError(suite.baseTestSuite.DB.Create(owner).Error)
	suite.Require().NoError(suite.baseTestSuite.DB.Create(claimer).Error)

	wishlist := suite.factories.Wishlist.Create(owner.ID)
	suite.Require().NoError(suite.baseTestSuite.DB.Create(wishlist).Error)
	item := suite.factories.Item.Create(wishlist.ID)
	suite.Require().NoError(suite.baseTestSuite.DB.Create(item).Error)
	return item.ID, claimer.ID
}

func (suite *ClaimRepositoriesTestSuite) TestSoloCreate_SecondActiveClaimConflicts() {
	itemID, claimerID := suite.seedItem()

	err := suite.soloRepo.Create(suite.factories.SoloClaim.Active(itemID, claimerID))
	suite.Require().NoError(err)

	err = suite.soloRepo.Create(suite.factories.SoloClaim.Active(itemID, uuid.New()))
	suite.ErrorIs(err, apperrors.ErrItemAlreadyClaimed)
}

func (suite *ClaimRepositoriesTestSuite) TestSoloCreate_CancelledRowDoesNotBlock() {
	itemID, claimerID := suite.seedItem()

	cancelled := suite.factories.SoloClaim.Active(itemID, claimerID)
	cancelled.Status = models.SoloClaimStatusCancelled
	suite.Require().NoError(suite.soloRepo.Create(cancelled))

	err := suite.soloRepo.Create(suite.factories.SoloClaim.Active(itemID, uuid.New()))
	suite.NoError(err)
}

func (suite *ClaimRepositoriesTestSuite) TestSoloFindActiveByItem_IgnoresHistory() {
	itemID, claimerID := suite.seedItem()

	cancelled := suite.factories.SoloClaim.Active(itemID, claimerID)
	cancelled.Status = models.SoloClaimStatusCancelled
	suite.Require().NoError(suite.soloRepo.Create(cancelled))

	found, err := suite.soloRepo.FindActiveByItem(itemID)
	suite.Require().NoError(err)
	suite.Nil(found)

	active := suite.factories.SoloClaim.Active(itemID, claimerID)
	suite.Require().NoError(suite.soloRepo.Create(active))

	found, err = suite.soloRepo.FindActiveByItem(itemID)
	suite.Require().NoError(err)
	suite.Require().NotNil(found)
	suite.Equal(active.ID, found.ID)
}

func (suite *ClaimRepositoriesTestSuite) TestSoloCancelActiveByItem() {
	itemID, claimerID := suite.seedItem()
	suite.Require().NoError(suite.soloRepo.Create(suite.factories.SoloClaim.Active(itemID, claimerID)))

	affected, err := suite.soloRepo.CancelActiveByItem(itemID)
	suite.Require().NoError(err)
	suite.Equal(int64(1), affected)

	affected, err = suite.soloRepo.CancelActiveByItem(itemID)
	suite.Require().NoError(err)
	suite.Equal(int64(0), affected)
}

func (suite *ClaimRepositoriesTestSuite) TestSplitCreate_BlockedBySoloClaim() {
	itemID, claimerID := suite.seedItem()
	suite.Require().NoError(suite.soloRepo.Create(suite.factories.SoloClaim.Active(itemID, claimerID)))

	// the claims table indexes are per table; the cross-claim exclusivity is
	// checked in the service, so a split row on a solo-claimed item still
	// inserts here
	err := suite.splitRepo.Create(suite.factories.SplitClaim.Pending(itemID, uuid.New(), 2))
	suite.NoError(err)
}

func (suite *ClaimRepositoriesTestSuite) TestSplitCreate_SecondActiveSplitConflicts() {
	itemID, _ := suite.seedItem()

	suite.Require().NoError(suite.splitRepo.Create(suite.factories.SplitClaim.Pending(itemID, uuid.New(), 2)))

	err := suite.splitRepo.Create(suite.factories.SplitClaim.Pending(itemID, uuid.New(), 3))
	suite.ErrorIs(err, apperrors.ErrItemAlreadyClaimed)
}

func (suite *ClaimRepositoriesTestSuite) TestSplitAddParticipant_PairUnique() {
	itemID, _ := suite.seedItem()
	split := suite.factories.SplitClaim.Pending(itemID, uuid.New(), 3)
	suite.Require().NoError(suite.splitRepo.Create(split))

	userID := uuid.New()
	suite.Require().NoError(suite.splitRepo.AddParticipant(suite.factories.SplitClaim.Participant(split.ID, userID)))

	err := suite.splitRepo.AddParticipant(suite.factories.SplitClaim.Participant(split.ID, userID))
	suite.ErrorIs(err, apperrors.ErrAlreadyParticipant)
}

func (suite *ClaimRepositoriesTestSuite) TestSplitParticipantLifecycle() {
	itemID, _ := suite.seedItem()
	split := suite.factories.SplitClaim.Pending(itemID, uuid.New(), 3)
	suite.Require().NoError(suite.splitRepo.Create(split))

	first := uuid.New()
	second := uuid.New()
	suite.Require().NoError(suite.splitRepo.AddParticipant(suite.factories.SplitClaim.Participant(split.ID, first)))
	suite.Require().NoError(suite.splitRepo.AddParticipant(suite.factories.SplitClaim.Participant(split.ID, second)))

	count, err := suite.splitRepo.CountParticipants(split.ID)
	suite.Require().NoError(err)
	suite.Equal(int64(2), count)

	ids, err := suite.splitRepo.GetParticipantIDs(split.ID)
	suite.Require().NoError(err)
	suite.Equal([]uuid.UUID{first, second}, ids)

	removed, err := suite.splitRepo.RemoveParticipant(split.ID, first)
	suite.Require().NoError(err)
	suite.Equal(int64(1), removed)

	removed, err = suite.splitRepo.RemoveParticipant(split.ID, first)
	suite.Require().NoError(err)
	suite.Equal(int64(0), removed)
}

func (suite *ClaimRepositoriesTestSuite) TestSplitDelete_CascadesParticipants() {
	itemID, _ := suite.seedItem()
	split := suite.factories.SplitClaim.Pending(itemID, uuid.New(), 2)
	suite.Require().NoError(suite.splitRepo.Create(split))
	suite.Require().NoError(suite.splitRepo.AddParticipant(suite.factories.SplitClaim.Participant(split.ID, uuid.New())))

	suite.Require().NoError(suite.splitRepo.Delete(split.ID))

	count, err := suite.splitRepo.CountParticipants(split.ID)
	suite.Require().NoError(err)
	suite.Equal(int64(0), count)

	found, err := suite.splitRepo.FindActiveByItem(itemID)
	suite.Require().NoError(err)
	suite.Nil(found)
}

func (suite *ClaimRepositoriesTestSuite) TestSplitFindActiveByItem_CoversConfirmed() {
	itemID, _ := suite.seedItem()
	split := suite.factories.SplitClaim.Pending(itemID, uuid.New(), 2)
	split.Status = models.SplitClaimStatusConfirmed
	suite.Require().NoError(suite.splitRepo.Create(split))

	found, err := suite.splitRepo.FindActiveByItem(itemID)
	suite.Require().NoError(err)
	suite.Require().NotNil(found)
	suite.Equal(split.ID, found.ID)
}

func TestClaimRepositoriesTestSuite(t *testing.T) {
	suite.Run(t, new(ClaimRepositoriesTestSuite))
}

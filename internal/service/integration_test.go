//go:build integration
// +build integration

package service_test

import (
	"wishlist-backend/internal/database/models"
	"wishlist-backend/internal/repository"
	"wishlist-backend/internal/service"
	"wishlist-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// ServiceIntegrationSuite wires the full service stack against the shared
// test database. Concrete suites embed it and get the seeded helpers.
type ServiceIntegrationSuite struct {
	suite.Suite
	base      *testutils.BaseTestSuite
	factories *testutils.FactorySet

	notificationRepo repository.NotificationRepositoryInterface
	soloClaimRepo    repository.SoloClaimRepositoryInterface
	splitRepo        repository.SplitClaimRepositoryInterface
	flagRepo         repository.OwnershipFlagRepositoryInterface
	itemRepo         repository.ItemRepositoryInterface

	notifications *service.NotificationService
	claims        *service.ClaimService
	splits        *service.SplitService
	flags         *service.FlagService
	fulfillment   *service.FulfillmentService
	friendships   *service.FriendshipService
}

// SetupSuite runs before all tests in the suite
func (s *ServiceIntegrationSuite) SetupSuite() {
	s.base = testutils.SetupTestSuite(s.T())
	s.factories = testutils.NewFactorySet()

	db := s.base.DB
	userRepo := repository.NewUserRepository(db)
	friendshipRepo := repository.NewFriendshipRepository(db)
	wishlistRepo := repository.NewWishlistRepository(db)
	itemRepo := repository.NewItemRepository(db)
	soloClaimRepo := repository.NewSoloClaimRepository(db)
	splitRepo := repository.NewSplitClaimRepository(db)
	flagRepo := repository.NewOwnershipFlagRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)

	s.notificationRepo = notificationRepo
	s.soloClaimRepo = soloClaimRepo
	s.splitRepo = splitRepo
	s.flagRepo = flagRepo
	s.itemRepo = itemRepo

	templates, err := service.LoadMessageTemplates("")
	s.Require().NoError(err)

	visibility := service.NewVisibilityService(wishlistRepo, itemRepo, friendshipRepo)
	s.notifications = service.NewNotificationService(notificationRepo, userRepo, templates)
	s.claims = service.NewClaimService(db, soloClaimRepo, splitRepo, itemRepo, wishlistRepo, visibility)
	s.splits = service.NewSplitService(db, splitRepo, soloClaimRepo, itemRepo, wishlistRepo, friendshipRepo, visibility, s.notifications)
	s.flags = service.NewFlagService(db, flagRepo, soloClaimRepo, splitRepo, itemRepo, wishlistRepo, visibility, s.notifications)
	s.fulfillment = service.NewFulfillmentService(db, soloClaimRepo, splitRepo, itemRepo, wishlistRepo, s.notifications)
	s.friendships = service.NewFriendshipService(db, friendshipRepo, userRepo, s.notifications)
}

// TearDownSuite runs after all tests in the suite
func (s *ServiceIntegrationSuite) TearDownSuite() {
	s.base.TeardownTestSuite()
}

// SetupTest runs before each test
func (s *ServiceIntegrationSuite) SetupTest() {
	s.base.SetupTest()
}

// TearDownTest runs after each test
func (s *ServiceIntegrationSuite) TearDownTest() {
	s.base.TearDownTest()
}

func (s *ServiceIntegrationSuite) createUser(name string) *models.User {
	user := s.factories.User.WithName(name)
	s.Require().NoError(s.base.DB.Create(user).Error)
	return user
}

func (s *ServiceIntegrationSuite) befriend(a, b *models.User) {
	friendship := s.factories.Friendship.Accepted(a.ID, b.ID)
	s.Require().NoError(s.base.DB.Create(friendship).Error)
}

// createListWithItem seeds a friends-visible wishlist with one item
func (s *ServiceIntegrationSuite) createListWithItem(owner *models.User) (*models.Wishlist, *models.WishlistItem) {
	wishlist := s.factories.Wishlist.Create(owner.ID)
	s.Require().NoError(s.base.DB.Create(wishlist).Error)
	item := s.factories.Item.Create(wishlist.ID)
	s.Require().NoError(s.base.DB.Create(item).Error)
	return wishlist, item
}

func (s *ServiceIntegrationSuite) inboxFor(userID uuid.UUID) []models.Notification {
	notifications, _, err := s.notificationRepo.GetByRecipient(userID, models.NotificationStatusInbox, 100, 0)
	s.Require().NoError(err)
	return notifications
}

// inboxTypesFor returns the notification types in the user's inbox as strings,
// newest first
func (s *ServiceIntegrationSuite) inboxTypesFor(userID uuid.UUID) []string {
	notifications := s.inboxFor(userID)
	types := make([]string, 0, len(notifications))
	for _, n := range notifications {
		types = append(types, string(n.Type))
	}
	return types
}

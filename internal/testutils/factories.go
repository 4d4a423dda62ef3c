package testutils

import (
	"fmt"
	"time"

	"wishlist-backend/internal/database/models"

	"github.com/google/uuid"
)

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test User with default values and a unique email
func (f *UserFactory) Create() *models.User {
	id := uuid.New()
	return &models.User{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		DisplayName: "Test User",
		Email:       fmt.Sprintf("user-%s@test.com", id.String()[:8]),
	}
}

// WithName sets a custom display name
func (f *UserFactory) WithName(name string) *models.User {
	user := f.Create()
	user.DisplayName = name
	return user
}

// WithBirthday sets the birthday
func (f *UserFactory) WithBirthday(birthday time.Time) *models.User {
	user := f.Create()
	user.Birthday = &birthday
	return user
}

// FriendshipFactory provides methods to create test Friendship data
type FriendshipFactory struct{}

// NewFriendshipFactory creates a new FriendshipFactory
func NewFriendshipFactory() *FriendshipFactory {
	return &FriendshipFactory{}
}

// Accepted creates an accepted friendship between two users
func (f *FriendshipFactory) Accepted(requesterID, addresseeID uuid.UUID) *models.Friendship {
	return &models.Friendship{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		RequesterID: requesterID,
		AddresseeID: addresseeID,
		Status:      models.FriendshipStatusAccepted,
	}
}

// Pending creates a pending friend request
func (f *FriendshipFactory) Pending(requesterID, addresseeID uuid.UUID) *models.Friendship {
	friendship := f.Accepted(requesterID, addresseeID)
	friendship.Status = models.FriendshipStatusPending
	return friendship
}

// WishlistFactory provides methods to create test Wishlist data
type WishlistFactory struct{}

// NewWishlistFactory creates a new WishlistFactory
func NewWishlistFactory() *WishlistFactory {
	return &WishlistFactory{}
}

// Create creates a friends-visible wishlist for the given owner
func (f *WishlistFactory) Create(ownerID uuid.UUID) *models.Wishlist {
	return &models.Wishlist{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		OwnerID: ownerID,
		Title:   "Test Wishlist",
		Privacy: models.WishlistPrivacyFriends,
	}
}

// WithPrivacy sets the privacy level
func (f *WishlistFactory) WithPrivacy(ownerID uuid.UUID, privacy models.WishlistPrivacy) *models.Wishlist {
	wishlist := f.Create(ownerID)
	wishlist.Privacy = privacy
	return wishlist
}

// ItemFactory provides methods to create test WishlistItem data
type ItemFactory struct{}

// NewItemFactory creates a new ItemFactory
func NewItemFactory() *ItemFactory {
	return &ItemFactory{}
}

// Create creates a test item on the given wishlist
func (f *ItemFactory) Create(wishlistID uuid.UUID) *models.WishlistItem {
	return &models.WishlistItem{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		WishlistID: wishlistID,
		Title:      "Test Item",
	}
}

// WithTitle sets a custom item title
func (f *ItemFactory) WithTitle(wishlistID uuid.UUID, title string) *models.WishlistItem {
	item := f.Create(wishlistID)
	item.Title = title
	return item
}

// SoloClaimFactory provides methods to create test SoloClaim data
type SoloClaimFactory struct{}

// NewSoloClaimFactory creates a new SoloClaimFactory
func NewSoloClaimFactory() *SoloClaimFactory {
	return &SoloClaimFactory{}
}

// Active creates an active solo claim
func (f *SoloClaimFactory) Active(itemID, claimerID uuid.UUID) *models.SoloClaim {
	return &models.SoloClaim{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		ItemID:    itemID,
		ClaimerID: claimerID,
		Status:    models.SoloClaimStatusActive,
	}
}

// SplitClaimFactory provides methods to create test SplitClaim data
type SplitClaimFactory struct{}

// NewSplitClaimFactory creates a new SplitClaimFactory
func NewSplitClaimFactory() *SplitClaimFactory {
	return &SplitClaimFactory{}
}

// Pending creates a pending split claim
func (f *SplitClaimFactory) Pending(itemID, initiatorID uuid.UUID, target int) *models.SplitClaim {
	return &models.SplitClaim{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		ItemID:             itemID,
		InitiatorID:        initiatorID,
		TargetParticipants: target,
		Status:             models.SplitClaimStatusPending,
	}
}

// Participant creates a participant row for a split claim
func (f *SplitClaimFactory) Participant(splitClaimID, userID uuid.UUID) *models.SplitClaimParticipant {
	return &models.SplitClaimParticipant{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		SplitClaimID: splitClaimID,
		UserID:       userID,
	}
}

// FactorySet provides access to all factories
type FactorySet struct {
	User       *UserFactory
	Friendship *FriendshipFactory
	Wishlist   *WishlistFactory
	Item       *ItemFactory
	SoloClaim  *SoloClaimFactory
	SplitClaim *SplitClaimFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		User:       NewUserFactory(),
		Friendship: NewFriendshipFactory(),
		Wishlist:   NewWishlistFactory(),
		Item:       NewItemFactory(),
		SoloClaim:  NewSoloClaimFactory(),
		SplitClaim: NewSplitClaimFactory(),
	}
}

// CreateFriendPair creates two users with an accepted friendship between them
func (fs *FactorySet) CreateFriendPair() (*models.User, *models.User, *models.Friendship) {
	owner := fs.User.WithName("Owner")
	friend := fs.User.WithName("Friend")
	friendship := fs.Friendship.Accepted(owner.ID, friend.ID)
	return owner, friend, friendship
}

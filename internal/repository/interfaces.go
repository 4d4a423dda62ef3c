package repository

import (
	"time"

	"wishlist-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -destination=../mocks/repository_mocks.go -package=mocks wishlist-backend/internal/repository WishlistRepositoryInterface,ItemRepositoryInterface,FriendshipRepositoryInterface

// UserRepositoryInterface defines the interface for user repository operations
type UserRepositoryInterface interface {
	WithTx(tx *gorm.DB) UserRepositoryInterface
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetByIDs(ids []uuid.UUID) ([]models.User, error)
	GetByBirthday(month time.Month, day int) ([]models.User, error)
	Update(user *models.User) error
}

// FriendshipRepositoryInterface defines the interface for friendship repository operations
type FriendshipRepositoryInterface interface {
	WithTx(tx *gorm.DB) FriendshipRepositoryInterface
	Create(friendship *models.Friendship) error
	GetByID(id uuid.UUID) (*models.Friendship, error)
	GetBetween(userA, userB uuid.UUID) (*models.Friendship, error)
	AreFriends(userA, userB uuid.UUID) (bool, error)
	GetFriendIDs(userID uuid.UUID) ([]uuid.UUID, error)
	Update(friendship *models.Friendship) error
}

// WishlistRepositoryInterface defines the interface for wishlist repository operations
type WishlistRepositoryInterface interface {
	WithTx(tx *gorm.DB) WishlistRepositoryInterface
	Create(wishlist *models.Wishlist) error
	GetByID(id uuid.UUID) (*models.Wishlist, error)
	GetByOwner(ownerID uuid.UUID) ([]models.Wishlist, error)
	IsSharedWith(wishlistID, userID uuid.UUID) (bool, error)
	ReplaceShares(wishlistID uuid.UUID, userIDs []uuid.UUID) error
	Update(wishlist *models.Wishlist) error
}

// ItemRepositoryInterface defines the interface for wishlist item repository operations
type ItemRepositoryInterface interface {
	WithTx(tx *gorm.DB) ItemRepositoryInterface
	Create(item *models.WishlistItem) error
	GetByID(id uuid.UUID) (*models.WishlistItem, error)
	GetByIDForUpdate(id uuid.UUID) (*models.WishlistItem, error)
	GetByWishlist(wishlistID uuid.UUID) ([]models.WishlistItem, error)
	Update(item *models.WishlistItem) error
	Delete(id uuid.UUID) error
}

// SoloClaimRepositoryInterface defines the interface for solo claim repository operations
type SoloClaimRepositoryInterface interface {
	WithTx(tx *gorm.DB) SoloClaimRepositoryInterface
	Create(claim *models.SoloClaim) error
	GetByID(id uuid.UUID) (*models.SoloClaim, error)
	FindActiveByItem(itemID uuid.UUID) (*models.SoloClaim, error)
	GetByItem(itemID uuid.UUID) ([]models.SoloClaim, error)
	GetByClaimer(claimerID uuid.UUID) ([]models.SoloClaim, error)
	Update(claim *models.SoloClaim) error
	CancelActiveByItem(itemID uuid.UUID) (int64, error)
}

// SplitClaimRepositoryInterface defines the interface for split claim repository operations
type SplitClaimRepositoryInterface interface {
	WithTx(tx *gorm.DB) SplitClaimRepositoryInterface
	Create(claim *models.SplitClaim) error
	GetByID(id uuid.UUID) (*models.SplitClaim, error)
	GetByIDForUpdate(id uuid.UUID) (*models.SplitClaim, error)
	FindActiveByItem(itemID uuid.UUID) (*models.SplitClaim, error)
	AddParticipant(participant *models.SplitClaimParticipant) error
	RemoveParticipant(splitClaimID, userID uuid.UUID) (int64, error)
	CountParticipants(splitClaimID uuid.UUID) (int64, error)
	GetParticipantIDs(splitClaimID uuid.UUID) ([]uuid.UUID, error)
	Update(claim *models.SplitClaim) error
	Delete(id uuid.UUID) error
}

// OwnershipFlagRepositoryInterface defines the interface for ownership flag repository operations
type OwnershipFlagRepositoryInterface interface {
	WithTx(tx *gorm.DB) OwnershipFlagRepositoryInterface
	Create(flag *models.OwnershipFlag) error
	GetByID(id uuid.UUID) (*models.OwnershipFlag, error)
	FindByItem(itemID uuid.UUID) (*models.OwnershipFlag, error)
	Update(flag *models.OwnershipFlag) error
	Delete(id uuid.UUID) error
}

// NotificationRepositoryInterface defines the interface for notification repository operations
type NotificationRepositoryInterface interface {
	WithTx(tx *gorm.DB) NotificationRepositoryInterface
	CreateBatch(notifications []models.Notification) error
	GetByID(id uuid.UUID) (*models.Notification, error)
	GetByRecipient(recipientID uuid.UUID, status models.NotificationStatus, limit, offset int) ([]models.Notification, int64, error)
	UnreadCount(recipientID uuid.UUID) (int64, error)
	ExistsForActorSince(recipientID, actorID uuid.UUID, notificationType models.NotificationType, since time.Time) (bool, error)
	Update(notification *models.Notification) error
	MarkAllRead(recipientID uuid.UUID) error
}

// PushSubscriptionRepositoryInterface defines the interface for push subscription repository operations
type PushSubscriptionRepositoryInterface interface {
	WithTx(tx *gorm.DB) PushSubscriptionRepositoryInterface
	Upsert(subscription *models.PushSubscription) error
	GetByUser(userID uuid.UUID) ([]models.PushSubscription, error)
	DeleteByEndpoint(endpoint string) error
}

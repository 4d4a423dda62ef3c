package service

import (
	"errors"

	"wishlist-backend/internal/database/models"
	apperrors "wishlist-backend/internal/errors"
	"wishlist-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// VisibilityOracle decides whether a viewer may see a wishlist and,
// transitively, its items and claims. It is a pure predicate: no side
// effects, no cache, safe to call inside any transaction.
type VisibilityOracle interface {
	WithTx(tx *gorm.DB) VisibilityOracle
	CanView(wishlistID, viewerID uuid.UUID) (bool, error)
	CanViewItem(itemID, viewerID uuid.UUID) (bool, error)
}

// VisibilityService implements VisibilityOracle against the wishlist and
// friendship repositories. Every check is re-evaluated per call, so a
// friendship removed mid-session revokes visibility on the next request.
type VisibilityService struct {
	wishlistRepo   repository.WishlistRepositoryInterface
	itemRepo       repository.ItemRepositoryInterface
	friendshipRepo repository.FriendshipRepositoryInterface
}

// Ensure VisibilityService implements VisibilityOracle
var _ VisibilityOracle = (*VisibilityService)(nil)

// NewVisibilityService creates a new visibility service
func NewVisibilityService(wishlistRepo repository.WishlistRepositoryInterface, itemRepo repository.ItemRepositoryInterface, friendshipRepo repository.FriendshipRepositoryInterface) *VisibilityService {
	return &VisibilityService{
		wishlistRepo:   wishlistRepo,
		itemRepo:       itemRepo,
		friendshipRepo: friendshipRepo,
	}
}

// WithTx returns a copy of the service bound to the given transaction
func (s *VisibilityService) WithTx(tx *gorm.DB) VisibilityOracle {
	return &VisibilityService{
		wishlistRepo:   s.wishlistRepo.WithTx(tx),
		itemRepo:       s.itemRepo.WithTx(tx),
		friendshipRepo: s.friendshipRepo.WithTx(tx),
	}
}

// CanView reports whether the viewer may see the wishlist.
// Owners always pass; private lists admit nobody else; selected_friends
// requires both an accepted friendship and an allowlist entry. Unrecognized
// privacy values fall back to the friends rule so that a legacy value opens
// the list to friends rather than silently hiding it.
func (s *VisibilityService) CanView(wishlistID, viewerID uuid.UUID) (bool, error) {
	wishlist, err := s.wishlistRepo.GetByID(wishlistID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, apperrors.ErrWishlistNotFound
		}
		return false, err
	}

	if wishlist.OwnerID == viewerID {
		return true, nil
	}

	switch wishlist.Privacy {
	case models.WishlistPrivacyPrivate:
		return false, nil
	case models.WishlistPrivacySelectedFriends:
		friends, err := s.friendshipRepo.AreFriends(wishlist.OwnerID, viewerID)
		if err != nil {
			return false, err
		}
		if !friends {
			return false, nil
		}
		return s.wishlistRepo.IsSharedWith(wishlistID, viewerID)
	default:
		// friends, plus any unrecognized legacy value
		return s.friendshipRepo.AreFriends(wishlist.OwnerID, viewerID)
	}
}

// CanViewItem resolves the item's wishlist and applies CanView
func (s *VisibilityService) CanViewItem(itemID, viewerID uuid.UUID) (bool, error) {
	item, err := s.itemRepo.GetByID(itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, apperrors.ErrItemNotFound
		}
		return false, err
	}
	return s.CanView(item.WishlistID, viewerID)
}

package repository

import (
	"wishlist-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WishlistRepository handles database operations for wishlists and their
// selected-friends allowlist
type WishlistRepository struct {
	db *gorm.DB
}

// Ensure WishlistRepository implements WishlistRepositoryInterface
var _ WishlistRepositoryInterface = (*WishlistRepository)(nil)

// NewWishlistRepository creates a new wishlist repository
func NewWishlistRepository(db *gorm.DB) *WishlistRepository {
	return &WishlistRepository{db: db}
}

// WithTx returns a copy of the repository bound to the given transaction
func (r *WishlistRepository) WithTx(tx *gorm.DB) WishlistRepositoryInterface {
	return &WishlistRepository{db: tx}
}

// Create inserts a new wishlist
func (r *WishlistRepository) Create(wishlist *models.Wishlist) error {
	return r.db.Create(wishlist).Error
}

// GetByID retrieves a wishlist by ID
func (r *WishlistRepository) GetByID(id uuid.UUID) (*models.Wishlist, error) {
	var wishlist models.Wishlist
	if err := r.db.First(&wishlist, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &wishlist, nil
}

// GetByOwner retrieves all wishlists owned by the given user
func (r *WishlistRepository) GetByOwner(ownerID uuid.UUID) ([]models.Wishlist, error) {
	var wishlists []models.Wishlist
	if err := r.db.Where("owner_id = ?", ownerID).Order("created_at ASC").Find(&wishlists).Error; err != nil {
		return nil, err
	}
	return wishlists, nil
}

// IsSharedWith reports whether the wishlist's allowlist contains the user
func (r *WishlistRepository) IsSharedWith(wishlistID, userID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.Model(&models.WishlistShare{}).
		Where("wishlist_id = ? AND user_id = ?", wishlistID, userID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// ReplaceShares replaces the wishlist's allowlist with the given user ids
func (r *WishlistRepository) ReplaceShares(wishlistID uuid.UUID, userIDs []uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("wishlist_id = ?", wishlistID).Delete(&models.WishlistShare{}).Error; err != nil {
			return err
		}
		for _, userID := range userIDs {
			share := models.WishlistShare{WishlistID: wishlistID, UserID: userID}
			if err := tx.Create(&share).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// Update saves changes to a wishlist
func (r *WishlistRepository) Update(wishlist *models.Wishlist) error {
	return r.db.Save(wishlist).Error
}

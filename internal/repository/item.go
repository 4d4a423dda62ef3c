package repository

import (
	"wishlist-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ItemRepository handles database operations for wishlist items
type ItemRepository struct {
	db *gorm.DB
}

// Ensure ItemRepository implements ItemRepositoryInterface
var _ ItemRepositoryInterface = (*ItemRepository)(nil)

// NewItemRepository creates a new wishlist item repository
func NewItemRepository(db *gorm.DB) *ItemRepository {
	return &ItemRepository{db: db}
}

// WithTx returns a copy of the repository bound to the given transaction
func (r *ItemRepository) WithTx(tx *gorm.DB) ItemRepositoryInterface {
	return &ItemRepository{db: tx}
}

// Create inserts a new wishlist item
func (r *ItemRepository) Create(item *models.WishlistItem) error {
	return r.db.Create(item).Error
}

// GetByID retrieves a wishlist item by ID
func (r *ItemRepository) GetByID(id uuid.UUID) (*models.WishlistItem, error) {
	var item models.WishlistItem
	if err := r.db.First(&item, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// GetByIDForUpdate retrieves a wishlist item by ID with a row lock. Claim
// creation locks the item so concurrent claims on it serialize; must run
// inside a transaction.
func (r *ItemRepository) GetByIDForUpdate(id uuid.UUID) (*models.WishlistItem, error) {
	var item models.WishlistItem
	if err := r.db.Clauses(clause.Locking{Strength: "UPDATE"}).First(&item, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// GetByWishlist retrieves all items on a wishlist
func (r *ItemRepository) GetByWishlist(wishlistID uuid.UUID) ([]models.WishlistItem, error) {
	var items []models.WishlistItem
	if err := r.db.Where("wishlist_id = ?", wishlistID).Order("created_at ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// Update saves changes to a wishlist item
func (r *ItemRepository) Update(item *models.WishlistItem) error {
	return r.db.Save(item).Error
}

// Delete removes a wishlist item by ID
func (r *ItemRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.WishlistItem{}, "id = ?", id).Error
}

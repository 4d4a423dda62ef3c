package repository

import (
	"errors"

	"wishlist-backend/internal/database/models"
	apperrors "wishlist-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OwnershipFlagRepository handles database operations for ownership flags.
// The whole-table unique index on item_id allows one flag lifecycle per item.
type OwnershipFlagRepository struct {
	db *gorm.DB
}

// Ensure OwnershipFlagRepository implements OwnershipFlagRepositoryInterface
var _ OwnershipFlagRepositoryInterface = (*OwnershipFlagRepository)(nil)

// NewOwnershipFlagRepository creates a new ownership flag repository
func NewOwnershipFlagRepository(db *gorm.DB) *OwnershipFlagRepository {
	return &OwnershipFlagRepository{db: db}
}

// WithTx returns a copy of the repository bound to the given transaction
func (r *OwnershipFlagRepository) WithTx(tx *gorm.DB) OwnershipFlagRepositoryInterface {
	return &OwnershipFlagRepository{db: tx}
}

// Create inserts a new ownership flag
func (r *OwnershipFlagRepository) Create(flag *models.OwnershipFlag) error {
	if err := r.db.Create(flag).Error; err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrFlagExists
		}
		return err
	}
	return nil
}

// GetByID retrieves an ownership flag by ID
func (r *OwnershipFlagRepository) GetByID(id uuid.UUID) (*models.OwnershipFlag, error) {
	var flag models.OwnershipFlag
	if err := r.db.First(&flag, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &flag, nil
}

// FindByItem retrieves the flag for an item, or nil when none exists
func (r *OwnershipFlagRepository) FindByItem(itemID uuid.UUID) (*models.OwnershipFlag, error) {
	var flag models.OwnershipFlag
	err := r.db.First(&flag, "item_id = ?", itemID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &flag, nil
}

// Update saves changes to an ownership flag
func (r *OwnershipFlagRepository) Update(flag *models.OwnershipFlag) error {
	return r.db.Save(flag).Error
}

// Delete removes an ownership flag by ID
func (r *OwnershipFlagRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.OwnershipFlag{}, "id = ?", id).Error
}

package repository

import (
	"errors"

	"wishlist-backend/internal/database/models"
	apperrors "wishlist-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SoloClaimRepository handles database operations for solo claims. The
// partial unique index idx_solo_claims_one_active backs the at-most-one-active
// invariant; Create translates its violation into ErrItemAlreadyClaimed.
type SoloClaimRepository struct {
	db *gorm.DB
}

// Ensure SoloClaimRepository implements SoloClaimRepositoryInterface
var _ SoloClaimRepositoryInterface = (*SoloClaimRepository)(nil)

// NewSoloClaimRepository creates a new solo claim repository
func NewSoloClaimRepository(db *gorm.DB) *SoloClaimRepository {
	return &SoloClaimRepository{db: db}
}

// WithTx returns a copy of the repository bound to the given transaction
func (r *SoloClaimRepository) WithTx(tx *gorm.DB) SoloClaimRepositoryInterface {
	return &SoloClaimRepository{db: tx}
}

// Create inserts a new solo claim
func (r *SoloClaimRepository) Create(claim *models.SoloClaim) error {
	if err := r.db.Create(claim).Error; err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrItemAlreadyClaimed
		}
		return err
	}
	return nil
}

// GetByID retrieves a solo claim by ID
func (r *SoloClaimRepository) GetByID(id uuid.UUID) (*models.SoloClaim, error) {
	var claim models.SoloClaim
	if err := r.db.First(&claim, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &claim, nil
}

// FindActiveByItem retrieves the active claim on an item, or nil when none exists
func (r *SoloClaimRepository) FindActiveByItem(itemID uuid.UUID) (*models.SoloClaim, error) {
	var claim models.SoloClaim
	err := r.db.
		Where("item_id = ? AND status = ?", itemID, models.SoloClaimStatusActive).
		First(&claim).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &claim, nil
}

// GetByItem retrieves all claims on an item, including history rows
func (r *SoloClaimRepository) GetByItem(itemID uuid.UUID) ([]models.SoloClaim, error) {
	var claims []models.SoloClaim
	if err := r.db.Where("item_id = ?", itemID).Order("created_at ASC").Find(&claims).Error; err != nil {
		return nil, err
	}
	return claims, nil
}

// GetByClaimer retrieves all claims made by a user
func (r *SoloClaimRepository) GetByClaimer(claimerID uuid.UUID) ([]models.SoloClaim, error) {
	var claims []models.SoloClaim
	if err := r.db.Where("claimer_id = ?", claimerID).Order("created_at DESC").Find(&claims).Error; err != nil {
		return nil, err
	}
	return claims, nil
}

// Update saves changes to a solo claim
func (r *SoloClaimRepository) Update(claim *models.SoloClaim) error {
	return r.db.Save(claim).Error
}

// CancelActiveByItem transitions the active claim on an item to cancelled
// and reports how many rows changed (0 or 1 by invariant)
func (r *SoloClaimRepository) CancelActiveByItem(itemID uuid.UUID) (int64, error) {
	result := r.db.Model(&models.SoloClaim{}).
		Where("item_id = ? AND status = ?", itemID, models.SoloClaimStatusActive).
		Update("status", models.SoloClaimStatusCancelled)
	return result.RowsAffected, result.Error
}

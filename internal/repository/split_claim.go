package repository

import (
	"errors"

	"wishlist-backend/internal/database/models"
	apperrors "wishlist-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SplitClaimRepository handles database operations for split claims and
// their participants. The partial unique index idx_split_claims_one_active
// covers pending and confirmed rows; the participant pair index makes
// re-joining a constraint violation rather than a duplicate row.
type SplitClaimRepository struct {
	db *gorm.DB
}

// Ensure SplitClaimRepository implements SplitClaimRepositoryInterface
var _ SplitClaimRepositoryInterface = (*SplitClaimRepository)(nil)

// NewSplitClaimRepository creates a new split claim repository
func NewSplitClaimRepository(db *gorm.DB) *SplitClaimRepository {
	return &SplitClaimRepository{db: db}
}

// WithTx returns a copy of the repository bound to the given transaction
func (r *SplitClaimRepository) WithTx(tx *gorm.DB) SplitClaimRepositoryInterface {
	return &SplitClaimRepository{db: tx}
}

// Create inserts a new split claim
func (r *SplitClaimRepository) Create(claim *models.SplitClaim) error {
	if err := r.db.Create(claim).Error; err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrItemAlreadyClaimed
		}
		return err
	}
	return nil
}

// GetByID retrieves a split claim by ID with its participants
func (r *SplitClaimRepository) GetByID(id uuid.UUID) (*models.SplitClaim, error) {
	var claim models.SplitClaim
	if err := r.db.Preload("Participants").First(&claim, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &claim, nil
}

// GetByIDForUpdate retrieves a split claim with its participants, taking a
// row lock on the claim. Join and leave serialize on this lock so the
// participant count, the target check and the auto-confirm act on the latest
// committed state; must run inside a transaction.
func (r *SplitClaimRepository) GetByIDForUpdate(id uuid.UUID) (*models.SplitClaim, error) {
	var claim models.SplitClaim
	if err := r.db.Clauses(clause.Locking{Strength: "UPDATE"}).First(&claim, "id = ?", id).Error; err != nil {
		return nil, err
	}
	if err := r.db.Where("split_claim_id = ?", id).Order("created_at ASC").Find(&claim.Participants).Error; err != nil {
		return nil, err
	}
	return &claim, nil
}

// FindActiveByItem retrieves the pending or confirmed split claim on an item
// with its participants, or nil when none exists
func (r *SplitClaimRepository) FindActiveByItem(itemID uuid.UUID) (*models.SplitClaim, error) {
	var claim models.SplitClaim
	err := r.db.Preload("Participants").
		Where("item_id = ? AND status IN ?", itemID,
			[]models.SplitClaimStatus{models.SplitClaimStatusPending, models.SplitClaimStatusConfirmed}).
		First(&claim).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &claim, nil
}

// AddParticipant inserts a participant row
func (r *SplitClaimRepository) AddParticipant(participant *models.SplitClaimParticipant) error {
	if err := r.db.Create(participant).Error; err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrAlreadyParticipant
		}
		return err
	}
	return nil
}

// RemoveParticipant deletes a participant row and reports how many rows changed
func (r *SplitClaimRepository) RemoveParticipant(splitClaimID, userID uuid.UUID) (int64, error) {
	result := r.db.
		Where("split_claim_id = ? AND user_id = ?", splitClaimID, userID).
		Delete(&models.SplitClaimParticipant{})
	return result.RowsAffected, result.Error
}

// CountParticipants returns the current participant count of a split claim
func (r *SplitClaimRepository) CountParticipants(splitClaimID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.SplitClaimParticipant{}).
		Where("split_claim_id = ?", splitClaimID).
		Count(&count).Error
	return count, err
}

// GetParticipantIDs returns the user ids of all current participants
func (r *SplitClaimRepository) GetParticipantIDs(splitClaimID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.db.Model(&models.SplitClaimParticipant{}).
		Where("split_claim_id = ?", splitClaimID).
		Order("created_at ASC").
		Pluck("user_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

// Update saves changes to a split claim
func (r *SplitClaimRepository) Update(claim *models.SplitClaim) error {
	return r.db.Save(claim).Error
}

// Delete removes a split claim; participant rows cascade with it
func (r *SplitClaimRepository) Delete(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("split_claim_id = ?", id).Delete(&models.SplitClaimParticipant{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.SplitClaim{}, "id = ?", id).Error
	})
}

package service

import (
	"errors"
	"fmt"

	"wishlist-backend/internal/database/models"
	apperrors "wishlist-backend/internal/errors"
	"wishlist-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ClaimService manages solo claims. Creation locks the item row, so
// concurrent solo and split attempts on the same item serialize and the loser
// sees the winner's committed claim; the partial unique index remains the
// backstop within each claim type.
type ClaimService struct {
	db            *gorm.DB
	soloClaimRepo repository.SoloClaimRepositoryInterface
	splitRepo     repository.SplitClaimRepositoryInterface
	itemRepo      repository.ItemRepositoryInterface
	wishlistRepo  repository.WishlistRepositoryInterface
	visibility    VisibilityOracle
}

// NewClaimService creates a new claim service
func NewClaimService(db *gorm.DB, soloClaimRepo repository.SoloClaimRepositoryInterface, splitRepo repository.SplitClaimRepositoryInterface, itemRepo repository.ItemRepositoryInterface, wishlistRepo repository.WishlistRepositoryInterface, visibility VisibilityOracle) *ClaimService {
	return &ClaimService{
		db:            db,
		soloClaimRepo: soloClaimRepo,
		splitRepo:     splitRepo,
		itemRepo:      itemRepo,
		wishlistRepo:  wishlistRepo,
		visibility:    visibility,
	}
}

// ClaimResponse represents a solo claim in API responses
type ClaimResponse struct {
	ID          uuid.UUID `json:"id"`
	ItemID      uuid.UUID `json:"item_id"`
	ClaimerID   uuid.UUID `json:"claimer_id"`
	Status      string    `json:"status"`
	FulfilledAt *string   `json:"fulfilled_at,omitempty"`
	CreatedAt   string    `json:"created_at"`
}

// CreateSoloClaim claims an item exclusively for the given user.
// Claiming your own item is Conflict, an invisible wishlist is Forbidden,
// and an existing active solo or split claim is Conflict.
func (s *ClaimService) CreateSoloClaim(itemID, claimerID uuid.UUID) (*ClaimResponse, error) {
	var claim *models.SoloClaim

	err := s.db.Transaction(func(tx *gorm.DB) error {
		item, wishlist, err := loadItemWithWishlistForUpdate(tx, s.itemRepo, s.wishlistRepo, itemID)
		if err != nil {
			return err
		}

		if wishlist.OwnerID == claimerID {
			return apperrors.ErrOwnItemClaim
		}

		visible, err := s.visibility.WithTx(tx).CanView(wishlist.ID, claimerID)
		if err != nil {
			return err
		}
		if !visible {
			return apperrors.ErrWishlistNotVisible
		}

		if err := ensureItemUnclaimed(tx, s.soloClaimRepo, s.splitRepo, item.ID); err != nil {
			return err
		}

		claim = &models.SoloClaim{
			ItemID:    item.ID,
			ClaimerID: claimerID,
			Status:    models.SoloClaimStatusActive,
		}
		return s.soloClaimRepo.WithTx(tx).Create(claim)
	})
	if err != nil {
		return nil, err
	}

	response := toClaimResponse(claim)
	return &response, nil
}

// CancelSoloClaim transitions the caller's active claim to cancelled.
// The row is retained so fulfilled/cancelled history stays queryable and the
// item becomes claimable again.
func (s *ClaimService) CancelSoloClaim(claimID, callerID uuid.UUID) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		repo := s.soloClaimRepo.WithTx(tx)
		claim, err := repo.GetByID(claimID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrSoloClaimNotFound
			}
			return fmt.Errorf("failed to get claim: %w", err)
		}

		if claim.ClaimerID != callerID {
			return apperrors.ErrNotClaimer
		}
		if claim.Status != models.SoloClaimStatusActive {
			return apperrors.ErrClaimNotActive
		}

		claim.Status = models.SoloClaimStatusCancelled
		return repo.Update(claim)
	})
}

// GetClaimsByUser returns the caller's claim history, newest first
func (s *ClaimService) GetClaimsByUser(userID uuid.UUID) ([]ClaimResponse, error) {
	claims, err := s.soloClaimRepo.GetByClaimer(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get claims: %w", err)
	}
	responses := make([]ClaimResponse, 0, len(claims))
	for i := range claims {
		responses = append(responses, toClaimResponse(&claims[i]))
	}
	return responses, nil
}

// ensureItemUnclaimed fails with Conflict when the item already carries an
// active solo claim or a pending/confirmed split claim. Solo and split claims
// are mutually exclusive at creation time; both creation paths share this
// check and both hold the item row lock while it runs, so the two claim
// tables cannot gain active rows for the same item in parallel.
func ensureItemUnclaimed(tx *gorm.DB, soloRepo repository.SoloClaimRepositoryInterface, splitRepo repository.SplitClaimRepositoryInterface, itemID uuid.UUID) error {
	solo, err := soloRepo.WithTx(tx).FindActiveByItem(itemID)
	if err != nil {
		return err
	}
	if solo != nil {
		return apperrors.ErrItemAlreadyClaimed
	}

	split, err := splitRepo.WithTx(tx).FindActiveByItem(itemID)
	if err != nil {
		return err
	}
	if split != nil {
		return apperrors.ErrItemAlreadyClaimed
	}
	return nil
}

// loadItemWithWishlist resolves an item and its wishlist inside a transaction
func loadItemWithWishlist(tx *gorm.DB, itemRepo repository.ItemRepositoryInterface, wishlistRepo repository.WishlistRepositoryInterface, itemID uuid.UUID) (*models.WishlistItem, *models.Wishlist, error) {
	item, err := itemRepo.WithTx(tx).GetByID(itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, apperrors.ErrItemNotFound
		}
		return nil, nil, fmt.Errorf("failed to get item: %w", err)
	}
	return attachWishlist(tx, wishlistRepo, item)
}

// loadItemWithWishlistForUpdate is loadItemWithWishlist with a row lock on
// the item. Claim creation takes it so the unclaimed check and the insert
// run serialized per item across both claim types.
func loadItemWithWishlistForUpdate(tx *gorm.DB, itemRepo repository.ItemRepositoryInterface, wishlistRepo repository.WishlistRepositoryInterface, itemID uuid.UUID) (*models.WishlistItem, *models.Wishlist, error) {
	item, err := itemRepo.WithTx(tx).GetByIDForUpdate(itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, apperrors.ErrItemNotFound
		}
		return nil, nil, fmt.Errorf("failed to get item: %w", err)
	}
	return attachWishlist(tx, wishlistRepo, item)
}

func attachWishlist(tx *gorm.DB, wishlistRepo repository.WishlistRepositoryInterface, item *models.WishlistItem) (*models.WishlistItem, *models.Wishlist, error) {
	wishlist, err := wishlistRepo.WithTx(tx).GetByID(item.WishlistID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, apperrors.ErrWishlistNotFound
		}
		return nil, nil, fmt.Errorf("failed to get wishlist: %w", err)
	}
	return item, wishlist, nil
}

func toClaimResponse(c *models.SoloClaim) ClaimResponse {
	response := ClaimResponse{
		ID:        c.ID,
		ItemID:    c.ItemID,
		ClaimerID: c.ClaimerID,
		Status:    string(c.Status),
		CreatedAt: c.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
	if c.FulfilledAt != nil {
		fulfilled := c.FulfilledAt.Format("2006-01-02T15:04:05Z07:00")
		response.FulfilledAt = &fulfilled
	}
	return response
}

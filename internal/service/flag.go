package service

import (
	"errors"
	"fmt"
	"time"

	"wishlist-backend/internal/database/models"
	apperrors "wishlist-backend/internal/errors"
	"wishlist-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FlagService handles ownership flags: a friend asserting that the wishlist
// owner already has the item. Only the owner can resolve a flag, and
// confirming one releases every claim on the item.
type FlagService struct {
	db            *gorm.DB
	flagRepo      repository.OwnershipFlagRepositoryInterface
	soloClaimRepo repository.SoloClaimRepositoryInterface
	splitRepo     repository.SplitClaimRepositoryInterface
	itemRepo      repository.ItemRepositoryInterface
	wishlistRepo  repository.WishlistRepositoryInterface
	visibility    VisibilityOracle
	notifier      *NotificationService
}

// NewFlagService creates a new ownership flag service
func NewFlagService(db *gorm.DB, flagRepo repository.OwnershipFlagRepositoryInterface, soloClaimRepo repository.SoloClaimRepositoryInterface, splitRepo repository.SplitClaimRepositoryInterface, itemRepo repository.ItemRepositoryInterface, wishlistRepo repository.WishlistRepositoryInterface, visibility VisibilityOracle, notifier *NotificationService) *FlagService {
	return &FlagService{
		db:            db,
		flagRepo:      flagRepo,
		soloClaimRepo: soloClaimRepo,
		splitRepo:     splitRepo,
		itemRepo:      itemRepo,
		wishlistRepo:  wishlistRepo,
		visibility:    visibility,
		notifier:      notifier,
	}
}

// FlagResponse represents an ownership flag in API responses
type FlagResponse struct {
	ID         uuid.UUID `json:"id"`
	ItemID     uuid.UUID `json:"item_id"`
	FlaggerID  uuid.UUID `json:"flagger_id"`
	Status     string    `json:"status"`
	ResolvedAt *string   `json:"resolved_at,omitempty"`
	CreatedAt  string    `json:"created_at"`
}

// FlagDecisionRequest carries the owner's verdict on a pending flag
type FlagDecisionRequest struct {
	Decision string `json:"decision" validate:"required,oneof=confirmed denied"`
}

// CreateFlag raises an ownership flag on an item and notifies the owner.
// One flag per item, ever: a denied flag stays on record and blocks
// re-flagging, so the owner answers the question at most once.
func (s *FlagService) CreateFlag(itemID, flaggerID uuid.UUID) (*FlagResponse, error) {
	var flag *models.OwnershipFlag
	var batch []models.Notification

	err := s.db.Transaction(func(tx *gorm.DB) error {
		item, wishlist, err := loadItemWithWishlist(tx, s.itemRepo, s.wishlistRepo, itemID)
		if err != nil {
			return err
		}

		if wishlist.OwnerID == flaggerID {
			return apperrors.ErrOwnItemFlag
		}

		visible, err := s.visibility.WithTx(tx).CanView(wishlist.ID, flaggerID)
		if err != nil {
			return err
		}
		if !visible {
			return apperrors.ErrWishlistNotVisible
		}

		existing, err := s.flagRepo.WithTx(tx).FindByItem(item.ID)
		if err != nil {
			return err
		}
		if existing != nil {
			return apperrors.ErrFlagExists
		}

		flag = &models.OwnershipFlag{
			ItemID:    item.ID,
			FlaggerID: flaggerID,
			Status:    models.OwnershipFlagStatusPending,
		}
		if err := s.flagRepo.WithTx(tx).Create(flag); err != nil {
			return err
		}

		batch = s.notifier.BuildBatch(tx, models.NotificationTypeFlagCreated, flaggerID,
			[]uuid.UUID{wishlist.OwnerID}, flagRefs(wishlist, item, flag))
		return s.notifier.EnqueueTx(tx, batch)
	})
	if err != nil {
		return nil, err
	}

	s.notifier.DeliverAfterCommit(batch)
	response := toFlagResponse(flag)
	return &response, nil
}

// ResolveFlag records the owner's verdict on a pending flag. Confirming
// releases the item's active claims in the same transaction: an active solo
// claim is cancelled, an active split is dissolved and its participants are
// told. Either way the flagger learns the outcome.
func (s *FlagService) ResolveFlag(flagID, ownerID uuid.UUID, decision string) (*FlagResponse, error) {
	if decision != string(models.OwnershipFlagStatusConfirmed) && decision != string(models.OwnershipFlagStatusDenied) {
		return nil, apperrors.ErrInvalidFlagDecision
	}

	var flag *models.OwnershipFlag
	var batch []models.Notification

	err := s.db.Transaction(func(tx *gorm.DB) error {
		flagRepo := s.flagRepo.WithTx(tx)

		var err error
		flag, err = flagRepo.GetByID(flagID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrFlagNotFound
			}
			return fmt.Errorf("failed to get flag: %w", err)
		}
		if flag.Status != models.OwnershipFlagStatusPending {
			return apperrors.ErrFlagResolved
		}

		item, wishlist, err := loadItemWithWishlist(tx, s.itemRepo, s.wishlistRepo, flag.ItemID)
		if err != nil {
			return err
		}
		if wishlist.OwnerID != ownerID {
			return apperrors.ErrNotOwner
		}

		refs := flagRefs(wishlist, item, flag)

		now := time.Now()
		flag.Status = models.OwnershipFlagStatus(decision)
		flag.ResolvedAt = &now
		if err := flagRepo.Update(flag); err != nil {
			return err
		}

		if flag.Status == models.OwnershipFlagStatusConfirmed {
			if _, err := s.soloClaimRepo.WithTx(tx).CancelActiveByItem(item.ID); err != nil {
				return err
			}

			split, err := s.splitRepo.WithTx(tx).FindActiveByItem(item.ID)
			if err != nil {
				return err
			}
			if split != nil {
				participantIDs, err := s.splitRepo.WithTx(tx).GetParticipantIDs(split.ID)
				if err != nil {
					return err
				}
				if err := s.splitRepo.WithTx(tx).Delete(split.ID); err != nil {
					return err
				}
				cancelRefs := refs
				cancelRefs.SplitClaimID = &split.ID
				batch = append(batch, s.notifier.BuildBatch(tx, models.NotificationTypeSplitCancelled,
					ownerID, participantIDs, cancelRefs)...)
			}

			batch = append(batch, s.notifier.BuildBatch(tx, models.NotificationTypeFlagConfirmed,
				ownerID, []uuid.UUID{flag.FlaggerID}, refs)...)
		} else {
			batch = append(batch, s.notifier.BuildBatch(tx, models.NotificationTypeFlagDenied,
				ownerID, []uuid.UUID{flag.FlaggerID}, refs)...)
		}

		return s.notifier.EnqueueTx(tx, batch)
	})
	if err != nil {
		return nil, err
	}

	s.notifier.DeliverAfterCommit(batch)
	response := toFlagResponse(flag)
	return &response, nil
}

// DeleteFlag withdraws a pending flag. Only the flagger can withdraw, and
// resolved flags stay on record.
func (s *FlagService) DeleteFlag(flagID, callerID uuid.UUID) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		flagRepo := s.flagRepo.WithTx(tx)

		flag, err := flagRepo.GetByID(flagID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrFlagNotFound
			}
			return fmt.Errorf("failed to get flag: %w", err)
		}
		if flag.FlaggerID != callerID {
			return apperrors.ErrNotFlagger
		}
		if flag.Status != models.OwnershipFlagStatusPending {
			return apperrors.ErrFlagResolved
		}
		return flagRepo.Delete(flag.ID)
	})
}

func flagRefs(wishlist *models.Wishlist, item *models.WishlistItem, flag *models.OwnershipFlag) EventRefs {
	return EventRefs{
		WishlistID:      &wishlist.ID,
		ItemID:          &item.ID,
		OwnershipFlagID: &flag.ID,
		ItemTitle:       item.Title,
	}
}

func toFlagResponse(flag *models.OwnershipFlag) FlagResponse {
	response := FlagResponse{
		ID:        flag.ID,
		ItemID:    flag.ItemID,
		FlaggerID: flag.FlaggerID,
		Status:    string(flag.Status),
		CreatedAt: flag.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
	if flag.ResolvedAt != nil {
		resolved := flag.ResolvedAt.Format("2006-01-02T15:04:05Z07:00")
		response.ResolvedAt = &resolved
	}
	return response
}

package service

import (
	"time"

	"wishlist-backend/internal/database/models"
	apperrors "wishlist-backend/internal/errors"
	"wishlist-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FulfillmentService closes the gift loop. The owner marking an item as
// received is the only way claims reach the fulfilled state, and it is the
// one moment the claim anonymity wall comes down: the givers are told their
// gift arrived, though the owner still never learns who they were.
type FulfillmentService struct {
	db            *gorm.DB
	soloClaimRepo repository.SoloClaimRepositoryInterface
	splitRepo     repository.SplitClaimRepositoryInterface
	itemRepo      repository.ItemRepositoryInterface
	wishlistRepo  repository.WishlistRepositoryInterface
	notifier      *NotificationService
}

// NewFulfillmentService creates a new fulfillment service
func NewFulfillmentService(db *gorm.DB, soloClaimRepo repository.SoloClaimRepositoryInterface, splitRepo repository.SplitClaimRepositoryInterface, itemRepo repository.ItemRepositoryInterface, wishlistRepo repository.WishlistRepositoryInterface, notifier *NotificationService) *FulfillmentService {
	return &FulfillmentService{
		db:            db,
		soloClaimRepo: soloClaimRepo,
		splitRepo:     splitRepo,
		itemRepo:      itemRepo,
		wishlistRepo:  wishlistRepo,
		notifier:      notifier,
	}
}

// MarkItemReceived records that the owner got the item. Any active solo or
// split claim on it transitions to fulfilled in the same transaction and the
// givers are notified. Items without a claim are simply marked received.
func (s *FulfillmentService) MarkItemReceived(itemID, callerID uuid.UUID) error {
	var batch []models.Notification

	err := s.db.Transaction(func(tx *gorm.DB) error {
		item, wishlist, err := loadItemWithWishlist(tx, s.itemRepo, s.wishlistRepo, itemID)
		if err != nil {
			return err
		}
		if wishlist.OwnerID != callerID {
			return apperrors.ErrNotOwner
		}
		if item.IsReceived {
			return apperrors.ErrItemAlreadyReceived
		}

		now := time.Now()
		item.IsReceived = true
		item.ReceivedAt = &now
		if err := s.itemRepo.WithTx(tx).Update(item); err != nil {
			return err
		}

		refs := EventRefs{
			WishlistID: &wishlist.ID,
			ItemID:     &item.ID,
			ItemTitle:  item.Title,
		}

		solo, err := s.soloClaimRepo.WithTx(tx).FindActiveByItem(item.ID)
		if err != nil {
			return err
		}
		if solo != nil {
			solo.Status = models.SoloClaimStatusFulfilled
			solo.FulfilledAt = &now
			if err := s.soloClaimRepo.WithTx(tx).Update(solo); err != nil {
				return err
			}
			batch = s.notifier.BuildBatch(tx, models.NotificationTypeGiftReceived, callerID,
				[]uuid.UUID{solo.ClaimerID}, refs)
			return s.notifier.EnqueueTx(tx, batch)
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
			split.Status = models.SplitClaimStatusFulfilled
			split.FulfilledAt = &now
			if err := s.splitRepo.WithTx(tx).Update(split); err != nil {
				return err
			}
			refs.SplitClaimID = &split.ID
			batch = s.notifier.BuildBatch(tx, models.NotificationTypeGiftReceived, callerID,
				participantIDs, refs)
			return s.notifier.EnqueueTx(tx, batch)
		}

		return nil
	})
	if err != nil {
		return err
	}

	s.notifier.DeliverAfterCommit(batch)
	return nil
}

// MarkItemPurchased records that the owner bought the item personally. Pure
// owner bookkeeping on the wishlist side; claims are untouched and idempotent
// re-marking is allowed.
func (s *FulfillmentService) MarkItemPurchased(itemID, callerID uuid.UUID) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		item, wishlist, err := loadItemWithWishlist(tx, s.itemRepo, s.wishlistRepo, itemID)
		if err != nil {
			return err
		}
		if wishlist.OwnerID != callerID {
			return apperrors.ErrNotOwner
		}

		if item.IsPurchased {
			return nil
		}
		item.IsPurchased = true
		return s.itemRepo.WithTx(tx).Update(item)
	})
}

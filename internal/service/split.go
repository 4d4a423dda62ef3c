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

// SplitService coordinates split claims: several users jointly committing to
// one item against a target headcount. Reaching the target is confirmation;
// there is no separate confirm action, and the auto-transition happens in the
// same transaction as the participant insert that triggered it.
type SplitService struct {
	db             *gorm.DB
	splitRepo      repository.SplitClaimRepositoryInterface
	soloClaimRepo  repository.SoloClaimRepositoryInterface
	itemRepo       repository.ItemRepositoryInterface
	wishlistRepo   repository.WishlistRepositoryInterface
	friendshipRepo repository.FriendshipRepositoryInterface
	visibility     VisibilityOracle
	notifier       *NotificationService
}

// NewSplitService creates a new split coordination service
func NewSplitService(db *gorm.DB, splitRepo repository.SplitClaimRepositoryInterface, soloClaimRepo repository.SoloClaimRepositoryInterface, itemRepo repository.ItemRepositoryInterface, wishlistRepo repository.WishlistRepositoryInterface, friendshipRepo repository.FriendshipRepositoryInterface, visibility VisibilityOracle, notifier *NotificationService) *SplitService {
	return &SplitService{
		db:             db,
		splitRepo:      splitRepo,
		soloClaimRepo:  soloClaimRepo,
		itemRepo:       itemRepo,
		wishlistRepo:   wishlistRepo,
		friendshipRepo: friendshipRepo,
		visibility:     visibility,
		notifier:       notifier,
	}
}

// SplitResponse represents a split claim in API responses
type SplitResponse struct {
	ID                 uuid.UUID   `json:"id"`
	ItemID             uuid.UUID   `json:"item_id"`
	InitiatorID        uuid.UUID   `json:"initiator_id"`
	TargetParticipants int         `json:"target_participants"`
	Status             string      `json:"status"`
	ParticipantIDs     []uuid.UUID `json:"participant_ids"`
	ConfirmedAt        *string     `json:"confirmed_at,omitempty"`
	CreatedAt          string      `json:"created_at"`
}

// InitiateSplit creates a pending split claim with the initiator as its first
// participant and notifies the initiator's friends (except the wishlist
// owner) so they can join.
func (s *SplitService) InitiateSplit(itemID, initiatorID uuid.UUID, targetParticipants int) (*SplitResponse, error) {
	if targetParticipants < 2 {
		return nil, apperrors.ErrSplitTargetTooSmall
	}

	var split *models.SplitClaim
	var batch []models.Notification

	err := s.db.Transaction(func(tx *gorm.DB) error {
		item, wishlist, err := loadItemWithWishlistForUpdate(tx, s.itemRepo, s.wishlistRepo, itemID)
		if err != nil {
			return err
		}

		if wishlist.OwnerID == initiatorID {
			return apperrors.ErrOwnItemClaim
		}

		visible, err := s.visibility.WithTx(tx).CanView(wishlist.ID, initiatorID)
		if err != nil {
			return err
		}
		if !visible {
			return apperrors.ErrWishlistNotVisible
		}

		if err := ensureItemUnclaimed(tx, s.soloClaimRepo, s.splitRepo, item.ID); err != nil {
			return err
		}

		splitRepo := s.splitRepo.WithTx(tx)
		split = &models.SplitClaim{
			ItemID:             item.ID,
			InitiatorID:        initiatorID,
			TargetParticipants: targetParticipants,
			Status:             models.SplitClaimStatusPending,
		}
		if err := splitRepo.Create(split); err != nil {
			return err
		}

		participant := &models.SplitClaimParticipant{
			SplitClaimID: split.ID,
			UserID:       initiatorID,
		}
		if err := splitRepo.AddParticipant(participant); err != nil {
			return err
		}
		split.Participants = []models.SplitClaimParticipant{*participant}

		friendIDs, err := s.friendshipRepo.WithTx(tx).GetFriendIDs(initiatorID)
		if err != nil {
			return err
		}
		recipients := splitInitiatedRecipients(friendIDs, wishlist.OwnerID, initiatorID)
		batch = s.notifier.BuildBatch(tx, models.NotificationTypeSplitInvite, initiatorID, recipients,
			splitRefs(wishlist, item, split))
		return s.notifier.EnqueueTx(tx, batch)
	})
	if err != nil {
		return nil, err
	}

	s.notifier.DeliverAfterCommit(batch)
	response := toSplitResponse(split)
	return &response, nil
}

// JoinSplit adds a user to a pending split. When the join brings the
// participant count exactly to the target, the split confirms atomically
// with the insert; a join that would overshoot the target is rejected.
func (s *SplitService) JoinSplit(splitClaimID, userID uuid.UUID) (*SplitResponse, error) {
	var split *models.SplitClaim
	var batch []models.Notification

	err := s.db.Transaction(func(tx *gorm.DB) error {
		splitRepo := s.splitRepo.WithTx(tx)

		// Row lock: concurrent joiners queue here and each sees the state
		// the previous one committed, so the count and the status check
		// below cannot act on a stale snapshot
		var err error
		split, err = splitRepo.GetByIDForUpdate(splitClaimID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrSplitClaimNotFound
			}
			return fmt.Errorf("failed to get split claim: %w", err)
		}
		if split.Status != models.SplitClaimStatusPending {
			return apperrors.ErrSplitNotPending
		}

		item, wishlist, err := loadItemWithWishlist(tx, s.itemRepo, s.wishlistRepo, split.ItemID)
		if err != nil {
			return err
		}
		if wishlist.OwnerID == userID {
			return apperrors.ErrOwnItemClaim
		}

		visible, err := s.visibility.WithTx(tx).CanView(wishlist.ID, userID)
		if err != nil {
			return err
		}
		if !visible {
			return apperrors.ErrWishlistNotVisible
		}

		participant := &models.SplitClaimParticipant{
			SplitClaimID: split.ID,
			UserID:       userID,
		}
		if err := splitRepo.AddParticipant(participant); err != nil {
			return err
		}

		count, err := splitRepo.CountParticipants(split.ID)
		if err != nil {
			return err
		}
		if count > int64(split.TargetParticipants) {
			// Unreachable while the row lock holds; kept as a backstop
			return apperrors.ErrSplitFull
		}

		participantIDs, err := splitRepo.GetParticipantIDs(split.ID)
		if err != nil {
			return err
		}

		refs := splitRefs(wishlist, item, split)
		batch = s.notifier.BuildBatch(tx, models.NotificationTypeSplitJoined, userID,
			participantsExcept(participantIDs, userID), refs)

		if count == int64(split.TargetParticipants) {
			now := time.Now()
			split.Status = models.SplitClaimStatusConfirmed
			split.ConfirmedAt = &now
			if err := splitRepo.Update(split); err != nil {
				return err
			}
			// Confirmation goes to every participant, the actor included
			batch = append(batch, s.notifier.BuildBatch(tx, models.NotificationTypeSplitConfirmed,
				userID, participantIDs, refs)...)
		}

		split.Participants = append(split.Participants, *participant)
		return s.notifier.EnqueueTx(tx, batch)
	})
	if err != nil {
		return nil, err
	}

	s.notifier.DeliverAfterCommit(batch)
	response := toSplitResponse(split)
	return &response, nil
}

// LeaveSplit removes a participant from a pending split. The initiator
// leaving cancels the whole split (deletion, participants cascading); anyone
// else leaving only removes their own row, and a pending split simply waits
// for new joiners. Confirmed splits are immutable and cannot be left.
func (s *SplitService) LeaveSplit(splitClaimID, userID uuid.UUID) error {
	var batch []models.Notification

	err := s.db.Transaction(func(tx *gorm.DB) error {
		splitRepo := s.splitRepo.WithTx(tx)

		// Same row lock as JoinSplit; a leave racing a confirming join
		// waits and then sees the confirmed status
		split, err := splitRepo.GetByIDForUpdate(splitClaimID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrSplitClaimNotFound
			}
			return fmt.Errorf("failed to get split claim: %w", err)
		}
		if split.Status != models.SplitClaimStatusPending {
			return apperrors.ErrSplitNotPending
		}

		item, wishlist, err := loadItemWithWishlist(tx, s.itemRepo, s.wishlistRepo, split.ItemID)
		if err != nil {
			return err
		}
		refs := splitRefs(wishlist, item, split)

		// Snapshot membership before any deletion so the recipient set for
		// the leave/cancel notifications still includes everyone affected
		participantIDs, err := splitRepo.GetParticipantIDs(split.ID)
		if err != nil {
			return err
		}

		if split.InitiatorID == userID {
			if err := splitRepo.Delete(split.ID); err != nil {
				return err
			}
			batch = s.notifier.BuildBatch(tx, models.NotificationTypeSplitCancelled, userID,
				participantsExcept(participantIDs, userID), refs)
			return s.notifier.EnqueueTx(tx, batch)
		}

		removed, err := splitRepo.RemoveParticipant(split.ID, userID)
		if err != nil {
			return err
		}
		if removed == 0 {
			return apperrors.ErrNotParticipant
		}

		batch = s.notifier.BuildBatch(tx, models.NotificationTypeSplitLeft, userID,
			participantsExcept(participantIDs, userID), refs)
		return s.notifier.EnqueueTx(tx, batch)
	})
	if err != nil {
		return err
	}

	s.notifier.DeliverAfterCommit(batch)
	return nil
}

// GetSplit returns a split claim with its participants, visibility-gated
func (s *SplitService) GetSplit(splitClaimID, viewerID uuid.UUID) (*SplitResponse, error) {
	split, err := s.splitRepo.GetByID(splitClaimID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSplitClaimNotFound
		}
		return nil, fmt.Errorf("failed to get split claim: %w", err)
	}

	item, err := s.itemRepo.GetByID(split.ItemID)
	if err != nil {
		return nil, fmt.Errorf("failed to get item: %w", err)
	}

	wishlist, err := s.wishlistRepo.GetByID(item.WishlistID)
	if err != nil {
		return nil, fmt.Errorf("failed to get wishlist: %w", err)
	}

	// Recipient blindness: the owner never sees claims on their own items
	if wishlist.OwnerID == viewerID {
		return nil, apperrors.ErrSplitClaimNotFound
	}

	visible, err := s.visibility.CanView(wishlist.ID, viewerID)
	if err != nil {
		return nil, err
	}
	if !visible {
		return nil, apperrors.ErrWishlistNotVisible
	}

	response := toSplitResponse(split)
	return &response, nil
}

func splitRefs(wishlist *models.Wishlist, item *models.WishlistItem, split *models.SplitClaim) EventRefs {
	return EventRefs{
		WishlistID:   &wishlist.ID,
		ItemID:       &item.ID,
		SplitClaimID: &split.ID,
		ItemTitle:    item.Title,
	}
}

func toSplitResponse(split *models.SplitClaim) SplitResponse {
	participantIDs := make([]uuid.UUID, 0, len(split.Participants))
	for _, p := range split.Participants {
		participantIDs = append(participantIDs, p.UserID)
	}

	response := SplitResponse{
		ID:                 split.ID,
		ItemID:             split.ItemID,
		InitiatorID:        split.InitiatorID,
		TargetParticipants: split.TargetParticipants,
		Status:             string(split.Status),
		ParticipantIDs:     participantIDs,
		CreatedAt:          split.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
	if split.ConfirmedAt != nil {
		confirmed := split.ConfirmedAt.Format("2006-01-02T15:04:05Z07:00")
		response.ConfirmedAt = &confirmed
	}
	return response
}

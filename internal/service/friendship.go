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

// FriendshipService manages the friend graph the visibility rules and
// notification fan-out are computed over.
type FriendshipService struct {
	db             *gorm.DB
	friendshipRepo repository.FriendshipRepositoryInterface
	userRepo       repository.UserRepositoryInterface
	notifier       *NotificationService
}

// NewFriendshipService creates a new friendship service
func NewFriendshipService(db *gorm.DB, friendshipRepo repository.FriendshipRepositoryInterface, userRepo repository.UserRepositoryInterface, notifier *NotificationService) *FriendshipService {
	return &FriendshipService{
		db:             db,
		friendshipRepo: friendshipRepo,
		userRepo:       userRepo,
		notifier:       notifier,
	}
}

// FriendshipResponse represents a friendship edge in API responses
type FriendshipResponse struct {
	ID          uuid.UUID `json:"id"`
	RequesterID uuid.UUID `json:"requester_id"`
	AddresseeID uuid.UUID `json:"addressee_id"`
	Status      string    `json:"status"`
	CreatedAt   string    `json:"created_at"`
}

// FriendResponse represents a friend's public profile
type FriendResponse struct {
	ID          uuid.UUID `json:"id"`
	DisplayName string    `json:"display_name"`
	AvatarURL   string    `json:"avatar_url,omitempty"`
}

// SendRequest creates a pending friendship towards another user. Any existing
// edge between the pair, whatever its status or direction, blocks a new one.
func (s *FriendshipService) SendRequest(requesterID, addresseeID uuid.UUID) (*FriendshipResponse, error) {
	if requesterID == addresseeID {
		return nil, apperrors.ErrSelfFriendRequest
	}

	var friendship *models.Friendship
	var batch []models.Notification

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if _, err := s.userRepo.WithTx(tx).GetByID(addresseeID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrUserNotFound
			}
			return fmt.Errorf("failed to get user: %w", err)
		}

		existing, err := s.friendshipRepo.WithTx(tx).GetBetween(requesterID, addresseeID)
		if err != nil {
			return err
		}
		if existing != nil {
			return apperrors.ErrFriendRequestExists
		}

		friendship = &models.Friendship{
			RequesterID: requesterID,
			AddresseeID: addresseeID,
			Status:      models.FriendshipStatusPending,
		}
		if err := s.friendshipRepo.WithTx(tx).Create(friendship); err != nil {
			return err
		}

		batch = s.notifier.BuildBatch(tx, models.NotificationTypeFriendRequest, requesterID,
			[]uuid.UUID{addresseeID}, EventRefs{})
		return s.notifier.EnqueueTx(tx, batch)
	})
	if err != nil {
		return nil, err
	}

	s.notifier.DeliverAfterCommit(batch)
	response := toFriendshipResponse(friendship)
	return &response, nil
}

// Respond lets the addressee accept or decline a pending request. Accepting
// notifies the requester; declining is silent.
func (s *FriendshipService) Respond(friendshipID, callerID uuid.UUID, accept bool) (*FriendshipResponse, error) {
	var friendship *models.Friendship
	var batch []models.Notification

	err := s.db.Transaction(func(tx *gorm.DB) error {
		repo := s.friendshipRepo.WithTx(tx)

		var err error
		friendship, err = repo.GetByID(friendshipID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrFriendshipNotFound
			}
			return fmt.Errorf("failed to get friendship: %w", err)
		}
		if friendship.AddresseeID != callerID {
			return apperrors.ErrNotAddressee
		}
		if friendship.Status != models.FriendshipStatusPending {
			return apperrors.ErrFriendRequestClosed
		}

		if accept {
			friendship.Status = models.FriendshipStatusAccepted
		} else {
			friendship.Status = models.FriendshipStatusDeclined
		}
		if err := repo.Update(friendship); err != nil {
			return err
		}

		if accept {
			batch = s.notifier.BuildBatch(tx, models.NotificationTypeFriendAccepted, callerID,
				[]uuid.UUID{friendship.RequesterID}, EventRefs{})
			return s.notifier.EnqueueTx(tx, batch)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.notifier.DeliverAfterCommit(batch)
	response := toFriendshipResponse(friendship)
	return &response, nil
}

// ListFriends returns the public profiles of the user's accepted friends
func (s *FriendshipService) ListFriends(userID uuid.UUID) ([]FriendResponse, error) {
	friendIDs, err := s.friendshipRepo.GetFriendIDs(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get friend ids: %w", err)
	}
	if len(friendIDs) == 0 {
		return []FriendResponse{}, nil
	}

	users, err := s.userRepo.GetByIDs(friendIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to get friends: %w", err)
	}

	responses := make([]FriendResponse, 0, len(users))
	for i := range users {
		responses = append(responses, FriendResponse{
			ID:          users[i].ID,
			DisplayName: users[i].DisplayName,
			AvatarURL:   users[i].AvatarURL,
		})
	}
	return responses, nil
}

func toFriendshipResponse(f *models.Friendship) FriendshipResponse {
	return FriendshipResponse{
		ID:          f.ID,
		RequesterID: f.RequesterID,
		AddresseeID: f.AddresseeID,
		Status:      string(f.Status),
		CreatedAt:   f.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

package repository

import (
	"errors"

	"wishlist-backend/internal/database/models"
	apperrors "wishlist-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FriendshipRepository handles database operations for friend requests.
// The accepted-edge predicate it exposes is direction-agnostic.
type FriendshipRepository struct {
	db *gorm.DB
}

// Ensure FriendshipRepository implements FriendshipRepositoryInterface
var _ FriendshipRepositoryInterface = (*FriendshipRepository)(nil)

// NewFriendshipRepository creates a new friendship repository
func NewFriendshipRepository(db *gorm.DB) *FriendshipRepository {
	return &FriendshipRepository{db: db}
}

// WithTx returns a copy of the repository bound to the given transaction
func (r *FriendshipRepository) WithTx(tx *gorm.DB) FriendshipRepositoryInterface {
	return &FriendshipRepository{db: tx}
}

// Create inserts a new friend request
func (r *FriendshipRepository) Create(friendship *models.Friendship) error {
	if err := r.db.Create(friendship).Error; err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrFriendRequestExists
		}
		return err
	}
	return nil
}

// GetByID retrieves a friend request by ID
func (r *FriendshipRepository) GetByID(id uuid.UUID) (*models.Friendship, error) {
	var friendship models.Friendship
	if err := r.db.First(&friendship, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &friendship, nil
}

// GetBetween retrieves the edge between two users regardless of direction
// and status. Returns nil without error when no edge exists.
func (r *FriendshipRepository) GetBetween(userA, userB uuid.UUID) (*models.Friendship, error) {
	var friendship models.Friendship
	err := r.db.
		Where("(requester_id = ? AND addressee_id = ?) OR (requester_id = ? AND addressee_id = ?)",
			userA, userB, userB, userA).
		First(&friendship).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &friendship, nil
}

// AreFriends reports whether the two users share an accepted edge
func (r *FriendshipRepository) AreFriends(userA, userB uuid.UUID) (bool, error) {
	var count int64
	err := r.db.Model(&models.Friendship{}).
		Where("status = ?", models.FriendshipStatusAccepted).
		Where("(requester_id = ? AND addressee_id = ?) OR (requester_id = ? AND addressee_id = ?)",
			userA, userB, userB, userA).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// GetFriendIDs returns the ids of all accepted friends of the given user
func (r *FriendshipRepository) GetFriendIDs(userID uuid.UUID) ([]uuid.UUID, error) {
	var friendships []models.Friendship
	err := r.db.
		Where("status = ?", models.FriendshipStatusAccepted).
		Where("requester_id = ? OR addressee_id = ?", userID, userID).
		Find(&friendships).Error
	if err != nil {
		return nil, err
	}

	ids := make([]uuid.UUID, 0, len(friendships))
	for _, f := range friendships {
		if f.RequesterID == userID {
			ids = append(ids, f.AddresseeID)
		} else {
			ids = append(ids, f.RequesterID)
		}
	}
	return ids, nil
}

// Update saves changes to a friend request
func (r *FriendshipRepository) Update(friendship *models.Friendship) error {
	return r.db.Save(friendship).Error
}

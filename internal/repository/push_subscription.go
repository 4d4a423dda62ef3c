package repository

import (
	"wishlist-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PushSubscriptionRepository handles database operations for web push subscriptions
type PushSubscriptionRepository struct {
	db *gorm.DB
}

// Ensure PushSubscriptionRepository implements PushSubscriptionRepositoryInterface
var _ PushSubscriptionRepositoryInterface = (*PushSubscriptionRepository)(nil)

// NewPushSubscriptionRepository creates a new push subscription repository
func NewPushSubscriptionRepository(db *gorm.DB) *PushSubscriptionRepository {
	return &PushSubscriptionRepository{db: db}
}

// WithTx returns a copy of the repository bound to the given transaction
func (r *PushSubscriptionRepository) WithTx(tx *gorm.DB) PushSubscriptionRepositoryInterface {
	return &PushSubscriptionRepository{db: tx}
}

// Upsert inserts a subscription or refreshes its keys when the endpoint is
// already registered (browsers rotate keys on re-subscription)
func (r *PushSubscriptionRepository) Upsert(subscription *models.PushSubscription) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "endpoint"}},
		DoUpdates: clause.AssignmentColumns([]string{"user_id", "p256dh_key", "auth_key", "device_name", "updated_at"}),
	}).Create(subscription).Error
}

// GetByUser retrieves all subscriptions of a user
func (r *PushSubscriptionRepository) GetByUser(userID uuid.UUID) ([]models.PushSubscription, error) {
	var subscriptions []models.PushSubscription
	if err := r.db.Where("user_id = ?", userID).Find(&subscriptions).Error; err != nil {
		return nil, err
	}
	return subscriptions, nil
}

// DeleteByEndpoint removes a subscription by its endpoint URL
func (r *PushSubscriptionRepository) DeleteByEndpoint(endpoint string) error {
	return r.db.Delete(&models.PushSubscription{}, "endpoint = ?", endpoint).Error
}

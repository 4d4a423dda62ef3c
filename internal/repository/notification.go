package repository

import (
	"time"

	"wishlist-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NotificationRepository handles database operations for notifications.
// Inserts happen only through the privileged fan-out path; per-user queries
// and read/archive transitions are scoped to the recipient by the service.
type NotificationRepository struct {
	db *gorm.DB
}

// Ensure NotificationRepository implements NotificationRepositoryInterface
var _ NotificationRepositoryInterface = (*NotificationRepository)(nil)

// NewNotificationRepository creates a new notification repository
func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

// WithTx returns a copy of the repository bound to the given transaction
func (r *NotificationRepository) WithTx(tx *gorm.DB) NotificationRepositoryInterface {
	return &NotificationRepository{db: tx}
}

// CreateBatch inserts one row per recipient in a single statement
func (r *NotificationRepository) CreateBatch(notifications []models.Notification) error {
	if len(notifications) == 0 {
		return nil
	}
	return r.db.Create(&notifications).Error
}

// GetByID retrieves a notification by ID
func (r *NotificationRepository) GetByID(id uuid.UUID) (*models.Notification, error) {
	var notification models.Notification
	if err := r.db.First(&notification, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &notification, nil
}

// GetByRecipient retrieves a page of a user's notifications in the given
// status partition, newest first, along with the partition total
func (r *NotificationRepository) GetByRecipient(recipientID uuid.UUID, status models.NotificationStatus, limit, offset int) ([]models.Notification, int64, error) {
	query := r.db.Model(&models.Notification{}).
		Where("recipient_id = ? AND status = ?", recipientID, status)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var notifications []models.Notification
	err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&notifications).Error
	if err != nil {
		return nil, 0, err
	}
	return notifications, total, nil
}

// UnreadCount returns the number of unread inbox notifications for a user
func (r *NotificationRepository) UnreadCount(recipientID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.Notification{}).
		Where("recipient_id = ? AND status = ? AND is_read = false",
			recipientID, models.NotificationStatusInbox).
		Count(&count).Error
	return count, err
}

// ExistsForActorSince reports whether the recipient already has a
// notification of the given type from the actor created at or after the
// cutoff. Used to deduplicate recurring reminders.
func (r *NotificationRepository) ExistsForActorSince(recipientID, actorID uuid.UUID, notificationType models.NotificationType, since time.Time) (bool, error) {
	var count int64
	err := r.db.Model(&models.Notification{}).
		Where("recipient_id = ? AND actor_id = ? AND type = ? AND created_at >= ?",
			recipientID, actorID, notificationType, since).
		Count(&count).Error
	return count > 0, err
}

// Update saves changes to a notification
func (r *NotificationRepository) Update(notification *models.Notification) error {
	return r.db.Save(notification).Error
}

// MarkAllRead marks every unread inbox notification of a user as read
func (r *NotificationRepository) MarkAllRead(recipientID uuid.UUID) error {
	return r.db.Model(&models.Notification{}).
		Where("recipient_id = ? AND status = ? AND is_read = false",
			recipientID, models.NotificationStatusInbox).
		Update("is_read", true).Error
}

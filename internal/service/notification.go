package service

import (
	"errors"
	"fmt"

	"wishlist-backend/internal/database/models"
	apperrors "wishlist-backend/internal/errors"
	"wishlist-backend/internal/logger"
	"wishlist-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Deliverer pushes a committed notification towards the live UI (websocket,
// web push). Delivery is best-effort and never part of the transaction.
type Deliverer interface {
	Deliver(notification models.Notification)
}

// NotificationService is the fan-out engine. It is the only producer of
// notification rows: the mutating services hand it their open transaction so
// a state change and its notifications commit or roll back together. It also
// serves the per-user notification queries. Handlers never hold the
// privileged enqueue path, only the query/read surface.
type NotificationService struct {
	repo       repository.NotificationRepositoryInterface
	userRepo   repository.UserRepositoryInterface
	templates  *MessageTemplates
	deliverers []Deliverer
	log        *logger.Logger
}

// NewNotificationService creates a new notification service
func NewNotificationService(repo repository.NotificationRepositoryInterface, userRepo repository.UserRepositoryInterface, templates *MessageTemplates, deliverers ...Deliverer) *NotificationService {
	return &NotificationService{
		repo:       repo,
		userRepo:   userRepo,
		templates:  templates,
		deliverers: deliverers,
		log:        logger.New().WithField("component", "notifications"),
	}
}

// EventRefs carries the foreign keys a notification needs for deep-linking
// plus the item title used in message text
type EventRefs struct {
	WishlistID      *uuid.UUID
	ItemID          *uuid.UUID
	SplitClaimID    *uuid.UUID
	OwnershipFlagID *uuid.UUID
	ItemTitle       string
}

// BuildBatch produces one notification row per recipient for an event.
// The actor's display name is resolved once, falling back to "Someone" when
// the profile is unavailable (message text is non-critical).
func (s *NotificationService) BuildBatch(tx *gorm.DB, eventType models.NotificationType, actorID uuid.UUID, recipients []uuid.UUID, refs EventRefs) []models.Notification {
	actorName := s.actorName(tx, actorID)
	message := s.templates.Render(eventType, actorName, refs.ItemTitle)

	batch := make([]models.Notification, 0, len(recipients))
	for _, recipientID := range recipients {
		batch = append(batch, models.Notification{
			RecipientID:     recipientID,
			ActorID:         actorID,
			Type:            eventType,
			Message:         message,
			WishlistID:      refs.WishlistID,
			ItemID:          refs.ItemID,
			SplitClaimID:    refs.SplitClaimID,
			OwnershipFlagID: refs.OwnershipFlagID,
			Status:          models.NotificationStatusInbox,
		})
	}
	return batch
}

// EnqueueTx inserts the batch inside the caller's transaction. This is the
// privileged path: it writes into other users' notification lists, which the
// per-user access scope would forbid for the acting principal.
func (s *NotificationService) EnqueueTx(tx *gorm.DB, batch []models.Notification) error {
	return s.repo.WithTx(tx).CreateBatch(batch)
}

// DeliverAfterCommit hands committed rows to the live delivery channels.
// Failures are logged and dropped; the rows are already durable.
func (s *NotificationService) DeliverAfterCommit(batch []models.Notification) {
	for _, deliverer := range s.deliverers {
		for _, notification := range batch {
			deliverer.Deliver(notification)
		}
	}
}

func (s *NotificationService) actorName(tx *gorm.DB, actorID uuid.UUID) string {
	repo := s.userRepo
	if tx != nil {
		repo = repo.WithTx(tx)
	}
	user, err := repo.GetByID(actorID)
	if err != nil || user == nil || user.DisplayName == "" {
		return "Someone"
	}
	return user.DisplayName
}

// NotificationResponse represents a notification in API responses
type NotificationResponse struct {
	ID              uuid.UUID  `json:"id"`
	Type            string     `json:"type"`
	Message         string     `json:"message"`
	ActorID         uuid.UUID  `json:"actor_id"`
	WishlistID      *uuid.UUID `json:"wishlist_id,omitempty"`
	ItemID          *uuid.UUID `json:"item_id,omitempty"`
	SplitClaimID    *uuid.UUID `json:"split_claim_id,omitempty"`
	OwnershipFlagID *uuid.UUID `json:"ownership_flag_id,omitempty"`
	IsRead          bool       `json:"is_read"`
	Status          string     `json:"status"`
	CreatedAt       string     `json:"created_at"`
}

// NotificationListResponse represents a paginated notification list
type NotificationListResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
	Total         int64                  `json:"total"`
	Page          int                    `json:"page"`
	PageSize      int                    `json:"page_size"`
}

// List returns one page of the user's notifications in the given status partition
func (s *NotificationService) List(userID uuid.UUID, status models.NotificationStatus, page, pageSize int) (*NotificationListResponse, error) {
	if status != models.NotificationStatusInbox && status != models.NotificationStatusArchived {
		return nil, apperrors.ErrInvalidStatusFilter
	}
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	notifications, total, err := s.repo.GetByRecipient(userID, status, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}

	responses := make([]NotificationResponse, 0, len(notifications))
	for i := range notifications {
		responses = append(responses, toNotificationResponse(&notifications[i]))
	}
	return &NotificationListResponse{
		Notifications: responses,
		Total:         total,
		Page:          page,
		PageSize:      pageSize,
	}, nil
}

// UnreadCount returns the number of unread inbox notifications for the user
func (s *NotificationService) UnreadCount(userID uuid.UUID) (int64, error) {
	return s.repo.UnreadCount(userID)
}

// MarkRead marks one of the user's notifications as read
func (s *NotificationService) MarkRead(notificationID, userID uuid.UUID) error {
	notification, err := s.getOwned(notificationID, userID)
	if err != nil {
		return err
	}
	if notification.IsRead {
		return nil
	}
	notification.IsRead = true
	return s.repo.Update(notification)
}

// MarkAllRead marks every unread inbox notification of the user as read
func (s *NotificationService) MarkAllRead(userID uuid.UUID) error {
	return s.repo.MarkAllRead(userID)
}

// Archive moves one of the user's notifications to the archived partition
func (s *NotificationService) Archive(notificationID, userID uuid.UUID) error {
	notification, err := s.getOwned(notificationID, userID)
	if err != nil {
		return err
	}
	notification.Status = models.NotificationStatusArchived
	notification.IsRead = true
	return s.repo.Update(notification)
}

func (s *NotificationService) getOwned(notificationID, userID uuid.UUID) (*models.Notification, error) {
	notification, err := s.repo.GetByID(notificationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotificationNotFound
		}
		return nil, err
	}
	if notification.RecipientID != userID {
		return nil, apperrors.ErrNotRecipient
	}
	return notification, nil
}

func toNotificationResponse(n *models.Notification) NotificationResponse {
	return NotificationResponse{
		ID:              n.ID,
		Type:            string(n.Type),
		Message:         n.Message,
		ActorID:         n.ActorID,
		WishlistID:      n.WishlistID,
		ItemID:          n.ItemID,
		SplitClaimID:    n.SplitClaimID,
		OwnershipFlagID: n.OwnershipFlagID,
		IsRead:          n.IsRead,
		Status:          string(n.Status),
		CreatedAt:       n.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

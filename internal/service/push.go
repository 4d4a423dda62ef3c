package service

import (
	"errors"
	"fmt"

	"wishlist-backend/internal/database/models"
	apperrors "wishlist-backend/internal/errors"
	"wishlist-backend/internal/logger"
	"wishlist-backend/internal/push"
	"wishlist-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// PushService manages browser push subscriptions and delivers committed
// notifications over web push. It implements Deliverer; sends are best-effort
// and expired subscriptions are pruned on the spot.
type PushService struct {
	repo     repository.PushSubscriptionRepositoryInterface
	sender   *push.Sender
	validate *validator.Validate
	log      *logger.Logger
}

// Ensure PushService implements Deliverer
var _ Deliverer = (*PushService)(nil)

// NewPushService creates a new push subscription service
func NewPushService(repo repository.PushSubscriptionRepositoryInterface, sender *push.Sender) *PushService {
	return &PushService{
		repo:     repo,
		sender:   sender,
		validate: validator.New(),
		log:      logger.New().WithField("component", "push"),
	}
}

// SubscribeRequest carries a browser push subscription
type SubscribeRequest struct {
	Endpoint   string `json:"endpoint" validate:"required,url"`
	P256dhKey  string `json:"p256dh_key" validate:"required"`
	AuthKey    string `json:"auth_key" validate:"required"`
	DeviceName string `json:"device_name" validate:"max=100"`
}

// Subscribe registers or refreshes a push subscription for the user. The
// endpoint is the identity: re-subscribing from the same browser updates the
// existing row even if the user changed.
func (s *PushService) Subscribe(userID uuid.UUID, req SubscribeRequest) error {
	if err := s.validate.Struct(req); err != nil {
		return apperrors.NewValidationError("", err.Error())
	}
	return s.repo.Upsert(&models.PushSubscription{
		UserID:     userID,
		Endpoint:   req.Endpoint,
		P256dhKey:  req.P256dhKey,
		AuthKey:    req.AuthKey,
		DeviceName: req.DeviceName,
	})
}

// Unsubscribe removes the subscription for the given endpoint
func (s *PushService) Unsubscribe(endpoint string) error {
	if endpoint == "" {
		return apperrors.NewValidationError("endpoint", "endpoint is required")
	}
	return s.repo.DeleteByEndpoint(endpoint)
}

// VAPIDPublicKey returns the key browsers need to subscribe
func (s *PushService) VAPIDPublicKey() string {
	return s.sender.VAPIDPublicKey()
}

// Deliver sends the notification to every subscription of its recipient
func (s *PushService) Deliver(notification models.Notification) {
	subs, err := s.repo.GetByUser(notification.RecipientID)
	if err != nil {
		s.log.WithError(err).Error("push subscription lookup failed")
		return
	}

	payload := push.Payload{
		Title: "Wishlist",
		Body:  notification.Message,
		Tag:   string(notification.Type),
		URL:   deepLink(notification),
	}
	for i := range subs {
		if err := s.sender.Send(&subs[i], payload); err != nil {
			if errors.Is(err, push.ErrExpired) {
				if err := s.repo.DeleteByEndpoint(subs[i].Endpoint); err != nil {
					s.log.WithError(err).Error("failed to prune expired subscription")
				}
				continue
			}
			s.log.WithError(err).Warn("push delivery failed")
		}
	}
}

func deepLink(n models.Notification) string {
	switch {
	case n.SplitClaimID != nil:
		return fmt.Sprintf("/splits/%s", n.SplitClaimID)
	case n.ItemID != nil && n.WishlistID != nil:
		return fmt.Sprintf("/wishlists/%s/items/%s", n.WishlistID, n.ItemID)
	case n.WishlistID != nil:
		return fmt.Sprintf("/wishlists/%s", n.WishlistID)
	default:
		return "/notifications"
	}
}

package service

import (
	"context"
	"time"

	"wishlist-backend/internal/database/models"
	"wishlist-backend/internal/logger"
	"wishlist-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BirthdayService periodically reminds users about their friends' birthdays.
// The sweep is idempotent: a reminder for a given birthday person is sent to
// each friend at most once per calendar day, enforced against the
// notification table rather than in memory so restarts do not re-send.
type BirthdayService struct {
	db               *gorm.DB
	userRepo         repository.UserRepositoryInterface
	friendshipRepo   repository.FriendshipRepositoryInterface
	notificationRepo repository.NotificationRepositoryInterface
	notifier         *NotificationService
	interval         time.Duration
	log              *logger.Logger
}

// NewBirthdayService creates a new birthday reminder service
func NewBirthdayService(db *gorm.DB, userRepo repository.UserRepositoryInterface, friendshipRepo repository.FriendshipRepositoryInterface, notificationRepo repository.NotificationRepositoryInterface, notifier *NotificationService, interval time.Duration) *BirthdayService {
	return &BirthdayService{
		db:               db,
		userRepo:         userRepo,
		friendshipRepo:   friendshipRepo,
		notificationRepo: notificationRepo,
		notifier:         notifier,
		interval:         interval,
		log:              logger.New().WithField("component", "birthdays"),
	}
}

// Run sweeps immediately and then on every tick until the context is done
func (s *BirthdayService) Run(ctx context.Context) {
	s.sweep(time.Now())

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			s.sweep(now)
		}
	}
}

// Sweep runs a single pass for the given time. Exported for tests and for
// one-shot invocation.
func (s *BirthdayService) Sweep(now time.Time) {
	s.sweep(now)
}

func (s *BirthdayService) sweep(now time.Time) {
	users, err := s.userRepo.GetByBirthday(now.Month(), now.Day())
	if err != nil {
		s.log.WithError(err).Error("birthday sweep query failed")
		return
	}

	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	for i := range users {
		s.remindFriends(&users[i], startOfDay)
	}
}

func (s *BirthdayService) remindFriends(birthdayUser *models.User, startOfDay time.Time) {
	friendIDs, err := s.friendshipRepo.GetFriendIDs(birthdayUser.ID)
	if err != nil {
		s.log.WithError(err).Error("birthday sweep friend lookup failed")
		return
	}

	recipients := make([]uuid.UUID, 0, len(friendIDs))
	for _, friendID := range friendIDs {
		sent, err := s.notificationRepo.ExistsForActorSince(friendID, birthdayUser.ID,
			models.NotificationTypeBirthdayReminder, startOfDay)
		if err != nil {
			s.log.WithError(err).Error("birthday sweep dedup check failed")
			continue
		}
		if !sent {
			recipients = append(recipients, friendID)
		}
	}
	if len(recipients) == 0 {
		return
	}

	var batch []models.Notification
	err = s.db.Transaction(func(tx *gorm.DB) error {
		batch = s.notifier.BuildBatch(tx, models.NotificationTypeBirthdayReminder,
			birthdayUser.ID, recipients, EventRefs{})
		return s.notifier.EnqueueTx(tx, batch)
	})
	if err != nil {
		s.log.WithError(err).Error("birthday reminder enqueue failed")
		return
	}
	s.notifier.DeliverAfterCommit(batch)
}

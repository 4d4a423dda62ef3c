//go:build integration
// +build integration

package service_test

import (
	"testing"
	"time"

	"wishlist-backend/internal/database/models"
	"wishlist-backend/internal/repository"
	"wishlist-backend/internal/service"

	"github.com/stretchr/testify/suite"
)

type BirthdayServiceTestSuite struct {
	ServiceIntegrationSuite
	birthdays *service.BirthdayService
}

func (suite *BirthdayServiceTestSuite) SetupSuite() {
	suite.ServiceIntegrationSuite.SetupSuite()
	db := suite.base.DB
	suite.birthdays = service.NewBirthdayService(db,
		repository.NewUserRepository(db),
		repository.NewFriendshipRepository(db),
		suite.notificationRepo,
		suite.notifications,
		time.Hour)
}

func (suite *BirthdayServiceTestSuite) createBirthdayUser(name string, birthday time.Time) *models.User {
	user := suite.factories.User.WithBirthday(birthday)
	user.DisplayName = name
	suite.Require().NoError(suite.base.DB.Create(user).Error)
	return user
}

func (suite *BirthdayServiceTestSuite) TestSweep_RemindsFriendsOnce() {
	now := time.Now()
	birthdayUser := suite.createBirthdayUser("Birthday", now.AddDate(-30, 0, 0))
	friend := suite.createUser("Friend")
	stranger := suite.createUser("Stranger")
	suite.befriend(birthdayUser, friend)

	suite.birthdays.Sweep(now)

	suite.Equal([]string{string(models.NotificationTypeBirthdayReminder)}, suite.inboxTypesFor(friend.ID))
	suite.Empty(suite.inboxFor(stranger.ID))
	suite.Empty(suite.inboxFor(birthdayUser.ID))

	// second sweep the same day sends nothing new
	suite.birthdays.Sweep(now)
	suite.Len(suite.inboxFor(friend.ID), 1)
}

func (suite *BirthdayServiceTestSuite) TestSweep_IgnoresOtherDates() {
	now := time.Now()
	user := suite.createBirthdayUser("NotToday", now.AddDate(-30, 0, 1))
	friend := suite.createUser("Friend")
	suite.befriend(user, friend)

	suite.birthdays.Sweep(now)

	suite.Empty(suite.inboxFor(friend.ID))
}

func TestBirthdayServiceTestSuite(t *testing.T) {
	suite.Run(t, new(BirthdayServiceTestSuite))
}

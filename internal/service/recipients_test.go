package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestSplitInitiatedRecipients_ExcludesOwnerAndInitiator(t *testing.T) {
	owner := uuid.New()
	initiator := uuid.New()
	friendA := uuid.New()
	friendB := uuid.New()

	got := splitInitiatedRecipients([]uuid.UUID{friendA, owner, friendB, initiator}, owner, initiator)

	assert.Equal(t, []uuid.UUID{friendA, friendB}, got)
}

func TestSplitInitiatedRecipients_EmptyWhenOnlyOwnerIsFriend(t *testing.T) {
	owner := uuid.New()
	initiator := uuid.New()

	got := splitInitiatedRecipients([]uuid.UUID{owner}, owner, initiator)

	assert.Empty(t, got)
}

func TestParticipantsExcept_PreservesOrderAndDedupes(t *testing.T) {
	a := uuid.New()
	b := uuid.New()
	c := uuid.New()

	got := participantsExcept([]uuid.UUID{a, b, a, c, b}, b)

	assert.Equal(t, []uuid.UUID{a, c}, got)
}

func TestParticipantsExcept_NoExclusions(t *testing.T) {
	a := uuid.New()
	b := uuid.New()

	got := participantsExcept([]uuid.UUID{a, b})

	assert.Equal(t, []uuid.UUID{a, b}, got)
}

package models

import (
	"time"

	"github.com/google/uuid"
)

// SplitClaim is a shared commitment among several users to jointly gift one
// item. At most one pending/confirmed split may exist per item (partial unique
// index created in database.Initialize). Cancelling deletes the row together
// with its participants; confirmed splits are immutable apart from fulfillment.
type SplitClaim struct {
	BaseModel
	ItemID             uuid.UUID        `json:"item_id" gorm:"type:uuid;not null;index" validate:"required"`
	InitiatorID        uuid.UUID        `json:"initiator_id" gorm:"type:uuid;not null;index" validate:"required"`
	TargetParticipants int              `json:"target_participants" gorm:"not null" validate:"required,min=2"`
	Status             SplitClaimStatus `json:"status" gorm:"size:20;not null;default:'pending'"`
	ConfirmedAt        *time.Time       `json:"confirmed_at,omitempty"`
	FulfilledAt        *time.Time       `json:"fulfilled_at,omitempty"`

	// Relationships
	Participants []SplitClaimParticipant `json:"participants,omitempty" gorm:"foreignKey:SplitClaimID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for SplitClaim
func (SplitClaim) TableName() string {
	return "split_claims"
}

// SplitClaimParticipant records one user's commitment to a split claim.
// Membership is the commitment; leaving removes the row.
type SplitClaimParticipant struct {
	BaseModel
	SplitClaimID uuid.UUID `json:"split_claim_id" gorm:"type:uuid;not null;uniqueIndex:idx_split_participants_pair" validate:"required"`
	UserID       uuid.UUID `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_split_participants_pair;index" validate:"required"`
}

// TableName returns the table name for SplitClaimParticipant
func (SplitClaimParticipant) TableName() string {
	return "split_claim_participants"
}

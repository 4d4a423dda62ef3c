package models

import (
	"time"

	"github.com/google/uuid"
)

// SoloClaim is one user's exclusive commitment to gift one item.
// At most one active claim may exist per item; the constraint is a partial
// unique index scoped to status='active' (created in database.Initialize) so
// cancelled and fulfilled history rows can coexist with a new active claim.
type SoloClaim struct {
	BaseModel
	ItemID      uuid.UUID       `json:"item_id" gorm:"type:uuid;not null;index" validate:"required"`
	ClaimerID   uuid.UUID       `json:"claimer_id" gorm:"type:uuid;not null;index" validate:"required"`
	Status      SoloClaimStatus `json:"status" gorm:"size:20;not null;default:'active'"`
	FulfilledAt *time.Time      `json:"fulfilled_at,omitempty"`
}

// TableName returns the table name for SoloClaim
func (SoloClaim) TableName() string {
	return "solo_claims"
}

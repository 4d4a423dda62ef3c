package models

import (
	"time"

	"github.com/google/uuid"
)

// OwnershipFlag is a friend's signal that the owner may already possess an
// item. The item_id uniqueness is whole-table, not status-scoped: one flag
// lifecycle per item, and a resolved flag blocks re-flagging.
type OwnershipFlag struct {
	BaseModel
	ItemID     uuid.UUID           `json:"item_id" gorm:"type:uuid;not null;uniqueIndex" validate:"required"`
	FlaggerID  uuid.UUID           `json:"flagger_id" gorm:"type:uuid;not null;index" validate:"required"`
	Status     OwnershipFlagStatus `json:"status" gorm:"size:20;not null;default:'pending'"`
	ResolvedAt *time.Time          `json:"resolved_at,omitempty"`
}

// TableName returns the table name for OwnershipFlag
func (OwnershipFlag) TableName() string {
	return "ownership_flags"
}

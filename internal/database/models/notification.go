package models

import "github.com/google/uuid"

// Notification is addressed to one user and carries enough foreign keys for
// the UI to deep-link to the wishlist, item, split claim or flag involved.
// Rows are created exclusively by the privileged server-side fan-out path;
// end users only ever flip IsRead and Status on their own rows.
type Notification struct {
	BaseModel
	RecipientID     uuid.UUID          `json:"recipient_id" gorm:"type:uuid;not null;index" validate:"required"`
	ActorID         uuid.UUID          `json:"actor_id" gorm:"type:uuid;not null" validate:"required"`
	Type            NotificationType   `json:"type" gorm:"size:40;not null;index" validate:"required"`
	Message         string             `json:"message" gorm:"size:400"`
	WishlistID      *uuid.UUID         `json:"wishlist_id,omitempty" gorm:"type:uuid"`
	ItemID          *uuid.UUID         `json:"item_id,omitempty" gorm:"type:uuid"`
	SplitClaimID    *uuid.UUID         `json:"split_claim_id,omitempty" gorm:"type:uuid"`
	OwnershipFlagID *uuid.UUID         `json:"ownership_flag_id,omitempty" gorm:"type:uuid"`
	IsRead          bool               `json:"is_read" gorm:"not null;default:false;index"`
	Status          NotificationStatus `json:"status" gorm:"size:20;not null;default:'inbox';index"`
}

// TableName returns the table name for Notification
func (Notification) TableName() string {
	return "notifications"
}

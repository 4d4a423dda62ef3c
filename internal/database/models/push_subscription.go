package models

import "github.com/google/uuid"

// PushSubscription stores a browser web-push endpoint for a user
type PushSubscription struct {
	BaseModel
	UserID     uuid.UUID `json:"user_id" gorm:"type:uuid;not null;index" validate:"required"`
	Endpoint   string    `json:"endpoint" gorm:"size:1000;not null;uniqueIndex" validate:"required,url"`
	P256dhKey  string    `json:"p256dh_key" gorm:"size:200;not null" validate:"required"`
	AuthKey    string    `json:"auth_key" gorm:"size:100;not null" validate:"required"`
	DeviceName string    `json:"device_name" gorm:"size:100"`
}

// TableName returns the table name for PushSubscription
func (PushSubscription) TableName() string {
	return "push_subscriptions"
}

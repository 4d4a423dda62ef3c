package models

import "time"

// User represents an account in the gift wishlist application
type User struct {
	BaseModel
	DisplayName string     `json:"display_name" gorm:"size:100;not null" validate:"required,min=1,max=100"`
	Email       string     `json:"email" gorm:"size:120;not null;uniqueIndex" validate:"required,email"`
	AvatarURL   string     `json:"avatar_url" gorm:"size:400"`
	Birthday    *time.Time `json:"birthday,omitempty"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}

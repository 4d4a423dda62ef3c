package models

import "github.com/google/uuid"

// Wishlist represents a user's gift wishlist
type Wishlist struct {
	BaseModel
	OwnerID     uuid.UUID       `json:"owner_id" gorm:"type:uuid;not null;index" validate:"required"`
	Title       string          `json:"title" gorm:"size:100;not null" validate:"required,min=1,max=100"`
	Description string          `json:"description" gorm:"size:400" validate:"max=400"`
	Privacy     WishlistPrivacy `json:"privacy" gorm:"size:20;not null;default:'friends'"`

	// Relationships
	Items  []WishlistItem  `json:"items,omitempty" gorm:"foreignKey:WishlistID;constraint:OnDelete:CASCADE"`
	Shares []WishlistShare `json:"shares,omitempty" gorm:"foreignKey:WishlistID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Wishlist
func (Wishlist) TableName() string {
	return "wishlists"
}

// WishlistShare is an allowlist entry for privacy=selected_friends
type WishlistShare struct {
	BaseModel
	WishlistID uuid.UUID `json:"wishlist_id" gorm:"type:uuid;not null;uniqueIndex:idx_wishlist_shares_pair" validate:"required"`
	UserID     uuid.UUID `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_wishlist_shares_pair" validate:"required"`
}

// TableName returns the table name for WishlistShare
func (WishlistShare) TableName() string {
	return "wishlist_shares"
}

package models

import (
	"time"

	"github.com/google/uuid"
)

// WishlistItem represents a single entry on a wishlist.
// IsPurchased means the owner bought the item personally; IsReceived means
// the owner received it as a gift. They are distinct fulfillment events.
type WishlistItem struct {
	BaseModel
	WishlistID  uuid.UUID  `json:"wishlist_id" gorm:"type:uuid;not null;index" validate:"required"`
	Title       string     `json:"title" gorm:"size:200;not null" validate:"required,min=1,max=200"`
	URL         string     `json:"url" gorm:"size:2000" validate:"omitempty,url,max=2000"`
	Price       *float64   `json:"price,omitempty" validate:"omitempty,gte=0"`
	Currency    string     `json:"currency" gorm:"size:3" validate:"omitempty,len=3"`
	Notes       string     `json:"notes" gorm:"size:1000" validate:"max=1000"`
	IsPurchased bool       `json:"is_purchased" gorm:"not null;default:false"`
	IsReceived  bool       `json:"is_received" gorm:"not null;default:false"`
	ReceivedAt  *time.Time `json:"received_at,omitempty"`
}

// TableName returns the table name for WishlistItem
func (WishlistItem) TableName() string {
	return "wishlist_items"
}

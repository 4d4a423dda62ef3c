package models

import "github.com/google/uuid"

// Friendship represents a friend request edge between two users.
// An accepted edge counts in both directions; there is at most one edge per
// ordered pair, and the application never creates both orderings.
type Friendship struct {
	BaseModel
	RequesterID uuid.UUID        `json:"requester_id" gorm:"type:uuid;not null;uniqueIndex:idx_friendships_pair" validate:"required"`
	AddresseeID uuid.UUID        `json:"addressee_id" gorm:"type:uuid;not null;uniqueIndex:idx_friendships_pair;index" validate:"required"`
	Status      FriendshipStatus `json:"status" gorm:"size:20;not null;default:'pending'"`
}

// TableName returns the table name for Friendship
func (Friendship) TableName() string {
	return "friendships"
}

package models

// WishlistPrivacy controls who may view a wishlist and its items
type WishlistPrivacy string

const (
	WishlistPrivacyFriends         WishlistPrivacy = "friends"
	WishlistPrivacySelectedFriends WishlistPrivacy = "selected_friends"
	WishlistPrivacyPrivate         WishlistPrivacy = "private"
)

// FriendshipStatus represents the lifecycle of a friend request
type FriendshipStatus string

const (
	FriendshipStatusPending  FriendshipStatus = "pending"
	FriendshipStatusAccepted FriendshipStatus = "accepted"
	FriendshipStatusDeclined FriendshipStatus = "declined"
)

// SoloClaimStatus represents the lifecycle of a solo claim
type SoloClaimStatus string

const (
	SoloClaimStatusActive    SoloClaimStatus = "active"
	SoloClaimStatusCancelled SoloClaimStatus = "cancelled"
	SoloClaimStatusFulfilled SoloClaimStatus = "fulfilled"
)

// SplitClaimStatus represents the lifecycle of a split claim.
// Cancellation deletes the row, so there is no stored cancelled state.
type SplitClaimStatus string

const (
	SplitClaimStatusPending   SplitClaimStatus = "pending"
	SplitClaimStatusConfirmed SplitClaimStatus = "confirmed"
	SplitClaimStatusFulfilled SplitClaimStatus = "fulfilled"
)

// OwnershipFlagStatus represents the lifecycle of an ownership flag
type OwnershipFlagStatus string

const (
	OwnershipFlagStatusPending   OwnershipFlagStatus = "pending"
	OwnershipFlagStatusConfirmed OwnershipFlagStatus = "confirmed"
	OwnershipFlagStatusDenied    OwnershipFlagStatus = "denied"
)

// NotificationStatus partitions a user's notification list
type NotificationStatus string

const (
	NotificationStatusInbox    NotificationStatus = "inbox"
	NotificationStatusArchived NotificationStatus = "archived"
)

// NotificationType tags a notification with the event that produced it.
// The enumeration is open-ended; unknown values are passed through as-is.
type NotificationType string

const (
	NotificationTypeFriendRequest    NotificationType = "friend_request"
	NotificationTypeFriendAccepted   NotificationType = "friend_accepted"
	NotificationTypeBirthdayReminder NotificationType = "birthday_reminder"
	NotificationTypeSplitInvite      NotificationType = "split_invite"
	NotificationTypeSplitJoined      NotificationType = "split_joined"
	NotificationTypeSplitLeft        NotificationType = "split_left"
	NotificationTypeSplitConfirmed   NotificationType = "split_confirmed"
	NotificationTypeSplitCancelled   NotificationType = "split_cancelled"
	NotificationTypeFlagCreated      NotificationType = "flag_created"
	NotificationTypeFlagConfirmed    NotificationType = "flag_confirmed"
	NotificationTypeFlagDenied       NotificationType = "flag_denied"
	NotificationTypeGiftReceived     NotificationType = "gift_received"
)

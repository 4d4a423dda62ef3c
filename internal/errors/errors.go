package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ConflictError represents an invariant violation: duplicate active claim,
// duplicate flag, joining a split twice, transitioning a terminal entity.
// Constraint violations surfaced by the database are translated into these
// at the repository boundary, making the constraint the authoritative signal.
type ConflictError struct {
	Entity string
	Reason string
}

func (e *ConflictError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("%s conflict: %s", e.Entity, e.Reason)
	}
	return fmt.Sprintf("%s conflict", e.Entity)
}

// Is enables errors.Is() comparison for ConflictError
func (e *ConflictError) Is(target error) bool {
	t, ok := target.(*ConflictError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity && e.Reason == t.Reason
}

// ForbiddenError represents a caller that lacks visibility or is not the
// authorized actor for the operation
type ForbiddenError struct {
	Message string
}

func (e *ForbiddenError) Error() string {
	return e.Message
}

// ValidationError represents an invalid argument
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Entity Not Found Errors
var (
	ErrUserNotFound         = &NotFoundError{Entity: "user"}
	ErrFriendshipNotFound   = &NotFoundError{Entity: "friend request"}
	ErrWishlistNotFound     = &NotFoundError{Entity: "wishlist"}
	ErrItemNotFound         = &NotFoundError{Entity: "wishlist item"}
	ErrSoloClaimNotFound    = &NotFoundError{Entity: "claim"}
	ErrSplitClaimNotFound   = &NotFoundError{Entity: "split claim"}
	ErrFlagNotFound         = &NotFoundError{Entity: "ownership flag"}
	ErrNotificationNotFound = &NotFoundError{Entity: "notification"}
	ErrSubscriptionNotFound = &NotFoundError{Entity: "push subscription"}
)

// Conflict Errors
var (
	ErrItemAlreadyClaimed  = &ConflictError{Entity: "claim", Reason: "item already has an active claim"}
	ErrOwnItemClaim        = &ConflictError{Entity: "claim", Reason: "cannot claim an item on your own wishlist"}
	ErrClaimNotActive      = &ConflictError{Entity: "claim", Reason: "claim is not active"}
	ErrSplitNotPending     = &ConflictError{Entity: "split claim", Reason: "split claim is no longer pending"}
	ErrSplitFull           = &ConflictError{Entity: "split claim", Reason: "split claim already has its target number of participants"}
	ErrAlreadyParticipant  = &ConflictError{Entity: "split claim", Reason: "already a participant of this split claim"}
	ErrNotParticipant      = &ConflictError{Entity: "split claim", Reason: "not a participant of this split claim"}
	ErrFlagExists          = &ConflictError{Entity: "ownership flag", Reason: "item already has a flag"}
	ErrFlagResolved        = &ConflictError{Entity: "ownership flag", Reason: "flag is already resolved"}
	ErrItemAlreadyReceived = &ConflictError{Entity: "wishlist item", Reason: "item is already marked received"}
	ErrFriendRequestExists = &ConflictError{Entity: "friend request", Reason: "a request between these users already exists"}
	ErrFriendRequestClosed = &ConflictError{Entity: "friend request", Reason: "request is already resolved"}
	ErrEmailTaken          = &ConflictError{Entity: "user", Reason: "email is already registered"}
)

// Forbidden Errors
var (
	ErrWishlistNotVisible = &ForbiddenError{Message: "you do not have permission to view this wishlist"}
	ErrNotClaimer         = &ForbiddenError{Message: "only the claimer may cancel this claim"}
	ErrNotOwner           = &ForbiddenError{Message: "only the wishlist owner may perform this action"}
	ErrNotFlagger         = &ForbiddenError{Message: "only the flagger may withdraw this flag"}
	ErrNotAddressee       = &ForbiddenError{Message: "only the addressee may respond to this friend request"}
	ErrNotRecipient       = &ForbiddenError{Message: "notification belongs to another user"}
	ErrOwnItemFlag        = &ForbiddenError{Message: "cannot flag an item on your own wishlist"}
	ErrSelfFriendRequest  = &ForbiddenError{Message: "cannot send a friend request to yourself"}
)

// Validation Errors
var (
	ErrSplitTargetTooSmall = &ValidationError{Field: "target_participants", Message: "a split needs at least 2 participants; use a solo claim instead"}
	ErrInvalidFlagDecision = &ValidationError{Field: "decision", Message: "decision must be 'confirmed' or 'denied'"}
	ErrInvalidStatusFilter = &ValidationError{Field: "status", Message: "status must be 'inbox' or 'archived'"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsConflict checks if an error is a ConflictError
func IsConflict(err error) bool {
	var conflictErr *ConflictError
	return errors.As(err, &conflictErr)
}

// IsForbidden checks if an error is a ForbiddenError
func IsForbidden(err error) bool {
	var forbiddenErr *ForbiddenError
	return errors.As(err, &forbiddenErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewConflictError creates a new ConflictError
func NewConflictError(entity, reason string) error {
	return &ConflictError{Entity: entity, Reason: reason}
}

// NewForbiddenError creates a new ForbiddenError
func NewForbiddenError(message string) error {
	return &ForbiddenError{Message: message}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

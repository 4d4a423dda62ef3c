package service

import (
	"errors"
	"fmt"

	"wishlist-backend/internal/database/models"
	apperrors "wishlist-backend/internal/errors"
	"wishlist-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WishlistService owns the wishlist and item surface. Reads are gated by the
// visibility oracle, and item reads attach claim state for everyone except
// the owner, who must stay blind to claims on their own items.
type WishlistService struct {
	db            *gorm.DB
	wishlistRepo  repository.WishlistRepositoryInterface
	itemRepo      repository.ItemRepositoryInterface
	soloClaimRepo repository.SoloClaimRepositoryInterface
	splitRepo     repository.SplitClaimRepositoryInterface
	visibility    VisibilityOracle
	validate      *validator.Validate
}

// NewWishlistService creates a new wishlist service
func NewWishlistService(db *gorm.DB, wishlistRepo repository.WishlistRepositoryInterface, itemRepo repository.ItemRepositoryInterface, soloClaimRepo repository.SoloClaimRepositoryInterface, splitRepo repository.SplitClaimRepositoryInterface, visibility VisibilityOracle) *WishlistService {
	return &WishlistService{
		db:            db,
		wishlistRepo:  wishlistRepo,
		itemRepo:      itemRepo,
		soloClaimRepo: soloClaimRepo,
		splitRepo:     splitRepo,
		visibility:    visibility,
		validate:      validator.New(),
	}
}

// CreateWishlistRequest represents the payload for creating a wishlist
type CreateWishlistRequest struct {
	Title       string   `json:"title" validate:"required,max=200"`
	Description string   `json:"description" validate:"max=2000"`
	Privacy     string   `json:"privacy" validate:"required,oneof=friends selected_friends private"`
	SharedWith  []string `json:"shared_with" validate:"omitempty,dive,uuid"`
}

// UpdateWishlistRequest represents the payload for updating a wishlist
type UpdateWishlistRequest struct {
	Title       *string  `json:"title" validate:"omitempty,max=200"`
	Description *string  `json:"description" validate:"omitempty,max=2000"`
	Privacy     *string  `json:"privacy" validate:"omitempty,oneof=friends selected_friends private"`
	SharedWith  []string `json:"shared_with" validate:"omitempty,dive,uuid"`
}

// CreateItemRequest represents the payload for adding an item
type CreateItemRequest struct {
	Title    string   `json:"title" validate:"required,max=200"`
	URL      string   `json:"url" validate:"omitempty,url,max=2000"`
	Price    *float64 `json:"price" validate:"omitempty,gte=0"`
	Currency string   `json:"currency" validate:"omitempty,len=3"`
	Notes    string   `json:"notes" validate:"max=2000"`
}

// WishlistResponse represents a wishlist in API responses
type WishlistResponse struct {
	ID          uuid.UUID `json:"id"`
	OwnerID     uuid.UUID `json:"owner_id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Privacy     string    `json:"privacy"`
	CreatedAt   string    `json:"created_at"`
}

// ItemClaimState summarizes claim activity on an item for non-owner viewers
type ItemClaimState struct {
	Claimed          bool       `json:"claimed"`
	SplitClaimID     *uuid.UUID `json:"split_claim_id,omitempty"`
	SplitStatus      string     `json:"split_status,omitempty"`
	SplitTarget      int        `json:"split_target,omitempty"`
	SplitParticipant int        `json:"split_participants,omitempty"`
}

// ItemResponse represents a wishlist item in API responses. ClaimState is nil
// when the viewer is the owner.
type ItemResponse struct {
	ID         uuid.UUID       `json:"id"`
	WishlistID uuid.UUID       `json:"wishlist_id"`
	Title      string          `json:"title"`
	URL        string          `json:"url,omitempty"`
	Price      *float64        `json:"price,omitempty"`
	Currency   string          `json:"currency,omitempty"`
	Notes      string          `json:"notes,omitempty"`
	IsReceived bool            `json:"is_received"`
	ClaimState *ItemClaimState `json:"claim_state,omitempty"`
	CreatedAt  string          `json:"created_at"`
}

// CreateWishlist creates a wishlist for the owner, with initial shares when
// the privacy level is selected_friends
func (s *WishlistService) CreateWishlist(ownerID uuid.UUID, req CreateWishlistRequest) (*WishlistResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}
	sharedWith, err := parseUUIDs(req.SharedWith)
	if err != nil {
		return nil, apperrors.NewValidationError("shared_with", "invalid user id")
	}

	var wishlist *models.Wishlist
	err = s.db.Transaction(func(tx *gorm.DB) error {
		wishlist = &models.Wishlist{
			OwnerID:     ownerID,
			Title:       req.Title,
			Description: req.Description,
			Privacy:     models.WishlistPrivacy(req.Privacy),
		}
		if err := s.wishlistRepo.WithTx(tx).Create(wishlist); err != nil {
			return err
		}
		if wishlist.Privacy == models.WishlistPrivacySelectedFriends {
			return s.wishlistRepo.WithTx(tx).ReplaceShares(wishlist.ID, sharedWith)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	response := toWishlistResponse(wishlist)
	return &response, nil
}

// UpdateWishlist applies partial updates, including privacy transitions and
// share list replacement. Owner only.
func (s *WishlistService) UpdateWishlist(wishlistID, callerID uuid.UUID, req UpdateWishlistRequest) (*WishlistResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}
	sharedWith, err := parseUUIDs(req.SharedWith)
	if err != nil {
		return nil, apperrors.NewValidationError("shared_with", "invalid user id")
	}

	var wishlist *models.Wishlist
	err = s.db.Transaction(func(tx *gorm.DB) error {
		repo := s.wishlistRepo.WithTx(tx)

		var err error
		wishlist, err = repo.GetByID(wishlistID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrWishlistNotFound
			}
			return fmt.Errorf("failed to get wishlist: %w", err)
		}
		if wishlist.OwnerID != callerID {
			return apperrors.ErrNotOwner
		}

		if req.Title != nil {
			wishlist.Title = *req.Title
		}
		if req.Description != nil {
			wishlist.Description = *req.Description
		}
		if req.Privacy != nil {
			wishlist.Privacy = models.WishlistPrivacy(*req.Privacy)
		}
		if err := repo.Update(wishlist); err != nil {
			return err
		}

		if req.SharedWith != nil {
			return repo.ReplaceShares(wishlist.ID, sharedWith)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	response := toWishlistResponse(wishlist)
	return &response, nil
}

// GetWishlist returns a wishlist the viewer is allowed to see
func (s *WishlistService) GetWishlist(wishlistID, viewerID uuid.UUID) (*WishlistResponse, error) {
	wishlist, err := s.wishlistRepo.GetByID(wishlistID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrWishlistNotFound
		}
		return nil, fmt.Errorf("failed to get wishlist: %w", err)
	}

	visible, err := s.visibility.CanView(wishlist.ID, viewerID)
	if err != nil {
		return nil, err
	}
	if !visible {
		return nil, apperrors.ErrWishlistNotVisible
	}

	response := toWishlistResponse(wishlist)
	return &response, nil
}

// ListOwnWishlists returns every wishlist the caller owns
func (s *WishlistService) ListOwnWishlists(ownerID uuid.UUID) ([]WishlistResponse, error) {
	wishlists, err := s.wishlistRepo.GetByOwner(ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list wishlists: %w", err)
	}
	responses := make([]WishlistResponse, 0, len(wishlists))
	for i := range wishlists {
		responses = append(responses, toWishlistResponse(&wishlists[i]))
	}
	return responses, nil
}

// AddItem adds an item to one of the caller's wishlists
func (s *WishlistService) AddItem(wishlistID, callerID uuid.UUID, req CreateItemRequest) (*ItemResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	wishlist, err := s.wishlistRepo.GetByID(wishlistID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrWishlistNotFound
		}
		return nil, fmt.Errorf("failed to get wishlist: %w", err)
	}
	if wishlist.OwnerID != callerID {
		return nil, apperrors.ErrNotOwner
	}

	item := &models.WishlistItem{
		WishlistID: wishlist.ID,
		Title:      req.Title,
		URL:        req.URL,
		Price:      req.Price,
		Currency:   req.Currency,
		Notes:      req.Notes,
	}
	if err := s.itemRepo.Create(item); err != nil {
		return nil, fmt.Errorf("failed to create item: %w", err)
	}

	response := toItemResponse(item, nil)
	return &response, nil
}

// ListItems returns the items of a visible wishlist. For the owner the claim
// state is omitted entirely; for other viewers each item carries whether it
// is claimed and, for splits, the join progress.
func (s *WishlistService) ListItems(wishlistID, viewerID uuid.UUID) ([]ItemResponse, error) {
	wishlist, err := s.wishlistRepo.GetByID(wishlistID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrWishlistNotFound
		}
		return nil, fmt.Errorf("failed to get wishlist: %w", err)
	}

	visible, err := s.visibility.CanView(wishlist.ID, viewerID)
	if err != nil {
		return nil, err
	}
	if !visible {
		return nil, apperrors.ErrWishlistNotVisible
	}

	items, err := s.itemRepo.GetByWishlist(wishlist.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}

	isOwner := wishlist.OwnerID == viewerID
	responses := make([]ItemResponse, 0, len(items))
	for i := range items {
		var state *ItemClaimState
		if !isOwner {
			state, err = s.claimState(items[i].ID)
			if err != nil {
				return nil, err
			}
		}
		responses = append(responses, toItemResponse(&items[i], state))
	}
	return responses, nil
}

// DeleteItem removes an item from one of the caller's wishlists
func (s *WishlistService) DeleteItem(itemID, callerID uuid.UUID) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		item, wishlist, err := loadItemWithWishlist(tx, s.itemRepo, s.wishlistRepo, itemID)
		if err != nil {
			return err
		}
		if wishlist.OwnerID != callerID {
			return apperrors.ErrNotOwner
		}
		return s.itemRepo.WithTx(tx).Delete(item.ID)
	})
}

func (s *WishlistService) claimState(itemID uuid.UUID) (*ItemClaimState, error) {
	solo, err := s.soloClaimRepo.FindActiveByItem(itemID)
	if err != nil {
		return nil, err
	}
	if solo != nil {
		return &ItemClaimState{Claimed: true}, nil
	}

	split, err := s.splitRepo.FindActiveByItem(itemID)
	if err != nil {
		return nil, err
	}
	if split != nil {
		count, err := s.splitRepo.CountParticipants(split.ID)
		if err != nil {
			return nil, err
		}
		return &ItemClaimState{
			Claimed:          true,
			SplitClaimID:     &split.ID,
			SplitStatus:      string(split.Status),
			SplitTarget:      split.TargetParticipants,
			SplitParticipant: int(count),
		}, nil
	}
	return &ItemClaimState{Claimed: false}, nil
}

func parseUUIDs(raw []string) ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, 0, len(raw))
	for _, r := range raw {
		id, err := uuid.Parse(r)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func toWishlistResponse(w *models.Wishlist) WishlistResponse {
	return WishlistResponse{
		ID:          w.ID,
		OwnerID:     w.OwnerID,
		Title:       w.Title,
		Description: w.Description,
		Privacy:     string(w.Privacy),
		CreatedAt:   w.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

func toItemResponse(item *models.WishlistItem, state *ItemClaimState) ItemResponse {
	return ItemResponse{
		ID:         item.ID,
		WishlistID: item.WishlistID,
		Title:      item.Title,
		URL:        item.URL,
		Price:      item.Price,
		Currency:   item.Currency,
		Notes:      item.Notes,
		IsReceived: item.IsReceived,
		ClaimState: state,
		CreatedAt:  item.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

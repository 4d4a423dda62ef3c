package handlers

import (
	"net/http"

	"wishlist-backend/internal/auth"
	"wishlist-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// WishlistHandler handles HTTP requests for wishlist and item operations
type WishlistHandler struct {
	wishlistService *service.WishlistService
}

// NewWishlistHandler creates a new wishlist handler
func NewWishlistHandler(wishlistService *service.WishlistService) *WishlistHandler {
	return &WishlistHandler{
		wishlistService: wishlistService,
	}
}

// CreateWishlist handles POST /wishlists
// @Summary Create a wishlist
// @Tags wishlists
// @Accept json
// @Produce json
// @Param request body service.CreateWishlistRequest true "Wishlist details"
// @Success 201 {object} service.WishlistResponse "Wishlist created"
// @Failure 400 {object} ErrorResponse "Invalid payload"
// @Security BearerAuth
// @Router /wishlists [post]
func (h *WishlistHandler) CreateWishlist(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication required"})
		return
	}

	var req service.CreateWishlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	wishlist, err := h.wishlistService.CreateWishlist(userID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, wishlist)
}

// ListWishlists handles GET /wishlists
// @Summary List the authenticated user's wishlists
// @Tags wishlists
// @Produce json
// @Success 200 {array} service.WishlistResponse "Wishlists"
// @Security BearerAuth
// @Router /wishlists [get]
func (h *WishlistHandler) ListWishlists(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication required"})
		return
	}

	wishlists, err := h.wishlistService.ListOwnWishlists(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, wishlists)
}

// GetWishlist handles GET /wishlists/:id
// @Summary Get a wishlist
// @Description Get a wishlist the viewer is allowed to see
// @Tags wishlists
// @Produce json
// @Param id path string true "Wishlist ID"
// @Success 200 {object} service.WishlistResponse "Wishlist"
// @Failure 403 {object} ErrorResponse "Not visible to the viewer"
// @Failure 404 {object} ErrorResponse "Wishlist not found"
// @Security BearerAuth
// @Router /wishlists/{id} [get]
func (h *WishlistHandler) GetWishlist(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication required"})
		return
	}
	wishlistID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	wishlist, err := h.wishlistService.GetWishlist(wishlistID, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, wishlist)
}

// UpdateWishlist handles PATCH /wishlists/:id
// @Summary Update a wishlist
// @Description Update title, description, privacy or the share list. Owner only.
// @Tags wishlists
// @Accept json
// @Produce json
// @Param id path string true "Wishlist ID"
// @Param request body service.UpdateWishlistRequest true "Wishlist changes"
// @Success 200 {object} service.WishlistResponse "Updated wishlist"
// @Failure 403 {object} ErrorResponse "Caller is not the owner"
// @Failure 404 {object} ErrorResponse "Wishlist not found"
// @Security BearerAuth
// @Router /wishlists/{id} [patch]
func (h *WishlistHandler) UpdateWishlist(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication required"})
		return
	}
	wishlistID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var req service.UpdateWishlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	wishlist, err := h.wishlistService.UpdateWishlist(wishlistID, userID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, wishlist)
}

// AddItem handles POST /wishlists/:id/items
// @Summary Add an item to a wishlist
// @Tags items
// @Accept json
// @Produce json
// @Param id path string true "Wishlist ID"
// @Param request body service.CreateItemRequest true "Item details"
// @Success 201 {object} service.ItemResponse "Item created"
// @Failure 403 {object} ErrorResponse "Caller is not the owner"
// @Failure 404 {object} ErrorResponse "Wishlist not found"
// @Security BearerAuth
// @Router /wishlists/{id}/items [post]
func (h *WishlistHandler) AddItem(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication required"})
		return
	}
	wishlistID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var req service.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	item, err := h.wishlistService.AddItem(wishlistID, userID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

// ListItems handles GET /wishlists/:id/items
// @Summary List the items of a wishlist
// @Description List items with claim state attached for non-owner viewers
// @Tags items
// @Produce json
// @Param id path string true "Wishlist ID"
// @Success 200 {array} service.ItemResponse "Items"
// @Failure 403 {object} ErrorResponse "Not visible to the viewer"
// @Failure 404 {object} ErrorResponse "Wishlist not found"
// @Security BearerAuth
// @Router /wishlists/{id}/items [get]
func (h *WishlistHandler) ListItems(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication required"})
		return
	}
	wishlistID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	items, err := h.wishlistService.ListItems(wishlistID, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// DeleteItem handles DELETE /items/:id
// @Summary Delete a wishlist item
// @Tags items
// @Param id path string true "Item ID"
// @Success 204 "Item deleted"
// @Failure 403 {object} ErrorResponse "Caller is not the owner"
// @Failure 404 {object} ErrorResponse "Item not found"
// @Security BearerAuth
// @Router /items/{id} [delete]
func (h *WishlistHandler) DeleteItem(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication required"})
		return
	}
	itemID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	if err := h.wishlistService.DeleteItem(itemID, userID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

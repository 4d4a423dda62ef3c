package handlers

import (
	"net/http"

	"wishlist-backend/internal/auth"
	"wishlist-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ClaimHandler handles HTTP requests for solo claim and fulfillment operations
type ClaimHandler struct {
	claimService       *service.ClaimService
	fulfillmentService *service.FulfillmentService
}

// NewClaimHandler creates a new claim handler
func NewClaimHandler(claimService *service.ClaimService, fulfillmentService *service.FulfillmentService) *ClaimHandler {
	return &ClaimHandler{
		claimService:       claimService,
		fulfillmentService: fulfillmentService,
	}
}

// CreateClaim handles POST /items/:id/claim
// @Summary Claim an item
// @Description Claim an item exclusively for the authenticated user
// @Tags claims
// @Produce json
// @Param id path string true "Item ID"
// @Success 201 {object} service.ClaimResponse "Claim created"
// @Failure 403 {object} ErrorResponse "Wishlist not visible"
// @Failure 404 {object} ErrorResponse "Item not found"
// @Failure 409 {object} ErrorResponse "Item already claimed or own item"
// @Security BearerAuth
// @Router /items/{id}/claim [post]
func (h *ClaimHandler) CreateClaim(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication required"})
		return
	}
	itemID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	claim, err := h.claimService.CreateSoloClaim(itemID, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, claim)
}

// CancelClaim handles DELETE /claims/:id
// @Summary Cancel a claim
// @Description Cancel the authenticated user's active claim, releasing the item
// @Tags claims
// @Param id path string true "Claim ID"
// @Success 204 "Claim cancelled"
// @Failure 403 {object} ErrorResponse "Caller is not the claimer"
// @Failure 404 {object} ErrorResponse "Claim not found"
// @Failure 409 {object} ErrorResponse "Claim is not active"
// @Security BearerAuth
// @Router /claims/{id} [delete]
func (h *ClaimHandler) CancelClaim(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication required"})
		return
	}
	claimID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	if err := h.claimService.CancelSoloClaim(claimID, userID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListMyClaims handles GET /claims
// @Summary List the authenticated user's claims
// @Tags claims
// @Produce json
// @Success 200 {array} service.ClaimResponse "Claims, newest first"
// @Security BearerAuth
// @Router /claims [get]
func (h *ClaimHandler) ListMyClaims(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication required"})
		return
	}

	claims, err := h.claimService.GetClaimsByUser(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, claims)
}

// MarkReceived handles POST /items/:id/received
// @Summary Mark an item as received
// @Description Owner marks an item as received, fulfilling any active claim
// @Tags claims
// @Param id path string true "Item ID"
// @Success 204 "Item marked received"
// @Failure 403 {object} ErrorResponse "Caller is not the owner"
// @Failure 404 {object} ErrorResponse "Item not found"
// @Failure 409 {object} ErrorResponse "Item already received"
// @Security BearerAuth
// @Router /items/{id}/received [post]
func (h *ClaimHandler) MarkReceived(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication required"})
		return
	}
	itemID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	if err := h.fulfillmentService.MarkItemReceived(itemID, userID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// MarkPurchased handles POST /items/:id/purchased
// @Summary Mark an item as purchased by its owner
// @Description The owner notes they bought the item personally. Claims are unaffected.
// @Tags claims
// @Param id path string true "Item ID"
// @Success 204 "Item marked purchased"
// @Failure 403 {object} ErrorResponse "Caller does not own the wishlist"
// @Failure 404 {object} ErrorResponse "Item not found"
// @Security BearerAuth
// @Router /items/{id}/purchased [post]
func (h *ClaimHandler) MarkPurchased(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication required"})
		return
	}
	itemID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	if err := h.fulfillmentService.MarkItemPurchased(itemID, userID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

package handlers

import (
	"net/http"

	"wishlist-backend/internal/auth"
	"wishlist-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// FlagHandler handles HTTP requests for ownership flag operations
type FlagHandler struct {
	flagService *service.FlagService
}

// NewFlagHandler creates a new flag handler
func NewFlagHandler(flagService *service.FlagService) *FlagHandler {
	return &FlagHandler{
		flagService: flagService,
	}
}

// CreateFlag handles POST /items/:id/flag
// @Summary Flag an item as already owned
// @Description Assert that the wishlist owner already has the item
// @Tags flags
// @Produce json
// @Param id path string true "Item ID"
// @Success 201 {object} service.FlagResponse "Flag created"
// @Failure 403 {object} ErrorResponse "Own item or wishlist not visible"
// @Failure 404 {object} ErrorResponse "Item not found"
// @Failure 409 {object} ErrorResponse "Item already has a flag"
// @Security BearerAuth
// @Router /items/{id}/flag [post]
func (h *FlagHandler) CreateFlag(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication required"})
		return
	}
	itemID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	flag, err := h.flagService.CreateFlag(itemID, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, flag)
}

// ResolveFlag handles POST /flags/:id/resolve
// @Summary Resolve an ownership flag
// @Description Owner confirms or denies the flag; confirming releases claims on the item
// @Tags flags
// @Accept json
// @Produce json
// @Param id path string true "Flag ID"
// @Param request body service.FlagDecisionRequest true "Decision"
// @Success 200 {object} service.FlagResponse "Resolved flag"
// @Failure 400 {object} ErrorResponse "Invalid decision"
// @Failure 403 {object} ErrorResponse "Caller is not the owner"
// @Failure 404 {object} ErrorResponse "Flag not found"
// @Failure 409 {object} ErrorResponse "Flag already resolved"
// @Security BearerAuth
// @Router /flags/{id}/resolve [post]
func (h *FlagHandler) ResolveFlag(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication required"})
		return
	}
	flagID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var req service.FlagDecisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	flag, err := h.flagService.ResolveFlag(flagID, userID, req.Decision)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, flag)
}

// DeleteFlag handles DELETE /flags/:id
// @Summary Withdraw a pending ownership flag
// @Tags flags
// @Param id path string true "Flag ID"
// @Success 204 "Flag withdrawn"
// @Failure 403 {object} ErrorResponse "Caller is not the flagger"
// @Failure 404 {object} ErrorResponse "Flag not found"
// @Failure 409 {object} ErrorResponse "Flag already resolved"
// @Security BearerAuth
// @Router /flags/{id} [delete]
func (h *FlagHandler) DeleteFlag(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication required"})
		return
	}
	flagID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	if err := h.flagService.DeleteFlag(flagID, userID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

package handlers

import (
	"net/http"

	"wishlist-backend/internal/auth"
	"wishlist-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// SplitHandler handles HTTP requests for split claim operations
type SplitHandler struct {
	splitService *service.SplitService
}

// NewSplitHandler creates a new split handler
func NewSplitHandler(splitService *service.SplitService) *SplitHandler {
	return &SplitHandler{
		splitService: splitService,
	}
}

// InitiateSplitRequest represents the payload for starting a split claim
type InitiateSplitRequest struct {
	TargetParticipants int `json:"target_participants" binding:"required"`
}

// InitiateSplit handles POST /items/:id/split
// @Summary Start a split claim on an item
// @Description Create a pending split with the caller as first participant
// @Tags splits
// @Accept json
// @Produce json
// @Param id path string true "Item ID"
// @Param request body InitiateSplitRequest true "Split parameters"
// @Success 201 {object} service.SplitResponse "Split created"
// @Failure 400 {object} ErrorResponse "Target below minimum"
// @Failure 403 {object} ErrorResponse "Wishlist not visible"
// @Failure 404 {object} ErrorResponse "Item not found"
// @Failure 409 {object} ErrorResponse "Item already claimed or own item"
// @Security BearerAuth
// @Router /items/{id}/split [post]
func (h *SplitHandler) InitiateSplit(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication required"})
		return
	}
	itemID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var req InitiateSplitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	split, err := h.splitService.InitiateSplit(itemID, userID, req.TargetParticipants)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, split)
}

// JoinSplit handles POST /splits/:id/join
// @Summary Join a pending split claim
// @Description Join a split; reaching the target confirms it for everyone
// @Tags splits
// @Produce json
// @Param id path string true "Split claim ID"
// @Success 200 {object} service.SplitResponse "Joined split"
// @Failure 403 {object} ErrorResponse "Wishlist not visible"
// @Failure 404 {object} ErrorResponse "Split not found"
// @Failure 409 {object} ErrorResponse "Split full, not pending, or already joined"
// @Security BearerAuth
// @Router /splits/{id}/join [post]
func (h *SplitHandler) JoinSplit(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication required"})
		return
	}
	splitID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	split, err := h.splitService.JoinSplit(splitID, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, split)
}

// LeaveSplit handles POST /splits/:id/leave
// @Summary Leave a pending split claim
// @Description Leave a split; the initiator leaving cancels it entirely
// @Tags splits
// @Param id path string true "Split claim ID"
// @Success 204 "Left the split"
// @Failure 404 {object} ErrorResponse "Split not found"
// @Failure 409 {object} ErrorResponse "Split not pending or caller not a participant"
// @Security BearerAuth
// @Router /splits/{id}/leave [post]
func (h *SplitHandler) LeaveSplit(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication required"})
		return
	}
	splitID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	if err := h.splitService.LeaveSplit(splitID, userID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GetSplit handles GET /splits/:id
// @Summary Get a split claim
// @Tags splits
// @Produce json
// @Param id path string true "Split claim ID"
// @Success 200 {object} service.SplitResponse "Split"
// @Failure 403 {object} ErrorResponse "Wishlist not visible"
// @Failure 404 {object} ErrorResponse "Split not found"
// @Security BearerAuth
// @Router /splits/{id} [get]
func (h *SplitHandler) GetSplit(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication required"})
		return
	}
	splitID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	split, err := h.splitService.GetSplit(splitID, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, split)
}

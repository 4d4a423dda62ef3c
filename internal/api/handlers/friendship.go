package handlers

import (
	"net/http"

	"wishlist-backend/internal/auth"
	"wishlist-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// FriendshipHandler handles HTTP requests for friend graph operations
type FriendshipHandler struct {
	friendshipService *service.FriendshipService
}

// NewFriendshipHandler creates a new friendship handler
func NewFriendshipHandler(friendshipService *service.FriendshipService) *FriendshipHandler {
	return &FriendshipHandler{
		friendshipService: friendshipService,
	}
}

// FriendRequestPayload represents the payload for sending a friend request
type FriendRequestPayload struct {
	AddresseeID uuid.UUID `json:"addressee_id" binding:"required"`
}

// RespondPayload represents the payload for answering a friend request
type RespondPayload struct {
	Accept *bool `json:"accept" binding:"required"`
}

// SendRequest handles POST /friends/requests
// @Summary Send a friend request
// @Tags friends
// @Accept json
// @Produce json
// @Param request body FriendRequestPayload true "Addressee"
// @Success 201 {object} service.FriendshipResponse "Request sent"
// @Failure 403 {object} ErrorResponse "Self request"
// @Failure 404 {object} ErrorResponse "User not found"
// @Failure 409 {object} ErrorResponse "Edge already exists"
// @Security BearerAuth
// @Router /friends/requests [post]
func (h *FriendshipHandler) SendRequest(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication required"})
		return
	}

	var req FriendRequestPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	friendship, err := h.friendshipService.SendRequest(userID, req.AddresseeID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, friendship)
}

// Respond handles POST /friends/requests/:id/respond
// @Summary Accept or decline a friend request
// @Tags friends
// @Accept json
// @Produce json
// @Param id path string true "Friendship ID"
// @Param request body RespondPayload true "Decision"
// @Success 200 {object} service.FriendshipResponse "Updated friendship"
// @Failure 403 {object} ErrorResponse "Caller is not the addressee"
// @Failure 404 {object} ErrorResponse "Request not found"
// @Failure 409 {object} ErrorResponse "Request already resolved"
// @Security BearerAuth
// @Router /friends/requests/{id}/respond [post]
func (h *FriendshipHandler) Respond(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication required"})
		return
	}
	friendshipID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var req RespondPayload
	if err := c.ShouldBindJSON(&req); err != nil || req.Accept == nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	friendship, err := h.friendshipService.Respond(friendshipID, userID, *req.Accept)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, friendship)
}

// ListFriends handles GET /friends
// @Summary List the authenticated user's friends
// @Tags friends
// @Produce json
// @Success 200 {array} service.FriendResponse "Friends"
// @Security BearerAuth
// @Router /friends [get]
func (h *FriendshipHandler) ListFriends(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication required"})
		return
	}

	friends, err := h.friendshipService.ListFriends(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, friends)
}

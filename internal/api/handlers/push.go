package handlers

import (
	"net/http"

	"wishlist-backend/internal/auth"
	"wishlist-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// PushHandler handles HTTP requests for web push subscriptions
type PushHandler struct {
	pushService *service.PushService
}

// NewPushHandler creates a new push handler
func NewPushHandler(pushService *service.PushService) *PushHandler {
	return &PushHandler{
		pushService: pushService,
	}
}

// UnsubscribeRequest represents the payload for removing a subscription
type UnsubscribeRequest struct {
	Endpoint string `json:"endpoint" binding:"required"`
}

// VAPIDKey handles GET /push/vapid-key
// @Summary Get the VAPID public key
// @Tags push
// @Produce json
// @Success 200 {object} map[string]string "Public key"
// @Security BearerAuth
// @Router /push/vapid-key [get]
func (h *PushHandler) VAPIDKey(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"public_key": h.pushService.VAPIDPublicKey()})
}

// Subscribe handles POST /push/subscriptions
// @Summary Register a push subscription
// @Tags push
// @Accept json
// @Param request body service.SubscribeRequest true "Subscription"
// @Success 204 "Subscription stored"
// @Failure 400 {object} ErrorResponse "Invalid payload"
// @Security BearerAuth
// @Router /push/subscriptions [post]
func (h *PushHandler) Subscribe(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication required"})
		return
	}

	var req service.SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	if err := h.pushService.Subscribe(userID, req); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Unsubscribe handles DELETE /push/subscriptions
// @Summary Remove a push subscription
// @Tags push
// @Accept json
// @Param request body UnsubscribeRequest true "Endpoint to remove"
// @Success 204 "Subscription removed"
// @Failure 400 {object} ErrorResponse "Invalid payload"
// @Security BearerAuth
// @Router /push/subscriptions [delete]
func (h *PushHandler) Unsubscribe(c *gin.Context) {
	if _, ok := auth.GetUserID(c); !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication required"})
		return
	}

	var req UnsubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	if err := h.pushService.Unsubscribe(req.Endpoint); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

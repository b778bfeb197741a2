package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/1Burhanuddin/oneway-taxi-backend/internal/adapter/websocket"
	"github.com/1Burhanuddin/oneway-taxi-backend/internal/core/service"
)

type WSHandler struct {
	hub     *websocket.Hub
	authSvc *service.AuthService
}

func NewWSHandler(hub *websocket.Hub, authSvc *service.AuthService) *WSHandler {
	return &WSHandler{hub: hub, authSvc: authSvc}
}

// Feed upgrades an admin console connection to the live booking feed.
// Browsers cannot set headers on websocket dials, so the token rides in
// the query string.
func (h *WSHandler) Feed(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "token required"})
		return
	}

	if _, err := h.authSvc.ValidateToken(token); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
		return
	}

	h.hub.Serve(c.Writer, c.Request)
}

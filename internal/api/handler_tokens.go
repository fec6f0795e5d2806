package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"booking-report-backend/internal/auth"
)

type clearTokensRequest struct {
	Password string `json:"password" binding:"required"`
}

// ClearTokens handles DELETE /api/tokens, dropping the stored credential
// bundle so the next run re-authenticates from scratch.
func (h *Handler) ClearTokens(c *gin.Context) {
	var req clearTokensRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	if !auth.VerifyPassword(h.passwordHash, req.Password) {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "incorrect password, please try again"})
		return
	}

	if err := h.reports.ClearTokens(); err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "failed to clear stored tokens"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "stored tokens cleared"})
}

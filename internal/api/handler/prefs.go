package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetDarkMode reads the session user's display preference.
func (h *Handler) GetDarkMode(c *gin.Context) {
	enabled, err := h.Prefs.GetDarkMode(sessionUser(c).ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read preference"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"darkMode": enabled})
}

type darkModeRequest struct {
	DarkMode *bool `json:"darkMode" binding:"required"`
}

// SetDarkMode stores the session user's display preference.
func (h *Handler) SetDarkMode(c *gin.Context) {
	var req darkModeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "darkMode is required"})
		return
	}
	if err := h.Prefs.SetDarkMode(sessionUser(c).ID, *req.DarkMode); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store preference"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"darkMode": *req.DarkMode})
}

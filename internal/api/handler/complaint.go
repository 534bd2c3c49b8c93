package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"civigo/backend/internal/config"
	"civigo/backend/internal/models"
	"civigo/backend/internal/store"
)

type createComplaintRequest struct {
	Type        string              `json:"type"`
	Description string              `json:"description"`
	Location    string              `json:"location"`
	Severity    models.Severity     `json:"severity"`
	Coordinates *models.Coordinates `json:"coordinates"`
	Photos      []string            `json:"photos"`
	// AttachLocation asks the server to attach coordinates from the
	// coordinate provider when the client sends none of its own.
	AttachLocation bool `json:"attachLocation"`
}

// CreateComplaint files a new report on behalf of the session user.
func (h *Handler) CreateComplaint(c *gin.Context) {
	var req createComplaintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "malformed request body"})
		return
	}

	draft := models.ComplaintDraft{
		Type:        req.Type,
		Description: req.Description,
		Location:    req.Location,
		Severity:    req.Severity,
		Coordinates: req.Coordinates,
		Photos:      req.Photos,
	}
	if draft.Coordinates == nil && req.AttachLocation {
		coords := h.Geo.Locate()
		draft.Coordinates = &coords
	}

	created, err := h.Store.Create(draft, sessionUser(c))
	if err != nil {
		writeStoreError(c, err)
		return
	}

	h.Hub.NotifyChanged()
	if err := h.Notifier.ComplaintCreated(&created); err != nil {
		// Alerting is best effort; the report itself succeeded.
		log.Printf("Failed to notify about complaint %s: %v", created.ID, err)
	}

	c.JSON(http.StatusCreated, created)
}

// ListComplaints serves the community and "my complaints" views.
func (h *Handler) ListComplaints(c *gin.Context) {
	filter := store.Filter{
		Location: c.Query("location"),
		Sort:     store.SortOrder(c.Query("sort")),
	}
	if c.Query("mine") == "true" {
		filter.UserID = sessionUser(c).ID
	}
	c.JSON(http.StatusOK, h.Store.List(filter))
}

// GetComplaint serves the detail view.
func (h *Handler) GetComplaint(c *gin.Context) {
	complaint, err := h.Store.Get(c.Param("id"))
	if err != nil {
		writeStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, complaint)
}

// ToggleUpvote flips the session user's vote on a complaint.
func (h *Handler) ToggleUpvote(c *gin.Context) {
	updated, err := h.Store.ToggleUpvote(c.Param("id"), sessionUser(c).ID)
	if err != nil {
		writeStoreError(c, err)
		return
	}
	h.Hub.NotifyChanged()
	c.JSON(http.StatusOK, updated)
}

// DeleteComplaint removes one of the session user's own reports.
func (h *Handler) DeleteComplaint(c *gin.Context) {
	if err := h.Store.Delete(c.Param("id"), sessionUser(c).ID); err != nil {
		writeStoreError(c, err)
		return
	}
	h.Hub.NotifyChanged()
	c.Status(http.StatusNoContent)
}

type setStatusRequest struct {
	Status models.Status `json:"status" binding:"required"`
}

// SetStatus transitions a complaint's lifecycle state. Admin surface only.
func (h *Handler) SetStatus(c *gin.Context) {
	var req setStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "status is required"})
		return
	}

	updated, err := h.Store.SetStatus(c.Param("id"), req.Status)
	if err != nil {
		writeStoreError(c, err)
		return
	}
	h.Hub.NotifyChanged()
	c.JSON(http.StatusOK, updated)
}

// AdminDeleteComplaint removes any complaint, bypassing the ownership rule.
// Admin surface only.
func (h *Handler) AdminDeleteComplaint(c *gin.Context) {
	if err := h.Store.Remove(c.Param("id")); err != nil {
		writeStoreError(c, err)
		return
	}
	h.Hub.NotifyChanged()
	c.Status(http.StatusNoContent)
}

// ListTypes returns the localized complaint-category vocabulary.
func (h *Handler) ListTypes(c *gin.Context) {
	lang := c.Query("lang")
	if lang == "" {
		lang = config.DefaultLocale
	}
	c.JSON(http.StatusOK, h.Catalog.Categories(lang))
}

// ListMarkers returns the coordinate-bearing snapshot for the map widget.
// The WebSocket feed pushes the same shape; this is the polling fallback.
func (h *Handler) ListMarkers(c *gin.Context) {
	c.JSON(http.StatusOK, h.Store.Markers())
}

// writeStoreError maps the store's error taxonomy onto HTTP statuses.
func writeStoreError(c *gin.Context, err error) {
	var verr *store.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{"error": verr.Error()})
	case errors.Is(err, store.ErrInvalidStatus):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, store.ErrNotAuthenticated):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, store.ErrNotOwner):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

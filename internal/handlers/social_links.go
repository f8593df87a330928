package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/spotlighthub/spotlight-api/internal/dto"
	apierrors "github.com/spotlighthub/spotlight-api/internal/errors"
	"github.com/spotlighthub/spotlight-api/internal/middleware"
	"github.com/spotlighthub/spotlight-api/internal/services"
)

// SocialLinkHandler coordinates social-link HTTP handlers.
type SocialLinkHandler struct {
	linkService *services.SocialLinkService
}

// NewSocialLinkHandler creates a new SocialLinkHandler.
func NewSocialLinkHandler(linkService *services.SocialLinkService) *SocialLinkHandler {
	return &SocialLinkHandler{
		linkService: linkService,
	}
}

// List returns the authenticated user's links ordered by position.
func (h *SocialLinkHandler) List(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	links, err := h.linkService.List(userID)
	if err != nil {
		respondLinkError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"social_links": dto.ToSocialLinkDTOs(links)})
}

// Create appends a new link to the authenticated user's list.
func (h *SocialLinkHandler) Create(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	type CreateLinkRequest struct {
		Platform    string `json:"platform" binding:"required,max=50"`
		URL         string `json:"url" binding:"required,max=500"`
		DisplayText string `json:"display_text" binding:"omitempty,max=100"`
	}

	var req CreateLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	link, err := h.linkService.Create(userID, services.CreateLinkInput{
		Platform:    req.Platform,
		URL:         req.URL,
		DisplayText: req.DisplayText,
	})
	if err != nil {
		respondLinkError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToSocialLinkDTO(*link))
}

// Update applies a partial update to an owned link.
func (h *SocialLinkHandler) Update(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	linkID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	type UpdateLinkRequest struct {
		Platform    *string `json:"platform" binding:"omitempty,max=50"`
		URL         *string `json:"url" binding:"omitempty,max=500"`
		DisplayText *string `json:"display_text" binding:"omitempty,max=100"`
	}

	var req UpdateLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	link, err := h.linkService.Update(linkID, userID, services.UpdateLinkInput{
		Platform:    req.Platform,
		URL:         req.URL,
		DisplayText: req.DisplayText,
	})
	if err != nil {
		respondLinkError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToSocialLinkDTO(*link))
}

// Delete removes an owned link.
func (h *SocialLinkHandler) Delete(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	linkID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.linkService.Delete(linkID, userID); err != nil {
		respondLinkError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Social link deleted"})
}

// Reorder moves the user's links into the submitted ID order.
func (h *SocialLinkHandler) Reorder(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	type ReorderRequest struct {
		LinkIDs []uint `json:"link_ids" binding:"required"`
	}

	var req ReorderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	links, err := h.linkService.Reorder(userID, req.LinkIDs)
	if err != nil {
		respondLinkError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"social_links": dto.ToSocialLinkDTOs(links)})
}

// parseIDParam parses a numeric path parameter, responding 400 on
// failure.
func parseIDParam(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		apierrors.BadRequest(c, "Invalid ID")
		return 0, false
	}
	return uint(id), true
}

func respondLinkError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrInvalidPlatform),
		errors.Is(err, services.ErrInvalidLinkURL),
		errors.Is(err, services.ErrReorderIDs):
		apierrors.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrLinkNotFound):
		apierrors.NotFound(c, err.Error())
	default:
		apierrors.InternalError(c, "Internal server error")
	}
}

package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/spotlighthub/spotlight-api/internal/constants"
	"github.com/spotlighthub/spotlight-api/internal/dto"
	apierrors "github.com/spotlighthub/spotlight-api/internal/errors"
	"github.com/spotlighthub/spotlight-api/internal/middleware"
	"github.com/spotlighthub/spotlight-api/internal/services"
)

// ShowcaseHandler coordinates music-showcase HTTP handlers.
type ShowcaseHandler struct {
	showcaseService *services.ShowcaseService
}

// NewShowcaseHandler creates a new ShowcaseHandler.
func NewShowcaseHandler(showcaseService *services.ShowcaseService) *ShowcaseHandler {
	return &ShowcaseHandler{
		showcaseService: showcaseService,
	}
}

// List returns the authenticated user's showcase ordered by position.
func (h *ShowcaseHandler) List(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	items, err := h.showcaseService.List(userID)
	if err != nil {
		respondShowcaseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"music_showcase": dto.ToShowcaseItemDTOs(items),
		"max_items":      constants.MaxShowcaseItems,
	})
}

// Add fetches an item from the provider and appends it to the showcase.
func (h *ShowcaseHandler) Add(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	type AddItemRequest struct {
		SpotifyItemID string `json:"spotify_item_id" binding:"required,max=100"`
	}

	var req AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	item, err := h.showcaseService.Add(c.Request.Context(), userID, req.SpotifyItemID)
	if err != nil {
		respondShowcaseError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToShowcaseItemDTO(*item))
}

// Remove deletes an owned showcase item.
func (h *ShowcaseHandler) Remove(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	itemID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.showcaseService.Remove(itemID, userID); err != nil {
		respondShowcaseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Showcase item removed"})
}

// Reorder moves the showcase into the submitted ID order.
func (h *ShowcaseHandler) Reorder(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	type ReorderRequest struct {
		ItemIDs []uint `json:"item_ids" binding:"required"`
	}

	var req ReorderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	items, err := h.showcaseService.Reorder(userID, req.ItemIDs)
	if err != nil {
		respondShowcaseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"music_showcase": dto.ToShowcaseItemDTOs(items)})
}

func respondShowcaseError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrShowcaseLimit):
		apierrors.BadRequest(c, fmt.Sprintf("Showcase is limited to %d items", constants.MaxShowcaseItems))
	case errors.Is(err, services.ErrInvalidItemInput),
		errors.Is(err, services.ErrShowcaseReorder):
		apierrors.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrDuplicateItem):
		apierrors.Conflict(c, err.Error())
	case errors.Is(err, services.ErrItemNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrSpotifyNotConnected):
		apierrors.Unauthorized(c, "Spotify not connected")
	case errors.Is(err, services.ErrSpotifyFetch):
		apierrors.BadGateway(c, "Failed to fetch item from Spotify")
	default:
		apierrors.InternalError(c, "Internal server error")
	}
}

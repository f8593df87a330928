package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/spotlighthub/spotlight-api/internal/constants"
	"github.com/spotlighthub/spotlight-api/internal/dto"
	apierrors "github.com/spotlighthub/spotlight-api/internal/errors"
	"github.com/spotlighthub/spotlight-api/internal/middleware"
	"github.com/spotlighthub/spotlight-api/internal/services"
)

// SpotifyHandler coordinates Spotify OAuth and catalog HTTP handlers.
type SpotifyHandler struct {
	spotifyService *services.SpotifyService
}

// NewSpotifyHandler creates a new SpotifyHandler.
func NewSpotifyHandler(spotifyService *services.SpotifyService) *SpotifyHandler {
	return &SpotifyHandler{
		spotifyService: spotifyService,
	}
}

// AuthURL returns the provider authorization URL for the OAuth flow.
func (h *SpotifyHandler) AuthURL(c *gin.Context) {
	state := c.Query("state")
	c.JSON(http.StatusOK, gin.H{
		"auth_url": h.spotifyService.AuthCodeURL(state),
	})
}

// Callback exchanges the authorization code and stores the connection.
func (h *SpotifyHandler) Callback(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	type CallbackRequest struct {
		Code string `json:"code" binding:"required"`
	}

	var req CallbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	conn, err := h.spotifyService.Connect(c.Request.Context(), userID, req.Code)
	if err != nil {
		respondSpotifyError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToConnectionDTO(*conn))
}

// Status returns whether the user is connected and the connection info.
func (h *SpotifyHandler) Status(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	conn, err := h.spotifyService.Connection(userID)
	if err != nil {
		if errors.Is(err, services.ErrSpotifyNotConnected) {
			c.JSON(http.StatusOK, dto.ConnectionDTO{Connected: false})
			return
		}
		respondSpotifyError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToConnectionDTO(*conn))
}

// SetArtist sets or clears the artist ID on the user's connection. An
// empty artist_id clears it.
func (h *SpotifyHandler) SetArtist(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	type SetArtistRequest struct {
		ArtistID *string `json:"artist_id" binding:"omitempty,max=100"`
	}

	var req SetArtistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	artistID := req.ArtistID
	if artistID != nil && *artistID == "" {
		artistID = nil
	}

	conn, err := h.spotifyService.SetArtistID(userID, artistID)
	if err != nil {
		if errors.Is(err, services.ErrSpotifyNotConnected) {
			apierrors.NotFound(c, "Spotify account is not connected")
			return
		}
		respondSpotifyError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToConnectionDTO(*conn))
}

// ClearArtist removes the artist ID from the user's connection.
func (h *SpotifyHandler) ClearArtist(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	conn, err := h.spotifyService.SetArtistID(userID, nil)
	if err != nil {
		if errors.Is(err, services.ErrSpotifyNotConnected) {
			apierrors.NotFound(c, "Spotify account is not connected")
			return
		}
		respondSpotifyError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToConnectionDTO(*conn))
}

// Albums returns the user's releases, either the configured artist's
// discography or their saved library.
func (h *SpotifyHandler) Albums(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	limit, offset := parsePagination(c)
	items, total, err := h.spotifyService.UserAlbums(c.Request.Context(), userID, limit, offset)
	if err != nil {
		respondSpotifyError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"albums": items,
		"total":  total,
	})
}

// SearchAlbums searches the provider catalog for albums.
func (h *SpotifyHandler) SearchAlbums(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	query := c.Query("q")
	if query == "" {
		apierrors.BadRequest(c, "A search query is required")
		return
	}

	limit, offset := parsePagination(c)
	items, total, err := h.spotifyService.SearchAlbums(c.Request.Context(), userID, query, limit, offset)
	if err != nil {
		respondSpotifyError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"albums": items,
		"total":  total,
	})
}

// SearchArtists searches the provider catalog for artists.
func (h *SpotifyHandler) SearchArtists(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	query := c.Query("q")
	if query == "" {
		apierrors.BadRequest(c, "A search query is required")
		return
	}

	limit, _ := parsePagination(c)
	artists, total, err := h.spotifyService.SearchArtists(c.Request.Context(), userID, query, limit)
	if err != nil {
		respondSpotifyError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"artists": artists,
		"total":   total,
	})
}

// AlbumDetails fetches one album, including its track list.
func (h *SpotifyHandler) AlbumDetails(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	albumID := c.Param("album_id")
	album, err := h.spotifyService.AlbumDetails(c.Request.Context(), userID, albumID)
	if err != nil {
		respondSpotifyError(c, err)
		return
	}

	c.JSON(http.StatusOK, album)
}

// parsePagination reads limit and offset query parameters with defaults.
func parsePagination(c *gin.Context) (limit, offset int) {
	limit = constants.DefaultPageSize
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n >= constants.MinPageSize {
			limit = n
		}
	}
	if raw := c.Query("offset"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n >= 0 {
			offset = n
		}
	}
	return limit, offset
}

func respondSpotifyError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrSpotifyNotConnected):
		apierrors.Unauthorized(c, "Spotify not connected")
	case errors.Is(err, services.ErrSpotifyExchange):
		apierrors.BadRequest(c, "Failed to exchange authorization code")
	case errors.Is(err, services.ErrSpotifyFetch):
		apierrors.BadGateway(c, "Failed to fetch data from Spotify")
	default:
		apierrors.InternalError(c, "Internal server error")
	}
}

package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/spotlighthub/spotlight-api/internal/dto"
	apierrors "github.com/spotlighthub/spotlight-api/internal/errors"
	"github.com/spotlighthub/spotlight-api/internal/middleware"
	"github.com/spotlighthub/spotlight-api/internal/models"
	"github.com/spotlighthub/spotlight-api/internal/services"
)

// ProfileHandler coordinates profile-related HTTP handlers.
type ProfileHandler struct {
	profileService *services.ProfileService
	maxUploadBytes int64
}

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(profileService *services.ProfileService, maxUploadBytes int64) *ProfileHandler {
	return &ProfileHandler{
		profileService: profileService,
		maxUploadBytes: maxUploadBytes,
	}
}

// GetMyProfile returns the authenticated user's dashboard view: account,
// profile, social links, showcase, and Spotify connection state.
func (h *ProfileHandler) GetMyProfile(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	overview, err := h.profileService.OwnerOverview(userID)
	if err != nil {
		respondProfileError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":              dto.ToUserDTO(*overview.User),
		"profile":           dto.ToProfileDTO(*overview.Profile),
		"social_links":      dto.ToSocialLinkDTOs(overview.SocialLinks),
		"music_showcase":    dto.ToShowcaseItemDTOs(overview.Showcase),
		"spotify_connected": overview.Connected,
	})
}

// UpdateMyProfile applies a partial update to the authenticated user's
// profile.
func (h *ProfileHandler) UpdateMyProfile(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	type UpdateProfileRequest struct {
		DisplayName   *string               `json:"display_name" binding:"omitempty,max=100"`
		Bio           *string               `json:"bio" binding:"omitempty,max=1000"`
		AvatarURL     *string               `json:"avatar_url" binding:"omitempty,max=500"`
		ThemeSettings *models.ThemeSettings `json:"theme_settings"`
		IsPublic      *bool                 `json:"is_public"`
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	profile, err := h.profileService.UpdateProfile(userID, services.UpdateProfileInput{
		DisplayName:   req.DisplayName,
		Bio:           req.Bio,
		AvatarURL:     req.AvatarURL,
		ThemeSettings: req.ThemeSettings,
		IsPublic:      req.IsPublic,
	})
	if err != nil {
		respondProfileError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToProfileDTO(*profile))
}

// UploadAvatar stores a new avatar image for the authenticated user.
func (h *ProfileHandler) UploadAvatar(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	file, err := c.FormFile("avatar")
	if err != nil {
		apierrors.BadRequest(c, "An avatar file is required")
		return
	}
	if file.Size > h.maxUploadBytes {
		apierrors.BadRequest(c, "Avatar file is too large")
		return
	}

	profile, err := h.profileService.SetAvatar(userID, file)
	if err != nil {
		respondProfileError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToProfileDTO(*profile))
}

// DeleteAvatar removes the authenticated user's avatar.
func (h *ProfileHandler) DeleteAvatar(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	profile, err := h.profileService.ClearAvatar(userID)
	if err != nil {
		respondProfileError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToProfileDTO(*profile))
}

// GetPublicProfile returns a public profile page by username.
func (h *ProfileHandler) GetPublicProfile(c *gin.Context) {
	username := c.Param("username")

	page, err := h.profileService.ViewPublicProfile(username)
	if err != nil {
		respondProfileError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPublicProfileDTO(*page))
}

func respondProfileError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrUserNotFound):
		apierrors.NotFound(c, "User not found")
	case errors.Is(err, services.ErrProfileNotFound):
		apierrors.NotFound(c, "Profile not found")
	case errors.Is(err, services.ErrProfilePrivate):
		apierrors.Forbidden(c, "This profile is private")
	case errors.Is(err, services.ErrUnsupportedImage):
		apierrors.BadRequest(c, "Unsupported image type")
	case errors.Is(err, services.ErrInvalidAvatarURL):
		apierrors.BadRequest(c, err.Error())
	default:
		apierrors.InternalError(c, "Internal server error")
	}
}

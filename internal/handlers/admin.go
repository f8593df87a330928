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

// AdminHandler coordinates administrative HTTP handlers.
type AdminHandler struct {
	adminService *services.AdminService
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(adminService *services.AdminService) *AdminHandler {
	return &AdminHandler{
		adminService: adminService,
	}
}

// Stats returns platform-wide counters.
func (h *AdminHandler) Stats(c *gin.Context) {
	stats, err := h.adminService.Stats()
	if err != nil {
		apierrors.InternalError(c, "Failed to load stats")
		return
	}

	c.JSON(http.StatusOK, stats)
}

// ListUsers returns a page of users.
func (h *AdminHandler) ListUsers(c *gin.Context) {
	page := parsePositiveQuery(c, "page", 1)
	pageSize := parsePositiveQuery(c, "limit", constants.DefaultPageSize)
	if pageSize > constants.MaxPageSize {
		pageSize = constants.MaxPageSize
	}

	users, total, err := h.adminService.ListUsers(page, pageSize)
	if err != nil {
		apierrors.InternalError(c, "Failed to list users")
		return
	}

	userDTOs := make([]dto.UserDTO, len(users))
	for i, user := range users {
		userDTOs[i] = dto.ToUserDTO(user)
	}

	totalPages := int((total + int64(pageSize) - 1) / int64(pageSize))
	c.JSON(http.StatusOK, dto.UserListResponse{
		Users:      userDTOs,
		Page:       page,
		PageSize:   pageSize,
		TotalCount: total,
		TotalPages: totalPages,
	})
}

// ToggleAdmin flips a target user's admin flag.
func (h *AdminHandler) ToggleAdmin(c *gin.Context) {
	actorID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	targetID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	user, err := h.adminService.ToggleAdmin(actorID, targetID)
	if err != nil {
		respondAdminError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserDTO(*user))
}

// DeleteUser removes a user and everything they own.
func (h *AdminHandler) DeleteUser(c *gin.Context) {
	actorID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	targetID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.adminService.DeleteUser(actorID, targetID); err != nil {
		respondAdminError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User deleted"})
}

func parsePositiveQuery(c *gin.Context, name string, fallback int) int {
	raw := c.Query(name)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return fallback
	}
	return n
}

func respondAdminError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrSelfToggle):
		apierrors.Forbidden(c, err.Error())
	case errors.Is(err, services.ErrUserNotFound):
		apierrors.NotFound(c, err.Error())
	default:
		apierrors.InternalError(c, "Internal server error")
	}
}

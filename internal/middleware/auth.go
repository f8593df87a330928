package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/spotlighthub/spotlight-api/internal/auth"
	"github.com/spotlighthub/spotlight-api/internal/constants"
	apierrors "github.com/spotlighthub/spotlight-api/internal/errors"
)

// RequireAuth validates the bearer access token and stores the user ID in
// the request context.
func RequireAuth(tokens *auth.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr, ok := bearerToken(c)
		if !ok {
			apierrors.Unauthorized(c, "")
			c.Abort()
			return
		}

		userID, err := tokens.Validate(tokenStr, auth.TypeAccess)
		if err != nil {
			apierrors.Unauthorized(c, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyUserID, userID)
		c.Next()
	}
}

// RequireRefreshToken validates the bearer refresh token and stores the
// user ID in the request context. Used only by the token refresh route.
func RequireRefreshToken(tokens *auth.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr, ok := bearerToken(c)
		if !ok {
			apierrors.Unauthorized(c, "")
			c.Abort()
			return
		}

		userID, err := tokens.Validate(tokenStr, auth.TypeRefresh)
		if err != nil {
			apierrors.Unauthorized(c, "Invalid or expired refresh token")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyUserID, userID)
		c.Next()
	}
}

func bearerToken(c *gin.Context) (string, bool) {
	header := c.GetHeader("Authorization")
	if header == "" {
		return "", false
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}

// GetUserID retrieves the current user ID from context
func GetUserID(c *gin.Context) (uint, bool) {
	value, exists := c.Get(constants.ContextKeyUserID)
	if !exists {
		return 0, false
	}

	userID, ok := value.(uint)
	return userID, ok
}

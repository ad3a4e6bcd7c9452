package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"youmatter.app/server/common/logger"
	"youmatter.app/server/internal/model"
	"youmatter.app/server/internal/service"
)

// SessionCookieName holds the snowflake session ID as a decimal string.
const SessionCookieName = "youmatter_session"

const userContextKey = "auth_user"

// RequireAuth resolves the session cookie to a user and aborts with 401
// when it cannot.
func RequireAuth(authService service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		cookie, err := c.Cookie(SessionCookieName)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
			return
		}

		sessionID, err := strconv.ParseInt(cookie, 10, 64)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
			return
		}

		user, err := authService.ValidateSession(c.Request.Context(), sessionID)
		if err != nil {
			if errors.Is(err, service.ErrSessionExpired) || errors.Is(err, service.ErrUserNotFound) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "session expired"})
				return
			}
			slog.ErrorContext(c.Request.Context(), "failed to validate session", "error", err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "failed to validate session"})
			return
		}

		ctx := logger.WithLogFields(c.Request.Context(), logger.LogFields{
			UserID:    logger.Ptr(user.ID),
			SessionID: logger.Ptr(sessionID),
		})
		c.Request = c.Request.WithContext(ctx)
		c.Set(userContextKey, user)

		c.Next()
	}
}

// CurrentUser returns the authenticated user set by RequireAuth.
func CurrentUser(c *gin.Context) (*model.User, bool) {
	v, ok := c.Get(userContextKey)
	if !ok {
		return nil, false
	}
	user, ok := v.(*model.User)
	return user, ok
}

package middleware

import (
	"strings"

	"heptabet_backend/internal/auth"
	"heptabet_backend/internal/logger"
	"heptabet_backend/internal/models"
	"heptabet_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

// sessionToken pulls the raw token from the request: the HttpOnly cookie is
// the primary carrier, a Bearer header is accepted for non-browser clients.
func sessionToken(c *gin.Context) string {
	if cookie, err := c.Cookie(auth.SessionCookieName); err == nil && cookie != "" {
		return cookie
	}

	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return ""
}

// AuthMiddleware rejects requests without a valid session. Claims go into
// the gin context under "userID" and "role".
func AuthMiddleware(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := sessionToken(c)
		if tokenStr == "" {
			apperrors.HandleError(c, apperrors.ErrUnauthenticated)
			c.Abort()
			return
		}

		claims, err := auth.ParseToken(jwtSecret, tokenStr)
		if err != nil {
			logger.CtxWarn(c.Request.Context(), "rejected session token",
				"path", c.Request.URL.Path, "ip", c.ClientIP())
			apperrors.HandleError(c, apperrors.ErrUnauthenticated)
			c.Abort()
			return
		}

		c.Set("userID", claims.UserID)
		c.Set("role", claims.Role)
		c.Request = c.Request.WithContext(logger.WithUserID(c.Request.Context(), claims.UserID))
		c.Next()
	}
}

// OptionalAuthMiddleware resolves a session when one is present but lets
// anonymous requests through. An invalid token degrades to anonymous rather
// than failing: public listings must stay reachable with a stale cookie.
func OptionalAuthMiddleware(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := sessionToken(c)
		if tokenStr != "" {
			if claims, err := auth.ParseToken(jwtSecret, tokenStr); err == nil {
				c.Set("userID", claims.UserID)
				c.Set("role", claims.Role)
				c.Request = c.Request.WithContext(logger.WithUserID(c.Request.Context(), claims.UserID))
			}
		}
		c.Next()
	}
}

// AdminMiddleware must run after AuthMiddleware.
func AdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		roleVal, exists := c.Get("role")
		if !exists {
			apperrors.HandleError(c, apperrors.ErrAdminOnly)
			c.Abort()
			return
		}

		role, ok := roleVal.(models.UserRole)
		if !ok {
			roleStr, isString := roleVal.(string)
			if !isString {
				apperrors.HandleError(c, apperrors.ErrAdminOnly)
				c.Abort()
				return
			}
			role = models.UserRole(roleStr)
		}

		if role != models.UserRoleAdmin {
			apperrors.HandleError(c, apperrors.ErrAdminOnly)
			c.Abort()
			return
		}

		c.Next()
	}
}

// GetUserID extracts the authenticated user ID from the gin context.
// Empty string means anonymous.
func GetUserID(c *gin.Context) string {
	userID, exists := c.Get("userID")
	if !exists {
		return ""
	}

	id, ok := userID.(string)
	if !ok {
		return ""
	}
	return id
}

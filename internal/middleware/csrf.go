package middleware

import (
	"net/http"

	"heptabet_backend/internal/auth"
	"heptabet_backend/internal/logger"
	"heptabet_backend/internal/repositories"
	"heptabet_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

// CSRFHeader carries the anti-forgery token the client got from its last
// auth response.
const CSRFHeader = "X-CSRF-Token"

// CSRFMiddleware guards state-changing requests authenticated by cookie.
// Must run after AuthMiddleware: the check is against the secret stored on
// the resolved account, which rotates on every login. Safe methods pass
// untouched.
func CSRFMiddleware(userRepo repositories.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		switch c.Request.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
			c.Next()
			return
		}

		userID := GetUserID(c)
		if userID == "" {
			apperrors.HandleError(c, apperrors.ErrUnauthenticated)
			c.Abort()
			return
		}

		presented := c.GetHeader(CSRFHeader)
		if presented == "" {
			apperrors.HandleError(c, apperrors.ErrMissingCSRFToken)
			c.Abort()
			return
		}

		user, err := userRepo.FindByID(userID)
		if err != nil {
			if apperrors.Is(err, repositories.ErrUserNotFound) {
				apperrors.HandleError(c, apperrors.ErrUnauthenticated)
			} else {
				apperrors.HandleError(c, apperrors.InternalError(err))
			}
			c.Abort()
			return
		}

		if !auth.CSRFTokenMatches(presented, user.CSRFSecret) {
			logger.CtxWarn(c.Request.Context(), "csrf token mismatch",
				"path", c.Request.URL.Path, "ip", c.ClientIP())
			apperrors.HandleError(c, apperrors.ErrInvalidCSRFToken)
			c.Abort()
			return
		}

		c.Next()
	}
}

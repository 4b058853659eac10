package handlers

import (
	"net/http"

	"heptabet_backend/internal/auth"
	"heptabet_backend/internal/services"
	"heptabet_backend/internal/services/dto"
	"heptabet_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	*BaseHandler
	authService services.AuthService

	// secureCookies is false only in development, where the SPA dev server
	// talks to the API over plain http.
	secureCookies bool
}

func NewAuthHandler(base *BaseHandler, authService services.AuthService, env string) *AuthHandler {
	return &AuthHandler{
		BaseHandler:   base,
		authService:   authService,
		secureCookies: env != "development",
	}
}

func (h *AuthHandler) RegisterRoutes(rg *gin.RouterGroup, g *Guards) {
	authGroup := rg.Group("/auth")
	{
		authGroup.POST("/register", h.Register)
		authGroup.POST("/login", h.Login)
		authGroup.POST("/logout", h.Logout)
		authGroup.POST("/forgot-password", h.ForgotPassword)
		authGroup.POST("/reset-password", h.ResetPassword)

		authGroup.GET("/me", g.Auth, h.Me)
	}
}

// setSessionCookie installs the signed session token. HttpOnly keeps it away
// from scripts; SameSite=Strict keeps cross-site requests from carrying it.
func (h *AuthHandler) setSessionCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(
		auth.SessionCookieName,
		token,
		int(auth.SessionTTL.Seconds()),
		"/",
		"",
		h.secureCookies,
		true,
	)
}

func (h *AuthHandler) clearSessionCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(auth.SessionCookieName, "", -1, "/", "", h.secureCookies, true)
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	result, err := h.authService.Register(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.setSessionCookie(c, result.SessionToken)
	c.JSON(http.StatusCreated, result)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	result, err := h.authService.Login(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.setSessionCookie(c, result.SessionToken)
	c.JSON(http.StatusOK, result)
}

// Logout clears the cookie unconditionally. There is no server-side session
// state to revoke, so this succeeds even without a valid session.
func (h *AuthHandler) Logout(c *gin.Context) {
	h.clearSessionCookie(c)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	result, err := h.authService.CurrentUser(userID)
	if err != nil {
		// The account behind a valid token may be gone; drop the cookie
		// so the client stops presenting it.
		if apperrors.Is(err, apperrors.ErrUnauthenticated) {
			h.clearSessionCookie(c)
		}
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// ForgotPassword answers with the same message whether or not the email is
// registered. Rate-limit and delivery failures do pass through: they concern
// accounts the caller already controls.
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req dto.ForgotPasswordRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	if err := h.authService.RequestPasswordReset(req.Email); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "If an account exists for this email, a reset code has been sent.",
	})
}

func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req dto.ResetPasswordRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	if err := h.authService.ResetPassword(&req); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password has been reset. You can now log in."})
}

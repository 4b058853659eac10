package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"heptabet_backend/internal/auth"
	"heptabet_backend/internal/services"
	"heptabet_backend/internal/services/dto"
	"heptabet_backend/internal/validator"
	"heptabet_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubAuthService returns canned results so the handler's HTTP behavior can
// be tested in isolation.
type stubAuthService struct {
	result *dto.AuthResult
	err    error
}

func (s *stubAuthService) Register(*dto.RegisterRequest) (*dto.AuthResult, error) {
	return s.result, s.err
}
func (s *stubAuthService) Login(*dto.LoginRequest) (*dto.AuthResult, error) {
	return s.result, s.err
}
func (s *stubAuthService) CurrentUser(string) (*dto.AuthResult, error) {
	return s.result, s.err
}
func (s *stubAuthService) RequestPasswordReset(string) error             { return s.err }
func (s *stubAuthService) ResetPassword(*dto.ResetPasswordRequest) error { return s.err }

var _ services.AuthService = (*stubAuthService)(nil)

func newAuthTestRouter(svc services.AuthService, env string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := NewAuthHandler(NewBaseHandler(validator.New()), svc, env)

	router := gin.New()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api, &Guards{
		Auth: func(c *gin.Context) { c.Set("userID", "u1"); c.Next() },
	})
	return router
}

func okResult() *dto.AuthResult {
	return &dto.AuthResult{
		User:         &dto.UserResponse{ID: "u1", Email: "u@example.com"},
		CSRFToken:    "csrf-token",
		SessionToken: "session-token",
	}
}

func sessionCookie(t *testing.T, res *http.Response) *http.Cookie {
	t.Helper()
	for _, c := range res.Cookies() {
		if c.Name == auth.SessionCookieName {
			return c
		}
	}
	t.Fatal("session cookie not set")
	return nil
}

func TestLogin_SetsHardenedSessionCookie(t *testing.T) {
	router := newAuthTestRouter(&stubAuthService{result: okResult()}, "production")

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login",
		strings.NewReader(`{"email":"u@example.com","password":"secret123"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	cookie := sessionCookie(t, w.Result())
	assert.Equal(t, "session-token", cookie.Value)
	assert.True(t, cookie.HttpOnly)
	assert.True(t, cookie.Secure)
	assert.Equal(t, http.SameSiteStrictMode, cookie.SameSite)
	assert.Equal(t, int(auth.SessionTTL.Seconds()), cookie.MaxAge)

	// The raw token lives only in the cookie.
	assert.NotContains(t, w.Body.String(), "session-token")
	assert.Contains(t, w.Body.String(), "csrf-token")
}

func TestLogin_DevModeAllowsInsecureCookie(t *testing.T) {
	router := newAuthTestRouter(&stubAuthService{result: okResult()}, "development")

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login",
		strings.NewReader(`{"email":"u@example.com","password":"secret123"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.False(t, sessionCookie(t, w.Result()).Secure)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	router := newAuthTestRouter(&stubAuthService{err: apperrors.ErrInvalidCredentials}, "production")

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login",
		strings.NewReader(`{"email":"u@example.com","password":"wrong12"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Empty(t, w.Result().Cookies())
}

func TestLogin_RejectsMalformedBody(t *testing.T) {
	router := newAuthTestRouter(&stubAuthService{result: okResult()}, "production")

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login",
		strings.NewReader(`{"email":"not-an-email","password":""}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "VALIDATION_FAILED")
}

func TestRegister_Returns201AndCookie(t *testing.T) {
	router := newAuthTestRouter(&stubAuthService{result: okResult()}, "production")

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register",
		strings.NewReader(`{"name":"New User","email":"u@example.com","password":"secret123"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.NotNil(t, sessionCookie(t, w.Result()))
}

func TestLogout_ClearsCookieWithoutSession(t *testing.T) {
	router := newAuthTestRouter(&stubAuthService{}, "production")

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/logout", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	cookie := sessionCookie(t, w.Result())
	assert.Empty(t, cookie.Value)
	assert.Negative(t, cookie.MaxAge)
}

func TestForgotPassword_GenericSuccessMessage(t *testing.T) {
	router := newAuthTestRouter(&stubAuthService{}, "production")

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/forgot-password",
		strings.NewReader(`{"email":"anyone@example.com"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "If an account exists")
}

func TestForgotPassword_RateLimitPassesThrough(t *testing.T) {
	router := newAuthTestRouter(&stubAuthService{err: apperrors.ErrTooManyResetRequests}, "production")

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/forgot-password",
		strings.NewReader(`{"email":"anyone@example.com"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusTooManyRequests, w.Code)
}

func TestMe_DeletedAccountClearsCookie(t *testing.T) {
	router := newAuthTestRouter(&stubAuthService{err: apperrors.ErrUnauthenticated}, "production")

	req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	cookie := sessionCookie(t, w.Result())
	assert.Empty(t, cookie.Value)
}

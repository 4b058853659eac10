package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"heptabet_backend/internal/auth"
	"heptabet_backend/internal/models"
	"heptabet_backend/internal/repositories"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "middleware-test-secret"

// stubUserRepo serves the single account the guard under test needs.
type stubUserRepo struct {
	user *models.User
}

func (r *stubUserRepo) FindByID(id string) (*models.User, error) {
	if r.user != nil && r.user.ID == id {
		cp := *r.user
		return &cp, nil
	}
	return nil, repositories.ErrUserNotFound
}

func (r *stubUserRepo) Create(*models.User) error { return nil }
func (r *stubUserRepo) FindByEmail(string) (*models.User, error) {
	return nil, repositories.ErrUserNotFound
}
func (r *stubUserRepo) Update(*models.User) error             { return nil }
func (r *stubUserRepo) Delete(string) error                   { return nil }
func (r *stubUserRepo) FindAll() ([]models.User, error)       { return nil, nil }
func (r *stubUserRepo) RotateCSRFSecret(string, string) error { return nil }
func (r *stubUserRepo) UpdatePassword(string, string) error   { return nil }
func (r *stubUserRepo) UpdateSubscription(string, models.SubscriptionTier, *time.Time) error {
	return nil
}
func (r *stubUserRepo) DowngradeTier(string, models.SubscriptionTier) error { return nil }
func (r *stubUserRepo) SetResetCode(string, string, time.Time, time.Time) error {
	return nil
}
func (r *stubUserRepo) ClearResetCode(string) error { return nil }

func mintToken(t *testing.T, userID string, role models.UserRole) string {
	t.Helper()
	token, err := auth.GenerateToken(testSecret, userID, role, time.Hour)
	require.NoError(t, err)
	return token
}

func newAuthTestRouter(mw ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handlers := append(mw, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"userID": GetUserID(c)})
	})
	router.GET("/protected", handlers...)
	router.POST("/protected", handlers...)
	return router
}

func TestAuthMiddleware_CookieSession(t *testing.T) {
	router := newAuthTestRouter(AuthMiddleware(testSecret))

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: auth.SessionCookieName, Value: mintToken(t, "u1", models.UserRoleUser)})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "u1")
}

func TestAuthMiddleware_BearerFallback(t *testing.T) {
	router := newAuthTestRouter(AuthMiddleware(testSecret))

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+mintToken(t, "u2", models.UserRoleUser))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "u2")
}

func TestAuthMiddleware_MissingAndInvalidToken(t *testing.T) {
	router := newAuthTestRouter(AuthMiddleware(testSecret))

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	req = httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: auth.SessionCookieName, Value: "garbage"})
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestOptionalAuthMiddleware(t *testing.T) {
	router := newAuthTestRouter(OptionalAuthMiddleware(testSecret))

	// Anonymous passes through.
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	// A stale cookie degrades to anonymous instead of failing.
	req = httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: auth.SessionCookieName, Value: "stale"})
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	// A valid session is resolved.
	req = httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: auth.SessionCookieName, Value: mintToken(t, "u3", models.UserRoleUser)})
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "u3")
}

func TestAdminMiddleware(t *testing.T) {
	router := newAuthTestRouter(AuthMiddleware(testSecret), AdminMiddleware())

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: auth.SessionCookieName, Value: mintToken(t, "a1", models.UserRoleAdmin)})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	req = httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: auth.SessionCookieName, Value: mintToken(t, "u1", models.UserRoleUser)})
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestCSRFMiddleware(t *testing.T) {
	user := &models.User{
		BaseModel:  models.BaseModel{ID: "u1"},
		CSRFSecret: "stored-secret",
	}
	repo := &stubUserRepo{user: user}
	router := newAuthTestRouter(AuthMiddleware(testSecret), CSRFMiddleware(repo))

	token := mintToken(t, "u1", models.UserRoleUser)

	t.Run("safe method passes without header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.AddCookie(&http.Cookie{Name: auth.SessionCookieName, Value: token})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("missing header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/protected", nil)
		req.AddCookie(&http.Cookie{Name: auth.SessionCookieName, Value: token})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Contains(t, w.Body.String(), "MISSING_CSRF_TOKEN")
	})

	t.Run("wrong token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/protected", nil)
		req.AddCookie(&http.Cookie{Name: auth.SessionCookieName, Value: token})
		req.Header.Set(CSRFHeader, "not-the-secret")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Contains(t, w.Body.String(), "INVALID_CSRF_TOKEN")
	})

	t.Run("matching token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/protected", nil)
		req.AddCookie(&http.Cookie{Name: auth.SessionCookieName, Value: token})
		req.Header.Set(CSRFHeader, "stored-secret")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("rotation invalidates older tabs", func(t *testing.T) {
		user.CSRFSecret = "rotated-secret"
		req := httptest.NewRequest(http.MethodPost, "/protected", nil)
		req.AddCookie(&http.Cookie{Name: auth.SessionCookieName, Value: token})
		req.Header.Set(CSRFHeader, "stored-secret")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("deleted account", func(t *testing.T) {
		repo.user = nil
		req := httptest.NewRequest(http.MethodPost, "/protected", nil)
		req.AddCookie(&http.Cookie{Name: auth.SessionCookieName, Value: token})
		req.Header.Set(CSRFHeader, "rotated-secret")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"

	"newsportal/helper"
	"newsportal/models"
	"newsportal/policy"
	"newsportal/ratelimit"
	"newsportal/services"
)

// tokenStub accepts "<role>-token" and rejects everything else.
type tokenStub struct {
	services.AuthService
}

func (tokenStub) ParseToken(token string) (*services.Claims, error) {
	role := models.UserRole(strings.ToUpper(strings.TrimSuffix(token, "-token")))
	if !strings.HasSuffix(token, "-token") || !role.Valid() {
		return nil, models.NewUnauthorizedError("invalid or expired token")
	}
	return &services.Claims{ID: 42, Email: "x@example.com", Role: role}, nil
}

func newRouter() (*gin.Engine, *Authenticator) {
	gin.SetMode(gin.TestMode)
	h := helper.NewHTTPHelper()
	return gin.New(), NewAuthenticator(tokenStub{}, h)
}

func do(r http.Handler, method, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func errorOf(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body["error"]
}

func TestAuthRequiresToken(t *testing.T) {
	r, a := newRouter()
	r.GET("/me", a.Auth(), func(c *gin.Context) {
		user, ok := CurrentUser(c)
		require.True(t, ok)
		c.JSON(http.StatusOK, gin.H{"id": user.UserID, "role": user.Role})
	})

	w := do(r, http.MethodGet, "/me", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Authorization header required", errorOf(t, w))

	w = do(r, http.MethodGet, "/me", "garbage")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Token editor-token")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Bearer token required", errorOf(t, w))

	w = do(r, http.MethodGet, "/me", "editor-token")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":42,"role":"EDITOR"}`, w.Body.String())
}

func TestOptionalAuth(t *testing.T) {
	r, a := newRouter()
	r.POST("/comments", a.OptionalAuth(), func(c *gin.Context) {
		_, ok := CurrentUser(c)
		c.JSON(http.StatusOK, gin.H{"authenticated": ok})
	})

	w := do(r, http.MethodPost, "/comments", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"authenticated":false}`, w.Body.String())

	w = do(r, http.MethodPost, "/comments", "user-token")
	assert.JSONEq(t, `{"authenticated":true}`, w.Body.String())

	w = do(r, http.MethodPost, "/comments", "forged")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthorizeUsesPolicyTable(t *testing.T) {
	r, a := newRouter()
	ok := func(c *gin.Context) { c.Status(http.StatusOK) }
	r.DELETE("/categories/1", a.Auth(), a.Authorize(policy.Categories, policy.Delete), ok)
	r.PUT("/comments/1/approve", a.Auth(), a.Authorize(policy.Comments, policy.Moderate), ok)
	r.GET("/unguarded", a.Authorize(policy.Stats, policy.Read), ok)

	assert.Equal(t, http.StatusOK, do(r, http.MethodDelete, "/categories/1", "admin-token").Code)

	w := do(r, http.MethodDelete, "/categories/1", "editor-token")
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "Insufficient permissions", errorOf(t, w))

	assert.Equal(t, http.StatusOK, do(r, http.MethodPut, "/comments/1/approve", "editor-token").Code)
	assert.Equal(t, http.StatusForbidden, do(r, http.MethodPut, "/comments/1/approve", "user-token").Code)
	assert.Equal(t, http.StatusUnauthorized, do(r, http.MethodPut, "/comments/1/approve", "").Code)
	assert.Equal(t, http.StatusUnauthorized, do(r, http.MethodGet, "/unguarded", "").Code)
}

type failingLimiter struct{}

func (failingLimiter) Allow(context.Context, string) (bool, error) { return false, assert.AnError }
func (failingLimiter) Close() error                               { return nil }

func TestRateLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := helper.NewHTTPHelper()

	r := gin.New()
	r.POST("/comments", RateLimit(ratelimit.NewMemory(rate.Limit(0.001), 2), h, nil), func(c *gin.Context) {
		c.Status(http.StatusCreated)
	})

	assert.Equal(t, http.StatusCreated, do(r, http.MethodPost, "/comments", "").Code)
	assert.Equal(t, http.StatusCreated, do(r, http.MethodPost, "/comments", "").Code)
	w := do(r, http.MethodPost, "/comments", "")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.NotEmpty(t, errorOf(t, w))

	open := gin.New()
	open.POST("/comments", RateLimit(failingLimiter{}, h, nil), func(c *gin.Context) { c.Status(http.StatusCreated) })
	assert.Equal(t, http.StatusCreated, do(open, http.MethodPost, "/comments", "").Code)
}

func TestSecurityHeadersAndRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	Security(r, []string{"https://news.example.com"}, true)
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Origin", "https://news.example.com")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, w.Header().Get("X-Request-ID"), 36)
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
	assert.Equal(t, "https://news.example.com", w.Header().Get("Access-Control-Allow-Origin"))

	big := httptest.NewRequest(http.MethodPost, "/ping", strings.NewReader("x"))
	big.ContentLength = maxRequestSize + 1
	w = httptest.NewRecorder()
	r.ServeHTTP(w, big)
	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
}

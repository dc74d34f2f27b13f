package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"newsportal/helper"
	"newsportal/models"
	"newsportal/policy"
	"newsportal/services"
)

const (
	ctxUserID = "user_id"
	ctxEmail  = "email"
	ctxRole   = "role"
)

// Identity is the authenticated caller, as carried by the bearer token.
type Identity struct {
	UserID uint
	Email  string
	Role   models.UserRole
}

// CurrentUser returns the identity stored by Auth or OptionalAuth.
func CurrentUser(c *gin.Context) (Identity, bool) {
	id, ok := c.Get(ctxUserID)
	if !ok {
		return Identity{}, false
	}
	return Identity{
		UserID: id.(uint),
		Email:  c.GetString(ctxEmail),
		Role:   models.UserRole(c.GetString(ctxRole)),
	}, true
}

type Authenticator struct {
	authService services.AuthService
	helper      *helper.HTTPHelper
}

func NewAuthenticator(authService services.AuthService, h *helper.HTTPHelper) *Authenticator {
	return &Authenticator{authService: authService, helper: h}
}

// Auth requires a valid bearer token.
func (a *Authenticator) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			a.helper.SendErrorMessage(c, http.StatusUnauthorized, "Authorization header required")
			return
		}
		if !a.authenticate(c, authHeader) {
			return
		}
		c.Next()
	}
}

// OptionalAuth attaches the identity when a token is sent. A request
// without one proceeds anonymously; a bad token is still rejected.
func (a *Authenticator) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Next()
			return
		}
		if !a.authenticate(c, authHeader) {
			return
		}
		c.Next()
	}
}

func (a *Authenticator) authenticate(c *gin.Context, authHeader string) bool {
	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == authHeader || tokenString == "" {
		a.helper.SendErrorMessage(c, http.StatusUnauthorized, "Bearer token required")
		return false
	}

	claims, err := a.authService.ParseToken(tokenString)
	if err != nil {
		a.helper.SendError(c, err)
		return false
	}

	c.Set(ctxUserID, claims.ID)
	c.Set(ctxEmail, claims.Email)
	c.Set(ctxRole, string(claims.Role))
	return true
}

// Authorize consults the policy table for the authenticated role. It must
// run after Auth.
func (a *Authenticator) Authorize(resource policy.Resource, action policy.Action) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok {
			a.helper.SendErrorMessage(c, http.StatusUnauthorized, "Authentication required")
			return
		}
		if !policy.Allowed(user.Role, resource, action) {
			a.helper.SendErrorMessage(c, http.StatusForbidden, "Insufficient permissions")
			return
		}
		c.Next()
	}
}

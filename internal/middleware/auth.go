package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"shuttle_tracker/internal/models"
	"shuttle_tracker/internal/session"
)

const sessionContextKey = "session"

// Auth resolves the session cookie and enforces role requirements. All
// role-to-endpoint decisions go through RequireRole so the mapping is
// declared once at route registration, not re-derived per handler.
type Auth struct {
	sessions *session.Manager
}

func NewAuth(sessions *session.Manager) *Auth {
	return &Auth{sessions: sessions}
}

// SessionFrom returns the session attached by RequireAuth/RequireRole.
func SessionFrom(c *gin.Context) *session.Session {
	if v, ok := c.Get(sessionContextKey); ok {
		if sess, ok := v.(*session.Session); ok {
			return sess
		}
	}
	return nil
}

// authenticate resolves the request's session and attaches it to the
// context, aborting with 401/500 on failure. It never advances the handler
// chain itself; gin continues automatically when the middleware returns
// without aborting.
func (a *Auth) authenticate(c *gin.Context) bool {
	sess, err := a.sessions.FromRequest(c)
	if err != nil {
		logrus.WithError(err).Error("session lookup failed")
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return false
	}
	if sess == nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return false
	}
	c.Set(sessionContextKey, sess)
	return true
}

// RequireAuth ensures the request belongs to an authenticated session.
func (a *Auth) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		a.authenticate(c)
	}
}

// RequireRole ensures the session exists and its role is one of roles. The
// role check happens before the protected handler ever runs.
func (a *Auth) RequireRole(roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !a.authenticate(c) {
			return
		}
		sess := SessionFrom(c)
		for _, role := range roles {
			if sess.User.Role == role {
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Forbidden"})
	}
}

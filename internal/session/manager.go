package session

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// CookieName is the session cookie set on login.
const CookieName = "shuttle_session"

// Manager binds server-side session records to a signed browser cookie. The
// cookie value is an HS256 token whose subject is the session id; the token
// proves the id was issued by us, the record itself stays on the server.
type Manager struct {
	store  Store
	secret []byte
	ttl    time.Duration
}

func NewManager(store Store, secret string, ttl time.Duration) *Manager {
	return &Manager{store: store, secret: []byte(secret), ttl: ttl}
}

// Issue creates a session record for user and sets the signed cookie on the
// response.
func (m *Manager) Issue(c *gin.Context, user User) (*Session, error) {
	sess := Session{
		ID:        uuid.NewString(),
		User:      user,
		ExpiresAt: time.Now().Add(m.ttl),
	}
	if err := m.store.Create(c.Request.Context(), sess); err != nil {
		return nil, err
	}

	claims := jwt.RegisteredClaims{
		Subject:   sess.ID,
		ExpiresAt: jwt.NewNumericDate(sess.ExpiresAt),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return nil, err
	}

	c.SetCookie(CookieName, token, int(m.ttl.Seconds()), "/", "", false, true)
	return &sess, nil
}

// FromRequest resolves the request's cookie to a live session, or (nil, nil)
// when there is no valid one.
func (m *Manager) FromRequest(c *gin.Context) (*Session, error) {
	raw, err := c.Cookie(CookieName)
	if err != nil || raw == "" {
		return nil, nil
	}

	token, err := jwt.ParseWithClaims(raw, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, nil
	}
	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return nil, nil
	}

	return m.store.Get(c.Request.Context(), claims.Subject)
}

// Clear destroys the request's session record (if any) and expires the
// cookie.
func (m *Manager) Clear(c *gin.Context) error {
	sess, err := m.FromRequest(c)
	if err != nil {
		return err
	}
	if sess != nil {
		if err := m.store.Delete(c.Request.Context(), sess.ID); err != nil {
			return err
		}
	}
	c.SetCookie(CookieName, "", -1, "/", "", false, true)
	return nil
}

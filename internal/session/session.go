package session

import (
	"context"
	"time"

	"shuttle_tracker/internal/models"
)

// User is the sanitized profile held in a session record. It is captured at
// login and is what every subsequent request consults; the password never
// enters the session.
type User struct {
	ID       uint        `json:"id"`
	Name     string      `json:"name"`
	Email    string      `json:"email"`
	Username string      `json:"username"`
	Role     models.Role `json:"role"`
	BusID    *int        `json:"busId"`
}

// Session is one server-side authenticated session with a fixed absolute
// expiry. The cookie only carries the signed id; destroying the record logs
// the browser out regardless of what it still holds.
type Session struct {
	ID        string    `json:"id"`
	User      User      `json:"user"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Expired reports whether the session's absolute lifetime has passed.
func (s *Session) Expired() bool {
	return time.Now().After(s.ExpiresAt)
}

// Store persists session records. Get returns (nil, nil) for unknown or
// expired ids.
type Store interface {
	Create(ctx context.Context, sess Session) error
	Get(ctx context.Context, id string) (*Session, error)
	Delete(ctx context.Context, id string) error
}

package session

import (
	"context"
	"testing"
	"time"

	"shuttle_tracker/internal/models"
)

func newTestStore(t *testing.T) *MemoryStore {
	t.Helper()
	s := NewMemoryStore(time.Hour)
	t.Cleanup(s.Close)
	return s
}

func TestMemoryStore_CreateGetDelete(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	sess := Session{
		ID:        "abc",
		User:      User{ID: 1, Username: "admin", Role: models.RoleAdmin},
		ExpiresAt: time.Now().Add(time.Hour),
	}
	if err := s.Create(ctx, sess); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := s.Get(ctx, "abc")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got == nil || got.User.Username != "admin" {
		t.Fatalf("Get returned %+v", got)
	}

	if err := s.Delete(ctx, "abc"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	got, err = s.Get(ctx, "abc")
	if err != nil || got != nil {
		t.Errorf("after delete: got (%v, %v), want (nil, nil)", got, err)
	}
}

func TestMemoryStore_UnknownIDIsNil(t *testing.T) {
	s := newTestStore(t)
	got, err := s.Get(context.Background(), "missing")
	if err != nil || got != nil {
		t.Errorf("got (%v, %v), want (nil, nil)", got, err)
	}
}

func TestMemoryStore_ExpiredSessionNotReturned(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	sess := Session{
		ID:        "old",
		User:      User{ID: 1},
		ExpiresAt: time.Now().Add(-time.Minute),
	}
	if err := s.Create(ctx, sess); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := s.Get(ctx, "old")
	if err != nil || got != nil {
		t.Errorf("expired session: got (%v, %v), want (nil, nil)", got, err)
	}
}

func TestMemoryStore_JanitorEvicts(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	if err := s.Create(ctx, Session{ID: "old", ExpiresAt: time.Now().Add(-time.Minute)}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := s.Create(ctx, Session{ID: "live", ExpiresAt: time.Now().Add(time.Hour)}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	s.evictExpired()

	s.mu.RLock()
	_, oldKept := s.sessions["old"]
	_, liveKept := s.sessions["live"]
	s.mu.RUnlock()
	if oldKept {
		t.Error("expired record should have been evicted")
	}
	if !liveKept {
		t.Error("live record should have been kept")
	}
}

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"shuttle_tracker/internal/models"
	"shuttle_tracker/internal/session"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestManager(t *testing.T) *session.Manager {
	t.Helper()
	store := session.NewMemoryStore(time.Hour)
	t.Cleanup(store.Close)
	return session.NewManager(store, "test-secret", time.Hour)
}

func issueCookie(t *testing.T, mgr *session.Manager, role models.Role) *http.Cookie {
	t.Helper()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/login", nil)
	if _, err := mgr.Issue(c, session.User{ID: 1, Username: "someone", Role: role}); err != nil {
		t.Fatalf("Issue: %v", err)
	}
	for _, ck := range w.Result().Cookies() {
		if ck.Name == session.CookieName {
			return ck
		}
	}
	t.Fatal("no session cookie issued")
	return nil
}

func TestRequireRole_RejectsBeforeHandlerRuns(t *testing.T) {
	mgr := newTestManager(t)
	guard := NewAuth(mgr)

	handlerRan := false
	r := gin.New()
	r.POST("/admin-only", guard.RequireRole(models.RoleAdmin), func(c *gin.Context) {
		handlerRan = true
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	})

	req := httptest.NewRequest(http.MethodPost, "/admin-only", nil)
	req.AddCookie(issueCookie(t, mgr, models.RoleStudent))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Errorf("status %d, want 403", w.Code)
	}
	if handlerRan {
		t.Error("protected handler must not run for a disallowed role")
	}
	if w.Body.String() != `{"message":"Forbidden"}` {
		t.Errorf("body %q, want exactly the forbidden message", w.Body.String())
	}

	// The allowed role still reaches the handler.
	req = httptest.NewRequest(http.MethodPost, "/admin-only", nil)
	req.AddCookie(issueCookie(t, mgr, models.RoleAdmin))
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK || !handlerRan {
		t.Errorf("admin request: status %d, handlerRan %v", w.Code, handlerRan)
	}
}

func TestRequireAuth_RejectsAnonymousBeforeHandlerRuns(t *testing.T) {
	guard := NewAuth(newTestManager(t))

	handlerRan := false
	r := gin.New()
	r.GET("/private", guard.RequireAuth(), func(c *gin.Context) {
		handlerRan = true
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/private", nil))

	if w.Code != http.StatusUnauthorized {
		t.Errorf("status %d, want 401", w.Code)
	}
	if handlerRan {
		t.Error("handler must not run without a session")
	}
}

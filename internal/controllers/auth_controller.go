package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"shuttle_tracker/internal/middleware"
	"shuttle_tracker/internal/models"
	"shuttle_tracker/internal/session"
	"shuttle_tracker/internal/store"
)

// AuthController handles login, registration and session introspection.
type AuthController struct {
	store    store.Store
	sessions *session.Manager
}

func NewAuthController(s store.Store, sessions *session.Manager) *AuthController {
	return &AuthController{store: s, sessions: sessions}
}

type loginInput struct {
	Username string `json:"username" binding:"required,min=3"`
	Password string `json:"password" binding:"required,min=6"`
}

type registerInput struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Username string `json:"username" binding:"required,min=3"`
	Password string `json:"password" binding:"required,min=6"`
	// Role is accepted but ignored: public registration always produces a
	// student account.
	Role string `json:"role"`
}

// sanitizeUser converts a stored user into the session/response profile,
// dropping the credential.
func sanitizeUser(user *models.User) session.User {
	return session.User{
		ID:       user.ID,
		Name:     user.Name,
		Email:    user.Email,
		Username: user.Username,
		Role:     user.Role,
		BusID:    user.BusID,
	}
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Login authenticates a username/password pair and issues a session cookie.
// Unknown username and wrong password produce the same generic response so
// neither field is confirmed to the caller.
func (ac *AuthController) Login(c *gin.Context) {
	var input loginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	user, err := ac.store.GetUserByUsername(c.Request.Context(), input.Username)
	if err != nil {
		logrus.WithError(err).Error("login: user lookup failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}
	if user == nil || bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)) != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid username or password"})
		return
	}

	sess, err := ac.sessions.Issue(c, sanitizeUser(user))
	if err != nil {
		logrus.WithError(err).Error("login: could not create session")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, sess.User)
}

// Register creates a student account. The role field in the payload is never
// honored on this path.
func (ac *AuthController) Register(c *gin.Context) {
	var input registerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	user := createUserChecked(c, ac.store, input.Name, input.Email, input.Username, input.Password, models.RoleStudent, nil)
	if user == nil {
		return // response already written
	}

	c.JSON(http.StatusCreated, sanitizeUser(user))
}

// createUserChecked runs the uniqueness pre-checks and insert shared by
// public registration and admin driver creation. It writes the error
// response itself and returns nil when the request failed.
func createUserChecked(c *gin.Context, s store.Store, name, email, username, password string, role models.Role, busID *int) *models.User {
	ctx := c.Request.Context()

	existing, err := s.GetUserByUsername(ctx, username)
	if err != nil {
		logrus.WithError(err).Error("create user: username lookup failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return nil
	}
	if existing != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Username is already taken"})
		return nil
	}

	existing, err = s.GetUserByEmail(ctx, email)
	if err != nil {
		logrus.WithError(err).Error("create user: email lookup failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return nil
	}
	if existing != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Email is already registered"})
		return nil
	}

	hash, err := hashPassword(password)
	if err != nil {
		logrus.WithError(err).Error("create user: could not hash password")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return nil
	}

	user := &models.User{
		Name:     name,
		Email:    email,
		Username: username,
		Password: hash,
		Role:     role,
		BusID:    busID,
	}
	if err := s.CreateUser(ctx, user); err != nil {
		// The storage-level constraint backs the pre-checks against a
		// check-then-create race.
		if errors.Is(err, store.ErrDuplicate) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Username or email is already taken"})
			return nil
		}
		logrus.WithError(err).Error("create user: insert failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return nil
	}
	return user
}

// Me returns the authenticated session's user.
func (ac *AuthController) Me(c *gin.Context) {
	sess := middleware.SessionFrom(c)
	c.JSON(http.StatusOK, sess.User)
}

// Logout destroys the session record and expires the cookie.
func (ac *AuthController) Logout(c *gin.Context) {
	if err := ac.sessions.Clear(c); err != nil {
		logrus.WithError(err).Error("logout: could not destroy session")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to logout"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}

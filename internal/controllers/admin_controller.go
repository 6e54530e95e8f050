package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"shuttle_tracker/internal/models"
	"shuttle_tracker/internal/session"
	"shuttle_tracker/internal/store"
)

// AdminController covers the admin-only surface: user listing and driver
// account provisioning.
type AdminController struct {
	store store.Store
}

func NewAdminController(s store.Store) *AdminController {
	return &AdminController{store: s}
}

type createDriverInput struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Username string `json:"username" binding:"required,min=3"`
	Password string `json:"password" binding:"required,min=6"`
	BusID    *int   `json:"busId" binding:"required"`
	// Role is ignored: this path always produces a driver.
	Role string `json:"role"`
}

// ListUsers returns every account, sanitized.
func (ac *AdminController) ListUsers(c *gin.Context) {
	users, err := ac.store.GetUsers(c.Request.Context())
	if err != nil {
		logrus.WithError(err).Error("list users failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	sanitized := make([]session.User, 0, len(users))
	for i := range users {
		sanitized = append(sanitized, sanitizeUser(&users[i]))
	}
	c.JSON(http.StatusOK, sanitized)
}

// CreateDriver provisions a driver account bound to bus 1 or 2. Any
// client-supplied role is overwritten.
func (ac *AdminController) CreateDriver(c *gin.Context) {
	var input createDriverInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	if *input.BusID != 1 && *input.BusID != 2 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Bus ID must be either 1 or 2"})
		return
	}

	user := createUserChecked(c, ac.store, input.Name, input.Email, input.Username, input.Password, models.RoleDriver, input.BusID)
	if user == nil {
		return // response already written
	}

	c.JSON(http.StatusCreated, sanitizeUser(user))
}

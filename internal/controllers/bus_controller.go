package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"shuttle_tracker/internal/store"
)

// BusController serves the read-only bus views every authenticated role may
// poll.
type BusController struct {
	store store.Store
}

func NewBusController(s store.Store) *BusController {
	return &BusController{store: s}
}

// ListBuses returns all buses with their current status and last known
// location.
func (bc *BusController) ListBuses(c *gin.Context) {
	buses, err := bc.store.GetBuses(c.Request.Context())
	if err != nil {
		logrus.WithError(err).Error("list buses failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, buses)
}

// GetBus returns a single bus by record id.
func (bc *BusController) GetBus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid bus ID"})
		return
	}

	bus, err := bc.store.GetBus(c.Request.Context(), uint(id))
	if err != nil {
		logrus.WithError(err).Error("get bus failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}
	if bus == nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Bus not found"})
		return
	}
	c.JSON(http.StatusOK, bus)
}

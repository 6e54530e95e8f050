package controllers

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/twpayne/go-geom"

	"shuttle_tracker/internal/middleware"
	"shuttle_tracker/internal/models"
	"shuttle_tracker/internal/store"
)

// DriverController covers the driver-only operations on the driver's own bus.
type DriverController struct {
	store store.Store
}

func NewDriverController(s store.Store) *DriverController {
	return &DriverController{store: s}
}

type updateLocationInput struct {
	Latitude  string `json:"latitude" binding:"required"`
	Longitude string `json:"longitude" binding:"required"`
}

type toggleStatusInput struct {
	// Pointer so an omitted field (flip) is distinguishable from false.
	IsActive *bool `json:"isActive"`
}

// parsePoint validates that the reported coordinate strings form a usable
// geographic point. Well-formedness only: reports are otherwise trusted
// verbatim, with no distance or rate checks at this scale.
func parsePoint(latitude, longitude string) (*geom.Point, error) {
	lat, err := strconv.ParseFloat(latitude, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid latitude %q", latitude)
	}
	lng, err := strconv.ParseFloat(longitude, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid longitude %q", longitude)
	}
	if lat < -90 || lat > 90 {
		return nil, fmt.Errorf("latitude %v out of range", lat)
	}
	if lng < -180 || lng > 180 {
		return nil, fmt.Errorf("longitude %v out of range", lng)
	}
	return geom.NewPointFlat(geom.XY, []float64{lng, lat}), nil
}

// UpdateLocation overwrites the bus's last known position and appends one row
// to the location log. The two writes are independent; there is no
// transactional grouping between them.
func (dc *DriverController) UpdateLocation(c *gin.Context) {
	sess := middleware.SessionFrom(c)
	if sess.User.BusID == nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "No bus assigned to the driver"})
		return
	}

	var input updateLocationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	point, err := parsePoint(input.Latitude, input.Longitude)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	ctx := c.Request.Context()
	bus, err := dc.store.GetBusByNumber(ctx, *sess.User.BusID)
	if err != nil {
		logrus.WithError(err).Error("update location: bus lookup failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}
	if bus == nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Bus not found"})
		return
	}

	if _, err := dc.store.UpdateBusLocation(ctx, bus.ID, input.Latitude, input.Longitude); err != nil {
		logrus.WithError(err).Error("update location: bus update failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	loc := models.BusLocation{
		BusID:     bus.ID,
		Latitude:  input.Latitude,
		Longitude: input.Longitude,
	}
	if err := dc.store.CreateBusLocation(ctx, &loc); err != nil {
		logrus.WithError(err).Error("update location: history append failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	logrus.WithFields(logrus.Fields{
		"bus": bus.BusNumber,
		"lat": point.Y(),
		"lng": point.X(),
	}).Debug("location updated")
	c.JSON(http.StatusOK, gin.H{"message": "Location updated successfully"})
}

// ToggleStatus flips the bus's active flag, or sets it when the body carries
// an explicit value. lastUpdated is stamped either way.
func (dc *DriverController) ToggleStatus(c *gin.Context) {
	sess := middleware.SessionFrom(c)
	if sess.User.BusID == nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "No bus assigned to the driver"})
		return
	}

	// An empty body means "flip".
	var input toggleStatusInput
	if err := c.ShouldBindJSON(&input); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	ctx := c.Request.Context()
	bus, err := dc.store.GetBusByNumber(ctx, *sess.User.BusID)
	if err != nil {
		logrus.WithError(err).Error("toggle status: bus lookup failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}
	if bus == nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Bus not found"})
		return
	}

	isActive := !bus.IsActive
	if input.IsActive != nil {
		isActive = *input.IsActive
	}
	if _, err := dc.store.UpdateBusStatus(ctx, bus.ID, isActive); err != nil {
		logrus.WithError(err).Error("toggle status: bus update failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	if isActive {
		c.JSON(http.StatusOK, gin.H{"message": "Bus activated successfully"})
	} else {
		c.JSON(http.StatusOK, gin.H{"message": "Bus deactivated successfully"})
	}
}

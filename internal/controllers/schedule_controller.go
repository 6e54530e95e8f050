package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"shuttle_tracker/internal/models"
	"shuttle_tracker/internal/store"
)

// ScheduleController serves the static timetable.
type ScheduleController struct {
	store store.Store
}

func NewScheduleController(s store.Store) *ScheduleController {
	return &ScheduleController{store: s}
}

// ListSchedules filters the seeded rows by day (default weekday) and an
// optional bus id. No match is an empty list, not an error.
func (sc *ScheduleController) ListSchedules(c *gin.Context) {
	day := models.Day(c.DefaultQuery("day", string(models.DayWeekday)))

	var busID *uint
	if raw := c.Query("busId"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid bus ID"})
			return
		}
		v := uint(id)
		busID = &v
	}

	schedules, err := sc.store.GetSchedules(c.Request.Context(), day, busID)
	if err != nil {
		logrus.WithError(err).Error("list schedules failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}
	if schedules == nil {
		schedules = []models.Schedule{}
	}
	c.JSON(http.StatusOK, schedules)
}

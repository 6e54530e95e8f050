package routes

import (
	"github.com/gin-gonic/gin"
)

func ScheduleRoutes(r *gin.Engine, d Deps) {
	r.GET("/api/schedules", d.Guard.RequireAuth(), d.Schedule.ListSchedules)
}

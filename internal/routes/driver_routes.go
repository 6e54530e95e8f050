package routes

import (
	"github.com/gin-gonic/gin"

	"shuttle_tracker/internal/models"
)

func DriverRoutes(r *gin.Engine, d Deps) {
	driver := r.Group("/api/driver")
	driver.Use(d.Guard.RequireRole(models.RoleDriver))
	{
		driver.POST("/update-location", d.Driver.UpdateLocation)
		driver.POST("/toggle-status", d.Driver.ToggleStatus)
	}
}

package routes

import (
	"github.com/gin-gonic/gin"

	"shuttle_tracker/internal/models"
)

func AdminRoutes(r *gin.Engine, d Deps) {
	r.GET("/api/users", d.Guard.RequireRole(models.RoleAdmin), d.Admin.ListUsers)

	admin := r.Group("/api/admin")
	admin.Use(d.Guard.RequireRole(models.RoleAdmin))
	{
		admin.POST("/create-driver", d.Admin.CreateDriver)
	}
}

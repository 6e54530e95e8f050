package routes

import (
	"github.com/gin-gonic/gin"
)

func BusRoutes(r *gin.Engine, d Deps) {
	buses := r.Group("/api/buses")
	buses.Use(d.Guard.RequireAuth())
	{
		buses.GET("", d.Bus.ListBuses)
		buses.GET("/:id", d.Bus.GetBus)
	}
}

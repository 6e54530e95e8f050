package routes

import (
	ginlog "github.com/gin-contrib/logger"
	"github.com/gin-gonic/gin"

	"shuttle_tracker/internal/controllers"
	"shuttle_tracker/internal/middleware"
)

// Deps carries the constructed controllers and the auth guard into route
// registration. Everything is built once at process start and passed down;
// there are no package-level singletons.
type Deps struct {
	Auth     *controllers.AuthController
	Admin    *controllers.AdminController
	Bus      *controllers.BusController
	Driver   *controllers.DriverController
	Schedule *controllers.ScheduleController
	Config   *controllers.ConfigController
	Guard    *middleware.Auth
}

// SetupRouter registers every endpoint group on a fresh engine.
func SetupRouter(d Deps) *gin.Engine {
	r := gin.New()

	// Recovery middleware
	r.Use(gin.Recovery())

	// Request logging middleware
	r.Use(ginlog.SetLogger())

	AuthRoutes(r, d)
	AdminRoutes(r, d)
	BusRoutes(r, d)
	DriverRoutes(r, d)
	ScheduleRoutes(r, d)

	r.GET("/api/config/maps-key", d.Config.MapsKey)

	return r
}

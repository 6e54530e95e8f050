package routes

import (
	"github.com/gin-gonic/gin"
)

func AuthRoutes(r *gin.Engine, d Deps) {
	auth := r.Group("/api/auth")
	{
		auth.POST("/login", d.Auth.Login)
		auth.POST("/register", d.Auth.Register)
		auth.GET("/me", d.Guard.RequireAuth(), d.Auth.Me)
		auth.POST("/logout", d.Guard.RequireAuth(), d.Auth.Logout)
	}
}

package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ConfigController exposes client bootstrap configuration. The maps provider
// key is fetched here at runtime so it is never baked into static assets.
type ConfigController struct {
	mapsAPIKey string
}

func NewConfigController(mapsAPIKey string) *ConfigController {
	return &ConfigController{mapsAPIKey: mapsAPIKey}
}

func (cc *ConfigController) MapsKey(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"key": cc.mapsAPIKey})
}

package routes

import (
	"portfolio/internal/controllers"
	"portfolio/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterSiteConfigRoutes(router *gin.Engine, siteConfigController *controllers.SiteConfigController, auth *middleware.Authenticator, cacheControl string) {
	router.GET("/api/site-config", middleware.CacheControl(cacheControl), siteConfigController.GetSiteConfig)
	router.PUT("/api/site-config", auth.RequireAdmin(), siteConfigController.UpdateSiteConfig)
}

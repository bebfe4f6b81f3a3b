package routes

import (
	"portfolio/internal/controllers"
	"portfolio/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterProjectRoutes(router *gin.Engine, projectController *controllers.ProjectController, auth *middleware.Authenticator, cacheControl string) {
	projectRoutesPublic := router.Group("/api/projects")
	projectRoutesPublic.Use(middleware.CacheControl(cacheControl))
	{
		projectRoutesPublic.GET("", projectController.ListProjects)
		projectRoutesPublic.GET("/:slug", projectController.GetProject)
	}
	projectRoutesPrivate := router.Group("/api/projects")
	projectRoutesPrivate.Use(auth.RequireAdmin())
	{
		projectRoutesPrivate.POST("", projectController.CreateProject)
		projectRoutesPrivate.PUT("/:id", projectController.UpdateProject)
		projectRoutesPrivate.DELETE("/:id", projectController.DeleteProject)
	}
}

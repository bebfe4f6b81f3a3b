package routes

import (
	"portfolio/internal/middleware"

	"github.com/gin-gonic/gin"
)

// CollectionHandlers is the handler set every ordered collection exposes.
type CollectionHandlers interface {
	List(c *gin.Context)
	Create(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
}

// RegisterCollectionRoutes mounts one collection under /api/<path>.
func RegisterCollectionRoutes(router *gin.Engine, path string, handlers CollectionHandlers, auth *middleware.Authenticator, cacheControl string) {
	group := "/api/" + path
	router.GET(group, middleware.CacheControl(cacheControl), handlers.List)

	collectionRoutesPrivate := router.Group(group)
	collectionRoutesPrivate.Use(auth.RequireAdmin())
	{
		collectionRoutesPrivate.POST("", handlers.Create)
		collectionRoutesPrivate.PUT("/:id", handlers.Update)
		collectionRoutesPrivate.DELETE("/:id", handlers.Delete)
	}
}

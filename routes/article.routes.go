package routes

import (
	"portfolio/internal/controllers"
	"portfolio/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterArticleRoutes(router *gin.Engine, articleController *controllers.ArticleController, auth *middleware.Authenticator, cacheControl string) {
	articleRoutesPublic := router.Group("/api/articles")
	{
		articleRoutesPublic.GET("", middleware.CacheControl(cacheControl), articleController.ListArticles)
		articleRoutesPublic.GET("/:slug", middleware.CacheControl(cacheControl), articleController.GetArticle)
		articleRoutesPublic.POST("/:slug/view", articleController.RecordView)
	}
	articleRoutesPrivate := router.Group("/api/articles")
	articleRoutesPrivate.Use(auth.RequireAdmin())
	{
		articleRoutesPrivate.POST("", articleController.CreateArticle)
		articleRoutesPrivate.PUT("/:id", articleController.UpdateArticle)
		articleRoutesPrivate.DELETE("/:id", articleController.DeleteArticle)
	}
}

package routes

import (
	"portfolio/internal/controllers"
	"portfolio/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterMessageRoutes(router *gin.Engine, messageController *controllers.MessageController, auth *middleware.Authenticator) {
	router.POST("/api/messages", messageController.SubmitMessage)

	messageRoutesPrivate := router.Group("/api/messages")
	messageRoutesPrivate.Use(auth.RequireAdmin())
	{
		messageRoutesPrivate.GET("", messageController.ListMessages)
		messageRoutesPrivate.PATCH("/:id/read", messageController.MarkMessageRead)
		messageRoutesPrivate.DELETE("/:id", messageController.DeleteMessage)
	}
}

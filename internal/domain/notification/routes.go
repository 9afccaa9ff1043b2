package notification

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	notifs := r.Group("/notifications")
	{
		notifs.GET("", handler.List)
		notifs.POST("/:id/read", handler.MarkRead)
		notifs.POST("/read-all", handler.MarkAllRead)
	}
}

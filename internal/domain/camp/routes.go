package camp

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	camps := r.Group("/camps")
	{
		camps.GET("", handler.List)
		camps.POST("", handler.Create)
		camps.GET("/:id", handler.Get)
		camps.PATCH("/:id", handler.Update)
		camps.DELETE("/:id", handler.Delete)
		camps.GET("/:id/registrations", handler.ListRegistrations)
		camps.POST("/:id/registrations", handler.Register)
		camps.DELETE("/:id/registrations/:regId", handler.Unregister)
	}
}

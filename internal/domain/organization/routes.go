package organization

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	orgs := r.Group("/organizations")
	{
		orgs.GET("", handler.List)
		orgs.POST("", handler.Create)
		orgs.GET("/:id", handler.Get)
		orgs.PATCH("/:id", handler.Update)
		orgs.DELETE("/:id", handler.Delete)
	}
}

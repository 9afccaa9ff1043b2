package staff

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	staff := r.Group("/staff")
	{
		staff.GET("", handler.List)
		staff.POST("", handler.Create)
		staff.GET("/:id", handler.Get)
		staff.PATCH("/:id", handler.Update)
		staff.DELETE("/:id", handler.Delete)
	}
}

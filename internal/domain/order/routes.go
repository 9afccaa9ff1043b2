package order

import "github.com/gin-gonic/gin"

// RegisterRoutes registers authenticated order routes
func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	orders := r.Group("/orders")
	{
		orders.GET("", handler.ListOrders)
		orders.POST("", handler.CreateOrder)
		orders.GET("/:id", handler.GetOrder)
		orders.PATCH("/:id", handler.UpdateOrder)
		orders.PATCH("/:id/status", handler.UpdateStatus)
		orders.PATCH("/:id/assign", handler.AssignOrder)
		orders.DELETE("/:id", handler.DeleteOrder)
	}
}

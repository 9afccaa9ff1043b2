package lead

import "github.com/gin-gonic/gin"

// RegisterRoutes registers authenticated lead routes
func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	leads := r.Group("/leads")
	{
		leads.GET("", handler.ListLeads)
		leads.POST("", handler.CreateLead)
		leads.GET("/stats", handler.GetStats)
		leads.GET("/:id", handler.GetLead)
		leads.PATCH("/:id", handler.UpdateLead)
		leads.POST("/:id/claim", handler.ClaimLead)
		leads.POST("/:id/convert", handler.ConvertLead)
		leads.PATCH("/:id/status", handler.UpdateStatus)
		leads.POST("/:id/lost", handler.MarkLost)
	}
}

// RegisterAdminRoutes registers admin-only lead routes
func RegisterAdminRoutes(r *gin.RouterGroup, handler *Handler) {
	r.DELETE("/leads/:id", handler.DeleteLead)
}

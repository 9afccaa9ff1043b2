package auth

import "github.com/gin-gonic/gin"

// RegisterPublicRoutes registers unauthenticated auth routes
func RegisterPublicRoutes(r *gin.RouterGroup, handler *Handler) {
	r.POST("/auth/login", handler.Login)
}

// RegisterProtectedRoutes registers routes behind the auth middleware
func RegisterProtectedRoutes(r *gin.RouterGroup, handler *Handler) {
	r.GET("/auth/me", handler.Me)
}

// RegisterAdminRoutes registers admin-only account management routes
func RegisterAdminRoutes(r *gin.RouterGroup, handler *Handler) {
	r.POST("/auth/register", handler.Register)
	r.GET("/auth/users", handler.ListUsers)
}

package chat

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	chat := r.Group("/chat")
	{
		chat.GET("/channels", handler.ListChannels)
		chat.POST("/channels/direct", handler.CreateDirect)
		chat.POST("/channels/team", handler.CreateTeam)

		chat.GET("/ws", handler.WebSocket)

		chat.GET("/channels/:id/messages", handler.GetMessages)
		chat.POST("/channels/:id/messages", handler.SendMessage)
		chat.POST("/channels/:id/read", handler.MarkRead)
		chat.POST("/channels/:id/leave", handler.Leave)
		chat.GET("/channels/:id/members", handler.GetMembers)
		chat.POST("/channels/:id/members", handler.AddMember)
	}
}

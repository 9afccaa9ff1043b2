package chat

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"merchflow/internal/pkg/response"
	"merchflow/internal/pkg/validator"
)

type Handler struct {
	service *Service
	hub     *Hub
}

func NewHandler(service *Service, hub *Hub) *Handler {
	return &Handler{service: service, hub: hub}
}

func currentUserID(c *gin.Context) int64 {
	v, _ := c.Get("user_id")
	id, _ := v.(int64)
	return id
}

func (h *Handler) CreateDirect(c *gin.Context) {
	var req CreateDirectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}
	if errs := validator.Validate(&req); errs != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Invalid request", errs)
		return
	}

	ch, err := h.service.GetOrCreateDirect(c.Request.Context(), currentUserID(c), req.RecipientID)
	if err != nil {
		if err == ErrSelfChannel {
			response.Error(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Cannot start a direct channel with yourself")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to open channel")
		return
	}
	response.Success(c, http.StatusOK, ch)
}

func (h *Handler) CreateTeam(c *gin.Context) {
	var req CreateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}
	if errs := validator.Validate(&req); errs != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Invalid request", errs)
		return
	}

	ch, err := h.service.CreateTeam(c.Request.Context(), currentUserID(c), req.Name, req.MemberIDs)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create channel")
		return
	}
	response.Success(c, http.StatusCreated, ch)
}

func (h *Handler) ListChannels(c *gin.Context) {
	channels, err := h.service.ListChannels(c.Request.Context(), currentUserID(c))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list channels")
		return
	}
	response.Success(c, http.StatusOK, channels)
}

func (h *Handler) GetMessages(c *gin.Context) {
	channelID := c.Param("id")
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	msgs, err := h.service.GetMessages(c.Request.Context(), currentUserID(c), channelID, limit, offset)
	if err != nil {
		h.writeChatError(c, err, "Failed to load messages")
		return
	}
	response.Success(c, http.StatusOK, msgs)
}

func (h *Handler) SendMessage(c *gin.Context) {
	channelID := c.Param("id")

	var req SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}
	if errs := validator.Validate(&req); errs != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Invalid message", errs)
		return
	}

	msg, err := h.service.SendMessage(c.Request.Context(), currentUserID(c), channelID, req.Content)
	if err != nil {
		h.writeChatError(c, err, "Failed to send message")
		return
	}

	h.hub.Broadcast(channelID, &Event{
		Type:      EventNewMessage,
		ChannelID: channelID,
		Payload:   msg,
	})
	response.Success(c, http.StatusCreated, msg)
}

func (h *Handler) MarkRead(c *gin.Context) {
	if err := h.service.MarkRead(c.Request.Context(), currentUserID(c), c.Param("id")); err != nil {
		h.writeChatError(c, err, "Failed to mark channel read")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"read": true})
}

func (h *Handler) GetMembers(c *gin.Context) {
	members, err := h.service.GetMembers(c.Request.Context(), currentUserID(c), c.Param("id"))
	if err != nil {
		h.writeChatError(c, err, "Failed to list members")
		return
	}
	response.Success(c, http.StatusOK, members)
}

func (h *Handler) AddMember(c *gin.Context) {
	var req AddMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}
	if errs := validator.Validate(&req); errs != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Invalid request", errs)
		return
	}

	if err := h.service.AddMember(c.Request.Context(), currentUserID(c), c.Param("id"), req.UserID); err != nil {
		h.writeChatError(c, err, "Failed to add member")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"added": true})
}

func (h *Handler) Leave(c *gin.Context) {
	if err := h.service.Leave(c.Request.Context(), currentUserID(c), c.Param("id")); err != nil {
		h.writeChatError(c, err, "Failed to leave channel")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"left": true})
}

// WebSocket upgrades the connection and subscribes the user to all of their
// channels. Auth middleware has already validated the token.
func (h *Handler) WebSocket(c *gin.Context) {
	userID := currentUserID(c)

	channelIDs, err := h.service.MemberChannelIDs(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to open socket")
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}
	h.hub.ServeWS(conn, userID, channelIDs)
}

func (h *Handler) writeChatError(c *gin.Context, err error, fallback string) {
	switch err {
	case ErrChannelNotFound:
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Channel not found")
	case ErrNotMember:
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "You are not a member of this channel")
	case ErrNotCreator:
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "Only the channel creator can do that")
	case ErrAlreadyMember:
		response.Error(c, http.StatusConflict, "ALREADY_MEMBER", "User is already a member")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", fallback)
	}
}

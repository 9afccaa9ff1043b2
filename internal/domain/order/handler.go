package order

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"merchflow/internal/pkg/response"
	"merchflow/internal/pkg/validator"
)

// Handler handles order HTTP requests
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func orderID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid order ID")
		return 0, false
	}
	return id, true
}

// CreateOrder handles POST /api/v1/orders
func (h *Handler) CreateOrder(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}
	if errs := validator.Validate(&req); errs != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Invalid order data", errs)
		return
	}

	o, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create order")
		return
	}
	response.Success(c, http.StatusCreated, o)
}

// ListOrders handles GET /api/v1/orders
func (h *Handler) ListOrders(c *gin.Context) {
	var f ListFilter

	if s := c.Query("status"); s != "" {
		status := Status(s)
		if !IsValidStatus(status) {
			response.Error(c, http.StatusBadRequest, "INVALID_STATUS", "Unknown order status")
			return
		}
		f.Status = &status
	}
	if s := c.Query("organization_id"); s != "" {
		if id, err := strconv.ParseInt(s, 10, 64); err == nil {
			f.OrganizationID = &id
		}
	}
	if s := c.Query("assigned_to"); s != "" {
		if id, err := strconv.ParseInt(s, 10, 64); err == nil {
			f.AssignedTo = &id
		}
	}
	f.Search = c.Query("search")
	f.Limit, _ = strconv.Atoi(c.DefaultQuery("limit", "50"))
	f.Offset, _ = strconv.Atoi(c.DefaultQuery("offset", "0"))

	orders, total, err := h.service.List(c.Request.Context(), f)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list orders")
		return
	}
	response.Success(c, http.StatusOK, ListResponse{Orders: orders, Total: total})
}

// GetOrder handles GET /api/v1/orders/:id
func (h *Handler) GetOrder(c *gin.Context) {
	id, ok := orderID(c)
	if !ok {
		return
	}

	o, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		if err == ErrOrderNotFound {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Order not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load order")
		return
	}
	response.Success(c, http.StatusOK, o)
}

// UpdateOrder handles PATCH /api/v1/orders/:id
func (h *Handler) UpdateOrder(c *gin.Context) {
	id, ok := orderID(c)
	if !ok {
		return
	}

	var req UpdateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}
	if errs := validator.Validate(&req); errs != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Invalid order data", errs)
		return
	}

	o, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		if err == ErrOrderNotFound {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Order not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update order")
		return
	}
	response.Success(c, http.StatusOK, o)
}

// UpdateStatus handles PATCH /api/v1/orders/:id/status
func (h *Handler) UpdateStatus(c *gin.Context) {
	id, ok := orderID(c)
	if !ok {
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}
	if errs := validator.Validate(&req); errs != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Invalid status", errs)
		return
	}

	o, err := h.service.UpdateStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		switch err {
		case ErrOrderNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Order not found")
		case ErrInvalidStatus:
			response.Error(c, http.StatusBadRequest, "INVALID_STATUS", "Unknown order status")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update status")
		}
		return
	}
	response.Success(c, http.StatusOK, o)
}

// AssignOrder handles PATCH /api/v1/orders/:id/assign
func (h *Handler) AssignOrder(c *gin.Context) {
	id, ok := orderID(c)
	if !ok {
		return
	}

	var req AssignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}
	if errs := validator.Validate(&req); errs != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Invalid assignment", errs)
		return
	}

	o, err := h.service.Assign(c.Request.Context(), id, req)
	if err != nil {
		switch err {
		case ErrOrderNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Order not found")
		case ErrUnknownAssignee:
			response.Error(c, http.StatusBadRequest, "INVALID_ROLE", "Unknown assignee role")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to assign order")
		}
		return
	}
	response.Success(c, http.StatusOK, o)
}

// DeleteOrder handles DELETE /api/v1/orders/:id
func (h *Handler) DeleteOrder(c *gin.Context) {
	id, ok := orderID(c)
	if !ok {
		return
	}

	actorID := c.GetInt64("user_id")
	actorRole := c.GetString("role")

	if err := h.service.Delete(c.Request.Context(), id, actorID, actorRole); err != nil {
		switch err {
		case ErrOrderNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Order not found")
		case ErrPermissionDenied:
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "DELETE_ORDERS permission required")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to delete order")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"deleted": true,
		"warning": "Related design and manufacturing records are now orphaned",
	})
}

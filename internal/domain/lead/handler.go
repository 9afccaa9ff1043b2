package lead

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"merchflow/internal/pkg/response"
	"merchflow/internal/pkg/validator"
)

// Handler handles lead HTTP requests
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func actorFrom(c *gin.Context) Actor {
	return Actor{
		ID:    c.GetInt64("user_id"),
		Admin: c.GetString("role") == "admin",
	}
}

func leadID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid lead ID")
		return 0, false
	}
	return id, true
}

// CreateLead handles POST /api/v1/leads
func (h *Handler) CreateLead(c *gin.Context) {
	var req CreateLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}
	if errs := validator.Validate(&req); errs != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Invalid lead data", errs)
		return
	}

	l, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create lead")
		return
	}
	response.Success(c, http.StatusCreated, l)
}

// ListLeads handles GET /api/v1/leads
func (h *Handler) ListLeads(c *gin.Context) {
	var f ListFilter

	if s := c.Query("status"); s != "" {
		status := Status(s)
		if !IsValidStatus(status) {
			response.Error(c, http.StatusBadRequest, "INVALID_STATUS", "Unknown lead status")
			return
		}
		f.Status = &status
	}
	if s := c.Query("sales_rep_id"); s != "" {
		if id, err := strconv.ParseInt(s, 10, 64); err == nil {
			f.SalesRepID = &id
		}
	}
	f.Unclaimed = c.Query("unclaimed") == "true"
	f.Search = c.Query("search")
	f.Limit, _ = strconv.Atoi(c.DefaultQuery("limit", "50"))
	f.Offset, _ = strconv.Atoi(c.DefaultQuery("offset", "0"))

	leads, total, err := h.service.List(c.Request.Context(), f)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list leads")
		return
	}
	response.Success(c, http.StatusOK, ListResponse{Leads: leads, Total: total})
}

// GetLead handles GET /api/v1/leads/:id
func (h *Handler) GetLead(c *gin.Context) {
	id, ok := leadID(c)
	if !ok {
		return
	}

	l, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		if err == ErrLeadNotFound {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Lead not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load lead")
		return
	}
	response.Success(c, http.StatusOK, l)
}

// UpdateLead handles PATCH /api/v1/leads/:id
func (h *Handler) UpdateLead(c *gin.Context) {
	id, ok := leadID(c)
	if !ok {
		return
	}

	var req UpdateLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}
	if errs := validator.Validate(&req); errs != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Invalid lead data", errs)
		return
	}

	l, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		switch err {
		case ErrLeadNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Lead not found")
		case ErrAlreadyConverted:
			response.Error(c, http.StatusConflict, "ALREADY_CONVERTED", "Converted leads cannot be edited")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update lead")
		}
		return
	}
	response.Success(c, http.StatusOK, l)
}

// DeleteLead handles DELETE /api/v1/leads/:id (admin only)
func (h *Handler) DeleteLead(c *gin.Context) {
	id, ok := leadID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		if err == ErrLeadNotFound {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Lead not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to delete lead")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

// ClaimLead handles POST /api/v1/leads/:id/claim
func (h *Handler) ClaimLead(c *gin.Context) {
	id, ok := leadID(c)
	if !ok {
		return
	}

	l, err := h.service.Claim(c.Request.Context(), id, actorFrom(c))
	if err != nil {
		switch err {
		case ErrLeadNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Lead not found")
		case ErrAlreadyClaimed:
			response.Error(c, http.StatusConflict, "ALREADY_CLAIMED", "This lead has already been claimed")
		case ErrInvalidStatus:
			response.Error(c, http.StatusConflict, "INVALID_STATUS", "Only new leads can be claimed")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to claim lead")
		}
		return
	}
	response.Success(c, http.StatusOK, l)
}

// ConvertLead handles POST /api/v1/leads/:id/convert
func (h *Handler) ConvertLead(c *gin.Context) {
	id, ok := leadID(c)
	if !ok {
		return
	}

	result, err := h.service.Convert(c.Request.Context(), id, actorFrom(c))
	if err != nil {
		switch err {
		case ErrLeadNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Lead not found")
		case ErrAlreadyConverted:
			response.Error(c, http.StatusConflict, "ALREADY_CONVERTED", "Lead has already been converted")
		case ErrInvalidStatus:
			response.Error(c, http.StatusConflict, "INVALID_STATUS", "Lost leads cannot be converted")
		case ErrNotClaimed:
			response.Error(c, http.StatusConflict, "NOT_CLAIMED", "Lead must be claimed before conversion")
		case ErrNotLeadOwner:
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "Lead is claimed by another rep")
		case ErrVerificationPending:
			response.Error(c, http.StatusConflict, "VERIFICATION_PENDING", "Verification window has not elapsed yet")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to convert lead")
		}
		return
	}
	response.Success(c, http.StatusOK, result)
}

// UpdateStatus handles PATCH /api/v1/leads/:id/status
func (h *Handler) UpdateStatus(c *gin.Context) {
	id, ok := leadID(c)
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

	if err := h.service.UpdateStatus(c.Request.Context(), id, req); err != nil {
		switch err {
		case ErrLeadNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Lead not found")
		case ErrInvalidStatus:
			response.Error(c, http.StatusConflict, "INVALID_STATUS", "Terminal leads cannot change status")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update status")
		}
		return
	}
	response.Success(c, http.StatusOK, gin.H{"updated": true})
}

// MarkLost handles POST /api/v1/leads/:id/lost
func (h *Handler) MarkLost(c *gin.Context) {
	id, ok := leadID(c)
	if !ok {
		return
	}

	var req MarkLostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}
	if errs := validator.Validate(&req); errs != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Invalid request", errs)
		return
	}

	if err := h.service.MarkLost(c.Request.Context(), id, req); err != nil {
		switch err {
		case ErrLeadNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Lead not found")
		case ErrAlreadyConverted:
			response.Error(c, http.StatusConflict, "ALREADY_CONVERTED", "Converted leads cannot be marked lost")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update lead")
		}
		return
	}
	response.Success(c, http.StatusOK, gin.H{"updated": true})
}

// GetStats handles GET /api/v1/leads/stats
func (h *Handler) GetStats(c *gin.Context) {
	stats, err := h.service.Stats(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load stats")
		return
	}
	response.Success(c, http.StatusOK, stats)
}

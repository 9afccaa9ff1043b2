package camp

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"merchflow/internal/pkg/response"
	"merchflow/internal/pkg/validator"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateCampRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}
	if errs := validator.Validate(&req); errs != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Invalid camp data", errs)
		return
	}

	camp, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		if err == ErrBadDates {
			response.Error(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "End date is before start date")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create camp")
		return
	}
	response.Success(c, http.StatusCreated, camp)
}

func (h *Handler) List(c *gin.Context) {
	camps, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list camps")
		return
	}
	response.Success(c, http.StatusOK, camps)
}

func (h *Handler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid camp ID")
		return
	}

	camp, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		if err == ErrCampNotFound {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Camp not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load camp")
		return
	}
	response.Success(c, http.StatusOK, camp)
}

func (h *Handler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid camp ID")
		return
	}

	var req UpdateCampRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}
	if errs := validator.Validate(&req); errs != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Invalid camp data", errs)
		return
	}

	camp, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		switch err {
		case ErrCampNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Camp not found")
		case ErrBadDates:
			response.Error(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "End date is before start date")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update camp")
		}
		return
	}
	response.Success(c, http.StatusOK, camp)
}

func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid camp ID")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		if err == ErrCampNotFound {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Camp not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to delete camp")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func (h *Handler) Register(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid camp ID")
		return
	}

	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}
	if errs := validator.Validate(&req); errs != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Invalid registration data", errs)
		return
	}

	reg, err := h.service.Register(c.Request.Context(), id, &req)
	if err != nil {
		switch err {
		case ErrCampNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Camp not found")
		case ErrCampFull:
			response.Error(c, http.StatusConflict, "CAMP_FULL", "Camp is at capacity")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to register")
		}
		return
	}
	response.Success(c, http.StatusCreated, reg)
}

func (h *Handler) ListRegistrations(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid camp ID")
		return
	}

	regs, err := h.service.ListRegistrations(c.Request.Context(), id)
	if err != nil {
		if err == ErrCampNotFound {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Camp not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list registrations")
		return
	}
	response.Success(c, http.StatusOK, regs)
}

func (h *Handler) Unregister(c *gin.Context) {
	campID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid camp ID")
		return
	}
	regID, err := strconv.ParseInt(c.Param("regId"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid registration ID")
		return
	}

	if err := h.service.Unregister(c.Request.Context(), campID, regID); err != nil {
		switch err {
		case ErrCampNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Camp not found")
		case ErrRegNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Registration not found")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to remove registration")
		}
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

package booking

import (
	"net/http"
	"strconv"

	"spotless/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	g := rg.Group("/bookings")
	{
		g.GET("", h.List)
		g.POST("", h.Create)
		g.GET("/:id", h.Get)
		g.PUT("/:id/status", h.UpdateStatus)
	}
}

func (h *Handler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	rows, total, err := h.service.List(c.Request.Context(), limit)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to fetch bookings")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"bookings": rows,
		"total":    total,
	})
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Customer and service are required")
		return
	}

	b, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to create booking")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message":   "Booking created successfully",
		"booking":   b,
		"bookingId": b.ID,
	})
}

func (h *Handler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid booking ID")
		return
	}

	b, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		if err == ErrNotFound {
			response.Error(c, http.StatusNotFound, "Booking not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "Failed to fetch booking")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"booking": b,
	})
}

func (h *Handler) UpdateStatus(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid booking ID")
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Status is required")
		return
	}

	if err := h.service.UpdateStatus(c.Request.Context(), id, req.Status); err != nil {
		if err == ErrNotFound {
			response.Error(c, http.StatusNotFound, "Booking not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "Failed to update booking")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message": "Booking status updated",
	})
}

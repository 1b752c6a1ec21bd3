package dashboard

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
	rg.GET("/dashboard/stats", h.Stats)
	rg.GET("/dashboard/recent-bookings", h.RecentBookings)
	rg.GET("/reports/summary", h.Report)
}

func (h *Handler) Stats(c *gin.Context) {
	stats, err := h.service.Stats(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to compute stats")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"stats":     stats,
		"chartData": h.service.Chart(),
	})
}

func (h *Handler) RecentBookings(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "5"))

	rows, err := h.service.RecentBookings(c.Request.Context(), limit)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to fetch recent bookings")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"bookings": rows,
	})
}

func (h *Handler) Report(c *gin.Context) {
	report, err := h.service.Report(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to build report")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"report": report,
	})
}

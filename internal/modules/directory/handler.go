package directory

import (
	"net/http"

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
	rg.GET("/customers", h.Customers)
	rg.GET("/cleaners", h.Cleaners)
	rg.GET("/settings", h.Settings)
}

func (h *Handler) Customers(c *gin.Context) {
	rows, err := h.service.Customers(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to fetch customers")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"customers": rows,
	})
}

func (h *Handler) Cleaners(c *gin.Context) {
	rows, err := h.service.Cleaners(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to fetch cleaners")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"cleaners": rows,
	})
}

func (h *Handler) Settings(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{
		"settings": h.service.Settings(),
	})
}

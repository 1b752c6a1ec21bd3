package messaging

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
	rg.POST("/sms/send", h.SendSMS)
	rg.POST("/mpesa/payment", h.MpesaPayment)
}

func (h *Handler) SendSMS(c *gin.Context) {
	var req SendSMSRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Phone and message are required")
		return
	}

	result, err := h.service.SendSMS(req)
	if err != nil {
		if err == ErrInvalidPhone {
			response.Error(c, http.StatusBadRequest, "Invalid phone number format")
			return
		}
		response.Error(c, http.StatusInternalServerError, "Failed to send SMS")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"reference": result.Reference,
		"cost":      result.Cost,
		"provider":  result.Provider,
	})
}

func (h *Handler) MpesaPayment(c *gin.Context) {
	var req MpesaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Phone is required")
		return
	}

	tx, instruction, err := h.service.MpesaPayment(req)
	if err != nil {
		if err == ErrInvalidPhone {
			response.Error(c, http.StatusBadRequest, "Invalid phone number format")
			return
		}
		response.Error(c, http.StatusInternalServerError, "Failed to initiate payment")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"transaction": tx,
		"instruction": instruction,
	})
}

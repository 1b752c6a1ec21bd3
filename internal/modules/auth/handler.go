package auth

import (
	"net/http"
	"strings"

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
	rg.POST("/login", h.Login)
	rg.POST("/logout", h.Logout)
	rg.POST("/register", h.Register)
	rg.GET("/check-auth", h.CheckAuth)
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Email and password are required")
		return
	}

	user, token, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		if err == ErrInvalidCredentials {
			response.Error(c, http.StatusUnauthorized, "Invalid email or password")
			return
		}
		response.Error(c, http.StatusInternalServerError, "Failed to login")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message": "Login successful",
		"user":    user,
		"token":   token,
	})
}

func (h *Handler) Logout(c *gin.Context) {
	h.service.Logout(bearerToken(c))
	response.Success(c, http.StatusOK, gin.H{
		"message": "Logged out successfully",
	})
}

func (h *Handler) CheckAuth(c *gin.Context) {
	user, ok := h.service.CheckAuth(bearerToken(c))
	if !ok {
		response.Error(c, http.StatusUnauthorized, "Not authenticated")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"user": user,
	})
}

func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Please provide name, email, and password")
		return
	}

	user, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		if err == ErrEmailAlreadyExists {
			response.Error(c, http.StatusBadRequest, "User already exists")
			return
		}
		response.Error(c, http.StatusInternalServerError, "Failed to register")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message": "User registered successfully",
		"user":    user,
	})
}

func bearerToken(c *gin.Context) string {
	h := c.GetHeader("Authorization")
	if strings.HasPrefix(h, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
	}
	// tokens also arrive via query for the demo dashboard
	return c.Query("token")
}

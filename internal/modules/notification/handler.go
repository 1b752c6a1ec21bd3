package notification

import (
	"net/http"
	"strconv"

	"spotless/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

type Handler struct {
	service *Service
	hub     *Hub
}

func NewHandler(service *Service, hub *Hub) *Handler {
	return &Handler{service: service, hub: hub}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	g := rg.Group("/notifications")
	{
		g.GET("", h.List)
		g.POST("/send", h.Send)
		g.PUT("/:id/read", h.MarkRead)
		g.GET("/stream", h.Stream)
	}
}

func (h *Handler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	rows, unread, total, err := h.service.List(c.Request.Context(), limit)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to fetch notifications")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"notifications": rows,
		"unreadCount":   unread,
		"total":         total,
	})
}

func (h *Handler) Send(c *gin.Context) {
	var req SendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Message is required")
		return
	}

	n, err := h.service.Send(c.Request.Context(), req)
	if err != nil {
		if err == ErrEmptyMessage {
			response.Error(c, http.StatusBadRequest, "Message is required")
			return
		}
		response.Error(c, http.StatusInternalServerError, "Failed to send notification")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"notification": n,
	})
}

func (h *Handler) MarkRead(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid notification ID")
		return
	}

	if err := h.service.MarkRead(c.Request.Context(), id); err != nil {
		if err == ErrNotFound {
			response.Error(c, http.StatusNotFound, "Notification not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "Failed to mark as read")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message": "Notification marked as read",
	})
}

// Stream upgrades to a websocket and keeps the connection registered until
// the client goes away. The server only pushes; inbound frames are drained
// and dropped.
func (h *Handler) Stream(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}

	h.hub.Register(conn)
	defer h.hub.Unregister(conn)

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

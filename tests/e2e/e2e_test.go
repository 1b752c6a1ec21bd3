package e2e

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"spotless/internal/middleware"
	"spotless/internal/modules/auth"
	"spotless/internal/modules/booking"
	"spotless/internal/modules/dashboard"
	"spotless/internal/modules/directory"
	"spotless/internal/modules/messaging"
	"spotless/internal/modules/notification"
	jwtsvc "spotless/internal/pkg/jwt"
	"spotless/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type E2ETestSuite struct {
	router *gin.Engine
}

func setupTestSuite(t *testing.T) *E2ETestSuite {
	// In-memory backend; seeded with the demo accounts and bookings
	users, bookings, notifications := repository.NewMemoryRepositories()
	err := repository.SeedDemoData(context.Background(), users, bookings)
	require.NoError(t, err, "Failed to seed demo data")

	jwtService := jwtsvc.New("test_secret_key_32_characters_min", 24*time.Hour)

	authHandler := auth.NewHandler(auth.NewService(users, jwtService))

	hub := notification.NewHub()
	t.Cleanup(hub.Close)
	notificationService := notification.NewService(notifications, hub)
	notificationHandler := notification.NewHandler(notificationService, hub)

	bookingHandler := booking.NewHandler(booking.NewService(bookings, notificationService))
	dashboardHandler := dashboard.NewHandler(dashboard.NewService(bookings))
	messagingHandler := messaging.NewHandler(messaging.NewService())
	directoryHandler := directory.NewHandler(directory.NewService(users, bookings))

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.RequestLogger())

	api := r.Group("/api")
	{
		authHandler.RegisterRoutes(api)
		bookingHandler.RegisterRoutes(api)
		dashboardHandler.RegisterRoutes(api)
		notificationHandler.RegisterRoutes(api)
		messagingHandler.RegisterRoutes(api)
		directoryHandler.RegisterRoutes(api)

		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"status":    "OK",
				"timestamp": time.Now().Format(time.RFC3339),
				"version":   "1.0.0",
			})
		})
	}

	return &E2ETestSuite{router: r}
}

func (s *E2ETestSuite) makeRequest(method, path string, body interface{}, token string) (*httptest.ResponseRecorder, error) {
	var bodyBytes []byte
	var err error

	if body != nil {
		bodyBytes, err = json.Marshal(body)
		if err != nil {
			return nil, err
		}
	}

	req := httptest.NewRequest(method, path, bytes.NewBuffer(bodyBytes))
	req.Header.Set("Content-Type", "application/json")

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	return w, nil
}

// Responses use a flat envelope: success plus payload fields at the top
// level, or success:false with a message.
func parseResponse(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	var resp map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	if err != nil {
		log.Printf("Failed to parse response. Status: %d, Body: %s", w.Code, w.Body.String())
	}
	require.NoError(t, err)
	return resp
}

// =============================================================================
// Test Flow 1: Authentication
// =============================================================================

func TestFlow1_Authentication(t *testing.T) {
	suite := setupTestSuite(t)

	var token string

	t.Run("POST /login with demo admin", func(t *testing.T) {
		reqBody := map[string]interface{}{
			"email":    "admin@spotless.com",
			"password": "admin123",
		}

		w, err := suite.makeRequest("POST", "/api/login", reqBody, "")
		require.NoError(t, err)

		assert.Equal(t, http.StatusOK, w.Code, "Expected 200 OK")

		resp := parseResponse(t, w)
		assert.Equal(t, true, resp["success"])
		require.NotEmpty(t, resp["token"])
		token = resp["token"].(string)

		user := resp["user"].(map[string]interface{})
		assert.Equal(t, "admin@spotless.com", user["email"])
		assert.Equal(t, "admin", user["role"])
		assert.NotContains(t, user, "password", "password must never leave the API")

		log.Printf("✅ POST /login - SUCCESS")
	})

	t.Run("POST /login with wrong password", func(t *testing.T) {
		reqBody := map[string]interface{}{
			"email":    "admin@spotless.com",
			"password": "Admin123",
		}

		w, err := suite.makeRequest("POST", "/api/login", reqBody, "")
		require.NoError(t, err)

		assert.Equal(t, http.StatusUnauthorized, w.Code)

		resp := parseResponse(t, w)
		assert.Equal(t, false, resp["success"])
		assert.Equal(t, "Invalid email or password", resp["message"])
	})

	t.Run("GET /check-auth with session token", func(t *testing.T) {
		w, err := suite.makeRequest("GET", "/api/check-auth", nil, token)
		require.NoError(t, err)

		assert.Equal(t, http.StatusOK, w.Code)

		resp := parseResponse(t, w)
		user := resp["user"].(map[string]interface{})
		assert.Equal(t, "admin@spotless.com", user["email"])
	})

	t.Run("GET /check-auth without token", func(t *testing.T) {
		w, err := suite.makeRequest("GET", "/api/check-auth", nil, "")
		require.NoError(t, err)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("POST /logout ends the session", func(t *testing.T) {
		w, err := suite.makeRequest("POST", "/api/logout", nil, token)
		require.NoError(t, err)

		assert.Equal(t, http.StatusOK, w.Code)

		w, err = suite.makeRequest("GET", "/api/check-auth", nil, token)
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, w.Code, "token must be dead after logout")
	})

	t.Run("POST /register then login", func(t *testing.T) {
		reqBody := map[string]interface{}{
			"name":     "Grace Njeri",
			"email":    "grace@example.com",
			"password": "grace123",
		}

		w, err := suite.makeRequest("POST", "/api/register", reqBody, "")
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, w.Code)

		resp := parseResponse(t, w)
		user := resp["user"].(map[string]interface{})
		assert.Equal(t, "customer", user["role"], "self-registration is always a customer")

		w, err = suite.makeRequest("POST", "/api/login", map[string]interface{}{
			"email": "grace@example.com", "password": "grace123",
		}, "")
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("POST /register duplicate email", func(t *testing.T) {
		reqBody := map[string]interface{}{
			"name":     "Other Admin",
			"email":    "admin@spotless.com",
			"password": "whatever",
		}

		w, err := suite.makeRequest("POST", "/api/register", reqBody, "")
		require.NoError(t, err)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		resp := parseResponse(t, w)
		assert.Equal(t, "User already exists", resp["message"])
	})
}

// =============================================================================
// Test Flow 2: Booking Lifecycle
// =============================================================================

func TestFlow2_BookingLifecycle(t *testing.T) {
	suite := setupTestSuite(t)

	var bookingID int64

	t.Run("POST /bookings", func(t *testing.T) {
		// caller-supplied status and a string amount, both handled server-side
		reqBody := map[string]interface{}{
			"customer": "Alice Wanjiku",
			"service":  "Deep Cleaning",
			"date":     "2023-11-01",
			"amount":   "500",
			"status":   "completed",
		}

		w, err := suite.makeRequest("POST", "/api/bookings", reqBody, "")
		require.NoError(t, err)

		assert.Equal(t, http.StatusOK, w.Code)

		resp := parseResponse(t, w)
		assert.Equal(t, true, resp["success"])
		assert.Equal(t, "Booking created successfully", resp["message"])

		b := resp["booking"].(map[string]interface{})
		assert.Equal(t, "pending", b["status"], "new bookings always start pending")
		assert.EqualValues(t, 500, b["amount"])

		require.NotNil(t, resp["bookingId"])
		bookingID = int64(resp["bookingId"].(float64))
		assert.EqualValues(t, 6, bookingID, "ids continue after the 5 seeded bookings")

		log.Printf("✅ POST /bookings - SUCCESS (booking_id: %d)", bookingID)
	})

	t.Run("GET /bookings newest first", func(t *testing.T) {
		w, err := suite.makeRequest("GET", "/api/bookings", nil, "")
		require.NoError(t, err)

		assert.Equal(t, http.StatusOK, w.Code)

		resp := parseResponse(t, w)
		assert.EqualValues(t, 6, resp["total"])

		rows := resp["bookings"].([]interface{})
		require.NotEmpty(t, rows)
		first := rows[0].(map[string]interface{})
		assert.Equal(t, "Alice Wanjiku", first["customer"], "latest booking leads the list")
	})

	t.Run("GET /bookings/:id", func(t *testing.T) {
		w, err := suite.makeRequest("GET", fmt.Sprintf("/api/bookings/%d", bookingID), nil, "")
		require.NoError(t, err)

		assert.Equal(t, http.StatusOK, w.Code)

		resp := parseResponse(t, w)
		b := resp["booking"].(map[string]interface{})
		assert.Equal(t, "Deep Cleaning", b["service"])
	})

	t.Run("PUT /bookings/:id/status", func(t *testing.T) {
		reqBody := map[string]interface{}{"status": "confirmed"}

		w, err := suite.makeRequest("PUT", fmt.Sprintf("/api/bookings/%d/status", bookingID), reqBody, "")
		require.NoError(t, err)

		assert.Equal(t, http.StatusOK, w.Code)

		w, err = suite.makeRequest("GET", fmt.Sprintf("/api/bookings/%d", bookingID), nil, "")
		require.NoError(t, err)
		resp := parseResponse(t, w)
		b := resp["booking"].(map[string]interface{})
		assert.Equal(t, "confirmed", b["status"])
	})

	t.Run("PUT /bookings/:id/status for unknown id", func(t *testing.T) {
		reqBody := map[string]interface{}{"status": "confirmed"}

		w, err := suite.makeRequest("PUT", "/api/bookings/999/status", reqBody, "")
		require.NoError(t, err)

		assert.Equal(t, http.StatusNotFound, w.Code)
		resp := parseResponse(t, w)
		assert.Equal(t, "Booking not found", resp["message"])
	})

	t.Run("POST /bookings without customer", func(t *testing.T) {
		reqBody := map[string]interface{}{"service": "Deep Cleaning"}

		w, err := suite.makeRequest("POST", "/api/bookings", reqBody, "")
		require.NoError(t, err)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Booking creation leaves a notification", func(t *testing.T) {
		w, err := suite.makeRequest("GET", "/api/notifications", nil, "")
		require.NoError(t, err)

		assert.Equal(t, http.StatusOK, w.Code)

		resp := parseResponse(t, w)
		assert.EqualValues(t, 1, resp["unreadCount"])

		rows := resp["notifications"].([]interface{})
		require.Len(t, rows, 1)
		n := rows[0].(map[string]interface{})
		assert.Equal(t, "booking", n["type"])
		assert.Contains(t, n["message"], "#6")
		assert.Contains(t, n["message"], "Alice Wanjiku")

		log.Printf("✅ booking notification - SUCCESS")
	})
}

// =============================================================================
// Test Flow 3: Dashboard and Reports
// =============================================================================

func TestFlow3_DashboardAndReports(t *testing.T) {
	suite := setupTestSuite(t)

	t.Run("GET /dashboard/stats", func(t *testing.T) {
		w, err := suite.makeRequest("GET", "/api/dashboard/stats", nil, "")
		require.NoError(t, err)

		assert.Equal(t, http.StatusOK, w.Code)

		resp := parseResponse(t, w)
		stats := resp["stats"].(map[string]interface{})
		// 250+450+180+320+275 over the seeded bookings, every status counted
		assert.EqualValues(t, 1475, stats["totalRevenue"])
		assert.EqualValues(t, 5, stats["totalBookings"])
		assert.EqualValues(t, 2, stats["pendingCount"])
		assert.EqualValues(t, 1, stats["completedCount"])
		assert.EqualValues(t, 4, stats["activeCleaners"])

		chart := resp["chartData"].(map[string]interface{})
		assert.Len(t, chart["labels"], 6)
	})

	t.Run("GET /dashboard/recent-bookings", func(t *testing.T) {
		w, err := suite.makeRequest("GET", "/api/dashboard/recent-bookings", nil, "")
		require.NoError(t, err)

		assert.Equal(t, http.StatusOK, w.Code)

		resp := parseResponse(t, w)
		rows := resp["bookings"].([]interface{})
		assert.Len(t, rows, 5)
	})

	t.Run("GET /reports/summary", func(t *testing.T) {
		w, err := suite.makeRequest("GET", "/api/reports/summary", nil, "")
		require.NoError(t, err)

		assert.Equal(t, http.StatusOK, w.Code)

		resp := parseResponse(t, w)
		report := resp["report"].(map[string]interface{})
		byStatus := report["byStatus"].(map[string]interface{})
		pending := byStatus["pending"].(map[string]interface{})
		assert.EqualValues(t, 2, pending["count"])
		assert.EqualValues(t, 455, pending["revenue"])
	})
}

// =============================================================================
// Test Flow 4: SMS and M-Pesa
// =============================================================================

func TestFlow4_Messaging(t *testing.T) {
	suite := setupTestSuite(t)

	t.Run("POST /sms/send", func(t *testing.T) {
		reqBody := map[string]interface{}{
			"phone":   "0712345678",
			"message": "Your cleaner arrives at 10am",
		}

		w, err := suite.makeRequest("POST", "/api/sms/send", reqBody, "")
		require.NoError(t, err)

		assert.Equal(t, http.StatusOK, w.Code)

		resp := parseResponse(t, w)
		assert.Equal(t, true, resp["success"])
		assert.NotEmpty(t, resp["reference"])
		assert.Equal(t, "KES 1.00", resp["cost"])
	})

	t.Run("POST /sms/send with non-Kenyan phone", func(t *testing.T) {
		reqBody := map[string]interface{}{
			"phone":   "9991234",
			"message": "hi",
		}

		w, err := suite.makeRequest("POST", "/api/sms/send", reqBody, "")
		require.NoError(t, err)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		resp := parseResponse(t, w)
		assert.Equal(t, "Invalid phone number format", resp["message"])
	})

	t.Run("POST /mpesa/payment", func(t *testing.T) {
		reqBody := map[string]interface{}{
			"phone":  "254712345678",
			"amount": "750",
		}

		w, err := suite.makeRequest("POST", "/api/mpesa/payment", reqBody, "")
		require.NoError(t, err)

		assert.Equal(t, http.StatusOK, w.Code)

		resp := parseResponse(t, w)
		tx := resp["transaction"].(map[string]interface{})
		assert.Contains(t, tx["id"], "MPESA")
		assert.EqualValues(t, 750, tx["amount"])
		assert.Equal(t, "pending", tx["status"])
		assert.Contains(t, resp["instruction"], "M-Pesa PIN")
	})
}

// =============================================================================
// Test Flow 5: Notifications
// =============================================================================

func TestFlow5_Notifications(t *testing.T) {
	suite := setupTestSuite(t)

	t.Run("POST /notifications/send with empty message", func(t *testing.T) {
		reqBody := map[string]interface{}{"message": "   "}

		w, err := suite.makeRequest("POST", "/api/notifications/send", reqBody, "")
		require.NoError(t, err)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		resp := parseResponse(t, w)
		assert.Equal(t, "Message is required", resp["message"])
	})

	t.Run("POST /notifications/send then mark read", func(t *testing.T) {
		reqBody := map[string]interface{}{"message": "Office closed on Friday"}

		w, err := suite.makeRequest("POST", "/api/notifications/send", reqBody, "")
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, w.Code)

		resp := parseResponse(t, w)
		n := resp["notification"].(map[string]interface{})
		assert.Equal(t, "info", n["type"])
		assert.Equal(t, "all", n["recipient"])
		id := int64(n["id"].(float64))

		w, err = suite.makeRequest("PUT", fmt.Sprintf("/api/notifications/%d/read", id), nil, "")
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, w.Code)

		w, err = suite.makeRequest("GET", "/api/notifications", nil, "")
		require.NoError(t, err)
		resp = parseResponse(t, w)
		assert.EqualValues(t, 0, resp["unreadCount"])
		assert.EqualValues(t, 1, resp["total"])
	})

	t.Run("PUT /notifications/:id/read for unknown id", func(t *testing.T) {
		w, err := suite.makeRequest("PUT", "/api/notifications/999/read", nil, "")
		require.NoError(t, err)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

// =============================================================================
// Test Flow 6: Directory and Health
// =============================================================================

func TestFlow6_DirectoryAndHealth(t *testing.T) {
	suite := setupTestSuite(t)

	t.Run("GET /customers", func(t *testing.T) {
		w, err := suite.makeRequest("GET", "/api/customers", nil, "")
		require.NoError(t, err)

		assert.Equal(t, http.StatusOK, w.Code)

		resp := parseResponse(t, w)
		rows := resp["customers"].([]interface{})
		require.Len(t, rows, 1, "one seeded customer account")
		c := rows[0].(map[string]interface{})
		assert.Equal(t, "Sarah Customer", c["name"])
	})

	t.Run("GET /cleaners", func(t *testing.T) {
		w, err := suite.makeRequest("GET", "/api/cleaners", nil, "")
		require.NoError(t, err)

		assert.Equal(t, http.StatusOK, w.Code)

		resp := parseResponse(t, w)
		rows := resp["cleaners"].([]interface{})
		require.Len(t, rows, 1)
	})

	t.Run("GET /settings", func(t *testing.T) {
		w, err := suite.makeRequest("GET", "/api/settings", nil, "")
		require.NoError(t, err)

		assert.Equal(t, http.StatusOK, w.Code)

		resp := parseResponse(t, w)
		settings := resp["settings"].(map[string]interface{})
		assert.Equal(t, "Spotless Solution", settings["companyName"])
		assert.Equal(t, "KES", settings["currency"])
	})

	t.Run("GET /health", func(t *testing.T) {
		w, err := suite.makeRequest("GET", "/api/health", nil, "")
		require.NoError(t, err)

		assert.Equal(t, http.StatusOK, w.Code)

		resp := parseResponse(t, w)
		assert.Equal(t, "OK", resp["status"])
		assert.NotEmpty(t, resp["timestamp"])
	})

	t.Run("GET unknown route", func(t *testing.T) {
		w, err := suite.makeRequest("GET", "/api/nope", nil, "")
		require.NoError(t, err)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

// =============================================================================
// Main Test Runner
// =============================================================================

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"spotless/internal/backup"
	"spotless/internal/config"
	"spotless/internal/database"
	"spotless/internal/middleware"
	"spotless/internal/modules/auth"
	"spotless/internal/modules/booking"
	"spotless/internal/modules/dashboard"
	"spotless/internal/modules/directory"
	"spotless/internal/modules/messaging"
	"spotless/internal/modules/notification"
	jwtsvc "spotless/internal/pkg/jwt"
	"spotless/internal/repository"
)

const version = "1.0.0"

func main() {
	cfg := config.Load()

	users, bookings, notifications, err := repository.New(cfg)
	if err != nil {
		log.Fatal(err)
	}
	if err := repository.SeedDemoData(context.Background(), users, bookings); err != nil {
		log.Fatal(err)
	}

	j := jwtsvc.New(cfg.JWTSecret, 24*time.Hour)

	authService := auth.NewService(users, j)
	authHandler := auth.NewHandler(authService)

	hub := notification.NewHub()
	notificationService := notification.NewService(notifications, hub)
	notificationHandler := notification.NewHandler(notificationService, hub)

	bookingService := booking.NewService(bookings, notificationService)
	bookingHandler := booking.NewHandler(bookingService)

	dashboardService := dashboard.NewService(bookings)
	dashboardHandler := dashboard.NewHandler(dashboardService)

	messagingHandler := messaging.NewHandler(messaging.NewService())

	directoryService := directory.NewService(users, bookings)
	directoryHandler := directory.NewHandler(directoryService)

	r := gin.Default()
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
				"version":   version,
			})
		})
	}

	if cfg.StorageBackend == "database" && database.IsFileBacked(cfg.DatabaseURL) {
		job := backup.NewJob(cfg.DatabaseURL, cfg.BackupDir, cfg.BackupRetentionDays)
		if err := job.Start(cfg.BackupSchedule); err != nil {
			log.Printf("backup job not started: %v", err)
		} else {
			defer job.Stop()
		}
	}

	log.Printf("Spotless Solution API listening on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}

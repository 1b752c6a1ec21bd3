package repository

import (
	"gorm.io/gorm"

	"spotless/internal/config"
	"spotless/internal/database"
)

// Migrate creates the backing tables for the database repositories.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&userModel{}, &bookingModel{}, &notificationModel{})
}

// New builds the repository set for the configured storage backend. The
// default is the in-memory store; STORAGE_BACKEND=database switches to
// SQLite or PostgreSQL depending on the DSN.
func New(cfg *config.Config) (UserRepository, BookingRepository, NotificationRepository, error) {
	if cfg.StorageBackend == "memory" {
		users, bookings, notifications := NewMemoryRepositories()
		return users, bookings, notifications, nil
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		return nil, nil, nil, err
	}
	if err := Migrate(db); err != nil {
		return nil, nil, nil, err
	}
	return NewUserRepo(db), NewBookingRepo(db), NewNotificationRepo(db), nil
}

package repository

import (
	"context"
	"errors"

	"spotless/internal/domain"
)

var (
	ErrNotFound       = errors.New("record not found")
	ErrDuplicateEmail = errors.New("email already registered")
)

type UserRepository interface {
	Create(ctx context.Context, u *domain.User) error
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ListByRole(ctx context.Context, role domain.UserRole) ([]domain.User, error)
	Count(ctx context.Context) (int64, error)
}

type BookingRepository interface {
	// Create assigns the next id and stores the booking at the head of the
	// collection, so listing order is reverse-chronological by insertion.
	Create(ctx context.Context, b *domain.Booking) error
	List(ctx context.Context, limit int) ([]domain.Booking, error)
	All(ctx context.Context) ([]domain.Booking, error)
	Count(ctx context.Context) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	UpdateStatus(ctx context.Context, id int64, status string) error
	CountByCustomer(ctx context.Context, customer string) (int64, error)
}

type NotificationRepository interface {
	Create(ctx context.Context, n *domain.Notification) error
	List(ctx context.Context, limit int) ([]domain.Notification, error)
	Count(ctx context.Context) (int64, error)
	CountUnread(ctx context.Context) (int64, error)
	MarkRead(ctx context.Context, id int64) error
}

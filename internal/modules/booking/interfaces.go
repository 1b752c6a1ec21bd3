package booking

import (
	"context"

	"spotless/internal/domain"
)

type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) error
	List(ctx context.Context, limit int) ([]domain.Booking, error)
	Count(ctx context.Context) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	UpdateStatus(ctx context.Context, id int64, status string) error
}

// NotificationSender records the booking-created event in the notification
// log. A nil sender disables the side effect.
type NotificationSender interface {
	NotifyBookingCreated(ctx context.Context, b *domain.Booking) error
}

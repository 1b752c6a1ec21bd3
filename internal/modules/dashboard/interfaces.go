package dashboard

import (
	"context"

	"spotless/internal/domain"
)

type BookingReader interface {
	All(ctx context.Context) ([]domain.Booking, error)
	List(ctx context.Context, limit int) ([]domain.Booking, error)
}

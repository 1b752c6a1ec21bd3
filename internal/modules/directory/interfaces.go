package directory

import (
	"context"

	"spotless/internal/domain"
)

type UserReader interface {
	ListByRole(ctx context.Context, role domain.UserRole) ([]domain.User, error)
}

type BookingCounter interface {
	CountByCustomer(ctx context.Context, customer string) (int64, error)
}

package booking

import (
	"context"
	"errors"
	"time"

	"spotless/internal/domain"
	"spotless/internal/repository"
)

const defaultListLimit = 10

type Service struct {
	bookings BookingRepository
	notifs   NotificationSender
}

func NewService(bookings BookingRepository, notifs NotificationSender) *Service {
	return &Service{
		bookings: bookings,
		notifs:   notifs,
	}
}

// List returns the most recently created bookings first, plus the total over
// the whole store.
func (s *Service) List(ctx context.Context, limit int) ([]domain.Booking, int64, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}

	rows, err := s.bookings.List(ctx, limit)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.bookings.Count(ctx)
	if err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

func (s *Service) Create(ctx context.Context, req CreateBookingRequest) (*domain.Booking, error) {
	b := &domain.Booking{
		Customer:  req.Customer,
		Service:   req.Service,
		Date:      req.Date,
		Status:    domain.BookingPending,
		Amount:    req.Amount.Int64(),
		Notes:     req.Notes,
		CreatedAt: time.Now(),
	}

	if err := s.bookings.Create(ctx, b); err != nil {
		return nil, err
	}

	if s.notifs != nil {
		_ = s.notifs.NotifyBookingCreated(ctx, b)
	}

	return b, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.Booking, error) {
	b, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return b, nil
}

// UpdateStatus overwrites the status unconditionally. The value is not
// checked against the known statuses; callers may store anything.
func (s *Service) UpdateStatus(ctx context.Context, id int64, status string) error {
	err := s.bookings.UpdateStatus(ctx, id, status)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrNotFound
	}
	return err
}

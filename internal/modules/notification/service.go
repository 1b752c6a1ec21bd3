package notification

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"spotless/internal/domain"
	"spotless/internal/repository"
)

const defaultListLimit = 10

type Service struct {
	repo NotificationRepository
	hub  *Hub
}

// NewService wires the log to an optional hub; pass nil to disable the live
// stream.
func NewService(repo NotificationRepository, hub *Hub) *Service {
	return &Service{repo: repo, hub: hub}
}

// Send records a notification. An empty message is the one validation error
// in this module; the log stays untouched when it fails.
func (s *Service) Send(ctx context.Context, req SendRequest) (*domain.Notification, error) {
	if strings.TrimSpace(req.Message) == "" {
		return nil, ErrEmptyMessage
	}

	if req.Type == "" {
		req.Type = string(domain.NotificationInfo)
	}
	if req.Recipient == "" {
		req.Recipient = "all"
	}

	n := &domain.Notification{
		Type:      domain.NotificationType(req.Type),
		Message:   req.Message,
		Recipient: req.Recipient,
		Timestamp: time.Now(),
		Read:      false,
	}
	if err := s.repo.Create(ctx, n); err != nil {
		return nil, err
	}

	if s.hub != nil {
		s.hub.Broadcast(n)
	}
	return n, nil
}

// NotifyBookingCreated implements the booking module's NotificationSender.
// The message carries the booking id and customer name so the dashboard can
// link back to the record.
func (s *Service) NotifyBookingCreated(ctx context.Context, b *domain.Booking) error {
	_, err := s.Send(ctx, SendRequest{
		Message: fmt.Sprintf("New booking #%d from %s", b.ID, b.Customer),
		Type:    string(domain.NotificationBooking),
	})
	return err
}

// List returns the newest entries up to limit; unread and total are counted
// over the whole log, not the returned slice.
func (s *Service) List(ctx context.Context, limit int) ([]domain.Notification, int64, int64, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}

	rows, err := s.repo.List(ctx, limit)
	if err != nil {
		return nil, 0, 0, err
	}
	unread, err := s.repo.CountUnread(ctx)
	if err != nil {
		return nil, 0, 0, err
	}
	total, err := s.repo.Count(ctx)
	if err != nil {
		return nil, 0, 0, err
	}
	return rows, unread, total, nil
}

func (s *Service) MarkRead(ctx context.Context, id int64) error {
	err := s.repo.MarkRead(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrNotFound
	}
	return err
}

package notification

import (
	"context"

	"spotless/internal/domain"
)

type NotificationRepository interface {
	Create(ctx context.Context, n *domain.Notification) error
	List(ctx context.Context, limit int) ([]domain.Notification, error)
	Count(ctx context.Context) (int64, error)
	CountUnread(ctx context.Context) (int64, error)
	MarkRead(ctx context.Context, id int64) error
}

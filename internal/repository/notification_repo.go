package repository

import (
	"context"
	"time"

	"spotless/internal/domain"

	"gorm.io/gorm"
)

type NotificationRepo struct {
	db *gorm.DB
}

func NewNotificationRepo(db *gorm.DB) *NotificationRepo {
	return &NotificationRepo{db: db}
}

type notificationModel struct {
	ID        int64     `gorm:"column:id;primaryKey"`
	Type      string    `gorm:"column:type"`
	Message   string    `gorm:"column:message"`
	Recipient *string   `gorm:"column:recipient"`
	Timestamp time.Time `gorm:"column:timestamp"`
	Read      bool      `gorm:"column:read"`
}

func (notificationModel) TableName() string { return "notifications" }

func toDomainNotification(m notificationModel) *domain.Notification {
	var recipient string
	if m.Recipient != nil {
		recipient = *m.Recipient
	}

	return &domain.Notification{
		ID:        m.ID,
		Type:      domain.NotificationType(m.Type),
		Message:   m.Message,
		Recipient: recipient,
		Timestamp: m.Timestamp,
		Read:      m.Read,
	}
}

func toNotificationModel(n *domain.Notification) notificationModel {
	var recipient *string
	if n.Recipient != "" {
		v := n.Recipient
		recipient = &v
	}

	return notificationModel{
		ID:        n.ID,
		Type:      string(n.Type),
		Message:   n.Message,
		Recipient: recipient,
		Timestamp: n.Timestamp,
		Read:      n.Read,
	}
}

func (r *NotificationRepo) Create(ctx context.Context, n *domain.Notification) error {
	m := toNotificationModel(n)
	if m.Timestamp.IsZero() {
		m.Timestamp = time.Now()
	}
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*n = *toDomainNotification(m)
	return nil
}

func (r *NotificationRepo) List(ctx context.Context, limit int) ([]domain.Notification, error) {
	q := r.db.WithContext(ctx).Order("id DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}

	var models []notificationModel
	if tx := q.Find(&models); tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Notification, 0, len(models))
	for _, m := range models {
		out = append(out, *toDomainNotification(m))
	}
	return out, nil
}

func (r *NotificationRepo) Count(ctx context.Context) (int64, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).Model(&notificationModel{}).Count(&cnt)
	return cnt, tx.Error
}

func (r *NotificationRepo) CountUnread(ctx context.Context) (int64, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).Model(&notificationModel{}).Where("read = ?", false).Count(&cnt)
	return cnt, tx.Error
}

func (r *NotificationRepo) MarkRead(ctx context.Context, id int64) error {
	tx := r.db.WithContext(ctx).Model(&notificationModel{}).Where("id = ?", id).Update("read", true)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

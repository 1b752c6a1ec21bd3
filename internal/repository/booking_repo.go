package repository

import (
	"context"
	"errors"
	"time"

	"spotless/internal/domain"

	"gorm.io/gorm"
)

type BookingRepo struct {
	db *gorm.DB
}

func NewBookingRepo(db *gorm.DB) *BookingRepo {
	return &BookingRepo{db: db}
}

type bookingModel struct {
	ID        int64     `gorm:"column:id;primaryKey"`
	Customer  string    `gorm:"column:customer"`
	Service   string    `gorm:"column:service"`
	Date      string    `gorm:"column:date"`
	Status    string    `gorm:"column:status"`
	Amount    int64     `gorm:"column:amount"`
	Notes     *string   `gorm:"column:notes"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (bookingModel) TableName() string { return "bookings" }

func toDomainBooking(m bookingModel) *domain.Booking {
	var notes string
	if m.Notes != nil {
		notes = *m.Notes
	}

	return &domain.Booking{
		ID:        m.ID,
		Customer:  m.Customer,
		Service:   m.Service,
		Date:      m.Date,
		Status:    m.Status,
		Amount:    m.Amount,
		Notes:     notes,
		CreatedAt: m.CreatedAt,
	}
}

func toBookingModel(b *domain.Booking) bookingModel {
	var notes *string
	if b.Notes != "" {
		v := b.Notes
		notes = &v
	}

	return bookingModel{
		ID:        b.ID,
		Customer:  b.Customer,
		Service:   b.Service,
		Date:      b.Date,
		Status:    b.Status,
		Amount:    b.Amount,
		Notes:     notes,
		CreatedAt: b.CreatedAt,
	}
}

func (r *BookingRepo) Create(ctx context.Context, b *domain.Booking) error {
	m := toBookingModel(b)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*b = *toDomainBooking(m)
	return nil
}

func (r *BookingRepo) List(ctx context.Context, limit int) ([]domain.Booking, error) {
	q := r.db.WithContext(ctx).Order("id DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}

	var models []bookingModel
	if tx := q.Find(&models); tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Booking, 0, len(models))
	for _, m := range models {
		out = append(out, *toDomainBooking(m))
	}
	return out, nil
}

func (r *BookingRepo) All(ctx context.Context) ([]domain.Booking, error) {
	return r.List(ctx, 0)
}

func (r *BookingRepo) Count(ctx context.Context) (int64, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).Model(&bookingModel{}).Count(&cnt)
	return cnt, tx.Error
}

func (r *BookingRepo) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	var m bookingModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, tx.Error
	}
	return toDomainBooking(m), nil
}

func (r *BookingRepo) UpdateStatus(ctx context.Context, id int64, status string) error {
	tx := r.db.WithContext(ctx).Model(&bookingModel{}).Where("id = ?", id).Update("status", status)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *BookingRepo) CountByCustomer(ctx context.Context, customer string) (int64, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).Model(&bookingModel{}).Where("customer = ?", customer).Count(&cnt)
	return cnt, tx.Error
}

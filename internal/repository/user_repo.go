package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"spotless/internal/domain"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type UserRepo struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) *UserRepo {
	return &UserRepo{db: db}
}

type userModel struct {
	ID        int64     `gorm:"column:id;primaryKey"`
	Name      string    `gorm:"column:name"`
	Email     string    `gorm:"column:email;uniqueIndex"`
	Password  string    `gorm:"column:password"`
	Role      string    `gorm:"column:role"`
	Phone     *string   `gorm:"column:phone"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (userModel) TableName() string { return "users" }

func toDomainUser(m userModel) *domain.User {
	var phone string
	if m.Phone != nil {
		phone = *m.Phone
	}

	return &domain.User{
		ID:        m.ID,
		Name:      m.Name,
		Email:     m.Email,
		Password:  m.Password,
		Role:      domain.UserRole(m.Role),
		Phone:     phone,
		CreatedAt: m.CreatedAt,
	}
}

func toUserModel(u *domain.User) userModel {
	var phone *string
	if u.Phone != "" {
		v := u.Phone
		phone = &v
	}

	return userModel{
		ID:        u.ID,
		Name:      u.Name,
		Email:     strings.TrimSpace(strings.ToLower(u.Email)),
		Password:  u.Password,
		Role:      string(u.Role),
		Phone:     phone,
		CreatedAt: u.CreatedAt,
	}
}

func (r *UserRepo) Create(ctx context.Context, u *domain.User) error {
	m := toUserModel(u)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		var pgErr *pgconn.PgError
		if errors.As(tx.Error, &pgErr) && pgErr.Code == "23505" {
			return ErrDuplicateEmail
		}
		if strings.Contains(tx.Error.Error(), "UNIQUE constraint failed") {
			return ErrDuplicateEmail
		}
		return tx.Error
	}
	*u = *toDomainUser(m)
	return nil
}

func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var m userModel
	email = strings.TrimSpace(strings.ToLower(email))
	tx := r.db.WithContext(ctx).Where("email = ?", email).First(&m)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, tx.Error
	}
	return toDomainUser(m), nil
}

func (r *UserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var cnt int64
	email = strings.TrimSpace(strings.ToLower(email))
	tx := r.db.WithContext(ctx).Model(&userModel{}).Where("email = ?", email).Count(&cnt)
	if tx.Error != nil {
		return false, tx.Error
	}
	return cnt > 0, nil
}

func (r *UserRepo) ListByRole(ctx context.Context, role domain.UserRole) ([]domain.User, error) {
	var models []userModel
	tx := r.db.WithContext(ctx).Where("role = ?", string(role)).Order("id").Find(&models)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.User, 0, len(models))
	for _, m := range models {
		out = append(out, *toDomainUser(m))
	}
	return out, nil
}

func (r *UserRepo) Count(ctx context.Context) (int64, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).Model(&userModel{}).Count(&cnt)
	return cnt, tx.Error
}

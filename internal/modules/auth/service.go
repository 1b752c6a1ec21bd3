package auth

import (
	"context"
	"errors"
	"strings"

	"spotless/internal/domain"
	"spotless/internal/repository"
)

type Service struct {
	users    UserRepository
	jwt      tokenIssuer
	sessions *SessionStore
}

func NewService(users UserRepository, jwt tokenIssuer) *Service {
	return &Service{
		users:    users,
		jwt:      jwt,
		sessions: NewSessionStore(),
	}
}

// Login matches the credentials against the stored demo password. The
// comparison is exact; no hashing is involved. Any failure collapses to
// ErrInvalidCredentials so the response never reveals whether the email
// exists.
func (s *Service) Login(ctx context.Context, req LoginRequest) (*domain.User, string, error) {
	u, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}
	if u.Password != req.Password {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.jwt.GenerateToken(u.ID, u.Email, string(u.Role))
	if err != nil {
		return nil, "", err
	}

	s.sessions.Put(token, u)
	return u, token, nil
}

// Logout always succeeds, even for tokens that were never issued.
func (s *Service) Logout(token string) {
	if token != "" {
		s.sessions.Delete(token)
	}
}

// CheckAuth reports whether the token has an active session.
func (s *Service) CheckAuth(token string) (*domain.User, bool) {
	if token == "" {
		return nil, false
	}
	return s.sessions.Get(token)
}

// Register creates a customer account. The role is forced regardless of any
// caller-supplied value.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (*domain.User, error) {
	email := strings.TrimSpace(strings.ToLower(req.Email))

	exists, err := s.users.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrEmailAlreadyExists
	}

	u := &domain.User{
		Name:     req.Name,
		Email:    email,
		Password: req.Password,
		Role:     domain.RoleCustomer,
		Phone:    req.Phone,
	}
	if err := s.users.Create(ctx, u); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, ErrEmailAlreadyExists
		}
		return nil, err
	}
	return u, nil
}

package repository

import (
	"context"
	"strings"
	"sync"
	"time"

	"spotless/internal/domain"
)

// MemoryStore keeps all records in process memory. Bookings and
// notifications are held newest-first; ids are monotonically increasing and
// never reused within a process lifetime.
type MemoryStore struct {
	mu sync.RWMutex

	users         []domain.User
	bookings      []domain.Booking
	notifications []domain.Notification

	nextUserID         int64
	nextBookingID      int64
	nextNotificationID int64
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		nextUserID:         1,
		nextBookingID:      1,
		nextNotificationID: 1,
	}
}

// ----- users -----

func (s *MemoryStore) Create(ctx context.Context, u *domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	email := strings.TrimSpace(strings.ToLower(u.Email))
	for i := range s.users {
		if s.users[i].Email == email {
			return ErrDuplicateEmail
		}
	}

	u.ID = s.nextUserID
	s.nextUserID++
	u.Email = email
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now()
	}
	s.users = append(s.users, *u)
	return nil
}

func (s *MemoryStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	email = strings.TrimSpace(strings.ToLower(email))
	for i := range s.users {
		if s.users[i].Email == email {
			u := s.users[i]
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryStore) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, err := s.GetByEmail(ctx, email)
	if err == ErrNotFound {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (s *MemoryStore) ListByRole(ctx context.Context, role domain.UserRole) ([]domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.User, 0)
	for i := range s.users {
		if s.users[i].Role == role {
			out = append(out, s.users[i])
		}
	}
	return out, nil
}

func (s *MemoryStore) Count(ctx context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.users)), nil
}

// ----- bookings -----

func (s *MemoryStore) CreateBooking(ctx context.Context, b *domain.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	b.ID = s.nextBookingID
	s.nextBookingID++
	if b.CreatedAt.IsZero() {
		b.CreatedAt = time.Now()
	}
	s.bookings = append([]domain.Booking{*b}, s.bookings...)
	return nil
}

func (s *MemoryStore) ListBookings(ctx context.Context, limit int) ([]domain.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := len(s.bookings)
	if limit > 0 && limit < n {
		n = limit
	}
	out := make([]domain.Booking, n)
	copy(out, s.bookings[:n])
	return out, nil
}

func (s *MemoryStore) AllBookings(ctx context.Context) ([]domain.Booking, error) {
	return s.ListBookings(ctx, 0)
}

func (s *MemoryStore) CountBookings(ctx context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.bookings)), nil
}

func (s *MemoryStore) GetBookingByID(ctx context.Context, id int64) (*domain.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.bookings {
		if s.bookings[i].ID == id {
			b := s.bookings[i]
			return &b, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryStore) UpdateBookingStatus(ctx context.Context, id int64, status string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.bookings {
		if s.bookings[i].ID == id {
			s.bookings[i].Status = status
			return nil
		}
	}
	return ErrNotFound
}

func (s *MemoryStore) CountBookingsByCustomer(ctx context.Context, customer string) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var n int64
	for i := range s.bookings {
		if s.bookings[i].Customer == customer {
			n++
		}
	}
	return n, nil
}

// ----- notifications -----

func (s *MemoryStore) CreateNotification(ctx context.Context, n *domain.Notification) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	n.ID = s.nextNotificationID
	s.nextNotificationID++
	if n.Timestamp.IsZero() {
		n.Timestamp = time.Now()
	}
	s.notifications = append([]domain.Notification{*n}, s.notifications...)
	return nil
}

func (s *MemoryStore) ListNotifications(ctx context.Context, limit int) ([]domain.Notification, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := len(s.notifications)
	if limit > 0 && limit < n {
		n = limit
	}
	out := make([]domain.Notification, n)
	copy(out, s.notifications[:n])
	return out, nil
}

func (s *MemoryStore) CountNotifications(ctx context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.notifications)), nil
}

func (s *MemoryStore) CountUnreadNotifications(ctx context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var n int64
	for i := range s.notifications {
		if !s.notifications[i].Read {
			n++
		}
	}
	return n, nil
}

func (s *MemoryStore) MarkNotificationRead(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.notifications {
		if s.notifications[i].ID == id {
			s.notifications[i].Read = true
			return nil
		}
	}
	return ErrNotFound
}

// memoryBookings and memoryNotifications adapt MemoryStore's prefixed methods
// to the repository interfaces, so one store can back all three.

type memoryBookings struct{ s *MemoryStore }

func (r memoryBookings) Create(ctx context.Context, b *domain.Booking) error {
	return r.s.CreateBooking(ctx, b)
}
func (r memoryBookings) List(ctx context.Context, limit int) ([]domain.Booking, error) {
	return r.s.ListBookings(ctx, limit)
}
func (r memoryBookings) All(ctx context.Context) ([]domain.Booking, error) {
	return r.s.AllBookings(ctx)
}
func (r memoryBookings) Count(ctx context.Context) (int64, error) {
	return r.s.CountBookings(ctx)
}
func (r memoryBookings) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	return r.s.GetBookingByID(ctx, id)
}
func (r memoryBookings) UpdateStatus(ctx context.Context, id int64, status string) error {
	return r.s.UpdateBookingStatus(ctx, id, status)
}
func (r memoryBookings) CountByCustomer(ctx context.Context, customer string) (int64, error) {
	return r.s.CountBookingsByCustomer(ctx, customer)
}

type memoryNotifications struct{ s *MemoryStore }

func (r memoryNotifications) Create(ctx context.Context, n *domain.Notification) error {
	return r.s.CreateNotification(ctx, n)
}
func (r memoryNotifications) List(ctx context.Context, limit int) ([]domain.Notification, error) {
	return r.s.ListNotifications(ctx, limit)
}
func (r memoryNotifications) Count(ctx context.Context) (int64, error) {
	return r.s.CountNotifications(ctx)
}
func (r memoryNotifications) CountUnread(ctx context.Context) (int64, error) {
	return r.s.CountUnreadNotifications(ctx)
}
func (r memoryNotifications) MarkRead(ctx context.Context, id int64) error {
	return r.s.MarkNotificationRead(ctx, id)
}

// NewMemoryRepositories returns the three repository views over a single
// shared in-memory store.
func NewMemoryRepositories() (UserRepository, BookingRepository, NotificationRepository) {
	s := NewMemoryStore()
	return s, memoryBookings{s}, memoryNotifications{s}
}

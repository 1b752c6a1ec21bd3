package repository

import (
	"context"
	"testing"

	"spotless/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryBookings_OrderAndIDs(t *testing.T) {
	_, bookings, _ := NewMemoryRepositories()
	ctx := context.Background()

	names := []string{"Alice", "Bob", "Carol", "Dave"}
	for _, name := range names {
		b := &domain.Booking{Customer: name, Service: "Deep Cleaning", Status: domain.BookingPending, Amount: 100}
		require.NoError(t, bookings.Create(ctx, b))
	}

	rows, err := bookings.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, rows, 4)

	// newest first, ids strictly increasing with creation order
	assert.Equal(t, "Dave", rows[0].Customer)
	assert.Equal(t, "Alice", rows[3].Customer)
	for i := 0; i < len(rows)-1; i++ {
		assert.Greater(t, rows[i].ID, rows[i+1].ID)
	}

	limited, err := bookings.List(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, limited, 2)
	assert.Equal(t, "Dave", limited[0].Customer)

	total, err := bookings.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 4, total)
}

func TestMemoryBookings_UpdateStatus(t *testing.T) {
	_, bookings, _ := NewMemoryRepositories()
	ctx := context.Background()

	b := &domain.Booking{Customer: "Alice", Service: "Window Cleaning", Status: domain.BookingPending}
	require.NoError(t, bookings.Create(ctx, b))

	// arbitrary status strings are stored as-is
	require.NoError(t, bookings.UpdateStatus(ctx, b.ID, "on-hold"))
	got, err := bookings.GetByID(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, "on-hold", got.Status)

	assert.ErrorIs(t, bookings.UpdateStatus(ctx, 9999, "confirmed"), ErrNotFound)
}

func TestMemoryNotifications_CountsOverFullLog(t *testing.T) {
	_, _, notifications := NewMemoryRepositories()
	ctx := context.Background()

	for i := 0; i < 15; i++ {
		n := &domain.Notification{Type: domain.NotificationInfo, Message: "hello"}
		require.NoError(t, notifications.Create(ctx, n))
	}

	rows, err := notifications.List(ctx, 10)
	require.NoError(t, err)
	assert.Len(t, rows, 10)

	total, err := notifications.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 15, total)

	unread, err := notifications.CountUnread(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 15, unread)

	require.NoError(t, notifications.MarkRead(ctx, rows[0].ID))
	unread, err = notifications.CountUnread(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 14, unread)
}

func TestMemoryNotifications_MarkReadUnknownID(t *testing.T) {
	_, _, notifications := NewMemoryRepositories()
	ctx := context.Background()

	n := &domain.Notification{Type: domain.NotificationInfo, Message: "hello"}
	require.NoError(t, notifications.Create(ctx, n))

	assert.ErrorIs(t, notifications.MarkRead(ctx, 42), ErrNotFound)

	rows, err := notifications.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.False(t, rows[0].Read, "failed mark-read must not alter existing entries")
}

func TestMemoryUsers_DuplicateEmail(t *testing.T) {
	users, _, _ := NewMemoryRepositories()
	ctx := context.Background()

	u := &domain.User{Name: "A", Email: "a@spotless.com", Password: "x", Role: domain.RoleCustomer}
	require.NoError(t, users.Create(ctx, u))

	dup := &domain.User{Name: "B", Email: "A@Spotless.com", Password: "y", Role: domain.RoleCustomer}
	assert.ErrorIs(t, users.Create(ctx, dup), ErrDuplicateEmail)
}

func TestSeedDemoData_Idempotent(t *testing.T) {
	users, bookings, _ := NewMemoryRepositories()
	ctx := context.Background()

	require.NoError(t, SeedDemoData(ctx, users, bookings))
	require.NoError(t, SeedDemoData(ctx, users, bookings))

	cnt, err := users.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 3, cnt)

	admin, err := users.GetByEmail(ctx, "admin@spotless.com")
	require.NoError(t, err)
	assert.Equal(t, "admin123", admin.Password)
	assert.Equal(t, domain.RoleAdmin, admin.Role)

	total, err := bookings.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 5, total)
}

package notification

import (
	"context"
	"testing"

	"spotless/internal/domain"
	"spotless/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockNotificationRepository struct {
	mock.Mock
}

func (m *MockNotificationRepository) Create(ctx context.Context, n *domain.Notification) error {
	args := m.Called(ctx, n)
	if n != nil {
		n.ID = 5
	}
	return args.Error(0)
}

func (m *MockNotificationRepository) List(ctx context.Context, limit int) ([]domain.Notification, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Notification), args.Error(1)
}

func (m *MockNotificationRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockNotificationRepository) CountUnread(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockNotificationRepository) MarkRead(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestService_Send_EmptyMessage(t *testing.T) {
	repo := new(MockNotificationRepository)
	service := NewService(repo, nil)

	_, err := service.Send(context.Background(), SendRequest{Message: "   "})

	assert.ErrorIs(t, err, ErrEmptyMessage)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_Send_Defaults(t *testing.T) {
	repo := new(MockNotificationRepository)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	service := NewService(repo, nil)

	n, err := service.Send(context.Background(), SendRequest{Message: "Scheduled maintenance tonight"})

	require.NoError(t, err)
	assert.Equal(t, domain.NotificationInfo, n.Type)
	assert.Equal(t, "all", n.Recipient)
	assert.False(t, n.Read)
	assert.False(t, n.Timestamp.IsZero())
}

func TestService_NotifyBookingCreated_MessageContents(t *testing.T) {
	repo := new(MockNotificationRepository)

	var stored *domain.Notification
	repo.On("Create", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { stored = args.Get(1).(*domain.Notification) }).
		Return(nil)

	service := NewService(repo, nil)

	err := service.NotifyBookingCreated(context.Background(), &domain.Booking{
		ID:       17,
		Customer: "Sarah Customer",
	})

	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, domain.NotificationBooking, stored.Type)
	assert.Contains(t, stored.Message, "#17")
	assert.Contains(t, stored.Message, "Sarah Customer")
}

func TestService_List_CountsOverFullLog(t *testing.T) {
	repo := new(MockNotificationRepository)
	repo.On("List", mock.Anything, 10).Return([]domain.Notification{{ID: 3}, {ID: 2}}, nil)
	repo.On("CountUnread", mock.Anything).Return(int64(7), nil)
	repo.On("Count", mock.Anything).Return(int64(23), nil)

	service := NewService(repo, nil)

	rows, unread, total, err := service.List(context.Background(), 0)

	require.NoError(t, err)
	assert.Len(t, rows, 2)
	assert.EqualValues(t, 7, unread)
	assert.EqualValues(t, 23, total)
}

func TestService_MarkRead_NotFound(t *testing.T) {
	repo := new(MockNotificationRepository)
	repo.On("MarkRead", mock.Anything, int64(404)).Return(repository.ErrNotFound)

	service := NewService(repo, nil)

	assert.ErrorIs(t, service.MarkRead(context.Background(), 404), ErrNotFound)
}

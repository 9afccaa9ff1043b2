package notification

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockNotificationRepository struct {
	mock.Mock
}

func (m *MockNotificationRepository) Create(ctx context.Context, n *Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

func (m *MockNotificationRepository) ListByUser(ctx context.Context, userID int64, limit int) ([]Notification, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Notification), args.Error(1)
}

func (m *MockNotificationRepository) CountUnread(ctx context.Context, userID int64) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockNotificationRepository) MarkRead(ctx context.Context, id, userID int64, at time.Time) (bool, error) {
	args := m.Called(ctx, id, userID, at)
	return args.Bool(0), args.Error(1)
}

func (m *MockNotificationRepository) MarkAllRead(ctx context.Context, userID int64, at time.Time) error {
	args := m.Called(ctx, userID, at)
	return args.Error(0)
}

func TestNotifyLeadClaimed_WritesFeedEntry(t *testing.T) {
	repo := new(MockNotificationRepository)
	svc := NewService(repo)

	repo.On("Create", mock.Anything, mock.MatchedBy(func(n *Notification) bool {
		return n.UserID == 4 && n.Type == TypeLeadClaimed && n.Title == "Lead claimed"
	})).Return(nil)

	err := svc.NotifyLeadClaimed(context.Background(), 4, 17, "Jane Doe")
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestNotifyOrderAssigned_IncludesReference(t *testing.T) {
	repo := new(MockNotificationRepository)
	svc := NewService(repo)

	repo.On("Create", mock.Anything, mock.MatchedBy(func(n *Notification) bool {
		return n.Type == TypeOrderAssigned && n.Body == "Order ORD-A1B2C3 (#9) was assigned to you."
	})).Return(nil)

	err := svc.NotifyOrderAssigned(context.Background(), 2, 9, "ORD-A1B2C3")
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestList_ClampsLimit(t *testing.T) {
	repo := new(MockNotificationRepository)
	svc := NewService(repo)

	repo.On("ListByUser", mock.Anything, int64(4), 20).Return([]Notification{}, nil)
	repo.On("CountUnread", mock.Anything, int64(4)).Return(int64(3), nil)

	_, unread, err := svc.List(context.Background(), 4, -1)
	require.NoError(t, err)
	assert.Equal(t, int64(3), unread)
	repo.AssertExpectations(t)
}

func TestMarkRead_OtherUsersRowIsNotFound(t *testing.T) {
	repo := new(MockNotificationRepository)
	svc := NewService(repo)

	repo.On("MarkRead", mock.Anything, int64(8), int64(4), mock.Anything).Return(false, nil)

	err := svc.MarkRead(context.Background(), 8, 4)
	assert.ErrorIs(t, err, ErrNotFound)
}

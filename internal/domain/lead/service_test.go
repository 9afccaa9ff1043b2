package lead

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

const window = 72 * time.Hour

// Mock repositories

type MockLeadRepository struct {
	mock.Mock
}

func (m *MockLeadRepository) Create(ctx context.Context, l *Lead) error {
	args := m.Called(ctx, l)
	if l != nil {
		l.ID = 999 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockLeadRepository) GetByID(ctx context.Context, id int64) (*Lead, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Lead), args.Error(1)
}

func (m *MockLeadRepository) List(ctx context.Context, f ListFilter) ([]Lead, int64, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]Lead), args.Get(1).(int64), args.Error(2)
}

func (m *MockLeadRepository) Update(ctx context.Context, l *Lead) error {
	args := m.Called(ctx, l)
	return args.Error(0)
}

func (m *MockLeadRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockLeadRepository) Claim(ctx context.Context, id, repID int64, at time.Time) (bool, error) {
	args := m.Called(ctx, id, repID, at)
	return args.Bool(0), args.Error(1)
}

func (m *MockLeadRepository) MarkConverted(ctx context.Context, id int64, at time.Time) (bool, error) {
	args := m.Called(ctx, id, at)
	return args.Bool(0), args.Error(1)
}

func (m *MockLeadRepository) SetConvertedOrder(ctx context.Context, id, orderID int64) error {
	args := m.Called(ctx, id, orderID)
	return args.Error(0)
}

func (m *MockLeadRepository) UpdateStatus(ctx context.Context, id int64, status Status, notes string) error {
	args := m.Called(ctx, id, status, notes)
	return args.Error(0)
}

func (m *MockLeadRepository) CountByStatus(ctx context.Context) (map[Status]int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(map[Status]int64), args.Error(1)
}

func (m *MockLeadRepository) StaleClaims(ctx context.Context, before time.Time) ([]Lead, error) {
	args := m.Called(ctx, before)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Lead), args.Error(1)
}

type MockOrderCreator struct {
	mock.Mock
}

func (m *MockOrderCreator) CreateFromLead(ctx context.Context, seed OrderSeed) (int64, string, error) {
	args := m.Called(ctx, seed)
	return args.Get(0).(int64), args.String(1), args.Error(2)
}

type MockNotificationSender struct {
	mock.Mock
}

func (m *MockNotificationSender) NotifyLeadClaimed(ctx context.Context, repID, leadID int64, leadName string) error {
	args := m.Called(ctx, repID, leadID, leadName)
	return args.Error(0)
}

func (m *MockNotificationSender) NotifyLeadConverted(ctx context.Context, repID, leadID, orderID int64) error {
	args := m.Called(ctx, repID, leadID, orderID)
	return args.Error(0)
}

func (m *MockNotificationSender) NotifyLeadStale(ctx context.Context, repID, leadID int64, leadName string) error {
	args := m.Called(ctx, repID, leadID, leadName)
	return args.Error(0)
}

func newTestService(repo LeadRepository, orders OrderCreator, notifs NotificationSender, at time.Time) *Service {
	s := NewService(repo, orders, notifs, window)
	s.now = func() time.Time { return at }
	return s
}

func unclaimedLead(id int64) *Lead {
	return &Lead{ID: id, Name: "Jane Doe", Email: "jane@x.com", Source: "Website", Status: StatusNew}
}

func claimedLead(id, repID int64, claimedAt time.Time) *Lead {
	l := unclaimedLead(id)
	l.SalesRepID = &repID
	l.ClaimedAt = &claimedAt
	return l
}

func TestService_Claim_Success(t *testing.T) {
	t0 := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	repo := new(MockLeadRepository)
	notifs := new(MockNotificationSender)

	repo.On("GetByID", mock.Anything, int64(1)).Return(unclaimedLead(1), nil).Once()
	repo.On("Claim", mock.Anything, int64(1), int64(7), t0).Return(true, nil)
	repo.On("GetByID", mock.Anything, int64(1)).Return(claimedLead(1, 7, t0), nil)
	notifs.On("NotifyLeadClaimed", mock.Anything, int64(7), int64(1), "Jane Doe").Return(nil)

	service := newTestService(repo, nil, notifs, t0)

	l, err := service.Claim(context.Background(), 1, Actor{ID: 7})

	assert.NoError(t, err)
	assert.Equal(t, int64(7), *l.SalesRepID)
	assert.Equal(t, t0, *l.ClaimedAt)
	notifs.AssertCalled(t, "NotifyLeadClaimed", mock.Anything, int64(7), int64(1), "Jane Doe")
}

func TestService_Claim_AlreadyClaimed(t *testing.T) {
	t0 := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	repo := new(MockLeadRepository)
	repo.On("GetByID", mock.Anything, int64(1)).Return(claimedLead(1, 7, t0), nil)

	service := newTestService(repo, nil, nil, t0.Add(time.Minute))

	_, err := service.Claim(context.Background(), 1, Actor{ID: 8})
	assert.ErrorIs(t, err, ErrAlreadyClaimed)
}

func TestService_Claim_RaceLost(t *testing.T) {
	// The read still sees an unclaimed lead, but the store's guarded update
	// matches no row: the other claimant won.
	t0 := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	repo := new(MockLeadRepository)
	repo.On("GetByID", mock.Anything, int64(1)).Return(unclaimedLead(1), nil)
	repo.On("Claim", mock.Anything, int64(1), int64(8), t0).Return(false, nil)

	service := newTestService(repo, nil, nil, t0)

	_, err := service.Claim(context.Background(), 1, Actor{ID: 8})
	assert.ErrorIs(t, err, ErrAlreadyClaimed)
}

func TestService_Claim_NotInPool(t *testing.T) {
	t0 := time.Now()
	l := unclaimedLead(1)
	l.Status = StatusLost
	repo := new(MockLeadRepository)
	repo.On("GetByID", mock.Anything, int64(1)).Return(l, nil)

	service := newTestService(repo, nil, nil, t0)

	_, err := service.Claim(context.Background(), 1, Actor{ID: 8})
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestService_Convert_VerificationPending(t *testing.T) {
	t0 := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	repo := new(MockLeadRepository)
	repo.On("GetByID", mock.Anything, int64(1)).Return(claimedLead(1, 7, t0), nil)

	orders := new(MockOrderCreator)
	service := newTestService(repo, orders, nil, t0.Add(24*time.Hour))

	_, err := service.Convert(context.Background(), 1, Actor{ID: 7})

	assert.ErrorIs(t, err, ErrVerificationPending)
	orders.AssertNotCalled(t, "CreateFromLead", mock.Anything, mock.Anything)
}

func TestService_Convert_AfterWindow(t *testing.T) {
	t0 := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	t4 := t0.Add(4 * 24 * time.Hour)

	l := claimedLead(1, 7, t0)
	l.Value = "1250.50"

	closed := claimedLead(1, 7, t0)
	closed.Status = StatusClosed
	orderID := int64(55)
	closed.ConvertedOrderID = &orderID
	closed.ConvertedAt = &t4

	repo := new(MockLeadRepository)
	repo.On("GetByID", mock.Anything, int64(1)).Return(l, nil).Once()
	repo.On("MarkConverted", mock.Anything, int64(1), t4).Return(true, nil)
	repo.On("SetConvertedOrder", mock.Anything, int64(1), int64(55)).Return(nil)
	repo.On("GetByID", mock.Anything, int64(1)).Return(closed, nil)

	orders := new(MockOrderCreator)
	orders.On("CreateFromLead", mock.Anything, OrderSeed{
		CustomerName:  "Jane Doe",
		CustomerEmail: "jane@x.com",
		TotalAmount:   1250.50,
		SalesRepID:    l.SalesRepID,
	}).Return(int64(55), "ORD-A1B2C3", nil)

	notifs := new(MockNotificationSender)
	notifs.On("NotifyLeadConverted", mock.Anything, int64(7), int64(1), int64(55)).Return(nil)

	service := newTestService(repo, orders, notifs, t4)

	result, err := service.Convert(context.Background(), 1, Actor{ID: 7})

	assert.NoError(t, err)
	assert.Equal(t, int64(55), result.OrderID)
	assert.Equal(t, "ORD-A1B2C3", result.OrderReference)
	assert.Equal(t, StatusClosed, result.Lead.Status)
	orders.AssertExpectations(t)
}

func TestService_Convert_AdminBypassesWindow(t *testing.T) {
	t0 := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	oneHourLater := t0.Add(time.Hour)

	l := claimedLead(1, 7, t0)
	closed := claimedLead(1, 7, t0)
	closed.Status = StatusClosed

	repo := new(MockLeadRepository)
	repo.On("GetByID", mock.Anything, int64(1)).Return(l, nil).Once()
	repo.On("MarkConverted", mock.Anything, int64(1), oneHourLater).Return(true, nil)
	repo.On("SetConvertedOrder", mock.Anything, int64(1), int64(56)).Return(nil)
	repo.On("GetByID", mock.Anything, int64(1)).Return(closed, nil)

	orders := new(MockOrderCreator)
	orders.On("CreateFromLead", mock.Anything, mock.Anything).Return(int64(56), "ORD-XYZ123", nil)

	service := newTestService(repo, orders, nil, oneHourLater)

	result, err := service.Convert(context.Background(), 1, Actor{ID: 2, Admin: true})

	assert.NoError(t, err)
	assert.Equal(t, int64(56), result.OrderID)
}

func TestService_Convert_NotOwner(t *testing.T) {
	t0 := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	repo := new(MockLeadRepository)
	repo.On("GetByID", mock.Anything, int64(1)).Return(claimedLead(1, 7, t0), nil)

	service := newTestService(repo, nil, nil, t0.Add(window))

	_, err := service.Convert(context.Background(), 1, Actor{ID: 8})
	assert.ErrorIs(t, err, ErrNotLeadOwner)
}

func TestService_Convert_Unclaimed(t *testing.T) {
	repo := new(MockLeadRepository)
	repo.On("GetByID", mock.Anything, int64(1)).Return(unclaimedLead(1), nil)

	service := newTestService(repo, nil, nil, time.Now())

	_, err := service.Convert(context.Background(), 1, Actor{ID: 2, Admin: true})
	assert.ErrorIs(t, err, ErrNotClaimed)
}

func TestService_Convert_SecondAttemptFails(t *testing.T) {
	t0 := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	closed := claimedLead(1, 7, t0)
	closed.Status = StatusClosed
	orderID := int64(55)
	closed.ConvertedOrderID = &orderID

	repo := new(MockLeadRepository)
	repo.On("GetByID", mock.Anything, int64(1)).Return(closed, nil)

	orders := new(MockOrderCreator)
	service := newTestService(repo, orders, nil, t0.Add(window))

	_, err := service.Convert(context.Background(), 1, Actor{ID: 7})

	assert.ErrorIs(t, err, ErrAlreadyConverted)
	orders.AssertNotCalled(t, "CreateFromLead", mock.Anything, mock.Anything)
}

func TestService_Convert_RaceLostNoDuplicateOrder(t *testing.T) {
	// Read sees an open lead but the guarded close matches no row: a
	// concurrent conversion already won. No order may be created.
	t0 := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	t4 := t0.Add(window)

	repo := new(MockLeadRepository)
	repo.On("GetByID", mock.Anything, int64(1)).Return(claimedLead(1, 7, t0), nil)
	repo.On("MarkConverted", mock.Anything, int64(1), t4).Return(false, nil)

	orders := new(MockOrderCreator)
	service := newTestService(repo, orders, nil, t4)

	_, err := service.Convert(context.Background(), 1, Actor{ID: 7})

	assert.ErrorIs(t, err, ErrAlreadyConverted)
	orders.AssertNotCalled(t, "CreateFromLead", mock.Anything, mock.Anything)
}

func TestService_Convert_LostLead(t *testing.T) {
	t0 := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	l := claimedLead(1, 7, t0)
	l.Status = StatusLost

	repo := new(MockLeadRepository)
	repo.On("GetByID", mock.Anything, int64(1)).Return(l, nil)

	service := newTestService(repo, nil, nil, t0.Add(window))

	_, err := service.Convert(context.Background(), 1, Actor{ID: 7})
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestService_UpdateStatus_TerminalBlocked(t *testing.T) {
	l := unclaimedLead(1)
	l.Status = StatusClosed

	repo := new(MockLeadRepository)
	repo.On("GetByID", mock.Anything, int64(1)).Return(l, nil)

	service := newTestService(repo, nil, nil, time.Now())

	err := service.UpdateStatus(context.Background(), 1, UpdateStatusRequest{Status: StatusContacted})
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestService_MarkLost(t *testing.T) {
	t0 := time.Now()
	repo := new(MockLeadRepository)
	repo.On("GetByID", mock.Anything, int64(1)).Return(claimedLead(1, 7, t0), nil)
	repo.On("UpdateStatus", mock.Anything, int64(1), StatusLost, "went with competitor").Return(nil)

	service := newTestService(repo, nil, nil, t0)

	err := service.MarkLost(context.Background(), 1, MarkLostRequest{Status: StatusLost, Reason: "went with competitor"})
	assert.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestService_NotifyStaleClaims(t *testing.T) {
	t0 := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	claimed := t0.Add(-5 * 24 * time.Hour)

	repo := new(MockLeadRepository)
	repo.On("StaleClaims", mock.Anything, t0.Add(-window)).
		Return([]Lead{*claimedLead(3, 7, claimed)}, nil)

	notifs := new(MockNotificationSender)
	notifs.On("NotifyLeadStale", mock.Anything, int64(7), int64(3), "Jane Doe").Return(nil)

	service := newTestService(repo, nil, notifs, t0)

	n, err := service.NotifyStaleClaims(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 1, n)
	notifs.AssertExpectations(t)
}

package order

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"merchflow/internal/domain/lead"
)

type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) Create(ctx context.Context, o *Order) error {
	args := m.Called(ctx, o)
	if o != nil {
		o.ID = 55 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockOrderRepository) GetByID(ctx context.Context, id int64) (*Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Order), args.Error(1)
}

func (m *MockOrderRepository) List(ctx context.Context, f ListFilter) ([]Order, int64, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]Order), args.Get(1).(int64), args.Error(2)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) UpdateStatus(ctx context.Context, id int64, status Status) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockOrderRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockPermissionReader struct {
	mock.Mock
}

func (m *MockPermissionReader) GetPermissions(ctx context.Context, userID int64) ([]string, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

type MockNotificationSender struct {
	mock.Mock
}

func (m *MockNotificationSender) NotifyOrderAssigned(ctx context.Context, userID, orderID int64, reference string) error {
	args := m.Called(ctx, userID, orderID, reference)
	return args.Error(0)
}

func TestService_CreateFromLead(t *testing.T) {
	repo := new(MockOrderRepository)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	service := NewService(repo, nil, nil)

	repID := int64(7)
	id, reference, err := service.CreateFromLead(context.Background(), lead.OrderSeed{
		CustomerName:  "Jane Doe",
		CustomerEmail: "jane@x.com",
		TotalAmount:   500,
		SalesRepID:    &repID,
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(55), id)
	assert.Regexp(t, `^ORD-[0-9A-F]{6}$`, reference)

	created := repo.Calls[0].Arguments.Get(1).(*Order)
	assert.Equal(t, "Jane Doe", created.CustomerName)
	assert.Equal(t, "jane@x.com", created.CustomerEmail)
	assert.Equal(t, 500.0, created.TotalAmount)
	assert.Equal(t, StatusPending, created.Status)
	assert.Equal(t, &repID, created.AssignedSalesRepID)
}

func TestService_UpdateStatus_RoundTrip(t *testing.T) {
	// Any declared enum value may replace any other; the value comes back
	// exactly as submitted.
	for _, status := range []Status{StatusProcessing, StatusRefunded, StatusPending} {
		repo := new(MockOrderRepository)
		repo.On("GetByID", mock.Anything, int64(1)).Return(&Order{ID: 1, Status: StatusDelivered}, nil).Once()
		repo.On("UpdateStatus", mock.Anything, int64(1), status).Return(nil)
		repo.On("GetByID", mock.Anything, int64(1)).Return(&Order{ID: 1, Status: status}, nil)

		service := NewService(repo, nil, nil)

		o, err := service.UpdateStatus(context.Background(), 1, status)
		assert.NoError(t, err)
		assert.Equal(t, status, o.Status)
	}
}

func TestService_UpdateStatus_UnknownValue(t *testing.T) {
	repo := new(MockOrderRepository)
	service := NewService(repo, nil, nil)

	_, err := service.UpdateStatus(context.Background(), 1, Status("archived"))
	assert.ErrorIs(t, err, ErrInvalidStatus)
	repo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_Delete_RequiresPermission(t *testing.T) {
	repo := new(MockOrderRepository)
	perms := new(MockPermissionReader)
	perms.On("GetPermissions", mock.Anything, int64(9)).Return([]string{"VIEW_ALL_ORDERS"}, nil)

	service := NewService(repo, perms, nil)

	err := service.Delete(context.Background(), 1, 9, "sales_rep")
	assert.ErrorIs(t, err, ErrPermissionDenied)
	repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestService_Delete_WithGrant(t *testing.T) {
	repo := new(MockOrderRepository)
	repo.On("GetByID", mock.Anything, int64(1)).Return(&Order{ID: 1}, nil)
	repo.On("Delete", mock.Anything, int64(1)).Return(nil)

	perms := new(MockPermissionReader)
	perms.On("GetPermissions", mock.Anything, int64(9)).Return([]string{"DELETE_ORDERS"}, nil)

	service := NewService(repo, perms, nil)

	err := service.Delete(context.Background(), 1, 9, "sales_rep")
	assert.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestService_Delete_AdminImplicit(t *testing.T) {
	repo := new(MockOrderRepository)
	repo.On("GetByID", mock.Anything, int64(1)).Return(&Order{ID: 1}, nil)
	repo.On("Delete", mock.Anything, int64(1)).Return(nil)

	perms := new(MockPermissionReader)
	perms.On("GetPermissions", mock.Anything, int64(2)).Return([]string{}, nil)

	service := NewService(repo, perms, nil)

	err := service.Delete(context.Background(), 1, 2, "admin")
	assert.NoError(t, err)
}

func TestService_Assign_Notifies(t *testing.T) {
	o := &Order{ID: 1, Reference: "ORD-AB12CD"}
	repo := new(MockOrderRepository)
	repo.On("GetByID", mock.Anything, int64(1)).Return(o, nil)
	repo.On("Update", mock.Anything, mock.Anything).Return(nil)

	notifs := new(MockNotificationSender)
	notifs.On("NotifyOrderAssigned", mock.Anything, int64(12), int64(1), "ORD-AB12CD").Return(nil)

	service := NewService(repo, nil, notifs)

	result, err := service.Assign(context.Background(), 1, AssignRequest{Role: "designer", UserID: 12})
	assert.NoError(t, err)
	assert.Equal(t, int64(12), *result.AssignedDesignerID)
	notifs.AssertExpectations(t)
}

func TestOrder_ItemsRoundTrip(t *testing.T) {
	o := &Order{}
	due := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	o.DueDate = &due

	items := []LineItem{
		{Name: "Team Hoodie", SKU: "HD-001", Sizes: map[string]int{"M": 10, "L": 4}, UnitPrice: 39.90},
	}
	assert.NoError(t, o.SetItems(items))

	parsed, err := o.ParseItems()
	assert.NoError(t, err)
	assert.Equal(t, items, parsed)
}

func TestOrder_ParseItems_Malformed(t *testing.T) {
	o := &Order{ID: 3, Items: []byte(`{"not":"a list"}`)}
	_, err := o.ParseItems()
	assert.Error(t, err)
}

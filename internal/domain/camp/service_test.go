package camp

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockCampRepository struct {
	mock.Mock
}

func (m *MockCampRepository) Create(ctx context.Context, c *Camp) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCampRepository) GetByID(ctx context.Context, id int64) (*Camp, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Camp), args.Error(1)
}

func (m *MockCampRepository) List(ctx context.Context) ([]Camp, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Camp), args.Error(1)
}

func (m *MockCampRepository) Update(ctx context.Context, c *Camp) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCampRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCampRepository) CreateRegistration(ctx context.Context, r *Registration) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockCampRepository) ListRegistrations(ctx context.Context, campID int64) ([]Registration, error) {
	args := m.Called(ctx, campID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Registration), args.Error(1)
}

func (m *MockCampRepository) DeleteRegistration(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCampRepository) RegisteredCount(ctx context.Context, campID int64) (int, error) {
	args := m.Called(ctx, campID)
	return args.Int(0), args.Error(1)
}

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestCreate_RejectsBadDates(t *testing.T) {
	repo := new(MockCampRepository)
	svc := NewService(repo)

	_, err := svc.Create(context.Background(), &CreateCampRequest{
		Name:      "Summer Camp",
		StartDate: day("2026-07-10"),
		EndDate:   day("2026-07-01"),
	})

	assert.ErrorIs(t, err, ErrBadDates)
	repo.AssertNotCalled(t, "Create")
}

func TestStatus_DerivedFromDates(t *testing.T) {
	repo := new(MockCampRepository)
	svc := NewService(repo)

	camp := &Camp{
		ID:        1,
		Name:      "Summer Camp",
		StartDate: day("2026-07-01"),
		EndDate:   day("2026-07-10"),
	}
	repo.On("GetByID", mock.Anything, int64(1)).Return(camp, nil)
	repo.On("RegisteredCount", mock.Anything, int64(1)).Return(0, nil)

	cases := []struct {
		now  string
		want Status
	}{
		{"2026-06-30", StatusPlanning},
		{"2026-07-01", StatusActive},
		{"2026-07-10", StatusActive},
		{"2026-07-11", StatusCompleted},
	}
	for _, tc := range cases {
		svc.now = func() time.Time { return day(tc.now) }
		got, err := svc.GetByID(context.Background(), 1)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got.Status, "now=%s", tc.now)
	}
}

func TestGetByID_NotFound(t *testing.T) {
	repo := new(MockCampRepository)
	svc := NewService(repo)

	repo.On("GetByID", mock.Anything, int64(99)).Return(nil, nil)

	_, err := svc.GetByID(context.Background(), 99)
	assert.ErrorIs(t, err, ErrCampNotFound)
}

func TestRegister_WithinCapacity(t *testing.T) {
	repo := new(MockCampRepository)
	svc := NewService(repo)

	camp := &Camp{ID: 1, Capacity: 30, StartDate: day("2026-07-01"), EndDate: day("2026-07-10")}
	repo.On("GetByID", mock.Anything, int64(1)).Return(camp, nil)
	repo.On("RegisteredCount", mock.Anything, int64(1)).Return(25, nil)
	repo.On("CreateRegistration", mock.Anything, mock.MatchedBy(func(r *Registration) bool {
		return r.CampID == 1 && r.Name == "Acme Youth" && r.Size == 5
	})).Return(nil)

	reg, err := svc.Register(context.Background(), 1, &RegisterRequest{
		Name:  "Acme Youth",
		Email: "coach@acme.test",
		Size:  5,
	})

	require.NoError(t, err)
	assert.Equal(t, 5, reg.Size)
	repo.AssertExpectations(t)
}

func TestRegister_OverCapacity(t *testing.T) {
	repo := new(MockCampRepository)
	svc := NewService(repo)

	camp := &Camp{ID: 1, Capacity: 30, StartDate: day("2026-07-01"), EndDate: day("2026-07-10")}
	repo.On("GetByID", mock.Anything, int64(1)).Return(camp, nil)
	repo.On("RegisteredCount", mock.Anything, int64(1)).Return(28, nil)

	_, err := svc.Register(context.Background(), 1, &RegisterRequest{
		Name:  "Acme Youth",
		Email: "coach@acme.test",
		Size:  5,
	})

	assert.ErrorIs(t, err, ErrCampFull)
	repo.AssertNotCalled(t, "CreateRegistration")
}

func TestRegister_ZeroCapacityIsUnlimited(t *testing.T) {
	repo := new(MockCampRepository)
	svc := NewService(repo)

	camp := &Camp{ID: 2, Capacity: 0, StartDate: day("2026-07-01"), EndDate: day("2026-07-10")}
	repo.On("GetByID", mock.Anything, int64(2)).Return(camp, nil)
	repo.On("CreateRegistration", mock.Anything, mock.Anything).Return(nil)

	reg, err := svc.Register(context.Background(), 2, &RegisterRequest{
		Name:  "Walk-in",
		Email: "walkin@test.dev",
	})

	require.NoError(t, err)
	assert.Equal(t, 1, reg.Size, "size defaults to 1")
	repo.AssertNotCalled(t, "RegisteredCount")
}

func TestUpdate_DatesRevalidated(t *testing.T) {
	repo := new(MockCampRepository)
	svc := NewService(repo)

	camp := &Camp{ID: 1, StartDate: day("2026-07-01"), EndDate: day("2026-07-10")}
	repo.On("GetByID", mock.Anything, int64(1)).Return(camp, nil)

	bad := day("2026-06-01")
	_, err := svc.Update(context.Background(), 1, &UpdateCampRequest{EndDate: &bad})

	assert.ErrorIs(t, err, ErrBadDates)
	repo.AssertNotCalled(t, "Update")
}

func TestUnregister_UnknownRegistration(t *testing.T) {
	repo := new(MockCampRepository)
	svc := NewService(repo)

	repo.On("ListRegistrations", mock.Anything, int64(1)).Return([]Registration{{ID: 7, CampID: 1}}, nil)

	err := svc.Unregister(context.Background(), 1, 42)
	assert.ErrorIs(t, err, ErrRegNotFound)
	repo.AssertNotCalled(t, "DeleteRegistration")
}

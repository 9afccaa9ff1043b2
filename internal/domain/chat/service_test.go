package chat

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockChatRepository struct {
	mock.Mock
}

func (m *MockChatRepository) CreateChannel(ctx context.Context, ch *Channel) error {
	args := m.Called(ctx, ch)
	return args.Error(0)
}

func (m *MockChatRepository) GetChannelByID(ctx context.Context, id string) (*Channel, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Channel), args.Error(1)
}

func (m *MockChatRepository) GetDirectChannelByUsers(ctx context.Context, userA, userB int64) (*Channel, error) {
	args := m.Called(ctx, userA, userB)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Channel), args.Error(1)
}

func (m *MockChatRepository) ListChannelsByUser(ctx context.Context, userID int64) ([]*ChannelWithUnread, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*ChannelWithUnread), args.Error(1)
}

func (m *MockChatRepository) AddMember(ctx context.Context, mem *Membership) error {
	args := m.Called(ctx, mem)
	return args.Error(0)
}

func (m *MockChatRepository) RemoveMember(ctx context.Context, channelID string, userID int64) error {
	args := m.Called(ctx, channelID, userID)
	return args.Error(0)
}

func (m *MockChatRepository) GetMembers(ctx context.Context, channelID string) ([]*Membership, error) {
	args := m.Called(ctx, channelID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*Membership), args.Error(1)
}

func (m *MockChatRepository) IsMember(ctx context.Context, channelID string, userID int64) (bool, error) {
	args := m.Called(ctx, channelID, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockChatRepository) MemberChannelIDs(ctx context.Context, userID int64) ([]string, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockChatRepository) CreateMessage(ctx context.Context, msg *Message) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

func (m *MockChatRepository) GetMessages(ctx context.Context, channelID string, limit, offset int) ([]*Message, error) {
	args := m.Called(ctx, channelID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*Message), args.Error(1)
}

func (m *MockChatRepository) CountUnread(ctx context.Context, channelID string, userID int64) (int, error) {
	args := m.Called(ctx, channelID, userID)
	return args.Int(0), args.Error(1)
}

func (m *MockChatRepository) MarkChannelRead(ctx context.Context, channelID string, userID int64) error {
	args := m.Called(ctx, channelID, userID)
	return args.Error(0)
}

func TestGetOrCreateDirect_Self(t *testing.T) {
	repo := new(MockChatRepository)
	svc := NewService(repo)

	_, err := svc.GetOrCreateDirect(context.Background(), 7, 7)
	assert.ErrorIs(t, err, ErrSelfChannel)
}

func TestGetOrCreateDirect_ReturnsExisting(t *testing.T) {
	repo := new(MockChatRepository)
	svc := NewService(repo)

	existing := &Channel{ID: "ch-1", Kind: KindDirect}
	repo.On("GetDirectChannelByUsers", mock.Anything, int64(1), int64(2)).Return(existing, nil)

	ch, err := svc.GetOrCreateDirect(context.Background(), 1, 2)
	require.NoError(t, err)
	assert.Equal(t, "ch-1", ch.ID)
	repo.AssertNotCalled(t, "CreateChannel")
}

func TestGetOrCreateDirect_CreatesWithBothMembers(t *testing.T) {
	repo := new(MockChatRepository)
	svc := NewService(repo)

	repo.On("GetDirectChannelByUsers", mock.Anything, int64(1), int64(2)).Return(nil, nil)
	repo.On("CreateChannel", mock.Anything, mock.MatchedBy(func(ch *Channel) bool {
		return ch.Kind == KindDirect && ch.ID != ""
	})).Return(nil)
	repo.On("AddMember", mock.Anything, mock.AnythingOfType("*chat.Membership")).Return(nil).Twice()

	ch, err := svc.GetOrCreateDirect(context.Background(), 1, 2)
	require.NoError(t, err)
	assert.Equal(t, KindDirect, ch.Kind)
	repo.AssertExpectations(t)
}

func TestSendMessage_RequiresMembership(t *testing.T) {
	repo := new(MockChatRepository)
	svc := NewService(repo)

	repo.On("GetChannelByID", mock.Anything, "ch-1").Return(&Channel{ID: "ch-1", Kind: KindTeam}, nil)
	repo.On("IsMember", mock.Anything, "ch-1", int64(9)).Return(false, nil)

	_, err := svc.SendMessage(context.Background(), 9, "ch-1", "hello")
	assert.ErrorIs(t, err, ErrNotMember)
	repo.AssertNotCalled(t, "CreateMessage")
}

func TestSendMessage_Stored(t *testing.T) {
	repo := new(MockChatRepository)
	svc := NewService(repo)

	repo.On("GetChannelByID", mock.Anything, "ch-1").Return(&Channel{ID: "ch-1", Kind: KindTeam}, nil)
	repo.On("IsMember", mock.Anything, "ch-1", int64(3)).Return(true, nil)
	repo.On("CreateMessage", mock.Anything, mock.MatchedBy(func(msg *Message) bool {
		return msg.ChannelID == "ch-1" && msg.SenderID == 3 && msg.Content == "design files ready"
	})).Return(nil)

	msg, err := svc.SendMessage(context.Background(), 3, "ch-1", "design files ready")
	require.NoError(t, err)
	assert.NotEmpty(t, msg.ID)
	repo.AssertExpectations(t)
}

func TestAddMember_OnlyCreator(t *testing.T) {
	repo := new(MockChatRepository)
	svc := NewService(repo)

	ch := &Channel{ID: "ch-1", Kind: KindTeam}
	ch.CreatorID.Int64, ch.CreatorID.Valid = 5, true
	repo.On("GetChannelByID", mock.Anything, "ch-1").Return(ch, nil)

	err := svc.AddMember(context.Background(), 6, "ch-1", 10)
	assert.ErrorIs(t, err, ErrNotCreator)
}

func TestAddMember_AlreadyMember(t *testing.T) {
	repo := new(MockChatRepository)
	svc := NewService(repo)

	ch := &Channel{ID: "ch-1", Kind: KindTeam}
	ch.CreatorID.Int64, ch.CreatorID.Valid = 5, true
	repo.On("GetChannelByID", mock.Anything, "ch-1").Return(ch, nil)
	repo.On("IsMember", mock.Anything, "ch-1", int64(10)).Return(true, nil)

	err := svc.AddMember(context.Background(), 5, "ch-1", 10)
	assert.ErrorIs(t, err, ErrAlreadyMember)
}

func TestGetMessages_ClampsLimit(t *testing.T) {
	repo := new(MockChatRepository)
	svc := NewService(repo)

	repo.On("IsMember", mock.Anything, "ch-1", int64(3)).Return(true, nil)
	repo.On("GetMessages", mock.Anything, "ch-1", 50, 0).Return([]*Message{}, nil)

	_, err := svc.GetMessages(context.Background(), 3, "ch-1", 10000, 0)
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

package chat

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// Service handles chat business logic
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// GetOrCreateDirect returns the existing 1-on-1 channel between two users
// or creates a new one.
func (s *Service) GetOrCreateDirect(ctx context.Context, userID, recipientID int64) (*Channel, error) {
	if userID == recipientID {
		return nil, ErrSelfChannel
	}

	existing, err := s.repo.GetDirectChannelByUsers(ctx, userID, recipientID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	ch := &Channel{
		ID:        uuid.New().String(),
		Kind:      KindDirect,
		CreatedAt: time.Now(),
	}
	if err := s.repo.CreateChannel(ctx, ch); err != nil {
		return nil, err
	}

	now := time.Now()
	for _, uid := range []int64{userID, recipientID} {
		if err := s.repo.AddMember(ctx, &Membership{
			ChannelID: ch.ID,
			UserID:    uid,
			JoinedAt:  now,
		}); err != nil {
			return nil, err
		}
	}
	return ch, nil
}

// CreateTeam creates a named team channel. The creator is always a member.
func (s *Service) CreateTeam(ctx context.Context, creatorID int64, name string, memberIDs []int64) (*Channel, error) {
	ch := &Channel{
		ID:        uuid.New().String(),
		Kind:      KindTeam,
		Name:      sql.NullString{String: name, Valid: name != ""},
		CreatorID: sql.NullInt64{Int64: creatorID, Valid: true},
		CreatedAt: time.Now(),
	}
	if err := s.repo.CreateChannel(ctx, ch); err != nil {
		return nil, err
	}

	now := time.Now()
	if err := s.repo.AddMember(ctx, &Membership{
		ChannelID: ch.ID,
		UserID:    creatorID,
		JoinedAt:  now,
	}); err != nil {
		return nil, err
	}
	for _, uid := range memberIDs {
		if uid == creatorID {
			continue
		}
		_ = s.repo.AddMember(ctx, &Membership{
			ChannelID: ch.ID,
			UserID:    uid,
			JoinedAt:  now,
		})
	}
	return ch, nil
}

// AddMember adds a user to a team channel. Only the creator can do this.
func (s *Service) AddMember(ctx context.Context, requesterID int64, channelID string, newMemberID int64) error {
	ch, err := s.repo.GetChannelByID(ctx, channelID)
	if err != nil {
		return err
	}
	if ch.Kind != KindTeam {
		return ErrNotCreator
	}
	if !ch.CreatorID.Valid || ch.CreatorID.Int64 != requesterID {
		return ErrNotCreator
	}

	already, _ := s.repo.IsMember(ctx, channelID, newMemberID)
	if already {
		return ErrAlreadyMember
	}

	return s.repo.AddMember(ctx, &Membership{
		ChannelID: channelID,
		UserID:    newMemberID,
		JoinedAt:  time.Now(),
	})
}

// Leave removes the requester from a channel.
func (s *Service) Leave(ctx context.Context, userID int64, channelID string) error {
	if _, err := s.repo.GetChannelByID(ctx, channelID); err != nil {
		return err
	}
	isMember, _ := s.repo.IsMember(ctx, channelID, userID)
	if !isMember {
		return ErrNotMember
	}
	return s.repo.RemoveMember(ctx, channelID, userID)
}

func (s *Service) GetMembers(ctx context.Context, requesterID int64, channelID string) ([]*Membership, error) {
	isMember, _ := s.repo.IsMember(ctx, channelID, requesterID)
	if !isMember {
		return nil, ErrNotMember
	}
	return s.repo.GetMembers(ctx, channelID)
}

// SendMessage stores a message after validating membership.
func (s *Service) SendMessage(ctx context.Context, senderID int64, channelID, content string) (*Message, error) {
	if _, err := s.repo.GetChannelByID(ctx, channelID); err != nil {
		return nil, err
	}
	isMember, _ := s.repo.IsMember(ctx, channelID, senderID)
	if !isMember {
		return nil, ErrNotMember
	}

	msg := &Message{
		ID:        uuid.New().String(),
		ChannelID: channelID,
		SenderID:  senderID,
		Content:   content,
		CreatedAt: time.Now(),
	}
	if err := s.repo.CreateMessage(ctx, msg); err != nil {
		return nil, err
	}
	return msg, nil
}

// GetMessages returns paginated history, newest first.
func (s *Service) GetMessages(ctx context.Context, userID int64, channelID string, limit, offset int) ([]*Message, error) {
	isMember, _ := s.repo.IsMember(ctx, channelID, userID)
	if !isMember {
		return nil, ErrNotMember
	}
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	return s.repo.GetMessages(ctx, channelID, limit, offset)
}

func (s *Service) MarkRead(ctx context.Context, userID int64, channelID string) error {
	isMember, _ := s.repo.IsMember(ctx, channelID, userID)
	if !isMember {
		return ErrNotMember
	}
	return s.repo.MarkChannelRead(ctx, channelID, userID)
}

func (s *Service) ListChannels(ctx context.Context, userID int64) ([]*ChannelWithUnread, error) {
	return s.repo.ListChannelsByUser(ctx, userID)
}

// MemberChannelIDs feeds the hub's initial subscriptions on connect.
func (s *Service) MemberChannelIDs(ctx context.Context, userID int64) ([]string, error) {
	return s.repo.MemberChannelIDs(ctx, userID)
}

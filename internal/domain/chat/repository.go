package chat

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"gorm.io/gorm"
)

// Repository handles all DB operations for the chat domain
type Repository interface {
	CreateChannel(ctx context.Context, ch *Channel) error
	GetChannelByID(ctx context.Context, id string) (*Channel, error)
	GetDirectChannelByUsers(ctx context.Context, userA, userB int64) (*Channel, error)
	ListChannelsByUser(ctx context.Context, userID int64) ([]*ChannelWithUnread, error)

	AddMember(ctx context.Context, m *Membership) error
	RemoveMember(ctx context.Context, channelID string, userID int64) error
	GetMembers(ctx context.Context, channelID string) ([]*Membership, error)
	IsMember(ctx context.Context, channelID string, userID int64) (bool, error)
	MemberChannelIDs(ctx context.Context, userID int64) ([]string, error)

	CreateMessage(ctx context.Context, msg *Message) error
	GetMessages(ctx context.Context, channelID string, limit, offset int) ([]*Message, error)
	CountUnread(ctx context.Context, channelID string, userID int64) (int, error)
	MarkChannelRead(ctx context.Context, channelID string, userID int64) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CreateChannel(ctx context.Context, ch *Channel) error {
	return r.db.WithContext(ctx).Create(ch).Error
}

func (r *repository) GetChannelByID(ctx context.Context, id string) (*Channel, error) {
	var ch Channel
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&ch).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrChannelNotFound
	}
	if err != nil {
		return nil, err
	}
	return &ch, nil
}

func (r *repository) GetDirectChannelByUsers(ctx context.Context, userA, userB int64) (*Channel, error) {
	var ch Channel
	err := r.db.WithContext(ctx).
		Joins("JOIN channel_members m1 ON m1.channel_id = channels.id AND m1.user_id = ?", userA).
		Joins("JOIN channel_members m2 ON m2.channel_id = channels.id AND m2.user_id = ?", userB).
		Where("channels.kind = ?", KindDirect).
		First(&ch).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &ch, nil
}

func (r *repository) ListChannelsByUser(ctx context.Context, userID int64) ([]*ChannelWithUnread, error) {
	var channels []*Channel
	err := r.db.WithContext(ctx).
		Joins("JOIN channel_members m ON m.channel_id = channels.id AND m.user_id = ?", userID).
		Order("channels.created_at DESC").
		Find(&channels).Error
	if err != nil {
		return nil, err
	}

	result := make([]*ChannelWithUnread, 0, len(channels))
	for _, ch := range channels {
		unread, _ := r.CountUnread(ctx, ch.ID, userID)
		members, _ := r.GetMembers(ctx, ch.ID)
		result = append(result, &ChannelWithUnread{
			Channel:     ch,
			UnreadCount: unread,
			Members:     members,
		})
	}
	return result, nil
}

func (r *repository) AddMember(ctx context.Context, m *Membership) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *repository) RemoveMember(ctx context.Context, channelID string, userID int64) error {
	return r.db.WithContext(ctx).
		Where("channel_id = ? AND user_id = ?", channelID, userID).
		Delete(&Membership{}).Error
}

func (r *repository) GetMembers(ctx context.Context, channelID string) ([]*Membership, error) {
	var members []*Membership
	err := r.db.WithContext(ctx).
		Where("channel_id = ?", channelID).
		Order("joined_at ASC").
		Find(&members).Error
	return members, err
}

func (r *repository) IsMember(ctx context.Context, channelID string, userID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Membership{}).
		Where("channel_id = ? AND user_id = ?", channelID, userID).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) MemberChannelIDs(ctx context.Context, userID int64) ([]string, error) {
	var ids []string
	err := r.db.WithContext(ctx).
		Model(&Membership{}).
		Where("user_id = ?", userID).
		Pluck("channel_id", &ids).Error
	return ids, err
}

func (r *repository) CreateMessage(ctx context.Context, msg *Message) error {
	return r.db.WithContext(ctx).Create(msg).Error
}

func (r *repository) GetMessages(ctx context.Context, channelID string, limit, offset int) ([]*Message, error) {
	var msgs []*Message
	err := r.db.WithContext(ctx).
		Where("channel_id = ?", channelID).
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&msgs).Error
	return msgs, err
}

func (r *repository) CountUnread(ctx context.Context, channelID string, userID int64) (int, error) {
	var lastRead sql.NullTime
	r.db.WithContext(ctx).
		Model(&Membership{}).
		Select("last_read_at").
		Where("channel_id = ? AND user_id = ?", channelID, userID).
		Scan(&lastRead)

	q := r.db.WithContext(ctx).
		Model(&Message{}).
		Where("channel_id = ? AND sender_id != ?", channelID, userID)
	if lastRead.Valid {
		q = q.Where("created_at > ?", lastRead.Time)
	}
	var count int64
	err := q.Count(&count).Error
	return int(count), err
}

func (r *repository) MarkChannelRead(ctx context.Context, channelID string, userID int64) error {
	return r.db.WithContext(ctx).
		Model(&Membership{}).
		Where("channel_id = ? AND user_id = ?", channelID, userID).
		Update("last_read_at", time.Now()).Error
}

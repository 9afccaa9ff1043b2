package chat

import (
	"database/sql"
	"time"
)

// Kind distinguishes direct 1-on-1 channels from named team channels
// (design, manufacturing, a camp crew).
type Kind string

const (
	KindDirect Kind = "direct"
	KindTeam   Kind = "team"
)

// Channel is a conversation between users.
type Channel struct {
	ID        string         `gorm:"column:id;primaryKey" json:"id"`
	Kind      Kind           `gorm:"column:kind" json:"kind"`
	Name      sql.NullString `gorm:"column:name" json:"name,omitempty"`
	CreatorID sql.NullInt64  `gorm:"column:creator_id" json:"creator_id,omitempty"`
	CreatedAt time.Time      `gorm:"column:created_at" json:"created_at"`
}

func (Channel) TableName() string { return "channels" }

// Membership is a participant in a channel.
type Membership struct {
	ChannelID  string       `gorm:"column:channel_id;primaryKey" json:"channel_id"`
	UserID     int64        `gorm:"column:user_id;primaryKey" json:"user_id"`
	LastReadAt sql.NullTime `gorm:"column:last_read_at" json:"last_read_at,omitempty"`
	JoinedAt   time.Time    `gorm:"column:joined_at" json:"joined_at"`
}

func (Membership) TableName() string { return "channel_members" }

// Message is a single chat message.
type Message struct {
	ID        string    `gorm:"column:id;primaryKey" json:"id"`
	ChannelID string    `gorm:"column:channel_id;index" json:"channel_id"`
	SenderID  int64     `gorm:"column:sender_id" json:"sender_id"`
	Content   string    `gorm:"column:content" json:"content"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
}

func (Message) TableName() string { return "channel_messages" }

// ChannelWithUnread is the list view: channel plus the caller's unread count.
type ChannelWithUnread struct {
	*Channel
	UnreadCount int           `json:"unread_count"`
	Members     []*Membership `json:"members"`
}

package notification

import (
	"database/sql"
	"time"
)

// Type tags the event that produced a notification.
type Type string

const (
	TypeLeadClaimed   Type = "lead_claimed"
	TypeLeadConverted Type = "lead_converted"
	TypeLeadStale     Type = "lead_stale"
	TypeOrderAssigned Type = "order_assigned"
)

// Notification is an in-app feed entry for a user.
type Notification struct {
	ID        int64        `gorm:"column:id;primaryKey" json:"id"`
	UserID    int64        `gorm:"column:user_id;index" json:"user_id"`
	Type      Type         `gorm:"column:type" json:"type"`
	Title     string       `gorm:"column:title" json:"title"`
	Body      string       `gorm:"column:body" json:"body,omitempty"`
	ReadAt    sql.NullTime `gorm:"column:read_at" json:"read_at,omitempty"`
	CreatedAt time.Time    `gorm:"column:created_at" json:"created_at"`
}

func (Notification) TableName() string { return "notifications" }

func (n *Notification) IsRead() bool { return n.ReadAt.Valid }

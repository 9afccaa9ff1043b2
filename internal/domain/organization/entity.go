package organization

import "time"

// Organization is a company or client entity associated with leads and orders.
type Organization struct {
	ID           int64     `gorm:"column:id;primaryKey" json:"id"`
	Name         string    `gorm:"column:name" json:"name"`
	ContactEmail string    `gorm:"column:contact_email" json:"contact_email,omitempty"`
	Phone        string    `gorm:"column:phone" json:"phone,omitempty"`
	Notes        string    `gorm:"column:notes" json:"notes,omitempty"`
	CreatedAt    time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (Organization) TableName() string { return "organizations" }

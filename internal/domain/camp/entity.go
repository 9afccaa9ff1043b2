package camp

import "time"

// Status is derived from the camp's dates, never stored.
type Status string

const (
	StatusPlanning  Status = "planning"
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
)

// Camp is a planned event: a sales/team trip, a pop-up, a sports camp the
// company outfits.
type Camp struct {
	ID        int64     `gorm:"column:id;primaryKey" json:"id"`
	Name      string    `gorm:"column:name" json:"name"`
	Location  string    `gorm:"column:location" json:"location,omitempty"`
	StartDate time.Time `gorm:"column:start_date" json:"start_date"`
	EndDate   time.Time `gorm:"column:end_date" json:"end_date"`
	Capacity  int       `gorm:"column:capacity" json:"capacity"`
	Notes     string    `gorm:"column:notes" json:"notes,omitempty"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`

	// Derived, populated on read.
	Status Status `gorm:"-" json:"status,omitempty"`
}

func (Camp) TableName() string { return "camps" }

// StatusAt derives the camp status for a point in time. Dates are treated
// as inclusive day bounds.
func (c *Camp) StatusAt(now time.Time) Status {
	day := now.Truncate(24 * time.Hour)
	start := c.StartDate.Truncate(24 * time.Hour)
	end := c.EndDate.Truncate(24 * time.Hour)

	switch {
	case day.Before(start):
		return StatusPlanning
	case day.After(end):
		return StatusCompleted
	default:
		return StatusActive
	}
}

// Registration is one signup against a camp's capacity. Size covers group
// registrations.
type Registration struct {
	ID        int64     `gorm:"column:id;primaryKey" json:"id"`
	CampID    int64     `gorm:"column:camp_id;index" json:"camp_id"`
	Name      string    `gorm:"column:name" json:"name"`
	Email     string    `gorm:"column:email" json:"email"`
	Size      int       `gorm:"column:size;default:1" json:"size"`
	Notes     string    `gorm:"column:notes" json:"notes,omitempty"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
}

func (Registration) TableName() string { return "camp_registrations" }

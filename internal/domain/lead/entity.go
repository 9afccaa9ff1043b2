package lead

import (
	"time"
)

// Status represents lead pipeline status
type Status string

const (
	StatusNew         Status = "new"
	StatusContacted   Status = "contacted"
	StatusQualified   Status = "qualified"
	StatusProposal    Status = "proposal"
	StatusNegotiation Status = "negotiation"
	StatusClosed      Status = "closed"
	StatusLost        Status = "lost"
)

// ActiveStatuses are the pipeline statuses a rep may move a lead between.
// closed and lost are terminal and only reachable through Convert or MarkLost.
var ActiveStatuses = []Status{StatusNew, StatusContacted, StatusQualified, StatusProposal, StatusNegotiation}

// Lead is a prospective customer. A lead with SalesRepID == nil and status
// "new" sits in the unclaimed pool; the first successful claim wins and there
// is no unclaim.
type Lead struct {
	ID    int64  `gorm:"column:id;primaryKey" json:"id"`
	Name  string `gorm:"column:name" json:"name"`
	Email string `gorm:"column:email" json:"email"`
	Phone string `gorm:"column:phone" json:"phone,omitempty"`

	Source string `gorm:"column:source" json:"source,omitempty"`
	Status Status `gorm:"column:status;default:'new'" json:"status"`

	SalesRepID *int64     `gorm:"column:sales_rep_id" json:"sales_rep_id,omitempty"`
	ClaimedAt  *time.Time `gorm:"column:claimed_at" json:"claimed_at,omitempty"`

	// Value is a decimal string as entered, parsed only at conversion.
	Value string `gorm:"column:value" json:"value,omitempty"`
	Notes string `gorm:"column:notes" json:"notes,omitempty"`

	OrganizationID *int64 `gorm:"column:organization_id" json:"organization_id,omitempty"`

	ConvertedOrderID *int64     `gorm:"column:converted_order_id" json:"converted_order_id,omitempty"`
	ConvertedAt      *time.Time `gorm:"column:converted_at" json:"converted_at,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (Lead) TableName() string { return "leads" }

// IsClaimed returns true once a sales rep owns the lead
func (l *Lead) IsClaimed() bool {
	return l.SalesRepID != nil
}

// IsTerminal returns true for closed or lost leads
func (l *Lead) IsTerminal() bool {
	return l.Status == StatusClosed || l.Status == StatusLost
}

// IsConverted returns true once the lead has produced an order
func (l *Lead) IsConverted() bool {
	return l.Status == StatusClosed && l.ConvertedOrderID != nil
}

// IsVerified reports whether the verification window has elapsed since the
// claim. Admin actors bypass this check entirely.
func (l *Lead) IsVerified(now time.Time, window time.Duration) bool {
	if l.ClaimedAt == nil {
		return false
	}
	return now.Sub(*l.ClaimedAt) >= window
}

// IsValidStatus reports whether s is one of the declared pipeline values.
func IsValidStatus(s Status) bool {
	switch s {
	case StatusNew, StatusContacted, StatusQualified, StatusProposal,
		StatusNegotiation, StatusClosed, StatusLost:
		return true
	}
	return false
}

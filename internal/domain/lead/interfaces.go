package lead

import (
	"context"
	"time"
)

// LeadRepository — data access used by the service. Claim and MarkConverted
// are the two guarded writes: the store, not the caller, arbitrates races.
type LeadRepository interface {
	Create(ctx context.Context, l *Lead) error
	GetByID(ctx context.Context, id int64) (*Lead, error)
	List(ctx context.Context, f ListFilter) ([]Lead, int64, error)
	Update(ctx context.Context, l *Lead) error
	Delete(ctx context.Context, id int64) error

	// Claim atomically assigns the lead to repID. The update is guarded by
	// sales_rep_id IS NULL AND status = 'new'; it returns false when the
	// guard matched no row, i.e. another rep won the race or the lead left
	// the pool.
	Claim(ctx context.Context, id, repID int64, at time.Time) (bool, error)

	// MarkConverted atomically closes the lead. The update is guarded by the
	// lead not already being terminal; it returns false when the guard
	// matched no row, so a second conversion can never proceed.
	MarkConverted(ctx context.Context, id int64, at time.Time) (bool, error)

	// SetConvertedOrder records the back-reference to the created order.
	SetConvertedOrder(ctx context.Context, id, orderID int64) error

	UpdateStatus(ctx context.Context, id int64, status Status, notes string) error
	CountByStatus(ctx context.Context) (map[Status]int64, error)

	// StaleClaims returns leads claimed before the cutoff that are still in
	// status "new" — reps who claimed and never followed up.
	StaleClaims(ctx context.Context, before time.Time) ([]Lead, error)
}

// OrderSeed carries the lead fields an order is materialized from
type OrderSeed struct {
	CustomerName  string
	CustomerEmail string
	TotalAmount   float64
	SalesRepID    *int64
	OrgID         *int64
}

// OrderCreator — the order store's conversion entry point
type OrderCreator interface {
	CreateFromLead(ctx context.Context, seed OrderSeed) (orderID int64, reference string, err error)
}

// NotificationSender — side-effect feed; nil disables notifications
type NotificationSender interface {
	NotifyLeadClaimed(ctx context.Context, repID, leadID int64, leadName string) error
	NotifyLeadConverted(ctx context.Context, repID, leadID, orderID int64) error
	NotifyLeadStale(ctx context.Context, repID, leadID int64, leadName string) error
}

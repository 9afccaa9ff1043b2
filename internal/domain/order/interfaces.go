package order

import "context"

// OrderRepository — data access used by the service
type OrderRepository interface {
	Create(ctx context.Context, o *Order) error
	GetByID(ctx context.Context, id int64) (*Order, error)
	List(ctx context.Context, f ListFilter) ([]Order, int64, error)
	Update(ctx context.Context, o *Order) error
	UpdateStatus(ctx context.Context, id int64, status Status) error
	Delete(ctx context.Context, id int64) error
}

// PermissionReader resolves an actor's explicit permission grants
type PermissionReader interface {
	GetPermissions(ctx context.Context, userID int64) ([]string, error)
}

// NotificationSender — side-effect feed; nil disables notifications
type NotificationSender interface {
	NotifyOrderAssigned(ctx context.Context, userID, orderID int64, reference string) error
}

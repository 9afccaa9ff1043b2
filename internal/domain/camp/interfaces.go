package camp

import "context"

// CampRepository — data access used by the service
type CampRepository interface {
	Create(ctx context.Context, c *Camp) error
	GetByID(ctx context.Context, id int64) (*Camp, error)
	List(ctx context.Context) ([]Camp, error)
	Update(ctx context.Context, c *Camp) error
	Delete(ctx context.Context, id int64) error

	CreateRegistration(ctx context.Context, r *Registration) error
	ListRegistrations(ctx context.Context, campID int64) ([]Registration, error)
	DeleteRegistration(ctx context.Context, id int64) error

	// RegisteredCount sums registration sizes for a camp.
	RegisteredCount(ctx context.Context, campID int64) (int, error)
}

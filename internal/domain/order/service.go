package order

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"merchflow/internal/domain/lead"
	"merchflow/internal/pkg/permissions"
)

// Service handles order business logic
type Service struct {
	repo   OrderRepository
	perms  PermissionReader
	notifs NotificationSender
}

func NewService(repo OrderRepository, perms PermissionReader, notifs NotificationSender) *Service {
	return &Service{repo: repo, perms: perms, notifs: notifs}
}

// newReference builds the human-facing order id, e.g. ORD-9F3A21.
func newReference() string {
	id := uuid.New().String()
	return "ORD-" + strings.ToUpper(id[:6])
}

func (s *Service) Create(ctx context.Context, req CreateOrderRequest) (*Order, error) {
	o := &Order{
		Reference:      newReference(),
		CustomerName:   req.CustomerName,
		CustomerEmail:  req.CustomerEmail,
		TotalAmount:    req.TotalAmount,
		Status:         StatusPending,
		OrganizationID: req.OrganizationID,
		DueDate:        req.DueDate,
		PriorityLevel:  req.PriorityLevel,
	}
	if err := o.SetItems(req.Items); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}

// CreateFromLead materializes an order from a converted lead. Satisfies the
// lead package's OrderCreator.
func (s *Service) CreateFromLead(ctx context.Context, seed lead.OrderSeed) (int64, string, error) {
	o := &Order{
		Reference:          newReference(),
		CustomerName:       seed.CustomerName,
		CustomerEmail:      seed.CustomerEmail,
		TotalAmount:        seed.TotalAmount,
		Status:             StatusPending,
		AssignedSalesRepID: seed.SalesRepID,
		OrganizationID:     seed.OrgID,
	}
	if err := s.repo.Create(ctx, o); err != nil {
		return 0, "", err
	}
	return o.ID, o.Reference, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (*Order, error) {
	o, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, ErrOrderNotFound
	}
	return o, nil
}

func (s *Service) List(ctx context.Context, f ListFilter) ([]Order, int64, error) {
	if f.Limit <= 0 || f.Limit > 200 {
		f.Limit = 50
	}
	return s.repo.List(ctx, f)
}

func (s *Service) Update(ctx context.Context, id int64, req UpdateOrderRequest) (*Order, error) {
	o, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.CustomerName != nil {
		o.CustomerName = *req.CustomerName
	}
	if req.CustomerEmail != nil {
		o.CustomerEmail = *req.CustomerEmail
	}
	if req.TotalAmount != nil {
		o.TotalAmount = *req.TotalAmount
	}
	if req.Items != nil {
		if err := o.SetItems(*req.Items); err != nil {
			return nil, err
		}
	}
	if req.OrganizationID != nil {
		o.OrganizationID = req.OrganizationID
	}
	if req.DueDate != nil {
		o.DueDate = req.DueDate
	}
	if req.PriorityLevel != nil {
		o.PriorityLevel = *req.PriorityLevel
	}

	if err := s.repo.Update(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}

// UpdateStatus sets any declared status value; membership is the only check.
func (s *Service) UpdateStatus(ctx context.Context, id int64, status Status) (*Order, error) {
	if !IsValidStatus(status) {
		return nil, ErrInvalidStatus
	}
	if _, err := s.GetByID(ctx, id); err != nil {
		return nil, err
	}
	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	return s.GetByID(ctx, id)
}

// Assign puts a team member into one of the order's assignment slots.
func (s *Service) Assign(ctx context.Context, id int64, req AssignRequest) (*Order, error) {
	o, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	switch req.Role {
	case "designer":
		o.AssignedDesignerID = &req.UserID
	case "sales_rep":
		o.AssignedSalesRepID = &req.UserID
	case "manufacturer":
		o.AssignedManufacturerID = &req.UserID
	default:
		return nil, ErrUnknownAssignee
	}

	if err := s.repo.Update(ctx, o); err != nil {
		return nil, err
	}

	if s.notifs != nil {
		_ = s.notifs.NotifyOrderAssigned(ctx, req.UserID, o.ID, o.Reference)
	}
	return o, nil
}

// Delete removes an order; requires the DELETE_ORDERS capability. The
// related design and manufacturing records become orphaned — the handler
// surfaces that warning to the caller.
func (s *Service) Delete(ctx context.Context, id int64, actorID int64, actorRole string) error {
	perms, err := s.perms.GetPermissions(ctx, actorID)
	if err != nil {
		return err
	}
	if !permissions.Has(actorRole, perms, permissions.DeleteOrders) {
		return ErrPermissionDenied
	}

	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

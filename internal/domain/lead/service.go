package lead

import (
	"context"
	"log"
	"strconv"
	"time"
)

// Actor is the explicit session passed into every lifecycle decision,
// instead of ambient auth state.
type Actor struct {
	ID    int64
	Admin bool
}

// Service enforces the lead lifecycle: new-unclaimed → claimed → (window
// elapses) → convertible → converted, with lost/closed as the other
// terminals. Admins bypass ownership and the verification window, never the
// state machine itself.
type Service struct {
	repo   LeadRepository
	orders OrderCreator
	notifs NotificationSender
	window time.Duration
	now    func() time.Time
}

func NewService(repo LeadRepository, orders OrderCreator, notifs NotificationSender, window time.Duration) *Service {
	return &Service{
		repo:   repo,
		orders: orders,
		notifs: notifs,
		window: window,
		now:    time.Now,
	}
}

func (s *Service) Create(ctx context.Context, req CreateLeadRequest) (*Lead, error) {
	l := &Lead{
		Name:           req.Name,
		Email:          req.Email,
		Phone:          req.Phone,
		Source:         req.Source,
		Status:         StatusNew,
		Value:          req.Value,
		Notes:          req.Notes,
		OrganizationID: req.OrganizationID,
	}
	if err := s.repo.Create(ctx, l); err != nil {
		return nil, err
	}
	return l, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (*Lead, error) {
	l, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if l == nil {
		return nil, ErrLeadNotFound
	}
	return l, nil
}

func (s *Service) List(ctx context.Context, f ListFilter) ([]Lead, int64, error) {
	if f.Limit <= 0 || f.Limit > 200 {
		f.Limit = 50
	}
	return s.repo.List(ctx, f)
}

func (s *Service) Update(ctx context.Context, id int64, req UpdateLeadRequest) (*Lead, error) {
	l, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if l.IsConverted() {
		return nil, ErrAlreadyConverted
	}

	if req.Name != nil {
		l.Name = *req.Name
	}
	if req.Email != nil {
		l.Email = *req.Email
	}
	if req.Phone != nil {
		l.Phone = *req.Phone
	}
	if req.Source != nil {
		l.Source = *req.Source
	}
	if req.Value != nil {
		l.Value = *req.Value
	}
	if req.Notes != nil {
		l.Notes = *req.Notes
	}
	if req.OrganizationID != nil {
		l.OrganizationID = req.OrganizationID
	}

	if err := s.repo.Update(ctx, l); err != nil {
		return nil, err
	}
	return l, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

// Claim takes ownership of an unclaimed lead for actor. First successful
// claim wins; the repository's guarded update is the arbiter, so two racing
// browsers cannot both succeed.
func (s *Service) Claim(ctx context.Context, id int64, actor Actor) (*Lead, error) {
	l, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if l.IsClaimed() {
		return nil, ErrAlreadyClaimed
	}
	if l.Status != StatusNew {
		return nil, ErrInvalidStatus
	}

	ok, err := s.repo.Claim(ctx, id, actor.ID, s.now())
	if err != nil {
		return nil, err
	}
	if !ok {
		// The guard matched no row: someone else claimed between our read
		// and the update.
		return nil, ErrAlreadyClaimed
	}

	l, err = s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if s.notifs != nil {
		_ = s.notifs.NotifyLeadClaimed(ctx, actor.ID, l.ID, l.Name)
	}
	return l, nil
}

// Convert closes the lead and materializes an order from it. Preconditions:
// claimed by the actor (or actor is admin) and the verification window has
// elapsed (or actor is admin). The terminal-state guard runs before order
// creation, so a lost race can never produce a duplicate order.
func (s *Service) Convert(ctx context.Context, id int64, actor Actor) (*ConvertResponse, error) {
	l, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if l.Status == StatusClosed {
		return nil, ErrAlreadyConverted
	}
	if l.Status == StatusLost {
		return nil, ErrInvalidStatus
	}
	if !l.IsClaimed() {
		return nil, ErrNotClaimed
	}
	if !actor.Admin && *l.SalesRepID != actor.ID {
		return nil, ErrNotLeadOwner
	}
	if !actor.Admin && !l.IsVerified(s.now(), s.window) {
		return nil, ErrVerificationPending
	}

	// Win the terminal transition first; if another request already closed
	// the lead we bail out before touching the order store.
	ok, err := s.repo.MarkConverted(ctx, id, s.now())
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrAlreadyConverted
	}

	orderID, reference, err := s.orders.CreateFromLead(ctx, OrderSeed{
		CustomerName:  l.Name,
		CustomerEmail: l.Email,
		TotalAmount:   parseValue(l.Value),
		SalesRepID:    l.SalesRepID,
		OrgID:         l.OrganizationID,
	})
	if err != nil {
		// The lead stays closed; surface the failure rather than reopening
		// a terminal state.
		log.Printf("lead_convert_order_failed lead_id=%d error=%q", id, err)
		return nil, err
	}

	if err := s.repo.SetConvertedOrder(ctx, id, orderID); err != nil {
		log.Printf("lead_convert_backref_failed lead_id=%d order_id=%d error=%q", id, orderID, err)
	}

	l, err = s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if s.notifs != nil && l.SalesRepID != nil {
		_ = s.notifs.NotifyLeadConverted(ctx, *l.SalesRepID, l.ID, orderID)
	}

	return &ConvertResponse{Lead: l, OrderID: orderID, OrderReference: reference}, nil
}

// UpdateStatus moves a lead between active pipeline statuses.
func (s *Service) UpdateStatus(ctx context.Context, id int64, req UpdateStatusRequest) error {
	l, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if l.IsTerminal() {
		return ErrInvalidStatus
	}
	return s.repo.UpdateStatus(ctx, id, req.Status, req.Notes)
}

// MarkLost applies a terminal transition outside conversion. No gating
// beyond existence and not being converted already.
func (s *Service) MarkLost(ctx context.Context, id int64, req MarkLostRequest) error {
	l, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if l.IsConverted() {
		return ErrAlreadyConverted
	}
	notes := req.Reason
	if notes == "" {
		notes = l.Notes
	}
	return s.repo.UpdateStatus(ctx, id, req.Status, notes)
}

func (s *Service) Stats(ctx context.Context) (map[Status]int64, error) {
	return s.repo.CountByStatus(ctx)
}

// NotifyStaleClaims pings reps whose claimed leads have sat untouched past
// the verification window. Read-and-notify only; it never mutates leads.
func (s *Service) NotifyStaleClaims(ctx context.Context) (int, error) {
	if s.notifs == nil {
		return 0, nil
	}
	stale, err := s.repo.StaleClaims(ctx, s.now().Add(-s.window))
	if err != nil {
		return 0, err
	}
	for _, l := range stale {
		if l.SalesRepID != nil {
			_ = s.notifs.NotifyLeadStale(ctx, *l.SalesRepID, l.ID, l.Name)
		}
	}
	return len(stale), nil
}

func parseValue(v string) float64 {
	if v == "" {
		return 0
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0
	}
	return f
}

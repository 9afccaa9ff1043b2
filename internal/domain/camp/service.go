package camp

import (
	"context"
	"time"
)

// Service contains camp business logic
type Service struct {
	repo CampRepository
	now  func() time.Time
}

func NewService(repo CampRepository) *Service {
	return &Service{repo: repo, now: time.Now}
}

func (s *Service) Create(ctx context.Context, req *CreateCampRequest) (*Camp, error) {
	if req.EndDate.Before(req.StartDate) {
		return nil, ErrBadDates
	}

	c := &Camp{
		Name:      req.Name,
		Location:  req.Location,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Capacity:  req.Capacity,
		Notes:     req.Notes,
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	c.Status = c.StatusAt(s.now())
	return c, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (*CampWithCounts, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, ErrCampNotFound
	}
	c.Status = c.StatusAt(s.now())

	count, err := s.repo.RegisteredCount(ctx, id)
	if err != nil {
		return nil, err
	}
	return &CampWithCounts{Camp: *c, Registered: count}, nil
}

func (s *Service) List(ctx context.Context) ([]CampWithCounts, error) {
	camps, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]CampWithCounts, 0, len(camps))
	for i := range camps {
		camps[i].Status = camps[i].StatusAt(s.now())
		count, err := s.repo.RegisteredCount(ctx, camps[i].ID)
		if err != nil {
			return nil, err
		}
		out = append(out, CampWithCounts{Camp: camps[i], Registered: count})
	}
	return out, nil
}

func (s *Service) Update(ctx context.Context, id int64, req *UpdateCampRequest) (*Camp, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, ErrCampNotFound
	}

	if req.Name != nil {
		c.Name = *req.Name
	}
	if req.Location != nil {
		c.Location = *req.Location
	}
	if req.StartDate != nil {
		c.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		c.EndDate = *req.EndDate
	}
	if req.Capacity != nil {
		c.Capacity = *req.Capacity
	}
	if req.Notes != nil {
		c.Notes = *req.Notes
	}

	if c.EndDate.Before(c.StartDate) {
		return nil, ErrBadDates
	}

	if err := s.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	c.Status = c.StatusAt(s.now())
	return c, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if c == nil {
		return ErrCampNotFound
	}
	return s.repo.Delete(ctx, id)
}

// Register signs a party up against the camp's capacity. A capacity of zero
// means unlimited.
func (s *Service) Register(ctx context.Context, campID int64, req *RegisterRequest) (*Registration, error) {
	c, err := s.repo.GetByID(ctx, campID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, ErrCampNotFound
	}

	size := req.Size
	if size < 1 {
		size = 1
	}

	if c.Capacity > 0 {
		taken, err := s.repo.RegisteredCount(ctx, campID)
		if err != nil {
			return nil, err
		}
		if taken+size > c.Capacity {
			return nil, ErrCampFull
		}
	}

	reg := &Registration{
		CampID: campID,
		Name:   req.Name,
		Email:  req.Email,
		Size:   size,
		Notes:  req.Notes,
	}
	if err := s.repo.CreateRegistration(ctx, reg); err != nil {
		return nil, err
	}
	return reg, nil
}

func (s *Service) ListRegistrations(ctx context.Context, campID int64) ([]Registration, error) {
	c, err := s.repo.GetByID(ctx, campID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, ErrCampNotFound
	}
	return s.repo.ListRegistrations(ctx, campID)
}

func (s *Service) Unregister(ctx context.Context, campID, regID int64) error {
	regs, err := s.repo.ListRegistrations(ctx, campID)
	if err != nil {
		return err
	}
	for _, reg := range regs {
		if reg.ID == regID {
			return s.repo.DeleteRegistration(ctx, regID)
		}
	}
	return ErrRegNotFound
}

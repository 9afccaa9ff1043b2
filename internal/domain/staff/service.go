package staff

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("staff member not found")

type Service struct {
	repo *Repository
}

func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, req CreateRequest) (*Member, error) {
	m := &Member{
		UserID:     req.UserID,
		Name:       req.Name,
		Title:      req.Title,
		Department: Department(req.Department),
		Email:      req.Email,
		Phone:      req.Phone,
		Active:     true,
	}
	if err := s.repo.Create(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (*Member, error) {
	m, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, ErrNotFound
	}
	return m, nil
}

func (s *Service) List(ctx context.Context, dept *Department, activeOnly bool) ([]Member, error) {
	return s.repo.List(ctx, dept, activeOnly)
}

func (s *Service) Update(ctx context.Context, id int64, req UpdateRequest) (*Member, error) {
	m, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		m.Name = *req.Name
	}
	if req.Title != nil {
		m.Title = *req.Title
	}
	if req.Department != nil {
		m.Department = Department(*req.Department)
	}
	if req.Email != nil {
		m.Email = *req.Email
	}
	if req.Phone != nil {
		m.Phone = *req.Phone
	}
	if req.Active != nil {
		m.Active = *req.Active
	}

	if err := s.repo.Update(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

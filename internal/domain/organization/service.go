package organization

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("organization not found")

type Service struct {
	repo *Repository
}

func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, req CreateRequest) (*Organization, error) {
	o := &Organization{
		Name:         req.Name,
		ContactEmail: req.ContactEmail,
		Phone:        req.Phone,
		Notes:        req.Notes,
	}
	if err := s.repo.Create(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (*Organization, error) {
	o, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, ErrNotFound
	}
	return o, nil
}

func (s *Service) List(ctx context.Context, search string) ([]Organization, error) {
	return s.repo.List(ctx, search)
}

func (s *Service) Update(ctx context.Context, id int64, req UpdateRequest) (*Organization, error) {
	o, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		o.Name = *req.Name
	}
	if req.ContactEmail != nil {
		o.ContactEmail = *req.ContactEmail
	}
	if req.Phone != nil {
		o.Phone = *req.Phone
	}
	if req.Notes != nil {
		o.Notes = *req.Notes
	}

	if err := s.repo.Update(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

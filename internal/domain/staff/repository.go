package staff

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Create(ctx context.Context, m *Member) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*Member, error) {
	var m Member
	tx := r.db.WithContext(ctx).First(&m, id)
	if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &m, nil
}

func (r *Repository) List(ctx context.Context, dept *Department, activeOnly bool) ([]Member, error) {
	q := r.db.WithContext(ctx).Order("name ASC")
	if dept != nil {
		q = q.Where("department = ?", *dept)
	}
	if activeOnly {
		q = q.Where("active = ?", true)
	}
	var members []Member
	err := q.Find(&members).Error
	return members, err
}

func (r *Repository) Update(ctx context.Context, m *Member) error {
	return r.db.WithContext(ctx).Save(m).Error
}

func (r *Repository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&Member{}, id).Error
}

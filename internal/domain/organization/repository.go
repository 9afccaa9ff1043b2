package organization

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

func (r *Repository) Create(ctx context.Context, o *Organization) error {
	return r.db.WithContext(ctx).Create(o).Error
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*Organization, error) {
	var o Organization
	tx := r.db.WithContext(ctx).First(&o, id)
	if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &o, nil
}

func (r *Repository) List(ctx context.Context, search string) ([]Organization, error) {
	q := r.db.WithContext(ctx).Order("name ASC")
	if search != "" {
		q = q.Where("name LIKE ?", "%"+search+"%")
	}
	var orgs []Organization
	err := q.Find(&orgs).Error
	return orgs, err
}

func (r *Repository) Update(ctx context.Context, o *Organization) error {
	return r.db.WithContext(ctx).Save(o).Error
}

func (r *Repository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&Organization{}, id).Error
}

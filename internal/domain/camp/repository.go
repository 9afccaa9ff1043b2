package camp

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// Repository handles camp data access
type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Create(ctx context.Context, c *Camp) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*Camp, error) {
	var c Camp
	tx := r.db.WithContext(ctx).First(&c, id)
	if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &c, nil
}

func (r *Repository) List(ctx context.Context) ([]Camp, error) {
	var camps []Camp
	err := r.db.WithContext(ctx).Order("start_date ASC").Find(&camps).Error
	return camps, err
}

func (r *Repository) Update(ctx context.Context, c *Camp) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *Repository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("camp_id = ?", id).Delete(&Registration{}).Error; err != nil {
			return err
		}
		return tx.Delete(&Camp{}, id).Error
	})
}

func (r *Repository) CreateRegistration(ctx context.Context, reg *Registration) error {
	return r.db.WithContext(ctx).Create(reg).Error
}

func (r *Repository) ListRegistrations(ctx context.Context, campID int64) ([]Registration, error) {
	var regs []Registration
	err := r.db.WithContext(ctx).
		Where("camp_id = ?", campID).
		Order("created_at ASC").
		Find(&regs).Error
	return regs, err
}

func (r *Repository) DeleteRegistration(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&Registration{}, id).Error
}

func (r *Repository) RegisteredCount(ctx context.Context, campID int64) (int, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&Registration{}).
		Where("camp_id = ?", campID).
		Select("COALESCE(SUM(size), 0)").
		Scan(&total).Error
	return int(total), err
}

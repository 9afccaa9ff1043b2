package order

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

// Repository handles order data access
type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Create(ctx context.Context, o *Order) error {
	if o.Status == "" {
		o.Status = StatusPending
	}
	return r.db.WithContext(ctx).Create(o).Error
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*Order, error) {
	var o Order
	tx := r.db.WithContext(ctx).First(&o, id)
	if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &o, nil
}

func (r *Repository) List(ctx context.Context, f ListFilter) ([]Order, int64, error) {
	q := r.db.WithContext(ctx).Model(&Order{})

	if f.Status != nil {
		q = q.Where("status = ?", *f.Status)
	}
	if f.OrganizationID != nil {
		q = q.Where("organization_id = ?", *f.OrganizationID)
	}
	if f.AssignedTo != nil {
		q = q.Where(
			"assigned_designer_id = ? OR assigned_sales_rep_id = ? OR assigned_manufacturer_id = ?",
			*f.AssignedTo, *f.AssignedTo, *f.AssignedTo,
		)
	}
	if f.Search != "" {
		like := "%" + f.Search + "%"
		q = q.Where("customer_name LIKE ? OR customer_email LIKE ? OR reference LIKE ?", like, like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var orders []Order
	err := q.Order("created_at DESC").Limit(f.Limit).Offset(f.Offset).Find(&orders).Error
	return orders, total, err
}

func (r *Repository) Update(ctx context.Context, o *Order) error {
	return r.db.WithContext(ctx).Save(o).Error
}

func (r *Repository) UpdateStatus(ctx context.Context, id int64, status Status) error {
	return r.db.WithContext(ctx).Model(&Order{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     status,
			"updated_at": time.Now(),
		}).Error
}

func (r *Repository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&Order{}, id).Error
}

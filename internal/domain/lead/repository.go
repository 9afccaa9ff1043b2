package lead

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

// Repository handles lead data access
type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Create(ctx context.Context, l *Lead) error {
	if l.Status == "" {
		l.Status = StatusNew
	}
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*Lead, error) {
	var l Lead
	tx := r.db.WithContext(ctx).First(&l, id)
	if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &l, nil
}

func (r *Repository) List(ctx context.Context, f ListFilter) ([]Lead, int64, error) {
	q := r.db.WithContext(ctx).Model(&Lead{})

	if f.Status != nil {
		q = q.Where("status = ?", *f.Status)
	}
	if f.SalesRepID != nil {
		q = q.Where("sales_rep_id = ?", *f.SalesRepID)
	}
	if f.Unclaimed {
		q = q.Where("sales_rep_id IS NULL AND status = ?", StatusNew)
	}
	if f.Search != "" {
		like := "%" + f.Search + "%"
		q = q.Where("name LIKE ? OR email LIKE ?", like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var leads []Lead
	err := q.Order("created_at DESC").Limit(f.Limit).Offset(f.Offset).Find(&leads).Error
	return leads, total, err
}

func (r *Repository) Update(ctx context.Context, l *Lead) error {
	return r.db.WithContext(ctx).Save(l).Error
}

func (r *Repository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&Lead{}, id).Error
}

// Claim performs the single compare-and-set that arbitrates the claim race.
// Exactly one concurrent caller can match the guard; everyone else sees
// RowsAffected == 0.
func (r *Repository) Claim(ctx context.Context, id, repID int64, at time.Time) (bool, error) {
	tx := r.db.WithContext(ctx).Model(&Lead{}).
		Where("id = ? AND sales_rep_id IS NULL AND status = ?", id, StatusNew).
		Updates(map[string]interface{}{
			"sales_rep_id": repID,
			"claimed_at":   at,
			"updated_at":   at,
		})
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}

// MarkConverted closes the lead, guarded against terminal states so a second
// conversion attempt never wins.
func (r *Repository) MarkConverted(ctx context.Context, id int64, at time.Time) (bool, error) {
	tx := r.db.WithContext(ctx).Model(&Lead{}).
		Where("id = ? AND status NOT IN ?", id, []Status{StatusClosed, StatusLost}).
		Updates(map[string]interface{}{
			"status":       StatusClosed,
			"converted_at": at,
			"updated_at":   at,
		})
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}

func (r *Repository) SetConvertedOrder(ctx context.Context, id, orderID int64) error {
	return r.db.WithContext(ctx).Model(&Lead{}).
		Where("id = ?", id).
		Update("converted_order_id", orderID).Error
}

func (r *Repository) UpdateStatus(ctx context.Context, id int64, status Status, notes string) error {
	updates := map[string]interface{}{
		"status":     status,
		"updated_at": time.Now(),
	}
	if notes != "" {
		updates["notes"] = notes
	}
	return r.db.WithContext(ctx).Model(&Lead{}).Where("id = ?", id).Updates(updates).Error
}

func (r *Repository) CountByStatus(ctx context.Context) (map[Status]int64, error) {
	type row struct {
		Status Status
		Count  int64
	}
	var rows []row
	err := r.db.WithContext(ctx).Model(&Lead{}).
		Select("status, COUNT(*) as count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[Status]int64, len(rows))
	for _, rw := range rows {
		counts[rw.Status] = rw.Count
	}
	return counts, nil
}

func (r *Repository) StaleClaims(ctx context.Context, before time.Time) ([]Lead, error) {
	var leads []Lead
	err := r.db.WithContext(ctx).
		Where("sales_rep_id IS NOT NULL AND status = ? AND claimed_at < ?", StatusNew, before).
		Find(&leads).Error
	return leads, err
}

package sqlite

import (
	"context"

	"gorm.io/gorm"

	"github.com/rkalra/billdesk/internal/domain"
)

type CustomerRepo struct{ db *gorm.DB }

func NewCustomerRepo(db *gorm.DB) *CustomerRepo { return &CustomerRepo{db: db} }

func (r *CustomerRepo) List(ctx context.Context) ([]domain.Customer, error) {
	list := []domain.Customer{}
	if err := r.db.WithContext(ctx).Order("name asc").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

// Save upserts keyed on id presence. The update path touches only the
// mutable fields and is a silent no-op when no row matches, same as the
// UPDATE it replaces.
func (r *CustomerRepo) Save(ctx context.Context, c *domain.Customer) error {
	if c.ID != 0 {
		return r.db.WithContext(ctx).Model(&domain.Customer{}).Where("id = ?", c.ID).
			Updates(map[string]any{
				"name":    c.Name,
				"email":   c.Email,
				"phone":   c.Phone,
				"address": c.Address,
				"gstin":   c.GSTIN,
			}).Error
	}
	return r.db.WithContext(ctx).Create(c).Error
}

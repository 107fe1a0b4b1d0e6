package sqlite

import (
	"context"

	"gorm.io/gorm"

	"github.com/rkalra/billdesk/internal/domain"
)

type ProductRepo struct{ db *gorm.DB }

func NewProductRepo(db *gorm.DB) *ProductRepo { return &ProductRepo{db: db} }

func (r *ProductRepo) List(ctx context.Context) ([]domain.Product, error) {
	list := []domain.Product{}
	if err := r.db.WithContext(ctx).Order("name asc").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *ProductRepo) Save(ctx context.Context, p *domain.Product) error {
	if p.ID != 0 {
		return r.db.WithContext(ctx).Model(&domain.Product{}).Where("id = ?", p.ID).
			Updates(map[string]any{
				"name":           p.Name,
				"description":    p.Description,
				"price":          p.Price,
				"tax_rate":       p.TaxRate,
				"stock_quantity": p.StockQuantity,
			}).Error
	}
	return r.db.WithContext(ctx).Create(p).Error
}

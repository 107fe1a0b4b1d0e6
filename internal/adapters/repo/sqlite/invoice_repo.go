package sqlite

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/rkalra/billdesk/internal/domain"
)

type InvoiceRepo struct{ db *gorm.DB }

func NewInvoiceRepo(db *gorm.DB) *InvoiceRepo { return &InvoiceRepo{db: db} }

// Save inserts the header with the caller-supplied totals, then the items.
// The two inserts are deliberately not wrapped in a transaction: a failure
// while writing items leaves the header behind, which is the documented
// behavior of this store, not something to paper over here.
func (r *InvoiceRepo) Save(ctx context.Context, number string, d *domain.InvoiceDraft) (*domain.InvoiceRef, error) {
	inv := domain.Invoice{
		InvoiceNumber: number,
		CustomerID:    d.CustomerID,
		InvoiceDate:   d.InvoiceDate,
		DueDate:       d.DueDate,
		Subtotal:      d.Subtotal,
		TotalTax:      d.TotalTax,
		TotalDiscount: d.TotalDiscount,
		GrandTotal:    d.GrandTotal,
		Status:        domain.InvoiceStatusPending,
		Notes:         d.Notes,
	}
	if err := r.db.WithContext(ctx).Create(&inv).Error; err != nil {
		return nil, err
	}
	if err := r.SaveItems(ctx, inv.ID, d.Items); err != nil {
		return nil, err
	}
	return &domain.InvoiceRef{ID: inv.ID, InvoiceNumber: inv.InvoiceNumber}, nil
}

func (r *InvoiceRepo) SaveItems(ctx context.Context, invoiceID int64, items []domain.InvoiceItem) error {
	if len(items) == 0 {
		return nil
	}
	rows := make([]domain.InvoiceItem, len(items))
	for i, it := range items {
		it.ID = 0
		it.InvoiceID = invoiceID
		if it.ProductName == "" {
			it.ProductName = "Unknown Product"
		}
		if it.Quantity == 0 {
			it.Quantity = 1
		}
		rows[i] = it
	}
	return r.db.WithContext(ctx).Create(&rows).Error
}

func (r *InvoiceRepo) List(ctx context.Context) ([]domain.InvoiceSummary, error) {
	list := []domain.InvoiceSummary{}
	err := r.db.WithContext(ctx).
		Table("invoices").
		Select("invoices.*, customers.name AS customer_name").
		Joins("LEFT JOIN customers ON invoices.customer_id = customers.id").
		Order("invoices.created_at DESC").
		Scan(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (r *InvoiceRepo) Get(ctx context.Context, id int64) (*domain.InvoiceDetail, error) {
	var inv domain.Invoice
	if err := r.db.WithContext(ctx).First(&inv, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	detail := domain.InvoiceDetail{Invoice: inv}

	if inv.CustomerID != nil {
		var c domain.Customer
		err := r.db.WithContext(ctx).First(&c, "id = ?", *inv.CustomerID).Error
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		if err == nil {
			detail.Customer = c
		}
	}

	// Items carry their own product-name snapshot; the live product row is
	// intentionally not consulted here.
	items := []domain.InvoiceItem{}
	if err := r.db.WithContext(ctx).Where("invoice_id = ?", id).Order("id asc").Find(&items).Error; err != nil {
		return nil, err
	}
	detail.Items = items

	return &detail, nil
}

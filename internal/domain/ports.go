package domain

import (
	"context"
	"errors"
)

var (
	ErrNotFound   = errors.New("not found")
	ErrValidation = errors.New("validation")
)

type CustomerRepo interface {
	List(ctx context.Context) ([]Customer, error)
	Save(ctx context.Context, c *Customer) error
}

type ProductRepo interface {
	List(ctx context.Context) ([]Product, error)
	Save(ctx context.Context, p *Product) error
}

type InvoiceRepo interface {
	Save(ctx context.Context, number string, d *InvoiceDraft) (*InvoiceRef, error)
	SaveItems(ctx context.Context, invoiceID int64, items []InvoiceItem) error
	List(ctx context.Context) ([]InvoiceSummary, error)
	Get(ctx context.Context, id int64) (*InvoiceDetail, error)
}

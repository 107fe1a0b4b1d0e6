package usecase_test

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rkalra/billdesk/internal/domain"
	"github.com/rkalra/billdesk/internal/usecase"
)

type fakeInvoiceRepo struct {
	savedNumber string
	savedDraft  *domain.InvoiceDraft
	saveErr     error
	listResult  []domain.InvoiceSummary
	getResult   *domain.InvoiceDetail
	getErr      error
}

func (f *fakeInvoiceRepo) Save(_ context.Context, number string, d *domain.InvoiceDraft) (*domain.InvoiceRef, error) {
	if f.saveErr != nil {
		return nil, f.saveErr
	}
	f.savedNumber = number
	f.savedDraft = d
	return &domain.InvoiceRef{ID: 1, InvoiceNumber: number}, nil
}

func (f *fakeInvoiceRepo) SaveItems(context.Context, int64, []domain.InvoiceItem) error {
	return nil
}

func (f *fakeInvoiceRepo) List(context.Context) ([]domain.InvoiceSummary, error) {
	return f.listResult, nil
}

func (f *fakeInvoiceRepo) Get(context.Context, int64) (*domain.InvoiceDetail, error) {
	return f.getResult, f.getErr
}

func ptr(v int64) *int64 { return &v }

func TestNumberFor(t *testing.T) {
	at := time.Date(2025, 3, 14, 10, 30, 0, 0, time.UTC)

	n := usecase.NumberFor(at)
	ms := strconv.FormatInt(at.UnixMilli(), 10)
	assert.Equal(t, "INV-20250314-"+ms[len(ms)-4:], n)

	// A save one millisecond later gets a different suffix. Saves within the
	// same millisecond would collide; the unique index catches those.
	assert.NotEqual(t, n, usecase.NumberFor(at.Add(time.Millisecond)))
}

func TestInvoiceSave(t *testing.T) {
	now := time.Date(2025, 3, 14, 10, 30, 0, 0, time.UTC)

	t.Run("requires customer", func(t *testing.T) {
		uc := &usecase.InvoiceUC{Invoices: &fakeInvoiceRepo{}, Now: func() time.Time { return now }}
		_, err := uc.Save(context.Background(), &domain.InvoiceDraft{})
		require.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("requires one valid item", func(t *testing.T) {
		uc := &usecase.InvoiceUC{Invoices: &fakeInvoiceRepo{}, Now: func() time.Time { return now }}
		_, err := uc.Save(context.Background(), &domain.InvoiceDraft{
			CustomerID: ptr(1),
			Items: []domain.InvoiceItem{
				{ProductID: nil, Quantity: 2, UnitPrice: 10},
				{ProductID: ptr(1), Quantity: 0, UnitPrice: 10},
			},
		})
		require.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("drops invalid items and recomputes totals", func(t *testing.T) {
		repo := &fakeInvoiceRepo{}
		uc := &usecase.InvoiceUC{Invoices: repo, Now: func() time.Time { return now }}

		ref, err := uc.Save(context.Background(), &domain.InvoiceDraft{
			CustomerID: ptr(7),
			// Caller-supplied totals are garbage on purpose.
			GrandTotal: 99999,
			Items: []domain.InvoiceItem{
				{ProductID: ptr(1), ProductName: "Widget", Quantity: 2, UnitPrice: 100, TaxRate: 18, Discount: 10},
				{ProductID: nil, Quantity: 1, UnitPrice: 50},
			},
		})
		require.NoError(t, err)
		require.NotNil(t, ref)
		assert.Equal(t, "INV-20250314-", ref.InvoiceNumber[:13])

		require.Len(t, repo.savedDraft.Items, 1)
		assert.InDelta(t, 212.4, repo.savedDraft.Items[0].Total, 1e-9)
		assert.InDelta(t, 200, repo.savedDraft.Subtotal, 1e-9)
		assert.InDelta(t, 32.4, repo.savedDraft.TotalTax, 1e-9)
		assert.InDelta(t, 20, repo.savedDraft.TotalDiscount, 1e-9)
		assert.InDelta(t, 212.4, repo.savedDraft.GrandTotal, 1e-9)
		assert.Equal(t, "2025-03-14", repo.savedDraft.InvoiceDate)
	})

	t.Run("store error propagates raw", func(t *testing.T) {
		boom := errors.New("disk I/O error")
		uc := &usecase.InvoiceUC{Invoices: &fakeInvoiceRepo{saveErr: boom}, Now: func() time.Time { return now }}
		_, err := uc.Save(context.Background(), &domain.InvoiceDraft{
			CustomerID: ptr(1),
			Items:      []domain.InvoiceItem{{ProductID: ptr(1), Quantity: 1, UnitPrice: 5}},
		})
		require.ErrorIs(t, err, boom)
	})
}

func TestInvoiceListOverdueDisplay(t *testing.T) {
	now := time.Date(2025, 3, 14, 10, 30, 0, 0, time.UTC)
	repo := &fakeInvoiceRepo{listResult: []domain.InvoiceSummary{
		{Invoice: domain.Invoice{InvoiceNumber: "A", Status: domain.InvoiceStatusPending, DueDate: "2025-03-01"}},
		{Invoice: domain.Invoice{InvoiceNumber: "B", Status: domain.InvoiceStatusPending, DueDate: "2025-03-20"}},
		{Invoice: domain.Invoice{InvoiceNumber: "C", Status: domain.InvoiceStatusPaid, DueDate: "2025-03-01"}},
	}}
	uc := &usecase.InvoiceUC{Invoices: repo, Now: func() time.Time { return now }}

	list, err := uc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, domain.InvoiceStatusOverdue, list[0].Status)
	assert.Equal(t, domain.InvoiceStatusPending, list[1].Status)
	assert.Equal(t, domain.InvoiceStatusPaid, list[2].Status)
}

func TestCustomerSaveValidation(t *testing.T) {
	uc := &usecase.CustomerUC{Customers: &fakeCustomerRepo{}}
	err := uc.Save(context.Background(), &domain.Customer{Name: "   "})
	require.ErrorIs(t, err, domain.ErrValidation)

	err = uc.Save(context.Background(), &domain.Customer{Name: "Acme Traders"})
	require.NoError(t, err)
}

func TestProductSaveValidation(t *testing.T) {
	repo := &fakeProductRepo{}
	uc := &usecase.ProductUC{Products: repo}

	err := uc.Save(context.Background(), &domain.Product{Name: ""})
	require.ErrorIs(t, err, domain.ErrValidation)

	err = uc.Save(context.Background(), &domain.Product{Name: "Widget", Price: -1})
	require.ErrorIs(t, err, domain.ErrValidation)

	err = uc.Save(context.Background(), &domain.Product{Name: "Widget", Price: 10})
	require.NoError(t, err)
	assert.Equal(t, 18.0, repo.saved.TaxRate)
}

type fakeCustomerRepo struct{ saved *domain.Customer }

func (f *fakeCustomerRepo) List(context.Context) ([]domain.Customer, error) { return nil, nil }
func (f *fakeCustomerRepo) Save(_ context.Context, c *domain.Customer) error {
	f.saved = c
	return nil
}

type fakeProductRepo struct{ saved *domain.Product }

func (f *fakeProductRepo) List(context.Context) ([]domain.Product, error) { return nil, nil }
func (f *fakeProductRepo) Save(_ context.Context, p *domain.Product) error {
	f.saved = p
	return nil
}

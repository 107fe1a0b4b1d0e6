package usecase

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/rkalra/billdesk/internal/billing"
	"github.com/rkalra/billdesk/internal/domain"
)

type InvoiceUC struct {
	Invoices domain.InvoiceRepo

	// Now is swappable for number-generation tests.
	Now func() time.Time
}

func (uc *InvoiceUC) now() time.Time {
	if uc.Now != nil {
		return uc.Now()
	}
	return time.Now()
}

// NumberFor builds the human-readable invoice number: INV-YYYYMMDD- plus the
// last four digits of the epoch-millisecond timestamp. Two saves landing in
// the same millisecond produce the same suffix; the unique index on
// invoice_number then rejects the second insert and the error surfaces raw.
func NumberFor(t time.Time) string {
	ms := strconv.FormatInt(t.UnixMilli(), 10)
	return "INV-" + t.Format("20060102") + "-" + ms[len(ms)-4:]
}

// Save filters the draft down to valid items, recomputes the totals and
// persists header plus items. Items without a product reference or without a
// positive quantity and price are dropped rather than failing the save.
func (uc *InvoiceUC) Save(ctx context.Context, d *domain.InvoiceDraft) (*domain.InvoiceRef, error) {
	if d.CustomerID == nil || *d.CustomerID == 0 {
		return nil, fmt.Errorf("%w: customer is required", domain.ErrValidation)
	}

	valid := make([]domain.InvoiceItem, 0, len(d.Items))
	lines := make([]billing.Line, 0, len(d.Items))
	for _, it := range d.Items {
		if it.ProductID == nil || it.Quantity <= 0 || it.UnitPrice <= 0 {
			continue
		}
		line := billing.Line{
			Quantity:     float64(it.Quantity),
			UnitPrice:    it.UnitPrice,
			TaxRate:      it.TaxRate,
			DiscountRate: it.Discount,
		}
		it.Total = billing.Compute(line).Total
		valid = append(valid, it)
		lines = append(lines, line)
	}
	if len(valid) == 0 {
		return nil, fmt.Errorf("%w: at least one item with product, quantity and price is required", domain.ErrValidation)
	}

	now := uc.now()
	totals := billing.Totalize(lines)
	d.Items = valid
	d.Subtotal = totals.Subtotal
	d.TotalTax = totals.TotalTax
	d.TotalDiscount = totals.TotalDiscount
	d.GrandTotal = totals.GrandTotal
	if d.InvoiceDate == "" {
		d.InvoiceDate = now.Format("2006-01-02")
	}

	return uc.Invoices.Save(ctx, NumberFor(now), d)
}

func (uc *InvoiceUC) List(ctx context.Context) ([]domain.InvoiceSummary, error) {
	list, err := uc.Invoices.List(ctx)
	if err != nil {
		return nil, err
	}
	today := uc.now().Format("2006-01-02")
	for i := range list {
		list[i].Status = displayStatus(list[i].Invoice, today)
	}
	return list, nil
}

func (uc *InvoiceUC) Get(ctx context.Context, id int64) (*domain.InvoiceDetail, error) {
	detail, err := uc.Invoices.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	detail.Status = displayStatus(detail.Invoice, uc.now().Format("2006-01-02"))
	return detail, nil
}

// displayStatus reports a pending invoice past its due date as overdue.
// The stored row is never mutated; this is presentation only.
func displayStatus(inv domain.Invoice, today string) domain.InvoiceStatus {
	if inv.Status == domain.InvoiceStatusPending && inv.DueDate != "" && inv.DueDate < today {
		return domain.InvoiceStatusOverdue
	}
	return inv.Status
}

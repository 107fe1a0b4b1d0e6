package pdf_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rkalra/billdesk/internal/adapters/export/pdf"
	"github.com/rkalra/billdesk/internal/domain"
)

func testCompany() pdf.Company {
	return pdf.Company{
		Name:    "Test Traders",
		Address: "12 Market Road",
		City:    "Bengaluru 560001",
		Phone:   "080-1234567",
		Email:   "billing@test.example",
	}
}

func ptr(v int64) *int64 { return &v }

func TestInvoicePDF(t *testing.T) {
	r := pdf.New(testCompany())

	detail := &domain.InvoiceDetail{
		Invoice: domain.Invoice{
			InvoiceNumber: "INV-20250314-0042",
			InvoiceDate:   "2025-03-14",
			DueDate:       "2025-04-14",
			Subtotal:      200,
			TotalTax:      32.4,
			TotalDiscount: 20,
			GrandTotal:    212.4,
			Notes:         "net 30",
		},
		Customer: domain.Customer{Name: "Acme Traders", Address: "5 Station Road", GSTIN: "29ABCDE1234F1Z5"},
		Items: []domain.InvoiceItem{
			{ProductID: ptr(1), ProductName: "Widget", Quantity: 2, UnitPrice: 100, TaxRate: 18, Discount: 10, Total: 212.4},
		},
	}

	data, err := r.Invoice(detail)
	require.NoError(t, err)
	require.NotEmpty(t, data)
	assert.Equal(t, "%PDF-", string(data[:5]))
}

func TestInvoicePDFNoCustomerFields(t *testing.T) {
	r := pdf.New(testCompany())

	// Null customer reference: party block is mostly empty but the document
	// still renders.
	data, err := r.Invoice(&domain.InvoiceDetail{
		Invoice: domain.Invoice{InvoiceNumber: "INV-20250314-0001", InvoiceDate: "2025-03-14"},
	})
	require.NoError(t, err)
	assert.Equal(t, "%PDF-", string(data[:5]))
}

func TestReportPDF(t *testing.T) {
	r := pdf.New(testCompany())

	data, err := r.Report(
		[]domain.InvoiceSummary{{
			Invoice:      domain.Invoice{InvoiceNumber: "INV-20250314-0042", InvoiceDate: "2025-03-14", GrandTotal: 212.4, Status: domain.InvoiceStatusPending},
			CustomerName: "Acme Traders",
		}},
		[]domain.Customer{{Name: "Acme Traders", Email: "acme@example.com"}},
		[]domain.Product{{Name: "Widget", Price: 100, TaxRate: 18, StockQuantity: 5}},
	)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-", string(data[:5]))
}

func TestReportPDFEmptyCollections(t *testing.T) {
	r := pdf.New(testCompany())

	data, err := r.Report(nil, nil, nil)
	require.NoError(t, err)
	require.NotEmpty(t, data)
	assert.Equal(t, "%PDF-", string(data[:5]))
}

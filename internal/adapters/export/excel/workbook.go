// Package excel projects the three catalogs into a multi-sheet xlsx
// workbook. The transform is stateless; it never touches the store.
package excel

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/rkalra/billdesk/internal/billing"
	"github.com/rkalra/billdesk/internal/domain"
)

const (
	sheetInvoices  = "Invoices"
	sheetCustomers = "Customers"
	sheetProducts  = "Products"
)

// Workbook writes one sheet per entity with human-readable headers. Empty
// collections still yield an openable workbook with the header rows.
func Workbook(invoices []domain.InvoiceSummary, customers []domain.Customer, products []domain.Product) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetInvoices); err != nil {
		return nil, err
	}
	if _, err := f.NewSheet(sheetCustomers); err != nil {
		return nil, err
	}
	if _, err := f.NewSheet(sheetProducts); err != nil {
		return nil, err
	}

	if err := writeRow(f, sheetInvoices, 1, []any{
		"Invoice Number", "Customer", "Date", "Due Date",
		"Subtotal", "Tax", "Discount", "Grand Total", "Status",
	}); err != nil {
		return nil, err
	}
	for i, inv := range invoices {
		err := writeRow(f, sheetInvoices, i+2, []any{
			inv.InvoiceNumber, inv.CustomerName, inv.InvoiceDate, inv.DueDate,
			billing.Round2(inv.Subtotal), billing.Round2(inv.TotalTax),
			billing.Round2(inv.TotalDiscount), billing.Round2(inv.GrandTotal),
			string(inv.Status),
		})
		if err != nil {
			return nil, err
		}
	}

	if err := writeRow(f, sheetCustomers, 1, []any{
		"Name", "Email", "Phone", "Address", "GSTIN",
	}); err != nil {
		return nil, err
	}
	for i, c := range customers {
		err := writeRow(f, sheetCustomers, i+2, []any{
			c.Name, c.Email, c.Phone, c.Address, c.GSTIN,
		})
		if err != nil {
			return nil, err
		}
	}

	if err := writeRow(f, sheetProducts, 1, []any{
		"Name", "Description", "Price", "Tax Rate", "Stock",
	}); err != nil {
		return nil, err
	}
	for i, p := range products {
		err := writeRow(f, sheetProducts, i+2, []any{
			p.Name, p.Description, billing.Round2(p.Price), p.TaxRate, p.StockQuantity,
		})
		if err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeRow(f *excelize.File, sheet string, row int, values []any) error {
	return f.SetSheetRow(sheet, fmt.Sprintf("A%d", row), &values)
}

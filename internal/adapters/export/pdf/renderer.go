// Package pdf renders invoices and catalog reports into PDF byte buffers.
// Both renderers are pure with respect to their input snapshot.
package pdf

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/rkalra/billdesk/internal/billing"
	"github.com/rkalra/billdesk/internal/domain"
)

// Company is the seller identity printed in the document header.
type Company struct {
	Name    string
	Address string
	City    string
	Phone   string
	Email   string
}

type Renderer struct {
	company Company
}

func New(c Company) *Renderer { return &Renderer{company: c} }

func money(v float64) string {
	return fmt.Sprintf("Rs. %.2f", billing.Round2(v))
}

// Invoice lays out a single invoice on one A4 page: header, company block,
// invoice info, bill-to, item table, summary, notes. There is no overflow
// pagination; a very long item list runs off the page, same as the layout
// this replaces.
func (r *Renderer) Invoice(d *domain.InvoiceDetail) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 20)
	pdf.SetXY(0, 12)
	pdf.CellFormat(210, 10, "INVOICE", "", 0, "C", false, 0, "")

	pdf.SetFont("Arial", "", 10)
	pdf.Text(20, 40, r.company.Name)
	pdf.Text(20, 47, r.company.Address)
	pdf.Text(20, 54, r.company.City)
	pdf.Text(20, 61, "Phone: "+r.company.Phone)
	pdf.Text(20, 68, "Email: "+r.company.Email)

	pdf.Text(150, 40, "Invoice #: "+d.InvoiceNumber)
	pdf.Text(150, 47, "Date: "+d.InvoiceDate)
	pdf.Text(150, 54, "Due Date: "+d.DueDate)

	pdf.Text(20, 90, "Bill To:")
	pdf.Text(20, 97, d.Customer.Name)
	if d.Customer.Address != "" {
		pdf.Text(20, 104, d.Customer.Address)
	}
	if d.Customer.GSTIN != "" {
		pdf.Text(20, 111, "GSTIN: "+d.Customer.GSTIN)
	}

	y := 140.0
	pdf.SetFillColor(200, 200, 200)
	pdf.Rect(20, y, 170, 10, "F")
	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Arial", "", 8)

	pdf.Text(22, y+7, "Item")
	pdf.Text(80, y+7, "Qty")
	pdf.Text(100, y+7, "Price")
	pdf.Text(120, y+7, "Tax %")
	pdf.Text(140, y+7, "Discount %")
	pdf.Text(160, y+7, "Total")
	y += 10

	for _, it := range d.Items {
		name := it.ProductName
		if name == "" {
			name = "Product"
		}
		pdf.Text(22, y+7, name)
		pdf.Text(80, y+7, fmt.Sprintf("%d", it.Quantity))
		pdf.Text(100, y+7, money(it.UnitPrice))
		pdf.Text(120, y+7, fmt.Sprintf("%g%%", it.TaxRate))
		pdf.Text(140, y+7, fmt.Sprintf("%g%%", it.Discount))
		pdf.Text(160, y+7, money(it.Total))
		y += 10
	}

	y += 20
	pdf.Text(130, y, "Subtotal: "+money(d.Subtotal))
	pdf.Text(130, y+7, "Tax: "+money(d.TotalTax))
	pdf.Text(130, y+14, "Discount: "+money(d.TotalDiscount))
	pdf.SetFont("Arial", "B", 12)
	pdf.Text(130, y+25, "Grand Total: "+money(d.GrandTotal))

	if d.Notes != "" {
		pdf.SetFont("Arial", "", 10)
		pdf.Text(20, y+40, "Notes:")
		pdf.Text(20, y+47, d.Notes)
	}

	return output(pdf)
}

// Report renders one summary table per collection. Empty collections still
// produce a valid document with the section headers.
func (r *Renderer) Report(invoices []domain.InvoiceSummary, customers []domain.Customer, products []domain.Product) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.SetXY(0, 12)
	pdf.CellFormat(210, 10, r.company.Name+" - Report", "", 1, "C", false, 0, "")
	pdf.Ln(4)

	section := func(title string, header []string, widths []float64, rows [][]string) {
		pdf.SetFont("Arial", "B", 12)
		pdf.CellFormat(0, 8, title, "", 1, "L", false, 0, "")
		pdf.SetFont("Arial", "B", 8)
		pdf.SetFillColor(200, 200, 200)
		for i, h := range header {
			pdf.CellFormat(widths[i], 7, h, "1", 0, "L", true, 0, "")
		}
		pdf.Ln(-1)
		pdf.SetFont("Arial", "", 8)
		for _, row := range rows {
			for i, cell := range row {
				pdf.CellFormat(widths[i], 6, cell, "1", 0, "L", false, 0, "")
			}
			pdf.Ln(-1)
		}
		pdf.Ln(5)
	}

	invRows := make([][]string, 0, len(invoices))
	for _, inv := range invoices {
		invRows = append(invRows, []string{
			inv.InvoiceNumber, inv.CustomerName, inv.InvoiceDate,
			money(inv.GrandTotal), string(inv.Status),
		})
	}
	section("Invoices",
		[]string{"Invoice Number", "Customer", "Date", "Grand Total", "Status"},
		[]float64{40, 50, 30, 35, 25}, invRows)

	custRows := make([][]string, 0, len(customers))
	for _, c := range customers {
		custRows = append(custRows, []string{c.Name, c.Email, c.Phone, c.GSTIN})
	}
	section("Customers",
		[]string{"Name", "Email", "Phone", "GSTIN"},
		[]float64{50, 55, 35, 40}, custRows)

	prodRows := make([][]string, 0, len(products))
	for _, p := range products {
		prodRows = append(prodRows, []string{
			p.Name, money(p.Price), fmt.Sprintf("%g%%", p.TaxRate), fmt.Sprintf("%d", p.StockQuantity),
		})
	}
	section("Products",
		[]string{"Name", "Price", "Tax Rate", "Stock"},
		[]float64{70, 40, 35, 35}, prodRows)

	return output(pdf)
}

func output(pdf *gofpdf.Fpdf) ([]byte, error) {
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

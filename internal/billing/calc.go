// Package billing holds the invoice arithmetic. Everything here is pure:
// amounts accumulate in full float64 precision and are rounded to two
// decimals only when rendered.
package billing

import "math"

type Line struct {
	Quantity     float64
	UnitPrice    float64
	TaxRate      float64
	DiscountRate float64
}

type LineTotals struct {
	Subtotal       float64
	DiscountAmount float64
	TaxableAmount  float64
	TaxAmount      float64
	Total          float64
}

type InvoiceTotals struct {
	Subtotal      float64
	TotalDiscount float64
	TotalTax      float64
	GrandTotal    float64
}

// Compute derives the amounts for a single line. Negative quantity or price
// is clamped to zero, matching how the entry form treats unparseable input.
func Compute(l Line) LineTotals {
	qty := l.Quantity
	if qty < 0 {
		qty = 0
	}
	price := l.UnitPrice
	if price < 0 {
		price = 0
	}

	sub := qty * price
	discount := sub * (l.DiscountRate / 100)
	taxable := sub - discount
	tax := taxable * (l.TaxRate / 100)

	return LineTotals{
		Subtotal:       sub,
		DiscountAmount: discount,
		TaxableAmount:  taxable,
		TaxAmount:      tax,
		Total:          taxable + tax,
	}
}

// Totalize aggregates lines into invoice totals:
// grand_total = subtotal + total_tax - total_discount.
func Totalize(lines []Line) InvoiceTotals {
	var t InvoiceTotals
	for _, l := range lines {
		lt := Compute(l)
		t.Subtotal += lt.Subtotal
		t.TotalDiscount += lt.DiscountAmount
		t.TotalTax += lt.TaxAmount
	}
	t.GrandTotal = t.Subtotal + t.TotalTax - t.TotalDiscount
	return t
}

// Round2 rounds to two decimal places for display and export.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

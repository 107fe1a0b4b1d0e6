package domain

import "time"

type InvoiceStatus string

const (
	InvoiceStatusPending InvoiceStatus = "pending"
	InvoiceStatusPaid    InvoiceStatus = "paid"
	InvoiceStatusOverdue InvoiceStatus = "overdue"
)

type Invoice struct {
	ID            int64         `gorm:"primaryKey;autoIncrement" json:"id"`
	InvoiceNumber string        `gorm:"size:40;uniqueIndex;not null" json:"invoice_number"`
	CustomerID    *int64        `gorm:"index" json:"customer_id"`
	InvoiceDate   string        `gorm:"size:10;not null" json:"invoice_date"`
	DueDate       string        `gorm:"size:10" json:"due_date"`
	Subtotal      float64       `gorm:"type:decimal(10,2);not null;default:0" json:"subtotal"`
	TotalTax      float64       `gorm:"type:decimal(10,2);not null;default:0" json:"total_tax"`
	TotalDiscount float64       `gorm:"type:decimal(10,2);not null;default:0" json:"total_discount"`
	GrandTotal    float64       `gorm:"type:decimal(10,2);not null;default:0" json:"grand_total"`
	Status        InvoiceStatus `gorm:"size:20;default:pending" json:"status"`
	Notes         string        `gorm:"type:text" json:"notes"`
	CreatedAt     time.Time     `json:"created_at"`
}

// InvoiceItem keeps ProductName as a snapshot taken at save time so a later
// product rename never rewrites billing history. ProductID is a weak
// reference and may dangle.
type InvoiceItem struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	InvoiceID   int64     `gorm:"index;not null" json:"invoice_id"`
	ProductID   *int64    `gorm:"index" json:"product_id"`
	ProductName string    `gorm:"size:180;not null" json:"product_name"`
	Quantity    int       `gorm:"not null;default:1" json:"quantity"`
	UnitPrice   float64   `gorm:"type:decimal(10,2);not null;default:0" json:"unit_price"`
	TaxRate     float64   `gorm:"type:decimal(5,2);not null;default:0" json:"tax_rate"`
	Discount    float64   `gorm:"type:decimal(5,2);default:0" json:"discount"`
	Total       float64   `gorm:"type:decimal(10,2);not null;default:0" json:"total"`
	CreatedAt   time.Time `json:"created_at"`
}

// InvoiceDraft is the save input. Totals come from the caller; the store
// persists them as given.
type InvoiceDraft struct {
	CustomerID    *int64        `json:"customer_id"`
	InvoiceDate   string        `json:"invoice_date"`
	DueDate       string        `json:"due_date"`
	Subtotal      float64       `json:"subtotal"`
	TotalTax      float64       `json:"total_tax"`
	TotalDiscount float64       `json:"total_discount"`
	GrandTotal    float64       `json:"grand_total"`
	Notes         string        `json:"notes"`
	Items         []InvoiceItem `json:"items"`
}

// InvoiceRef identifies a freshly saved invoice.
type InvoiceRef struct {
	ID            int64  `json:"id"`
	InvoiceNumber string `json:"invoice_number"`
}

// InvoiceSummary is the list row: invoice joined with its customer name.
type InvoiceSummary struct {
	Invoice
	CustomerName string `json:"customer_name"`
}

// InvoiceDetail is the full read: invoice, its customer (zero-valued when the
// reference is null) and its items.
type InvoiceDetail struct {
	Invoice
	Customer Customer      `json:"customer"`
	Items    []InvoiceItem `json:"items"`
}

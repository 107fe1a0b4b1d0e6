package app

import (
	"net/http"

	"gorm.io/gorm"

	"github.com/rkalra/billdesk/internal/adapters/export/pdf"
	"github.com/rkalra/billdesk/internal/adapters/httpserver"
	"github.com/rkalra/billdesk/internal/adapters/repo/sqlite"
	"github.com/rkalra/billdesk/internal/catalog"
	"github.com/rkalra/billdesk/internal/config"
	"github.com/rkalra/billdesk/internal/domain"
	"github.com/rkalra/billdesk/internal/usecase"
)

type App struct {
	DB         *gorm.DB
	CustomerUC *usecase.CustomerUC
	ProductUC  *usecase.ProductUC
	InvoiceUC  *usecase.InvoiceUC
	Cache      *catalog.Cache
	PDF        *pdf.Renderer
}

func New(db *gorm.DB, cfg *config.Config) *App {
	custRepo := sqlite.NewCustomerRepo(db)
	prodRepo := sqlite.NewProductRepo(db)
	invRepo := sqlite.NewInvoiceRepo(db)

	customerUC := &usecase.CustomerUC{Customers: custRepo}
	productUC := &usecase.ProductUC{Products: prodRepo}
	invoiceUC := &usecase.InvoiceUC{Invoices: invRepo}

	return &App{
		DB:         db,
		CustomerUC: customerUC,
		ProductUC:  productUC,
		InvoiceUC:  invoiceUC,
		Cache:      catalog.New(customerUC, productUC, invoiceUC),
		PDF: pdf.New(pdf.Company{
			Name:    cfg.Company.Name,
			Address: cfg.Company.Address,
			City:    cfg.Company.City,
			Phone:   cfg.Company.Phone,
			Email:   cfg.Company.Email,
		}),
	}
}

// Migrate creates the four tables if absent. There is no versioned migration
// mechanism; AutoMigrate is idempotent.
func (a *App) Migrate() error {
	return a.DB.AutoMigrate(
		&domain.Customer{}, &domain.Product{}, &domain.Invoice{}, &domain.InvoiceItem{},
	)
}

func (a *App) HTTPHandler() http.Handler {
	return httpserver.New(a.CustomerUC, a.ProductUC, a.InvoiceUC, a.Cache, a.PDF)
}

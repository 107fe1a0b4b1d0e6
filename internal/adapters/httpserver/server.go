package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/rkalra/billdesk/internal/adapters/export/excel"
	"github.com/rkalra/billdesk/internal/adapters/export/pdf"
	"github.com/rkalra/billdesk/internal/billing"
	"github.com/rkalra/billdesk/internal/catalog"
	"github.com/rkalra/billdesk/internal/domain"
	"github.com/rkalra/billdesk/internal/usecase"
)

type Server struct {
	mux       *http.ServeMux
	customers *usecase.CustomerUC
	products  *usecase.ProductUC
	invoices  *usecase.InvoiceUC
	cache     *catalog.Cache
	pdf       *pdf.Renderer
}

func New(c *usecase.CustomerUC, p *usecase.ProductUC, i *usecase.InvoiceUC, cache *catalog.Cache, renderer *pdf.Renderer) http.Handler {
	s := &Server{
		mux:       http.NewServeMux(),
		customers: c,
		products:  p,
		invoices:  i,
		cache:     cache,
		pdf:       renderer,
	}
	s.routes()
	return Chain(s.mux,
		RequestID,
		Recovery,
		Logging,
	)
}

func (s *Server) routes() {
	s.mux.HandleFunc("/api/customers", s.apiCustomers)
	s.mux.HandleFunc("/api/products", s.apiProducts)
	s.mux.HandleFunc("/api/invoices", s.apiInvoices)
	s.mux.HandleFunc("/api/invoices/", s.apiInvoiceByID)
	s.mux.HandleFunc("/api/export/pdf", s.apiExportPDF)
	s.mux.HandleFunc("/api/export/excel", s.apiExportExcel)
	s.mux.HandleFunc("/api/dashboard", s.apiDashboard)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeErr maps the error taxonomy onto status codes. Store errors surface
// with their raw text; there are no structured error codes.
func writeErr(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, domain.ErrNotFound):
		http.Error(w, "invoice not found", http.StatusNotFound)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (s *Server) apiCustomers(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		list, err := s.customers.List(r.Context())
		if err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, 200, list)
	case http.MethodPost:
		var c domain.Customer
		if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
			http.Error(w, "json", 400)
			return
		}
		if err := s.customers.Save(r.Context(), &c); err != nil {
			writeErr(w, err)
			return
		}
		_ = s.cache.Refresh(r.Context())
		writeJSON(w, 200, c)
	default:
		http.Error(w, "method", 405)
	}
}

func (s *Server) apiProducts(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		list, err := s.products.List(r.Context())
		if err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, 200, list)
	case http.MethodPost:
		var p domain.Product
		if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
			http.Error(w, "json", 400)
			return
		}
		if err := s.products.Save(r.Context(), &p); err != nil {
			writeErr(w, err)
			return
		}
		_ = s.cache.Refresh(r.Context())
		writeJSON(w, 200, p)
	default:
		http.Error(w, "method", 405)
	}
}

func (s *Server) apiInvoices(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		list, err := s.invoices.List(r.Context())
		if err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, 200, list)
	case http.MethodPost:
		var d domain.InvoiceDraft
		if err := json.NewDecoder(r.Body).Decode(&d); err != nil {
			http.Error(w, "json", 400)
			return
		}
		ref, err := s.invoices.Save(r.Context(), &d)
		if err != nil {
			writeErr(w, err)
			return
		}
		_ = s.cache.Refresh(r.Context())
		writeJSON(w, 201, ref)
	default:
		http.Error(w, "method", 405)
	}
}

// apiInvoiceByID serves /api/invoices/{id} and /api/invoices/{id}/pdf.
func (s *Server) apiInvoiceByID(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method", 405)
		return
	}
	rest := strings.TrimPrefix(r.URL.Path, "/api/invoices/")
	wantPDF := false
	if strings.HasSuffix(rest, "/pdf") {
		wantPDF = true
		rest = strings.TrimSuffix(rest, "/pdf")
	}
	id, err := strconv.ParseInt(rest, 10, 64)
	if err != nil || id <= 0 {
		http.Error(w, "id", 400)
		return
	}

	detail, err := s.invoices.Get(r.Context(), id)
	if err != nil {
		writeErr(w, err)
		return
	}

	if !wantPDF {
		writeJSON(w, 200, detail)
		return
	}

	data, err := s.pdf.Invoice(detail)
	if err != nil {
		writeErr(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="`+detail.InvoiceNumber+`.pdf"`)
	_, _ = w.Write(data)
}

func (s *Server) apiExportPDF(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method", 405)
		return
	}
	invoices, customers, products, err := s.cache.Snapshot(r.Context())
	if err != nil {
		writeErr(w, err)
		return
	}
	data, err := s.pdf.Report(invoices, customers, products)
	if err != nil {
		writeErr(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="report.pdf"`)
	_, _ = w.Write(data)
}

func (s *Server) apiExportExcel(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method", 405)
		return
	}
	invoices, customers, products, err := s.cache.Snapshot(r.Context())
	if err != nil {
		writeErr(w, err)
		return
	}
	data, err := excel.Workbook(invoices, customers, products)
	if err != nil {
		writeErr(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="report.xlsx"`)
	_, _ = w.Write(data)
}

func (s *Server) apiDashboard(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method", 405)
		return
	}
	invoices, customers, products, err := s.cache.Snapshot(r.Context())
	if err != nil {
		writeErr(w, err)
		return
	}
	var revenue float64
	for _, inv := range invoices {
		revenue += inv.GrandTotal
	}
	writeJSON(w, 200, map[string]any{
		"invoice_count":  len(invoices),
		"customer_count": len(customers),
		"product_count":  len(products),
		"total_revenue":  billing.Round2(revenue),
	})
}

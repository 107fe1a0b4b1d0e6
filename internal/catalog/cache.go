// Package catalog holds the client-side snapshot of the three collections.
// The old UI kept these in ambient globals reloaded after every mutation;
// here the same contract is explicit: Refresh reloads wholesale, accessors
// hand out copies of the last snapshot.
package catalog

import (
	"context"
	"sync"

	"github.com/rkalra/billdesk/internal/domain"
	"github.com/rkalra/billdesk/internal/usecase"
)

type Cache struct {
	customers *usecase.CustomerUC
	products  *usecase.ProductUC
	invoices  *usecase.InvoiceUC

	mu    sync.RWMutex
	snap  snapshot
	ready bool
}

type snapshot struct {
	customers []domain.Customer
	products  []domain.Product
	invoices  []domain.InvoiceSummary
}

func New(c *usecase.CustomerUC, p *usecase.ProductUC, i *usecase.InvoiceUC) *Cache {
	return &Cache{customers: c, products: p, invoices: i}
}

// Refresh reloads all three collections. Any error leaves the previous
// snapshot in place.
func (c *Cache) Refresh(ctx context.Context) error {
	customers, err := c.customers.List(ctx)
	if err != nil {
		return err
	}
	products, err := c.products.List(ctx)
	if err != nil {
		return err
	}
	invoices, err := c.invoices.List(ctx)
	if err != nil {
		return err
	}

	c.mu.Lock()
	c.snap = snapshot{customers: customers, products: products, invoices: invoices}
	c.ready = true
	c.mu.Unlock()
	return nil
}

// Snapshot returns the cached collections, refreshing first if the cache has
// never been filled.
func (c *Cache) Snapshot(ctx context.Context) ([]domain.InvoiceSummary, []domain.Customer, []domain.Product, error) {
	c.mu.RLock()
	ready := c.ready
	c.mu.RUnlock()
	if !ready {
		if err := c.Refresh(ctx); err != nil {
			return nil, nil, nil, err
		}
	}

	c.mu.RLock()
	defer c.mu.RUnlock()
	invoices := make([]domain.InvoiceSummary, len(c.snap.invoices))
	copy(invoices, c.snap.invoices)
	customers := make([]domain.Customer, len(c.snap.customers))
	copy(customers, c.snap.customers)
	products := make([]domain.Product, len(c.snap.products))
	copy(products, c.snap.products)
	return invoices, customers, products, nil
}

package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/rkalra/billdesk/internal/domain"
)

type CustomerUC struct {
	Customers domain.CustomerRepo
}

func (uc *CustomerUC) List(ctx context.Context) ([]domain.Customer, error) {
	return uc.Customers.List(ctx)
}

func (uc *CustomerUC) Save(ctx context.Context, c *domain.Customer) error {
	if strings.TrimSpace(c.Name) == "" {
		return fmt.Errorf("%w: customer name is required", domain.ErrValidation)
	}
	return uc.Customers.Save(ctx, c)
}

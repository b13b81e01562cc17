package sale

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=sale
type Repository interface {
	ListSales(ctx context.Context, filter ListFilter) ([]*Sale, error)
	GetSale(ctx context.Context, id uuid.UUID) (*Sale, error)
	// CreateSale inserts the sale and its items in one transaction.
	CreateSale(ctx context.Context, s *Sale) error
	// UpdateStatus moves the sale from one status to another. It returns
	// ErrInvalidStatus when the sale is not in from.
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to Status) error
}

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

type ListFilter struct {
	CustomerID *uuid.UUID
	StartDate  *time.Time
	EndDate    *time.Time
}

type ItemParams struct {
	RecipeID  uuid.UUID
	Quantity  decimal.Decimal
	UnitPrice decimal.Decimal
	// TotalPrice defaults to Quantity * UnitPrice when nil.
	TotalPrice *decimal.Decimal
}

type CreateParams struct {
	CustomerID *uuid.UUID
	// SaleDate defaults to today.
	SaleDate time.Time
	Notes    string
	Items    []ItemParams
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]*Sale, error) {
	return s.repo.ListSales(ctx, filter)
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Sale, error) {
	return s.repo.GetSale(ctx, id)
}

// Create records a completed sale whose total is the sum of its items.
func (s *Service) Create(ctx context.Context, params CreateParams) (*Sale, error) {
	if len(params.Items) == 0 {
		return nil, ErrNoItems
	}

	sale := &Sale{
		CustomerID:  params.CustomerID,
		SaleDate:    params.SaleDate,
		Status:      StatusCompleted,
		Notes:       params.Notes,
		TotalAmount: decimal.Zero,
	}
	if sale.SaleDate.IsZero() {
		sale.SaleDate = s.now()
	}

	for _, ip := range params.Items {
		if !ip.Quantity.IsPositive() || ip.UnitPrice.IsNegative() {
			return nil, ErrInvalidItem
		}

		total := ip.Quantity.Mul(ip.UnitPrice)
		if ip.TotalPrice != nil {
			total = *ip.TotalPrice
		}

		sale.Items = append(sale.Items, &Item{
			RecipeID:   ip.RecipeID,
			Quantity:   ip.Quantity,
			UnitPrice:  ip.UnitPrice,
			TotalPrice: total,
		})
		sale.TotalAmount = sale.TotalAmount.Add(total)
	}

	if err := s.repo.CreateSale(ctx, sale); err != nil {
		return nil, err
	}

	return sale, nil
}

func (s *Service) Cancel(ctx context.Context, id uuid.UUID) error {
	return s.repo.UpdateStatus(ctx, id, StatusCompleted, StatusCancelled)
}

package exchange

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=exchange
type Repository interface {
	ListExchanges(ctx context.Context) ([]*Exchange, error)
	// CreateExchange inserts the exchange and its items in one transaction.
	CreateExchange(ctx context.Context, e *Exchange) error
	// UpdateStatus returns ErrInvalidStatus when the exchange is not in from.
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to Status) error
}

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

type ItemParams struct {
	RecipeID uuid.UUID
	Quantity decimal.Decimal
	Reason   string
}

type CreateParams struct {
	CustomerID     *uuid.UUID
	OriginalSaleID *uuid.UUID
	// ExchangeDate defaults to today.
	ExchangeDate time.Time
	Reason       string
	Notes        string
	TotalRefund  decimal.Decimal
	Items        []ItemParams
}

func (s *Service) List(ctx context.Context) ([]*Exchange, error) {
	return s.repo.ListExchanges(ctx)
}

// Create registers a pending exchange. Items without a product or with a
// non-positive quantity are left out.
func (s *Service) Create(ctx context.Context, params CreateParams) (*Exchange, error) {
	if params.TotalRefund.IsNegative() {
		return nil, ErrInvalidRefund
	}

	e := &Exchange{
		CustomerID:     params.CustomerID,
		OriginalSaleID: params.OriginalSaleID,
		ExchangeDate:   params.ExchangeDate,
		Reason:         params.Reason,
		Notes:          params.Notes,
		Status:         StatusPending,
		TotalRefund:    params.TotalRefund,
	}
	if e.ExchangeDate.IsZero() {
		e.ExchangeDate = s.now()
	}

	for _, ip := range params.Items {
		if ip.RecipeID == uuid.Nil || !ip.Quantity.IsPositive() {
			continue
		}

		e.Items = append(e.Items, &Item{
			RecipeID: ip.RecipeID,
			Quantity: ip.Quantity,
			Reason:   ip.Reason,
		})
	}

	if err := s.repo.CreateExchange(ctx, e); err != nil {
		return nil, err
	}

	return e, nil
}

func (s *Service) Process(ctx context.Context, id uuid.UUID) error {
	return s.repo.UpdateStatus(ctx, id, StatusPending, StatusProcessed)
}

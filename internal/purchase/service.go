package purchase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=purchase
type Repository interface {
	// CreatePurchase writes the header and its items in one transaction.
	CreatePurchase(ctx context.Context, p *Purchase) error
	GetPurchase(ctx context.Context, id uuid.UUID) (*Purchase, error)
	ListPurchases(ctx context.Context, filter ListFilter) ([]*Purchase, error)

	BeginUpdate(ctx context.Context) (UpdateTx, error)
}

// UpdateTx changes a purchase's status and the stock it affects atomically.
type UpdateTx interface {
	GetPurchaseForUpdate(ctx context.Context, id uuid.UUID) (*Purchase, error)
	ReceiveItem(ctx context.Context, item *Item) error
	SetStatus(ctx context.Context, id uuid.UUID, status Status) error
	Commit() error
	Rollback() error
}

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

type ItemParams struct {
	IngredientID uuid.UUID
	Quantity     decimal.Decimal
	UnitPrice    decimal.Decimal
	// TotalPrice defaults to Quantity * UnitPrice when nil.
	TotalPrice *decimal.Decimal
}

type CreateParams struct {
	SupplierID   uuid.UUID
	PurchaseDate time.Time
	NFeNumber    string
	Notes        string
	Items        []ItemParams
	// TotalAmount overrides the sum of item totals, used when an imported
	// invoice has lines that were not mapped to ingredients.
	TotalAmount *decimal.Decimal
}

type ListFilter struct {
	Status     *Status
	SupplierID *uuid.UUID
}

// Build assembles a pending purchase from params without persisting it.
func (s *Service) Build(params CreateParams) *Purchase {
	p := &Purchase{
		SupplierID:   params.SupplierID,
		PurchaseDate: params.PurchaseDate,
		Status:       StatusPending,
		NFeNumber:    params.NFeNumber,
		Notes:        params.Notes,
		TotalAmount:  decimal.Zero,
	}

	if p.PurchaseDate.IsZero() {
		p.PurchaseDate = s.now()
	}

	for _, ip := range params.Items {
		total := ip.Quantity.Mul(ip.UnitPrice)
		if ip.TotalPrice != nil {
			total = *ip.TotalPrice
		}

		p.Items = append(p.Items, &Item{
			IngredientID: ip.IngredientID,
			Quantity:     ip.Quantity,
			UnitPrice:    ip.UnitPrice,
			TotalPrice:   total,
		})
		p.TotalAmount = p.TotalAmount.Add(total)
	}

	if params.TotalAmount != nil {
		p.TotalAmount = *params.TotalAmount
	}

	return p
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Purchase, error) {
	if len(params.Items) == 0 {
		return nil, ErrNoItems
	}

	p := s.Build(params)
	if err := s.repo.CreatePurchase(ctx, p); err != nil {
		return nil, err
	}

	return p, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Purchase, error) {
	return s.repo.GetPurchase(ctx, id)
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]*Purchase, error) {
	return s.repo.ListPurchases(ctx, filter)
}

// Confirm marks a pending purchase as received: every item enters stock and
// updates its ingredient's average cost.
func (s *Service) Confirm(ctx context.Context, id uuid.UUID) (*Purchase, error) {
	return s.transition(ctx, id, StatusConfirmed, func(utx UpdateTx, p *Purchase) error {
		for _, item := range p.Items {
			if err := utx.ReceiveItem(ctx, item); err != nil {
				return fmt.Errorf("receiving item %s: %w", item.ID, err)
			}
		}

		return nil
	})
}

func (s *Service) Cancel(ctx context.Context, id uuid.UUID) (*Purchase, error) {
	return s.transition(ctx, id, StatusCancelled, nil)
}

func (s *Service) transition(ctx context.Context, id uuid.UUID, to Status, apply func(UpdateTx, *Purchase) error) (*Purchase, error) {
	utx, err := s.repo.BeginUpdate(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin update: %w", err)
	}
	defer utx.Rollback()

	p, err := utx.GetPurchaseForUpdate(ctx, id)
	if err != nil {
		return nil, err
	}

	if p.Status != StatusPending {
		return nil, fmt.Errorf("%w: status is %s", ErrInvalidStatus, p.Status)
	}

	if apply != nil {
		if err := apply(utx, p); err != nil {
			return nil, err
		}
	}

	if err := utx.SetStatus(ctx, id, to); err != nil {
		return nil, fmt.Errorf("set status: %w", err)
	}

	if err := utx.Commit(); err != nil {
		return nil, fmt.Errorf("commit update: %w", err)
	}

	p.Status = to

	return p, nil
}

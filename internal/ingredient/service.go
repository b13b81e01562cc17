package ingredient

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=ingredient
type Repository interface {
	ListIngredients(ctx context.Context) ([]*Ingredient, error)
	ListLowStock(ctx context.Context) ([]*Ingredient, error)
	GetIngredient(ctx context.Context, id uuid.UUID) (*Ingredient, error)
	CreateIngredient(ctx context.Context, ing *Ingredient) error
	UpdateIngredient(ctx context.Context, ing *Ingredient) error
	DeleteIngredient(ctx context.Context, id uuid.UUID) error

	// AddMovement records the movement and applies its delta to the stock atomically.
	AddMovement(ctx context.Context, mv *StockMovement) error
	ListMovements(ctx context.Context, ingredientID uuid.UUID) ([]*StockMovement, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	Name         string
	Unit         string
	CostPerUnit  decimal.Decimal
	CurrentStock decimal.Decimal
	MinStock     decimal.Decimal
}

func (s *Service) List(ctx context.Context) ([]*Ingredient, error) {
	return s.repo.ListIngredients(ctx)
}

func (s *Service) LowStock(ctx context.Context) ([]*Ingredient, error) {
	return s.repo.ListLowStock(ctx)
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Ingredient, error) {
	return s.repo.GetIngredient(ctx, id)
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Ingredient, error) {
	name := strings.TrimSpace(params.Name)
	if name == "" {
		return nil, ErrNameRequired
	}

	ing := &Ingredient{
		Name:         name,
		Unit:         params.Unit,
		CostPerUnit:  params.CostPerUnit,
		CurrentStock: params.CurrentStock,
		MinStock:     params.MinStock,
	}
	if err := s.repo.CreateIngredient(ctx, ing); err != nil {
		return nil, err
	}

	return ing, nil
}

func (s *Service) Update(ctx context.Context, ing *Ingredient) error {
	return s.repo.UpdateIngredient(ctx, ing)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteIngredient(ctx, id)
}

type MovementParams struct {
	IngredientID uuid.UUID
	Type         MovementType
	Quantity     decimal.Decimal
	Reason       string
}

// AdjustStock records a manual stock movement.
func (s *Service) AdjustStock(ctx context.Context, params MovementParams) (*StockMovement, error) {
	if !params.Type.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidMovementType, params.Type)
	}

	if params.Type != MovementAdjustment && !params.Quantity.IsPositive() {
		return nil, ErrInvalidQuantity
	}

	m := &StockMovement{
		IngredientID: params.IngredientID,
		Type:         params.Type,
		Quantity:     params.Quantity,
		Reason:       params.Reason,
	}
	if err := s.repo.AddMovement(ctx, m); err != nil {
		return nil, err
	}

	return m, nil
}

func (s *Service) Movements(ctx context.Context, ingredientID uuid.UUID) ([]*StockMovement, error) {
	return s.repo.ListMovements(ctx, ingredientID)
}

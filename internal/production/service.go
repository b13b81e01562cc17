package production

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fornada/fornada/internal/ingredient"
	"github.com/fornada/fornada/internal/recipe"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=production
type Repository interface {
	ListProductions(ctx context.Context) ([]*Production, error)
	BeginCreate(ctx context.Context) (CreateTx, error)
}

type CreateTx interface {
	GetRecipe(ctx context.Context, id uuid.UUID) (*recipe.Recipe, error)
	InsertProduction(ctx context.Context, p *Production) error
	ConsumeStock(ctx context.Context, mv *ingredient.StockMovement) error
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

type CreateParams struct {
	RecipeID         uuid.UUID
	QuantityProduced decimal.Decimal
	// ProductionDate defaults to today.
	ProductionDate time.Time
	Notes          string
}

func (s *Service) List(ctx context.Context) ([]*Production, error) {
	return s.repo.ListProductions(ctx)
}

// Create records a production run and takes the ingredients it used out of
// stock, all in one transaction.
func (s *Service) Create(ctx context.Context, params CreateParams) (*Production, error) {
	if !params.QuantityProduced.IsPositive() {
		return nil, ErrInvalidQuantity
	}

	tx, err := s.repo.BeginCreate(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin production: %w", err)
	}
	defer tx.Rollback()

	r, err := tx.GetRecipe(ctx, params.RecipeID)
	if err != nil {
		return nil, err
	}

	p := &Production{
		RecipeID:         r.ID,
		RecipeName:       r.Name,
		YieldUnit:        r.YieldUnit,
		QuantityProduced: params.QuantityProduced,
		ProductionDate:   params.ProductionDate,
		Notes:            params.Notes,
	}
	if p.ProductionDate.IsZero() {
		p.ProductionDate = s.now()
	}

	if err := tx.InsertProduction(ctx, p); err != nil {
		return nil, fmt.Errorf("creating production: %w", err)
	}

	for _, m := range Consumption(r, params.QuantityProduced) {
		m.ProductionID = &p.ID

		if err := tx.ConsumeStock(ctx, m); err != nil {
			return nil, fmt.Errorf("consuming ingredient %s: %w", m.IngredientID, err)
		}

		p.Consumed = append(p.Consumed, m)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing production: %w", err)
	}

	return p, nil
}

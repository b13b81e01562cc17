package recipe

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const salesWindow = 30 * 24 * time.Hour

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=recipe
type Repository interface {
	ListRecipes(ctx context.Context) ([]*Recipe, error)
	GetRecipe(ctx context.Context, id uuid.UUID) (*Recipe, error)
	// CreateRecipe inserts the recipe and its lines in one transaction.
	CreateRecipe(ctx context.Context, r *Recipe) error
	// UpdateRecipe replaces the header and every line in one transaction.
	UpdateRecipe(ctx context.Context, r *Recipe) error
	DeleteRecipe(ctx context.Context, id uuid.UUID) error
	QuantitySold(ctx context.Context, recipeID uuid.UUID, since time.Time) (decimal.Decimal, error)
}

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

type LineParams struct {
	IngredientID uuid.UUID
	Quantity     decimal.Decimal
}

type Params struct {
	Name          string
	Description   string
	YieldQuantity decimal.Decimal
	YieldUnit     string
	Ingredients   []LineParams
}

func (p Params) build() (*Recipe, error) {
	r := &Recipe{
		Name:          strings.TrimSpace(p.Name),
		Description:   p.Description,
		YieldQuantity: p.YieldQuantity,
		YieldUnit:     p.YieldUnit,
	}

	if r.Name == "" {
		return nil, ErrNameRequired
	}

	if r.YieldQuantity.IsNegative() {
		return nil, ErrInvalidYield
	}

	if r.YieldUnit == "" {
		r.YieldUnit = "un"
	}

	seen := make(map[uuid.UUID]bool, len(p.Ingredients))

	for _, lp := range p.Ingredients {
		if !lp.Quantity.IsPositive() {
			return nil, ErrInvalidLine
		}

		if seen[lp.IngredientID] {
			return nil, ErrDuplicateLines
		}

		seen[lp.IngredientID] = true

		r.Ingredients = append(r.Ingredients, &Line{
			IngredientID: lp.IngredientID,
			Quantity:     lp.Quantity,
		})
	}

	return r, nil
}

func (s *Service) List(ctx context.Context) ([]*Recipe, error) {
	return s.repo.ListRecipes(ctx)
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Recipe, error) {
	return s.repo.GetRecipe(ctx, id)
}

func (s *Service) Create(ctx context.Context, params Params) (*Recipe, error) {
	r, err := params.build()
	if err != nil {
		return nil, err
	}

	if err := s.repo.CreateRecipe(ctx, r); err != nil {
		return nil, err
	}

	return r, nil
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, params Params) (*Recipe, error) {
	r, err := params.build()
	if err != nil {
		return nil, err
	}

	r.ID = id
	if err := s.repo.UpdateRecipe(ctx, r); err != nil {
		return nil, err
	}

	return r, nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteRecipe(ctx, id)
}

// SalesLast30Days is the quantity of the recipe sold in completed sales
// over the last 30 days.
func (s *Service) SalesLast30Days(ctx context.Context, recipeID uuid.UUID) (decimal.Decimal, error) {
	return s.repo.QuantitySold(ctx, recipeID, s.now().Add(-salesWindow))
}

package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/fornada/fornada/internal/ingredient"
	ingredientStore "github.com/fornada/fornada/internal/ingredient/store"
	"github.com/fornada/fornada/internal/production"
	"github.com/fornada/fornada/internal/recipe"
	recipeStore "github.com/fornada/fornada/internal/recipe/store"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) ListProductions(ctx context.Context) ([]*production.Production, error) {
	query := `
		SELECT p.id, p.recipe_id, r.name, r.yield_unit, p.quantity_produced, p.production_date, p.notes, p.created_at
		FROM productions p
		JOIN recipes r ON r.id = p.recipe_id
		ORDER BY p.production_date DESC, p.created_at DESC
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing productions: %w", err)
	}
	defer rows.Close()

	var productions []*production.Production

	for rows.Next() {
		var (
			p     production.Production
			notes sql.NullString
		)

		if err := rows.Scan(&p.ID, &p.RecipeID, &p.RecipeName, &p.YieldUnit, &p.QuantityProduced,
			&p.ProductionDate, &notes, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning production: %w", err)
		}

		p.Notes = notes.String
		productions = append(productions, &p)
	}

	return productions, rows.Err()
}

type createTx struct {
	tx *sql.Tx
}

func (s *Store) BeginCreate(ctx context.Context) (production.CreateTx, error) {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}

	return &createTx{tx: dbTx}, nil
}

func (c *createTx) GetRecipe(ctx context.Context, id uuid.UUID) (*recipe.Recipe, error) {
	return recipeStore.GetRecipe(ctx, c.tx, id)
}

func (c *createTx) InsertProduction(ctx context.Context, p *production.Production) error {
	query := `
		INSERT INTO productions (recipe_id, quantity_produced, production_date, notes)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	return c.tx.QueryRowContext(ctx, query,
		p.RecipeID, p.QuantityProduced, p.ProductionDate, sql.NullString{String: p.Notes, Valid: p.Notes != ""},
	).Scan(&p.ID, &p.CreatedAt)
}

func (c *createTx) ConsumeStock(ctx context.Context, m *ingredient.StockMovement) error {
	return ingredientStore.InsertMovement(ctx, c.tx, m)
}

func (c *createTx) Commit() error   { return c.tx.Commit() }
func (c *createTx) Rollback() error { return c.tx.Rollback() }

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fornada/fornada/internal/database"
	"github.com/fornada/fornada/internal/recipe"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

const selectRecipeColumns = `id, name, description, yield_quantity, yield_unit, created_at, updated_at`

func scanRecipe(s scanner) (*recipe.Recipe, error) {
	var (
		r    recipe.Recipe
		desc sql.NullString
	)

	if err := s.Scan(&r.ID, &r.Name, &desc, &r.YieldQuantity, &r.YieldUnit, &r.CreatedAt, &r.UpdatedAt); err != nil {
		return nil, err
	}

	r.Description = desc.String

	return &r, nil
}

func (s *Store) ListRecipes(ctx context.Context) ([]*recipe.Recipe, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+selectRecipeColumns+` FROM recipes ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("listing recipes: %w", err)
	}
	defer rows.Close()

	var (
		recipes []*recipe.Recipe
		byID    = make(map[uuid.UUID]*recipe.Recipe)
	)

	for rows.Next() {
		r, err := scanRecipe(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning recipe: %w", err)
		}

		recipes = append(recipes, r)
		byID[r.ID] = r
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	lines, err := listLines(ctx, s.db, nil)
	if err != nil {
		return nil, err
	}

	for _, l := range lines {
		if r, ok := byID[l.RecipeID]; ok {
			r.Ingredients = append(r.Ingredients, l)
		}
	}

	return recipes, nil
}

func (s *Store) GetRecipe(ctx context.Context, id uuid.UUID) (*recipe.Recipe, error) {
	return GetRecipe(ctx, s.db, id)
}

// GetRecipe loads a recipe with its lines using q.
func GetRecipe(ctx context.Context, q database.Querier, id uuid.UUID) (*recipe.Recipe, error) {
	r, err := scanRecipe(q.QueryRowContext(ctx, `SELECT `+selectRecipeColumns+` FROM recipes WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, recipe.ErrNotFound
		}

		return nil, fmt.Errorf("getting recipe: %w", err)
	}

	r.Ingredients, err = listLines(ctx, q, &id)
	if err != nil {
		return nil, err
	}

	return r, nil
}

func listLines(ctx context.Context, q database.Querier, recipeID *uuid.UUID) ([]*recipe.Line, error) {
	query := `
		SELECT ri.id, ri.recipe_id, ri.ingredient_id, i.name, i.unit, i.cost_per_unit, ri.quantity
		FROM recipe_ingredients ri
		JOIN ingredients i ON i.id = ri.ingredient_id
	`

	var args []any
	if recipeID != nil {
		query += ` WHERE ri.recipe_id = $1`
		args = append(args, *recipeID)
	}

	query += ` ORDER BY i.name ASC`

	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing recipe ingredients: %w", err)
	}
	defer rows.Close()

	var lines []*recipe.Line

	for rows.Next() {
		var l recipe.Line
		if err := rows.Scan(&l.ID, &l.RecipeID, &l.IngredientID, &l.IngredientName, &l.Unit, &l.CostPerUnit, &l.Quantity); err != nil {
			return nil, fmt.Errorf("scanning recipe ingredient: %w", err)
		}

		lines = append(lines, &l)
	}

	return lines, rows.Err()
}

func (s *Store) CreateRecipe(ctx context.Context, r *recipe.Recipe) error {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer dbTx.Rollback()

	query := `
		INSERT INTO recipes (name, description, yield_quantity, yield_unit)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`

	err = dbTx.QueryRowContext(ctx, query,
		r.Name, sql.NullString{String: r.Description, Valid: r.Description != ""}, r.YieldQuantity, r.YieldUnit,
	).Scan(&r.ID, &r.CreatedAt, &r.UpdatedAt)
	if err != nil {
		return fmt.Errorf("creating recipe: %w", err)
	}

	if err := insertLines(ctx, dbTx, r); err != nil {
		return err
	}

	if err := dbTx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}

	return nil
}

func (s *Store) UpdateRecipe(ctx context.Context, r *recipe.Recipe) error {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer dbTx.Rollback()

	query := `
		UPDATE recipes
		SET name = $1, description = $2, yield_quantity = $3, yield_unit = $4, updated_at = NOW()
		WHERE id = $5
		RETURNING created_at, updated_at
	`

	err = dbTx.QueryRowContext(ctx, query,
		r.Name, sql.NullString{String: r.Description, Valid: r.Description != ""}, r.YieldQuantity, r.YieldUnit, r.ID,
	).Scan(&r.CreatedAt, &r.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return recipe.ErrNotFound
		}

		return fmt.Errorf("updating recipe: %w", err)
	}

	if _, err := dbTx.ExecContext(ctx, `DELETE FROM recipe_ingredients WHERE recipe_id = $1`, r.ID); err != nil {
		return fmt.Errorf("clearing recipe ingredients: %w", err)
	}

	if err := insertLines(ctx, dbTx, r); err != nil {
		return err
	}

	if err := dbTx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}

	return nil
}

func insertLines(ctx context.Context, tx *sql.Tx, r *recipe.Recipe) error {
	for _, l := range r.Ingredients {
		l.RecipeID = r.ID

		err := tx.QueryRowContext(ctx, `
			INSERT INTO recipe_ingredients (recipe_id, ingredient_id, quantity)
			VALUES ($1, $2, $3)
			RETURNING id
		`, l.RecipeID, l.IngredientID, l.Quantity).Scan(&l.ID)
		if err != nil {
			return fmt.Errorf("creating recipe ingredient: %w", err)
		}
	}

	return nil
}

func (s *Store) DeleteRecipe(ctx context.Context, id uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM recipes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting recipe: %w", err)
	}

	if n, _ := res.RowsAffected(); n == 0 {
		return recipe.ErrNotFound
	}

	return nil
}

func (s *Store) QuantitySold(ctx context.Context, recipeID uuid.UUID, since time.Time) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(si.quantity), 0)
		FROM sale_items si
		JOIN sales s ON s.id = si.sale_id
		WHERE si.recipe_id = $1 AND s.sale_date >= $2 AND s.status = 'completed'
	`

	var total decimal.Decimal
	if err := s.db.QueryRowContext(ctx, query, recipeID, since).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("summing recipe sales: %w", err)
	}

	return total, nil
}

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/fornada/fornada/internal/database"
	"github.com/fornada/fornada/internal/ingredient"
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

const selectIngredientColumns = `id, name, unit, cost_per_unit, current_stock, min_stock, created_at, updated_at`

func scanIngredient(s scanner) (*ingredient.Ingredient, error) {
	var ing ingredient.Ingredient

	if err := s.Scan(
		&ing.ID, &ing.Name, &ing.Unit, &ing.CostPerUnit, &ing.CurrentStock, &ing.MinStock,
		&ing.CreatedAt, &ing.UpdatedAt,
	); err != nil {
		return nil, err
	}

	return &ing, nil
}

func (s *Store) list(ctx context.Context, where string) ([]*ingredient.Ingredient, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+selectIngredientColumns+` FROM ingredients `+where+` ORDER BY name ASC, created_at ASC`)
	if err != nil {
		return nil, fmt.Errorf("listing ingredients: %w", err)
	}
	defer rows.Close()

	var ingredients []*ingredient.Ingredient

	for rows.Next() {
		ing, err := scanIngredient(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning ingredient: %w", err)
		}

		ingredients = append(ingredients, ing)
	}

	return ingredients, rows.Err()
}

func (s *Store) ListIngredients(ctx context.Context) ([]*ingredient.Ingredient, error) {
	return s.list(ctx, "")
}

func (s *Store) ListLowStock(ctx context.Context) ([]*ingredient.Ingredient, error) {
	return s.list(ctx, "WHERE current_stock <= min_stock")
}

func (s *Store) GetIngredient(ctx context.Context, id uuid.UUID) (*ingredient.Ingredient, error) {
	ing, err := scanIngredient(s.db.QueryRowContext(ctx, `SELECT `+selectIngredientColumns+` FROM ingredients WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ingredient.ErrNotFound
		}

		return nil, fmt.Errorf("getting ingredient: %w", err)
	}

	return ing, nil
}

func (s *Store) CreateIngredient(ctx context.Context, ing *ingredient.Ingredient) error {
	query := `
		INSERT INTO ingredients (name, unit, cost_per_unit, current_stock, min_stock)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`

	err := s.db.QueryRowContext(ctx, query,
		ing.Name, ing.Unit, ing.CostPerUnit, ing.CurrentStock, ing.MinStock,
	).Scan(&ing.ID, &ing.CreatedAt, &ing.UpdatedAt)
	if err != nil {
		return fmt.Errorf("creating ingredient: %w", err)
	}

	return nil
}

func (s *Store) UpdateIngredient(ctx context.Context, ing *ingredient.Ingredient) error {
	query := `
		UPDATE ingredients
		SET name = $1, unit = $2, cost_per_unit = $3, min_stock = $4, updated_at = NOW()
		WHERE id = $5
		RETURNING updated_at
	`

	err := s.db.QueryRowContext(ctx, query,
		ing.Name, ing.Unit, ing.CostPerUnit, ing.MinStock, ing.ID,
	).Scan(&ing.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ingredient.ErrNotFound
		}

		return fmt.Errorf("updating ingredient: %w", err)
	}

	return nil
}

func (s *Store) DeleteIngredient(ctx context.Context, id uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM ingredients WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting ingredient: %w", err)
	}

	if n, _ := res.RowsAffected(); n == 0 {
		return ingredient.ErrNotFound
	}

	return nil
}

func (s *Store) AddMovement(ctx context.Context, m *ingredient.StockMovement) error {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer dbTx.Rollback()

	if err := InsertMovement(ctx, dbTx, m); err != nil {
		return err
	}

	if err := dbTx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}

	return nil
}

// InsertMovement writes the movement and applies its delta to the
// ingredient's stock using q, so callers can run it inside their own
// transaction.
func InsertMovement(ctx context.Context, q database.Querier, m *ingredient.StockMovement) error {
	res, err := q.ExecContext(ctx, `
		UPDATE ingredients
		SET current_stock = current_stock + $1, updated_at = NOW()
		WHERE id = $2
	`, m.Delta(), m.IngredientID)
	if err != nil {
		return fmt.Errorf("updating stock: %w", err)
	}

	if n, _ := res.RowsAffected(); n == 0 {
		return ingredient.ErrNotFound
	}

	query := `
		INSERT INTO stock_movements (ingredient_id, movement_type, quantity, reason, production_id, purchase_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`

	err = q.QueryRowContext(ctx, query,
		m.IngredientID, m.Type, m.Quantity, sql.NullString{String: m.Reason, Valid: m.Reason != ""},
		m.ProductionID, m.PurchaseID,
	).Scan(&m.ID, &m.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating stock movement: %w", err)
	}

	return nil
}

func (s *Store) ListMovements(ctx context.Context, ingredientID uuid.UUID) ([]*ingredient.StockMovement, error) {
	query := `
		SELECT id, ingredient_id, movement_type, quantity, reason, production_id, purchase_id, created_at
		FROM stock_movements
		WHERE ingredient_id = $1
		ORDER BY created_at DESC
	`

	rows, err := s.db.QueryContext(ctx, query, ingredientID)
	if err != nil {
		return nil, fmt.Errorf("listing stock movements: %w", err)
	}
	defer rows.Close()

	var movements []*ingredient.StockMovement

	for rows.Next() {
		var (
			m       ingredient.StockMovement
			typeStr string
			reason  sql.NullString
		)

		if err := rows.Scan(&m.ID, &m.IngredientID, &typeStr, &m.Quantity, &reason, &m.ProductionID, &m.PurchaseID, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning stock movement: %w", err)
		}

		m.Type = ingredient.MovementType(typeStr)
		m.Reason = reason.String
		movements = append(movements, &m)
	}

	return movements, rows.Err()
}

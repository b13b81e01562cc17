package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fornada/fornada/internal/database"
	"github.com/fornada/fornada/internal/ingredient"
	ingredientStore "github.com/fornada/fornada/internal/ingredient/store"
	"github.com/fornada/fornada/internal/purchase"
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

const selectPurchaseColumns = `
	p.id, p.supplier_id, s.name, p.purchase_date, p.total_amount, p.status,
	p.nfe_number, p.notes, p.created_at, p.updated_at
`

func scanPurchase(s scanner) (*purchase.Purchase, error) {
	var (
		p            purchase.Purchase
		statusStr    string
		nfe, notes   sql.NullString
		supplierName sql.NullString
	)

	if err := s.Scan(
		&p.ID, &p.SupplierID, &supplierName, &p.PurchaseDate, &p.TotalAmount, &statusStr,
		&nfe, &notes, &p.CreatedAt, &p.UpdatedAt,
	); err != nil {
		return nil, err
	}

	p.SupplierName = supplierName.String
	p.Status = purchase.Status(statusStr)
	p.NFeNumber = nfe.String
	p.Notes = notes.String

	return &p, nil
}

func (s *Store) CreatePurchase(ctx context.Context, p *purchase.Purchase) error {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer dbTx.Rollback()

	if err := InsertPurchase(ctx, dbTx, p); err != nil {
		return err
	}

	if err := dbTx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}

	return nil
}

// InsertPurchase writes the header and items using q. Callers own the
// transaction.
func InsertPurchase(ctx context.Context, q database.Querier, p *purchase.Purchase) error {
	query := `
		INSERT INTO purchases (supplier_id, purchase_date, total_amount, status, nfe_number, notes)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRowContext(ctx, query,
		p.SupplierID,
		p.PurchaseDate,
		p.TotalAmount,
		p.Status,
		sql.NullString{String: p.NFeNumber, Valid: p.NFeNumber != ""},
		sql.NullString{String: p.Notes, Valid: p.Notes != ""},
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("creating purchase: %w", err)
	}

	itemQuery := `
		INSERT INTO purchase_items (purchase_id, ingredient_id, quantity, unit_price, total_price)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	for _, item := range p.Items {
		item.PurchaseID = p.ID

		err := q.QueryRowContext(ctx, itemQuery,
			item.PurchaseID, item.IngredientID, item.Quantity, item.UnitPrice, item.TotalPrice,
		).Scan(&item.ID)
		if err != nil {
			return fmt.Errorf("creating purchase item: %w", err)
		}
	}

	return nil
}

func (s *Store) GetPurchase(ctx context.Context, id uuid.UUID) (*purchase.Purchase, error) {
	return getPurchase(ctx, s.db, id, "")
}

func getPurchase(ctx context.Context, q database.Querier, id uuid.UUID, lock string) (*purchase.Purchase, error) {
	query := `SELECT ` + selectPurchaseColumns + `
		FROM purchases p
		LEFT JOIN suppliers s ON s.id = p.supplier_id
		WHERE p.id = $1 ` + lock

	p, err := scanPurchase(q.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, purchase.ErrNotFound
		}

		return nil, fmt.Errorf("getting purchase: %w", err)
	}

	items, err := listItems(ctx, q, id)
	if err != nil {
		return nil, err
	}

	p.Items = items

	return p, nil
}

func listItems(ctx context.Context, q database.Querier, purchaseID uuid.UUID) ([]*purchase.Item, error) {
	query := `
		SELECT pi.id, pi.purchase_id, pi.ingredient_id, i.name, pi.quantity, pi.unit_price, pi.total_price
		FROM purchase_items pi
		JOIN ingredients i ON i.id = pi.ingredient_id
		WHERE pi.purchase_id = $1
		ORDER BY i.name ASC
	`

	rows, err := q.QueryContext(ctx, query, purchaseID)
	if err != nil {
		return nil, fmt.Errorf("listing purchase items: %w", err)
	}
	defer rows.Close()

	var items []*purchase.Item

	for rows.Next() {
		var item purchase.Item
		if err := rows.Scan(
			&item.ID, &item.PurchaseID, &item.IngredientID, &item.IngredientName,
			&item.Quantity, &item.UnitPrice, &item.TotalPrice,
		); err != nil {
			return nil, fmt.Errorf("scanning purchase item: %w", err)
		}

		items = append(items, &item)
	}

	return items, rows.Err()
}

func (s *Store) ListPurchases(ctx context.Context, filter purchase.ListFilter) ([]*purchase.Purchase, error) {
	query := `SELECT ` + selectPurchaseColumns + `
		FROM purchases p
		LEFT JOIN suppliers s ON s.id = p.supplier_id
		WHERE 1 = 1`

	var args []any

	argIdx := 1

	if filter.Status != nil {
		query += fmt.Sprintf(" AND p.status = $%d", argIdx)

		args = append(args, *filter.Status)
		argIdx++
	}

	if filter.SupplierID != nil {
		query += fmt.Sprintf(" AND p.supplier_id = $%d", argIdx)

		args = append(args, *filter.SupplierID)
		argIdx++
	}

	query += " ORDER BY p.purchase_date DESC, p.created_at DESC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing purchases: %w", err)
	}
	defer rows.Close()

	var purchases []*purchase.Purchase

	for rows.Next() {
		p, err := scanPurchase(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning purchase: %w", err)
		}

		purchases = append(purchases, p)
	}

	return purchases, rows.Err()
}

type updateTx struct {
	tx *sql.Tx
}

func (s *Store) BeginUpdate(ctx context.Context) (purchase.UpdateTx, error) {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning update tx: %w", err)
	}

	return &updateTx{tx: dbTx}, nil
}

func (utx *updateTx) Commit() error   { return utx.tx.Commit() }
func (utx *updateTx) Rollback() error { return utx.tx.Rollback() }

func (utx *updateTx) GetPurchaseForUpdate(ctx context.Context, id uuid.UUID) (*purchase.Purchase, error) {
	return getPurchase(ctx, utx.tx, id, "FOR UPDATE OF p")
}

func (utx *updateTx) SetStatus(ctx context.Context, id uuid.UUID, status purchase.Status) error {
	_, err := utx.tx.ExecContext(ctx, `UPDATE purchases SET status = $1, updated_at = NOW() WHERE id = $2`, status, id)
	if err != nil {
		return fmt.Errorf("updating purchase status: %w", err)
	}

	return nil
}

// ReceiveItem re-prices the ingredient with the batch's unit price and adds
// the quantity to stock.
func (utx *updateTx) ReceiveItem(ctx context.Context, item *purchase.Item) error {
	var stock, cost decimal.Decimal

	err := utx.tx.QueryRowContext(ctx,
		`SELECT current_stock, cost_per_unit FROM ingredients WHERE id = $1 FOR UPDATE`,
		item.IngredientID,
	).Scan(&stock, &cost)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ingredient.ErrNotFound
		}

		return fmt.Errorf("locking ingredient: %w", err)
	}

	newCost := purchase.AverageCost(stock, cost, item.Quantity, item.UnitPrice)
	if _, err := utx.tx.ExecContext(ctx,
		`UPDATE ingredients SET cost_per_unit = $1, updated_at = NOW() WHERE id = $2`,
		newCost, item.IngredientID,
	); err != nil {
		return fmt.Errorf("updating ingredient cost: %w", err)
	}

	purchaseID := item.PurchaseID

	return ingredientStore.InsertMovement(ctx, utx.tx, &ingredient.StockMovement{
		IngredientID: item.IngredientID,
		Type:         ingredient.MovementIn,
		Quantity:     item.Quantity,
		Reason:       "purchase",
		PurchaseID:   &purchaseID,
	})
}

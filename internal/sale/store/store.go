package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/fornada/fornada/internal/sale"
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

const selectSaleColumns = `
	s.id, s.customer_id, c.name, s.sale_date, s.total_amount, s.status, s.notes, s.created_at
`

func scanSale(sc scanner) (*sale.Sale, error) {
	var (
		s            sale.Sale
		customerID   uuid.NullUUID
		customerName sql.NullString
		notes        sql.NullString
		statusStr    string
	)

	if err := sc.Scan(&s.ID, &customerID, &customerName, &s.SaleDate, &s.TotalAmount, &statusStr, &notes, &s.CreatedAt); err != nil {
		return nil, err
	}

	if customerID.Valid {
		s.CustomerID = &customerID.UUID
	}

	s.CustomerName = customerName.String
	s.Status = sale.Status(statusStr)
	s.Notes = notes.String

	return &s, nil
}

func (s *Store) ListSales(ctx context.Context, filter sale.ListFilter) ([]*sale.Sale, error) {
	query := `SELECT ` + selectSaleColumns + ` FROM sales s LEFT JOIN customers c ON c.id = s.customer_id`

	var (
		conditions []string
		args       []any
		argID      = 1
	)

	if filter.CustomerID != nil {
		conditions = append(conditions, fmt.Sprintf("s.customer_id = $%d", argID))
		args = append(args, *filter.CustomerID)
		argID++
	}

	if filter.StartDate != nil {
		conditions = append(conditions, fmt.Sprintf("s.sale_date >= $%d", argID))
		args = append(args, *filter.StartDate)
		argID++
	}

	if filter.EndDate != nil {
		conditions = append(conditions, fmt.Sprintf("s.sale_date <= $%d", argID))
		args = append(args, *filter.EndDate)
	}

	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}

	query += " ORDER BY s.sale_date DESC, s.created_at DESC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing sales: %w", err)
	}
	defer rows.Close()

	var (
		sales []*sale.Sale
		byID  = make(map[uuid.UUID]*sale.Sale)
		ids   []string
	)

	for rows.Next() {
		sl, err := scanSale(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning sale: %w", err)
		}

		sales = append(sales, sl)
		byID[sl.ID] = sl
		ids = append(ids, sl.ID.String())
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	if filter.CustomerID == nil || len(ids) == 0 {
		return sales, nil
	}

	// Customer history shows items, so load them in one query.
	items, err := s.listItems(ctx, `si.sale_id = ANY($1::uuid[])`, ids)
	if err != nil {
		return nil, err
	}

	for _, it := range items {
		byID[it.SaleID].Items = append(byID[it.SaleID].Items, it)
	}

	return sales, nil
}

func (s *Store) GetSale(ctx context.Context, id uuid.UUID) (*sale.Sale, error) {
	query := `SELECT ` + selectSaleColumns + ` FROM sales s LEFT JOIN customers c ON c.id = s.customer_id WHERE s.id = $1`

	sl, err := scanSale(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sale.ErrNotFound
		}

		return nil, fmt.Errorf("getting sale: %w", err)
	}

	sl.Items, err = s.listItems(ctx, `si.sale_id = $1`, id)
	if err != nil {
		return nil, err
	}

	return sl, nil
}

func (s *Store) listItems(ctx context.Context, where string, arg any) ([]*sale.Item, error) {
	query := `
		SELECT si.id, si.sale_id, si.recipe_id, r.name, si.quantity, si.unit_price, si.total_price
		FROM sale_items si
		JOIN recipes r ON r.id = si.recipe_id
		WHERE ` + where + `
		ORDER BY r.name ASC
	`

	rows, err := s.db.QueryContext(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("listing sale items: %w", err)
	}
	defer rows.Close()

	var items []*sale.Item

	for rows.Next() {
		var it sale.Item
		if err := rows.Scan(&it.ID, &it.SaleID, &it.RecipeID, &it.RecipeName, &it.Quantity, &it.UnitPrice, &it.TotalPrice); err != nil {
			return nil, fmt.Errorf("scanning sale item: %w", err)
		}

		items = append(items, &it)
	}

	return items, rows.Err()
}

func (s *Store) CreateSale(ctx context.Context, sl *sale.Sale) error {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer dbTx.Rollback()

	query := `
		INSERT INTO sales (customer_id, sale_date, total_amount, status, notes)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	err = dbTx.QueryRowContext(ctx, query,
		sl.CustomerID, sl.SaleDate, sl.TotalAmount, sl.Status, sql.NullString{String: sl.Notes, Valid: sl.Notes != ""},
	).Scan(&sl.ID, &sl.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating sale: %w", err)
	}

	for _, it := range sl.Items {
		it.SaleID = sl.ID

		err := dbTx.QueryRowContext(ctx, `
			INSERT INTO sale_items (sale_id, recipe_id, quantity, unit_price, total_price)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id
		`, it.SaleID, it.RecipeID, it.Quantity, it.UnitPrice, it.TotalPrice).Scan(&it.ID)
		if err != nil {
			return fmt.Errorf("creating sale item: %w", err)
		}
	}

	if err := dbTx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}

	return nil
}

func (s *Store) UpdateStatus(ctx context.Context, id uuid.UUID, from, to sale.Status) error {
	res, err := s.db.ExecContext(ctx, `UPDATE sales SET status = $1 WHERE id = $2 AND status = $3`, to, id, from)
	if err != nil {
		return fmt.Errorf("updating sale status: %w", err)
	}

	if n, _ := res.RowsAffected(); n > 0 {
		return nil
	}

	var exists bool
	if err := s.db.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM sales WHERE id = $1)`, id).Scan(&exists); err != nil {
		return fmt.Errorf("checking sale: %w", err)
	}

	if !exists {
		return sale.ErrNotFound
	}

	return sale.ErrInvalidStatus
}

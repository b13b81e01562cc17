package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/fornada/fornada/internal/exchange"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func (s *Store) ListExchanges(ctx context.Context) ([]*exchange.Exchange, error) {
	query := `
		SELECT e.id, e.customer_id, c.name, e.original_sale_id, e.exchange_date, e.reason,
			e.notes, e.status, e.total_refund, e.created_at
		FROM exchanges e
		LEFT JOIN customers c ON c.id = e.customer_id
		ORDER BY e.exchange_date DESC, e.created_at DESC
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing exchanges: %w", err)
	}
	defer rows.Close()

	var (
		exchanges []*exchange.Exchange
		byID      = make(map[uuid.UUID]*exchange.Exchange)
	)

	for rows.Next() {
		var (
			e                  exchange.Exchange
			customerID, saleID uuid.NullUUID
			customerName       sql.NullString
			reason, notes      sql.NullString
			status             string
		)

		if err := rows.Scan(&e.ID, &customerID, &customerName, &saleID, &e.ExchangeDate, &reason,
			&notes, &status, &e.TotalRefund, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning exchange: %w", err)
		}

		if customerID.Valid {
			e.CustomerID = &customerID.UUID
		}

		if saleID.Valid {
			e.OriginalSaleID = &saleID.UUID
		}

		e.CustomerName = customerName.String
		e.Reason = reason.String
		e.Notes = notes.String
		e.Status = exchange.Status(status)

		exchanges = append(exchanges, &e)
		byID[e.ID] = &e
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	items, err := s.db.QueryContext(ctx, `
		SELECT ei.id, ei.exchange_id, ei.recipe_id, r.name, ei.quantity, ei.reason
		FROM exchange_items ei
		JOIN recipes r ON r.id = ei.recipe_id
		ORDER BY r.name ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("listing exchange items: %w", err)
	}
	defer items.Close()

	for items.Next() {
		var (
			it     exchange.Item
			reason sql.NullString
		)

		if err := items.Scan(&it.ID, &it.ExchangeID, &it.RecipeID, &it.RecipeName, &it.Quantity, &reason); err != nil {
			return nil, fmt.Errorf("scanning exchange item: %w", err)
		}

		it.Reason = reason.String

		if e, ok := byID[it.ExchangeID]; ok {
			e.Items = append(e.Items, &it)
		}
	}

	return exchanges, items.Err()
}

func (s *Store) CreateExchange(ctx context.Context, e *exchange.Exchange) error {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer dbTx.Rollback()

	query := `
		INSERT INTO exchanges (customer_id, original_sale_id, exchange_date, reason, notes, status, total_refund)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`

	err = dbTx.QueryRowContext(ctx, query,
		e.CustomerID, e.OriginalSaleID, e.ExchangeDate, nullString(e.Reason), nullString(e.Notes), e.Status, e.TotalRefund,
	).Scan(&e.ID, &e.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating exchange: %w", err)
	}

	for _, it := range e.Items {
		it.ExchangeID = e.ID

		err := dbTx.QueryRowContext(ctx, `
			INSERT INTO exchange_items (exchange_id, recipe_id, quantity, reason)
			VALUES ($1, $2, $3, $4)
			RETURNING id
		`, it.ExchangeID, it.RecipeID, it.Quantity, nullString(it.Reason)).Scan(&it.ID)
		if err != nil {
			return fmt.Errorf("creating exchange item: %w", err)
		}
	}

	if err := dbTx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}

	return nil
}

func (s *Store) UpdateStatus(ctx context.Context, id uuid.UUID, from, to exchange.Status) error {
	res, err := s.db.ExecContext(ctx, `UPDATE exchanges SET status = $1 WHERE id = $2 AND status = $3`, to, id, from)
	if err != nil {
		return fmt.Errorf("updating exchange status: %w", err)
	}

	if n, _ := res.RowsAffected(); n > 0 {
		return nil
	}

	var exists bool
	if err := s.db.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM exchanges WHERE id = $1)`, id).Scan(&exists); err != nil {
		return fmt.Errorf("checking exchange: %w", err)
	}

	if !exists {
		return exchange.ErrNotFound
	}

	return exchange.ErrInvalidStatus
}

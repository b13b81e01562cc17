package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/fornada/fornada/internal/dashboard"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Stats(ctx context.Context, since time.Time) (*dashboard.Stats, error) {
	query := `
		SELECT
			(SELECT COALESCE(SUM(total_amount), 0) FROM sales
				WHERE status = 'completed' AND sale_date >= $1),
			(SELECT COALESCE(SUM(amount), 0) FROM accounts_receivable WHERE status = 'pending'),
			(SELECT COALESCE(SUM(amount), 0) FROM accounts_payable WHERE status = 'pending'),
			(SELECT COUNT(*) FROM ingredients WHERE current_stock <= min_stock)
	`

	var st dashboard.Stats
	err := s.db.QueryRowContext(ctx, query, since).Scan(
		&st.SalesLast30Days, &st.PendingReceivables, &st.PendingPayables, &st.LowStockCount,
	)
	if err != nil {
		return nil, fmt.Errorf("loading dashboard stats: %w", err)
	}

	return &st, nil
}

func (s *Store) DailySales(ctx context.Context, start, end time.Time) ([]*dashboard.DailySales, error) {
	query := `
		SELECT d::date, COALESCE(SUM(s.total_amount), 0)
		FROM generate_series($1::date, $2::date, INTERVAL '1 day') AS d
		LEFT JOIN sales s ON s.sale_date = d::date AND s.status = 'completed'
		GROUP BY d
		ORDER BY d
	`

	rows, err := s.db.QueryContext(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("listing daily sales: %w", err)
	}
	defer rows.Close()

	var days []*dashboard.DailySales
	for rows.Next() {
		var d dashboard.DailySales
		if err := rows.Scan(&d.Day, &d.Total); err != nil {
			return nil, fmt.Errorf("scanning daily sales: %w", err)
		}
		days = append(days, &d)
	}

	return days, rows.Err()
}

func (s *Store) TopProducts(ctx context.Context, limit int) ([]*dashboard.ProductRank, error) {
	query := `
		SELECT r.id, r.name, SUM(si.quantity), SUM(si.total_price)
		FROM sale_items si
		JOIN sales s ON s.id = si.sale_id AND s.status = 'completed'
		JOIN recipes r ON r.id = si.recipe_id
		GROUP BY r.id, r.name
		ORDER BY SUM(si.quantity) DESC, r.name ASC
		LIMIT $1
	`

	rows, err := s.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("listing top products: %w", err)
	}
	defer rows.Close()

	var ranks []*dashboard.ProductRank
	for rows.Next() {
		var p dashboard.ProductRank
		if err := rows.Scan(&p.RecipeID, &p.Name, &p.Quantity, &p.Revenue); err != nil {
			return nil, fmt.Errorf("scanning top product: %w", err)
		}
		ranks = append(ranks, &p)
	}

	return ranks, rows.Err()
}

func (s *Store) TopCustomers(ctx context.Context, limit int) ([]*dashboard.CustomerRank, error) {
	query := `
		SELECT c.id, c.name, COUNT(s.id), SUM(s.total_amount)
		FROM sales s
		JOIN customers c ON c.id = s.customer_id
		WHERE s.status = 'completed'
		GROUP BY c.id, c.name
		ORDER BY SUM(s.total_amount) DESC, c.name ASC
		LIMIT $1
	`

	rows, err := s.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("listing top customers: %w", err)
	}
	defer rows.Close()

	var ranks []*dashboard.CustomerRank
	for rows.Next() {
		var c dashboard.CustomerRank
		if err := rows.Scan(&c.CustomerID, &c.Name, &c.SaleCount, &c.Total); err != nil {
			return nil, fmt.Errorf("scanning top customer: %w", err)
		}
		ranks = append(ranks, &c)
	}

	return ranks, rows.Err()
}

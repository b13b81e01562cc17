package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/fornada/fornada/internal/database"
	"github.com/fornada/fornada/internal/supplier"
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

const selectSupplierColumns = `id, name, cnpj, email, phone, address, created_at, updated_at`

func scanSupplier(s scanner) (*supplier.Supplier, error) {
	var (
		sup                         supplier.Supplier
		cnpj, email, phone, address sql.NullString
	)

	if err := s.Scan(&sup.ID, &sup.Name, &cnpj, &email, &phone, &address, &sup.CreatedAt, &sup.UpdatedAt); err != nil {
		return nil, err
	}

	sup.CNPJ = cnpj.String
	sup.Email = email.String
	sup.Phone = phone.String
	sup.Address = address.String

	return &sup, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func (s *Store) ListSuppliers(ctx context.Context) ([]*supplier.Supplier, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+selectSupplierColumns+` FROM suppliers ORDER BY name ASC, created_at ASC`)
	if err != nil {
		return nil, fmt.Errorf("listing suppliers: %w", err)
	}
	defer rows.Close()

	var suppliers []*supplier.Supplier

	for rows.Next() {
		sup, err := scanSupplier(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning supplier: %w", err)
		}

		suppliers = append(suppliers, sup)
	}

	return suppliers, rows.Err()
}

func (s *Store) GetSupplier(ctx context.Context, id uuid.UUID) (*supplier.Supplier, error) {
	sup, err := scanSupplier(s.db.QueryRowContext(ctx, `SELECT `+selectSupplierColumns+` FROM suppliers WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, supplier.ErrNotFound
		}

		return nil, fmt.Errorf("getting supplier: %w", err)
	}

	return sup, nil
}

// FindByTaxID looks a supplier up by digits-only CNPJ using q. It returns
// nil without error when none exists.
func FindByTaxID(ctx context.Context, q database.Querier, taxID string) (*supplier.Supplier, error) {
	query := `SELECT ` + selectSupplierColumns + ` FROM suppliers
		WHERE regexp_replace(cnpj, '\D', '', 'g') = $1`

	sup, err := scanSupplier(q.QueryRowContext(ctx, query, taxID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}

		return nil, fmt.Errorf("finding supplier by cnpj: %w", err)
	}

	return sup, nil
}

func (s *Store) CreateSupplier(ctx context.Context, sup *supplier.Supplier) error {
	return InsertSupplier(ctx, s.db, sup)
}

// InsertSupplier creates the supplier using q, which may be a transaction.
func InsertSupplier(ctx context.Context, q database.Querier, sup *supplier.Supplier) error {
	query := `
		INSERT INTO suppliers (name, cnpj, email, phone, address)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRowContext(ctx, query,
		sup.Name,
		nullString(sup.CNPJ),
		nullString(sup.Email),
		nullString(sup.Phone),
		nullString(sup.Address),
	).Scan(&sup.ID, &sup.CreatedAt, &sup.UpdatedAt)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return supplier.ErrDuplicate
		}

		return fmt.Errorf("creating supplier: %w", err)
	}

	return nil
}

func (s *Store) UpdateSupplier(ctx context.Context, sup *supplier.Supplier) error {
	query := `
		UPDATE suppliers
		SET name = $1, cnpj = $2, email = $3, phone = $4, address = $5, updated_at = NOW()
		WHERE id = $6
		RETURNING updated_at
	`

	err := s.db.QueryRowContext(ctx, query,
		sup.Name,
		nullString(sup.CNPJ),
		nullString(sup.Email),
		nullString(sup.Phone),
		nullString(sup.Address),
		sup.ID,
	).Scan(&sup.UpdatedAt)

	switch {
	case errors.Is(err, sql.ErrNoRows):
		return supplier.ErrNotFound
	case database.IsUniqueViolation(err):
		return supplier.ErrDuplicate
	case err != nil:
		return fmt.Errorf("updating supplier: %w", err)
	}

	return nil
}

func (s *Store) DeleteSupplier(ctx context.Context, id uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM suppliers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting supplier: %w", err)
	}

	if n, _ := res.RowsAffected(); n == 0 {
		return supplier.ErrNotFound
	}

	return nil
}

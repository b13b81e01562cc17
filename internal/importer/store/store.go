package store

import (
	"context"
	"database/sql"
	"fmt"
	"hash/fnv"

	"github.com/fornada/fornada/internal/importer"
	"github.com/fornada/fornada/internal/purchase"
	purchaseStore "github.com/fornada/fornada/internal/purchase/store"
	"github.com/fornada/fornada/internal/supplier"
	supplierStore "github.com/fornada/fornada/internal/supplier/store"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

type confirmTx struct {
	tx *sql.Tx
}

// BeginConfirm takes a transaction-scoped advisory lock on the supplier tax id
// so two imports from the same emitter cannot both create it. An empty key
// skips the lock.
func (s *Store) BeginConfirm(ctx context.Context, supplierKey string) (importer.ConfirmTx, error) {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}

	if supplierKey != "" {
		if _, err := dbTx.ExecContext(ctx, `SELECT pg_advisory_xact_lock($1)`, lockKey(supplierKey)); err != nil {
			dbTx.Rollback()
			return nil, fmt.Errorf("locking supplier key: %w", err)
		}
	}

	return &confirmTx{tx: dbTx}, nil
}

func lockKey(s string) int64 {
	h := fnv.New64a()
	h.Write([]byte("supplier:" + s))

	return int64(h.Sum64())
}

func (c *confirmTx) FindSupplierByTaxID(ctx context.Context, taxID string) (*supplier.Supplier, error) {
	return supplierStore.FindByTaxID(ctx, c.tx, taxID)
}

func (c *confirmTx) CreateSupplier(ctx context.Context, s *supplier.Supplier) error {
	return supplierStore.InsertSupplier(ctx, c.tx, s)
}

func (c *confirmTx) CreatePurchase(ctx context.Context, p *purchase.Purchase) error {
	return purchaseStore.InsertPurchase(ctx, c.tx, p)
}

func (c *confirmTx) Commit() error   { return c.tx.Commit() }
func (c *confirmTx) Rollback() error { return c.tx.Rollback() }

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/fornada/fornada/internal/database"
	"github.com/fornada/fornada/internal/finance"
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

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullUUID(id *uuid.UUID) uuid.NullUUID {
	if id == nil {
		return uuid.NullUUID{}
	}

	return uuid.NullUUID{UUID: *id, Valid: true}
}

func uuidPtr(n uuid.NullUUID) *uuid.UUID {
	if !n.Valid {
		return nil
	}

	return &n.UUID
}

func timePtr(n sql.NullTime) *time.Time {
	if !n.Valid {
		return nil
	}

	return &n.Time
}

// whereClause renders f against a table whose status column is pending for
// open entries and whose settlement date is settledColumn.
func whereClause(f finance.EntryFilter, alias, settledColumn string) (string, []any) {
	var (
		conditions []string
		args       []any
		argID      = 1
	)

	add := func(cond string, arg any) {
		conditions = append(conditions, fmt.Sprintf(cond, argID))
		args = append(args, arg)
		argID++
	}

	if f.Pending != nil {
		if *f.Pending {
			conditions = append(conditions, alias+".status = 'pending'")
		} else {
			conditions = append(conditions, alias+".status <> 'pending'")
		}
	}

	if f.DueBefore != nil {
		add(alias+".due_date < $%d", *f.DueBefore)
	}

	if f.CustomerID != nil {
		add(alias+".customer_id = $%d", *f.CustomerID)
	}

	if f.SettledFrom != nil {
		add(alias+"."+settledColumn+" >= $%d", *f.SettledFrom)
	}

	if f.SettledUntil != nil {
		add(alias+"."+settledColumn+" < $%d", *f.SettledUntil)
	}

	if len(conditions) == 0 {
		return "", nil
	}

	return " WHERE " + strings.Join(conditions, " AND "), args
}

const selectPayableColumns = `
	p.id, p.supplier_id, s.name, p.purchase_id, p.description, p.amount,
	p.due_date, p.paid_date, p.status, p.created_at
`

func scanPayable(sc scanner) (*finance.Payable, error) {
	var (
		p            finance.Payable
		supplierID   uuid.NullUUID
		supplierName sql.NullString
		purchaseID   uuid.NullUUID
		paidDate     sql.NullTime
		status       string
	)

	if err := sc.Scan(&p.ID, &supplierID, &supplierName, &purchaseID, &p.Description, &p.Amount,
		&p.DueDate, &paidDate, &status, &p.CreatedAt); err != nil {
		return nil, err
	}

	p.SupplierID = uuidPtr(supplierID)
	p.SupplierName = supplierName.String
	p.PurchaseID = uuidPtr(purchaseID)
	p.PaidDate = timePtr(paidDate)
	p.Status = finance.PayableStatus(status)

	return &p, nil
}

func (s *Store) ListPayables(ctx context.Context, filter finance.EntryFilter) ([]*finance.Payable, error) {
	filter.CustomerID = nil

	where, args := whereClause(filter, "p", "paid_date")
	query := `SELECT ` + selectPayableColumns + `
		FROM accounts_payable p
		LEFT JOIN suppliers s ON s.id = p.supplier_id` + where + `
		ORDER BY p.due_date ASC, p.created_at ASC`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing payables: %w", err)
	}
	defer rows.Close()

	var payables []*finance.Payable

	for rows.Next() {
		p, err := scanPayable(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning payable: %w", err)
		}

		payables = append(payables, p)
	}

	return payables, rows.Err()
}

func (s *Store) CreatePayable(ctx context.Context, p *finance.Payable) error {
	query := `
		INSERT INTO accounts_payable (supplier_id, purchase_id, description, amount, due_date, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query,
		nullUUID(p.SupplierID), nullUUID(p.PurchaseID), p.Description, p.Amount, p.DueDate, p.Status,
	).Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating payable: %w", err)
	}

	return nil
}

func (s *Store) DeletePayable(ctx context.Context, id uuid.UUID) error {
	return deleteRow(ctx, s.db, "accounts_payable", id, finance.ErrNotFound)
}

const selectReceivableColumns = `
	r.id, r.customer_id, c.name, r.sale_id, r.description, r.amount,
	r.due_date, r.received_date, r.payment_method, r.status, r.created_at
`

func scanReceivable(sc scanner) (*finance.Receivable, error) {
	var (
		r            finance.Receivable
		customerID   uuid.NullUUID
		customerName sql.NullString
		saleID       uuid.NullUUID
		receivedDate sql.NullTime
		method       sql.NullString
		status       string
	)

	if err := sc.Scan(&r.ID, &customerID, &customerName, &saleID, &r.Description, &r.Amount,
		&r.DueDate, &receivedDate, &method, &status, &r.CreatedAt); err != nil {
		return nil, err
	}

	r.CustomerID = uuidPtr(customerID)
	r.CustomerName = customerName.String
	r.SaleID = uuidPtr(saleID)
	r.ReceivedDate = timePtr(receivedDate)
	r.PaymentMethod = finance.PaymentMethod(method.String)
	r.Status = finance.ReceivableStatus(status)

	return &r, nil
}

func (s *Store) ListReceivables(ctx context.Context, filter finance.EntryFilter) ([]*finance.Receivable, error) {
	where, args := whereClause(filter, "r", "received_date")
	query := `SELECT ` + selectReceivableColumns + `
		FROM accounts_receivable r
		LEFT JOIN customers c ON c.id = r.customer_id` + where + `
		ORDER BY r.due_date ASC, r.created_at ASC`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing receivables: %w", err)
	}
	defer rows.Close()

	var receivables []*finance.Receivable

	for rows.Next() {
		r, err := scanReceivable(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning receivable: %w", err)
		}

		receivables = append(receivables, r)
	}

	return receivables, rows.Err()
}

func (s *Store) CreateReceivable(ctx context.Context, r *finance.Receivable) error {
	query := `
		INSERT INTO accounts_receivable (customer_id, sale_id, description, amount, due_date, payment_method, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query,
		nullUUID(r.CustomerID), nullUUID(r.SaleID), r.Description, r.Amount, r.DueDate,
		nullString(string(r.PaymentMethod)), r.Status,
	).Scan(&r.ID, &r.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating receivable: %w", err)
	}

	return nil
}

func (s *Store) DeleteReceivable(ctx context.Context, id uuid.UUID) error {
	return deleteRow(ctx, s.db, "accounts_receivable", id, finance.ErrReceivableNotFound)
}

func (s *Store) ListReceivableLogs(ctx context.Context, receivableID uuid.UUID) ([]*finance.ReceivableLog, error) {
	query := `
		SELECT id, receivable_id, user_id, old_due_date, new_due_date, old_method, new_method, notes, created_at
		FROM accounts_receivable_logs
		WHERE receivable_id = $1
		ORDER BY created_at DESC
	`

	rows, err := s.db.QueryContext(ctx, query, receivableID)
	if err != nil {
		return nil, fmt.Errorf("listing receivable logs: %w", err)
	}
	defer rows.Close()

	var logs []*finance.ReceivableLog

	for rows.Next() {
		var (
			l                         finance.ReceivableLog
			userID, oldM, newM, notes sql.NullString
			oldDue, newDue            sql.NullTime
		)

		if err := rows.Scan(&l.ID, &l.ReceivableID, &userID, &oldDue, &newDue, &oldM, &newM, &notes, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning receivable log: %w", err)
		}

		l.UserID = userID.String
		l.OldDueDate = oldDue.Time
		l.NewDueDate = newDue.Time
		l.OldMethod = finance.PaymentMethod(oldM.String)
		l.NewMethod = finance.PaymentMethod(newM.String)
		l.Notes = notes.String

		logs = append(logs, &l)
	}

	return logs, rows.Err()
}

func (s *Store) CreateAccount(ctx context.Context, a *finance.Account) error {
	err := s.db.QueryRowContext(ctx,
		`INSERT INTO financial_accounts (name, type) VALUES ($1, $2) RETURNING id, created_at`,
		a.Name, a.Type,
	).Scan(&a.ID, &a.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating account: %w", err)
	}

	return nil
}

func (s *Store) ListAccountsWithBalances(ctx context.Context) ([]*finance.Account, error) {
	query := `
		SELECT a.id, a.name, a.type, a.created_at,
			COALESCE((SELECT SUM(CASE WHEN t.txn_type = 'credit' THEN t.amount ELSE -t.amount END)
				FROM financial_transactions t WHERE t.account_id = a.id), 0)
			+ COALESCE((SELECT SUM(amount) FROM financial_transfers WHERE to_account_id = a.id), 0)
			- COALESCE((SELECT SUM(amount) FROM financial_transfers WHERE from_account_id = a.id), 0)
		FROM financial_accounts a
		ORDER BY a.name ASC
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing accounts: %w", err)
	}
	defer rows.Close()

	var accounts []*finance.Account

	for rows.Next() {
		var a finance.Account
		if err := rows.Scan(&a.ID, &a.Name, &a.Type, &a.CreatedAt, &a.Balance); err != nil {
			return nil, fmt.Errorf("scanning account: %w", err)
		}

		accounts = append(accounts, &a)
	}

	return accounts, rows.Err()
}

func deleteRow(ctx context.Context, q database.Querier, table string, id uuid.UUID, notFound error) error {
	res, err := q.ExecContext(ctx, `DELETE FROM `+table+` WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting from %s: %w", table, err)
	}

	if n, _ := res.RowsAffected(); n == 0 {
		return notFound
	}

	return nil
}

type financeTx struct {
	tx *sql.Tx
}

func (s *Store) BeginTx(ctx context.Context) (finance.Tx, error) {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}

	return &financeTx{tx: dbTx}, nil
}

func (f *financeTx) GetPayableForUpdate(ctx context.Context, id uuid.UUID) (*finance.Payable, error) {
	query := `SELECT ` + selectPayableColumns + `
		FROM accounts_payable p
		LEFT JOIN suppliers s ON s.id = p.supplier_id
		WHERE p.id = $1
		FOR UPDATE OF p`

	p, err := scanPayable(f.tx.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, finance.ErrNotFound
		}

		return nil, fmt.Errorf("getting payable: %w", err)
	}

	return p, nil
}

func (f *financeTx) MarkPayablePaid(ctx context.Context, id uuid.UUID, paidAt time.Time) error {
	_, err := f.tx.ExecContext(ctx,
		`UPDATE accounts_payable SET status = $1, paid_date = $2 WHERE id = $3`,
		finance.PayablePaid, paidAt, id,
	)

	return err
}

func (f *financeTx) GetReceivableForUpdate(ctx context.Context, id uuid.UUID) (*finance.Receivable, error) {
	query := `SELECT ` + selectReceivableColumns + `
		FROM accounts_receivable r
		LEFT JOIN customers c ON c.id = r.customer_id
		WHERE r.id = $1
		FOR UPDATE OF r`

	r, err := scanReceivable(f.tx.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, finance.ErrReceivableNotFound
		}

		return nil, fmt.Errorf("getting receivable: %w", err)
	}

	return r, nil
}

func (f *financeTx) UpdateReceivable(ctx context.Context, r *finance.Receivable) error {
	query := `
		UPDATE accounts_receivable
		SET due_date = $1, payment_method = $2, status = $3, received_date = $4
		WHERE id = $5
	`

	var received sql.NullTime
	if r.ReceivedDate != nil {
		received = sql.NullTime{Time: *r.ReceivedDate, Valid: true}
	}

	_, err := f.tx.ExecContext(ctx, query,
		r.DueDate, nullString(string(r.PaymentMethod)), r.Status, received, r.ID,
	)

	return err
}

func (f *financeTx) InsertReceivableLog(ctx context.Context, l *finance.ReceivableLog) error {
	query := `
		INSERT INTO accounts_receivable_logs
			(receivable_id, user_id, old_due_date, new_due_date, old_method, new_method, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`

	return f.tx.QueryRowContext(ctx, query,
		l.ReceivableID, nullString(l.UserID), l.OldDueDate, l.NewDueDate,
		nullString(string(l.OldMethod)), nullString(string(l.NewMethod)), nullString(l.Notes),
	).Scan(&l.ID, &l.CreatedAt)
}

func (f *financeTx) GetAccount(ctx context.Context, id uuid.UUID) (*finance.Account, error) {
	var a finance.Account

	err := f.tx.QueryRowContext(ctx,
		`SELECT id, name, type, created_at FROM financial_accounts WHERE id = $1`, id,
	).Scan(&a.ID, &a.Name, &a.Type, &a.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, finance.ErrAccountNotFound
		}

		return nil, fmt.Errorf("getting account: %w", err)
	}

	return &a, nil
}

func (f *financeTx) InsertTransaction(ctx context.Context, t *finance.Transaction) error {
	query := `
		INSERT INTO financial_transactions
			(account_id, amount, txn_type, payment_method, description,
			 payable_id, receivable_id, purchase_id, sale_id, occurred_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id
	`

	return f.tx.QueryRowContext(ctx, query,
		t.AccountID, t.Amount, t.Type, t.PaymentMethod, nullString(t.Description),
		nullUUID(t.PayableID), nullUUID(t.ReceivableID), nullUUID(t.PurchaseID), nullUUID(t.SaleID), t.OccurredAt,
	).Scan(&t.ID)
}

func (f *financeTx) InsertTransfer(ctx context.Context, t *finance.Transfer) error {
	query := `
		INSERT INTO financial_transfers (from_account_id, to_account_id, amount, notes, occurred_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	return f.tx.QueryRowContext(ctx, query,
		t.FromAccountID, t.ToAccountID, t.Amount, nullString(t.Notes), t.OccurredAt,
	).Scan(&t.ID)
}

func (f *financeTx) Commit() error   { return f.tx.Commit() }
func (f *financeTx) Rollback() error { return f.tx.Rollback() }

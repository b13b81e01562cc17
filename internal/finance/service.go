package finance

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=finance
type Repository interface {
	ListPayables(ctx context.Context, filter EntryFilter) ([]*Payable, error)
	CreatePayable(ctx context.Context, p *Payable) error
	DeletePayable(ctx context.Context, id uuid.UUID) error

	ListReceivables(ctx context.Context, filter EntryFilter) ([]*Receivable, error)
	CreateReceivable(ctx context.Context, r *Receivable) error
	DeleteReceivable(ctx context.Context, id uuid.UUID) error
	ListReceivableLogs(ctx context.Context, receivableID uuid.UUID) ([]*ReceivableLog, error)

	CreateAccount(ctx context.Context, a *Account) error
	ListAccountsWithBalances(ctx context.Context) ([]*Account, error)

	BeginTx(ctx context.Context) (Tx, error)
}

// Tx groups the writes that settle or reschedule an entry.
type Tx interface {
	GetPayableForUpdate(ctx context.Context, id uuid.UUID) (*Payable, error)
	MarkPayablePaid(ctx context.Context, id uuid.UUID, paidAt time.Time) error
	GetReceivableForUpdate(ctx context.Context, id uuid.UUID) (*Receivable, error)
	UpdateReceivable(ctx context.Context, r *Receivable) error
	InsertReceivableLog(ctx context.Context, l *ReceivableLog) error
	GetAccount(ctx context.Context, id uuid.UUID) (*Account, error)
	InsertTransaction(ctx context.Context, t *Transaction) error
	InsertTransfer(ctx context.Context, t *Transfer) error
	Commit() error
	Rollback() error
}

// EntryFilter is the store-level form of a Filter. Settled bounds apply to
// the paid or received date; CustomerID only narrows receivables.
type EntryFilter struct {
	Pending      *bool
	DueBefore    *time.Time
	CustomerID   *uuid.UUID
	SettledFrom  *time.Time
	SettledUntil *time.Time
}

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

func (s *Service) entryFilter(f Filter) (EntryFilter, error) {
	switch f {
	case FilterAll, "":
		return EntryFilter{}, nil
	case FilterPending:
		return EntryFilter{Pending: new(true)}, nil
	case FilterOverdue:
		return EntryFilter{Pending: new(true), DueBefore: new(startOfDay(s.now()))}, nil
	case FilterPaid, FilterReceived:
		return EntryFilter{Pending: new(false)}, nil
	default:
		return EntryFilter{}, fmt.Errorf("%w: %q", ErrInvalidFilter, f)
	}
}

func (s *Service) ListPayables(ctx context.Context, f Filter) ([]*Payable, error) {
	if f == FilterReceived {
		return nil, fmt.Errorf("%w: %q", ErrInvalidFilter, f)
	}

	filter, err := s.entryFilter(f)
	if err != nil {
		return nil, err
	}

	return s.repo.ListPayables(ctx, filter)
}

type PayableParams struct {
	SupplierID  *uuid.UUID
	PurchaseID  *uuid.UUID
	Description string
	Amount      decimal.Decimal
	DueDate     time.Time
}

func (s *Service) CreatePayable(ctx context.Context, params PayableParams) (*Payable, error) {
	desc, err := validateEntry(params.Description, params.Amount, params.DueDate)
	if err != nil {
		return nil, err
	}

	p := &Payable{
		SupplierID:  params.SupplierID,
		PurchaseID:  params.PurchaseID,
		Description: desc,
		Amount:      params.Amount,
		DueDate:     params.DueDate,
		Status:      PayablePending,
	}
	if err := s.repo.CreatePayable(ctx, p); err != nil {
		return nil, err
	}

	return p, nil
}

func (s *Service) DeletePayable(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeletePayable(ctx, id)
}

type SettleParams struct {
	ID        uuid.UUID
	AccountID uuid.UUID
	Method    PaymentMethod
}

// Pay settles a pending payable from an account, recording the debit in the
// same transaction.
func (s *Service) Pay(ctx context.Context, params SettleParams) (*Transaction, error) {
	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin payment: %w", err)
	}
	defer tx.Rollback()

	p, err := tx.GetPayableForUpdate(ctx, params.ID)
	if err != nil {
		return nil, err
	}

	if p.Status != PayablePending {
		return nil, ErrInvalidStatus
	}

	if _, err := tx.GetAccount(ctx, params.AccountID); err != nil {
		return nil, err
	}

	now := s.now()

	if err := tx.MarkPayablePaid(ctx, p.ID, now); err != nil {
		return nil, fmt.Errorf("marking payable paid: %w", err)
	}

	txn := &Transaction{
		AccountID:     params.AccountID,
		Amount:        p.Amount,
		Type:          Debit,
		PaymentMethod: params.Method.orDefault(),
		Description:   p.Description,
		PayableID:     &p.ID,
		PurchaseID:    p.PurchaseID,
		OccurredAt:    now,
	}
	if err := tx.InsertTransaction(ctx, txn); err != nil {
		return nil, fmt.Errorf("recording debit: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing payment: %w", err)
	}

	return txn, nil
}

func (s *Service) ListReceivables(ctx context.Context, f Filter) ([]*Receivable, error) {
	if f == FilterPaid {
		return nil, fmt.Errorf("%w: %q", ErrInvalidFilter, f)
	}

	filter, err := s.entryFilter(f)
	if err != nil {
		return nil, err
	}

	return s.repo.ListReceivables(ctx, filter)
}

// CustomerReceivables lists every receivable of a customer by due date.
func (s *Service) CustomerReceivables(ctx context.Context, customerID uuid.UUID) ([]*Receivable, error) {
	return s.repo.ListReceivables(ctx, EntryFilter{CustomerID: &customerID})
}

type ReceivableParams struct {
	CustomerID    *uuid.UUID
	SaleID        *uuid.UUID
	Description   string
	Amount        decimal.Decimal
	DueDate       time.Time
	PaymentMethod PaymentMethod
}

func (s *Service) CreateReceivable(ctx context.Context, params ReceivableParams) (*Receivable, error) {
	desc, err := validateEntry(params.Description, params.Amount, params.DueDate)
	if err != nil {
		return nil, err
	}

	r := &Receivable{
		CustomerID:    params.CustomerID,
		SaleID:        params.SaleID,
		Description:   desc,
		Amount:        params.Amount,
		DueDate:       params.DueDate,
		PaymentMethod: params.PaymentMethod,
		Status:        ReceivablePending,
	}
	if err := s.repo.CreateReceivable(ctx, r); err != nil {
		return nil, err
	}

	return r, nil
}

func (s *Service) DeleteReceivable(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteReceivable(ctx, id)
}

type RescheduleParams struct {
	ID         uuid.UUID
	NewDueDate time.Time
	// Method keeps the current payment method when empty.
	Method PaymentMethod
	Notes  string
	UserID string
}

// Reschedule moves a pending receivable's due date and logs the change.
func (s *Service) Reschedule(ctx context.Context, params RescheduleParams) (*Receivable, error) {
	if params.NewDueDate.IsZero() {
		return nil, ErrDueDateRequired
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin reschedule: %w", err)
	}
	defer tx.Rollback()

	r, err := tx.GetReceivableForUpdate(ctx, params.ID)
	if err != nil {
		return nil, err
	}

	if r.Status != ReceivablePending {
		return nil, ErrInvalidStatus
	}

	log := &ReceivableLog{
		ReceivableID: r.ID,
		UserID:       params.UserID,
		OldDueDate:   r.DueDate,
		NewDueDate:   params.NewDueDate,
		OldMethod:    r.PaymentMethod,
		NewMethod:    r.PaymentMethod,
		Notes:        params.Notes,
	}

	r.DueDate = params.NewDueDate
	if params.Method != "" {
		r.PaymentMethod = params.Method
		log.NewMethod = params.Method
	}

	if err := tx.InsertReceivableLog(ctx, log); err != nil {
		return nil, fmt.Errorf("logging reschedule: %w", err)
	}

	if err := tx.UpdateReceivable(ctx, r); err != nil {
		return nil, fmt.Errorf("updating receivable: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing reschedule: %w", err)
	}

	return r, nil
}

func (s *Service) Logs(ctx context.Context, receivableID uuid.UUID) ([]*ReceivableLog, error) {
	return s.repo.ListReceivableLogs(ctx, receivableID)
}

// Receive settles a pending receivable into an account, recording the
// credit in the same transaction.
func (s *Service) Receive(ctx context.Context, params SettleParams) (*Transaction, error) {
	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin receipt: %w", err)
	}
	defer tx.Rollback()

	r, err := tx.GetReceivableForUpdate(ctx, params.ID)
	if err != nil {
		return nil, err
	}

	if r.Status != ReceivablePending {
		return nil, ErrInvalidStatus
	}

	if _, err := tx.GetAccount(ctx, params.AccountID); err != nil {
		return nil, err
	}

	now := s.now()
	method := params.Method
	if method == "" {
		method = r.PaymentMethod.orDefault()
	}

	r.Status = ReceivableReceived
	r.ReceivedDate = &now
	r.PaymentMethod = method

	if err := tx.UpdateReceivable(ctx, r); err != nil {
		return nil, fmt.Errorf("marking receivable received: %w", err)
	}

	txn := &Transaction{
		AccountID:     params.AccountID,
		Amount:        r.Amount,
		Type:          Credit,
		PaymentMethod: method,
		Description:   r.Description,
		ReceivableID:  &r.ID,
		SaleID:        r.SaleID,
		OccurredAt:    now,
	}
	if err := tx.InsertTransaction(ctx, txn); err != nil {
		return nil, fmt.Errorf("recording credit: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing receipt: %w", err)
	}

	return txn, nil
}

func (s *Service) CreateAccount(ctx context.Context, name, accountType string) (*Account, error) {
	a := &Account{Name: strings.TrimSpace(name), Type: strings.TrimSpace(accountType)}
	if a.Name == "" {
		return nil, ErrNameRequired
	}

	if a.Type == "" {
		a.Type = "cash"
	}

	if err := s.repo.CreateAccount(ctx, a); err != nil {
		return nil, err
	}

	return a, nil
}

func (s *Service) Accounts(ctx context.Context) ([]*Account, error) {
	return s.repo.ListAccountsWithBalances(ctx)
}

type TransferParams struct {
	FromAccountID uuid.UUID
	ToAccountID   uuid.UUID
	Amount        decimal.Decimal
	Notes         string
}

func (s *Service) Transfer(ctx context.Context, params TransferParams) (*Transfer, error) {
	if params.FromAccountID == params.ToAccountID {
		return nil, ErrSameAccount
	}

	if !params.Amount.IsPositive() {
		return nil, ErrInvalidAmount
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin transfer: %w", err)
	}
	defer tx.Rollback()

	for _, id := range []uuid.UUID{params.FromAccountID, params.ToAccountID} {
		if _, err := tx.GetAccount(ctx, id); err != nil {
			return nil, err
		}
	}

	t := &Transfer{
		FromAccountID: params.FromAccountID,
		ToAccountID:   params.ToAccountID,
		Amount:        params.Amount,
		Notes:         params.Notes,
		OccurredAt:    s.now(),
	}
	if err := tx.InsertTransfer(ctx, t); err != nil {
		return nil, fmt.Errorf("creating transfer: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing transfer: %w", err)
	}

	return t, nil
}

// Report collects payables paid and receivables received between start and
// end, both inclusive by day.
func (s *Service) Report(ctx context.Context, start, end time.Time) (*Report, error) {
	start, end = startOfDay(start), startOfDay(end)
	if end.Before(start) {
		return nil, ErrInvalidRange
	}

	until := end.AddDate(0, 0, 1)
	filter := EntryFilter{Pending: new(false), SettledFrom: &start, SettledUntil: &until}

	payments, err := s.repo.ListPayables(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("listing payments: %w", err)
	}

	receipts, err := s.repo.ListReceivables(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("listing receipts: %w", err)
	}

	report := &Report{
		Start:         start,
		End:           end,
		Payments:      payments,
		Receipts:      receipts,
		TotalPaid:     decimal.Zero,
		TotalReceived: decimal.Zero,
	}

	for _, p := range payments {
		report.TotalPaid = report.TotalPaid.Add(p.Amount)
	}

	for _, r := range receipts {
		report.TotalReceived = report.TotalReceived.Add(r.Amount)
	}

	return report, nil
}

func validateEntry(description string, amount decimal.Decimal, due time.Time) (string, error) {
	desc := strings.TrimSpace(description)
	if desc == "" {
		return "", ErrDescriptionRequired
	}

	if !amount.IsPositive() {
		return "", ErrInvalidAmount
	}

	if due.IsZero() {
		return "", ErrDueDateRequired
	}

	return desc, nil
}

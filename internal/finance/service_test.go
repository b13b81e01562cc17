package finance_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/fornada/fornada/internal/finance"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func today() time.Time {
	y, m, d := time.Now().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func TestParseFilter(t *testing.T) {
	tests := []struct {
		in      string
		want    finance.Filter
		wantErr bool
	}{
		{in: "", want: finance.FilterAll},
		{in: "all", want: finance.FilterAll},
		{in: "overdue", want: finance.FilterOverdue},
		{in: "received", want: finance.FilterReceived},
		{in: "late", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := finance.ParseFilter(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, finance.ErrInvalidFilter)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOverdue(t *testing.T) {
	now := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		p    finance.Payable
		want bool
	}{
		{name: "PastDue", p: finance.Payable{Status: finance.PayablePending, DueDate: now.AddDate(0, 0, -1)}, want: true},
		{name: "DueToday", p: finance.Payable{Status: finance.PayablePending, DueDate: time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)}},
		{name: "Paid", p: finance.Payable{Status: finance.PayablePaid, DueDate: now.AddDate(0, -1, 0)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.p.Overdue(now))
		})
	}
}

func TestService_ListPayables(t *testing.T) {
	tests := []struct {
		name    string
		filter  finance.Filter
		check   func(t *testing.T, f finance.EntryFilter)
		wantErr bool
	}{
		{
			name:   "All",
			filter: finance.FilterAll,
			check: func(t *testing.T, f finance.EntryFilter) {
				assert.Equal(t, finance.EntryFilter{}, f)
			},
		},
		{
			name:   "Pending",
			filter: finance.FilterPending,
			check: func(t *testing.T, f finance.EntryFilter) {
				require.NotNil(t, f.Pending)
				assert.True(t, *f.Pending)
				assert.Nil(t, f.DueBefore)
			},
		},
		{
			name:   "Overdue",
			filter: finance.FilterOverdue,
			check: func(t *testing.T, f finance.EntryFilter) {
				require.NotNil(t, f.Pending)
				assert.True(t, *f.Pending)
				require.NotNil(t, f.DueBefore)
				assert.True(t, today().Equal(*f.DueBefore))
			},
		},
		{
			name:   "Paid",
			filter: finance.FilterPaid,
			check: func(t *testing.T, f finance.EntryFilter) {
				require.NotNil(t, f.Pending)
				assert.False(t, *f.Pending)
			},
		},
		{name: "ReceivedIsNotAPayableFilter", filter: finance.FilterReceived, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := finance.NewMockRepository(ctrl)

			if tt.check != nil {
				repo.EXPECT().
					ListPayables(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, f finance.EntryFilter) ([]*finance.Payable, error) {
						tt.check(t, f)
						return nil, nil
					})
			}

			_, err := finance.NewService(repo).ListPayables(context.Background(), tt.filter)
			if tt.wantErr {
				assert.ErrorIs(t, err, finance.ErrInvalidFilter)
				return
			}

			require.NoError(t, err)
		})
	}
}

func TestService_CreatePayable(t *testing.T) {
	due := today().AddDate(0, 0, 30)

	tests := []struct {
		name    string
		params  finance.PayableParams
		wantErr error
	}{
		{name: "Valid", params: finance.PayableParams{Description: "Farinha", Amount: dec("359.60"), DueDate: due}},
		{name: "NoDescription", params: finance.PayableParams{Description: " ", Amount: dec("1"), DueDate: due}, wantErr: finance.ErrDescriptionRequired},
		{name: "ZeroAmount", params: finance.PayableParams{Description: "x", DueDate: due}, wantErr: finance.ErrInvalidAmount},
		{name: "NoDueDate", params: finance.PayableParams{Description: "x", Amount: dec("1")}, wantErr: finance.ErrDueDateRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := finance.NewMockRepository(ctrl)

			if tt.wantErr == nil {
				repo.EXPECT().CreatePayable(gomock.Any(), gomock.Any()).Return(nil)
			}

			p, err := finance.NewService(repo).CreatePayable(context.Background(), tt.params)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, finance.PayablePending, p.Status)
		})
	}
}

func TestService_Pay(t *testing.T) {
	payableID, accountID, purchaseID := uuid.New(), uuid.New(), uuid.New()

	pending := func() *finance.Payable {
		return &finance.Payable{
			ID:          payableID,
			PurchaseID:  &purchaseID,
			Description: "NF 4521",
			Amount:      dec("389.60"),
			Status:      finance.PayablePending,
		}
	}

	type testCase struct {
		name      string
		setupMock func(repo *finance.MockRepository, tx *finance.MockTx)
		wantErr   error
	}

	tests := []testCase{
		{
			name: "RecordsDebit",
			setupMock: func(repo *finance.MockRepository, tx *finance.MockTx) {
				repo.EXPECT().BeginTx(gomock.Any()).Return(tx, nil)
				tx.EXPECT().GetPayableForUpdate(gomock.Any(), payableID).Return(pending(), nil)
				tx.EXPECT().GetAccount(gomock.Any(), accountID).Return(&finance.Account{ID: accountID}, nil)
				tx.EXPECT().MarkPayablePaid(gomock.Any(), payableID, gomock.Any()).Return(nil)
				tx.EXPECT().
					InsertTransaction(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, txn *finance.Transaction) error {
						assert.Equal(t, finance.Debit, txn.Type)
						assert.True(t, dec("389.60").Equal(txn.Amount))
						assert.Equal(t, finance.MethodPix, txn.PaymentMethod)
						assert.Equal(t, &payableID, txn.PayableID)
						assert.Equal(t, &purchaseID, txn.PurchaseID)
						return nil
					})
				tx.EXPECT().Commit().Return(nil)
				tx.EXPECT().Rollback().Return(nil)
			},
		},
		{
			name: "AlreadyPaid",
			setupMock: func(repo *finance.MockRepository, tx *finance.MockTx) {
				p := pending()
				p.Status = finance.PayablePaid

				repo.EXPECT().BeginTx(gomock.Any()).Return(tx, nil)
				tx.EXPECT().GetPayableForUpdate(gomock.Any(), payableID).Return(p, nil)
				tx.EXPECT().Rollback().Return(nil)
			},
			wantErr: finance.ErrInvalidStatus,
		},
		{
			name: "UnknownAccount",
			setupMock: func(repo *finance.MockRepository, tx *finance.MockTx) {
				repo.EXPECT().BeginTx(gomock.Any()).Return(tx, nil)
				tx.EXPECT().GetPayableForUpdate(gomock.Any(), payableID).Return(pending(), nil)
				tx.EXPECT().GetAccount(gomock.Any(), accountID).Return(nil, finance.ErrAccountNotFound)
				tx.EXPECT().Rollback().Return(nil)
			},
			wantErr: finance.ErrAccountNotFound,
		},
		{
			name: "TransactionFails",
			setupMock: func(repo *finance.MockRepository, tx *finance.MockTx) {
				repo.EXPECT().BeginTx(gomock.Any()).Return(tx, nil)
				tx.EXPECT().GetPayableForUpdate(gomock.Any(), payableID).Return(pending(), nil)
				tx.EXPECT().GetAccount(gomock.Any(), accountID).Return(&finance.Account{ID: accountID}, nil)
				tx.EXPECT().MarkPayablePaid(gomock.Any(), payableID, gomock.Any()).Return(nil)
				tx.EXPECT().InsertTransaction(gomock.Any(), gomock.Any()).Return(errors.New("db error"))
				tx.EXPECT().Rollback().Return(nil)
			},
			wantErr: errors.New("recording debit: db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := finance.NewMockRepository(ctrl)
			tx := finance.NewMockTx(ctrl)
			tt.setupMock(repo, tx)

			_, err := finance.NewService(repo).Pay(context.Background(), finance.SettleParams{
				ID:        payableID,
				AccountID: accountID,
				Method:    finance.MethodPix,
			})
			if tt.wantErr != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.wantErr.Error(), err.Error())

				return
			}

			require.NoError(t, err)
		})
	}
}

func TestService_Reschedule(t *testing.T) {
	id := uuid.New()
	oldDue := today().AddDate(0, 0, -3)
	newDue := today().AddDate(0, 0, 7)

	t.Run("LogsChange", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := finance.NewMockRepository(ctrl)
		tx := finance.NewMockTx(ctrl)

		repo.EXPECT().BeginTx(gomock.Any()).Return(tx, nil)
		tx.EXPECT().GetReceivableForUpdate(gomock.Any(), id).Return(&finance.Receivable{
			ID:            id,
			DueDate:       oldDue,
			PaymentMethod: finance.MethodBoleto,
			Status:        finance.ReceivablePending,
		}, nil)
		tx.EXPECT().
			InsertReceivableLog(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, l *finance.ReceivableLog) error {
				assert.Equal(t, id, l.ReceivableID)
				assert.Equal(t, "user-1", l.UserID)
				assert.Equal(t, oldDue, l.OldDueDate)
				assert.Equal(t, newDue, l.NewDueDate)
				assert.Equal(t, finance.MethodBoleto, l.OldMethod)
				assert.Equal(t, finance.MethodPix, l.NewMethod)
				assert.Equal(t, "cliente pediu", l.Notes)
				return nil
			})
		tx.EXPECT().
			UpdateReceivable(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, r *finance.Receivable) error {
				assert.Equal(t, newDue, r.DueDate)
				assert.Equal(t, finance.MethodPix, r.PaymentMethod)
				return nil
			})
		tx.EXPECT().Commit().Return(nil)
		tx.EXPECT().Rollback().Return(nil)

		_, err := finance.NewService(repo).Reschedule(context.Background(), finance.RescheduleParams{
			ID:         id,
			NewDueDate: newDue,
			Method:     finance.MethodPix,
			Notes:      "cliente pediu",
			UserID:     "user-1",
		})
		require.NoError(t, err)
	})

	t.Run("KeepsMethod", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := finance.NewMockRepository(ctrl)
		tx := finance.NewMockTx(ctrl)

		repo.EXPECT().BeginTx(gomock.Any()).Return(tx, nil)
		tx.EXPECT().GetReceivableForUpdate(gomock.Any(), id).Return(&finance.Receivable{
			ID: id, DueDate: oldDue, PaymentMethod: finance.MethodCash, Status: finance.ReceivablePending,
		}, nil)
		tx.EXPECT().
			InsertReceivableLog(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, l *finance.ReceivableLog) error {
				assert.Equal(t, finance.MethodCash, l.NewMethod)
				return nil
			})
		tx.EXPECT().UpdateReceivable(gomock.Any(), gomock.Any()).Return(nil)
		tx.EXPECT().Commit().Return(nil)
		tx.EXPECT().Rollback().Return(nil)

		r, err := finance.NewService(repo).Reschedule(context.Background(), finance.RescheduleParams{ID: id, NewDueDate: newDue})
		require.NoError(t, err)
		assert.Equal(t, finance.MethodCash, r.PaymentMethod)
	})

	t.Run("AlreadyReceived", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := finance.NewMockRepository(ctrl)
		tx := finance.NewMockTx(ctrl)

		repo.EXPECT().BeginTx(gomock.Any()).Return(tx, nil)
		tx.EXPECT().GetReceivableForUpdate(gomock.Any(), id).Return(&finance.Receivable{ID: id, Status: finance.ReceivableReceived}, nil)
		tx.EXPECT().Rollback().Return(nil)

		_, err := finance.NewService(repo).Reschedule(context.Background(), finance.RescheduleParams{ID: id, NewDueDate: newDue})
		assert.ErrorIs(t, err, finance.ErrInvalidStatus)
	})

	t.Run("NoDueDate", func(t *testing.T) {
		_, err := finance.NewService(nil).Reschedule(context.Background(), finance.RescheduleParams{ID: id})
		assert.ErrorIs(t, err, finance.ErrDueDateRequired)
	})
}

func TestService_Receive(t *testing.T) {
	id, accountID, saleID := uuid.New(), uuid.New(), uuid.New()

	ctrl := gomock.NewController(t)
	repo := finance.NewMockRepository(ctrl)
	tx := finance.NewMockTx(ctrl)

	repo.EXPECT().BeginTx(gomock.Any()).Return(tx, nil)
	tx.EXPECT().GetReceivableForUpdate(gomock.Any(), id).Return(&finance.Receivable{
		ID:            id,
		SaleID:        &saleID,
		Amount:        dec("120"),
		PaymentMethod: finance.MethodCard,
		Status:        finance.ReceivablePending,
	}, nil)
	tx.EXPECT().GetAccount(gomock.Any(), accountID).Return(&finance.Account{ID: accountID}, nil)
	tx.EXPECT().
		UpdateReceivable(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, r *finance.Receivable) error {
			assert.Equal(t, finance.ReceivableReceived, r.Status)
			assert.NotNil(t, r.ReceivedDate)
			return nil
		})
	tx.EXPECT().
		InsertTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, txn *finance.Transaction) error {
			assert.Equal(t, finance.Credit, txn.Type)
			assert.Equal(t, finance.MethodCard, txn.PaymentMethod)
			assert.Equal(t, &saleID, txn.SaleID)
			assert.Equal(t, &id, txn.ReceivableID)
			return nil
		})
	tx.EXPECT().Commit().Return(nil)
	tx.EXPECT().Rollback().Return(nil)

	txn, err := finance.NewService(repo).Receive(context.Background(), finance.SettleParams{ID: id, AccountID: accountID})
	require.NoError(t, err)
	assert.True(t, dec("120").Equal(txn.Amount))
}

func TestService_Transfer(t *testing.T) {
	from, to := uuid.New(), uuid.New()

	tests := []struct {
		name      string
		params    finance.TransferParams
		setupMock func(repo *finance.MockRepository, tx *finance.MockTx)
		wantErr   error
	}{
		{
			name:   "Success",
			params: finance.TransferParams{FromAccountID: from, ToAccountID: to, Amount: dec("500")},
			setupMock: func(repo *finance.MockRepository, tx *finance.MockTx) {
				repo.EXPECT().BeginTx(gomock.Any()).Return(tx, nil)
				tx.EXPECT().GetAccount(gomock.Any(), from).Return(&finance.Account{ID: from}, nil)
				tx.EXPECT().GetAccount(gomock.Any(), to).Return(&finance.Account{ID: to}, nil)
				tx.EXPECT().InsertTransfer(gomock.Any(), gomock.Any()).Return(nil)
				tx.EXPECT().Commit().Return(nil)
				tx.EXPECT().Rollback().Return(nil)
			},
		},
		{
			name:    "SameAccount",
			params:  finance.TransferParams{FromAccountID: from, ToAccountID: from, Amount: dec("1")},
			wantErr: finance.ErrSameAccount,
		},
		{
			name:    "NonPositive",
			params:  finance.TransferParams{FromAccountID: from, ToAccountID: to, Amount: dec("-5")},
			wantErr: finance.ErrInvalidAmount,
		},
		{
			name:   "MissingAccount",
			params: finance.TransferParams{FromAccountID: from, ToAccountID: to, Amount: dec("1")},
			setupMock: func(repo *finance.MockRepository, tx *finance.MockTx) {
				repo.EXPECT().BeginTx(gomock.Any()).Return(tx, nil)
				tx.EXPECT().GetAccount(gomock.Any(), from).Return(&finance.Account{ID: from}, nil)
				tx.EXPECT().GetAccount(gomock.Any(), to).Return(nil, finance.ErrAccountNotFound)
				tx.EXPECT().Rollback().Return(nil)
			},
			wantErr: finance.ErrAccountNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := finance.NewMockRepository(ctrl)
			tx := finance.NewMockTx(ctrl)

			if tt.setupMock != nil {
				tt.setupMock(repo, tx)
			}

			got, err := finance.NewService(repo).Transfer(context.Background(), tt.params)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.True(t, dec("500").Equal(got.Amount))
		})
	}
}

func TestService_Report(t *testing.T) {
	start := time.Date(2026, 3, 1, 9, 30, 0, 0, time.Local)
	end := time.Date(2026, 3, 31, 0, 0, 0, 0, time.Local)

	ctrl := gomock.NewController(t)
	repo := finance.NewMockRepository(ctrl)

	checkFilter := func(f finance.EntryFilter) {
		require.NotNil(t, f.Pending)
		assert.False(t, *f.Pending)
		assert.True(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.Local).Equal(*f.SettledFrom))
		assert.True(t, time.Date(2026, 4, 1, 0, 0, 0, 0, time.Local).Equal(*f.SettledUntil))
	}

	repo.EXPECT().
		ListPayables(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, f finance.EntryFilter) ([]*finance.Payable, error) {
			checkFilter(f)
			return []*finance.Payable{{Amount: dec("389.60")}, {Amount: dec("110.40")}}, nil
		})
	repo.EXPECT().
		ListReceivables(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, f finance.EntryFilter) ([]*finance.Receivable, error) {
			checkFilter(f)
			return []*finance.Receivable{{Amount: dec("1200")}}, nil
		})

	report, err := finance.NewService(repo).Report(context.Background(), start, end)
	require.NoError(t, err)

	assert.True(t, dec("500").Equal(report.TotalPaid))
	assert.True(t, dec("1200").Equal(report.TotalReceived))
	assert.True(t, dec("700").Equal(report.Net()))

	_, err = finance.NewService(repo).Report(context.Background(), end, start)
	assert.ErrorIs(t, err, finance.ErrInvalidRange)
}

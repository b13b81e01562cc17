package dashboard_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/fornada/fornada/internal/dashboard"
)

func TestPeriod_Window(t *testing.T) {
	now := time.Date(2024, time.March, 14, 17, 30, 0, 0, time.UTC)
	today := time.Date(2024, time.March, 14, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		period    dashboard.Period
		wantStart time.Time
		wantErr   error
	}{
		{name: "SevenDays", period: dashboard.Period7Days, wantStart: time.Date(2024, time.March, 8, 0, 0, 0, 0, time.UTC)},
		{name: "ThirtyDays", period: dashboard.Period30Days, wantStart: time.Date(2024, time.February, 14, 0, 0, 0, 0, time.UTC)},
		{name: "ThisMonth", period: dashboard.PeriodThisMonth, wantStart: time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)},
		{name: "Unknown", period: "year", wantErr: dashboard.ErrInvalidPeriod},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end, err := tt.period.Window(now)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantStart, start)
			assert.Equal(t, today, end)
		})
	}
}

func TestService_SalesByPeriod_Invalid(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := dashboard.NewMockRepository(ctrl)

	_, err := dashboard.NewService(repo).SalesByPeriod(context.Background(), "")
	assert.ErrorIs(t, err, dashboard.ErrInvalidPeriod)
}

func TestService_TopProducts_Limit(t *testing.T) {
	tests := []struct {
		name  string
		limit int
		want  int
	}{
		{name: "Default", limit: 0, want: 5},
		{name: "Negative", limit: -3, want: 5},
		{name: "Given", limit: 12, want: 12},
		{name: "Capped", limit: 500, want: 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := dashboard.NewMockRepository(ctrl)

			repo.EXPECT().TopProducts(gomock.Any(), tt.want).Return(nil, nil)
			repo.EXPECT().TopCustomers(gomock.Any(), tt.want).Return(nil, nil)

			svc := dashboard.NewService(repo)

			_, err := svc.TopProducts(context.Background(), tt.limit)
			require.NoError(t, err)

			_, err = svc.TopCustomers(context.Background(), tt.limit)
			require.NoError(t, err)
		})
	}
}

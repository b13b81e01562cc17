package dashboard

import (
	"context"
	"time"
)

const (
	defaultLimit = 5
	maxLimit     = 50
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=dashboard
type Repository interface {
	Stats(ctx context.Context, since time.Time) (*Stats, error)
	// DailySales returns one row per day in [start, end], days without sales included.
	DailySales(ctx context.Context, start, end time.Time) ([]*DailySales, error)
	TopProducts(ctx context.Context, limit int) ([]*ProductRank, error)
	TopCustomers(ctx context.Context, limit int) ([]*CustomerRank, error)
}

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

func (s *Service) Stats(ctx context.Context) (*Stats, error) {
	return s.repo.Stats(ctx, s.now().AddDate(0, 0, -30))
}

func (s *Service) SalesByPeriod(ctx context.Context, period Period) ([]*DailySales, error) {
	start, end, err := period.Window(s.now())
	if err != nil {
		return nil, err
	}

	return s.repo.DailySales(ctx, start, end)
}

func (s *Service) TopProducts(ctx context.Context, limit int) ([]*ProductRank, error) {
	return s.repo.TopProducts(ctx, clampLimit(limit))
}

func (s *Service) TopCustomers(ctx context.Context, limit int) ([]*CustomerRank, error) {
	return s.repo.TopCustomers(ctx, clampLimit(limit))
}

func clampLimit(limit int) int {
	if limit <= 0 {
		return defaultLimit
	}

	return min(limit, maxLimit)
}

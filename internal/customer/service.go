package customer

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/fornada/fornada/internal/finance"
	"github.com/fornada/fornada/internal/sale"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=customer
type Repository interface {
	// ListCustomers filters by a case-insensitive substring of the name
	// when search is not empty.
	ListCustomers(ctx context.Context, search string) ([]*Customer, error)
	GetCustomer(ctx context.Context, id uuid.UUID) (*Customer, error)
	CreateCustomer(ctx context.Context, c *Customer) error
	UpdateCustomer(ctx context.Context, c *Customer) error
	DeleteCustomer(ctx context.Context, id uuid.UUID) error
}

type SalesLister interface {
	List(ctx context.Context, filter sale.ListFilter) ([]*sale.Sale, error)
}

type ReceivablesLister interface {
	CustomerReceivables(ctx context.Context, customerID uuid.UUID) ([]*finance.Receivable, error)
}

type Service struct {
	repo        Repository
	sales       SalesLister
	receivables ReceivablesLister
}

func NewService(repo Repository, sales SalesLister, receivables ReceivablesLister) *Service {
	return &Service{repo: repo, sales: sales, receivables: receivables}
}

type Params struct {
	Name    string
	Email   string
	Phone   string
	Address string
}

func (p Params) customer() (*Customer, error) {
	c := &Customer{
		Name:    strings.TrimSpace(p.Name),
		Email:   strings.TrimSpace(p.Email),
		Phone:   strings.TrimSpace(p.Phone),
		Address: strings.TrimSpace(p.Address),
	}
	if c.Name == "" {
		return nil, ErrNameRequired
	}

	return c, nil
}

func (s *Service) List(ctx context.Context, search string) ([]*Customer, error) {
	return s.repo.ListCustomers(ctx, strings.TrimSpace(search))
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Customer, error) {
	return s.repo.GetCustomer(ctx, id)
}

func (s *Service) Details(ctx context.Context, id uuid.UUID) (*Details, error) {
	c, err := s.repo.GetCustomer(ctx, id)
	if err != nil {
		return nil, err
	}

	sales, err := s.sales.List(ctx, sale.ListFilter{CustomerID: &id})
	if err != nil {
		return nil, fmt.Errorf("listing customer sales: %w", err)
	}

	receivables, err := s.receivables.CustomerReceivables(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("listing customer receivables: %w", err)
	}

	return &Details{Customer: c, Sales: sales, Receivables: receivables}, nil
}

func (s *Service) Create(ctx context.Context, params Params) (*Customer, error) {
	c, err := params.customer()
	if err != nil {
		return nil, err
	}

	if err := s.repo.CreateCustomer(ctx, c); err != nil {
		return nil, err
	}

	return c, nil
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, params Params) (*Customer, error) {
	c, err := params.customer()
	if err != nil {
		return nil, err
	}

	c.ID = id
	if err := s.repo.UpdateCustomer(ctx, c); err != nil {
		return nil, err
	}

	return c, nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteCustomer(ctx, id)
}

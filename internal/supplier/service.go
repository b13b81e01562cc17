package supplier

import (
	"context"
	"strings"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=supplier
type Repository interface {
	ListSuppliers(ctx context.Context) ([]*Supplier, error)
	GetSupplier(ctx context.Context, id uuid.UUID) (*Supplier, error)
	CreateSupplier(ctx context.Context, s *Supplier) error
	UpdateSupplier(ctx context.Context, s *Supplier) error
	DeleteSupplier(ctx context.Context, id uuid.UUID) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	Name    string
	CNPJ    string
	Email   string
	Phone   string
	Address string
}

func (s *Service) List(ctx context.Context) ([]*Supplier, error) {
	return s.repo.ListSuppliers(ctx)
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Supplier, error) {
	return s.repo.GetSupplier(ctx, id)
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Supplier, error) {
	sup := &Supplier{
		Name:    strings.TrimSpace(params.Name),
		CNPJ:    strings.TrimSpace(params.CNPJ),
		Email:   params.Email,
		Phone:   params.Phone,
		Address: params.Address,
	}
	if sup.Name == "" {
		sup.Name = DefaultName
	}

	if err := s.repo.CreateSupplier(ctx, sup); err != nil {
		return nil, err
	}

	return sup, nil
}

func (s *Service) Update(ctx context.Context, sup *Supplier) error {
	return s.repo.UpdateSupplier(ctx, sup)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteSupplier(ctx, id)
}

package supplier

import (
	"time"

	"github.com/google/uuid"

	"github.com/fornada/fornada/internal/supplier"
)

type supplierResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CNPJ      string    `json:"cnpj,omitempty"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Address   string    `json:"address,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toResponse(s *supplier.Supplier) supplierResponse {
	return supplierResponse{
		ID:        s.ID,
		Name:      s.Name,
		CNPJ:      s.CNPJ,
		Email:     s.Email,
		Phone:     s.Phone,
		Address:   s.Address,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

func toResponseList(suppliers []*supplier.Supplier) []supplierResponse {
	resp := make([]supplierResponse, len(suppliers))
	for i, s := range suppliers {
		resp[i] = toResponse(s)
	}

	return resp
}

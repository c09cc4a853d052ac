package company

import "context"

type CompanyResponse struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Address *string `json:"address,omitempty"`
	Phone   *string `json:"phone,omitempty"`
}

type CompanyService interface {
	GetMyCompany(ctx context.Context) (CompanyResponse, error)
}

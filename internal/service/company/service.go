package company

import (
	"context"
	"errors"

	"github.com/buildsite/worksite-backend-go/internal/domain/company"
	"github.com/go-chi/jwtauth/v5"
)

type CompanyServiceImpl struct {
	companyRepo company.CompanyRepository
}

func NewCompanyService(companyRepo company.CompanyRepository) company.CompanyService {
	return &CompanyServiceImpl{companyRepo: companyRepo}
}

func (s *CompanyServiceImpl) GetMyCompany(ctx context.Context) (company.CompanyResponse, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return company.CompanyResponse{}, err
	}

	companyID, ok := claims["company_id"].(string)
	if !ok || companyID == "" {
		return company.CompanyResponse{}, errors.New("company_id claim is missing or invalid")
	}

	c, err := s.companyRepo.GetByID(ctx, companyID)
	if err != nil {
		return company.CompanyResponse{}, err
	}

	return company.CompanyResponse{
		ID:      c.ID,
		Name:    c.Name,
		Address: c.Address,
		Phone:   c.Phone,
	}, nil
}

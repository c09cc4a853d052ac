package project

import (
	"time"

	"github.com/buildsite/worksite-backend-go/internal/pkg/validator"
)

// Project is one work site (genba) a company runs crews on.
type Project struct {
	ID         string
	CompanyID  string
	Name       string
	ClientName *string
	Address    *string
	IsActive   bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type CreateProjectRequest struct {
	Name       string  `json:"name"`
	ClientName *string `json:"client_name,omitempty"`
	Address    *string `json:"address,omitempty"`
}

func (r *CreateProjectRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ProjectResponse struct {
	ID         string  `json:"id"`
	CompanyID  string  `json:"company_id"`
	Name       string  `json:"name"`
	ClientName *string `json:"client_name,omitempty"`
	Address    *string `json:"address,omitempty"`
	IsActive   bool    `json:"is_active"`
}

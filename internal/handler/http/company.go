package http

import (
	"net/http"

	"github.com/buildsite/worksite-backend-go/internal/domain/company"
	"github.com/buildsite/worksite-backend-go/internal/handler/http/response"
)

type CompanyHandler interface {
	GetMyCompany(w http.ResponseWriter, r *http.Request)
}

type companyHandlerImpl struct {
	companyService company.CompanyService
}

func NewCompanyHandler(companyService company.CompanyService) CompanyHandler {
	return &companyHandlerImpl{companyService: companyService}
}

func (h *companyHandlerImpl) GetMyCompany(w http.ResponseWriter, r *http.Request) {
	result, err := h.companyService.GetMyCompany(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

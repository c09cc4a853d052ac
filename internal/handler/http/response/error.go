package response

import (
	"errors"
	"net/http"

	"github.com/buildsite/worksite-backend-go/internal/domain/auth"
	"github.com/buildsite/worksite-backend-go/internal/domain/company"
	"github.com/buildsite/worksite-backend-go/internal/domain/master/project"
	"github.com/buildsite/worksite-backend-go/internal/domain/master/worker"
	"github.com/buildsite/worksite-backend-go/internal/domain/payroll"
	"github.com/buildsite/worksite-backend-go/internal/domain/worksession"
	"github.com/buildsite/worksite-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or missing access token")
	case errors.Is(err, auth.ErrMissingCompany):
		Unauthorized(w, "Company scope missing from token")

	// Payroll configuration errors: these are fatal to the calculation and
	// must surface, never be defaulted away.
	case errors.Is(err, payroll.ErrPayrollSettingsNotFound):
		NotFound(w, "Payroll settings not configured for this company")
	case errors.Is(err, payroll.ErrInvalidClosingDay):
		BadRequest(w, "Closing day must be between 1 and 31", nil)
	case errors.Is(err, payroll.ErrInvalidPayDay):
		BadRequest(w, "Pay day must be between 1 and 31", nil)
	case errors.Is(err, payroll.ErrClosingDayEqualsPayDay):
		BadRequest(w, "Closing day and pay day must differ", nil)
	case errors.Is(err, payroll.ErrInvalidMonthsBack):
		BadRequest(w, "Months back must be at least 1", nil)

	// Work session domain errors
	case errors.Is(err, worksession.ErrWorkSessionNotFound):
		NotFound(w, "Work session not found")

	// Master data domain errors
	case errors.Is(err, worker.ErrWorkerNotFound):
		NotFound(w, "Worker not found")
	case errors.Is(err, project.ErrProjectNotFound):
		NotFound(w, "Project not found")

	// Company domain errors
	case errors.Is(err, company.ErrCompanyNotFound):
		NotFound(w, "Company not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}

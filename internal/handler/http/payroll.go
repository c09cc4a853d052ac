package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/buildsite/worksite-backend-go/internal/domain/payroll"
	"github.com/buildsite/worksite-backend-go/internal/handler/http/response"
	"github.com/buildsite/worksite-backend-go/internal/pkg/validator"
)

const (
	defaultPeriodsBack = 6
	maxPeriodsBack     = 24
)

type PayrollHandler interface {
	GetSettings(w http.ResponseWriter, r *http.Request)
	UpdateSettings(w http.ResponseWriter, r *http.Request)
	GetPeriod(w http.ResponseWriter, r *http.Request)
	ListPeriods(w http.ResponseWriter, r *http.Request)
	GetSummaries(w http.ResponseWriter, r *http.Request)
}

type payrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &payrollHandlerImpl{payrollService: payrollService}
}

// referenceDate resolves the optional "date" query param. An absent param
// means "today"; a malformed one is rejected. The settlement engine itself
// never defaults, this leniency exists only at the HTTP edge.
func referenceDate(r *http.Request) (time.Time, bool) {
	raw := r.URL.Query().Get("date")
	if raw == "" {
		return time.Now().UTC(), true
	}
	return validator.IsValidDate(raw)
}

// ========== SETTINGS ==========

func (h *payrollHandlerImpl) GetSettings(w http.ResponseWriter, r *http.Request) {
	result, err := h.payrollService.GetSettings(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *payrollHandlerImpl) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var req payroll.UpdatePayrollSettingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.payrollService.UpdateSettings(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ========== PERIODS ==========

func (h *payrollHandlerImpl) GetPeriod(w http.ResponseWriter, r *http.Request) {
	ref, ok := referenceDate(r)
	if !ok {
		response.BadRequest(w, "Invalid date, expected YYYY-MM-DD", nil)
		return
	}

	result, err := h.payrollService.GetPeriod(r.Context(), ref)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *payrollHandlerImpl) ListPeriods(w http.ResponseWriter, r *http.Request) {
	months := defaultPeriodsBack
	if raw := r.URL.Query().Get("months"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			response.BadRequest(w, "Invalid months, expected a positive integer", nil)
			return
		}
		months = parsed
	}
	if months > maxPeriodsBack {
		months = maxPeriodsBack
	}

	result, err := h.payrollService.ListPeriods(r.Context(), months)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ========== SUMMARIES ==========

func (h *payrollHandlerImpl) GetSummaries(w http.ResponseWriter, r *http.Request) {
	ref, ok := referenceDate(r)
	if !ok {
		response.BadRequest(w, "Invalid date, expected YYYY-MM-DD", nil)
		return
	}

	result, err := h.payrollService.GetSummaries(r.Context(), ref)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

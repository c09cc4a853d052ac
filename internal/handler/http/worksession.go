package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/buildsite/worksite-backend-go/internal/domain/worksession"
	"github.com/buildsite/worksite-backend-go/internal/handler/http/response"
	"github.com/buildsite/worksite-backend-go/internal/pkg/validator"
	"github.com/go-chi/chi/v5"
)

type WorkSessionHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type workSessionHandlerImpl struct {
	sessionService worksession.WorkSessionService
}

func NewWorkSessionHandler(sessionService worksession.WorkSessionService) WorkSessionHandler {
	return &workSessionHandlerImpl{sessionService: sessionService}
}

func (h *workSessionHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req worksession.CreateWorkSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode work session body", "error", err)
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.sessionService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Work session recorded", result)
}

func (h *workSessionHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Work session ID is required", nil)
		return
	}

	result, err := h.sessionService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *workSessionHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	start, ok := validator.IsValidDate(r.URL.Query().Get("start"))
	if !ok {
		response.BadRequest(w, "Invalid start date, expected YYYY-MM-DD", nil)
		return
	}
	end, ok := validator.IsValidDate(r.URL.Query().Get("end"))
	if !ok {
		response.BadRequest(w, "Invalid end date, expected YYYY-MM-DD", nil)
		return
	}
	if end.Before(start) {
		response.BadRequest(w, "End date must not precede start date", nil)
		return
	}

	result, err := h.sessionService.ListByRange(r.Context(), start, end)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *workSessionHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Work session ID is required", nil)
		return
	}

	if err := h.sessionService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Work session deleted successfully", nil)
}

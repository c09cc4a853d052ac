package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/buildsite/worksite-backend-go/internal/domain/payroll"
	"github.com/buildsite/worksite-backend-go/internal/pkg/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakePayrollService records what the handler passes through and returns
// canned values, keeping handler tests free of storage and claims plumbing.
type fakePayrollService struct {
	lastRef    time.Time
	lastMonths int
	calls      int
}

func (f *fakePayrollService) GetSettings(ctx context.Context) (payroll.PayrollSettingsResponse, error) {
	f.calls++
	return payroll.PayrollSettingsResponse{ClosingDay: 20, PayDay: 25}, nil
}

func (f *fakePayrollService) UpdateSettings(ctx context.Context, req payroll.UpdatePayrollSettingsRequest) (payroll.PayrollSettingsResponse, error) {
	f.calls++
	if err := req.Validate(); err != nil {
		return payroll.PayrollSettingsResponse{}, err
	}
	return payroll.PayrollSettingsResponse{ClosingDay: req.ClosingDay, PayDay: req.PayDay}, nil
}

func (f *fakePayrollService) GetPeriod(ctx context.Context, ref time.Time) (payroll.PeriodResponse, error) {
	f.calls++
	f.lastRef = ref
	return payroll.PeriodResponse{StartDate: "2024-01-21", EndDate: "2024-02-20", ClosingDate: "2024-02-20", PayDate: "2024-03-25"}, nil
}

func (f *fakePayrollService) ListPeriods(ctx context.Context, monthsBack int) ([]payroll.PeriodResponse, error) {
	f.calls++
	f.lastMonths = monthsBack
	return []payroll.PeriodResponse{}, nil
}

func (f *fakePayrollService) GetSummaries(ctx context.Context, ref time.Time) (payroll.SummariesResponse, error) {
	f.calls++
	f.lastRef = ref
	return payroll.SummariesResponse{}, nil
}

func TestPayrollHandler_GetPeriod_ExplicitDate(t *testing.T) {
	svc := &fakePayrollService{}
	handler := NewPayrollHandler(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/payroll/period?date=2024-03-15", nil)
	rec := httptest.NewRecorder()
	handler.GetPeriod(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC), svc.lastRef)

	var body struct {
		Success bool                   `json:"success"`
		Data    payroll.PeriodResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, "2024-02-20", body.Data.EndDate)
}

func TestPayrollHandler_GetPeriod_DefaultsToToday(t *testing.T) {
	svc := &fakePayrollService{}
	handler := NewPayrollHandler(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/payroll/period", nil)
	rec := httptest.NewRecorder()
	handler.GetPeriod(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.WithinDuration(t, time.Now().UTC(), svc.lastRef, time.Minute)
}

func TestPayrollHandler_GetPeriod_MalformedDate(t *testing.T) {
	svc := &fakePayrollService{}
	handler := NewPayrollHandler(svc)

	for _, raw := range []string{"15-03-2024", "2024-02-30", "tomorrow"} {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/payroll/period?date="+raw, nil)
		rec := httptest.NewRecorder()
		handler.GetPeriod(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code, "date=%q", raw)
	}
	// Malformed input is rejected at the edge, never defaulted.
	assert.Equal(t, 0, svc.calls)
}

func TestPayrollHandler_ListPeriods_Months(t *testing.T) {
	svc := &fakePayrollService{}
	handler := NewPayrollHandler(svc)

	cases := []struct {
		query      string
		wantStatus int
		wantMonths int
	}{
		{"", http.StatusOK, defaultPeriodsBack},
		{"?months=12", http.StatusOK, 12},
		{"?months=100", http.StatusOK, maxPeriodsBack},
		{"?months=0", http.StatusBadRequest, 0},
		{"?months=abc", http.StatusBadRequest, 0},
	}
	for _, c := range cases {
		svc.lastMonths = 0
		req := httptest.NewRequest(http.MethodGet, "/api/v1/payroll/periods"+c.query, nil)
		rec := httptest.NewRecorder()
		handler.ListPeriods(rec, req)

		assert.Equal(t, c.wantStatus, rec.Code, "query %q", c.query)
		assert.Equal(t, c.wantMonths, svc.lastMonths, "query %q", c.query)
	}
}

func TestPayrollHandler_GetSummaries_MalformedDate(t *testing.T) {
	svc := &fakePayrollService{}
	handler := NewPayrollHandler(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/payroll/summaries?date=bogus", nil)
	rec := httptest.NewRecorder()
	handler.GetSummaries(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, 0, svc.calls)
}

func TestPayrollHandler_UpdateSettings_InvalidBody(t *testing.T) {
	svc := &fakePayrollService{}
	handler := NewPayrollHandler(svc)

	req := httptest.NewRequest(http.MethodPut, "/api/v1/payroll/settings", nil)
	rec := httptest.NewRecorder()
	handler.UpdateSettings(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, 0, svc.calls)
}

// ===== ROUTER AUTH TESTS =====

type stubCompanyHandler struct{}

func (stubCompanyHandler) GetMyCompany(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200) }

type stubMasterHandler struct{}

func (stubMasterHandler) CreateWorker(w http.ResponseWriter, r *http.Request)      { w.WriteHeader(200) }
func (stubMasterHandler) ListWorkers(w http.ResponseWriter, r *http.Request)       { w.WriteHeader(200) }
func (stubMasterHandler) DeactivateWorker(w http.ResponseWriter, r *http.Request)  { w.WriteHeader(200) }
func (stubMasterHandler) CreateProject(w http.ResponseWriter, r *http.Request)     { w.WriteHeader(200) }
func (stubMasterHandler) ListProjects(w http.ResponseWriter, r *http.Request)      { w.WriteHeader(200) }
func (stubMasterHandler) DeactivateProject(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200) }

type stubSessionHandler struct{}

func (stubSessionHandler) Create(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200) }
func (stubSessionHandler) Get(w http.ResponseWriter, r *http.Request)    { w.WriteHeader(200) }
func (stubSessionHandler) List(w http.ResponseWriter, r *http.Request)   { w.WriteHeader(200) }
func (stubSessionHandler) Delete(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200) }

func newTestRouter(t *testing.T) (http.Handler, jwt.Service) {
	t.Helper()
	jwtSvc := jwt.NewJWTService("test-secret-key-for-jwt")
	router := NewRouter(
		jwtSvc,
		stubCompanyHandler{},
		stubMasterHandler{},
		stubSessionHandler{},
		NewPayrollHandler(&fakePayrollService{}),
		"http://localhost:3000",
		"test",
	)
	return router, jwtSvc
}

func TestRouter_RejectsMissingToken(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/payroll/period", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRouter_RejectsTokenWithoutCompany(t *testing.T) {
	router, jwtSvc := newTestRouter(t)

	token, err := jwtSvc.EncodeAccessToken("user-1", "", time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/payroll/period", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRouter_AcceptsValidToken(t *testing.T) {
	router, jwtSvc := newTestRouter(t)

	token, err := jwtSvc.EncodeAccessToken("user-1", "company-1", time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/payroll/period?date=2024-03-15", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

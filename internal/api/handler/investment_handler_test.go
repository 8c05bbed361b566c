package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/altfolio/portfolio-api/internal/core/analytics"
	"github.com/altfolio/portfolio-api/internal/core/domain"
	"github.com/altfolio/portfolio-api/internal/core/ports"
)

// stubInvestmentService returns canned values; handlers only translate.
type stubInvestmentService struct {
	detail  *ports.InvestmentDetail
	details []ports.InvestmentDetail
	view    *ports.PortfolioView
	sim     *ports.SimulationView
	err     error

	lastCreate ports.CreateInvestmentInput
}

func (s *stubInvestmentService) List(_ context.Context, _ *domain.User) ([]ports.InvestmentDetail, error) {
	return s.details, s.err
}

func (s *stubInvestmentService) Get(_ context.Context, _ *domain.User, _ string) (*ports.InvestmentDetail, error) {
	return s.detail, s.err
}

func (s *stubInvestmentService) Create(_ context.Context, _ *domain.User, input ports.CreateInvestmentInput) (*ports.InvestmentDetail, error) {
	s.lastCreate = input
	return s.detail, s.err
}

func (s *stubInvestmentService) Update(_ context.Context, _ *domain.User, _ string, _ ports.UpdateInvestmentInput) (*ports.InvestmentDetail, error) {
	return s.detail, s.err
}

func (s *stubInvestmentService) SoftDelete(_ context.Context, _ *domain.User, _ string) error {
	return s.err
}

func (s *stubInvestmentService) PortfolioSummary(_ context.Context, _ *domain.User) (*ports.PortfolioView, error) {
	return s.view, s.err
}

func (s *stubInvestmentService) Simulate(_ context.Context, _ *domain.User) (*ports.SimulationView, error) {
	return s.sim, s.err
}

func sampleDetail() *ports.InvestmentDetail {
	return &ports.InvestmentDetail{
		Investment: &domain.Investment{
			ID:             "inv-1",
			AssetName:      "Vineyard Acres",
			AssetType:      domain.AssetFarmland,
			InvestedAmount: 100_000,
			CurrentValue:   120_000,
			InvestmentDate: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
			Owners:         []string{"u1"},
			IsActive:       true,
		},
		Metrics: analytics.InvestmentMetrics{ROI: 20, AbsoluteGain: 20_000},
	}
}

func newTestContext(t *testing.T, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", "u1")
	c.Set("email", "u1@example.com")
	c.Set("role", domain.RoleViewer)
	return c, rec
}

func TestInvestmentHandler_List(t *testing.T) {
	svc := &stubInvestmentService{details: []ports.InvestmentDetail{*sampleDetail()}}
	h := NewInvestmentHandler(svc)

	c, rec := newTestContext(t, http.MethodGet, "/v1/investments", "")
	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp listInvestmentsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response: %v", err)
	}
	if resp.Count != 1 || len(resp.Data) != 1 {
		t.Fatalf("unexpected list payload: %+v", resp)
	}
	if resp.Data[0].ROI != 20 {
		t.Errorf("derived metrics missing from response: %+v", resp.Data[0])
	}
}

func TestInvestmentHandler_Create(t *testing.T) {
	svc := &stubInvestmentService{detail: sampleDetail()}
	h := NewInvestmentHandler(svc)

	body := `{
		"asset_name": "Vineyard Acres",
		"asset_type": "Farmland",
		"invested_amount": 100000,
		"current_value": 120000,
		"investment_date": "2024-03-01T00:00:00Z",
		"owners": ["u1"]
	}`

	c, rec := newTestContext(t, http.MethodPost, "/v1/investments", body)
	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if svc.lastCreate.AssetType != "Farmland" {
		t.Errorf("input not forwarded to service: %+v", svc.lastCreate)
	}
}

func TestInvestmentHandler_Create_RejectsBadPayload(t *testing.T) {
	svc := &stubInvestmentService{detail: sampleDetail()}
	h := NewInvestmentHandler(svc)

	// Unknown asset type fails transport validation before the service.
	body := `{"asset_name": "X", "asset_type": "Timeshare", "owners": ["u1"], "investment_date": "2024-03-01T00:00:00Z"}`

	c, _ := newTestContext(t, http.MethodPost, "/v1/investments", body)
	err := h.Create(c)
	var he *echo.HTTPError
	if err == nil || !asHTTPError(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestInvestmentHandler_Get_PropagatesServiceError(t *testing.T) {
	svc := &stubInvestmentService{err: domain.ErrInvestmentNotFound}
	h := NewInvestmentHandler(svc)

	c, _ := newTestContext(t, http.MethodGet, "/v1/investments/inv-404", "")
	c.SetParamNames("id")
	c.SetParamValues("inv-404")

	if err := h.Get(c); err != domain.ErrInvestmentNotFound {
		t.Fatalf("expected domain error to propagate, got %v", err)
	}
}

func TestInvestmentHandler_Summary(t *testing.T) {
	svc := &stubInvestmentService{view: &ports.PortfolioView{
		Summary: analytics.PortfolioSummary{TotalInvested: 350_000, TotalCurrentValue: 385_000, TotalGain: 35_000, TotalROI: 10, InvestmentCount: 3},
		Allocation: []analytics.TypeAllocation{
			{AssetType: domain.AssetCryptoFund, TotalInvested: 200_000, TotalCurrentValue: 220_000, Count: 1},
		},
	}}
	h := NewInvestmentHandler(svc)

	c, rec := newTestContext(t, http.MethodGet, "/v1/portfolio/summary", "")
	if err := h.Summary(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp portfolioViewResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response: %v", err)
	}
	if resp.Summary.TotalROI != 10 || resp.Summary.InvestmentCount != 3 {
		t.Errorf("unexpected summary: %+v", resp.Summary)
	}
	if len(resp.Allocation) != 1 || resp.Allocation[0].AssetType != "CryptoFund" {
		t.Errorf("unexpected allocation: %+v", resp.Allocation)
	}
}

func TestInvestmentHandler_MissingClaims(t *testing.T) {
	h := NewInvestmentHandler(&stubInvestmentService{})

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/investments", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.List(c)
	var he *echo.HTTPError
	if err == nil || !asHTTPError(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 HTTPError, got %v", err)
	}
}

func asHTTPError(err error, target **echo.HTTPError) bool {
	he, ok := err.(*echo.HTTPError)
	if ok {
		*target = he
	}
	return ok
}

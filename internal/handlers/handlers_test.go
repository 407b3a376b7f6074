package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/dispatch_ledger/internal/apperrors"
	"github.com/SscSPs/dispatch_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/dispatch_ledger/internal/core/ports/services"
	"github.com/SscSPs/dispatch_ledger/internal/core/services"
	"github.com/SscSPs/dispatch_ledger/internal/dto"
	"github.com/SscSPs/dispatch_ledger/internal/handlers"
	"github.com/SscSPs/dispatch_ledger/internal/platform/config"
	"github.com/SscSPs/dispatch_ledger/internal/repositories/memory"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

const testJWTSecret = "test-secret-key-that-is-long-enough"

func signTestToken(secret, operatorID string) (string, error) {
	claims := jwt.RegisteredClaims{
		Issuer:    "dispatch-test",
		Subject:   operatorID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// --- Suite over the in-memory store ---

type LedgerAPITestSuite struct {
	suite.Suite
	router *gin.Engine
	store  *memory.Store
	token  string
}

func (suite *LedgerAPITestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	suite.store = memory.New()
	suite.store.PutProfessional(domain.Professional{
		ProfessionalID: "pro-1",
		Name:           "Salaried Pro",
		MonthlySalary:  decimal.NewFromInt(3000),
	})

	cfg := &config.Config{JWTSecret: testJWTSecret, IsProduction: true}
	provider := suite.store.Provider()

	suite.router = gin.New()
	handlers.RegisterRoutes(suite.router, cfg, services.NewServiceContainer(provider), provider.Health)

	token, err := signTestToken(testJWTSecret, "operator-1")
	suite.Require().NoError(err)
	suite.token = token
}

func (suite *LedgerAPITestSuite) do(method, url string, body any) *httptest.ResponseRecorder {
	var payload bytes.Buffer
	if body != nil {
		suite.Require().NoError(json.NewEncoder(&payload).Encode(body))
	}
	req := httptest.NewRequest(method, url, &payload)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+suite.token)

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *LedgerAPITestSuite) planTwoDays() dto.PlanResponse {
	w := suite.do(http.MethodPost, "/api/v1/plans", map[string]any{
		"dates":             []string{"2025-09-01", "2025-09-02"},
		"customerID":        "cust-1",
		"paymentMode":       "postpaid",
		"studentCount":      1,
		"studentRate":       "60",
		"professionalCount": 1,
		"professionalRate":  "90",
		"pricingPolicy":     "per_day",
		"dailyRate":         "300",
	})
	suite.Require().Equal(http.StatusCreated, w.Code, w.Body.String())

	var resp dto.PlanResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func (suite *LedgerAPITestSuite) TestHealth() {
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	suite.Equal(http.StatusOK, w.Code)
}

func (suite *LedgerAPITestSuite) TestMissingTokenIsRejected() {
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/reports/summary", nil))
	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *LedgerAPITestSuite) TestCreatePlan_PerDay() {
	resp := suite.planTwoDays()

	suite.NotEmpty(resp.GroupID)
	suite.Len(resp.Jobs, 4)
	suite.Equal(2, resp.DatesScheduled)
	suite.True(resp.CustomerRevenue.Equal(decimal.NewFromInt(600)), resp.CustomerRevenue.String())
	for _, j := range resp.Jobs {
		suite.Equal(resp.GroupID, j.GroupID)
		suite.Equal(string(domain.JobOpen), j.Status)
		suite.False(j.IsCollected)
	}

	w := suite.do(http.MethodGet, "/api/v1/jobs/groups/"+resp.GroupID, nil)
	suite.Equal(http.StatusOK, w.Code)
	var group dto.ListJobsResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &group))
	suite.Len(group.Jobs, 4)
}

func (suite *LedgerAPITestSuite) TestCreatePlan_RangeWithoutWeekdays() {
	w := suite.do(http.MethodPost, "/api/v1/plans", map[string]any{
		"from":          "2025-09-01",
		"to":            "2025-09-07",
		"customerID":    "cust-1",
		"paymentMode":   "prepaid",
		"studentCount":  1,
		"pricingPolicy": "flat_project",
		"totalPrice":    "500",
	})
	suite.Equal(http.StatusBadRequest, w.Code, w.Body.String())
}

func (suite *LedgerAPITestSuite) TestCreatePlan_BindingError() {
	w := suite.do(http.MethodPost, "/api/v1/plans", map[string]any{
		"dates":         []string{"2025-09-01"},
		"paymentMode":   "sometimes",
		"pricingPolicy": "per_day",
	})
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *LedgerAPITestSuite) TestAssignSalariedThenRejectConflicts() {
	plan := suite.planTwoDays()

	var proJob dto.JobResponse
	for _, j := range plan.Jobs {
		if j.WorkerKind == string(domain.WorkerProfessional) {
			proJob = j
			break
		}
	}
	suite.Require().NotEmpty(proJob.JobID)

	w := suite.do(http.MethodPut, "/api/v1/jobs/"+proJob.JobID+"/assignment", map[string]any{
		"workerID": "pro-1",
		"rate":     "90",
	})
	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())

	var assigned dto.JobResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &assigned))
	suite.Equal(string(domain.JobAssigned), assigned.Status)
	suite.True(assigned.PriceToWorker.IsZero(), "salaried professional works at zero piece rate")
	suite.Require().NotNil(assigned.AssignedWorkerID)
	suite.Equal("pro-1", *assigned.AssignedWorkerID)

	w = suite.do(http.MethodPost, "/api/v1/jobs/"+proJob.JobID+"/reject", nil)
	suite.Equal(http.StatusConflict, w.Code)

	w = suite.do(http.MethodPut, "/api/v1/jobs/"+proJob.JobID+"/assignment", map[string]any{"workerID": "pro-2"})
	suite.Equal(http.StatusConflict, w.Code, "a worker is assigned once")
}

func (suite *LedgerAPITestSuite) TestUnknownJobIsNotFound() {
	w := suite.do(http.MethodPut, "/api/v1/jobs/missing/collected", map[string]any{"collected": true})
	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *LedgerAPITestSuite) TestSettleSalaryTwiceConflicts() {
	body := map[string]any{"professionalID": "pro-1", "periodKind": "monthly", "date": "2025-09-30"}

	w := suite.do(http.MethodPost, "/api/v1/payments/salary", body)
	suite.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	var payment dto.SalaryPaymentResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &payment))
	suite.Equal("09-2025", payment.PeriodKey)
	suite.True(payment.Amount.Equal(decimal.NewFromInt(3000)))

	w = suite.do(http.MethodPost, "/api/v1/payments/salary", body)
	suite.Equal(http.StatusConflict, w.Code)

	w = suite.do(http.MethodGet, "/api/v1/payments/salary?kind=monthly&date=2025-09-15", nil)
	suite.Require().Equal(http.StatusOK, w.Code)
	var status dto.ListSalaryStatusResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &status))
	suite.Require().Len(status.Professionals, 1)
	suite.True(status.Professionals[0].IsPaid)
}

func (suite *LedgerAPITestSuite) TestSummaryAndCashFlow() {
	suite.planTwoDays()
	w := suite.do(http.MethodPost, "/api/v1/payments/salary",
		map[string]any{"professionalID": "pro-1", "periodKind": "monthly", "date": "2025-09-30"})
	suite.Require().Equal(http.StatusCreated, w.Code)

	w = suite.do(http.MethodGet, "/api/v1/reports/summary?date=2025-09-30", nil)
	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	var summary dto.SummaryResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &summary))
	suite.True(summary.CurrentCash.Equal(decimal.NewFromInt(-3000)), summary.CurrentCash.String())
	suite.True(summary.PendingReceivables.Equal(decimal.NewFromInt(600)), summary.PendingReceivables.String())
	suite.True(summary.SalaryDebt.IsZero())
	expected := summary.CurrentCash.Add(summary.PendingReceivables).Sub(summary.TotalForwardObligation)
	suite.True(summary.NetForecast.Equal(expected))

	w = suite.do(http.MethodGet, "/api/v1/reports/cash-flow?limit=10", nil)
	suite.Require().Equal(http.StatusOK, w.Code)
	var flow dto.CashFlowResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &flow))
	suite.Require().Len(flow.Lines, 1)
	suite.Equal(string(domain.SourceSalary), flow.Lines[0].Source)
	suite.Nil(flow.NextToken)
}

func (suite *LedgerAPITestSuite) TestMonthlyProfitValidation() {
	w := suite.do(http.MethodGet, "/api/v1/reports/monthly-profit?month=13&year=2025", nil)
	suite.Equal(http.StatusBadRequest, w.Code)

	w = suite.do(http.MethodGet, "/api/v1/reports/monthly-profit?month=9&year=2025", nil)
	suite.Equal(http.StatusOK, w.Code)
}

func TestLedgerAPI(t *testing.T) {
	suite.Run(t, new(LedgerAPITestSuite))
}

// --- Error mapping against a mocked ledger ---

type MockLedgerService struct {
	mock.Mock
}

func (m *MockLedgerService) CashFlow(ctx context.Context) ([]domain.LedgerLine, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LedgerLine), args.Error(1)
}

func (m *MockLedgerService) CashFlowPage(ctx context.Context, limit int, nextToken *string) ([]domain.LedgerLine, *string, error) {
	args := m.Called(ctx, limit, nextToken)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	next, _ := args.Get(1).(*string)
	return args.Get(0).([]domain.LedgerLine), next, args.Error(2)
}

func (m *MockLedgerService) Summary(ctx context.Context, today time.Time) (*domain.LedgerSummary, error) {
	args := m.Called(ctx, today)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LedgerSummary), args.Error(1)
}

func (m *MockLedgerService) MonthlyProfit(ctx context.Context, month time.Month, year int) (*domain.MonthlyProfit, error) {
	args := m.Called(ctx, month, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MonthlyProfit), args.Error(1)
}

var _ portssvc.LedgerSvc = (*MockLedgerService)(nil)

type ReportErrorTestSuite struct {
	suite.Suite
	router     *gin.Engine
	mockLedger *MockLedgerService
	token      string
}

func (suite *ReportErrorTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.mockLedger = new(MockLedgerService)

	cfg := &config.Config{JWTSecret: testJWTSecret, IsProduction: true}
	container := &portssvc.ServiceContainer{Ledger: suite.mockLedger}
	handlers.RegisterRoutes(suite.router, cfg, container, memory.New())

	token, err := signTestToken(testJWTSecret, "operator-1")
	suite.Require().NoError(err)
	suite.token = token
}

func (suite *ReportErrorTestSuite) get(url string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, url, nil)
	req.Header.Set("Authorization", "Bearer "+suite.token)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *ReportErrorTestSuite) TestStoreUnavailableIs503() {
	storeErr := apperrors.NewAppError(503, "failed to query jobs", apperrors.ErrStoreUnavailable)
	suite.mockLedger.On("Summary", mock.Anything, time.Date(2025, time.September, 30, 0, 0, 0, 0, time.UTC)).
		Return(nil, storeErr).Once()

	w := suite.get("/api/v1/reports/summary?date=2025-09-30")

	suite.Equal(http.StatusServiceUnavailable, w.Code)
	suite.mockLedger.AssertExpectations(suite.T())
}

func (suite *ReportErrorTestSuite) TestBadPageTokenIs400() {
	token := "not-a-token"
	suite.mockLedger.On("CashFlowPage", mock.Anything, 0, &token).
		Return(nil, nil, apperrors.ErrValidation).Once()

	w := suite.get("/api/v1/reports/cash-flow?nextToken=not-a-token")

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockLedger.AssertExpectations(suite.T())
}

func (suite *ReportErrorTestSuite) TestUnexpectedErrorIs500() {
	suite.mockLedger.On("MonthlyProfit", mock.Anything, time.September, 2025).
		Return(nil, context.Canceled).Once()

	w := suite.get("/api/v1/reports/monthly-profit?month=9&year=2025")

	suite.Equal(http.StatusInternalServerError, w.Code)
	suite.NotContains(w.Body.String(), "context canceled")
}

func TestReportErrors(t *testing.T) {
	suite.Run(t, new(ReportErrorTestSuite))
}

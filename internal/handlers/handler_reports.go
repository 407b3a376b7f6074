package handlers

import (
	"net/http"
	"time"

	portssvc "github.com/SscSPs/dispatch_ledger/internal/core/ports/services"
	"github.com/SscSPs/dispatch_ledger/internal/dto"
	"github.com/SscSPs/dispatch_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// reportHandler serves the cash-flow log and dashboard figures.
type reportHandler struct {
	ledgerService     portssvc.LedgerSvc
	obligationService portssvc.ObligationSvc
}

func newReportHandler(ls portssvc.LedgerSvc, obs portssvc.ObligationSvc) *reportHandler {
	return &reportHandler{ledgerService: ls, obligationService: obs}
}

// RegisterReportRoutes registers the reporting routes.
func RegisterReportRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerSvc, obligationService portssvc.ObligationSvc) {
	h := newReportHandler(ledgerService, obligationService)

	reports := rg.Group("/reports")
	{
		reports.GET("/cash-flow", h.cashFlow)
		reports.GET("/summary", h.summary)
		reports.GET("/obligations", h.obligations)
		reports.GET("/monthly-profit", h.monthlyProfit)
	}
}

// cashFlow godoc
// @Summary Cash-flow log
// @Description Signed cash movements from transactions, collected job revenue, paid job labor and salary settlements, newest first
// @Tags reports
// @Produce  json
// @Param   limit query int false "Page size (default 50, max 500)"
// @Param   nextToken query string false "Token from the previous page"
// @Success 200 {object} dto.CashFlowResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 503 {object} map[string]string "Ledger store unavailable"
// @Failure 500 {object} map[string]string "Failed to build cash flow"
// @Security BearerAuth
// @Router /reports/cash-flow [get]
func (h *reportHandler) cashFlow(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var q dto.CashFlowQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondBindError(c, logger, err, "cash flow query")
		return
	}

	lines, next, err := h.ledgerService.CashFlowPage(c.Request.Context(), q.Limit, q.NextToken)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to build cash flow")
		return
	}
	c.JSON(http.StatusOK, dto.ToCashFlowResponse(lines, next))
}

// summary godoc
// @Summary Dashboard summary
// @Description Current cash, pending receivables, forward obligations and the net forecast
// @Tags reports
// @Produce  json
// @Param   date query string false "Reference date YYYY-MM-DD (default today)"
// @Success 200 {object} dto.SummaryResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 503 {object} map[string]string "Ledger store unavailable"
// @Failure 500 {object} map[string]string "Failed to build summary"
// @Security BearerAuth
// @Router /reports/summary [get]
func (h *reportHandler) summary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var q dto.AsOfQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondBindError(c, logger, err, "summary query")
		return
	}
	day, err := referenceDay(q.Date)
	if err != nil {
		respondServiceError(c, logger, err, "Invalid reference date")
		return
	}

	s, err := h.ledgerService.Summary(c.Request.Context(), day)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to build summary")
		return
	}
	c.JSON(http.StatusOK, dto.ToSummaryResponse(day.Format(dto.APIDateLayout), s))
}

// obligations godoc
// @Summary Forward obligations
// @Description Unpaid piece-rate debt plus unsettled monthly and weekly salaries of the current month
// @Tags reports
// @Produce  json
// @Param   date query string false "Reference date YYYY-MM-DD (default today)"
// @Success 200 {object} dto.ObligationsResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 500 {object} map[string]string "Failed to calculate obligations"
// @Security BearerAuth
// @Router /reports/obligations [get]
func (h *reportHandler) obligations(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var q dto.AsOfQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondBindError(c, logger, err, "obligations query")
		return
	}
	day, err := referenceDay(q.Date)
	if err != nil {
		respondServiceError(c, logger, err, "Invalid reference date")
		return
	}

	o, err := h.obligationService.CalculateObligations(c.Request.Context(), day)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to calculate obligations")
		return
	}
	c.JSON(http.StatusOK, dto.ToObligationsResponse(day.Format(dto.APIDateLayout), o))
}

// monthlyProfit godoc
// @Summary Monthly accrual profit
// @Tags reports
// @Produce  json
// @Param   month query int true "Month (1-12)"
// @Param   year query int true "Year"
// @Success 200 {object} dto.MonthlyProfitResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 500 {object} map[string]string "Failed to calculate monthly profit"
// @Security BearerAuth
// @Router /reports/monthly-profit [get]
func (h *reportHandler) monthlyProfit(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var q dto.MonthQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondBindError(c, logger, err, "monthly profit query")
		return
	}

	p, err := h.ledgerService.MonthlyProfit(c.Request.Context(), time.Month(q.Month), q.Year)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to calculate monthly profit")
		return
	}
	c.JSON(http.StatusOK, dto.ToMonthlyProfitResponse(p))
}

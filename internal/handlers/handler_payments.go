package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/dispatch_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/dispatch_ledger/internal/core/ports/services"
	"github.com/SscSPs/dispatch_ledger/internal/dto"
	"github.com/SscSPs/dispatch_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// paymentHandler handles HTTP requests for salary and piece-rate payouts.
type paymentHandler struct {
	paymentService portssvc.PaymentSvcFacade
}

func newPaymentHandler(ps portssvc.PaymentSvcFacade) *paymentHandler {
	return &paymentHandler{paymentService: ps}
}

// RegisterPaymentRoutes registers routes related to worker payments.
func RegisterPaymentRoutes(rg *gin.RouterGroup, paymentService portssvc.PaymentSvcFacade) {
	h := newPaymentHandler(paymentService)

	payments := rg.Group("/payments")
	{
		payments.GET("/salary", h.salaryStatus)
		payments.POST("/salary", h.settleSalary)
		payments.GET("/piece-rate", h.listUnpaidPieceRate)
		payments.POST("/piece-rate/:jobID", h.payPieceRate)
		payments.GET("/reconciliation", h.reconcile)
	}
}

// salaryStatus godoc
// @Summary Salary settlement status
// @Description Lists salaried professionals drawing the given salary kind with their paid flag for the current period
// @Tags payments
// @Produce  json
// @Param   kind query string true "Period kind (monthly, weekly)"
// @Param   date query string false "Reference date YYYY-MM-DD (default today)"
// @Success 200 {object} dto.ListSalaryStatusResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 500 {object} map[string]string "Failed to load salary status"
// @Security BearerAuth
// @Router /payments/salary [get]
func (h *paymentHandler) salaryStatus(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var q dto.SalaryStatusQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondBindError(c, logger, err, "salary status query")
		return
	}
	day, err := referenceDay(q.Date)
	if err != nil {
		respondServiceError(c, logger, err, "Invalid reference date")
		return
	}

	rows, err := h.paymentService.SalaryStatus(c.Request.Context(), domain.PeriodKind(q.Kind), day)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to load salary status")
		return
	}
	c.JSON(http.StatusOK, dto.ToListSalaryStatusResponse(rows))
}

// settleSalary godoc
// @Summary Settle a salary period
// @Description Records the professional's monthly or weekly salary for the period containing the given date. A period can only be settled once.
// @Tags payments
// @Accept  json
// @Produce  json
// @Param   settlement body dto.SettleSalaryRequest true "Professional and period"
// @Success 201 {object} dto.SalaryPaymentResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Professional not found"
// @Failure 409 {object} map[string]string "Period already settled"
// @Failure 503 {object} map[string]string "Ledger store unavailable"
// @Failure 500 {object} map[string]string "Failed to settle salary"
// @Security BearerAuth
// @Router /payments/salary [post]
func (h *paymentHandler) settleSalary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.SettleSalaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err, "salary settlement")
		return
	}
	day, err := referenceDay(req.Date)
	if err != nil {
		respondServiceError(c, logger, err, "Invalid reference date")
		return
	}

	logger = logger.With(slog.String("professional_id", req.ProfessionalID), slog.String("period_kind", req.PeriodKind))
	payment, err := h.paymentService.SettleSalary(c.Request.Context(), req.ProfessionalID, domain.PeriodKind(req.PeriodKind), day)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to settle salary")
		return
	}

	logger.Info("Salary settled", slog.String("payment_id", payment.PaymentID), slog.String("period_key", payment.PeriodKey))
	c.JSON(http.StatusCreated, dto.ToSalaryPaymentResponse(payment))
}

// listUnpaidPieceRate godoc
// @Summary List unpaid piece-rate jobs
// @Tags payments
// @Produce  json
// @Success 200 {object} dto.ListJobsResponse
// @Failure 500 {object} map[string]string "Failed to list unpaid jobs"
// @Security BearerAuth
// @Router /payments/piece-rate [get]
func (h *paymentHandler) listUnpaidPieceRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	jobs, err := h.paymentService.ListUnpaidPieceRate(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list unpaid jobs")
		return
	}
	c.JSON(http.StatusOK, dto.ListJobsResponse{Jobs: dto.ToJobResponses(jobs)})
}

// payPieceRate godoc
// @Summary Pay a job's worker price
// @Tags payments
// @Produce  json
// @Param   jobID path string true "Job ID"
// @Success 200 {object} dto.JobResponse
// @Failure 404 {object} map[string]string "Job not found"
// @Failure 409 {object} map[string]string "Job not assigned or already paid"
// @Failure 500 {object} map[string]string "Failed to pay worker"
// @Security BearerAuth
// @Router /payments/piece-rate/{jobID} [post]
func (h *paymentHandler) payPieceRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	job, err := h.paymentService.PayPieceRate(c.Request.Context(), c.Param("jobID"))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to pay worker")
		return
	}
	c.JSON(http.StatusOK, dto.ToJobResponse(job))
}

// reconcile godoc
// @Summary Find salary periods settled more than once
// @Tags payments
// @Produce  json
// @Success 200 {object} dto.ReconciliationResponse
// @Failure 500 {object} map[string]string "Failed to reconcile settlements"
// @Security BearerAuth
// @Router /payments/reconciliation [get]
func (h *paymentHandler) reconcile(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	conflicts, err := h.paymentService.Reconcile(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "Failed to reconcile settlements")
		return
	}
	c.JSON(http.StatusOK, dto.ToReconciliationResponse(conflicts))
}

package handlers

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/SscSPs/dispatch_ledger/internal/apperrors"
	portssvc "github.com/SscSPs/dispatch_ledger/internal/core/ports/services"
	"github.com/SscSPs/dispatch_ledger/internal/dto"
	"github.com/SscSPs/dispatch_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// planningHandler handles HTTP requests that turn quotes into jobs.
type planningHandler struct {
	planningService portssvc.PlanningSvc
}

func newPlanningHandler(ps portssvc.PlanningSvc) *planningHandler {
	return &planningHandler{planningService: ps}
}

// RegisterPlanningRoutes registers the planning routes.
func RegisterPlanningRoutes(rg *gin.RouterGroup, planningService portssvc.PlanningSvc) {
	h := newPlanningHandler(planningService)
	rg.POST("/plans", h.createPlan)
}

// createPlan godoc
// @Summary Plan jobs for a customer
// @Description Distributes a customer quote over the selected dates and workers and stores every job atomically under a new group ID
// @Tags planning
// @Accept  json
// @Produce  json
// @Param   plan body dto.CreatePlanRequest true "Quote, roster and dates"
// @Success 201 {object} dto.PlanResponse
// @Success 200 {object} dto.PlanResponse "Nothing to schedule"
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 503 {object} map[string]string "Ledger store unavailable"
// @Failure 500 {object} map[string]string "Failed to plan jobs"
// @Security BearerAuth
// @Router /plans [post]
func (h *planningHandler) createPlan(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err, "plan request")
		return
	}

	plan, err := req.ToDomain()
	if err != nil {
		respondServiceError(c, logger, fmt.Errorf("%w: %w", apperrors.ErrValidation, err), "Invalid plan request")
		return
	}

	logger.Info("Received request to plan jobs",
		slog.String("customer_id", req.CustomerID),
		slog.Int("dates", len(plan.Dates)),
		slog.String("pricing_policy", req.PricingPolicy))

	result, err := h.planningService.PlanJobs(c.Request.Context(), plan)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to plan jobs")
		return
	}

	status := http.StatusCreated
	if len(result.Jobs) == 0 {
		status = http.StatusOK
	}
	c.JSON(status, dto.ToPlanResponse(result))
}

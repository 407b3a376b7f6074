package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/SscSPs/dispatch_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/dispatch_ledger/internal/core/ports/services"
	"github.com/SscSPs/dispatch_ledger/internal/dto"
	"github.com/SscSPs/dispatch_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// jobHandler handles HTTP requests for the job lifecycle.
type jobHandler struct {
	jobService portssvc.JobSvcFacade
}

func newJobHandler(js portssvc.JobSvcFacade) *jobHandler {
	return &jobHandler{jobService: js}
}

// RegisterJobRoutes registers routes related to jobs.
func RegisterJobRoutes(rg *gin.RouterGroup, jobService portssvc.JobSvcFacade) {
	h := newJobHandler(jobService)

	jobs := rg.Group("/jobs")
	{
		jobs.GET("", h.listJobs)
		jobs.GET("/groups/:groupID", h.listGroup)
		jobs.DELETE("/groups/:groupID", h.deleteGroup)
		jobs.GET("/:jobID", h.getJob)
		jobs.PUT("/:jobID/assignment", h.assignWorker)
		jobs.POST("/:jobID/reject", h.rejectJob)
		jobs.PUT("/:jobID/collected", h.setCollected)
		jobs.PUT("/:jobID/worker-paid", h.setWorkerPaid)
		jobs.DELETE("/:jobID", h.deleteJob)
	}
}

// listJobs godoc
// @Summary List jobs of a month
// @Description Lists the jobs dated in one month, optionally filtered by worker kind
// @Tags jobs
// @Produce  json
// @Param   month query int true "Month (1-12)"
// @Param   year query int true "Year"
// @Param   kind query string false "Worker kind (student, professional, none)"
// @Success 200 {object} dto.ListJobsResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list jobs"
// @Security BearerAuth
// @Router /jobs [get]
func (h *jobHandler) listJobs(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var q dto.ListJobsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondBindError(c, logger, err, "job list query")
		return
	}

	jobs, err := h.jobService.ListMonth(c.Request.Context(), time.Month(q.Month), q.Year, domain.WorkerKind(q.Kind))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list jobs")
		return
	}
	c.JSON(http.StatusOK, dto.ListJobsResponse{Jobs: dto.ToJobResponses(jobs)})
}

// getJob godoc
// @Summary Get a job by ID
// @Tags jobs
// @Produce  json
// @Param   jobID path string true "Job ID"
// @Success 200 {object} dto.JobResponse
// @Failure 404 {object} map[string]string "Job not found"
// @Failure 500 {object} map[string]string "Failed to retrieve job"
// @Security BearerAuth
// @Router /jobs/{jobID} [get]
func (h *jobHandler) getJob(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	job, err := h.jobService.GetJob(c.Request.Context(), c.Param("jobID"))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve job")
		return
	}
	c.JSON(http.StatusOK, dto.ToJobResponse(job))
}

// listGroup godoc
// @Summary List the jobs of one planning action
// @Tags jobs
// @Produce  json
// @Param   groupID path string true "Group ID"
// @Success 200 {object} dto.ListJobsResponse
// @Failure 500 {object} map[string]string "Failed to list job group"
// @Security BearerAuth
// @Router /jobs/groups/{groupID} [get]
func (h *jobHandler) listGroup(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	jobs, err := h.jobService.ListGroup(c.Request.Context(), c.Param("groupID"))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list job group")
		return
	}
	c.JSON(http.StatusOK, dto.ListJobsResponse{Jobs: dto.ToJobResponses(jobs)})
}

// deleteGroup godoc
// @Summary Delete every job of a planning action
// @Tags jobs
// @Produce  json
// @Param   groupID path string true "Group ID"
// @Success 200 {object} dto.DeleteJobGroupResponse
// @Failure 404 {object} map[string]string "Job group not found"
// @Failure 500 {object} map[string]string "Failed to delete job group"
// @Security BearerAuth
// @Router /jobs/groups/{groupID} [delete]
func (h *jobHandler) deleteGroup(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	groupID := c.Param("groupID")
	logger = logger.With(slog.String("group_id", groupID))

	removed, err := h.jobService.DeleteJobGroup(c.Request.Context(), groupID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to delete job group")
		return
	}
	logger.Info("Job group deleted", slog.Int64("removed", removed))
	c.JSON(http.StatusOK, dto.DeleteJobGroupResponse{GroupID: groupID, Removed: removed})
}

// assignWorker godoc
// @Summary Assign a worker to a job
// @Description Staffs an OPEN job. Salaried professionals are assigned at zero worker price.
// @Tags jobs
// @Accept  json
// @Produce  json
// @Param   jobID path string true "Job ID"
// @Param   assignment body dto.AssignWorkerRequest true "Worker and optional rate"
// @Success 200 {object} dto.JobResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Job not found"
// @Failure 409 {object} map[string]string "Job can no longer be assigned"
// @Failure 500 {object} map[string]string "Failed to assign worker"
// @Security BearerAuth
// @Router /jobs/{jobID}/assignment [put]
func (h *jobHandler) assignWorker(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.AssignWorkerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err, "assignment")
		return
	}

	job, err := h.jobService.AssignWorker(c.Request.Context(), c.Param("jobID"), req.WorkerID, req.Rate)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to assign worker")
		return
	}
	c.JSON(http.StatusOK, dto.ToJobResponse(job))
}

// rejectJob godoc
// @Summary Reject an open job
// @Tags jobs
// @Produce  json
// @Param   jobID path string true "Job ID"
// @Success 200 {object} dto.JobResponse
// @Failure 404 {object} map[string]string "Job not found"
// @Failure 409 {object} map[string]string "Job is not open"
// @Failure 500 {object} map[string]string "Failed to reject job"
// @Security BearerAuth
// @Router /jobs/{jobID}/reject [post]
func (h *jobHandler) rejectJob(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	job, err := h.jobService.RejectJob(c.Request.Context(), c.Param("jobID"))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to reject job")
		return
	}
	c.JSON(http.StatusOK, dto.ToJobResponse(job))
}

// setCollected godoc
// @Summary Record whether the customer paid for a job
// @Tags jobs
// @Accept  json
// @Produce  json
// @Param   jobID path string true "Job ID"
// @Param   collected body dto.SetCollectedRequest true "Collected flag"
// @Success 200 {object} dto.JobResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Job not found"
// @Failure 500 {object} map[string]string "Failed to update job"
// @Security BearerAuth
// @Router /jobs/{jobID}/collected [put]
func (h *jobHandler) setCollected(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.SetCollectedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err, "collected flag")
		return
	}

	job, err := h.jobService.SetCollected(c.Request.Context(), c.Param("jobID"), *req.Collected)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to update job")
		return
	}
	c.JSON(http.StatusOK, dto.ToJobResponse(job))
}

// setWorkerPaid godoc
// @Summary Record whether the worker was paid for a job
// @Tags jobs
// @Accept  json
// @Produce  json
// @Param   jobID path string true "Job ID"
// @Param   paid body dto.SetWorkerPaidRequest true "Paid flag"
// @Success 200 {object} dto.JobResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Job not found"
// @Failure 409 {object} map[string]string "Job was rejected"
// @Failure 500 {object} map[string]string "Failed to update job"
// @Security BearerAuth
// @Router /jobs/{jobID}/worker-paid [put]
func (h *jobHandler) setWorkerPaid(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.SetWorkerPaidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err, "worker paid flag")
		return
	}

	job, err := h.jobService.SetWorkerPaid(c.Request.Context(), c.Param("jobID"), *req.Paid)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to update job")
		return
	}
	c.JSON(http.StatusOK, dto.ToJobResponse(job))
}

// deleteJob godoc
// @Summary Delete a job
// @Tags jobs
// @Param   jobID path string true "Job ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Job not found"
// @Failure 500 {object} map[string]string "Failed to delete job"
// @Security BearerAuth
// @Router /jobs/{jobID} [delete]
func (h *jobHandler) deleteJob(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	jobID := c.Param("jobID")
	if err := h.jobService.DeleteJob(c.Request.Context(), jobID); err != nil {
		respondServiceError(c, logger, err, "Failed to delete job")
		return
	}
	logger.Info("Job deleted", slog.String("job_id", jobID))
	c.Status(http.StatusNoContent)
}

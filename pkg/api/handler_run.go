package api

import (
	"net/http"
	"strconv"

	echo "github.com/labstack/echo/v5"

	"github.com/swarmlet/swarmlet/pkg/models"
)

// maxTaskLength bounds submitted tasks. Larger material belongs in
// worker commands, not the supervisor prompt.
const maxTaskLength = 100_000

// createRunHandler handles POST /api/runs. The run is created pending
// and handed to the supervisor engine before the response is written, so
// a client that immediately opens the event stream sees the run live.
func (s *Server) createRunHandler(c *echo.Context) error {
	var req createRunRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest,
			models.Failure(models.ErrorTypeValidation, "request body is not valid JSON"))
	}
	if req.Task == "" {
		return c.JSON(http.StatusBadRequest,
			models.Failure(models.ErrorTypeValidation, "task is required"))
	}
	if len(req.Task) > maxTaskLength {
		return c.JSON(http.StatusBadRequest,
			models.Failure(models.ErrorTypeValidation, "task exceeds maximum length"))
	}

	ctx := c.Request().Context()
	r, err := s.runs.CreateRun(ctx, ownerID(c), req.ThreadID, req.Task)
	if err != nil {
		return respondError(c, err)
	}
	if err := s.engine.StartRun(ctx, r); err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, models.Success(toRunResponse(r)))
}

// getRunHandler handles GET /api/runs/:id.
func (s *Server) getRunHandler(c *echo.Context) error {
	r, err := s.runs.GetRun(c.Request().Context(), ownerID(c), c.Param("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, models.Success(toRunResponse(r)))
}

// listRunsHandler handles GET /api/runs.
func (s *Server) listRunsHandler(c *echo.Context) error {
	limit := 50
	if v := c.QueryParam("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 || n > 200 {
			return c.JSON(http.StatusBadRequest,
				models.Failure(models.ErrorTypeValidation, "limit must be between 1 and 200"))
		}
		limit = n
	}

	runs, err := s.runs.ListRuns(c.Request().Context(), ownerID(c), limit)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, models.Success(toRunResponses(runs)))
}

// cancelRunHandler handles POST /api/runs/:id/cancel. Cancelling a run
// that already finished cancelling is idempotent; cancelling a run in any
// other terminal state is too, the terminal state just wins.
func (s *Server) cancelRunHandler(c *echo.Context) error {
	if err := s.runs.Cancel(c.Request().Context(), ownerID(c), c.Param("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, models.Success(map[string]any{"cancelled": true}))
}

// listRunJobsHandler handles GET /api/runs/:id/jobs. Ownership is
// enforced by resolving the run first.
func (s *Server) listRunJobsHandler(c *echo.Context) error {
	ctx := c.Request().Context()
	r, err := s.runs.GetRun(ctx, ownerID(c), c.Param("id"))
	if err != nil {
		return respondError(c, err)
	}
	jobs, err := s.jobs.ListForRun(ctx, r.ID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, models.Success(toWorkerJobResponses(jobs)))
}

// getJobHandler handles GET /api/jobs/:id.
func (s *Server) getJobHandler(c *echo.Context) error {
	job, err := s.jobs.GetJob(c.Request().Context(), ownerID(c), c.Param("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, models.Success(toWorkerJobResponse(job)))
}

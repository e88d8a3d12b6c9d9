package http

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/AbdelrahmanAbbas1/woocommerce-zoho-integration/internal/domain/repository"
)

const defaultRunsLimit = 20

// RunsHandler serves recorded run history.
type RunsHandler struct {
	runs   repository.SyncRunRepository
	logger *zap.Logger
}

// NewRunsHandler creates a new runs handler
func NewRunsHandler(runs repository.SyncRunRepository, logger *zap.Logger) *RunsHandler {
	return &RunsHandler{
		runs:   runs,
		logger: logger,
	}
}

// ListRuns returns recent run summaries, newest first.
// GET /api/v1/runs?limit=20
func (h *RunsHandler) ListRuns(c echo.Context) error {
	limit := defaultRunsLimit
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			return c.JSON(http.StatusBadRequest, echo.Map{
				"error": "limit must be a positive integer",
				"code":  "INVALID_LIMIT",
			})
		}
		limit = parsed
	}

	runs, err := h.runs.ListRuns(c.Request().Context(), limit)
	if err != nil {
		h.logger.Error("Failed to list runs", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to list runs",
			"code":  "LIST_RUNS_FAILED",
		})
	}

	return c.JSON(http.StatusOK, echo.Map{"runs": runs})
}

// GetRun returns one run with its per-order results.
// GET /api/v1/runs/:id
func (h *RunsHandler) GetRun(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Run id must be a valid UUID",
			"code":  "INVALID_RUN_ID",
		})
	}

	run, err := h.runs.GetRun(c.Request().Context(), id)
	if err != nil {
		h.logger.Error("Failed to get run",
			zap.String("run_id", id.String()),
			zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to get run",
			"code":  "GET_RUN_FAILED",
		})
	}
	if run == nil {
		return c.JSON(http.StatusNotFound, echo.Map{
			"error": "Run not found",
			"code":  "RUN_NOT_FOUND",
		})
	}

	return c.JSON(http.StatusOK, run)
}

package http

import (
	"errors"
	"net/http"
	"sync"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	apperrors "github.com/AbdelrahmanAbbas1/woocommerce-zoho-integration/internal/domain/errors"
	"github.com/AbdelrahmanAbbas1/woocommerce-zoho-integration/internal/usecase"
)

// SyncHandler exposes the sync trigger endpoint.
type SyncHandler struct {
	service *usecase.SyncService
	logger  *zap.Logger

	// Two triggers must not interleave runs; dedup lookups are only safe
	// while processing is sequential.
	mu sync.Mutex
}

// NewSyncHandler creates a new sync handler
func NewSyncHandler(syncService *usecase.SyncService, logger *zap.Logger) *SyncHandler {
	return &SyncHandler{
		service: syncService,
		logger:  logger,
	}
}

// TriggerSync runs one synchronization pass.
// POST /api/v1/sync
func (h *SyncHandler) TriggerSync(c echo.Context) error {
	if !h.mu.TryLock() {
		return c.JSON(http.StatusConflict, echo.Map{
			"error": "A sync run is already in progress",
			"code":  "SYNC_IN_PROGRESS",
		})
	}
	defer h.mu.Unlock()

	run, err := h.service.Run(c.Request().Context())
	if err != nil {
		var fetchErr *apperrors.SourceFetchError
		if errors.As(err, &fetchErr) {
			return c.JSON(http.StatusBadGateway, echo.Map{
				"error":  "Failed to fetch orders from source",
				"code":   "SOURCE_FETCH_FAILED",
				"run_id": run.ID.String(),
			})
		}

		h.logger.Error("Sync run failed", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Sync run failed",
			"code":  "SYNC_FAILED",
		})
	}

	return c.JSON(http.StatusOK, run)
}
